package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/learnhouse-dev/learnhouse/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// captureSession runs the middleware and returns the session seen downstream.
func captureSession(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (*Session, *httptest.ResponseRecorder) {
	t.Helper()
	var seen *Session
	rr := httptest.NewRecorder()
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r)
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)
	return seen, rr
}

func TestNeedAuth_WithoutVerification(t *testing.T) {
	auth := NewAuth(nil)
	signed, err := jwt.New("unknown-to-frontend", time.Hour).NewToken("user_42")
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signed})

		session, rr := captureSession(t, auth.NeedAuth(), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, session)
		assert.Equal(t, signed, session.Token)
		assert.Equal(t, TokenOwner(signed), session.Owner)
		assert.True(t, session.FromCookie)
	})

	t.Run("claims are not trusted", func(t *testing.T) {
		other, err := jwt.New("made-up-key", time.Hour).NewToken("user_42")
		require.NoError(t, err)

		owners := make([]string, 0, 2)
		for _, token := range []string{signed, other} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			session, rr := captureSession(t, auth.NeedAuth(), req)
			require.Equal(t, http.StatusOK, rr.Code)
			require.NotNil(t, session)
			owners = append(owners, session.Owner)
		}

		assert.NotEqual(t, owners[0], owners[1])
		assert.NotEqual(t, "user_42", owners[0])
		assert.NotEqual(t, "user_42", owners[1])
	})

	t.Run("opaque bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer opaque")

		session, rr := captureSession(t, auth.NeedAuth(), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, session)
		assert.Equal(t, "opaque", session.Token)
		assert.Equal(t, TokenOwner("opaque"), session.Owner)
		assert.False(t, session.FromCookie)
	})

	t.Run("no token", func(t *testing.T) {
		session, rr := captureSession(t, auth.NeedAuth(), httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Please sign-in")
		assert.Nil(t, session)
	})
}

func TestNeedAuth_WithVerification(t *testing.T) {
	svc := jwt.New("secret", time.Hour)
	auth := NewAuth(svc)

	valid, err := svc.NewToken("user_42")
	require.NoError(t, err)
	forged, err := jwt.New("other", time.Hour).NewToken("user_42")
	require.NoError(t, err)
	noSubject, err := svc.NewToken("")
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
		expectedOwner  string
	}{
		{"valid", valid, http.StatusOK, "user_42"},
		{"forged", forged, http.StatusUnauthorized, ""},
		{"no subject", noSubject, http.StatusUnauthorized, ""},
		{"garbage", "garbage", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			session, rr := captureSession(t, auth.NeedAuth(), req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedOwner == "" {
				assert.Nil(t, session)
				return
			}
			require.NotNil(t, session)
			assert.Equal(t, tt.expectedOwner, session.Owner)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	auth := NewAuth(jwt.New("secret", time.Hour))

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		session, rr := captureSession(t, auth.OptionalAuth(), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, session)
		assert.Empty(t, Token(req))
	})

	t.Run("invalid token is dropped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		session, rr := captureSession(t, auth.OptionalAuth(), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, session)
	})
}
