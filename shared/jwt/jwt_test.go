package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/learnhouse-dev/learnhouse/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndDecodeToken(t *testing.T) {
	svc := New("secret", time.Hour)

	tokenStr, err := svc.NewToken("user_42")
	require.NoError(t, err)

	token, err := svc.DecodeToken(tokenStr)
	require.NoError(t, err)

	sub, err := Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "user_42", sub)
}

func TestDecodeToken_Invalid(t *testing.T) {
	good, err := New("secret", time.Hour).NewToken("user_42")
	require.NoError(t, err)
	expired, err := New("secret", -time.Hour).NewToken("user_42")
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user_42"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong key", good},
		{"expired", expired},
		{"none algorithm", none},
		{"garbage", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New("other", time.Hour)
			if tt.name != "wrong key" {
				svc = New("secret", time.Hour)
			}

			_, err := svc.DecodeToken(tt.token)

			assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCodeOf(err))
		})
	}
}

func TestSubject_Nil(t *testing.T) {
	_, err := Subject(nil)
	assert.Error(t, err)
}
