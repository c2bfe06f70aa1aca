package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	internal_errors "github.com/learnhouse-dev/learnhouse/shared/errors"
	jwt_internal "github.com/learnhouse-dev/learnhouse/shared/jwt"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
	"github.com/learnhouse-dev/learnhouse/shared/utils"
)

// AccessTokenCookie is the cookie the LearnHouse web app keeps its token in.
const AccessTokenCookie = "access_token_cookie"

// Session is the caller as seen by the frontend: the token forwarded to the
// backend and the owner key used for notifications.
type Session struct {
	Token      string
	Owner      string
	FromCookie bool
}

type key int

const sessionKey key = 0

// Auth resolves the session of a request. With a nil jwt service tokens are
// forwarded without verification, the backend stays the only judge and the
// owner is derived from the whole token.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a usable token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := a.extractSession(r)
			if err != nil {
				if err == errNoToken {
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
		})
	}
}

// OptionalAuth attaches a session when the token is usable and lets the
// request through anonymously otherwise.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := a.extractSession(r)
			if err != nil {
				if err != errNoToken {
					logger.Log.Debug("ignoring unusable token", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
		})
	}
}

func (a *Auth) extractSession(r *http.Request) (*Session, error) {
	session := &Session{}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		session.Token = cookie.Value
		session.FromCookie = true
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		session.Token = strings.TrimSpace(token)
	}

	if session.Token == "" {
		return nil, errNoToken
	}

	if a.jwtService == nil {
		session.Owner = TokenOwner(session.Token)
		return session, nil
	}

	token, err := a.jwtService.DecodeToken(session.Token)
	if err != nil {
		return nil, err
	}
	sub, err := jwt_internal.Subject(token)
	if err != nil || sub == "" {
		logger.Log.Error("invalid jwt claims")
		return nil, errInvalidClaims
	}
	session.Owner = sub
	return session, nil
}

// TokenOwner keys the session of a token that cannot be verified. Claims of
// such a token are never trusted, so only the exact same token maps to the
// same owner.
func TokenOwner(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = &internal_errors.ErrorWithStatusCode{Message: "Invalid token", StatusCode: http.StatusUnauthorized}
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetSession returns the request's session, or nil for anonymous requests.
func GetSession(r *http.Request) *Session {
	session, ok := r.Context().Value(sessionKey).(*Session)
	if !ok {
		return nil
	}
	return session
}

// Token returns the session token, or "" for anonymous requests.
func Token(r *http.Request) string {
	if s := GetSession(r); s != nil {
		return s.Token
	}
	return ""
}
