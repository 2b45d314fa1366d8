package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/anonbbs-dev/anonbbs/internal/domain"
	internal_errors "github.com/anonbbs-dev/anonbbs/internal/errors"
	"github.com/anonbbs-dev/anonbbs/internal/logger"
	"github.com/anonbbs-dev/anonbbs/internal/service"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// SessionCookieName matches the cookie the board has always issued.
const SessionCookieName = "user_session"

// Key to store the resolved identity in the request context
type key int

const userKey key = 0

// Session resolves the visitor's identity from the session cookie, minting
// a fresh one when the cookie is absent, stale or forged, and renews the
// cookie on every response.
type Session struct {
	identity service.IdentityService
	ttl      time.Duration
	secure   bool
}

func NewSession(identity service.IdentityService, ttl time.Duration, secure bool) *Session {
	return &Session{identity: identity, ttl: ttl, secure: secure}
}

func (s *Session) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientAddr, err := utils.GetIP(r)
		if err != nil {
			clientAddr = r.RemoteAddr
		}

		var user domain.User
		resolved := false
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			user, err = s.identity.Resolve(r.Context(), cookie.Value, clientAddr)
			if err == nil {
				resolved = true
			} else if !isNotFound(err) {
				// store unavailable, not a stale cookie
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
		}
		if !resolved {
			user, err = s.identity.Mint(r.Context(), clientAddr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			logger.Log.Debug("minted new identity", "show_id", user.ShowId)
		}

		s.SetCookie(w, user.Session)

		ctx := ContextWithUser(r.Context(), &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetCookie (re)issues the session cookie. Called on every response so the
// expiry slides forward with activity.
func (s *Session) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ContextWithUser attaches an identity the way the session middleware
// does. Handlers downstream read it back with GetUserFromContext.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the identity the session middleware attached,
// or nil outside the middleware.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func isNotFound(err error) bool {
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}
