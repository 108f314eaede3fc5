package middleware

import (
	"context"
	"net/http"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/services/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the cookie carrying the local session token.
	SessionCookieName = "session"
)

// GetSession retrieves the signed-in session from the request context.
// Returns nil for anonymous visitors.
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// OptionalAuth returns middleware that resolves the session cookie if one
// is present. It never blocks: anonymous requests proceed with a nil
// session and each handler decides what that means.
func OptionalAuth(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFromCookie(r, sessions)
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromCookie(r *http.Request, sessions *session.Service) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	sess, err := sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}
