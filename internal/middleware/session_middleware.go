package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/sessions"
	"github.com/homeseek/backend/internal/utils"
)

// SessionHeader is the plain header the front-end sends the token in.
// Not a cookie, not a bearer scheme.
const SessionHeader = "session_id"

type contextKey string

const ContextKeySession = contextKey("session")

// SessionMiddleware resolves the session_id header against the store
// and injects the session into the request context. All session
// failures answer 400, which is the convention the existing client
// depends on.
func SessionMiddleware(store *sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if token == "" {
				utils.RespondError(w, http.StatusBadRequest, "Unable to retrieve user session",
					errors.New("requires header: 'session_id'"))
				return
			}

			session, err := store.Resolve(token)
			if err != nil {
				utils.RespondError(w, http.StatusBadRequest, "Unable to retrieve user session", err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed by SessionMiddleware.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(models.Session)
	return session, ok
}
