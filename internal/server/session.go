package server

import (
	"net/http"
	"time"

	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/session"
)

// SessionMiddleware resolves the visitor's session ID from the X-Session-ID
// header or the session cookie, issuing a new cookie when neither is usable.
func SessionMiddleware(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(session.HeaderName)
			if !session.ValidID(id) {
				id = ""
				if c, err := r.Cookie(session.CookieName); err == nil && session.ValidID(c.Value) {
					id = c.Value
				}
			}

			issued := false
			if id == "" {
				id = session.NewID()
				issued = true
				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(session.HeaderName, id)

			ctx := session.WithID(r.Context(), id)
			ctx = logger.WithSessionID(ctx, id)
			if issued {
				logger.FromContext(ctx).Debug(LogMsgSessionIssued)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
