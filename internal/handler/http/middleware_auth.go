package http

import (
	"context"
	"net/http"

	"github.com/notewall/notewall/internal/service"
	"github.com/notewall/notewall/internal/utils"
)

// auth guards a route group behind the session cookie. A valid session puts
// the user ID on the request context and re-issues the cookie with the
// refreshed deadline (rolling expiration). Requests without a valid session
// never reach the wrapped handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cfg.SessionCookieName)
		if err != nil {
			h.writeError(w, r, service.ErrNotAuthenticated)
			return
		}

		session, err := h.services.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			h.clearSessionCookie(w)
			h.writeError(w, r, err)
			return
		}

		h.setSessionCookie(w, session)

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
