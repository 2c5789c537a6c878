package http

import (
	"net/http"
	"time"

	"github.com/notewall/notewall/models"
)

// setSessionCookie writes the session token as an HTTP-only cookie. The
// cookie max-age tracks the session's remaining lifetime, so every rolling
// refresh re-issues it. With CookieSecure on, the cookie switches to
// Secure plus SameSite=None for cross-site production deployments.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session *models.Session) {
	cookie := &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    session.Token.String(),
		Path:     "/",
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.cfg.CookieSecure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, cookie)
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.cfg.CookieSecure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, cookie)
}
