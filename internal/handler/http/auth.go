package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/service"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/internal/utils"
)

// signUp registers a new account and opens a session for it in the same
// response, so a fresh user is logged in immediately.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, service.ErrMissingParameters)
		return
	}

	user, err := h.services.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.CreateSession(r.Context(), user.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, user, http.StatusCreated)
}

// login verifies credentials and opens a session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, service.ErrMissingParameters)
		return
	}

	user, err := h.services.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.CreateSession(r.Context(), user.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, user, http.StatusCreated)
}

// logout destroys the presented session, if any, and clears the cookie.
// Calling logout without a session still answers 200.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.SessionCookieName); err == nil {
		if err := h.services.DestroySession(r.Context(), cookie.Value); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

// currentUser returns the account behind the authenticated session. A
// session pointing at a deleted account is destroyed and reported as
// unauthenticated rather than surfacing a dangling user ID.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	user, err := h.services.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromRequest(r).Warn().Int64("user_id", userID).Msg("session references deleted user")
			if cookie, cookieErr := r.Cookie(h.cfg.SessionCookieName); cookieErr == nil {
				_ = h.services.DestroySession(r.Context(), cookie.Value)
			}
			h.clearSessionCookie(w)
			h.writeError(w, r, service.ErrNotAuthenticated)
			return
		}

		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
