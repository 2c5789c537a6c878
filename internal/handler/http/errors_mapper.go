package http

import (
	"errors"
	"net/http"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/service"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/internal/utils"
)

// errorMapping pairs the HTTP status with the exact message clients see.
// Internal error details never leave the server.
type errorMapping struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorMapping{
	service.ErrMissingParameters:  {http.StatusBadRequest, "Parameters missing."},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrInvalidNoteID:      {http.StatusBadRequest, "Invalid Note Id"},
	service.ErrNoteTitleRequired:  {http.StatusBadRequest, "Note must have a title"},
	// Ownership failures answer 401 rather than 403 to match the
	// long-standing public contract of this API.
	service.ErrNotNoteOwner:      {http.StatusUnauthorized, "You cannot access this note"},
	service.ErrNotAuthenticated:  {http.StatusUnauthorized, "User not authenticated."},
	service.ErrSessionExpired:    {http.StatusUnauthorized, "User not authenticated."},
	store.ErrUsernameTaken:       {http.StatusConflict, "Username is already in use. Please choose a different one or log in instead."},
	store.ErrEmailTaken:          {http.StatusConflict, "Email is already in use. Please choose a different one or log in instead."},
	store.ErrNoUserWasFound:      {http.StatusNotFound, "User not found"},
	store.ErrNoteNotFound:        {http.StatusNotFound, "Note not found"},
}

func responseFromError(err error) errorMapping {
	for target, mapping := range errorResponseMap {
		if errors.Is(err, target) {
			return mapping
		}
	}

	return errorMapping{http.StatusInternalServerError, "An unknown error occurred"}
}

// writeError funnels every handler failure through the error map. Unmapped
// errors are logged server-side and collapse to a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapping := responseFromError(err)

	if mapping.status == http.StatusInternalServerError {
		logger.FromRequest(r).Error().Err(err).Msg("request failed")
	}

	utils.WriteJSON(w, errorResponse{Error: mapping.message}, mapping.status)
}
