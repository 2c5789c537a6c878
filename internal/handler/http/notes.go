package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notewall/notewall/internal/service"
	"github.com/notewall/notewall/internal/utils"
)

// listNotes returns every note owned by the authenticated user, oldest
// first. A user without notes gets an empty array, not null.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	notes, err := h.services.ListNotes(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	note, err := h.services.GetNote(r.Context(), userID, chi.URLParam(r, "noteID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, service.ErrNoteTitleRequired)
		return
	}

	note, err := h.services.CreateNote(r.Context(), userID, req.Title, req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

// updateNote replaces the note's title and text. A request without a text
// field clears the body, there is no partial merge.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, service.ErrNoteTitleRequired)
		return
	}

	note, err := h.services.UpdateNote(r.Context(), userID, chi.URLParam(r, "noteID"), req.Title, req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	if err := h.services.DeleteNote(r.Context(), userID, chi.URLParam(r, "noteID")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
