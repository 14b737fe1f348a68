package session

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	sessionModel "github.com/quddos/vr-rehab-dashboard/internal/model/session"
	"github.com/quddos/vr-rehab-dashboard/pkg/utils"
)

// Store is the slice of the session gateway this handler needs. The
// production implementation is *store.Store; tests substitute stubs.
type Store interface {
	Insert(ctx context.Context, payload sessionModel.Payload) error
	List(ctx context.Context) ([]sessionModel.Session, error)
}

// Handler serves the /api/sessions read and write endpoints.
type Handler struct {
	store Store
}

// New creates a session handler backed by the given store.
func New(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the session endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.handleListSessions)
	r.Post("/sessions", h.handleCreateSession)
}

// handleListSessions returns every recorded session, newest first.
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.List(r.Context())
	if err != nil {
		ref := errorRef()
		log.Printf("[sessions][GET] ref=%s: %v", ref, err)
		utils.RespondError(w, http.StatusInternalServerError, "Unable to fetch sessions")
		return
	}

	if sessions == nil {
		// Keep the response an array, never null.
		sessions = []sessionModel.Session{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

// handleCreateSession validates the body and persists one session.
// Validation runs before any store interaction and reports the full
// issue set; store failures stay generic on the wire.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload, issues := sessionModel.Validate(input)
	if len(issues) > 0 {
		utils.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Invalid payload",
			"issues": issues,
		})
		return
	}

	if err := h.store.Insert(r.Context(), payload); err != nil {
		ref := errorRef()
		log.Printf("[sessions][POST] ref=%s: %v", ref, err)
		utils.RespondError(w, http.StatusInternalServerError, "Unable to store session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// errorRef produces a short reference logged next to 500 responses so a
// client report can be matched to the server-side error.
func errorRef() string {
	return uuid.NewString()[:8]
}
