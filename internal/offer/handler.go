package offer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the OfferService.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the offer endpoints. They expect the auth
// middleware to have run.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/offers", h.handleCreate)
	r.Get("/offers", h.handleList)
	r.Get("/offers/{id}", h.handleGet)
	r.Post("/offers/{id}/accept", h.handleAccept)
	r.Post("/offers/{id}/reject", h.handleReject)
	r.Delete("/offers/{id}", h.handleDelete)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	o, err := h.service.Create(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create offer")
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	st := domain.OfferStatus(r.URL.Query().Get("status"))
	offers, err := h.service.ListForUser(r.Context(), id, st)
	if err != nil {
		writeServiceError(w, r, err, "Failed to list offers")
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	v, err := h.service.Get(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to get offer")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	o, err := h.service.Accept(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to accept offer")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	o, err := h.service.Reject(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to reject offer")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete offer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, err := auth.FromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return auth.Identity{}, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Offer not found")
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotCounterparty):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAlreadyResolved), errors.Is(err, ErrDeleteAccepted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPayoutAccountMissing):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
