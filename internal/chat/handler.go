package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"listingcrew/internal/auth"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the ChatService.
type Handler struct {
	service Service
}

// NewHandler creates a new handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches all chat-related endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/threads", h.handleOpenThread)
	r.Get("/chat/threads", h.handleListThreads)
	r.Get("/chat/threads/{id}", h.handleGetThread)

	// Also called by the OfferService on behalf of the offer's issuer.
	r.Post("/chat/threads/{id}/messages", h.handleSendMessage)
	r.Get("/chat/threads/{id}/messages", h.handleRecentMessages)

	// Live window over a websocket.
	r.Get("/chat/threads/{id}/ws", h.handleWebsocket)
}

// --- DTOs ---

type openThreadRequest struct {
	OtherUID string `json:"otherUid"`
}

func (h *Handler) handleOpenThread(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req openThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	t, err := h.service.FindOrCreateThread(r.Context(), id, req.OtherUID)
	if err != nil {
		writeServiceError(w, r, err, "Could not open thread")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleListThreads(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	threads, err := h.service.ListThreads(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Could not list threads")
		return
	}
	writeJSON(w, http.StatusOK, threads)
}

func (h *Handler) handleGetThread(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	t, err := h.service.GetThread(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not get thread")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in SendInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	msg, err := h.service.SendMessage(r.Context(), id, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, r, err, "Could not send message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleRecentMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	msgs, err := h.service.RecentMessages(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
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
		writeError(w, http.StatusNotFound, "Thread not found")
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
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
