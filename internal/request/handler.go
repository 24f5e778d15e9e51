package request

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the RequestService.
type Handler struct {
	service Service
}

// NewHandler creates a new Handler, injecting the service.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the user-facing endpoints. They expect the auth
// middleware to have run.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Agent facing routes
	r.Post("/requests", h.handleCreateRequest)
	r.Get("/requests", h.handleListRequests)
	r.Get("/requests/{id}", h.handleGetRequest)
	r.Get("/requests/{id}/quote", h.handleQuote)
	r.Post("/requests/{id}/submit", h.handleSubmit)
	r.Post("/requests/{id}/services/{index}/select", h.handleSelectVendor)
	r.Post("/requests/{id}/services/{index}/unselect", h.handleUnselectVendor)
	r.Put("/requests/{id}/services/{index}/duration", h.handleSetDuration)

	// Shared between the agent and the vendors on the request
	r.Get("/requests/{id}/vendors", h.handleListVendorOrders)

	// Vendor facing routes
	r.Get("/orders", h.handleListOrdersForVendor)
}

// RegisterInternalRoutes attaches the endpoints used by other backend processes.
func (h *Handler) RegisterInternalRoutes(r chi.Router) {
	r.Put("/internal/requests/{id}/services/{index}/candidates", h.handleSetCandidates)
}

// SelectVendorPayload is the DTO for POST /requests/{id}/services/{index}/select.
type SelectVendorPayload struct {
	VendorID string `json:"vendorId"`
}

// SetDurationPayload is the DTO for PUT /requests/{id}/services/{index}/duration.
type SetDurationPayload struct {
	Hours int `json:"hours"`
}

// SetCandidatesPayload is the DTO for the internal candidates endpoint.
type SetCandidatesPayload struct {
	Candidates []domain.VendorCandidate `json:"candidates"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req, err := h.service.CreateRequest(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, "Could not create request")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	reqs, err := h.service.ListRequests(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch requests")
		return
	}
	if reqs == nil {
		reqs = []*domain.ServiceRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	req, err := h.service.GetRequest(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch request")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	q, err := h.service.Quote(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not price request")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	req, err := h.service.SubmitRequest(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not submit request")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleSelectVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	index, ok := serviceIndex(w, r)
	if !ok {
		return
	}

	var payload SelectVendorPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.VendorID == "" {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	req, err := h.service.SelectVendor(r.Context(), id, chi.URLParam(r, "id"), index, payload.VendorID)
	if err != nil {
		writeServiceError(w, r, err, "Could not select vendor")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleUnselectVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	index, ok := serviceIndex(w, r)
	if !ok {
		return
	}

	req, err := h.service.UnselectVendor(r.Context(), id, chi.URLParam(r, "id"), index)
	if err != nil {
		writeServiceError(w, r, err, "Could not unselect vendor")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleSetDuration(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	index, ok := serviceIndex(w, r)
	if !ok {
		return
	}

	var payload SetDurationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	req, err := h.service.SetDuration(r.Context(), id, chi.URLParam(r, "id"), index, payload.Hours)
	if err != nil {
		writeServiceError(w, r, err, "Could not set duration")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleListVendorOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	orders, err := h.service.ListVendorOrders(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch vendor orders")
		return
	}
	if orders == nil {
		orders = []domain.SelectedVendorOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleListOrdersForVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	orders, err := h.service.ListOrdersForVendor(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch orders")
		return
	}
	if orders == nil {
		orders = []domain.SelectedVendorOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleSetCandidates(w http.ResponseWriter, r *http.Request) {
	index, ok := serviceIndex(w, r)
	if !ok {
		return
	}

	var payload SetCandidatesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	req, err := h.service.SetCandidates(r.Context(), chi.URLParam(r, "id"), index, payload.Candidates)
	if err != nil {
		writeServiceError(w, r, err, "Could not set candidates")
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// identity pulls the caller out of the context, writing a 401 when absent.
func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, err := auth.FromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return auth.Identity{}, false
	}
	return id, true
}

func serviceIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid service index")
		return 0, false
	}
	return index, true
}

// writeServiceError maps the package's sentinel errors to status codes.
// Anything unrecognised is logged and reported as a 500 with fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidIndex):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnselectLocked):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnknownVendor), errors.Is(err, ErrNoSelection),
		errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrNothingToSubmit):
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
