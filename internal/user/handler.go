package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the UserService.
// It holds a dependency on the service layer.
type Handler struct {
	service Service
}

// NewHandler is the constructor for the Handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches all the user related endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Called by the client right after sign-in.
	r.Post("/users/register", h.handleRegister)
	r.Get("/users/profile", h.handleGetMyProfile)
	r.Put("/users/profile/payout-account", h.handleLinkPayoutAccount)

	// Batch profile lookups, also used by the other services.
	r.Post("/users/info", h.handleUsersInfo)
	r.Post("/users/info/v1", h.handleUsersInfoV1)

	r.Post("/brokers", h.handleCreateBroker)
	r.Get("/brokers/{id}/members", h.handleListMembers)
	r.Post("/brokers/{id}/members", h.handleAddMember)
}

// linkPayoutRequest is the DTO for PUT /users/profile/payout-account.
type linkPayoutRequest struct {
	AccountID string `json:"stripeAccountId"`
}

type usersInfoRequest struct {
	UIDs []string `json:"uids"`
}

type createBrokerRequest struct {
	Name string `json:"name"`
}

type addMemberRequest struct {
	UID  string            `json:"uid"`
	Role domain.BrokerRole `json:"role"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	u, err := h.service.Register(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Could not register user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleGetMyProfile fetches the profile for the authenticated user.
func (h *Handler) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	u, err := h.service.Me(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Could not retrieve profile")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleLinkPayoutAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req linkPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	u, err := h.service.LinkPayoutAccount(r.Context(), id, req.AccountID)
	if err != nil {
		writeServiceError(w, r, err, "Could not link payout account")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleUsersInfo(w http.ResponseWriter, r *http.Request) {
	var req usersInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profiles, err := h.service.GetUsersInfo(r.Context(), req.UIDs)
	if err != nil {
		writeServiceError(w, r, err, "Could not look up users")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) handleUsersInfoV1(w http.ResponseWriter, r *http.Request) {
	var req usersInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profiles, err := h.service.GetUsersInfoV1(r.Context(), req.UIDs)
	if err != nil {
		writeServiceError(w, r, err, "Could not look up users")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) handleCreateBroker(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req createBrokerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	b, err := h.service.CreateBroker(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, err, "Could not create broker")
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	m, err := h.service.AddMember(r.Context(), id, chi.URLParam(r, "id"), req.UID, req.Role)
	if err != nil {
		writeServiceError(w, r, err, "Could not add broker member")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "Could not list broker members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, err := auth.FromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Missing auth token")
		return auth.Identity{}, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "User profile not found")
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// writeJSON is a helper function to send json formatted responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper function to send a standardized json error message
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
