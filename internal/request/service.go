package request

//go:generate mockgen -destination=./service_mock_test.go -package=request -source=service.go Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listingcrew/internal/auth"
	"listingcrew/internal/catalog"
	"listingcrew/internal/domain" // The shared domain models

	"github.com/go-playground/validator/v10"
)

// Service defines the request workflow: creating a request, picking vendors,
// pricing it and submitting it to the chosen vendors.
type Service interface {
	// Agent-facing operations
	CreateRequest(ctx context.Context, agent auth.Identity, in CreateInput) (*domain.ServiceRequest, error)
	ListRequests(ctx context.Context, agent auth.Identity) ([]*domain.ServiceRequest, error)
	SelectVendor(ctx context.Context, agent auth.Identity, requestID string, index int, vendorID string) (*domain.ServiceRequest, error)
	UnselectVendor(ctx context.Context, agent auth.Identity, requestID string, index int) (*domain.ServiceRequest, error)
	SetDuration(ctx context.Context, agent auth.Identity, requestID string, index, hours int) (*domain.ServiceRequest, error)
	Quote(ctx context.Context, agent auth.Identity, requestID string) (*Quote, error)
	SubmitRequest(ctx context.Context, agent auth.Identity, requestID string) (*domain.ServiceRequest, error)

	// Shared reads. Vendors see requests they are a candidate on and only their own order.
	GetRequest(ctx context.Context, actor auth.Identity, requestID string) (*domain.ServiceRequest, error)
	ListVendorOrders(ctx context.Context, actor auth.Identity, requestID string) ([]domain.SelectedVendorOrder, error)

	// Vendor-facing operations
	ListOrdersForVendor(ctx context.Context, vendor auth.Identity) ([]domain.SelectedVendorOrder, error)

	// SetCandidates is called by the vendor discovery process, not by users.
	SetCandidates(ctx context.Context, requestID string, index int, candidates []domain.VendorCandidate) (*domain.ServiceRequest, error)
}

// Options are the policy switches of the request workflow.
type Options struct {
	// UnselectLock enforces CanUnselect on UnselectVendor.
	UnselectLock bool
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// CreateInput is what an agent supplies to open a request.
type CreateInput struct {
	RequestName string          `json:"requestName" validate:"required,max=200"`
	Datetime    time.Time       `json:"datetime" validate:"required"`
	Location    domain.Location `json:"location"`
	Services    []ServiceInput  `json:"services" validate:"required,min=1,dive"`
}

// ServiceInput is one requested service. MaxPrice 0 means unlimited.
type ServiceInput struct {
	ServiceName string     `json:"serviceName" validate:"required,catalog"`
	MaxPrice    float64    `json:"maxPrice" validate:"gte=0"`
	Datetime    *time.Time `json:"datetime,omitempty"`
}

// service implements the Service interface.
type service struct {
	repo       Repository
	userClient UserClient
	opts       Options
	validate   *validator.Validate
}

// NewService is the constructor, injecting all required dependencies.
func NewService(r Repository, uc UserClient, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:       r,
		userClient: uc,
		opts:       opts,
		validate:   newValidator(),
	}
}

// newValidator returns a validator that knows the "catalog" tag. It panics
// if the tag cannot be registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
		return catalog.Valid(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("request: could not register catalog validation: %v", err))
	}
	return v
}

// CreateRequest validates the input and stores a new issued request.
func (s *service) CreateRequest(ctx context.Context, agent auth.Identity, in CreateInput) (*domain.ServiceRequest, error) {
	if agent.Vendor {
		return nil, fmt.Errorf("%w: vendors cannot open requests", ErrForbidden)
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Location.Lat < -90 || in.Location.Lat > 90 || in.Location.Lng < -180 || in.Location.Lng > 180 {
		return nil, fmt.Errorf("%w: location out of range", ErrInvalidInput)
	}

	req := &domain.ServiceRequest{
		UserID:      agent.UID,
		RequestName: in.RequestName,
		Location:    in.Location,
		Datetime:    in.Datetime.UTC(),
		Status:      domain.RequestIssued, // all new requests start as issued
		CreatedAt:   s.opts.Now().UTC(),
	}
	for _, si := range in.Services {
		req.Services = append(req.Services, domain.RequestedService{
			ServiceName: si.ServiceName,
			MaxPrice:    si.MaxPrice,
			Datetime:    si.Datetime,
			Duration:    1,
			Candidates:  []domain.VendorCandidate{},
		})
	}

	// The broker is copied from the agent's profile. A lookup failure
	// shouldn't block the agent, so it's only logged.
	profiles, err := s.userClient.GetUsersInfo(ctx, []string{agent.UID})
	if err != nil {
		slog.WarnContext(ctx, "could not look up broker for new request", "uid", agent.UID, "error", err)
	} else if p, ok := profiles[agent.UID]; ok {
		req.BrokerID = p.BrokerID
	}

	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("could not save request: %w", err)
	}
	slog.InfoContext(ctx, "request created", "request_id", req.ID, "uid", agent.UID, "services", len(req.Services))
	return req, nil
}

func (s *service) ListRequests(ctx context.Context, agent auth.Identity) ([]*domain.ServiceRequest, error) {
	reqs, err := s.repo.ListRequestsByAgent(ctx, agent.UID)
	if err != nil {
		return nil, fmt.Errorf("could not list requests: %w", err)
	}
	return reqs, nil
}

// GetRequest returns the request to its owner or to a vendor in its candidate pool.
func (s *service) GetRequest(ctx context.Context, actor auth.Identity, requestID string) (*domain.ServiceRequest, error) {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != actor.UID && !(actor.Vendor && IsCandidate(req, actor.UID)) {
		return nil, ErrForbidden
	}
	return req, nil
}

// mutateOwned runs fn inside the repository's update after checking ownership.
func (s *service) mutateOwned(ctx context.Context, agent auth.Identity, requestID string, fn MutateFunc) (*domain.ServiceRequest, error) {
	return s.repo.UpdateRequest(ctx, requestID, func(req *domain.ServiceRequest) error {
		if req.UserID != agent.UID {
			return ErrForbidden
		}
		return fn(req)
	})
}

func (s *service) SelectVendor(ctx context.Context, agent auth.Identity, requestID string, index int, vendorID string) (*domain.ServiceRequest, error) {
	return s.mutateOwned(ctx, agent, requestID, func(req *domain.ServiceRequest) error {
		return SelectVendor(req, index, vendorID)
	})
}

func (s *service) UnselectVendor(ctx context.Context, agent auth.Identity, requestID string, index int) (*domain.ServiceRequest, error) {
	return s.mutateOwned(ctx, agent, requestID, func(req *domain.ServiceRequest) error {
		if s.opts.UnselectLock && !CanUnselect(req, s.opts.Now()) {
			return ErrUnselectLocked
		}
		return UnselectVendor(req, index)
	})
}

func (s *service) SetDuration(ctx context.Context, agent auth.Identity, requestID string, index, hours int) (*domain.ServiceRequest, error) {
	return s.mutateOwned(ctx, agent, requestID, func(req *domain.ServiceRequest) error {
		return SetDuration(req, index, hours)
	})
}

func (s *service) Quote(ctx context.Context, agent auth.Identity, requestID string) (*Quote, error) {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != agent.UID {
		return nil, ErrForbidden
	}
	q := ComputeQuote(req)
	return &q, nil
}

// SubmitRequest marks the selected services pending and regenerates the
// vendor orders. Submitting again is allowed and replaces the orders.
func (s *service) SubmitRequest(ctx context.Context, agent auth.Identity, requestID string) (*domain.ServiceRequest, error) {
	var orderCount int
	req, err := s.repo.SubmitRequest(ctx, requestID, func(req *domain.ServiceRequest) ([]domain.SelectedVendorOrder, error) {
		if req.UserID != agent.UID {
			return nil, ErrForbidden
		}
		if err := MarkSubmitted(req, s.opts.Now()); err != nil {
			return nil, err
		}
		orders := BuildVendorOrders(req)
		orderCount = len(orders)
		return orders, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not submit request: %w", err)
	}

	slog.InfoContext(ctx, "request submitted", "request_id", requestID, "vendor_orders", orderCount)
	return req, nil
}

// ListVendorOrders gives the owner every order and a vendor only its own.
func (s *service) ListVendorOrders(ctx context.Context, actor auth.Identity, requestID string) ([]domain.SelectedVendorOrder, error) {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != actor.UID && !actor.Vendor {
		return nil, ErrForbidden
	}

	orders, err := s.repo.ListVendorOrders(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("could not list vendor orders: %w", err)
	}
	if req.UserID == actor.UID {
		return orders, nil
	}

	mine := []domain.SelectedVendorOrder{}
	for _, o := range orders {
		if o.VendorID == actor.UID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func (s *service) ListOrdersForVendor(ctx context.Context, vendor auth.Identity) ([]domain.SelectedVendorOrder, error) {
	if !vendor.Vendor {
		return nil, fmt.Errorf("%w: only vendors receive orders", ErrForbidden)
	}
	orders, err := s.repo.ListOrdersForVendor(ctx, vendor.UID)
	if err != nil {
		return nil, fmt.Errorf("could not list orders: %w", err)
	}
	return orders, nil
}

func (s *service) SetCandidates(ctx context.Context, requestID string, index int, candidates []domain.VendorCandidate) (*domain.ServiceRequest, error) {
	return s.repo.UpdateRequest(ctx, requestID, func(req *domain.ServiceRequest) error {
		return SetCandidates(req, index, candidates)
	})
}
