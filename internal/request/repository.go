package request

//go:generate mockgen -destination=./repository_mock_test.go -package=request -source=repository.go Repository

import (
	"context"

	"listingcrew/internal/domain" // shared domain models
)

// MutateFunc changes a request in place. Returning an error aborts the write.
type MutateFunc func(req *domain.ServiceRequest) error

// SubmitFunc changes a request in place and returns the vendor orders that
// replace the request's current ones.
type SubmitFunc func(req *domain.ServiceRequest) ([]domain.SelectedVendorOrder, error)

// Repository defines the contract for storing requests and their selected
// vendor orders. Update and Submit are read-modify-write units: the store
// runs fn against the current document and persists the result atomically.
type Repository interface {
	// CreateRequest assigns an id and stores a new request.
	CreateRequest(ctx context.Context, req *domain.ServiceRequest) error
	// GetRequest fetches a single request. Returns ErrNotFound if missing.
	GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// ListRequestsByAgent returns an agent's requests, newest first.
	ListRequestsByAgent(ctx context.Context, agentID string) ([]*domain.ServiceRequest, error)
	// UpdateRequest applies fn to the stored request and saves it.
	UpdateRequest(ctx context.Context, id string, fn MutateFunc) (*domain.ServiceRequest, error)
	// SubmitRequest applies fn, saves the request, deletes every existing
	// vendor order and writes the new ones, all in one atomic unit.
	SubmitRequest(ctx context.Context, id string, fn SubmitFunc) (*domain.ServiceRequest, error)
	// ListVendorOrders returns the vendor orders of one request.
	ListVendorOrders(ctx context.Context, requestID string) ([]domain.SelectedVendorOrder, error)
	// ListOrdersForVendor returns every order addressed to a vendor.
	ListOrdersForVendor(ctx context.Context, vendorID string) ([]domain.SelectedVendorOrder, error)
	// Close releases the underlying client.
	Close() error
}
