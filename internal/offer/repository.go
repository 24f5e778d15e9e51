package offer

//go:generate mockgen -destination=./repository_mock_test.go -package=offer -source=repository.go Repository

import (
	"context"

	"listingcrew/internal/domain"
)

// MutateFunc changes an offer in place. Returning an error aborts the write.
type MutateFunc func(o *domain.Offer) error

// Repository is the contract for offer storage.
type Repository interface {
	// CreateOffer assigns an id and stores o.
	CreateOffer(ctx context.Context, o *domain.Offer) error
	// GetOffer returns ErrNotFound when the offer doesn't exist.
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	// UpdateOffer applies fn to the stored offer and saves it atomically.
	UpdateOffer(ctx context.Context, id string, fn MutateFunc) (*domain.Offer, error)
	// DeleteOffer runs check against the stored offer and deletes it if check passes.
	DeleteOffer(ctx context.Context, id string, check MutateFunc) error
	// ListOffers returns offers where the given role's field equals uid,
	// newest first. An empty status means any status.
	ListOffers(ctx context.Context, uid string, role domain.Role, status domain.OfferStatus) ([]*domain.Offer, error)
	Close() error
}
