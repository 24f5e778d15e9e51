package offer

import (
	"context"
	"sort"
	"sync"

	"listingcrew/internal/domain"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	offers map[string]*domain.Offer
}

func NewMemoryRepository() Repository {
	return &memoryRepository{offers: make(map[string]*domain.Offer)}
}

func (m *memoryRepository) CreateOffer(ctx context.Context, o *domain.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o.ID = uuid.NewString()
	m.offers[o.ID] = cloneOffer(o)
	return nil
}

func (m *memoryRepository) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.offers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOffer(o), nil
}

func (m *memoryRepository) UpdateOffer(ctx context.Context, id string, fn MutateFunc) (*domain.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.offers[id]
	if !ok {
		return nil, ErrNotFound
	}
	o := cloneOffer(stored)
	if err := fn(o); err != nil {
		return nil, err
	}
	m.offers[id] = cloneOffer(o)
	return o, nil
}

func (m *memoryRepository) DeleteOffer(ctx context.Context, id string, check MutateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.offers[id]
	if !ok {
		return ErrNotFound
	}
	if err := check(cloneOffer(stored)); err != nil {
		return err
	}
	delete(m.offers, id)
	return nil
}

func (m *memoryRepository) ListOffers(ctx context.Context, uid string, role domain.Role, st domain.OfferStatus) ([]*domain.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Offer
	for _, o := range m.offers {
		owner := o.AgentID
		if role == domain.RoleVendor {
			owner = o.VendorID
		}
		if owner != uid || (st != "" && o.Status != st) {
			continue
		}
		out = append(out, cloneOffer(o))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) Close() error { return nil }

func cloneOffer(o *domain.Offer) *domain.Offer {
	c := *o
	if o.AcceptedAt != nil {
		t := *o.AcceptedAt
		c.AcceptedAt = &t
	}
	if o.RejectedAt != nil {
		t := *o.RejectedAt
		c.RejectedAt = &t
	}
	return &c
}
