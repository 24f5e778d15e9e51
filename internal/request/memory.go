package request

import (
	"context"
	"sort"
	"sync"
	"time"

	"listingcrew/internal/domain"

	"github.com/google/uuid"
)

// memoryRepository keeps everything in process. Used for local dev and tests.
// A single mutex makes Update and Submit atomic.
type memoryRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.ServiceRequest
	orders   map[string][]domain.SelectedVendorOrder // by request id
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		requests: make(map[string]*domain.ServiceRequest),
		orders:   make(map[string][]domain.SelectedVendorOrder),
	}
}

func (m *memoryRepository) CreateRequest(ctx context.Context, req *domain.ServiceRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = uuid.NewString()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	m.requests[req.ID] = cloneRequest(req)
	return nil
}

func (m *memoryRepository) GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRequest(req), nil
}

func (m *memoryRepository) ListRequestsByAgent(ctx context.Context, agentID string) ([]*domain.ServiceRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.ServiceRequest
	for _, req := range m.requests {
		if req.UserID == agentID {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) UpdateRequest(ctx context.Context, id string, fn MutateFunc) (*domain.ServiceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	// work on a copy so a failing fn leaves the stored request untouched
	req := cloneRequest(stored)
	if err := fn(req); err != nil {
		return nil, err
	}
	m.requests[id] = cloneRequest(req)
	return req, nil
}

func (m *memoryRepository) SubmitRequest(ctx context.Context, id string, fn SubmitFunc) (*domain.ServiceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	req := cloneRequest(stored)
	orders, err := fn(req)
	if err != nil {
		return nil, err
	}

	m.requests[id] = cloneRequest(req)
	// replace, never append
	m.orders[id] = cloneOrders(orders)
	return req, nil
}

func (m *memoryRepository) ListVendorOrders(ctx context.Context, requestID string) ([]domain.SelectedVendorOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneOrders(m.orders[requestID]), nil
}

func (m *memoryRepository) ListOrdersForVendor(ctx context.Context, vendorID string) ([]domain.SelectedVendorOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.SelectedVendorOrder
	for _, orders := range m.orders {
		for _, o := range orders {
			if o.VendorID == vendorID {
				out = append(out, cloneOrders([]domain.SelectedVendorOrder{o})...)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out, nil
}

func (m *memoryRepository) Close() error { return nil }

func cloneRequest(req *domain.ServiceRequest) *domain.ServiceRequest {
	c := *req
	if req.SubmittedAt != nil {
		t := *req.SubmittedAt
		c.SubmittedAt = &t
	}
	c.Services = make([]domain.RequestedService, len(req.Services))
	for i, svc := range req.Services {
		if svc.Datetime != nil {
			t := *svc.Datetime
			svc.Datetime = &t
		}
		cands := make([]domain.VendorCandidate, len(svc.Candidates))
		for j, cand := range svc.Candidates {
			if cand.Attributes != nil {
				attrs := make(map[string]any, len(cand.Attributes))
				for k, v := range cand.Attributes {
					attrs[k] = v
				}
				cand.Attributes = attrs
			}
			cands[j] = cand
		}
		svc.Candidates = cands
		c.Services[i] = svc
	}
	return &c
}

func cloneOrders(orders []domain.SelectedVendorOrder) []domain.SelectedVendorOrder {
	if orders == nil {
		return nil
	}
	out := make([]domain.SelectedVendorOrder, len(orders))
	for i, o := range orders {
		o.Services = append([]domain.VendorOrderService(nil), o.Services...)
		out[i] = o
	}
	return out
}
