package chat

import (
	"context"
	"sort"
	"sync"

	"listingcrew/internal/domain"

	"github.com/google/uuid"
)

// memoryRepository keeps threads in process and fans changes out to
// watchers over per-subscriber channels.
type memoryRepository struct {
	mu       sync.RWMutex
	threads  map[string]*domain.ChatThread
	messages map[string][]domain.ChatMessage // oldest first
	watchers map[string]map[chan struct{}]struct{}
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		threads:  make(map[string]*domain.ChatThread),
		messages: make(map[string][]domain.ChatMessage),
		watchers: make(map[string]map[chan struct{}]struct{}),
	}
}

func (m *memoryRepository) FindOrCreateThread(ctx context.Context, t *domain.ChatThread) (*domain.ChatThread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.threads {
		if existing.Agent == t.Agent && existing.Vendor == t.Vendor {
			c := *existing
			return &c, nil
		}
	}

	stored := *t
	stored.ID = uuid.NewString()
	m.threads[stored.ID] = &stored
	c := stored
	return &c, nil
}

func (m *memoryRepository) GetThread(ctx context.Context, id string) (*domain.ChatThread, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.threads[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *t
	return &c, nil
}

func (m *memoryRepository) ListThreads(ctx context.Context, uid string, role domain.Role) ([]*domain.ChatThread, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.ChatThread
	for _, t := range m.threads {
		side := t.Agent
		if role == domain.RoleVendor {
			side = t.Vendor
		}
		if side == uid {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastTime.After(out[j].LastTime)
	})
	return out, nil
}

func (m *memoryRepository) AddMessage(ctx context.Context, threadID string, msg *domain.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.threads[threadID]
	if !ok {
		return ErrNotFound
	}
	msg.ID = uuid.NewString()
	msg.ThreadID = threadID
	m.messages[threadID] = append(m.messages[threadID], *msg)
	t.LastText = msg.Text
	t.LastTime = msg.Time

	for ch := range m.watchers[threadID] {
		select {
		case ch <- struct{}{}:
		default: // a change is already pending for this watcher
		}
	}
	return nil
}

func (m *memoryRepository) RecentMessages(ctx context.Context, threadID string, limit int) ([]domain.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.window(threadID, limit), nil
}

// window must be called with mu held.
func (m *memoryRepository) window(threadID string, limit int) []domain.ChatMessage {
	all := m.messages[threadID]
	out := make([]domain.ChatMessage, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out
}

func (m *memoryRepository) WatchMessages(ctx context.Context, threadID string, limit int, fn WindowFunc) error {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	if m.watchers[threadID] == nil {
		m.watchers[threadID] = make(map[chan struct{}]struct{})
	}
	m.watchers[threadID][ch] = struct{}{}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.watchers[threadID], ch)
		if len(m.watchers[threadID]) == 0 {
			delete(m.watchers, threadID)
		}
		m.mu.Unlock()
	}()

	for {
		msgs, _ := m.RecentMessages(ctx, threadID, limit)
		if err := fn(msgs); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

func (m *memoryRepository) Close() error { return nil }
