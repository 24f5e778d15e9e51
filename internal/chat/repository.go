package chat

//go:generate mockgen -destination=./repository_mock_test.go -package=chat -source=repository.go Repository

import (
	"context"

	"listingcrew/internal/domain"
)

// WindowFunc receives the latest message window, newest first.
// Returning an error stops the watch.
type WindowFunc func(msgs []domain.ChatMessage) error

// Repository is the contract for thread and message storage.
type Repository interface {
	// FindOrCreateThread returns the stored thread with t's agent and
	// vendor, storing t when there is none.
	FindOrCreateThread(ctx context.Context, t *domain.ChatThread) (*domain.ChatThread, error)
	GetThread(ctx context.Context, id string) (*domain.ChatThread, error)
	// ListThreads returns the threads where uid is on the role's side, most recent first.
	ListThreads(ctx context.Context, uid string, role domain.Role) ([]*domain.ChatThread, error)

	// AddMessage stores msg and moves the thread's last_text/last_time in one write.
	AddMessage(ctx context.Context, threadID string, msg *domain.ChatMessage) error
	RecentMessages(ctx context.Context, threadID string, limit int) ([]domain.ChatMessage, error)
	// WatchMessages calls fn with the current window and again after every
	// change, until ctx is done or fn fails.
	WatchMessages(ctx context.Context, threadID string, limit int, fn WindowFunc) error

	Close() error
}
