package chat

//go:generate mockgen -destination=./service_mock_test.go -package=chat -source=service.go Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Service defines the business logic for the ChatService.
type Service interface {
	// FindOrCreateThread opens (or reopens) the thread between actor and otherUID.
	FindOrCreateThread(ctx context.Context, actor auth.Identity, otherUID string) (*domain.ChatThread, error)
	GetThread(ctx context.Context, actor auth.Identity, threadID string) (*domain.ChatThread, error)
	ListThreads(ctx context.Context, actor auth.Identity) ([]ThreadView, error)

	SendMessage(ctx context.Context, actor auth.Identity, threadID string, in SendInput) (*domain.ChatMessage, error)
	RecentMessages(ctx context.Context, actor auth.Identity, threadID string) ([]domain.ChatMessage, error)
	// Subscribe blocks, calling fn with the recent window on every change.
	Subscribe(ctx context.Context, actor auth.Identity, threadID string, fn WindowFunc) error
}

type Options struct {
	Now func() time.Time
}

type service struct {
	repo       Repository
	userClient UserClient
	now        func() time.Time
	validate   *validator.Validate
}

// NewService is the constructor for the ChatService.
func NewService(r Repository, uc UserClient, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:       r,
		userClient: uc,
		now:        opts.Now,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// FindOrCreateThread places actor on its own role's side and the other
// user on the opposite one.
func (s *service) FindOrCreateThread(ctx context.Context, actor auth.Identity, otherUID string) (*domain.ChatThread, error) {
	if otherUID == "" || otherUID == actor.UID {
		return nil, fmt.Errorf("%w: a thread needs another participant", ErrInvalidInput)
	}

	t := &domain.ChatThread{LastTime: s.now().UTC()}
	if actor.Vendor {
		t.Vendor, t.Agent = actor.UID, otherUID
	} else {
		t.Agent, t.Vendor = actor.UID, otherUID
	}

	thread, err := s.repo.FindOrCreateThread(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("could not open thread: %w", err)
	}
	return thread, nil
}

func (s *service) GetThread(ctx context.Context, actor auth.Identity, threadID string) (*domain.ChatThread, error) {
	t, err := s.repo.GetThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("could not get thread: %w", err)
	}
	if !IsParticipant(t, actor.UID) {
		return nil, ErrForbidden
	}
	return t, nil
}

// ListThreads attaches the counterpart's profile to each thread. A failed
// profile lookup still returns the threads.
func (s *service) ListThreads(ctx context.Context, actor auth.Identity) ([]ThreadView, error) {
	threads, err := s.repo.ListThreads(ctx, actor.UID, actor.Role())
	if err != nil {
		return nil, fmt.Errorf("could not list threads: %w", err)
	}

	views := make([]ThreadView, 0, len(threads))
	if len(threads) == 0 {
		return views, nil
	}

	uids := make([]string, 0, len(threads))
	for _, t := range threads {
		uids = append(uids, counterpart(t, actor.UID))
	}
	profiles, err := s.userClient.GetUsersInfo(ctx, uids)
	if err != nil {
		slog.WarnContext(ctx, "could not look up thread participants", "uid", actor.UID, "error", err)
	}

	for _, t := range threads {
		v := ThreadView{ChatThread: t}
		if p, ok := profiles[counterpart(t, actor.UID)]; ok {
			v.Counterpart = &p
		}
		views = append(views, v)
	}
	return views, nil
}

func counterpart(t *domain.ChatThread, uid string) string {
	if uid == t.Agent {
		return t.Vendor
	}
	return t.Agent
}

func (s *service) SendMessage(ctx context.Context, actor auth.Identity, threadID string, in SendInput) (*domain.ChatMessage, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.GetThread(ctx, actor, threadID); err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		Sender:  actor.UID,
		Text:    in.Text,
		Time:    s.now().UTC(),
		Status:  StatusSent,
		OfferID: in.OfferID,
	}
	if err := s.repo.AddMessage(ctx, threadID, msg); err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}
	slog.DebugContext(ctx, "message sent", "thread_id", threadID, "uid", actor.UID, "offer_id", in.OfferID)
	return msg, nil
}

func (s *service) RecentMessages(ctx context.Context, actor auth.Identity, threadID string) ([]domain.ChatMessage, error) {
	if _, err := s.GetThread(ctx, actor, threadID); err != nil {
		return nil, err
	}
	msgs, err := s.repo.RecentMessages(ctx, threadID, RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("could not read messages: %w", err)
	}
	return msgs, nil
}

func (s *service) Subscribe(ctx context.Context, actor auth.Identity, threadID string, fn WindowFunc) error {
	if _, err := s.GetThread(ctx, actor, threadID); err != nil {
		return err
	}
	return s.repo.WatchMessages(ctx, threadID, RecentWindow, fn)
}
