package user

//go:generate mockgen -destination=./service_mock_test.go -package=user -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain" // Shared domain models

	"github.com/go-playground/validator/v10"
)

// MaxInfoBatch caps the uids of one profile lookup.
const MaxInfoBatch = 100

// Service defines the interface for the user service's business logic.
type Service interface {
	// Register creates or refreshes the caller's profile from its token claims.
	Register(ctx context.Context, id auth.Identity) (*domain.User, error)
	Me(ctx context.Context, id auth.Identity) (*domain.User, error)
	// LinkPayoutAccount records the vendor's payout account id.
	LinkPayoutAccount(ctx context.Context, id auth.Identity, accountID string) (*domain.User, error)

	// GetUsersInfo returns public profiles in request order, skipping unknown uids.
	GetUsersInfo(ctx context.Context, uids []string) ([]domain.PublicProfile, error)
	// GetUsersInfoV1 returns the same profiles keyed by uid.
	GetUsersInfoV1(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error)

	CreateBroker(ctx context.Context, id auth.Identity, name string) (*domain.Broker, error)
	AddMember(ctx context.Context, id auth.Identity, brokerID, uid string, role domain.BrokerRole) (*domain.BrokerMembership, error)
	ListMembers(ctx context.Context, id auth.Identity, brokerID string) ([]domain.BrokerMembership, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	repo     Repository // It depends on the repository
	validate *validator.Validate
}

// NewService is the constructor for the service injecting the repository.
func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

// Register upserts the profile. Identity fields always follow the token.
func (s *service) Register(ctx context.Context, id auth.Identity) (*domain.User, error) {
	u := &domain.User{
		UID:         id.UID,
		Email:       id.Email,
		DisplayName: id.DisplayName,
		PhotoURL:    id.PhotoURL,
		IsVendor:    id.Vendor,
	}
	if err := s.repo.UpsertUser(ctx, u); err != nil {
		return nil, fmt.Errorf("service could not register user: %w", err)
	}
	slog.InfoContext(ctx, "user registered", "uid", u.UID, "vendor", u.IsVendor)
	return u, nil
}

// Me is a simple pass through to the repository.
func (s *service) Me(ctx context.Context, id auth.Identity) (*domain.User, error) {
	return s.repo.GetUser(ctx, id.UID)
}

func (s *service) LinkPayoutAccount(ctx context.Context, id auth.Identity, accountID string) (*domain.User, error) {
	if !id.Vendor {
		return nil, fmt.Errorf("%w: only vendors receive payouts", ErrForbidden)
	}
	if err := s.validate.Var(accountID, "required,startswith=acct_,max=255"); err != nil {
		return nil, fmt.Errorf("%w: payout account id must look like acct_...", ErrInvalidInput)
	}

	if err := s.repo.SetStripeAccount(ctx, id.UID, accountID); err != nil {
		return nil, fmt.Errorf("could not link payout account: %w", err)
	}
	slog.InfoContext(ctx, "payout account linked", "uid", id.UID)
	return s.repo.GetUser(ctx, id.UID)
}

func (s *service) lookup(ctx context.Context, uids []string) ([]string, map[string]domain.PublicProfile, error) {
	if len(uids) > MaxInfoBatch {
		return nil, nil, fmt.Errorf("%w: at most %d uids per lookup", ErrInvalidInput, MaxInfoBatch)
	}

	seen := make(map[string]bool, len(uids))
	unique := make([]string, 0, len(uids))
	for _, uid := range uids {
		if uid != "" && !seen[uid] {
			seen[uid] = true
			unique = append(unique, uid)
		}
	}
	if len(unique) == 0 {
		return unique, map[string]domain.PublicProfile{}, nil
	}

	users, err := s.repo.GetUsers(ctx, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("could not look up users: %w", err)
	}
	profiles := make(map[string]domain.PublicProfile, len(users))
	for _, u := range users {
		profiles[u.UID] = domain.PublicProfile{
			UID:             u.UID,
			DisplayName:     u.DisplayName,
			PhotoURL:        u.PhotoURL,
			IsVendor:        u.IsVendor,
			StripeAccountID: u.StripeAccountID,
			BrokerID:        u.BrokerID,
		}
	}
	return unique, profiles, nil
}

func (s *service) GetUsersInfo(ctx context.Context, uids []string) ([]domain.PublicProfile, error) {
	order, profiles, err := s.lookup(ctx, uids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicProfile, 0, len(profiles))
	for _, uid := range order {
		if p, ok := profiles[uid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) GetUsersInfoV1(ctx context.Context, uids []string) (map[string]domain.PublicProfile, error) {
	_, profiles, err := s.lookup(ctx, uids)
	return profiles, err
}

// CreateBroker opens a brokerage with the calling agent as its admin.
func (s *service) CreateBroker(ctx context.Context, id auth.Identity, name string) (*domain.Broker, error) {
	if id.Vendor {
		return nil, fmt.Errorf("%w: vendors cannot create brokers", ErrForbidden)
	}
	if err := s.validate.Var(name, "required,max=200"); err != nil {
		return nil, fmt.Errorf("%w: broker name is required", ErrInvalidInput)
	}

	b := &domain.Broker{Name: name}
	if err := s.repo.CreateBroker(ctx, b, id.UID); err != nil {
		return nil, fmt.Errorf("could not create broker: %w", err)
	}
	slog.InfoContext(ctx, "broker created", "broker_id", b.BrokerID, "admin", id.UID)
	return b, nil
}

// AddMember lets a broker admin add or re-role a member.
func (s *service) AddMember(ctx context.Context, id auth.Identity, brokerID, uid string, role domain.BrokerRole) (*domain.BrokerMembership, error) {
	if role != domain.BrokerAdmin && role != domain.BrokerMember {
		return nil, fmt.Errorf("%w: role must be admin or member", ErrInvalidInput)
	}
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}
	if err := s.requireRole(ctx, brokerID, id.UID, domain.BrokerAdmin); err != nil {
		return nil, err
	}

	m := domain.BrokerMembership{BrokerID: brokerID, UID: uid, Role: role}
	if err := s.repo.AddMember(ctx, m); err != nil {
		return nil, fmt.Errorf("could not add broker member: %w", err)
	}
	slog.InfoContext(ctx, "broker member added", "broker_id", brokerID, "uid", uid, "role", role, "by", id.UID)
	return &m, nil
}

func (s *service) ListMembers(ctx context.Context, id auth.Identity, brokerID string) ([]domain.BrokerMembership, error) {
	if err := s.requireRole(ctx, brokerID, id.UID, ""); err != nil {
		return nil, err
	}
	members, err := s.repo.ListMembers(ctx, brokerID)
	if err != nil {
		return nil, fmt.Errorf("could not list broker members: %w", err)
	}
	return members, nil
}

// requireRole checks that uid belongs to the broker, with role when it is set.
func (s *service) requireRole(ctx context.Context, brokerID, uid string, role domain.BrokerRole) error {
	m, err := s.repo.GetMembership(ctx, brokerID, uid)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: not a member of this broker", ErrForbidden)
	}
	if err != nil {
		return fmt.Errorf("could not check broker membership: %w", err)
	}
	if role != "" && m.Role != role {
		return fmt.Errorf("%w: broker %s role required", ErrForbidden, role)
	}
	return nil
}
