package offer

//go:generate mockgen -destination=./service_mock_test.go -package=offer -source=service.go Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listingcrew/internal/auth"
	"listingcrew/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Service defines the offer workflow between an agent and a vendor.
type Service interface {
	Create(ctx context.Context, actor auth.Identity, in CreateInput) (*domain.Offer, error)
	Get(ctx context.Context, actor auth.Identity, id string) (*View, error)
	Accept(ctx context.Context, actor auth.Identity, id string) (*domain.Offer, error)
	Reject(ctx context.Context, actor auth.Identity, id string) (*domain.Offer, error)
	Delete(ctx context.Context, actor auth.Identity, id string) error
	ListForUser(ctx context.Context, actor auth.Identity, status domain.OfferStatus) ([]*domain.Offer, error)
}

// Options are the policy switches of the offer workflow.
type Options struct {
	// RequirePayoutAccount stops vendors without a linked payout account from issuing offers.
	RequirePayoutAccount bool
	Policy               Policy
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// CreateInput is what the issuing party supplies. Costs is in the issuer's terms.
type CreateInput struct {
	CounterpartyID string    `json:"counterpartyId" validate:"required"`
	Costs          float64   `json:"costs" validate:"gt=0"`
	OfferDate      time.Time `json:"offerDate" validate:"required"`
	Message        string    `json:"message" validate:"max=2000"`
	ThreadID       string    `json:"threadId"`
	RequestID      string    `json:"requestId"`
}

// View is an offer as seen by one of its parties.
type View struct {
	*domain.Offer
	CanRespond bool `json:"canRespond"`
}

type service struct {
	repo       Repository
	userClient UserClient
	chatClient ChatClient
	opts       Options
	validate   *validator.Validate
}

func NewService(r Repository, uc UserClient, cc ChatClient, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:       r,
		userClient: uc,
		chatClient: cc,
		opts:       opts,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Create stores a pending offer issued by actor and, when a thread is
// given, announces it in that thread.
func (s *service) Create(ctx context.Context, actor auth.Identity, in CreateInput) (*domain.Offer, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.CounterpartyID == actor.UID {
		return nil, fmt.Errorf("%w: cannot make an offer to yourself", ErrInvalidInput)
	}

	o := &domain.Offer{
		ThreadID:  in.ThreadID,
		RequestID: in.RequestID,
		OfferDate: in.OfferDate.UTC(),
		Costs:     in.Costs,
		Issuer:    actor.Role(),
		Status:    domain.OfferPending,
		Message:   in.Message,
		CreatedAt: s.opts.Now().UTC(),
	}
	if actor.Vendor {
		o.VendorID, o.AgentID = actor.UID, in.CounterpartyID
	} else {
		o.AgentID, o.VendorID = actor.UID, in.CounterpartyID
	}

	if err := s.attachPayoutAccount(ctx, o); err != nil {
		return nil, err
	}
	if err := applyAmounts(o); err != nil {
		return nil, err
	}

	if err := s.repo.CreateOffer(ctx, o); err != nil {
		return nil, fmt.Errorf("could not save offer: %w", err)
	}
	slog.InfoContext(ctx, "offer created", "offer_id", o.ID, "issuer", o.Issuer, "vendor_id", o.VendorID, "agent_id", o.AgentID)

	// The offer is already saved, a chat failure must not undo it.
	if o.ThreadID != "" {
		if err := s.chatClient.PostOfferMessage(ctx, o.ThreadID, o.ID, offerMessageText(o)); err != nil {
			slog.WarnContext(ctx, "could not post offer message to chat", "offer_id", o.ID, "thread_id", o.ThreadID, "error", err)
		}
	}
	return o, nil
}

// attachPayoutAccount copies the vendor's payout account onto o.
func (s *service) attachPayoutAccount(ctx context.Context, o *domain.Offer) error {
	mustHave := s.opts.RequirePayoutAccount && o.Issuer == domain.RoleVendor

	profiles, err := s.userClient.GetUsersInfo(ctx, []string{o.VendorID})
	if err != nil {
		if mustHave {
			return fmt.Errorf("could not look up vendor payout account: %w", err)
		}
		slog.WarnContext(ctx, "could not look up vendor payout account", "vendor_id", o.VendorID, "error", err)
		return nil
	}

	o.VendorStripeAccountID = profiles[o.VendorID].StripeAccountID
	if o.VendorStripeAccountID == "" && mustHave {
		return ErrPayoutAccountMissing
	}
	return nil
}

func offerMessageText(o *domain.Offer) string {
	if o.Message != "" {
		return o.Message
	}
	return fmt.Sprintf("New offer: %.2f", o.WithTax)
}

func (s *service) Get(ctx context.Context, actor auth.Identity, id string) (*View, error) {
	o, err := s.repo.GetOffer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get offer: %w", err)
	}
	if !IsParty(o, actor.UID) {
		return nil, ErrForbidden
	}
	return &View{Offer: o, CanRespond: CanRespond(o, actor.UID)}, nil
}

func (s *service) Accept(ctx context.Context, actor auth.Identity, id string) (*domain.Offer, error) {
	return s.resolve(ctx, actor, id, domain.OfferAccepted)
}

func (s *service) Reject(ctx context.Context, actor auth.Identity, id string) (*domain.Offer, error) {
	return s.resolve(ctx, actor, id, domain.OfferRejected)
}

func (s *service) resolve(ctx context.Context, actor auth.Identity, id string, to domain.OfferStatus) (*domain.Offer, error) {
	var from domain.OfferStatus
	var again bool

	o, err := s.repo.UpdateOffer(ctx, id, func(o *domain.Offer) error {
		if !IsParty(o, actor.UID) {
			return ErrForbidden
		}
		from = o.Status
		var err error
		again, err = Resolve(o, to, actor.UID, s.opts.Now(), s.opts.Policy)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not %s offer: %w", verb(to), err)
	}

	if again {
		slog.WarnContext(ctx, "resolved offer moved again", "offer_id", id, "from", from, "to", to, "uid", actor.UID)
	} else {
		slog.InfoContext(ctx, "offer resolved", "offer_id", id, "status", to, "uid", actor.UID)
	}
	return o, nil
}

func verb(to domain.OfferStatus) string {
	if to == domain.OfferAccepted {
		return "accept"
	}
	return "reject"
}

func (s *service) Delete(ctx context.Context, actor auth.Identity, id string) error {
	err := s.repo.DeleteOffer(ctx, id, func(o *domain.Offer) error {
		if !IsParty(o, actor.UID) {
			return ErrForbidden
		}
		return CheckDeletable(o)
	})
	if err != nil {
		return fmt.Errorf("could not delete offer: %w", err)
	}
	slog.InfoContext(ctx, "offer deleted", "offer_id", id, "uid", actor.UID)
	return nil
}

func (s *service) ListForUser(ctx context.Context, actor auth.Identity, st domain.OfferStatus) ([]*domain.Offer, error) {
	switch st {
	case "", domain.OfferPending, domain.OfferAccepted, domain.OfferRejected, domain.OfferCompleted:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, st)
	}
	offers, err := s.repo.ListOffers(ctx, actor.UID, actor.Role(), st)
	if err != nil {
		return nil, fmt.Errorf("could not list offers: %w", err)
	}
	if offers == nil {
		offers = []*domain.Offer{}
	}
	return offers, nil
}
