package offer

import (
	"errors"
	"time"

	"listingcrew/internal/domain"
)

var (
	ErrNotFound             = errors.New("offer not found")
	ErrForbidden            = errors.New("not a party to this offer")
	ErrInvalidInput         = errors.New("invalid input")
	ErrPayoutAccountMissing = errors.New("vendor has no linked payout account")
	ErrAlreadyResolved      = errors.New("offer is already accepted or rejected")
	ErrNotCounterparty      = errors.New("only the receiving party can respond to an offer")
	ErrDeleteAccepted       = errors.New("an accepted offer cannot be deleted")
)

// Policy hardens the offer state machine. The zero value is the lenient
// behaviour: any caller may accept or reject, and resolved offers can be
// moved again.
type Policy struct {
	// StrictTransitions makes accepted and rejected terminal.
	StrictTransitions bool
	// RequireCounterparty only lets the non-issuing party respond.
	RequireCounterparty bool
}

// IsParty reports whether uid is the agent or the vendor of o.
func IsParty(o *domain.Offer, uid string) bool {
	return uid == o.AgentID || uid == o.VendorID
}

// IsReceiver reports whether uid is the party that did not issue o.
func IsReceiver(o *domain.Offer, uid string) bool {
	switch o.Issuer {
	case domain.RoleVendor:
		return uid == o.AgentID
	case domain.RoleAgent:
		return uid == o.VendorID
	}
	return false
}

// CanRespond is true for the receiving party of a pending offer.
func CanRespond(o *domain.Offer, uid string) bool {
	return o.Status == domain.OfferPending && IsReceiver(o, uid)
}

// Resolve moves o to accepted or rejected. It reports whether an already
// resolved offer was moved again, which the lenient policy allows.
func Resolve(o *domain.Offer, to domain.OfferStatus, actorUID string, now time.Time, p Policy) (retransitioned bool, err error) {
	if to != domain.OfferAccepted && to != domain.OfferRejected {
		return false, ErrInvalidInput
	}
	if p.RequireCounterparty && !IsReceiver(o, actorUID) {
		return false, ErrNotCounterparty
	}

	retransitioned = o.Status != domain.OfferPending
	if retransitioned && p.StrictTransitions {
		return false, ErrAlreadyResolved
	}

	t := now.UTC()
	o.Status = to
	if to == domain.OfferAccepted {
		o.AcceptedAt = &t
	} else {
		o.RejectedAt = &t
	}
	return retransitioned, nil
}

// CheckDeletable refuses to delete an accepted offer.
func CheckDeletable(o *domain.Offer) error {
	if o.Status == domain.OfferAccepted {
		return ErrDeleteAccepted
	}
	return nil
}
