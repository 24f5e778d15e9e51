package chat

import (
	"errors"

	"listingcrew/internal/domain"
)

// RecentWindow is how many messages a thread view shows and a live
// subscription pushes.
const RecentWindow = 15

// StatusSent is the delivery status of every newly written message.
const StatusSent = "sent"

var (
	ErrNotFound     = errors.New("thread not found")
	ErrForbidden    = errors.New("not a participant of this thread")
	ErrInvalidInput = errors.New("invalid input")
)

// ThreadView is a thread as listed for one participant.
type ThreadView struct {
	*domain.ChatThread
	// Counterpart is the other participant's public profile, when known.
	Counterpart *domain.PublicProfile `json:"counterpart,omitempty"`
}

// SendInput is a message typed by a participant. OfferID links the
// message to an offer card.
type SendInput struct {
	Text    string `json:"text" validate:"required,max=4000"`
	OfferID string `json:"offerId"`
}

// IsParticipant reports whether uid is one of the two sides of t.
func IsParticipant(t *domain.ChatThread, uid string) bool {
	return uid == t.Agent || uid == t.Vendor
}
