package domain

import (
	"time"
)

// Role is which side of the marketplace a user acts for.
type Role string

const (
	RoleAgent  Role = "agent"
	RoleVendor Role = "vendor"
)

// RequestStatus is the lifecycle status of a ServiceRequest.
type RequestStatus string

const (
	RequestIssued    RequestStatus = "issued"
	RequestResolved  RequestStatus = "resolved"
	RequestPayment   RequestStatus = "payment"
	RequestPaid      RequestStatus = "paid"
	RequestCompleted RequestStatus = "completed"
	RequestSubmitted RequestStatus = "submitted"
)

// OfferStatus is used both for offers and for the per-service offer state
// on a request. OfferCompleted is declared but never set by any transition.
type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferCompleted OfferStatus = "completed"
)

type Location struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// VendorCandidate is one entry of the read-only vendor pool for a requested service.
type VendorCandidate struct {
	VendorID string  `json:"vendorId" firestore:"vendorId"`
	Type     string  `json:"type" firestore:"type"`
	Pricing  float64 `json:"pricing" firestore:"pricing"` // per hour
	// Duration is the vendor's recorded duration in hours, 0 if unknown.
	Duration   int            `json:"duration,omitempty" firestore:"duration,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty" firestore:"attributes,omitempty"`
}

type RequestedService struct {
	ServiceName string     `json:"serviceName" firestore:"serviceName"`
	MaxPrice    float64    `json:"maxPrice" firestore:"maxPrice"` // 0 = unlimited
	Datetime    *time.Time `json:"datetime,omitempty" firestore:"datetime,omitempty"`
	// Duration is the working duration in hours used for pricing.
	Duration    int               `json:"duration" firestore:"duration"`
	Candidates  []VendorCandidate `json:"candidates" firestore:"candidates"`
	Selected    string            `json:"selected,omitempty" firestore:"selected,omitempty"`
	OfferStatus OfferStatus       `json:"offerStatus,omitempty" firestore:"offerStatus,omitempty"`
}

type ServiceRequest struct {
	ID          string             `json:"id" firestore:"-"`
	UserID      string             `json:"userId" firestore:"userId"`
	BrokerID    string             `json:"brokerId" firestore:"brokerId"`
	RequestName string             `json:"requestName" firestore:"requestName"`
	Location    Location           `json:"location" firestore:"location"`
	Datetime    time.Time          `json:"datetime" firestore:"datetime"`
	Status      RequestStatus      `json:"status" firestore:"status"`
	Services    []RequestedService `json:"services" firestore:"services"`
	CreatedAt   time.Time          `json:"createdAt" firestore:"createdAt"`
	SubmittedAt *time.Time         `json:"submittedAt,omitempty" firestore:"submittedAt,omitempty"`
}

type VendorOrderService struct {
	ServiceName  string      `json:"serviceName" firestore:"serviceName"`
	RequestedAt  time.Time   `json:"requestedAt" firestore:"requestedAt"`
	PricePerHour float64     `json:"pricePerHour" firestore:"pricePerHour"`
	MaxPrice     float64     `json:"maxPrice" firestore:"maxPrice"`
	Duration     int         `json:"duration" firestore:"duration"`
	OfferStatus  OfferStatus `json:"offerStatus" firestore:"offerStatus"`
}

// SelectedVendorOrder is the denormalized per-vendor snapshot written at submission.
type SelectedVendorOrder struct {
	RequestID string               `json:"requestId" firestore:"requestId"`
	VendorID  string               `json:"vendorId" firestore:"vendorId"`
	AgentID   string               `json:"agentId" firestore:"agentId"`
	BrokerID  string               `json:"brokerId" firestore:"brokerId"`
	Location  Location             `json:"location" firestore:"location"`
	Datetime  time.Time            `json:"datetime" firestore:"datetime"`
	Services  []VendorOrderService `json:"services" firestore:"services"`
}

// Offer is a priced proposal between an agent and a vendor, a.k.a. a deal.
type Offer struct {
	ID                    string      `json:"id" firestore:"-"`
	VendorID              string      `json:"vendorId" firestore:"vendorId"`
	AgentID               string      `json:"agentId" firestore:"agentId"`
	ThreadID              string      `json:"threadId,omitempty" firestore:"threadId,omitempty"`
	RequestID             string      `json:"requestId,omitempty" firestore:"requestId,omitempty"`
	OfferDate             time.Time   `json:"offerDate" firestore:"offerDate"`
	Costs                 float64     `json:"costs" firestore:"costs"`
	WithoutTax            float64     `json:"withoutTax" firestore:"withoutTax"`
	WithTax               float64     `json:"withTax" firestore:"withTax"`
	VendorCosts           float64     `json:"vendorCosts" firestore:"vendorCosts"`
	Issuer                Role        `json:"issuer" firestore:"issuer"`
	Status                OfferStatus `json:"status" firestore:"status"`
	Message               string      `json:"message,omitempty" firestore:"message,omitempty"`
	VendorStripeAccountID string      `json:"vendorStripeAccountId,omitempty" firestore:"vendorStripeAccountId,omitempty"`
	CreatedAt             time.Time   `json:"createdAt" firestore:"createdAt"`
	AcceptedAt            *time.Time  `json:"acceptedAt,omitempty" firestore:"acceptedAt,omitempty"`
	RejectedAt            *time.Time  `json:"rejectedAt,omitempty" firestore:"rejectedAt,omitempty"`
}

// Counterparty returns the uid on the other side of the offer from uid.
func (o *Offer) Counterparty(uid string) string {
	if uid == o.AgentID {
		return o.VendorID
	}
	return o.AgentID
}

type ChatThread struct {
	ID       string    `json:"id" firestore:"-"`
	Agent    string    `json:"agent" firestore:"agent"`
	Vendor   string    `json:"vendor" firestore:"vendor"`
	LastText string    `json:"last_text" firestore:"last_text"`
	LastTime time.Time `json:"last_time" firestore:"last_time"`
}

type ChatMessage struct {
	ID       string    `json:"id" firestore:"-"`
	ThreadID string    `json:"threadId" firestore:"-"`
	Sender   string    `json:"sender" firestore:"sender"`
	Text     string    `json:"text" firestore:"text"`
	Time     time.Time `json:"time" firestore:"time"`
	Status   string    `json:"status" firestore:"status"`
	OfferID  string    `json:"offerId,omitempty" firestore:"offerId,omitempty"`
}

// User is the marketplace profile of an authenticated user.
type User struct {
	UID             string    `json:"uid" db:"uid"`
	Email           string    `json:"email" db:"email"`
	DisplayName     string    `json:"displayName" db:"display_name"`
	PhotoURL        string    `json:"photoURL" db:"photo_url"`
	IsVendor        bool      `json:"isVendor" db:"is_vendor"`
	StripeAccountID string    `json:"stripeAccountId,omitempty" db:"stripe_account_id"`
	BrokerID        string    `json:"brokerId,omitempty" db:"broker_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// PublicProfile is what other users may see about a uid.
type PublicProfile struct {
	UID             string `json:"uid"`
	DisplayName     string `json:"displayName"`
	PhotoURL        string `json:"photoURL"`
	IsVendor        bool   `json:"isVendor"`
	StripeAccountID string `json:"stripeAccountId,omitempty"`
	BrokerID        string `json:"brokerId,omitempty"`
}

type BrokerRole string

const (
	BrokerAdmin  BrokerRole = "admin"
	BrokerMember BrokerRole = "member"
)

type Broker struct {
	BrokerID  string    `json:"brokerId" db:"broker_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type BrokerMembership struct {
	BrokerID string     `json:"brokerId" db:"broker_id"`
	UID      string     `json:"uid" db:"uid"`
	Role     BrokerRole `json:"role" db:"role"`
}
