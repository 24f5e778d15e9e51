package request

import (
	"errors"
	"fmt"
	"time"

	"listingcrew/internal/domain"
)

// Errors returned by the request package. Handlers map them with errors.Is.
var (
	ErrNotFound        = errors.New("request not found")
	ErrForbidden       = errors.New("not allowed to access this request")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidIndex    = errors.New("service index out of range")
	ErrUnknownVendor   = errors.New("vendor is not a candidate for this service")
	ErrNoSelection     = errors.New("service has no selected vendor")
	ErrInvalidDuration = errors.New("duration must be 1, 2 or 3 hours")
	ErrUnselectLocked  = errors.New("selection cannot be changed within 24 hours of submission")
	ErrNothingToSubmit = errors.New("no vendor selected on any service")
)

// UnselectLockWindow is how long after submission a selection is frozen
// when the unselect lock is enabled.
const UnselectLockWindow = 24 * time.Hour

// allowedDurations are the hours an agent can pick for a selected service.
var allowedDurations = map[int]bool{1: true, 2: true, 3: true}

// These functions are the aggregate rules. They mutate the request in place
// and never touch storage, so the repository can run them inside a transaction.

func serviceAt(req *domain.ServiceRequest, index int) (*domain.RequestedService, error) {
	if index < 0 || index >= len(req.Services) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return &req.Services[index], nil
}

func findCandidate(svc *domain.RequestedService, vendorID string) (domain.VendorCandidate, bool) {
	for _, c := range svc.Candidates {
		if c.VendorID == vendorID {
			return c, true
		}
	}
	return domain.VendorCandidate{}, false
}

// SelectVendor picks vendorID for the service at index. Reselecting the
// current vendor is allowed and resets the duration again.
func SelectVendor(req *domain.ServiceRequest, index int, vendorID string) error {
	svc, err := serviceAt(req, index)
	if err != nil {
		return err
	}
	cand, ok := findCandidate(svc, vendorID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVendor, vendorID)
	}

	svc.Selected = vendorID
	svc.OfferStatus = ""
	svc.Duration = cand.Duration
	if svc.Duration <= 0 {
		svc.Duration = 1
	}
	return nil
}

// UnselectVendor clears the selection at index. The 24h lock is a separate
// policy, see CanUnselect.
func UnselectVendor(req *domain.ServiceRequest, index int) error {
	svc, err := serviceAt(req, index)
	if err != nil {
		return err
	}
	svc.Selected = ""
	svc.OfferStatus = ""
	svc.Duration = 1
	return nil
}

// CanUnselect reports whether the agent may retract a selection at now.
// A request submitted less than UnselectLockWindow ago is locked.
func CanUnselect(req *domain.ServiceRequest, now time.Time) bool {
	if req.SubmittedAt == nil {
		return true
	}
	return now.Sub(*req.SubmittedAt) >= UnselectLockWindow
}

// SetDuration overrides the working duration of a selected service.
func SetDuration(req *domain.ServiceRequest, index, hours int) error {
	svc, err := serviceAt(req, index)
	if err != nil {
		return err
	}
	if svc.Selected == "" {
		return ErrNoSelection
	}
	if !allowedDurations[hours] {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, hours)
	}
	svc.Duration = hours
	return nil
}

// SetCandidates replaces the vendor pool of a service. A selection that no
// longer names a candidate is dropped.
func SetCandidates(req *domain.ServiceRequest, index int, candidates []domain.VendorCandidate) error {
	svc, err := serviceAt(req, index)
	if err != nil {
		return err
	}
	for _, c := range candidates {
		if c.VendorID == "" {
			return fmt.Errorf("%w: candidate without vendorId", ErrInvalidInput)
		}
	}

	svc.Candidates = candidates
	if svc.Selected != "" {
		if _, ok := findCandidate(svc, svc.Selected); !ok {
			svc.Selected = ""
			svc.OfferStatus = ""
			svc.Duration = 1
		}
	}
	return nil
}

// MarkSubmitted flags every selected service as pending and stamps the request.
func MarkSubmitted(req *domain.ServiceRequest, now time.Time) error {
	selected := 0
	for i := range req.Services {
		if req.Services[i].Selected != "" {
			req.Services[i].OfferStatus = domain.OfferPending
			selected++
		}
	}
	if selected == 0 {
		return ErrNothingToSubmit
	}

	submittedAt := now.UTC()
	req.SubmittedAt = &submittedAt
	req.Status = domain.RequestSubmitted
	return nil
}

// BuildVendorOrders groups the selected services by vendor. One order per
// distinct vendor, orders and their services both in first-appearance order.
func BuildVendorOrders(req *domain.ServiceRequest) []domain.SelectedVendorOrder {
	var orders []domain.SelectedVendorOrder
	pos := make(map[string]int)

	for i := range req.Services {
		svc := &req.Services[i]
		if svc.Selected == "" {
			continue
		}

		idx, seen := pos[svc.Selected]
		if !seen {
			orders = append(orders, domain.SelectedVendorOrder{
				RequestID: req.ID,
				VendorID:  svc.Selected,
				AgentID:   req.UserID,
				BrokerID:  req.BrokerID,
				Location:  req.Location,
				Datetime:  req.Datetime,
			})
			idx = len(orders) - 1
			pos[svc.Selected] = idx
		}

		requestedAt := req.Datetime
		if svc.Datetime != nil {
			requestedAt = *svc.Datetime
		}
		var pricing float64
		if cand, ok := findCandidate(svc, svc.Selected); ok {
			pricing = cand.Pricing
		}

		orders[idx].Services = append(orders[idx].Services, domain.VendorOrderService{
			ServiceName:  svc.ServiceName,
			RequestedAt:  requestedAt,
			PricePerHour: pricing,
			MaxPrice:     svc.MaxPrice,
			Duration:     workingDuration(svc),
			OfferStatus:  svc.OfferStatus,
		})
	}
	return orders
}

func workingDuration(svc *domain.RequestedService) int {
	if svc.Duration <= 0 {
		return 1
	}
	return svc.Duration
}

// IsCandidate reports whether vendorID appears in any candidate pool of req.
func IsCandidate(req *domain.ServiceRequest, vendorID string) bool {
	for i := range req.Services {
		if _, ok := findCandidate(&req.Services[i], vendorID); ok {
			return true
		}
	}
	return false
}
