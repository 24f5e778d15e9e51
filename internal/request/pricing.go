package request

import (
	"listingcrew/internal/domain"

	"github.com/shopspring/decimal"
)

// QuoteLine is the price of one selected service.
type QuoteLine struct {
	ServiceName  string          `json:"serviceName"`
	VendorID     string          `json:"vendorId"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	Duration     int             `json:"duration"`
	Amount       decimal.Decimal `json:"amount"`
}

// Quote is the running price of a request. Tax is always zero for now.
type Quote struct {
	Complete bool            `json:"complete"`
	Lines    []QuoteLine     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeQuote prices every service at candidate rate × working duration.
// Amounts are exact; rounding for display is left to the client.
// The total is only defined when every service has a selection; otherwise
// every figure is zero rather than a partial sum.
func ComputeQuote(req *domain.ServiceRequest) Quote {
	q := Quote{
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}

	lines := make([]QuoteLine, 0, len(req.Services))
	for i := range req.Services {
		svc := &req.Services[i]
		if svc.Selected == "" {
			return q
		}
		cand, ok := findCandidate(svc, svc.Selected)
		if !ok {
			// a dangling selection prices as missing
			return q
		}

		rate := decimal.NewFromFloat(cand.Pricing)
		hours := workingDuration(svc)
		lines = append(lines, QuoteLine{
			ServiceName:  svc.ServiceName,
			VendorID:     svc.Selected,
			PricePerHour: rate,
			Duration:     hours,
			Amount:       rate.Mul(decimal.NewFromInt(int64(hours))),
		})
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Amount)
	}

	q.Complete = true
	q.Lines = lines
	q.Subtotal = subtotal
	q.Total = subtotal.Add(q.Tax)
	return q
}
