package offer

import (
	"fmt"

	"listingcrew/internal/domain"

	"github.com/shopspring/decimal"
)

// vendorShare is what the vendor keeps after the fixed 10% platform cut.
var vendorShare = decimal.RequireFromString("0.9")

// Amounts are the derived money fields of an offer.
type Amounts struct {
	WithoutTax  decimal.Decimal
	WithTax     decimal.Decimal
	VendorCosts decimal.Decimal
}

// DeriveAmounts applies the platform cut to costs as entered by issuer.
// A vendor enters its own take, so the agent pays costs / 0.9. An agent
// enters what it pays, so the vendor gets costs × 0.9. Tax is not charged
// yet, so WithTax always equals WithoutTax. Results are rounded to cents.
func DeriveAmounts(issuer domain.Role, costs decimal.Decimal) (Amounts, error) {
	switch issuer {
	case domain.RoleVendor:
		gross := costs.Div(vendorShare).Round(2)
		return Amounts{WithoutTax: gross, WithTax: gross, VendorCosts: costs.Round(2)}, nil
	case domain.RoleAgent:
		gross := costs.Round(2)
		return Amounts{WithoutTax: gross, WithTax: gross, VendorCosts: costs.Mul(vendorShare).Round(2)}, nil
	default:
		return Amounts{}, fmt.Errorf("%w: unknown issuer %q", ErrInvalidInput, issuer)
	}
}

// applyAmounts fills the derived fields of o from its issuer and costs.
func applyAmounts(o *domain.Offer) error {
	a, err := DeriveAmounts(o.Issuer, decimal.NewFromFloat(o.Costs))
	if err != nil {
		return err
	}
	o.WithoutTax = a.WithoutTax.InexactFloat64()
	o.WithTax = a.WithTax.InexactFloat64()
	o.VendorCosts = a.VendorCosts.InexactFloat64()
	return nil
}
