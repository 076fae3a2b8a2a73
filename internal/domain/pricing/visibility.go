package pricing

import (
	"math"

	"espaco_vista/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Visibility is the viewer's pricing capability. It is the single place that
// decides the four price-related inputs of a computation: the price table,
// the item discount, the general discount and the consumable credit.
type Visibility struct {
	pricing bool
}

var (
	// Full lets every pricing input through.
	Full = Visibility{pricing: true}
	// Hidden zeroes every pricing input.
	Hidden = Visibility{}
)

// VisibilityFor maps a boolean capability to a Visibility.
func VisibilityFor(hasPricing bool) Visibility {
	if hasPricing {
		return Full
	}
	return Hidden
}

// HasPricing reports whether prices, discounts and credits apply.
func (v Visibility) HasPricing() bool {
	return v.pricing
}

// PriceTableID returns the selected table, or "" when pricing is hidden.
func (v Visibility) PriceTableID(q entities.Quote) string {
	if !v.pricing {
		return ""
	}
	return q.PriceTableID
}

// ItemDiscountRate returns the item discount as a fraction in [0, 1].
func (v Visibility) ItemDiscountRate(it entities.QuoteItem) decimal.Decimal {
	if !v.pricing {
		return decimal.Zero
	}
	return fromFloat(clampPercent(it.DiscountPercent)).Div(hundred)
}

// DiscountGeneral returns the quote-wide discount, never negative.
func (v Visibility) DiscountGeneral(q entities.Quote) decimal.Decimal {
	if !v.pricing {
		return decimal.Zero
	}
	return nonNegative(fromFloat(q.DiscountGeneral))
}

// ConsumableCredit returns the credit of the selected table, if any.
func (v Visibility) ConsumableCredit(table *entities.PriceTable) decimal.Decimal {
	if !v.pricing || table == nil {
		return decimal.Zero
	}
	return nonNegative(fromFloat(table.ConsumableCredit))
}

// Sanitize strips the pricing inputs a viewer without the capability is not
// allowed to set. The input quote is not modified.
func (v Visibility) Sanitize(q entities.Quote) entities.Quote {
	out := q.Clone()
	if v.pricing {
		return out
	}
	out.PriceTableID = ""
	out.DiscountGeneral = 0
	for i := range out.Items {
		out.Items[i].DiscountPercent = 0
	}
	return out
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// fromFloat reads a stored amount; NaN and infinities count as zero.
func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
