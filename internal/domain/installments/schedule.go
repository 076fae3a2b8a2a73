// Package installments splits an event total into a payment schedule.
package installments

import (
	"errors"
	"time"

	"espaco_vista/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const maxInstallments = 24

var (
	ErrInvalidCount    = errors.New("installment count must be between 1 and 24")
	ErrInvalidInterval = errors.New("installment interval must be positive")
	ErrInvalidTotal    = errors.New("installment total must not be negative")
)

// Plan describes how a total is spread over time.
type Plan struct {
	Count        int
	FirstDue     time.Time
	IntervalDays int
}

// Build splits total into p.Count installments rounded to cents. Every
// installment but the last gets the same amount; the last absorbs the
// rounding remainder so the amounts always add up to the rounded total.
func Build(total float64, p Plan) ([]entities.Installment, error) {
	if p.Count < 1 || p.Count > maxInstallments {
		return nil, ErrInvalidCount
	}
	if p.Count > 1 && p.IntervalDays <= 0 {
		return nil, ErrInvalidInterval
	}
	if total < 0 {
		return nil, ErrInvalidTotal
	}

	rounded := decimal.NewFromFloat(total).Round(2)
	share := rounded.Div(decimal.NewFromInt(int64(p.Count))).Truncate(2)
	last := rounded.Sub(share.Mul(decimal.NewFromInt(int64(p.Count - 1))))

	due := p.FirstDue.UTC()
	out := make([]entities.Installment, 0, p.Count)
	for n := 1; n <= p.Count; n++ {
		amount := share
		if n == p.Count {
			amount = last
		}
		out = append(out, entities.Installment{
			Number:  n,
			DueDate: due,
			Amount:  amount.InexactFloat64(),
			Status:  entities.InstallmentStatusPending,
		})
		due = due.AddDate(0, 0, p.IntervalDays)
	}
	return out, nil
}
