package entities

import "time"

// InstallmentStatus represents the payment state of one installment.
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// ClientLegal carries the contract details required once a quote is won.
type ClientLegal struct {
	LegalName string `json:"legal_name"`
	Document  string `json:"document"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Installment is one entry of the payment schedule.
//
// Mercado Pago payload:
//   - PaymentStatus is the provider status of the last attempt.
//   - PaymentPayloadRaw keeps the provider response for traceability.
type Installment struct {
	Number            int               `json:"number"`
	DueDate           time.Time         `json:"due_date"`
	Amount            float64           `json:"amount"`
	Status            InstallmentStatus `json:"status"`
	PaymentID         string            `json:"payment_id,omitempty"`
	PaymentStatus     string            `json:"payment_status,omitempty"`
	PaidAt            *time.Time        `json:"paid_at,omitempty"`
	PaymentPayloadRaw string            `json:"payment_payload_raw,omitempty"`
}

// Event is the record created from a won quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
type Event struct {
	ID           string        `json:"id"`
	QuoteID      string        `json:"quote_id"`
	Client       ClientLegal   `json:"client"`
	EventDates   []EventDate   `json:"event_dates"`
	GuestCount   int           `json:"guest_count"`
	Total        float64       `json:"total"`
	Installments []Installment `json:"installments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Installment returns a pointer into e.Installments for number, or nil.
func (e *Event) Installment(number int) *Installment {
	for i := range e.Installments {
		if e.Installments[i].Number == number {
			return &e.Installments[i]
		}
	}
	return nil
}
