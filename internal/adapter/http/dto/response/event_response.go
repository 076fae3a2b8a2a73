package response

import (
	"time"

	"espaco_vista/internal/domain/entities"
)

type ClientLegalResponse struct {
	LegalName string `json:"legal_name"`
	Document  string `json:"document"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type InstallmentResponse struct {
	Number            int        `json:"number"`
	DueDate           string     `json:"due_date"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	PaymentID         string     `json:"payment_id,omitempty"`
	PaymentStatus     string     `json:"payment_status,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	PaymentPayloadRaw string     `json:"payment_payload_raw,omitempty"`
}

type EventResponse struct {
	ID           string                `json:"id"`
	QuoteID      string                `json:"quote_id"`
	Client       ClientLegalResponse   `json:"client"`
	EventDates   []EventDateResponse   `json:"event_dates"`
	GuestCount   int                   `json:"guest_count"`
	Total        float64               `json:"total"`
	Paid         float64               `json:"paid"`
	Installments []InstallmentResponse `json:"installments"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromEvent(e entities.Event) EventResponse {
	res := EventResponse{
		ID:           e.ID,
		QuoteID:      e.QuoteID,
		Client:       ClientLegalResponse(e.Client),
		EventDates:   fromEventDates(e.EventDates),
		GuestCount:   e.GuestCount,
		Total:        e.Total,
		Installments: make([]InstallmentResponse, 0, len(e.Installments)),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	for _, in := range e.Installments {
		if in.Status == entities.InstallmentStatusPaid {
			res.Paid += in.Amount
		}
		res.Installments = append(res.Installments, InstallmentResponse{
			Number:            in.Number,
			DueDate:           in.DueDate.Format("2006-01-02"),
			Amount:            in.Amount,
			Status:            string(in.Status),
			PaymentID:         in.PaymentID,
			PaymentStatus:     in.PaymentStatus,
			PaidAt:            in.PaidAt,
			PaymentPayloadRaw: in.PaymentPayloadRaw,
		})
	}
	return res
}

func FromEvents(list []entities.Event) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEvent(e))
	}
	return out
}
