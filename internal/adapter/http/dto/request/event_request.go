package request

import (
	"strings"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase"
)

const dateLayout = "2006-01-02"

type ClientLegalRequest struct {
	LegalName string `json:"legal_name" binding:"required"`
	Document  string `json:"document" binding:"required"`
	Address   string `json:"address"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

// CreateEventRequest converts a won quote into an event. first_due_date
// defaults to today when omitted.
type CreateEventRequest struct {
	QuoteID      string             `json:"quote_id" binding:"required"`
	Client       ClientLegalRequest `json:"client" binding:"required"`
	Installments int                `json:"installments" binding:"required,min=1,max=24"`
	FirstDueDate string             `json:"first_due_date" binding:"omitempty,datetime=2006-01-02"`
	IntervalDays int                `json:"interval_days" binding:"gte=0"`
}

func (r CreateEventRequest) ToInput() usecase.EventInput {
	var firstDue time.Time
	if r.FirstDueDate != "" {
		firstDue, _ = time.ParseInLocation(dateLayout, r.FirstDueDate, time.UTC)
	}
	return usecase.EventInput{
		Client: entities.ClientLegal{
			LegalName: strings.TrimSpace(r.Client.LegalName),
			Document:  strings.TrimSpace(r.Client.Document),
			Address:   strings.TrimSpace(r.Client.Address),
			Email:     strings.TrimSpace(r.Client.Email),
			Phone:     strings.TrimSpace(r.Client.Phone),
		},
		Installments: r.Installments,
		FirstDue:     firstDue,
		IntervalDays: r.IntervalDays,
	}
}
