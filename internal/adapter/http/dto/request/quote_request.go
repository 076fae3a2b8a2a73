package request

import (
	"strings"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase"
)

type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	EventType string `json:"event_type"`
	Notes     string `json:"notes"`
}

type EventDateRequest struct {
	ID    string `json:"id"`
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Start string `json:"start" binding:"omitempty,datetime=15:04"`
	End   string `json:"end" binding:"omitempty,datetime=15:04"`
}

// QuoteRequest is the header of a quote. price_table_id and discount_general
// are ignored for callers without pricing visibility.
type QuoteRequest struct {
	Client          ClientRequest      `json:"client" binding:"required"`
	GuestCount      int                `json:"guest_count" binding:"gte=0"`
	PriceTableID    string             `json:"price_table_id"`
	DiscountGeneral float64            `json:"discount_general" binding:"gte=0"`
	EventDates      []EventDateRequest `json:"event_dates" binding:"dive"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	dates := make([]entities.EventDate, 0, len(r.EventDates))
	for _, d := range r.EventDates {
		dates = append(dates, entities.EventDate{
			ID:    strings.TrimSpace(d.ID),
			Date:  d.Date,
			Start: d.Start,
			End:   d.End,
		})
	}
	return usecase.QuoteInput{
		Client: entities.Client{
			Name:      strings.TrimSpace(r.Client.Name),
			Email:     strings.TrimSpace(r.Client.Email),
			Phone:     strings.TrimSpace(r.Client.Phone),
			EventType: strings.TrimSpace(r.Client.EventType),
			Notes:     r.Client.Notes,
		},
		GuestCount:      r.GuestCount,
		PriceTableID:    strings.TrimSpace(r.PriceTableID),
		DiscountGeneral: r.DiscountGeneral,
		EventDates:      dates,
	}
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft requested sent won lost"`
}

type AddItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	EventDate string `json:"event_date"`
}

// UpdateItemRequest edits one field of a quote item. Value is decoded as
// plain JSON: numbers for quantity and discount_percent, strings otherwise.
type UpdateItemRequest struct {
	Field string `json:"field" binding:"required,oneof=quantity discount_percent event_date observations service_id"`
	Value any    `json:"value"`
}

type ApplyMenuRequest struct {
	EventDate string `json:"event_date"`
}
