package response

import (
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase"
)

type ClientResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	EventType string `json:"event_type,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type EventDateResponse struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type QuoteItemResponse struct {
	ID                  string  `json:"id"`
	ServiceID           string  `json:"service_id"`
	Quantity            int     `json:"quantity"`
	DiscountPercent     float64 `json:"discount_percent"`
	EventDate           string  `json:"event_date,omitempty"`
	Observations        string  `json:"observations,omitempty"`
	CalculatedUnitPrice float64 `json:"calculated_unit_price"`
	CalculatedTotal     float64 `json:"calculated_total"`
}

// QuoteWarnings lists items that were priced at zero because the catalog is
// inconsistent with the quote.
type QuoteWarnings struct {
	OrphanedItems     []string `json:"orphaned_items,omitempty"`
	MissingPriceItems []string `json:"missing_price_items,omitempty"`
}

type QuoteResponse struct {
	ID               string              `json:"id"`
	Client           ClientResponse      `json:"client"`
	GuestCount       int                 `json:"guest_count"`
	PriceTableID     string              `json:"price_table_id,omitempty"`
	EventDates       []EventDateResponse `json:"event_dates"`
	Items            []QuoteItemResponse `json:"items"`
	Status           string              `json:"status"`
	PricingVisible   bool                `json:"pricing_visible"`
	Subtotal         float64             `json:"subtotal"`
	DiscountGeneral  float64             `json:"discount_general"`
	ConsumableCredit float64             `json:"consumable_credit"`
	Total            float64             `json:"total"`
	Warnings         *QuoteWarnings      `json:"warnings,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromQuoteView(v usecase.QuoteView, pricingVisible bool) QuoteResponse {
	q := v.Quote
	res := QuoteResponse{
		ID:               q.ID,
		Client:           ClientResponse(q.Client),
		GuestCount:       q.GuestCount,
		PriceTableID:     q.PriceTableID,
		EventDates:       fromEventDates(q.EventDates),
		Items:            make([]QuoteItemResponse, 0, len(q.Items)),
		Status:           string(q.Status),
		PricingVisible:   pricingVisible,
		Subtotal:         v.Pricing.Subtotal,
		DiscountGeneral:  v.Pricing.DiscountGeneral,
		ConsumableCredit: v.Pricing.ConsumableCredit,
		Total:            v.Pricing.Total,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
	for _, it := range q.Items {
		res.Items = append(res.Items, QuoteItemResponse(it))
	}
	if len(v.Pricing.Orphaned) > 0 || len(v.Pricing.MissingPrices) > 0 {
		res.Warnings = &QuoteWarnings{
			OrphanedItems:     v.Pricing.Orphaned,
			MissingPriceItems: v.Pricing.MissingPrices,
		}
	}
	return res
}

// QuoteSummaryResponse is the listing row of a quote. Total is the value
// stored at the last save and is zeroed for callers without pricing
// visibility.
type QuoteSummaryResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	EventType  string    `json:"event_type,omitempty"`
	GuestCount int       `json:"guest_count"`
	FirstDate  string    `json:"first_date,omitempty"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromQuoteSummaries(list []entities.Quote, pricingVisible bool) []QuoteSummaryResponse {
	out := make([]QuoteSummaryResponse, 0, len(list))
	for _, q := range list {
		row := QuoteSummaryResponse{
			ID:         q.ID,
			ClientName: q.Client.Name,
			EventType:  q.Client.EventType,
			GuestCount: q.GuestCount,
			Status:     string(q.Status),
			CreatedAt:  q.CreatedAt,
			UpdatedAt:  q.UpdatedAt,
		}
		if len(q.EventDates) > 0 {
			row.FirstDate = q.EventDates[0].Date
		}
		if pricingVisible {
			row.Total = q.Total
		}
		out = append(out, row)
	}
	return out
}

func fromEventDates(dates []entities.EventDate) []EventDateResponse {
	out := make([]EventDateResponse, 0, len(dates))
	for _, d := range dates {
		out = append(out, EventDateResponse(d))
	}
	return out
}
