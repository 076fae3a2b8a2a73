package entities

import "time"

// QuoteStatus is a collaborator-assigned label. Pricing never interprets it;
// only the event conversion requires QuoteStatusWon.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusRequested QuoteStatus = "requested"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusWon       QuoteStatus = "won"
	QuoteStatusLost      QuoteStatus = "lost"
)

// EventDate is one day of the event. Items point at it through ID.
type EventDate struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// QuoteItem is a quote line. CalculatedUnitPrice and CalculatedTotal are
// filled by the pricing engine.
type QuoteItem struct {
	ID                  string  `json:"id"`
	ServiceID           string  `json:"service_id"`
	Quantity            int     `json:"quantity"`
	DiscountPercent     float64 `json:"discount_percent"`
	EventDate           string  `json:"event_date,omitempty"`
	Observations        string  `json:"observations,omitempty"`
	CalculatedUnitPrice float64 `json:"calculated_unit_price"`
	CalculatedTotal     float64 `json:"calculated_total"`
}

// Client holds the contact fields captured on a quote.
type Client struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	EventType string `json:"event_type,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Quote is the quote aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items are stored as a nested list; their ids survive round-trips.
//
// Subtotal and Total are snapshots of the last computation, kept for listings.
type Quote struct {
	ID              string      `json:"id"`
	Client          Client      `json:"client"`
	GuestCount      int         `json:"guest_count"`
	PriceTableID    string      `json:"price_table_id,omitempty"`
	EventDates      []EventDate `json:"event_dates"`
	Items           []QuoteItem `json:"items"`
	DiscountGeneral float64     `json:"discount_general"`
	Status          QuoteStatus `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	Total           float64     `json:"total"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	// Version is bumped by the repository on every save.
	Version int64 `json:"version"`
}

// HasEventDate reports whether id names one of the quote dates.
func (q Quote) HasEventDate(id string) bool {
	for _, d := range q.EventDates {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with q.
func (q Quote) Clone() Quote {
	out := q
	out.EventDates = append([]EventDate(nil), q.EventDates...)
	out.Items = append([]QuoteItem(nil), q.Items...)
	return out
}
