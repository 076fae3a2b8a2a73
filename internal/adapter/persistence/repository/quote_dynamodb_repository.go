package repository

import (
	"context"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase/interfaces"
)

type eventDateItem struct {
	ID    string `dynamodbav:"id"`
	Date  string `dynamodbav:"date"`
	Start string `dynamodbav:"start,omitempty"`
	End   string `dynamodbav:"end,omitempty"`
}

type quoteLineItem struct {
	ID                  string  `dynamodbav:"id"`
	ServiceID           string  `dynamodbav:"service_id"`
	Quantity            int     `dynamodbav:"quantity"`
	DiscountPercent     float64 `dynamodbav:"discount_percent"`
	EventDate           string  `dynamodbav:"event_date,omitempty"`
	Observations        string  `dynamodbav:"observations,omitempty"`
	CalculatedUnitPrice float64 `dynamodbav:"calculated_unit_price"`
	CalculatedTotal     float64 `dynamodbav:"calculated_total"`
}

type quoteItem struct {
	ID              string          `dynamodbav:"id"`
	ClientName      string          `dynamodbav:"client_name"`
	ClientEmail     string          `dynamodbav:"client_email,omitempty"`
	ClientPhone     string          `dynamodbav:"client_phone,omitempty"`
	EventType       string          `dynamodbav:"event_type,omitempty"`
	Notes           string          `dynamodbav:"notes,omitempty"`
	GuestCount      int             `dynamodbav:"guest_count"`
	PriceTableID    string          `dynamodbav:"price_table_id,omitempty"`
	EventDates      []eventDateItem `dynamodbav:"event_dates"`
	Items           []quoteLineItem `dynamodbav:"items"`
	DiscountGeneral float64         `dynamodbav:"discount_general"`
	Status          string          `dynamodbav:"status"`
	Subtotal        float64         `dynamodbav:"subtotal"`
	Total           float64         `dynamodbav:"total"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
	Version         int64           `dynamodbav:"version,omitempty"`
}

// QuoteDynamoRepository persists quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items and event dates are nested lists on the quote record and keep their
// ids across writes. Updates are conditioned on the "version" attribute.
type QuoteDynamoRepository struct {
	table idTable[quoteItem]
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{table: idTable[quoteItem]{ddb: ddb, name: tableName}}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if q.Version == 0 {
		q.Version = 1
	}
	if err := r.table.create(ctx, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	it.Version = q.Version + 1
	ok, err := r.table.replaceAtVersion(ctx, it, q.Version)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	q.Version = it.Version
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:              q.ID,
		ClientName:      q.Client.Name,
		ClientEmail:     q.Client.Email,
		ClientPhone:     q.Client.Phone,
		EventType:       q.Client.EventType,
		Notes:           q.Client.Notes,
		GuestCount:      q.GuestCount,
		PriceTableID:    q.PriceTableID,
		EventDates:      toEventDateItems(q.EventDates),
		Items:           make([]quoteLineItem, 0, len(q.Items)),
		DiscountGeneral: q.DiscountGeneral,
		Status:          string(q.Status),
		Subtotal:        q.Subtotal,
		Total:           q.Total,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
		Version:         q.Version,
	}
	for _, line := range q.Items {
		it.Items = append(it.Items, quoteLineItem(line))
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID: it.ID,
		Client: entities.Client{
			Name:      it.ClientName,
			Email:     it.ClientEmail,
			Phone:     it.ClientPhone,
			EventType: it.EventType,
			Notes:     it.Notes,
		},
		GuestCount:      it.GuestCount,
		PriceTableID:    it.PriceTableID,
		EventDates:      fromEventDateItems(it.EventDates),
		Items:           make([]entities.QuoteItem, 0, len(it.Items)),
		DiscountGeneral: it.DiscountGeneral,
		Status:          entities.QuoteStatus(it.Status),
		Subtotal:        it.Subtotal,
		Total:           it.Total,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
	for _, line := range it.Items {
		q.Items = append(q.Items, entities.QuoteItem(line))
	}
	return q
}

func toEventDateItems(dates []entities.EventDate) []eventDateItem {
	out := make([]eventDateItem, 0, len(dates))
	for _, d := range dates {
		out = append(out, eventDateItem(d))
	}
	return out
}

func fromEventDateItems(items []eventDateItem) []entities.EventDate {
	out := make([]entities.EventDate, 0, len(items))
	for _, d := range items {
		out = append(out, entities.EventDate(d))
	}
	return out
}
