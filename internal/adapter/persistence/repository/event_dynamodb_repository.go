package repository

import (
	"context"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase/interfaces"
)

const eventsQuoteIDIndex = "quote_id-index"

type installmentItem struct {
	Number            int     `dynamodbav:"number"`
	DueDate           string  `dynamodbav:"due_date"`
	Amount            float64 `dynamodbav:"amount"`
	Status            string  `dynamodbav:"status"`
	PaymentID         string  `dynamodbav:"payment_id,omitempty"`
	PaymentStatus     string  `dynamodbav:"payment_status,omitempty"`
	PaidAt            string  `dynamodbav:"paid_at,omitempty"`
	PaymentPayloadRaw string  `dynamodbav:"payment_payload_raw,omitempty"`
}

type eventItem struct {
	ID           string            `dynamodbav:"id"`
	QuoteID      string            `dynamodbav:"quote_id"`
	LegalName    string            `dynamodbav:"legal_name"`
	Document     string            `dynamodbav:"document"`
	Address      string            `dynamodbav:"address,omitempty"`
	Email        string            `dynamodbav:"email,omitempty"`
	Phone        string            `dynamodbav:"phone,omitempty"`
	EventDates   []eventDateItem   `dynamodbav:"event_dates"`
	GuestCount   int               `dynamodbav:"guest_count"`
	Total        float64           `dynamodbav:"total"`
	Installments []installmentItem `dynamodbav:"installments"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// EventDynamoRepository persists events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type EventDynamoRepository struct {
	table idTable[eventItem]
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb DynamoAPI, tableName string) *EventDynamoRepository {
	return &EventDynamoRepository{table: idTable[eventItem]{ddb: ddb, name: tableName}}
}

func (r *EventDynamoRepository) Create(ctx context.Context, e entities.Event) (entities.Event, error) {
	if err := r.table.create(ctx, toEventItem(e)); err != nil {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) GetByID(ctx context.Context, id string) (entities.Event, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Event{}, err
	}
	return fromEventItem(it), nil
}

// GetByQuoteID returns the event created from quoteID, or a zero Event.
func (r *EventDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Event, error) {
	items, err := queryAll[eventItem](ctx, r.table.ddb, r.table.name, eventsQuoteIDIndex, "quote_id", quoteID)
	if err != nil || len(items) == 0 {
		return entities.Event{}, err
	}
	return fromEventItem(items[0]), nil
}

func (r *EventDynamoRepository) Update(ctx context.Context, e entities.Event) (entities.Event, error) {
	ok, err := r.table.replace(ctx, toEventItem(e))
	if err != nil || !ok {
		return entities.Event{}, err
	}
	return e, nil
}

func (r *EventDynamoRepository) List(ctx context.Context) ([]entities.Event, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Event, 0, len(items))
	for _, it := range items {
		out = append(out, fromEventItem(it))
	}
	return out, nil
}

func toEventItem(e entities.Event) eventItem {
	it := eventItem{
		ID:           e.ID,
		QuoteID:      e.QuoteID,
		LegalName:    e.Client.LegalName,
		Document:     e.Client.Document,
		Address:      e.Client.Address,
		Email:        e.Client.Email,
		Phone:        e.Client.Phone,
		EventDates:   toEventDateItems(e.EventDates),
		GuestCount:   e.GuestCount,
		Total:        e.Total,
		Installments: make([]installmentItem, 0, len(e.Installments)),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
	for _, in := range e.Installments {
		paidAt := ""
		if in.PaidAt != nil {
			paidAt = formatTime(*in.PaidAt)
		}
		it.Installments = append(it.Installments, installmentItem{
			Number:            in.Number,
			DueDate:           formatTime(in.DueDate),
			Amount:            in.Amount,
			Status:            string(in.Status),
			PaymentID:         in.PaymentID,
			PaymentStatus:     in.PaymentStatus,
			PaidAt:            paidAt,
			PaymentPayloadRaw: in.PaymentPayloadRaw,
		})
	}
	return it
}

func fromEventItem(it eventItem) entities.Event {
	e := entities.Event{
		ID:      it.ID,
		QuoteID: it.QuoteID,
		Client: entities.ClientLegal{
			LegalName: it.LegalName,
			Document:  it.Document,
			Address:   it.Address,
			Email:     it.Email,
			Phone:     it.Phone,
		},
		EventDates:   fromEventDateItems(it.EventDates),
		GuestCount:   it.GuestCount,
		Total:        it.Total,
		Installments: make([]entities.Installment, 0, len(it.Installments)),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	for _, in := range it.Installments {
		var paidAt *time.Time
		if in.PaidAt != "" {
			t := parseTime(in.PaidAt)
			paidAt = &t
		}
		e.Installments = append(e.Installments, entities.Installment{
			Number:            in.Number,
			DueDate:           parseTime(in.DueDate),
			Amount:            in.Amount,
			Status:            entities.InstallmentStatus(in.Status),
			PaymentID:         in.PaymentID,
			PaymentStatus:     in.PaymentStatus,
			PaidAt:            paidAt,
			PaymentPayloadRaw: in.PaymentPayloadRaw,
		})
	}
	return e
}
