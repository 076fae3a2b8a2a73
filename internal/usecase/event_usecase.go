package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/installments"
	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/infrastructure/logger"
	"espaco_vista/internal/infrastructure/metrics"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrEventNotFound                  = errors.New("event not found")
	ErrInvalidEventID                 = errors.New("invalid event id")
	ErrEventAlreadyExists             = errors.New("event already exists for this quote")
	ErrQuoteNotWon                    = errors.New("quote not won")
	ErrInvalidClientLegal             = errors.New("invalid client legal data")
	ErrInvalidInstallmentPlan         = errors.New("invalid installment plan")
	ErrInstallmentNotFound            = errors.New("installment not found")
	ErrInstallmentPaid                = errors.New("installment already paid")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentNotApproved             = errors.New("payment not approved")
)

// paymentApproved is the only provider status that settles an installment.
const paymentApproved = "approved"

// EventInput carries what is needed to turn a won quote into an event.
type EventInput struct {
	Client       entities.ClientLegal
	Installments int
	FirstDue     time.Time
	IntervalDays int
}

//go:generate mockgen -source=event_usecase.go -destination=../adapter/http/handlers/mocks/event_usecase_mock.go -package=mocks

// IEventUseCase covers the post-sale flow: converting a won quote into an
// event with a payment schedule and charging its installments.
type IEventUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string, in EventInput) (entities.Event, error)
	Get(ctx context.Context, id string) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
	PayInstallment(ctx context.Context, eventID string, number int, mpPayload json.RawMessage) (entities.Event, error)
}

type EventUseCase struct {
	repo       interfaces.IEventRepository
	quotes     interfaces.IQuoteRepository
	catalog    interfaces.ICatalogReader
	gateway    interfaces.IPaymentGateway
	payerEmail string
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

var _ IEventUseCase = (*EventUseCase)(nil)

// NewEventUseCase builds the event use case. payerEmail is used as the payer
// of payment requests that carry none.
func NewEventUseCase(
	repo interfaces.IEventRepository,
	quotes interfaces.IQuoteRepository,
	catalog interfaces.ICatalogReader,
	gateway interfaces.IPaymentGateway,
	payerEmail string,
	m *metrics.Metrics,
	log zerolog.Logger,
) *EventUseCase {
	return &EventUseCase{
		repo:       repo,
		quotes:     quotes,
		catalog:    catalog,
		gateway:    gateway,
		payerEmail: strings.TrimSpace(payerEmail),
		metrics:    m,
		log:        logger.Component(log, "event.usecase"),
	}
}

// CreateFromQuote converts a won quote. The total is always computed with full
// pricing visibility, whoever makes the call.
func (u *EventUseCase) CreateFromQuote(ctx context.Context, quoteID string, in EventInput) (entities.Event, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Event{}, ErrInvalidQuoteID
	}
	in.Client.LegalName = strings.TrimSpace(in.Client.LegalName)
	in.Client.Document = strings.TrimSpace(in.Client.Document)
	if in.Client.LegalName == "" || in.Client.Document == "" {
		return entities.Event{}, ErrInvalidClientLegal
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Event{}, err
	}
	if q.ID == "" {
		return entities.Event{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusWon {
		return entities.Event{}, ErrQuoteNotWon
	}

	// One event per quote.
	if existing, err := u.repo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Event{}, err
	} else if existing.ID != "" {
		return entities.Event{}, ErrEventAlreadyExists
	}

	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return entities.Event{}, err
	}
	res := pricing.Compute(catalog, q, pricing.Full)

	firstDue := in.FirstDue
	if firstDue.IsZero() {
		firstDue = time.Now().UTC()
	}
	schedule, err := installments.Build(res.Total, installments.Plan{
		Count:        in.Installments,
		FirstDue:     firstDue,
		IntervalDays: in.IntervalDays,
	})
	if err != nil {
		return entities.Event{}, fmt.Errorf("%w: %v", ErrInvalidInstallmentPlan, err)
	}

	now := time.Now().UTC()
	e := entities.Event{
		ID:           uuid.NewString(),
		QuoteID:      q.ID,
		Client:       in.Client,
		EventDates:   append([]entities.EventDate(nil), q.EventDates...),
		GuestCount:   q.GuestCount,
		Total:        res.Total,
		Installments: schedule,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Event{}, err
	}
	u.log.Info().Str("event_id", created.ID).Str("quote_id", q.ID).Float64("total", created.Total).Int("installments", len(schedule)).Msg("event created")
	return created, nil
}

func (u *EventUseCase) Get(ctx context.Context, id string) (entities.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Event{}, ErrInvalidEventID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if e.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (u *EventUseCase) List(ctx context.Context) ([]entities.Event, error) {
	return u.repo.List(ctx)
}

// PayInstallment charges one installment through the payment gateway and
// marks it paid.
//
// The amount always comes from the stored schedule; whatever the caller put
// in transaction_amount is overwritten. Any provider status other than
// approved leaves the installment pending, records the attempt and returns
// ErrPaymentNotApproved.
func (u *EventUseCase) PayInstallment(ctx context.Context, eventID string, number int, mpPayload json.RawMessage) (entities.Event, error) {
	log := u.log.With().Str("event_id", eventID).Int("installment", number).Logger()
	log.Debug().Int("payload_len", len(mpPayload)).Msg("pay installment start")

	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		u.metrics.InstallmentPayment("invalid")
		return entities.Event{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.Event{}, ErrPaymentGatewayNotConfigured
	}

	e, err := u.Get(ctx, eventID)
	if err != nil {
		return entities.Event{}, err
	}
	inst := e.Installment(number)
	if inst == nil {
		return entities.Event{}, ErrInstallmentNotFound
	}
	if inst.Status == entities.InstallmentStatusPaid {
		u.metrics.InstallmentPayment("already_paid")
		return entities.Event{}, ErrInstallmentPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		u.metrics.InstallmentPayment("invalid")
		return entities.Event{}, ErrInvalidMPPayload
	}
	ensurePayerDefaults(reqMap, u.payerEmail)
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s:%d", e.ID, number)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Event %s installment %d/%d", e.ID, number, len(e.Installments))
	}
	reqMap["transaction_amount"] = inst.Amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Event{}, err
	}

	paymentID, status, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error().Err(err).Msg("payment gateway failed")
		u.metrics.InstallmentPayment("gateway_error")
		return entities.Event{}, mapGatewayError(err)
	}
	log.Info().Str("provider_payment_id", paymentID).Str("provider_status", status).Msg("payment gateway success")

	now := time.Now().UTC()
	inst.PaymentID = paymentID
	inst.PaymentStatus = status
	inst.PaymentPayloadRaw = string(providerResp)
	approved := strings.EqualFold(strings.TrimSpace(status), paymentApproved)
	if approved {
		inst.Status = entities.InstallmentStatusPaid
		inst.PaidAt = &now
	}
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		log.Error().Err(err).Msg("event update failed after payment")
		return entities.Event{}, err
	}
	if updated.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	if !approved {
		log.Warn().Str("provider_payment_id", paymentID).Str("provider_status", status).Msg("payment not approved")
		u.metrics.InstallmentPayment("not_approved")
		return updated, ErrPaymentNotApproved
	}
	u.metrics.InstallmentPayment("paid")
	return updated, nil
}

// ensurePayerDefaults fills payer.email when the request names no payer.
func ensurePayerDefaults(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && email != "" {
		payer["email"] = email
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
