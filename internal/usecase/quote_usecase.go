package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/infrastructure/logger"
	"espaco_vista/internal/infrastructure/metrics"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	ErrNoEventDates      = errors.New("quote has no event dates")
	ErrUnknownEventDate  = errors.New("unknown event date")
	ErrItemNotFound      = errors.New("quote item not found")
	ErrDuplicateItem     = errors.New("service already on this event date")
	ErrInvalidItemField  = errors.New("invalid item field")
	ErrInvalidStatus     = errors.New("invalid quote status")
	ErrPricingForbidden  = errors.New("pricing inputs require pricing visibility")
	ErrQuoteConflict     = errors.New("quote was changed by another request")
)

// QuoteInput carries the header fields of a quote.
type QuoteInput struct {
	Client          entities.Client
	GuestCount      int
	PriceTableID    string
	DiscountGeneral float64
	EventDates      []entities.EventDate
}

// QuoteView is a quote annotated by the pricing engine for one viewer.
type QuoteView struct {
	Quote   entities.Quote
	Pricing pricing.Result
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks

// IQuoteUseCase exposes quote editing.
//
// Every call that returns a QuoteView computes the quote with the caller's
// visibility. A viewer without pricing visibility cannot change the pricing
// inputs (price table and discounts); the stored ones survive its writes.
type IQuoteUseCase interface {
	Create(ctx context.Context, in QuoteInput, v pricing.Visibility) (QuoteView, error)
	Get(ctx context.Context, id string, v pricing.Visibility) (QuoteView, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateHeader(ctx context.Context, id string, in QuoteInput, v pricing.Visibility) (QuoteView, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, id, serviceID, eventDate string, v pricing.Visibility) (QuoteView, error)
	DuplicateItem(ctx context.Context, id, itemID string, v pricing.Visibility) (QuoteView, error)
	RemoveItem(ctx context.Context, id, itemID string, v pricing.Visibility) (QuoteView, error)
	UpdateItem(ctx context.Context, id, itemID, field string, value any, v pricing.Visibility) (QuoteView, error)
	ApplyMenu(ctx context.Context, id, menuID, eventDate string, v pricing.Visibility) (QuoteView, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog interfaces.ICatalogReader
	metrics *metrics.Metrics
	log     zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase builds the quote use case. m may be nil.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog interfaces.ICatalogReader, m *metrics.Metrics, log zerolog.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		repo:    repo,
		catalog: catalog,
		metrics: m,
		log:     logger.Component(log, "quote.usecase"),
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, in QuoteInput, v pricing.Visibility) (QuoteView, error) {
	if err := checkQuoteInput(in); err != nil {
		return QuoteView{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:        uuid.NewString(),
		Status:    entities.QuoteStatusDraft,
		Items:     []entities.QuoteItem{},
		CreatedAt: now,
	}
	q = v.Sanitize(applyHeader(q, in))

	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	stored := pricing.Compute(catalog, q, pricing.Full).Apply(q)
	stored.UpdatedAt = now

	created, err := u.repo.Create(ctx, stored)
	if err != nil {
		return QuoteView{}, err
	}
	u.log.Info().Str("quote_id", created.ID).Msg("quote created")
	return u.view(catalog, created, v), nil
}

// Get loads a quote and computes it for v. The computation is not persisted.
func (u *QuoteUseCase) Get(ctx context.Context, id string, v pricing.Visibility) (QuoteView, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return QuoteView{}, err
	}
	return u.price(ctx, q, v)
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) UpdateHeader(ctx context.Context, id string, in QuoteInput, v pricing.Visibility) (QuoteView, error) {
	if err := checkQuoteInput(in); err != nil {
		return QuoteView{}, err
	}
	return u.mutate(ctx, id, v, "update_header", func(q entities.Quote) (entities.Quote, error) {
		return applyHeader(q, in), nil
	})
}

// UpdateStatus relabels a quote. The status never affects pricing.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !validQuoteStatus(status) {
		return entities.Quote{}, ErrInvalidStatus
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, q)
	if errors.Is(err, interfaces.ErrStaleWrite) {
		return entities.Quote{}, ErrQuoteConflict
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	return nil
}

// AddItem appends serviceID on eventDate, or on the first event date when
// eventDate is empty. A service appears at most once per date.
func (u *QuoteUseCase) AddItem(ctx context.Context, id, serviceID, eventDate string, v pricing.Visibility) (QuoteView, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return QuoteView{}, ErrInvalidServiceID
	}
	return u.mutate(ctx, id, v, "add", func(q entities.Quote) (entities.Quote, error) {
		date, err := resolveEventDate(q, eventDate)
		if err != nil {
			return entities.Quote{}, err
		}
		if err := u.requireService(ctx, serviceID); err != nil {
			return entities.Quote{}, err
		}
		next, ok := pricing.AddItem(q, serviceID, date)
		if !ok {
			return entities.Quote{}, ErrDuplicateItem
		}
		return next, nil
	})
}

func (u *QuoteUseCase) DuplicateItem(ctx context.Context, id, itemID string, v pricing.Visibility) (QuoteView, error) {
	return u.mutate(ctx, id, v, "duplicate", func(q entities.Quote) (entities.Quote, error) {
		next, _, ok := pricing.DuplicateItem(q, strings.TrimSpace(itemID))
		if !ok {
			return entities.Quote{}, ErrItemNotFound
		}
		return next, nil
	})
}

// RemoveItem drops itemID. Removing an item that is not there is a no-op.
func (u *QuoteUseCase) RemoveItem(ctx context.Context, id, itemID string, v pricing.Visibility) (QuoteView, error) {
	return u.mutate(ctx, id, v, "remove", func(q entities.Quote) (entities.Quote, error) {
		return pricing.RemoveItem(q, strings.TrimSpace(itemID)), nil
	})
}

// UpdateItem sets one editable field of an item. Moving an item to another
// event date requires the date to exist on the quote.
func (u *QuoteUseCase) UpdateItem(ctx context.Context, id, itemID, field string, value any, v pricing.Visibility) (QuoteView, error) {
	itemID = strings.TrimSpace(itemID)
	if field == pricing.FieldDiscountPercent && !v.HasPricing() {
		return QuoteView{}, ErrPricingForbidden
	}
	return u.mutate(ctx, id, v, "update", func(q entities.Quote) (entities.Quote, error) {
		if !hasItem(q, itemID) {
			return entities.Quote{}, ErrItemNotFound
		}
		if field == pricing.FieldEventDate {
			if s, ok := value.(string); !ok || !q.HasEventDate(s) {
				return entities.Quote{}, ErrUnknownEventDate
			}
		}
		next, ok := pricing.UpdateItem(q, itemID, field, value)
		if !ok {
			return entities.Quote{}, ErrInvalidItemField
		}
		return next, nil
	})
}

// ApplyMenu adds every service of the menu on the given date. Services already
// on that date are left as they are.
func (u *QuoteUseCase) ApplyMenu(ctx context.Context, id, menuID, eventDate string, v pricing.Visibility) (QuoteView, error) {
	return u.mutate(ctx, id, v, "apply_menu", func(q entities.Quote) (entities.Quote, error) {
		date, err := resolveEventDate(q, eventDate)
		if err != nil {
			return entities.Quote{}, err
		}
		menu, err := u.catalog.GetMenu(ctx, menuID)
		if err != nil {
			return entities.Quote{}, err
		}
		for _, serviceID := range menu.ServiceIDs {
			q, _ = pricing.AddItem(q, serviceID, date)
		}
		return q, nil
	})
}

// mutate loads the quote, applies fn and saves the result with its totals
// computed at full visibility. The returned view is computed for v.
//
// The save only succeeds if nobody else saved the quote since it was loaded;
// otherwise ErrQuoteConflict is returned and the caller may retry.
func (u *QuoteUseCase) mutate(ctx context.Context, id string, v pricing.Visibility, op string, fn func(entities.Quote) (entities.Quote, error)) (QuoteView, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return QuoteView{}, err
	}

	next, err := fn(q)
	if err != nil {
		u.metrics.ItemMutation(op, false)
		return QuoteView{}, err
	}
	u.metrics.ItemMutation(op, true)
	if !v.HasPricing() {
		next = keepPricingInputs(q, next)
	}

	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	stored := pricing.Compute(catalog, next, pricing.Full).Apply(next)
	stored.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, stored)
	if errors.Is(err, interfaces.ErrStaleWrite) {
		u.log.Warn().Str("quote_id", q.ID).Str("op", op).Msg("concurrent quote update rejected")
		return QuoteView{}, ErrQuoteConflict
	}
	if err != nil {
		return QuoteView{}, err
	}
	if updated.ID == "" {
		return QuoteView{}, ErrQuoteNotFound
	}
	return u.view(catalog, updated, v), nil
}

// price computes q for v against a fresh catalog snapshot.
func (u *QuoteUseCase) price(ctx context.Context, q entities.Quote, v pricing.Visibility) (QuoteView, error) {
	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	return u.view(catalog, q, v), nil
}

// view annotates a sanitized copy of q for v. q itself is left as stored.
func (u *QuoteUseCase) view(catalog pricing.Catalog, q entities.Quote, v pricing.Visibility) QuoteView {
	q = v.Sanitize(q)
	res := pricing.Compute(catalog, q, v)
	u.metrics.QuoteComputed(v.HasPricing())

	if len(res.Orphaned) > 0 {
		u.log.Warn().Str("quote_id", q.ID).Strs("item_ids", res.Orphaned).Msg("items reference unknown services")
	}
	if len(res.MissingPrices) > 0 {
		u.log.Warn().Str("quote_id", q.ID).Str("price_table_id", q.PriceTableID).Strs("item_ids", res.MissingPrices).Msg("items have no price on the selected table")
	}

	return QuoteView{Quote: res.Apply(q), Pricing: res}
}

// keepPricingInputs restores on next the pricing inputs stored on prev.
// Items that are new in next keep the discount they were created with.
func keepPricingInputs(prev, next entities.Quote) entities.Quote {
	next.PriceTableID = prev.PriceTableID
	next.DiscountGeneral = prev.DiscountGeneral

	discounts := make(map[string]float64, len(prev.Items))
	for _, it := range prev.Items {
		discounts[it.ID] = it.DiscountPercent
	}
	for i, it := range next.Items {
		if d, ok := discounts[it.ID]; ok {
			next.Items[i].DiscountPercent = d
		}
	}
	return next
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) requireService(ctx context.Context, serviceID string) error {
	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		return err
	}
	for _, s := range catalog.Services {
		if s.ID == serviceID {
			return nil
		}
	}
	return ErrServiceNotFound
}

func checkQuoteInput(in QuoteInput) error {
	if strings.TrimSpace(in.Client.Name) == "" || in.GuestCount < 0 {
		return ErrInvalidQuoteInput
	}
	if in.DiscountGeneral < 0 {
		return ErrInvalidQuoteInput
	}
	for _, d := range in.EventDates {
		if strings.TrimSpace(d.Date) == "" {
			return ErrInvalidQuoteInput
		}
	}
	return nil
}

// applyHeader copies the header fields onto q. Dates without an id get one;
// items on dates that disappear are kept and keep their date reference.
func applyHeader(q entities.Quote, in QuoteInput) entities.Quote {
	q = q.Clone()
	q.Client = in.Client
	q.Client.Name = strings.TrimSpace(q.Client.Name)
	q.GuestCount = in.GuestCount
	q.PriceTableID = strings.TrimSpace(in.PriceTableID)
	q.DiscountGeneral = in.DiscountGeneral

	dates := make([]entities.EventDate, len(in.EventDates))
	for i, d := range in.EventDates {
		if strings.TrimSpace(d.ID) == "" {
			d.ID = uuid.NewString()
		}
		dates[i] = d
	}
	q.EventDates = dates
	return q
}

func resolveEventDate(q entities.Quote, eventDate string) (string, error) {
	if len(q.EventDates) == 0 {
		return "", ErrNoEventDates
	}
	eventDate = strings.TrimSpace(eventDate)
	if eventDate == "" {
		return q.EventDates[0].ID, nil
	}
	if !q.HasEventDate(eventDate) {
		return "", ErrUnknownEventDate
	}
	return eventDate, nil
}

func hasItem(q entities.Quote, itemID string) bool {
	for _, it := range q.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

func validQuoteStatus(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusDraft, entities.QuoteStatusRequested, entities.QuoteStatusSent,
		entities.QuoteStatusWon, entities.QuoteStatusLost:
		return true
	}
	return false
}
