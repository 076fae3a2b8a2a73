package usecase

import (
	"context"
	"errors"
	"testing"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/infrastructure/metrics"
	"espaco_vista/internal/usecase/interfaces"
	mock_interfaces "espaco_vista/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func quoteCatalog() pricing.Catalog {
	return pricing.Catalog{
		Services: []entities.Service{
			{ID: "hall", Name: "Hall", Category: entities.ServiceCategorySpace, Unit: entities.ServiceUnitPerDay},
			{ID: "buffet", Name: "Buffet", Category: entities.ServiceCategoryFoodBeverage, Unit: entities.ServiceUnitPerPerson},
			{ID: "dj", Name: "DJ", Category: entities.ServiceCategoryEquipment, Unit: entities.ServiceUnitFlat},
		},
		PriceTables: []entities.PriceTable{{ID: "pt-1", Name: "Weekend", ConsumableCredit: 100}},
		Prices: []entities.ServicePrice{
			{ServiceID: "hall", PriceTableID: "pt-1", Price: 500},
			{ServiceID: "buffet", PriceTableID: "pt-1", Price: 10},
			{ServiceID: "dj", PriceTableID: "pt-1", Price: 200},
		},
	}
}

func storedQuote() entities.Quote {
	return entities.Quote{
		ID:              "q-1",
		Client:          entities.Client{Name: "Ana"},
		GuestCount:      50,
		PriceTableID:    "pt-1",
		DiscountGeneral: 20,
		Status:          entities.QuoteStatusDraft,
		EventDates:      []entities.EventDate{{ID: "d1", Date: "2026-12-05"}, {ID: "d2", Date: "2026-12-06"}},
		Items: []entities.QuoteItem{
			{ID: "i1", ServiceID: "hall", Quantity: 1, EventDate: "d1"},
			{ID: "i2", ServiceID: "buffet", Quantity: 1, DiscountPercent: 10, EventDate: "d1"},
		},
	}
}

type quoteMocks struct {
	repo    *mock_interfaces.MockIQuoteRepository
	catalog *mock_interfaces.MockICatalogReader
}

func newQuoteUseCase(t *testing.T, m *metrics.Metrics) (*QuoteUseCase, quoteMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	qm := quoteMocks{
		repo:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		catalog: mock_interfaces.NewMockICatalogReader(ctrl),
	}
	return NewQuoteUseCase(qm.repo, qm.catalog, m, zerolog.Nop()), qm
}

func echoUpdate(_ context.Context, q entities.Quote) (entities.Quote, error) {
	return q, nil
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.Create(context.Background(), QuoteInput{Client: entities.Client{Name: " "}}, pricing.Full)
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("hidden viewer cannot set pricing inputs", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.PriceTableID != "" || q.DiscountGeneral != 0 {
					t.Fatalf("expected pricing inputs stripped, got %+v", q)
				}
				if q.ID == "" || q.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if len(q.EventDates) != 1 || q.EventDates[0].ID == "" {
					t.Fatalf("expected event date id, got %+v", q.EventDates)
				}
				return q, nil
			},
		)

		_, err := uc.Create(context.Background(), QuoteInput{
			Client:          entities.Client{Name: "Ana"},
			GuestCount:      10,
			PriceTableID:    "pt-1",
			DiscountGeneral: 50,
			EventDates:      []entities.EventDate{{Date: "2026-12-05"}},
		}, pricing.Hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		if _, err := uc.Get(context.Background(), "q-1", pricing.Full); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		if _, err := uc.Get(context.Background(), " ", pricing.Full); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("full visibility prices the quote", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		met := metrics.New(reg)
		uc, m := newQuoteUseCase(t, met)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)

		view, err := uc.Get(context.Background(), "q-1", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 500 + 50*10*0.9 = 950, minus credit 100 and discount 20.
		if view.Pricing.Subtotal != 950 || view.Pricing.Total != 830 {
			t.Fatalf("unexpected pricing: %+v", view.Pricing)
		}
		if view.Quote.Items[1].Quantity != 50 || view.Quote.Items[1].CalculatedTotal != 450 {
			t.Fatalf("unexpected buffet line: %+v", view.Quote.Items[1])
		}
		if got := testutil.ToFloat64(met.QuoteComputations.WithLabelValues("pricing")); got != 1 {
			t.Fatalf("expected one full computation, got %v", got)
		}
	})

	t.Run("hidden visibility zeroes prices", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)

		view, err := uc.Get(context.Background(), "q-1", pricing.Hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Pricing.Total != 0 || view.Quote.PriceTableID != "" || view.Quote.DiscountGeneral != 0 {
			t.Fatalf("expected hidden pricing, got %+v", view)
		}
	})

	t.Run("snapshot error", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(pricing.Catalog{}, errors.New("db"))
		if _, err := uc.Get(context.Background(), "q-1", pricing.Full); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddItem(t *testing.T) {
	t.Run("no event dates", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		q := storedQuote()
		q.EventDates = nil
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if _, err := uc.AddItem(context.Background(), "q-1", "dj", "", pricing.Full); !errors.Is(err, ErrNoEventDates) {
			t.Fatalf("expected ErrNoEventDates, got %v", err)
		}
	})

	t.Run("unknown event date", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		if _, err := uc.AddItem(context.Background(), "q-1", "dj", "d9", pricing.Full); !errors.Is(err, ErrUnknownEventDate) {
			t.Fatalf("expected ErrUnknownEventDate, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)

		if _, err := uc.AddItem(context.Background(), "q-1", "ghost", "", pricing.Full); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("duplicate on same date", func(t *testing.T) {
		met := metrics.New(prometheus.NewRegistry())
		uc, m := newQuoteUseCase(t, met)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)

		if _, err := uc.AddItem(context.Background(), "q-1", "hall", "d1", pricing.Full); !errors.Is(err, ErrDuplicateItem) {
			t.Fatalf("expected ErrDuplicateItem, got %v", err)
		}
		if got := testutil.ToFloat64(met.ItemMutations.WithLabelValues("add", "noop")); got != 1 {
			t.Fatalf("expected one no-op add, got %v", got)
		}
	})

	t.Run("same service on another date", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil).Times(2)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.AddItem(context.Background(), "q-1", "hall", "d2", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := view.Quote.Items
		if len(items) != 3 || items[2].ServiceID != "hall" || items[2].EventDate != "d2" || items[2].ID == "" {
			t.Fatalf("unexpected items: %+v", items)
		}
		if view.Quote.Subtotal != 1450 || view.Quote.Total != 1330 {
			t.Fatalf("unexpected totals: %v %v", view.Quote.Subtotal, view.Quote.Total)
		}
	})

	t.Run("default date is the first one", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil).Times(2)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.AddItem(context.Background(), "q-1", "dj", "", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := view.Quote.Items[2].EventDate; got != "d1" {
			t.Fatalf("expected d1, got %q", got)
		}
	})
}

func TestQuoteUseCase_ItemEdits(t *testing.T) {
	t.Run("duplicate keeps ids and inserts after source", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.DuplicateItem(context.Background(), "q-1", "i1", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := view.Quote.Items
		if len(items) != 3 || items[0].ID != "i1" || items[2].ID != "i2" || items[1].ServiceID != "hall" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("duplicate unknown item", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		if _, err := uc.DuplicateItem(context.Background(), "q-1", "nope", pricing.Full); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("remove unknown item is a no-op", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.RemoveItem(context.Background(), "q-1", "nope", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Quote.Items) != 2 {
			t.Fatalf("expected items untouched, got %+v", view.Quote.Items)
		}
	})

	t.Run("update quantity", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.UpdateItem(context.Background(), "q-1", "i1", pricing.FieldQuantity, float64(2), pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Quote.Items[0].Quantity != 2 || view.Quote.Items[0].CalculatedTotal != 1000 {
			t.Fatalf("unexpected line: %+v", view.Quote.Items[0])
		}
	})

	t.Run("update unknown field", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		if _, err := uc.UpdateItem(context.Background(), "q-1", "i1", "color", "red", pricing.Full); !errors.Is(err, ErrInvalidItemField) {
			t.Fatalf("expected ErrInvalidItemField, got %v", err)
		}
	})

	t.Run("move to unknown date", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		if _, err := uc.UpdateItem(context.Background(), "q-1", "i1", pricing.FieldEventDate, "d9", pricing.Full); !errors.Is(err, ErrUnknownEventDate) {
			t.Fatalf("expected ErrUnknownEventDate, got %v", err)
		}
	})

	t.Run("update unknown item", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		if _, err := uc.UpdateItem(context.Background(), "q-1", "nope", pricing.FieldQuantity, 1, pricing.Full); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("repo update error", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		if _, err := uc.RemoveItem(context.Background(), "q-1", "i1", pricing.Full); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_HiddenViewerKeepsStoredPricing(t *testing.T) {
	assertPricingKept := func(t *testing.T, q entities.Quote) {
		t.Helper()
		if q.PriceTableID != "pt-1" || q.DiscountGeneral != 20 {
			t.Fatalf("expected stored pricing inputs, got table=%q discount=%v", q.PriceTableID, q.DiscountGeneral)
		}
		for _, it := range q.Items {
			if it.ID == "i2" && it.DiscountPercent != 10 {
				t.Fatalf("expected item discount kept, got %+v", it)
			}
		}
	}

	t.Run("no-op remove saves full totals and keeps pricing", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				assertPricingKept(t, q)
				// 500 + 50*10*0.9 - 20 - 100 credit.
				if q.Total != 830 {
					t.Fatalf("expected stored total 830, got %v", q.Total)
				}
				return q, nil
			},
		)

		view, err := uc.RemoveItem(context.Background(), "q-1", "does-not-exist", pricing.Hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Quote.Total != 0 || view.Quote.PriceTableID != "" || view.Pricing.Subtotal != 0 {
			t.Fatalf("expected hidden view, got %+v", view.Quote)
		}
	})

	t.Run("header update ignores pricing inputs", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				assertPricingKept(t, q)
				if q.GuestCount != 80 {
					t.Fatalf("expected guest count updated, got %d", q.GuestCount)
				}
				return q, nil
			},
		)

		_, err := uc.UpdateHeader(context.Background(), "q-1", QuoteInput{
			Client:     entities.Client{Name: "Ana"},
			GuestCount: 80,
			EventDates: []entities.EventDate{{ID: "d1", Date: "2026-12-05"}},
		}, pricing.Hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("item edit keeps other discounts", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				assertPricingKept(t, q)
				return q, nil
			},
		)

		if _, err := uc.UpdateItem(context.Background(), "q-1", "i1", pricing.FieldQuantity, 2, pricing.Hidden); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("discount edit is refused", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.UpdateItem(context.Background(), "q-1", "i2", pricing.FieldDiscountPercent, 50, pricing.Hidden)
		if !errors.Is(err, ErrPricingForbidden) {
			t.Fatalf("expected ErrPricingForbidden, got %v", err)
		}
	})
}

func TestQuoteUseCase_ConcurrentUpdate(t *testing.T) {
	t.Run("item edit", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrStaleWrite)

		if _, err := uc.DuplicateItem(context.Background(), "q-1", "i1", pricing.Full); !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})

	t.Run("status", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrStaleWrite)

		if _, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusWon); !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_ApplyMenu(t *testing.T) {
	t.Run("adds missing services only", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().GetMenu(gomock.Any(), "menu-1").Return(entities.Menu{ID: "menu-1", ServiceIDs: []string{"buffet", "dj"}}, nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.ApplyMenu(context.Background(), "q-1", "menu-1", "d1", pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := view.Quote.Items
		if len(items) != 3 || items[2].ServiceID != "dj" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("menu not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().GetMenu(gomock.Any(), "menu-1").Return(entities.Menu{}, ErrMenuNotFound)

		if _, err := uc.ApplyMenu(context.Background(), "q-1", "menu-1", "", pricing.Full); !errors.Is(err, ErrMenuNotFound) {
			t.Fatalf("expected ErrMenuNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_HeaderAndStatus(t *testing.T) {
	t.Run("update header keeps items", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.catalog.EXPECT().Snapshot(gomock.Any()).Return(quoteCatalog(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		view, err := uc.UpdateHeader(context.Background(), "q-1", QuoteInput{
			Client:       entities.Client{Name: "Ana"},
			GuestCount:   100,
			PriceTableID: "pt-1",
			EventDates:   []entities.EventDate{{ID: "d1", Date: "2026-12-05"}},
		}, pricing.Full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Quote.Items) != 2 || view.Quote.GuestCount != 100 {
			t.Fatalf("unexpected quote: %+v", view.Quote)
		}
		// 500 + 100*10*0.9 - 100 credit.
		if view.Quote.Total != 1300 {
			t.Fatalf("expected 1300, got %v", view.Quote.Total)
		}
	})

	t.Run("negative guest count", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		_, err := uc.UpdateHeader(context.Background(), "q-1", QuoteInput{Client: entities.Client{Name: "Ana"}, GuestCount: -1}, pricing.Full)
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t, nil)
		if _, err := uc.UpdateStatus(context.Background(), "q-1", "archived"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("status success", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		q, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusWon)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusWon {
			t.Fatalf("expected won, got %s", q.Status)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil)
		if err := uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
