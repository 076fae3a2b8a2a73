package response

import (
	"testing"
	"time"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/usecase"
)

func TestFromQuoteView(t *testing.T) {
	view := usecase.QuoteView{
		Quote: entities.Quote{
			ID:         "q-1",
			Client:     entities.Client{Name: "Ana"},
			EventDates: []entities.EventDate{{ID: "d1", Date: "2026-12-01"}},
			Items: []entities.QuoteItem{
				{ID: "i1", ServiceID: "hall", Quantity: 1, CalculatedUnitPrice: 500, CalculatedTotal: 500},
				{ID: "i2", ServiceID: "ghost", Quantity: 1},
			},
			Status: entities.QuoteStatusSent,
		},
		Pricing: pricing.Result{Subtotal: 500, ConsumableCredit: 100, Total: 400, Orphaned: []string{"i2"}},
	}

	res := FromQuoteView(view, true)
	if res.ID != "q-1" || res.Status != "sent" || !res.PricingVisible {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.Subtotal != 500 || res.ConsumableCredit != 100 || res.Total != 400 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.Items) != 2 || res.Items[0].CalculatedTotal != 500 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Warnings == nil || len(res.Warnings.OrphanedItems) != 1 {
		t.Fatalf("expected orphan warning, got %+v", res.Warnings)
	}

	empty := FromQuoteView(usecase.QuoteView{Quote: entities.Quote{ID: "q-2"}}, false)
	if empty.Items == nil || empty.EventDates == nil || empty.Warnings != nil {
		t.Fatalf("expected empty slices and no warnings: %+v", empty)
	}
}

func TestFromQuoteSummaries(t *testing.T) {
	list := []entities.Quote{{ID: "q-1", Client: entities.Client{Name: "Ana"}, Total: 830, EventDates: []entities.EventDate{{ID: "d1", Date: "2026-12-01"}}}}

	visible := FromQuoteSummaries(list, true)
	if visible[0].Total != 830 || visible[0].FirstDate != "2026-12-01" || visible[0].ClientName != "Ana" {
		t.Fatalf("unexpected summary: %+v", visible[0])
	}
	hidden := FromQuoteSummaries(list, false)
	if hidden[0].Total != 0 {
		t.Fatalf("expected hidden total, got %v", hidden[0].Total)
	}
}

func TestFromEvent(t *testing.T) {
	paidAt := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	e := entities.Event{
		ID:    "ev-1",
		Total: 300,
		Installments: []entities.Installment{
			{Number: 1, DueDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), Amount: 100, Status: entities.InstallmentStatusPaid, PaidAt: &paidAt},
			{Number: 2, DueDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), Amount: 200, Status: entities.InstallmentStatusPending},
		},
	}

	res := FromEvent(e)
	if res.Paid != 100 {
		t.Fatalf("expected paid 100, got %v", res.Paid)
	}
	if res.Installments[1].DueDate != "2026-12-01" || res.Installments[1].Status != "pending" {
		t.Fatalf("unexpected installment: %+v", res.Installments[1])
	}
}

func TestCatalogMappers(t *testing.T) {
	if got := FromMenu(entities.Menu{ID: "m-1"}); got.ServiceIDs == nil {
		t.Fatalf("expected empty service ids slice")
	}
	prices := FromServicePrices([]entities.ServicePrice{{ServiceID: "hall", PriceTableID: "pt-1", Price: 500}})
	if len(prices) != 1 || prices[0].Price != 500 {
		t.Fatalf("unexpected prices: %+v", prices)
	}
	if got := FromServices(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
