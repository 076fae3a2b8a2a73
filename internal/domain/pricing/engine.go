// Package pricing computes quote totals and edits quote item collections.
//
// Everything here is synchronous and free of I/O. Inputs are never modified:
// each operation returns new values, so a quote can be computed from several
// call sites without aliasing. Inconsistent data (unknown services, missing
// prices or tables) degrades to a zero contribution instead of an error, so a
// quote stays renderable after the catalog changes underneath it.
package pricing

import (
	"espaco_vista/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Catalog is the in-memory snapshot a computation runs against.
type Catalog struct {
	Services    []entities.Service      `json:"services"`
	PriceTables []entities.PriceTable   `json:"price_tables"`
	Prices      []entities.ServicePrice `json:"prices"`
}

// Result is the outcome of Compute.
//
// Items mirrors the quote items in order, annotated with the calculated
// fields. Orphaned lists items whose service is unknown; they are copied
// through untouched and excluded from the totals. MissingPrices lists items
// priced at zero because the selected table has no record for their service.
type Result struct {
	Items            []entities.QuoteItem `json:"items"`
	Subtotal         float64              `json:"subtotal"`
	ConsumableCredit float64              `json:"consumable_credit"`
	DiscountGeneral  float64              `json:"discount_general"`
	Total            float64              `json:"total"`
	Orphaned         []string             `json:"orphaned,omitempty"`
	MissingPrices    []string             `json:"missing_prices,omitempty"`
}

// Compute prices every item of q and aggregates the quote totals.
func Compute(c Catalog, q entities.Quote, v Visibility) Result {
	services := make(map[string]entities.Service, len(c.Services))
	for _, s := range c.Services {
		services[s.ID] = s
	}

	tableID := v.PriceTableID(q)
	table := findTable(c.PriceTables, tableID)
	prices := pricesForTable(c.Prices, tableID)

	res := Result{Items: make([]entities.QuoteItem, len(q.Items))}
	subtotal := decimal.Zero

	for i, it := range q.Items {
		res.Items[i] = it

		svc, ok := services[it.ServiceID]
		if !ok {
			res.Orphaned = append(res.Orphaned, it.ID)
			continue
		}

		base := decimal.Zero
		if tableID != "" {
			if p, found := prices[it.ServiceID]; found {
				base = nonNegative(p)
			} else {
				res.MissingPrices = append(res.MissingPrices, it.ID)
			}
		}

		quantity := it.Quantity
		if svc.IsPerPerson() {
			quantity = q.GuestCount
		}
		if quantity < 0 {
			quantity = 0
		}

		cost := base.Mul(decimal.NewFromInt(int64(quantity)))
		line := cost.Mul(decimal.NewFromInt(1).Sub(v.ItemDiscountRate(it)))

		annotated := &res.Items[i]
		annotated.Quantity = quantity
		annotated.CalculatedUnitPrice = base.InexactFloat64()
		annotated.CalculatedTotal = line.InexactFloat64()

		subtotal = subtotal.Add(line)
	}

	discountGeneral := v.DiscountGeneral(q)
	credit := v.ConsumableCredit(table)
	total := nonNegative(subtotal.Sub(discountGeneral).Sub(credit))

	res.Subtotal = subtotal.InexactFloat64()
	res.DiscountGeneral = discountGeneral.InexactFloat64()
	res.ConsumableCredit = credit.InexactFloat64()
	res.Total = total.InexactFloat64()
	return res
}

// Apply copies the annotated items and totals of r onto a clone of q.
func (r Result) Apply(q entities.Quote) entities.Quote {
	out := q.Clone()
	out.Items = append([]entities.QuoteItem(nil), r.Items...)
	out.Subtotal = r.Subtotal
	out.Total = r.Total
	return out
}

func findTable(tables []entities.PriceTable, id string) *entities.PriceTable {
	if id == "" {
		return nil
	}
	for i := range tables {
		if tables[i].ID == id {
			return &tables[i]
		}
	}
	return nil
}

func pricesForTable(prices []entities.ServicePrice, tableID string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	if tableID == "" {
		return out
	}
	for _, p := range prices {
		if p.PriceTableID == tableID {
			out[p.ServiceID] = fromFloat(p.Price)
		}
	}
	return out
}
