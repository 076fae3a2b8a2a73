package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"espaco_vista/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemIDs(items []entities.QuoteItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestAddItem(t *testing.T) {
	q := entities.Quote{EventDates: []entities.EventDate{{ID: "d1"}, {ID: "d2"}}}

	q, added := AddItem(q, "svc-buffet", "d1")
	require.True(t, added)
	require.Len(t, q.Items, 1)
	item := q.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.Zero(t, item.DiscountPercent)
	assert.Empty(t, item.Observations)
	assert.Equal(t, "d1", item.EventDate)

	t.Run("same service and date is rejected", func(t *testing.T) {
		again, added := AddItem(q, "svc-buffet", "d1")
		assert.False(t, added)
		assert.Len(t, again.Items, 1)
	})

	t.Run("same service on another date is accepted", func(t *testing.T) {
		other, added := AddItem(q, "svc-buffet", "d2")
		assert.True(t, added)
		assert.Len(t, other.Items, 2)
		assert.Len(t, q.Items, 1, "input quote untouched")
	})
}

func TestDuplicateItem(t *testing.T) {
	q := entities.Quote{Items: []entities.QuoteItem{
		{ID: "a", ServiceID: "s1", Quantity: 1},
		{ID: "b", ServiceID: "s2", Quantity: 3, DiscountPercent: 5, Observations: "vegan"},
		{ID: "c", ServiceID: "s3", Quantity: 1},
	}}

	out, newID, ok := DuplicateItem(q, "b")

	require.True(t, ok)
	require.Len(t, out.Items, 4)
	assert.NotEqual(t, "b", newID)
	assert.Equal(t, []string{"a", "b", newID, "c"}, itemIDs(out.Items))
	copied := out.Items[2]
	assert.Equal(t, "s2", copied.ServiceID)
	assert.Equal(t, 3, copied.Quantity)
	assert.Equal(t, 5.0, copied.DiscountPercent)
	assert.Equal(t, "vegan", copied.Observations)
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(q.Items))

	t.Run("unknown id", func(t *testing.T) {
		same, id, ok := DuplicateItem(q, "zzz")
		assert.False(t, ok)
		assert.Empty(t, id)
		assert.Equal(t, q, same)
	})
}

func TestRemoveItem(t *testing.T) {
	q := entities.Quote{Items: []entities.QuoteItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	out := RemoveItem(q, "b")
	assert.Equal(t, []string{"a", "c"}, itemIDs(out.Items))
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(q.Items))

	unchanged := RemoveItem(q, "missing")
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(unchanged.Items))
}

func TestUpdateItem(t *testing.T) {
	q := entities.Quote{Items: []entities.QuoteItem{{ID: "a", Quantity: 1}}}

	cases := []struct {
		name  string
		field string
		value any
		check func(t *testing.T, it entities.QuoteItem)
	}{
		{"quantity from string", FieldQuantity, "7", func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 7, it.Quantity) }},
		{"quantity from json number", FieldQuantity, json.Number("4"), func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 4, it.Quantity) }},
		{"quantity parse failure", FieldQuantity, "abc", func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 0, it.Quantity) }},
		{"negative quantity", FieldQuantity, -3, func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 0, it.Quantity) }},
		{"discount from float", FieldDiscountPercent, 12.5, func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 12.5, it.DiscountPercent) }},
		{"discount parse failure", FieldDiscountPercent, "ten", func(t *testing.T, it entities.QuoteItem) { assert.Zero(t, it.DiscountPercent) }},
		{"discount above 100", FieldDiscountPercent, 150, func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 100.0, it.DiscountPercent) }},
		{"discount NaN", FieldDiscountPercent, "NaN", func(t *testing.T, it entities.QuoteItem) { assert.Zero(t, it.DiscountPercent) }},
		{"discount infinity", FieldDiscountPercent, "+Inf", func(t *testing.T, it entities.QuoteItem) { assert.Zero(t, it.DiscountPercent) }},
		{"quantity NaN", FieldQuantity, math.NaN(), func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 0, it.Quantity) }},
		{"quantity infinity", FieldQuantity, "Inf", func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, 0, it.Quantity) }},
		{"observations raw", FieldObservations, "no nuts", func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, "no nuts", it.Observations) }},
		{"event date raw", FieldEventDate, "d2", func(t *testing.T, it entities.QuoteItem) { assert.Equal(t, "d2", it.EventDate) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, ok := UpdateItem(q, "a", tc.field, tc.value)
			require.True(t, ok)
			tc.check(t, out.Items[0])
			assert.Equal(t, 1, q.Items[0].Quantity)
		})
	}

	t.Run("non finite discount still computes", func(t *testing.T) {
		quote := fixtureQuote()
		out, ok := UpdateItem(quote, "i-1", FieldDiscountPercent, "NaN")
		require.True(t, ok)

		var res Result
		require.NotPanics(t, func() { res = Compute(fixtureCatalog(), out, Full) })
		assert.Equal(t, 1000.0, res.Subtotal)
	})

	t.Run("unknown item", func(t *testing.T) {
		out, ok := UpdateItem(q, "zzz", FieldQuantity, 2)
		assert.False(t, ok)
		assert.Equal(t, q, out)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, ok := UpdateItem(q, "a", "price", 2)
		assert.False(t, ok)
	})
}
