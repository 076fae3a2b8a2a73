package pricing

import (
	"math"

	"espaco_vista/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Item fields accepted by UpdateItem.
const (
	FieldQuantity        = "quantity"
	FieldDiscountPercent = "discount_percent"
	FieldEventDate       = "event_date"
	FieldObservations    = "observations"
	FieldServiceID       = "service_id"
)

var newItemID = uuid.NewString

// AddItem appends a line for serviceID on eventDate. It reports false and
// returns q unchanged when a line with the same service and date exists;
// the same service on another date is allowed.
func AddItem(q entities.Quote, serviceID, eventDate string) (entities.Quote, bool) {
	for _, it := range q.Items {
		if it.ServiceID == serviceID && it.EventDate == eventDate {
			return q, false
		}
	}
	out := q.Clone()
	out.Items = append(out.Items, entities.QuoteItem{
		ID:        newItemID(),
		ServiceID: serviceID,
		Quantity:  1,
		EventDate: eventDate,
	})
	return out, true
}

// DuplicateItem inserts a copy of itemID right after it and returns the id
// of the copy.
func DuplicateItem(q entities.Quote, itemID string) (entities.Quote, string, bool) {
	idx := indexOf(q.Items, itemID)
	if idx < 0 {
		return q, "", false
	}
	dup := q.Items[idx]
	dup.ID = newItemID()

	out := q.Clone()
	out.Items = make([]entities.QuoteItem, 0, len(q.Items)+1)
	out.Items = append(out.Items, q.Items[:idx+1]...)
	out.Items = append(out.Items, dup)
	out.Items = append(out.Items, q.Items[idx+1:]...)
	return out, dup.ID, true
}

// RemoveItem drops itemID. Unknown ids leave the items untouched.
func RemoveItem(q entities.Quote, itemID string) entities.Quote {
	out := q.Clone()
	out.Items = out.Items[:0]
	for _, it := range q.Items {
		if it.ID != itemID {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// UpdateItem sets one field of itemID. Numeric fields are coerced from any
// value and fall back to zero when the value does not parse.
func UpdateItem(q entities.Quote, itemID, field string, value any) (entities.Quote, bool) {
	idx := indexOf(q.Items, itemID)
	if idx < 0 {
		return q, false
	}
	out := q.Clone()
	it := &out.Items[idx]

	switch field {
	case FieldQuantity:
		n := int(toNumber(value))
		if n < 0 {
			n = 0
		}
		it.Quantity = n
	case FieldDiscountPercent:
		it.DiscountPercent = clampPercent(toNumber(value))
	case FieldEventDate:
		it.EventDate = cast.ToString(value)
	case FieldObservations:
		it.Observations = cast.ToString(value)
	case FieldServiceID:
		it.ServiceID = cast.ToString(value)
	default:
		return q, false
	}
	return out, true
}

func toNumber(value any) float64 {
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func indexOf(items []entities.QuoteItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
