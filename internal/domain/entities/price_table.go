package entities

import "time"

// PriceTable is a named pricing profile. ConsumableCredit is deducted from
// the total of any quote priced with this table.
//
// Storage model (DynamoDB):
//   - PK: id
type PriceTable struct {
	ID               string    `json:"id"`
	Name             string    `json:"name" validate:"required"`
	ConsumableCredit float64   `json:"consumable_credit" validate:"gte=0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ServicePrice is the price of one service on one table.
//
// Storage model (DynamoDB):
//   - PK: service_id
//   - SK: price_table_id
//   - GSI1 (price_table_id-index): price_table_id
type ServicePrice struct {
	ServiceID    string  `json:"service_id" validate:"required"`
	PriceTableID string  `json:"price_table_id" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
}
