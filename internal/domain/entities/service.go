package entities

import "time"

// ServiceCategory groups catalog entries for display and filtering.
type ServiceCategory string

const (
	ServiceCategorySpace        ServiceCategory = "space"
	ServiceCategoryFoodBeverage ServiceCategory = "food_beverage"
	ServiceCategoryEquipment    ServiceCategory = "equipment"
	ServiceCategoryOther        ServiceCategory = "other"
)

// ServiceUnit drives how a quote line quantity is resolved.
type ServiceUnit string

const (
	ServiceUnitFlat      ServiceUnit = "unit"
	ServiceUnitPerDay    ServiceUnit = "per_day"
	ServiceUnitPerPerson ServiceUnit = "per_person"
)

// Service is a sellable catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Category    ServiceCategory `json:"category" validate:"oneof=space food_beverage equipment other"`
	Unit        ServiceUnit     `json:"unit" validate:"oneof=unit per_day per_person"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsPerPerson reports whether the line quantity follows the guest count.
func (s Service) IsPerPerson() bool {
	return s.Unit == ServiceUnitPerPerson
}
