package entities

import "time"

// Menu is a named composition of catalog services (e.g. a buffet) that can be
// applied to a quote in one step.
type Menu struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	ServiceIDs  []string  `json:"service_ids" validate:"required,min=1,dive,required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
