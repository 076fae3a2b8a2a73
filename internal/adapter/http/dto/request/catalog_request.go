package request

import (
	"strings"

	"espaco_vista/internal/domain/entities"
)

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,oneof=space food_beverage equipment other"`
	Unit        string `json:"unit" binding:"omitempty,oneof=unit per_day per_person"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Category:    entities.ServiceCategory(r.Category),
		Unit:        entities.ServiceUnit(r.Unit),
	}
}

type PriceTableRequest struct {
	Name             string  `json:"name" binding:"required"`
	ConsumableCredit float64 `json:"consumable_credit" binding:"gte=0"`
}

func (r PriceTableRequest) ToEntity() entities.PriceTable {
	return entities.PriceTable{
		Name:             strings.TrimSpace(r.Name),
		ConsumableCredit: r.ConsumableCredit,
	}
}

// ServicePriceRequest sets the price of a service on a table. Price is a
// pointer so that an explicit zero is accepted.
type ServicePriceRequest struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type MenuRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ServiceIDs  []string `json:"service_ids" binding:"required,min=1,dive,required"`
}

func (r MenuRequest) ToEntity() entities.Menu {
	return entities.Menu{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		ServiceIDs:  r.ServiceIDs,
	}
}
