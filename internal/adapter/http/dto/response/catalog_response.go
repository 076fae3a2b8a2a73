package response

import (
	"time"

	"espaco_vista/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Unit:        string(s.Unit),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

type PriceTableResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ConsumableCredit float64   `json:"consumable_credit"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPriceTable(t entities.PriceTable) PriceTableResponse {
	return PriceTableResponse{
		ID:               t.ID,
		Name:             t.Name,
		ConsumableCredit: t.ConsumableCredit,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromPriceTables(list []entities.PriceTable) []PriceTableResponse {
	out := make([]PriceTableResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromPriceTable(t))
	}
	return out
}

type ServicePriceResponse struct {
	ServiceID    string  `json:"service_id"`
	PriceTableID string  `json:"price_table_id"`
	Price        float64 `json:"price"`
}

func FromServicePrices(list []entities.ServicePrice) []ServicePriceResponse {
	out := make([]ServicePriceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ServicePriceResponse(p))
	}
	return out
}

type MenuResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ServiceIDs  []string  `json:"service_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromMenu(m entities.Menu) MenuResponse {
	ids := m.ServiceIDs
	if ids == nil {
		ids = []string{}
	}
	return MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ServiceIDs:  ids,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromMenus(list []entities.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMenu(m))
	}
	return out
}
