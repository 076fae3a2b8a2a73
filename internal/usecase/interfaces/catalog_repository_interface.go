package interfaces

import (
	"context"

	"espaco_vista/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// IServiceRepository abstracts DynamoDB persistence for catalog services.
//
// Lookups return a zero value (empty ID) and a nil error when nothing matches.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Service, error)
}

// IPriceTableRepository persists price tables and the (service, table) prices.
type IPriceTableRepository interface {
	Create(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error)
	GetByID(ctx context.Context, id string) (entities.PriceTable, error)
	Update(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.PriceTable, error)

	UpsertPrice(ctx context.Context, p entities.ServicePrice) error
	DeletePrice(ctx context.Context, serviceID, priceTableID string) (bool, error)
	ListPrices(ctx context.Context) ([]entities.ServicePrice, error)
	ListPricesByTable(ctx context.Context, priceTableID string) ([]entities.ServicePrice, error)
}

// IMenuRepository persists menu compositions.
type IMenuRepository interface {
	Create(ctx context.Context, menu entities.Menu) (entities.Menu, error)
	GetByID(ctx context.Context, id string) (entities.Menu, error)
	Update(ctx context.Context, menu entities.Menu) (entities.Menu, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Menu, error)
}
