package interfaces

import (
	"context"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/domain/pricing"
)

//go:generate mockgen -source=catalog_cache_interface.go -destination=mocks/catalog_cache_mock.go -package=mock_interfaces

// ICatalogCache stores the pricing catalog snapshot between requests.
type ICatalogCache interface {
	Get(ctx context.Context) (pricing.Catalog, bool, error)
	Set(ctx context.Context, c pricing.Catalog) error
	Invalidate(ctx context.Context) error
}

// ICatalogReader is the read side of the catalog used by quotes and events.
type ICatalogReader interface {
	Snapshot(ctx context.Context) (pricing.Catalog, error)
	GetMenu(ctx context.Context, id string) (entities.Menu, error)
}
