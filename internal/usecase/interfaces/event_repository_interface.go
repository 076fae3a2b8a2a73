package interfaces

import (
	"context"

	"espaco_vista/internal/domain/entities"
)

//go:generate mockgen -source=event_repository_interface.go -destination=mocks/event_repository_mock.go -package=mock_interfaces

// IEventRepository abstracts DynamoDB persistence for events.
//
// The billing flow must be able to:
//   - create one event per won quote
//   - mark installments as paid
type IEventRepository interface {
	Create(ctx context.Context, e entities.Event) (entities.Event, error)
	GetByID(ctx context.Context, id string) (entities.Event, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Event, error)
	Update(ctx context.Context, e entities.Event) (entities.Event, error)
	List(ctx context.Context) ([]entities.Event, error)
}
