package interfaces

import (
	"context"
	"errors"

	"espaco_vista/internal/domain/entities"
)

// ErrStaleWrite is returned by an update whose record was saved by someone
// else after it was read.
var ErrStaleWrite = errors.New("record changed since it was read")

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for quotes. Items are
// saved with the ids they were created with.
//
// Update saves q only if the stored version still equals q.Version and
// returns it with the new version. A missing quote yields a zero Quote; a
// newer stored version yields ErrStaleWrite.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
