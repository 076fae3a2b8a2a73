package repository

import (
	"context"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase/interfaces"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Category    string `dynamodbav:"category"`
	Unit        string `dynamodbav:"unit"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists catalog services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	table idTable[serviceItem]
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{table: idTable[serviceItem]{ddb: ddb, name: tableName}}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := r.table.create(ctx, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := r.table.replace(ctx, toServiceItem(s))
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
		Unit:        string(s.Unit),
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    entities.ServiceCategory(it.Category),
		Unit:        entities.ServiceUnit(it.Unit),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
