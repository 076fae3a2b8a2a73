package repository

import (
	"context"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase/interfaces"
)

type menuItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description,omitempty"`
	ServiceIDs  []string `dynamodbav:"service_ids"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// MenuDynamoRepository persists menus in DynamoDB (PK: id).
type MenuDynamoRepository struct {
	table idTable[menuItem]
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb DynamoAPI, tableName string) *MenuDynamoRepository {
	return &MenuDynamoRepository{table: idTable[menuItem]{ddb: ddb, name: tableName}}
}

func (r *MenuDynamoRepository) Create(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	if err := r.table.create(ctx, toMenuItem(m)); err != nil {
		return entities.Menu{}, err
	}
	return m, nil
}

func (r *MenuDynamoRepository) GetByID(ctx context.Context, id string) (entities.Menu, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Menu{}, err
	}
	return fromMenuItem(it), nil
}

func (r *MenuDynamoRepository) Update(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	ok, err := r.table.replace(ctx, toMenuItem(m))
	if err != nil || !ok {
		return entities.Menu{}, err
	}
	return m, nil
}

func (r *MenuDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func (r *MenuDynamoRepository) List(ctx context.Context) ([]entities.Menu, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Menu, 0, len(items))
	for _, it := range items {
		out = append(out, fromMenuItem(it))
	}
	return out, nil
}

func toMenuItem(m entities.Menu) menuItem {
	return menuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ServiceIDs:  m.ServiceIDs,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMenuItem(it menuItem) entities.Menu {
	return entities.Menu{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		ServiceIDs:  it.ServiceIDs,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
