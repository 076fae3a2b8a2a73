package repository

import (
	"context"

	"espaco_vista/internal/domain/entities"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const servicePricesTableIndex = "price_table_id-index"

type priceTableItem struct {
	ID               string  `dynamodbav:"id"`
	Name             string  `dynamodbav:"name"`
	ConsumableCredit float64 `dynamodbav:"consumable_credit"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

type servicePriceItem struct {
	ServiceID    string  `dynamodbav:"service_id"`
	PriceTableID string  `dynamodbav:"price_table_id"`
	Price        float64 `dynamodbav:"price"`
}

// PriceTableDynamoRepository persists price tables and service prices.
//
// Table requirements:
//   - price tables: PK id (string)
//   - service prices: PK service_id, SK price_table_id,
//     GSI price_table_id-index (PK: price_table_id)
type PriceTableDynamoRepository struct {
	table       idTable[priceTableItem]
	ddb         DynamoAPI
	pricesTable string
}

var _ interfaces.IPriceTableRepository = (*PriceTableDynamoRepository)(nil)

func NewPriceTableDynamoRepository(ddb DynamoAPI, tableName, pricesTableName string) *PriceTableDynamoRepository {
	return &PriceTableDynamoRepository{
		table:       idTable[priceTableItem]{ddb: ddb, name: tableName},
		ddb:         ddb,
		pricesTable: pricesTableName,
	}
}

func (r *PriceTableDynamoRepository) Create(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error) {
	if err := r.table.create(ctx, toPriceTableItem(t)); err != nil {
		return entities.PriceTable{}, err
	}
	return t, nil
}

func (r *PriceTableDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceTable, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.PriceTable{}, err
	}
	return fromPriceTableItem(it), nil
}

func (r *PriceTableDynamoRepository) Update(ctx context.Context, t entities.PriceTable) (entities.PriceTable, error) {
	ok, err := r.table.replace(ctx, toPriceTableItem(t))
	if err != nil || !ok {
		return entities.PriceTable{}, err
	}
	return t, nil
}

func (r *PriceTableDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func (r *PriceTableDynamoRepository) List(ctx context.Context) ([]entities.PriceTable, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PriceTable, 0, len(items))
	for _, it := range items {
		out = append(out, fromPriceTableItem(it))
	}
	return out, nil
}

// UpsertPrice writes the price unconditionally; there is at most one record
// per (service, table) pair.
func (r *PriceTableDynamoRepository) UpsertPrice(ctx context.Context, p entities.ServicePrice) error {
	av, err := attributevalue.MarshalMap(servicePriceItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.pricesTable),
		Item:      av,
	})
	return err
}

func (r *PriceTableDynamoRepository) DeletePrice(ctx context.Context, serviceID, priceTableID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"service_id":     &types.AttributeValueMemberS{Value: serviceID},
		"price_table_id": &types.AttributeValueMemberS{Value: priceTableID},
	}
	return deleteWhereExists(ctx, r.ddb, r.pricesTable, key, "service_id")
}

func (r *PriceTableDynamoRepository) ListPrices(ctx context.Context) ([]entities.ServicePrice, error) {
	items, err := scanAll[servicePriceItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.pricesTable)})
	if err != nil {
		return nil, err
	}
	return fromServicePriceItems(items), nil
}

func (r *PriceTableDynamoRepository) ListPricesByTable(ctx context.Context, priceTableID string) ([]entities.ServicePrice, error) {
	items, err := queryAll[servicePriceItem](ctx, r.ddb, r.pricesTable, servicePricesTableIndex, "price_table_id", priceTableID)
	if err != nil {
		return nil, err
	}
	return fromServicePriceItems(items), nil
}

func toPriceTableItem(t entities.PriceTable) priceTableItem {
	return priceTableItem{
		ID:               t.ID,
		Name:             t.Name,
		ConsumableCredit: t.ConsumableCredit,
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

func fromPriceTableItem(it priceTableItem) entities.PriceTable {
	return entities.PriceTable{
		ID:               it.ID,
		Name:             it.Name,
		ConsumableCredit: it.ConsumableCredit,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromServicePriceItems(items []servicePriceItem) []entities.ServicePrice {
	out := make([]entities.ServicePrice, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServicePrice(it))
	}
	return out
}
