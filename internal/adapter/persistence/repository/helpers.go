package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"espaco_vista/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// idTable implements the common operations of a table keyed by "id".
// I is the dynamodbav-tagged record type.
type idTable[I any] struct {
	ddb  DynamoAPI
	name string
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// put writes item under condition ("attribute_not_exists(#id)" to create,
// "attribute_exists(#id)" to replace). It reports false when the condition
// does not hold.
func (t idTable[I]) put(ctx context.Context, item I, condition string) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t idTable[I]) create(ctx context.Context, item I) error {
	ok, err := t.put(ctx, item, "attribute_not_exists(#id)")
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

func (t idTable[I]) replace(ctx context.Context, item I) (bool, error) {
	return t.put(ctx, item, "attribute_exists(#id)")
}

// replaceAtVersion replaces item while the stored "version" attribute still
// equals version. Records saved before versioning have no attribute and
// match version 0. A missing record reports false.
func (t idTable[I]) replaceAtVersion(ctx context.Context, item I, version int64) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}

	in := &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}
	if version == 0 {
		in.ConditionExpression = aws.String("attribute_exists(#id) AND attribute_not_exists(#version)")
		in.ExpressionAttributeValues = nil
	}

	if _, err := t.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return false, interfaces.ErrStaleWrite
			}
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t idTable[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t idTable[I]) delete(ctx context.Context, id string) (bool, error) {
	return deleteWhereExists(ctx, t.ddb, t.name, idKey(id), "id")
}

func (t idTable[I]) scan(ctx context.Context) ([]I, error) {
	return scanAll[I](ctx, t.ddb, &dynamodb.ScanInput{TableName: aws.String(t.name)})
}

// ErrAlreadyExists is returned when a create collides with an existing key.
var ErrAlreadyExists = errors.New("item already exists")

func deleteWhereExists(ctx context.Context, ddb DynamoAPI, table string, key map[string]types.AttributeValue, attr string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#k)"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanAll follows LastEvaluatedKey until the table is exhausted.
func scanAll[I any](ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]I, error) {
	var out []I
	for {
		page, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

// queryAll runs a single-attribute equality query, following pagination.
func queryAll[I any](ctx context.Context, ddb DynamoAPI, table, index, attr, value string) ([]I, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index != "" {
		in.IndexName = aws.String(index)
	}

	var out []I
	for {
		page, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
