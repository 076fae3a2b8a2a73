package repository

import (
	"context"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	existsRe = regexp.MustCompile(`^(attribute_exists|attribute_not_exists)\((#\w+)\)$`)
	equalsRe = regexp.MustCompile(`^(#\w+) = (:\w+)$`)
)

// fakeDynamo is an in-memory DynamoAPI that understands the handful of
// expressions the repositories emit.
type fakeDynamo struct {
	keys     map[string][]string
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys: map[string][]string{
			"services":       {"id"},
			"price_tables":   {"id"},
			"service_prices": {"service_id", "price_table_id"},
			"menus":          {"id"},
			"quotes":         {"id"},
			"events":         {"id"},
		},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range f.keys[table] {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "|")
}

// check evaluates a condition made of attribute_exists, attribute_not_exists
// and equality terms joined by AND.
func (f *fakeDynamo) check(cond *string, names map[string]string, values map[string]types.AttributeValue, returnOld bool, existing map[string]types.AttributeValue) error {
	if cond == nil {
		return nil
	}
	for _, term := range strings.Split(*cond, " AND ") {
		if termHolds(strings.TrimSpace(term), names, values, existing) {
			continue
		}
		cfe := &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		if returnOld {
			cfe.Item = existing
		}
		return cfe
	}
	return nil
}

func termHolds(term string, names map[string]string, values map[string]types.AttributeValue, existing map[string]types.AttributeValue) bool {
	if m := existsRe.FindStringSubmatch(term); m != nil {
		_, has := existing[names[m[2]]]
		return (m[1] == "attribute_exists") == has
	}
	if m := equalsRe.FindStringSubmatch(term); m != nil {
		got, has := existing[names[m[1]]]
		return has && reflect.DeepEqual(got, values[m[2]])
	}
	return true
}

func (f *fakeDynamo) sorted(table string) []map[string]types.AttributeValue {
	t := f.table(table)
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, t[k])
	}
	return out
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	k := f.keyOf(name, in.Item)
	returnOld := in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld
	if err := f.check(in.ConditionExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues, returnOld, f.table(name)[k]); err != nil {
		return nil, err
	}
	f.table(name)[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.table(name)[f.keyOf(name, in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	k := f.keyOf(name, in.Key)
	if err := f.check(in.ConditionExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues, false, f.table(name)[k]); err != nil {
		return nil, err
	}
	delete(f.table(name), k)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value
	var items []map[string]types.AttributeValue
	for _, it := range f.sorted(aws.ToString(in.TableName)) {
		if s, ok := it[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			items = append(items, it)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	all := f.sorted(name)
	start := 0
	if len(in.ExclusiveStartKey) > 0 {
		after := f.keyOf(name, in.ExclusiveStartKey)
		for i, it := range all {
			if f.keyOf(name, it) == after {
				start = i + 1
				break
			}
		}
	}
	end := len(all)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.ScanOutput{Items: all[start:end]}
	if end < len(all) {
		last := all[end-1]
		lek := map[string]types.AttributeValue{}
		for _, attr := range f.keys[name] {
			lek[attr] = last[attr]
		}
		out.LastEvaluatedKey = lek
	}
	return out, nil
}
