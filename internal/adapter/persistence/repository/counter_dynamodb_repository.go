package repository

import (
	"context"
	"strconv"

	"pizzamaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	orderCounterName         = "next_order_number"
)

type counterItem struct {
	Name  string `dynamodbav:"name"`
	Value int    `dynamodbav:"value"`
}

// CounterDynamoRepository persists the "next order number" scalar.
//
// Table requirements:
//   - PK: name (string)
//
// A single record ("next_order_number") backs the sequencer, so the sequence
// survives restarts of any instance.
type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Get(ctx context.Context) (int, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderCounterName},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}

	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, false, err
	}
	return it.Value, true, nil
}

func (r *CounterDynamoRepository) Put(ctx context.Context, value int) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"name":  &types.AttributeValueMemberS{Value: orderCounterName},
			"value": &types.AttributeValueMemberN{Value: strconv.Itoa(value)},
		},
	})
	return err
}
