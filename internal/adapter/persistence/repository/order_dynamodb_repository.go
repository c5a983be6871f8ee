package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	orderNumberIndexName   = "number-index"

	// BatchWriteItem hard limit.
	deleteBatchSize = 25
)

type orderLineItem struct {
	ItemID       string `dynamodbav:"item_id"`
	Name         string `dynamodbav:"name"`
	Catalog      string `dynamodbav:"catalog"`
	Category     string `dynamodbav:"category,omitempty"`
	SelectedSize string `dynamodbav:"selected_size,omitempty"`
	UnitPrice    int64  `dynamodbav:"unit_price"`
	Quantity     int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID          string          `dynamodbav:"id"`
	Number      string          `dynamodbav:"number"`
	Items       []orderLineItem `dynamodbav:"items"`
	Subtotal    int64           `dynamodbav:"subtotal"`
	DeliveryFee int64           `dynamodbav:"delivery_fee"`
	Total       int64           `dynamodbav:"total"`
	PlacedAt    string          `dynamodbav:"placed_at"`
}

// OrderDynamoRepository persists placed orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid document key)
//   - GSI1 (number-index): number (string, the sequential display id)
//
// The edit path resolves the document key through the GSI first and then
// overwrites the record in place, so an edited order keeps its identity.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Insert(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) UpdateByNumber(ctx context.Context, number string, rev entities.OrderRevision) (entities.Order, error) {
	docID, err := r.findDocIDByNumber(ctx, number)
	if err != nil {
		return entities.Order{}, err
	}
	if docID == "" {
		return entities.Order{}, nil
	}

	lines := make([]orderLineItem, 0, len(rev.Items))
	for _, l := range rev.Items {
		lines = append(lines, toOrderLineItem(l))
	}
	linesAV, err := attributevalue.Marshal(lines)
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: docID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #items = :items, #subtotal = :subtotal, #delivery_fee = :delivery_fee, #total = :total"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":items":        linesAV,
			":subtotal":     &types.AttributeValueMemberN{Value: intToString(rev.Subtotal)},
			":delivery_fee": &types.AttributeValueMemberN{Value: intToString(rev.DeliveryFee)},
			":total":        &types.AttributeValueMemberN{Value: intToString(rev.Total)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#items":        "items",
			"#subtotal":     "subtotal",
			"#delivery_fee": "delivery_fee",
			"#total":        "total",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) findDocIDByNumber(ctx context.Context, number string) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderNumberIndexName),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, newestFirst bool) ([]entities.Order, error) {
	var items []orderItem
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var batch []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if page.LastEvaluatedKey == nil {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool {
		less := orderNumberLess(orders[i], orders[j])
		if newestFirst {
			return !less
		}
		return less
	})
	return orders, nil
}

// orderNumberLess orders numerically by the sequential number, falling back
// to placement time when numbers collide (possible after a counter reset).
func orderNumberLess(a, b entities.Order) bool {
	an, aerr := strconv.Atoi(a.Number)
	bn, berr := strconv.Atoi(b.Number)
	if aerr == nil && berr == nil && an != bn {
		return an < bn
	}
	if a.Number != b.Number {
		return a.Number < b.Number
	}
	return a.PlacedAt.Before(b.PlacedAt)
}

func (r *OrderDynamoRepository) DeleteAll(ctx context.Context) error {
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#id"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}

		for start := 0; start < len(page.Items); start += deleteBatchSize {
			end := start + deleteBatchSize
			if end > len(page.Items) {
				end = len(page.Items)
			}
			writes := make([]types.WriteRequest, 0, end-start)
			for _, item := range page.Items[start:end] {
				writes = append(writes, types.WriteRequest{
					DeleteRequest: &types.DeleteRequest{Key: item},
				})
			}
			_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					r.tableName: writes,
				},
			})
			if err != nil {
				return err
			}
		}

		if page.LastEvaluatedKey == nil {
			return nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func toOrderLineItem(l entities.CartLine) orderLineItem {
	return orderLineItem{
		ItemID:       l.ItemID,
		Name:         l.Name,
		Catalog:      string(l.Catalog),
		Category:     l.Category,
		SelectedSize: l.SelectedSize,
		UnitPrice:    l.UnitPrice,
		Quantity:     l.Quantity,
	}
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, toOrderLineItem(l))
	}
	return orderItem{
		ID:          o.ID,
		Number:      o.Number,
		Items:       lines,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		PlacedAt:    o.PlacedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	placedAt, _ := time.Parse(time.RFC3339Nano, it.PlacedAt)
	lines := make([]entities.CartLine, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.CartLine{
			ItemID:       l.ItemID,
			Name:         l.Name,
			Catalog:      entities.CatalogName(l.Catalog),
			Category:     l.Category,
			SelectedSize: l.SelectedSize,
			UnitPrice:    l.UnitPrice,
			Quantity:     l.Quantity,
		})
	}
	return entities.Order{
		ID:          it.ID,
		Number:      it.Number,
		Items:       lines,
		Subtotal:    it.Subtotal,
		DeliveryFee: it.DeliveryFee,
		Total:       it.Total,
		PlacedAt:    placedAt,
	}
}
