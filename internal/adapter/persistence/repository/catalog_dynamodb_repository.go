package repository

import (
	"context"
	"errors"
	"fmt"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMenuTableName     = "menu"
	defaultStartersTableName = "starters"
	defaultDrinksTableName   = "drinks"
)

type catalogSizeItem struct {
	Name  string `dynamodbav:"name"`
	Price int64  `dynamodbav:"price"`
}

type catalogItem struct {
	ID       string            `dynamodbav:"id"`
	Name     string            `dynamodbav:"name"`
	Category string            `dynamodbav:"category,omitempty"`
	Price    int64             `dynamodbav:"price,omitempty"`
	Sizes    []catalogSizeItem `dynamodbav:"sizes,omitempty"`
	Disabled bool              `dynamodbav:"disabled"`
}

// CatalogDynamoRepository persists the three item catalogs in DynamoDB.
//
// Table requirements:
//   - one table per catalog (menu / starters / drinks)
//   - PK: id (string)
//
// The stored document carries either a flat "price" or a "sizes" list; the
// explicit pricing tag of the domain model is derived on read from which of
// the two is present.
type CatalogDynamoRepository struct {
	ddb    *dynamodb.Client
	tables map[entities.CatalogName]string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb: ddb,
		tables: map[entities.CatalogName]string{
			entities.CatalogMenu:     getenvDefault("MENU_TABLE", defaultMenuTableName),
			entities.CatalogStarters: getenvDefault("STARTERS_TABLE", defaultStartersTableName),
			entities.CatalogDrinks:   getenvDefault("DRINKS_TABLE", defaultDrinksTableName),
		},
	}
}

func (r *CatalogDynamoRepository) table(catalog entities.CatalogName) (string, error) {
	name, ok := r.tables[catalog]
	if !ok {
		return "", fmt.Errorf("no table configured for catalog %q", catalog)
	}
	return name, nil
}

func (r *CatalogDynamoRepository) ListItems(ctx context.Context, catalog entities.CatalogName) ([]entities.CatalogItem, error) {
	table, err := r.table(catalog)
	if err != nil {
		return nil, err
	}

	var out []entities.CatalogItem
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCatalogItem(it))
		}
		if page.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *CatalogDynamoRepository) GetItem(ctx context.Context, catalog entities.CatalogName, id string) (entities.CatalogItem, error) {
	table, err := r.table(catalog)
	if err != nil {
		return entities.CatalogItem{}, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) UpdateAvailability(ctx context.Context, catalog entities.CatalogName, id string, disabled bool) (entities.CatalogItem, error) {
	return r.update(ctx, catalog, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #disabled = :disabled"
		vals := map[string]types.AttributeValue{
			":disabled": &types.AttributeValueMemberBOOL{Value: disabled},
		}
		names := map[string]string{
			"#disabled": "disabled",
		}
		return expr, vals, names
	})
}

func (r *CatalogDynamoRepository) UpdateDetails(ctx context.Context, catalog entities.CatalogName, item entities.CatalogItem) (entities.CatalogItem, error) {
	names := map[string]string{
		"#name": "name",
	}
	vals := map[string]types.AttributeValue{
		":name": &types.AttributeValueMemberS{Value: item.Name},
	}
	expr := "SET #name = :name"

	if item.Sized() {
		sizes := make([]catalogSizeItem, 0, len(item.Sizes))
		for _, s := range item.Sizes {
			sizes = append(sizes, catalogSizeItem{Name: s.Name, Price: s.Price})
		}
		av, err := attributevalue.Marshal(sizes)
		if err != nil {
			return entities.CatalogItem{}, err
		}
		names["#sizes"] = "sizes"
		vals[":sizes"] = av
		expr += ", #sizes = :sizes"
	} else {
		names["#price"] = "price"
		vals[":price"] = &types.AttributeValueMemberN{Value: intToString(item.Price)}
		expr += ", #price = :price"
	}

	return r.update(ctx, catalog, item.ID, func() (string, map[string]types.AttributeValue, map[string]string) {
		return expr, vals, names
	})
}

func (r *CatalogDynamoRepository) update(
	ctx context.Context,
	catalog entities.CatalogName,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.CatalogItem, error) {
	table, err := r.table(catalog)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogItem{}, nil
		}
		return entities.CatalogItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CatalogItem{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it), nil
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	e := entities.CatalogItem{
		ID:       it.ID,
		Name:     it.Name,
		Category: it.Category,
		Pricing:  entities.PricingFlat,
		Price:    it.Price,
		Disabled: it.Disabled,
	}
	if len(it.Sizes) > 0 {
		e.Pricing = entities.PricingSized
		e.Price = 0
		e.Sizes = make([]entities.SizeVariant, 0, len(it.Sizes))
		for _, s := range it.Sizes {
			e.Sizes = append(e.Sizes, entities.SizeVariant{Name: s.Name, Price: s.Price})
		}
	}
	return e
}
