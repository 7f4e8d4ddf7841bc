package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShoppingListsTableName = "shopping_lists"

type shoppingListItem struct {
	ID        string             `dynamodbav:"id"`
	Items     []shoppingListLine `dynamodbav:"items"`
	Total     string             `dynamodbav:"total_estimated_cost"`
	CreatedAt string             `dynamodbav:"created_at"`
}

type shoppingListLine struct {
	Name          string `dynamodbav:"name"`
	Quantity      string `dynamodbav:"quantity"`
	Unit          string `dynamodbav:"unit"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	PriceStatus   string `dynamodbav:"price_status"`
	PriceKey      string `dynamodbav:"price_key,omitempty"`
}

// ShoppingListDynamoRepository persists ShoppingListSnapshot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Snapshots are write-once; there is no update path.

type ShoppingListDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

// DynamoAPI is the subset of *dynamodb.Client the repository needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

var _ interfaces.IShoppingListRepository = (*ShoppingListDynamoRepository)(nil)

func NewShoppingListDynamoRepository(ddb DynamoAPI) *ShoppingListDynamoRepository {
	return &ShoppingListDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHOPPING_LISTS_TABLE", defaultShoppingListsTableName),
	}
}

func (r *ShoppingListDynamoRepository) Create(ctx context.Context, s entities.ShoppingListSnapshot) (entities.ShoppingListSnapshot, error) {
	av, err := attributevalue.MarshalMap(toShoppingListItem(s))
	if err != nil {
		return entities.ShoppingListSnapshot{}, err
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
		return entities.ShoppingListSnapshot{}, err
	}
	return s, nil
}

func (r *ShoppingListDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShoppingListSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShoppingListSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShoppingListSnapshot{}, nil
	}

	var it shoppingListItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShoppingListSnapshot{}, err
	}
	return fromShoppingListItem(it)
}

func toShoppingListItem(s entities.ShoppingListSnapshot) shoppingListItem {
	lines := make([]shoppingListLine, 0, len(s.List.Items))
	for _, it := range s.List.Items {
		lines = append(lines, shoppingListLine{
			Name:          it.Name,
			Quantity:      floatToString(it.Quantity),
			Unit:          string(it.Unit),
			EstimatedCost: floatToString(it.EstimatedCost),
			PriceStatus:   string(it.PriceStatus),
			PriceKey:      it.PriceKey,
		})
	}
	return shoppingListItem{
		ID:        s.ID,
		Items:     lines,
		Total:     floatToString(s.List.TotalEstimatedCost),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromShoppingListItem(it shoppingListItem) (entities.ShoppingListSnapshot, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.ShoppingListSnapshot{}, fmt.Errorf("shopping list %s: created_at: %w", it.ID, err)
	}
	total, err := strconv.ParseFloat(it.Total, 64)
	if err != nil {
		return entities.ShoppingListSnapshot{}, fmt.Errorf("shopping list %s: total_estimated_cost: %w", it.ID, err)
	}

	items := make([]entities.CostedItem, 0, len(it.Items))
	for i, l := range it.Items {
		qty, err := strconv.ParseFloat(l.Quantity, 64)
		if err != nil {
			return entities.ShoppingListSnapshot{}, fmt.Errorf("shopping list %s: items[%d].quantity: %w", it.ID, i, err)
		}
		cost, err := strconv.ParseFloat(l.EstimatedCost, 64)
		if err != nil {
			return entities.ShoppingListSnapshot{}, fmt.Errorf("shopping list %s: items[%d].estimated_cost: %w", it.ID, i, err)
		}
		items = append(items, entities.CostedItem{
			Name:          l.Name,
			Quantity:      qty,
			Unit:          entities.Unit(l.Unit),
			EstimatedCost: cost,
			PriceStatus:   entities.PriceStatus(l.PriceStatus),
			PriceKey:      l.PriceKey,
		})
	}
	return entities.ShoppingListSnapshot{
		ID:        it.ID,
		List:      entities.CostedShoppingList{Items: items, TotalEstimatedCost: total},
		CreatedAt: createdAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
