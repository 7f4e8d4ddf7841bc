package interfaces

import (
	"context"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

// IShoppingListRepository abstracts DynamoDB persistence for ShoppingListSnapshot.
//
// GetByID returns a zero snapshot (empty ID) when nothing is stored under id.

type IShoppingListRepository interface {
	Create(ctx context.Context, s entities.ShoppingListSnapshot) (entities.ShoppingListSnapshot, error)
	GetByID(ctx context.Context, id string) (entities.ShoppingListSnapshot, error)
}
