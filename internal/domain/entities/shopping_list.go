package entities

import "time"

// PriceStatus tells how an item's estimated cost was obtained.
//
// Unpriced and EstimatedDefault are data-quality signals, never errors:
// the shopping list is a best-effort estimate.
type PriceStatus string

const (
	PriceStatusMatched          PriceStatus = "matched"
	PriceStatusEstimatedDefault PriceStatus = "estimated_default"
	PriceStatusUnpriced         PriceStatus = "unpriced"
)

// AggregatedItem is the weekly total for one food name in one canonical unit
// (Grams, Milliliters or Count).
type AggregatedItem struct {
	Name          string  `json:"name"`
	Unit          Unit    `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

// CostedItem is an AggregatedItem with its estimated cost in BRL.
//
// PriceKey is the table entry the cost was derived from, empty when a
// hard-coded rate or no rate was used.
type CostedItem struct {
	Name          string      `json:"name"`
	Quantity      float64     `json:"quantity"`
	Unit          Unit        `json:"unit"`
	EstimatedCost float64     `json:"estimated_cost"`
	PriceStatus   PriceStatus `json:"price_status"`
	PriceKey      string      `json:"price_key,omitempty"`
}

// CostedShoppingList is sorted by name ascending (byte order), then unit.
type CostedShoppingList struct {
	Items              []CostedItem `json:"items"`
	TotalEstimatedCost float64      `json:"total_estimated_cost"`
}

// CountByStatus returns how many items carry each price status.
func (l CostedShoppingList) CountByStatus() map[PriceStatus]int {
	out := make(map[PriceStatus]int, 3)
	for _, it := range l.Items {
		out[it.PriceStatus]++
	}
	return out
}

// ShoppingListSnapshot is a costed list persisted for later retrieval.
//
// Storage model (DynamoDB):
//   - PK: id
type ShoppingListSnapshot struct {
	ID        string             `json:"id"`
	List      CostedShoppingList `json:"list"`
	CreatedAt time.Time          `json:"created_at"`
}
