package response

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

type ShoppingItemResponse struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	DisplayQuantity string  `json:"display_quantity"`
	EstimatedCost   float64 `json:"estimated_cost"`
	PriceStatus     string  `json:"price_status"`
	PriceKey        string  `json:"price_key,omitempty"`
}

type ShoppingListResponse struct {
	Items                 []ShoppingItemResponse `json:"items"`
	TotalEstimatedCost    float64                `json:"total_estimated_cost"`
	UnpricedCount         int                    `json:"unpriced_count"`
	EstimatedDefaultCount int                    `json:"estimated_default_count"`
}

type ShoppingListSnapshotResponse struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	List      ShoppingListResponse `json:"list"`
}

func FromShoppingList(l entities.CostedShoppingList) ShoppingListResponse {
	counts := l.CountByStatus()
	out := ShoppingListResponse{
		Items:                 make([]ShoppingItemResponse, 0, len(l.Items)),
		TotalEstimatedCost:    l.TotalEstimatedCost,
		UnpricedCount:         counts[entities.PriceStatusUnpriced],
		EstimatedDefaultCount: counts[entities.PriceStatusEstimatedDefault],
	}
	for _, it := range l.Items {
		out.Items = append(out.Items, ShoppingItemResponse{
			Name:            it.Name,
			Quantity:        it.Quantity,
			Unit:            string(it.Unit),
			DisplayQuantity: FormatQuantity(it.Quantity, it.Unit),
			EstimatedCost:   it.EstimatedCost,
			PriceStatus:     string(it.PriceStatus),
			PriceKey:        it.PriceKey,
		})
	}
	return out
}

func FromShoppingListSnapshot(s entities.ShoppingListSnapshot) ShoppingListSnapshotResponse {
	return ShoppingListSnapshotResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		List:      FromShoppingList(s.List),
	}
}

// FormatQuantity renders a quantity for people: 1000 g and up as kg,
// 1000 ml and up as L.
func FormatQuantity(q float64, unit entities.Unit) string {
	switch {
	case unit == entities.UnitGrams && q >= 1000:
		return fmt.Sprintf("%.2f kg", q/1000)
	case unit == entities.UnitMilliliters && q >= 1000:
		return fmt.Sprintf("%.2f L", q/1000)
	}
	return strconv.FormatFloat(q, 'f', -1, 64) + " " + string(unit)
}
