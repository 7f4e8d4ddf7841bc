package response

import (
	"testing"
	"time"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

func TestFormatQuantity(t *testing.T) {
	cases := []struct {
		q    float64
		unit entities.Unit
		want string
	}{
		{q: 480, unit: entities.UnitGrams, want: "480 g"},
		{q: 1200, unit: entities.UnitGrams, want: "1.20 kg"},
		{q: 1000, unit: entities.UnitMilliliters, want: "1.00 L"},
		{q: 250, unit: entities.UnitMilliliters, want: "250 ml"},
		{q: 11, unit: entities.UnitCount, want: "11 un"},
		{q: 1500, unit: entities.UnitCount, want: "1500 un"},
	}
	for _, tc := range cases {
		if got := FormatQuantity(tc.q, tc.unit); got != tc.want {
			t.Fatalf("FormatQuantity(%v, %s): expected %q, got %q", tc.q, tc.unit, tc.want, got)
		}
	}
}

func TestFromShoppingListSnapshot(t *testing.T) {
	now := time.Now().UTC()
	s := entities.ShoppingListSnapshot{
		ID:        "list-1",
		CreatedAt: now,
		List: entities.CostedShoppingList{
			Items: []entities.CostedItem{
				{Name: "Arroz", Quantity: 480, Unit: entities.UnitGrams, EstimatedCost: 2.78, PriceStatus: entities.PriceStatusMatched, PriceKey: "Arroz"},
				{Name: "Salada", Quantity: 840, Unit: entities.UnitGrams, PriceStatus: entities.PriceStatusUnpriced},
				{Name: "Suco", Quantity: 250, Unit: entities.UnitMilliliters, EstimatedCost: 1.5, PriceStatus: entities.PriceStatusEstimatedDefault},
			},
			TotalEstimatedCost: 4.28,
		},
	}

	res := FromShoppingListSnapshot(s)
	if res.ID != "list-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected snapshot fields: %+v", res)
	}
	if res.List.UnpricedCount != 1 || res.List.EstimatedDefaultCount != 1 {
		t.Fatalf("unexpected counts: %+v", res.List)
	}
	if res.List.Items[0].PriceStatus != "matched" || res.List.Items[0].DisplayQuantity != "480 g" {
		t.Fatalf("unexpected first item: %+v", res.List.Items[0])
	}
	if res.List.TotalEstimatedCost != 4.28 {
		t.Fatalf("unexpected total: %v", res.List.TotalEstimatedCost)
	}
}
