package usecase

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

// ShoppingAggregator turns a weekly plan into a costed shopping list.
//
// It holds no state; the same plan and price table always produce the same list.
type ShoppingAggregator struct{}

func NewShoppingAggregator() ShoppingAggregator {
	return ShoppingAggregator{}
}

type aggregationKey struct {
	name string
	unit entities.Unit
}

// AggregateQuantities sums quantities per (name, canonical unit) over the whole week.
//
// Grouping is exact on name. A name used under two units yields two items.
// Output is sorted by name, then unit.
func (ShoppingAggregator) AggregateQuantities(plan entities.WeeklyPlan, prices entities.PriceTable) ([]entities.AggregatedItem, error) {
	parts := map[aggregationKey][]float64{}
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, entry := range meal.Entries {
				unit, qty, err := normalizeEntry(entry, prices)
				if err != nil {
					return nil, fmt.Errorf("%s/%s: %w", day.DayName, meal.Name, err)
				}
				k := aggregationKey{name: entry.Food.Name, unit: unit}
				parts[k] = append(parts[k], qty)
			}
		}
	}

	out := make([]entities.AggregatedItem, 0, len(parts))
	for k, qs := range parts {
		// summing in sorted order makes the total independent of plan order
		slices.Sort(qs)
		total := 0.0
		for _, q := range qs {
			total += q
		}
		out = append(out, entities.AggregatedItem{Name: k.name, Unit: k.unit, TotalQuantity: total})
	}
	slices.SortFunc(out, func(a, b entities.AggregatedItem) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Unit, b.Unit))
	})
	return out, nil
}

func (a ShoppingAggregator) Aggregate(plan entities.WeeklyPlan, prices entities.PriceTable) (entities.CostedShoppingList, error) {
	items, err := a.AggregateQuantities(plan, prices)
	if err != nil {
		return entities.CostedShoppingList{}, err
	}

	list := entities.CostedShoppingList{Items: make([]entities.CostedItem, 0, len(items))}
	total := 0.0
	for _, it := range items {
		costed := PriceItem(it, prices)
		total += costed.EstimatedCost
		list.Items = append(list.Items, costed)
	}
	list.TotalEstimatedCost = RoundBRL(total)
	return list, nil
}

// normalizeEntry maps an entry onto its canonical bucket.
// Kilograms become grams; Count becomes grams only when the price table
// carries an average weight for that exact name.
func normalizeEntry(e entities.MealEntry, prices entities.PriceTable) (entities.Unit, float64, error) {
	if err := e.Validate(); err != nil {
		return "", 0, err
	}
	switch e.Food.Unit {
	case entities.UnitKilograms:
		return entities.UnitGrams, e.Quantity * 1000, nil
	case entities.UnitCount:
		if grams, ok := prices.UnitWeight(e.Food.Name); ok {
			return entities.UnitGrams, e.Quantity * grams, nil
		}
		return entities.UnitCount, e.Quantity, nil
	default:
		return e.Food.Unit, e.Quantity, nil
	}
}
