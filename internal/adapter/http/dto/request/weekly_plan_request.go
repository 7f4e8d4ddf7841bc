package request

import (
	"strings"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

type FoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	KcalDensity float64 `json:"kcal_density"`
}

type MealEntryRequest struct {
	Food     FoodItemRequest `json:"food"`
	Quantity float64         `json:"quantity"`
}

type MealRequest struct {
	Name    string             `json:"name"`
	Entries []MealEntryRequest `json:"entries" binding:"dive"`
}

type DayPlanRequest struct {
	DayName string        `json:"day_name"`
	Meals   []MealRequest `json:"meals" binding:"dive"`
}

// WeeklyPlanRequest is the plan payload accepted by the calorie and
// shopping list endpoints. Units are "g", "ml", "un" or "kg".
type WeeklyPlanRequest struct {
	Days []DayPlanRequest `json:"days" binding:"dive"`
}

// ToEntity converts and validates the payload. Unit codes are matched
// case-insensitively; anything else fails with entities.ErrUnknownUnit.
func (r WeeklyPlanRequest) ToEntity() (entities.WeeklyPlan, error) {
	plan := entities.WeeklyPlan{Days: make([]entities.DayPlan, 0, len(r.Days))}
	for _, d := range r.Days {
		day := entities.DayPlan{DayName: strings.TrimSpace(d.DayName), Meals: make([]entities.Meal, 0, len(d.Meals))}
		for _, m := range d.Meals {
			meal := entities.Meal{Name: strings.TrimSpace(m.Name), Entries: make([]entities.MealEntry, 0, len(m.Entries))}
			for _, e := range m.Entries {
				meal.Entries = append(meal.Entries, entities.MealEntry{
					Food: entities.FoodItem{
						Name:        strings.TrimSpace(e.Food.Name),
						Unit:        entities.Unit(strings.ToLower(strings.TrimSpace(e.Food.Unit))),
						KcalDensity: e.Food.KcalDensity,
					},
					Quantity: e.Quantity,
				})
			}
			day.Meals = append(day.Meals, meal)
		}
		plan.Days = append(plan.Days, day)
	}
	if err := plan.Validate(); err != nil {
		return entities.WeeklyPlan{}, err
	}
	return plan, nil
}
