package usecase

import (
	"fmt"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

// CalorieCalculator computes calories per meal, per day and per week.
//
// Sums are kept in float64 all the way up; callers round when presenting.
type CalorieCalculator struct{}

func NewCalorieCalculator() CalorieCalculator {
	return CalorieCalculator{}
}

func (CalorieCalculator) ComputeReport(plan entities.WeeklyPlan) (entities.CalorieReport, error) {
	report := entities.CalorieReport{Days: make([]entities.DayCalories, 0, len(plan.Days))}

	for _, day := range plan.Days {
		dc := entities.DayCalories{DayName: day.DayName, Meals: make([]entities.MealCalories, 0, len(day.Meals))}
		for _, meal := range day.Meals {
			mealKcal := 0.0
			for _, entry := range meal.Entries {
				kcal, err := EntryKcal(entry)
				if err != nil {
					return entities.CalorieReport{}, fmt.Errorf("%s/%s: %w", day.DayName, meal.Name, err)
				}
				mealKcal += kcal
			}
			dc.Meals = append(dc.Meals, entities.MealCalories{MealName: meal.Name, Kcal: mealKcal})
			dc.DayKcal += mealKcal
		}
		report.Days = append(report.Days, dc)
		report.WeekKcal += dc.DayKcal
	}
	return report, nil
}

// EntryKcal is the kcal contribution of one entry.
func EntryKcal(e entities.MealEntry) (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	density := e.Food.KcalDensity
	switch e.Food.Unit {
	case entities.UnitGrams, entities.UnitMilliliters:
		return density * e.Quantity / 100, nil
	case entities.UnitKilograms:
		return density * e.Quantity * 1000 / 100, nil
	default: // UnitCount: density is already kcal per item
		return density * e.Quantity, nil
	}
}
