package entities

// CalorieReport keeps unrounded kcal values. Rounding belongs to presentation.
type CalorieReport struct {
	Days     []DayCalories `json:"days"`
	WeekKcal float64       `json:"week_kcal"`
}

type DayCalories struct {
	DayName string         `json:"day_name"`
	Meals   []MealCalories `json:"meals"`
	DayKcal float64        `json:"day_kcal"`
}

type MealCalories struct {
	MealName string  `json:"meal_name"`
	Kcal     float64 `json:"kcal"`
}
