package response

import (
	"math"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

type MealCaloriesResponse struct {
	MealName string `json:"meal_name"`
	Kcal     int    `json:"kcal"`
}

type DayCaloriesResponse struct {
	DayName string                 `json:"day_name"`
	Meals   []MealCaloriesResponse `json:"meals"`
	Kcal    int                    `json:"kcal"`
}

// CalorieReportResponse rounds every total to the nearest kcal.
// Each value is rounded on its own, so rounded meals need not add up to the rounded day.
type CalorieReportResponse struct {
	Days     []DayCaloriesResponse `json:"days"`
	WeekKcal int                   `json:"week_kcal"`
}

func FromCalorieReport(r entities.CalorieReport) CalorieReportResponse {
	out := CalorieReportResponse{
		Days:     make([]DayCaloriesResponse, 0, len(r.Days)),
		WeekKcal: roundKcal(r.WeekKcal),
	}
	for _, d := range r.Days {
		day := DayCaloriesResponse{DayName: d.DayName, Meals: make([]MealCaloriesResponse, 0, len(d.Meals)), Kcal: roundKcal(d.DayKcal)}
		for _, m := range d.Meals {
			day.Meals = append(day.Meals, MealCaloriesResponse{MealName: m.MealName, Kcal: roundKcal(m.Kcal)})
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func roundKcal(v float64) int {
	return int(math.Round(v))
}
