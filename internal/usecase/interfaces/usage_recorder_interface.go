package interfaces

import "github.com/MikisTh/NutriApp/internal/domain/entities"

// IUsageRecorder receives every computed report and list, e.g. to export metrics.
type IUsageRecorder interface {
	ObserveCalorieReport(report entities.CalorieReport)
	ObserveShoppingList(list entities.CostedShoppingList)
}
