package interfaces

import (
	"context"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

// IWeeklyPlanRepository provides the reference weekly plan served by the API.

type IWeeklyPlanRepository interface {
	GetSample(ctx context.Context) (entities.WeeklyPlan, error)
}
