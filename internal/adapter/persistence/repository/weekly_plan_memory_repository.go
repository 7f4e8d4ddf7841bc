package repository

import (
	"context"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase/interfaces"
)

// WeeklyPlanMemoryRepository serves the built-in reference week.
type WeeklyPlanMemoryRepository struct{}

var _ interfaces.IWeeklyPlanRepository = (*WeeklyPlanMemoryRepository)(nil)

func NewWeeklyPlanMemoryRepository() *WeeklyPlanMemoryRepository {
	return &WeeklyPlanMemoryRepository{}
}

func (r *WeeklyPlanMemoryRepository) GetSample(_ context.Context) (entities.WeeklyPlan, error) {
	return sampleWeek(), nil
}
