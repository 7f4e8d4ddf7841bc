package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrShoppingListNotFound  = errors.New("shopping list not found")
	ErrInvalidShoppingListID = errors.New("invalid shopping list id")
)

// IMealPlanUseCase exposes the weekly meal plan operations:
//   - calorie totals per meal / day / week
//   - the aggregated, costed shopping list (computed or persisted)

type IMealPlanUseCase interface {
	SampleWeek(ctx context.Context) (entities.WeeklyPlan, error)
	CalorieReport(ctx context.Context, plan entities.WeeklyPlan) (entities.CalorieReport, error)
	ShoppingList(ctx context.Context, plan entities.WeeklyPlan) (entities.CostedShoppingList, error)
	SaveShoppingList(ctx context.Context, plan entities.WeeklyPlan) (entities.ShoppingListSnapshot, error)
	GetShoppingList(ctx context.Context, id string) (entities.ShoppingListSnapshot, error)
}

type MealPlanUseCase struct {
	plans      interfaces.IWeeklyPlanRepository
	lists      interfaces.IShoppingListRepository
	recorder   interfaces.IUsageRecorder
	prices     entities.PriceTable
	calculator CalorieCalculator
	aggregator ShoppingAggregator
}

var _ IMealPlanUseCase = (*MealPlanUseCase)(nil)

// NewMealPlanUseCase wires the use case. recorder may be nil.
func NewMealPlanUseCase(
	plans interfaces.IWeeklyPlanRepository,
	lists interfaces.IShoppingListRepository,
	recorder interfaces.IUsageRecorder,
	prices entities.PriceTable,
) *MealPlanUseCase {
	return &MealPlanUseCase{
		plans:      plans,
		lists:      lists,
		recorder:   recorder,
		prices:     prices,
		calculator: NewCalorieCalculator(),
		aggregator: NewShoppingAggregator(),
	}
}

func (u *MealPlanUseCase) SampleWeek(ctx context.Context) (entities.WeeklyPlan, error) {
	if u.plans == nil {
		return entities.WeeklyPlan{}, errors.New("weekly plan repository not configured")
	}
	return u.plans.GetSample(ctx)
}

func (u *MealPlanUseCase) CalorieReport(_ context.Context, plan entities.WeeklyPlan) (entities.CalorieReport, error) {
	report, err := u.calculator.ComputeReport(plan)
	if err != nil {
		log.Printf("[mealplan][usecase] calorie report failed days=%d err=%v", len(plan.Days), err)
		return entities.CalorieReport{}, err
	}
	if u.recorder != nil {
		u.recorder.ObserveCalorieReport(report)
	}
	log.Printf("[mealplan][usecase] calorie report computed days=%d week_kcal=%.0f", len(report.Days), report.WeekKcal)
	return report, nil
}

func (u *MealPlanUseCase) ShoppingList(_ context.Context, plan entities.WeeklyPlan) (entities.CostedShoppingList, error) {
	list, err := u.aggregator.Aggregate(plan, u.prices)
	if err != nil {
		log.Printf("[mealplan][usecase] shopping list failed days=%d err=%v", len(plan.Days), err)
		return entities.CostedShoppingList{}, err
	}
	if u.recorder != nil {
		u.recorder.ObserveShoppingList(list)
	}
	counts := list.CountByStatus()
	log.Printf("[mealplan][usecase] shopping list computed items=%d unpriced=%d estimated_default=%d total=%.2f",
		len(list.Items), counts[entities.PriceStatusUnpriced], counts[entities.PriceStatusEstimatedDefault], list.TotalEstimatedCost)
	return list, nil
}

func (u *MealPlanUseCase) SaveShoppingList(ctx context.Context, plan entities.WeeklyPlan) (entities.ShoppingListSnapshot, error) {
	if u.lists == nil {
		return entities.ShoppingListSnapshot{}, errors.New("shopping list repository not configured")
	}
	list, err := u.ShoppingList(ctx, plan)
	if err != nil {
		return entities.ShoppingListSnapshot{}, err
	}

	s := entities.ShoppingListSnapshot{
		ID:        uuid.NewString(),
		List:      list,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.lists.Create(ctx, s)
	if err != nil {
		log.Printf("[mealplan][usecase] shopping list persist failed id=%s err=%v", s.ID, err)
		return entities.ShoppingListSnapshot{}, err
	}
	log.Printf("[mealplan][usecase] shopping list persisted id=%s", created.ID)
	return created, nil
}

func (u *MealPlanUseCase) GetShoppingList(ctx context.Context, id string) (entities.ShoppingListSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ShoppingListSnapshot{}, ErrInvalidShoppingListID
	}
	if u.lists == nil {
		return entities.ShoppingListSnapshot{}, errors.New("shopping list repository not configured")
	}

	s, err := u.lists.GetByID(ctx, id)
	if err != nil {
		return entities.ShoppingListSnapshot{}, err
	}
	if s.ID == "" {
		return entities.ShoppingListSnapshot{}, ErrShoppingListNotFound
	}
	return s, nil
}
