package entities

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrNegativeQuantity = errors.New("negative quantity")
	ErrInvalidQuantity  = errors.New("quantity is not a finite number")
	ErrBlankFoodName    = errors.New("blank food name")
)

// Unit is the measure a FoodItem is declared in.
//
// Input codes follow the original menu data: "g", "ml", "un" and "kg".
// Kilograms are accepted on input and folded into Grams when aggregating.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
	UnitCount       Unit = "un"
	UnitKilograms   Unit = "kg"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitGrams, UnitMilliliters, UnitCount, UnitKilograms:
		return true
	}
	return false
}

// FoodItem is static reference data.
//
// KcalDensity is kcal per 100 g (Grams, Kilograms), per 100 ml (Milliliters)
// or per single item (Count).
type FoodItem struct {
	Name        string  `json:"name"`
	Unit        Unit    `json:"unit"`
	KcalDensity float64 `json:"kcal_density"`
}

// MealEntry is a quantity of a FoodItem, expressed in the food's own unit.
type MealEntry struct {
	Food     FoodItem `json:"food"`
	Quantity float64  `json:"quantity"`
}

type Meal struct {
	Name    string      `json:"name"`
	Entries []MealEntry `json:"entries"`
}

type DayPlan struct {
	DayName string `json:"day_name"`
	Meals   []Meal `json:"meals"`
}

// WeeklyPlan nominally holds 7 days; the count is not enforced.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
}

func (e MealEntry) Validate() error {
	if !e.Food.Unit.Valid() {
		return fmt.Errorf("%w %q for %q", ErrUnknownUnit, e.Food.Unit, e.Food.Name)
	}
	if strings.TrimSpace(e.Food.Name) == "" {
		return ErrBlankFoodName
	}
	if math.IsNaN(e.Quantity) || math.IsInf(e.Quantity, 0) {
		return fmt.Errorf("%w %v for %q", ErrInvalidQuantity, e.Quantity, e.Food.Name)
	}
	if e.Quantity < 0 {
		return fmt.Errorf("%w %v for %q", ErrNegativeQuantity, e.Quantity, e.Food.Name)
	}
	return nil
}

// Validate reports the first entry that is not well typed.
func (p WeeklyPlan) Validate() error {
	for _, day := range p.Days {
		for _, meal := range day.Meals {
			for _, entry := range meal.Entries {
				if err := entry.Validate(); err != nil {
					return fmt.Errorf("%s/%s: %w", day.DayName, meal.Name, err)
				}
			}
		}
	}
	return nil
}
