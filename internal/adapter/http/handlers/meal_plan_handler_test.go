package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MikisTh/NutriApp/internal/adapter/http/handlers/mocks"
	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const cafePlanJSON = `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[
	{"food":{"name":"Banana","unit":"g","kcal_density":89},"quantity":100},
	{"food":{"name":"Leite","unit":"ml","kcal_density":60},"quantity":200}]}]}]}`

func cafePlan() entities.WeeklyPlan {
	return entities.WeeklyPlan{Days: []entities.DayPlan{{
		DayName: "Segunda",
		Meals: []entities.Meal{{Name: "Café", Entries: []entities.MealEntry{
			{Food: entities.FoodItem{Name: "Banana", Unit: entities.UnitGrams, KcalDensity: 89}, Quantity: 100},
			{Food: entities.FoodItem{Name: "Leite", Unit: entities.UnitMilliliters, KcalDensity: 60}, Quantity: 200},
		}}},
	}}}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMealPlanHandler_ComputeCalories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		w := postJSON(r, "/v1/calories", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		w := postJSON(r, "/v1/calories", `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[{"food":{"name":"Banana","unit":"lb"},"quantity":1}]}]}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNKNOWN_UNIT" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		w := postJSON(r, "/v1/calories", `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[{"food":{"name":"Banana","unit":"g"},"quantity":-5}]}]}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank food name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		w := postJSON(r, "/v1/calories", `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[{"food":{"name":"   ","unit":"g"},"quantity":100}]}]}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_FOOD_NAME" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing required food fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		for _, food := range []string{`{"unit":"g"}`, `{"name":"Arroz"}`} {
			body := `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[{"food":` + food + `,"quantity":100}]}]}]}`
			w := postJSON(r, "/v1/calories", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", food, w.Code)
			}
			var resp map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["code"] != "INVALID_PLAN_INPUT" {
				t.Fatalf("%s: unexpected response body: %s", food, w.Body.String())
			}
		}
	})

	t.Run("zero quantity accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		uc.EXPECT().CalorieReport(gomock.Any(), gomock.Any()).Return(entities.CalorieReport{}, nil)

		w := postJSON(r, "/v1/calories", `{"days":[{"day_name":"Segunda","meals":[{"name":"Café","entries":[{"food":{"name":"Arroz","unit":"g"},"quantity":0}]}]}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success rounds kcal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		report := entities.CalorieReport{
			Days:     []entities.DayCalories{{DayName: "Segunda", Meals: []entities.MealCalories{{MealName: "Café", Kcal: 209}}, DayKcal: 209}},
			WeekKcal: 209,
		}
		uc.EXPECT().CalorieReport(gomock.Any(), cafePlan()).Return(report, nil)

		w := postJSON(r, "/v1/calories", cafePlanJSON)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["week_kcal"] != float64(209) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/calories", h.ComputeCalories)

		uc.EXPECT().CalorieReport(gomock.Any(), gomock.Any()).Return(entities.CalorieReport{}, errors.New("boom"))

		w := postJSON(r, "/v1/calories", cafePlanJSON)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMealPlanHandler_ShoppingLists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	list := entities.CostedShoppingList{
		Items: []entities.CostedItem{
			{Name: "Banana", Quantity: 100, Unit: entities.UnitGrams, PriceStatus: entities.PriceStatusUnpriced},
			{Name: "Leite", Quantity: 200, Unit: entities.UnitMilliliters, EstimatedCost: 1, PriceStatus: entities.PriceStatusMatched, PriceKey: "Leite"},
		},
		TotalEstimatedCost: 1,
	}

	t.Run("preview success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/shopping-lists/preview", h.PreviewShoppingList)

		uc.EXPECT().ShoppingList(gomock.Any(), cafePlan()).Return(list, nil)

		w := postJSON(r, "/v1/shopping-lists/preview", cafePlanJSON)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["unpriced_count"] != float64(1) || body["total_estimated_cost"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/shopping-lists", h.CreateShoppingList)

		uc.EXPECT().SaveShoppingList(gomock.Any(), cafePlan()).Return(entities.ShoppingListSnapshot{ID: "list-1", List: list, CreatedAt: time.Now().UTC()}, nil)

		w := postJSON(r, "/v1/shopping-lists", cafePlanJSON)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "list-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/shopping-lists", h.CreateShoppingList)

		w := postJSON(r, "/v1/shopping-lists", `{"days":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/shopping-lists/:id", h.GetShoppingList)

		uc.EXPECT().GetShoppingList(gomock.Any(), "missing").Return(entities.ShoppingListSnapshot{}, usecase.ErrShoppingListNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/shopping-lists/missing", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMealPlanUseCase(ctrl)
		h := NewMealPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/shopping-lists/:id", h.GetShoppingList)

		uc.EXPECT().GetShoppingList(gomock.Any(), "list-1").Return(entities.ShoppingListSnapshot{ID: "list-1", List: list}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/shopping-lists/list-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMealPlanHandler_Sample(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		path  string
		route func(h *MealPlanHandler) gin.HandlerFunc
		setup func(uc *mocks.MockIMealPlanUseCase)
	}{
		{
			name:  "week",
			path:  "/v1/meal-plans/sample",
			route: func(h *MealPlanHandler) gin.HandlerFunc { return h.GetSampleWeek },
			setup: func(uc *mocks.MockIMealPlanUseCase) {},
		},
		{
			name:  "calories",
			path:  "/v1/meal-plans/sample/calories",
			route: func(h *MealPlanHandler) gin.HandlerFunc { return h.GetSampleCalories },
			setup: func(uc *mocks.MockIMealPlanUseCase) {
				uc.EXPECT().CalorieReport(gomock.Any(), cafePlan()).Return(entities.CalorieReport{WeekKcal: 209}, nil)
			},
		},
		{
			name:  "shopping list",
			path:  "/v1/meal-plans/sample/shopping-list",
			route: func(h *MealPlanHandler) gin.HandlerFunc { return h.GetSampleShoppingList },
			setup: func(uc *mocks.MockIMealPlanUseCase) {
				uc.EXPECT().ShoppingList(gomock.Any(), cafePlan()).Return(entities.CostedShoppingList{}, nil)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIMealPlanUseCase(ctrl)
			h := NewMealPlanHandler(uc)
			r := gin.New()
			r.GET(tc.path, tc.route(h))

			uc.EXPECT().SampleWeek(gomock.Any()).Return(cafePlan(), nil)
			tc.setup(uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})

		t.Run(tc.name+" repository error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIMealPlanUseCase(ctrl)
			h := NewMealPlanHandler(uc)
			r := gin.New()
			r.GET(tc.path, tc.route(h))

			uc.EXPECT().SampleWeek(gomock.Any()).Return(entities.WeeklyPlan{}, errors.New("db"))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
		})
	}
}

func TestMapMealPlanError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("Segunda/Café: %w", entities.ErrUnknownUnit), want: http.StatusBadRequest},
		{err: entities.ErrNegativeQuantity, want: http.StatusBadRequest},
		{err: entities.ErrInvalidQuantity, want: http.StatusBadRequest},
		{err: entities.ErrBlankFoodName, want: http.StatusBadRequest},
		{err: usecase.ErrInvalidShoppingListID, want: http.StatusBadRequest},
		{err: usecase.ErrShoppingListNotFound, want: http.StatusNotFound},
		{err: errors.New("x"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapMealPlanError(tc.err); got.HTTPStatus != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got.HTTPStatus)
		}
	}
}
