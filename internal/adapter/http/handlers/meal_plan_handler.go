package handlers

import (
	"errors"
	"net/http"

	request "github.com/MikisTh/NutriApp/internal/adapter/http/dto/request"
	response "github.com/MikisTh/NutriApp/internal/adapter/http/dto/response"
	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase"
	"github.com/MikisTh/NutriApp/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid weekly plan payload", http.StatusBadRequest)
)

// MealPlanHandler handles HTTP requests for calorie reports and shopping lists.
type MealPlanHandler struct {
	usecase usecase.IMealPlanUseCase
}

func NewMealPlanHandler(uc usecase.IMealPlanUseCase) *MealPlanHandler {
	return &MealPlanHandler{usecase: uc}
}

// GetSampleWeek returns the built-in reference week.
// @Summary      Sample weekly plan
// @Tags         meal-plans
// @Produce      json
// @Success      200  {object}  entities.WeeklyPlan
// @Failure      500  {object}  pkg.HTTPError
// @Router       /meal-plans/sample [get]
func (h *MealPlanHandler) GetSampleWeek(c *gin.Context) {
	plan, err := h.usecase.SampleWeek(c.Request.Context())
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary      Calorie report of the sample week
// @Tags         meal-plans
// @Produce      json
// @Success      200  {object}  response.CalorieReportResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /meal-plans/sample/calories [get]
func (h *MealPlanHandler) GetSampleCalories(c *gin.Context) {
	plan, ok := h.samplePlan(c)
	if !ok {
		return
	}
	h.respondCalories(c, plan)
}

// @Summary      Costed shopping list of the sample week
// @Tags         meal-plans
// @Produce      json
// @Success      200  {object}  response.ShoppingListResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /meal-plans/sample/shopping-list [get]
func (h *MealPlanHandler) GetSampleShoppingList(c *gin.Context) {
	plan, ok := h.samplePlan(c)
	if !ok {
		return
	}
	h.respondShoppingList(c, plan)
}

// ComputeCalories handles POST /calories with a weekly plan body.
// @Summary      Calorie report
// @Tags         calories
// @Accept       json
// @Produce      json
// @Param        plan  body      request.WeeklyPlanRequest  true  "Weekly plan"
// @Success      200   {object}  response.CalorieReportResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calories [post]
func (h *MealPlanHandler) ComputeCalories(c *gin.Context) {
	plan, ok := bindPlan(c)
	if !ok {
		return
	}
	h.respondCalories(c, plan)
}

// PreviewShoppingList computes a costed list without persisting it.
// @Summary      Preview shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        plan  body      request.WeeklyPlanRequest  true  "Weekly plan"
// @Success      200   {object}  response.ShoppingListResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /shopping-lists/preview [post]
func (h *MealPlanHandler) PreviewShoppingList(c *gin.Context) {
	plan, ok := bindPlan(c)
	if !ok {
		return
	}
	h.respondShoppingList(c, plan)
}

// CreateShoppingList computes and persists a costed list.
// @Summary      Save shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        plan  body      request.WeeklyPlanRequest  true  "Weekly plan"
// @Success      201   {object}  response.ShoppingListSnapshotResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /shopping-lists [post]
func (h *MealPlanHandler) CreateShoppingList(c *gin.Context) {
	plan, ok := bindPlan(c)
	if !ok {
		return
	}

	s, err := h.usecase.SaveShoppingList(c.Request.Context(), plan)
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromShoppingListSnapshot(s))
}

// @Summary      Get saved shopping list
// @Tags         shopping-lists
// @Produce      json
// @Param        id   path      string  true  "Shopping list ID"
// @Success      200  {object}  response.ShoppingListSnapshotResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /shopping-lists/{id} [get]
func (h *MealPlanHandler) GetShoppingList(c *gin.Context) {
	s, err := h.usecase.GetShoppingList(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShoppingListSnapshot(s))
}

func (h *MealPlanHandler) samplePlan(c *gin.Context) (entities.WeeklyPlan, bool) {
	plan, err := h.usecase.SampleWeek(c.Request.Context())
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.WeeklyPlan{}, false
	}
	return plan, true
}

func (h *MealPlanHandler) respondCalories(c *gin.Context, plan entities.WeeklyPlan) {
	report, err := h.usecase.CalorieReport(c.Request.Context(), plan)
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalorieReport(report))
}

func (h *MealPlanHandler) respondShoppingList(c *gin.Context, plan entities.WeeklyPlan) {
	list, err := h.usecase.ShoppingList(c.Request.Context(), plan)
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShoppingList(list))
}

func bindPlan(c *gin.Context) (entities.WeeklyPlan, bool) {
	var payload request.WeeklyPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return entities.WeeklyPlan{}, false
	}

	plan, err := payload.ToEntity()
	if err != nil {
		appErr := mapMealPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.WeeklyPlan{}, false
	}
	return plan, true
}

func mapMealPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownUnit):
		return pkg.NewDomainErrorSimple("UNKNOWN_UNIT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrNegativeQuantity), errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrBlankFoodName):
		return pkg.NewDomainErrorSimple("INVALID_FOOD_NAME", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShoppingListID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShoppingListNotFound):
		return pkg.NewDomainErrorSimple("SHOPPING_LIST_NOT_FOUND", "Shopping list not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
