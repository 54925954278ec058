package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// NutritionHandler serves the meal and supplement endpoints.
type NutritionHandler struct {
	trackerService service.TrackerService
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(trackerService service.TrackerService) *NutritionHandler {
	return &NutritionHandler{trackerService: trackerService}
}

// AddMealRequest names the date a new meal is logged on.
type AddMealRequest struct {
	Date string `json:"date" binding:"required"`
}

// GetMeals returns the meals for the date given in the query string.
func (h *NutritionHandler) GetMeals(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' is required.")
		return
	}
	meals := h.trackerService.Meals(c.Request.Context(), date)
	if meals == nil {
		meals = []domain.Meal{} // return an empty array, not null
	}
	c.JSON(http.StatusOK, meals)
}

// AddMeal logs a default meal on the requested date.
func (h *NutritionHandler) AddMeal(c *gin.Context) {
	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	meal, err := h.trackerService.AddMeal(c.Request.Context(), req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// UpdateMeal applies a single field mutation (name, kcal, protein,
// carbs or fat). Unknown meal ids are a silent no-op by design.
func (h *NutritionHandler) UpdateMeal(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.UpdateMealField(c.Request.Context(), c.Param("mealId"), req.Field, req.Value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMeal removes a meal by identity.
func (h *NutritionHandler) DeleteMeal(c *gin.Context) {
	h.trackerService.DeleteMeal(c.Request.Context(), c.Param("mealId"))
	c.Status(http.StatusNoContent)
}

// GetSupplements returns the supplement record for a date. First access
// creates and persists the default record, so this GET can write.
func (h *NutritionHandler) GetSupplements(c *gin.Context) {
	rec, err := h.trackerService.Supplements(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateSupplements applies a single field mutation (creatine_g, pre,
// casein or whey).
func (h *NutritionHandler) UpdateSupplements(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.UpdateSupplementField(c.Request.Context(), c.Param("date"), req.Field, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrUnknownField) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		}
		return
	}
	c.Status(http.StatusNoContent)
}
