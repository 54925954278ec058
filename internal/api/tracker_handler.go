package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-tracker/internal/service"
	"alcyxob/gym-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// TrackerHandler serves the workout endpoints.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- DTOs ---

// UpdateFieldRequest carries one field-level mutation. Value is always
// a raw string; numeric fields are coerced by the service (bad input
// becomes 0, RPE is clamped into range).
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetNotesRequest carries the free-text notes for a workout.
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// RenameExerciseRequest carries a new exercise name (may be empty).
type RenameExerciseRequest struct {
	Name string `json:"name"`
}

// --- Handler Methods ---

// GetWorkoutHistory returns all workouts sorted ascending by date.
func (h *TrackerHandler) GetWorkoutHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.trackerService.WorkoutHistory(c.Request.Context()))
}

// GetWorkout returns the workout for a date, creating a default one on
// first access (ensure-or-create).
func (h *TrackerHandler) GetWorkout(c *gin.Context) {
	workout, err := h.trackerService.Workout(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, workout)
}

// SetNotes replaces the workout's notes.
func (h *TrackerHandler) SetNotes(c *gin.Context) {
	var req SetNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.trackerService.SetWorkoutNotes(c.Request.Context(), c.Param("date"), req.Notes); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExercise appends a blank exercise to the workout for a date.
func (h *TrackerHandler) AddExercise(c *gin.Context) {
	exercise, err := h.trackerService.AddExercise(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// RenameExercise sets the exercise name.
func (h *TrackerHandler) RenameExercise(c *gin.Context) {
	var req RenameExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.RenameExercise(c.Request.Context(), c.Param("date"), c.Param("exerciseId"), req.Name)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveExercise deletes an exercise and all its sets.
func (h *TrackerHandler) RemoveExercise(c *gin.Context) {
	err := h.trackerService.RemoveExercise(c.Request.Context(), c.Param("date"), c.Param("exerciseId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSet appends a default set to an exercise.
func (h *TrackerHandler) AddSet(c *gin.Context) {
	set, err := h.trackerService.AddSet(c.Request.Context(), c.Param("date"), c.Param("exerciseId"))
	if err != nil {
		if errors.Is(err, store.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, set)
}

// UpdateSet applies a single field mutation (weight, reps or rpe).
func (h *TrackerHandler) UpdateSet(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.UpdateSetField(
		c.Request.Context(),
		c.Param("date"), c.Param("exerciseId"), c.Param("setId"),
		req.Field, req.Value,
	)
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

// AddCardio appends a default cardio entry to the workout for a date.
func (h *TrackerHandler) AddCardio(c *gin.Context) {
	cardio, err := h.trackerService.AddCardio(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, cardio)
}

// UpdateCardio applies a single field mutation (type, duration,
// distance or hr).
func (h *TrackerHandler) UpdateCardio(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.UpdateCardioField(
		c.Request.Context(),
		c.Param("date"), c.Param("cardioId"),
		req.Field, req.Value,
	)
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
