package api

import (
	"net/http"

	"alcyxob/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. There is no auth
// layer: the server is a single-user, local-device application.
func SetupRoutes(router *gin.Engine, trackerService service.TrackerService) {
	trackerHandler := NewTrackerHandler(trackerService)
	nutritionHandler := NewNutritionHandler(trackerService)
	reviewHandler := NewReviewHandler(trackerService)
	settingsHandler := NewSettingsHandler(trackerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/log", settingsHandler.GetLog)
		apiV1.GET("/export", settingsHandler.ExportCSV)
		apiV1.POST("/reset", settingsHandler.Reset)

		settingsGroup := apiV1.Group("/settings")
		{
			settingsGroup.GET("", settingsHandler.GetSettings)
			settingsGroup.PUT("", settingsHandler.UpdateSettings)
			settingsGroup.GET("/start-date", settingsHandler.GetStartDate)
			settingsGroup.PUT("/start-date", settingsHandler.SetStartDate)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", trackerHandler.GetWorkoutHistory)
			// GET ensures the workout: first access for a date creates it.
			workoutGroup.GET("/:date", trackerHandler.GetWorkout)
			workoutGroup.PUT("/:date/notes", trackerHandler.SetNotes)
			workoutGroup.POST("/:date/exercises", trackerHandler.AddExercise)
			workoutGroup.PUT("/:date/exercises/:exerciseId/name", trackerHandler.RenameExercise)
			workoutGroup.DELETE("/:date/exercises/:exerciseId", trackerHandler.RemoveExercise)
			workoutGroup.POST("/:date/exercises/:exerciseId/sets", trackerHandler.AddSet)
			workoutGroup.PATCH("/:date/exercises/:exerciseId/sets/:setId", trackerHandler.UpdateSet)
			workoutGroup.POST("/:date/cardio", trackerHandler.AddCardio)
			workoutGroup.PATCH("/:date/cardio/:cardioId", trackerHandler.UpdateCardio)
		}

		mealGroup := apiV1.Group("/meals")
		{
			mealGroup.GET("", nutritionHandler.GetMeals)
			mealGroup.POST("", nutritionHandler.AddMeal)
			mealGroup.PATCH("/:mealId", nutritionHandler.UpdateMeal)
			mealGroup.DELETE("/:mealId", nutritionHandler.DeleteMeal)
		}

		suppGroup := apiV1.Group("/supplements")
		{
			// GET goes through the ensure path and may write the default
			// record for the date; it is not a read-only endpoint.
			suppGroup.GET("/:date", nutritionHandler.GetSupplements)
			suppGroup.PATCH("/:date", nutritionHandler.UpdateSupplements)
		}

		reviewGroup := apiV1.Group("/reviews")
		{
			reviewGroup.GET("", reviewHandler.GetReview)
			reviewGroup.PUT("/win", reviewHandler.SetWin)
			reviewGroup.PUT("/fail", reviewHandler.SetFail)
		}

		apiV1.GET("/summary/:date", reviewHandler.GetDaySummary)
		apiV1.GET("/progress/weekly-volume", reviewHandler.GetWeeklyVolume)
	}
}

// abortWithError standardizes error responses.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
