package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the weekly review and derived-view endpoints.
type ReviewHandler struct {
	trackerService service.TrackerService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(trackerService service.TrackerService) *ReviewHandler {
	return &ReviewHandler{trackerService: trackerService}
}

// SetWinRequest updates one of the three win slots for the week
// containing Date.
type SetWinRequest struct {
	Date  string `json:"date" binding:"required"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// SetFailRequest updates the fail text for the week containing Date.
type SetFailRequest struct {
	Date string `json:"date" binding:"required"`
	Text string `json:"text"`
}

// GetReview returns the review for the week bucket containing the date
// in the query string, creating a blank review on first access.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' is required.")
		return
	}
	review, err := h.trackerService.Review(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, review)
}

// SetWin writes one win slot (index 0..2).
func (h *ReviewHandler) SetWin(c *gin.Context) {
	var req SetWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	err := h.trackerService.SetReviewWin(c.Request.Context(), req.Date, req.Index, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWinIndex) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// SetFail writes the fail text.
func (h *ReviewHandler) SetFail(c *gin.Context) {
	var req SetFailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.trackerService.SetReviewFail(c.Request.Context(), req.Date, req.Text); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDaySummary returns the split position, macro totals vs targets and
// session volume for one date.
func (h *ReviewHandler) GetDaySummary(c *gin.Context) {
	summary, err := h.trackerService.DaySummary(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWeeklyVolume returns the weekly volume series for the progress
// chart, recomputed from scratch on every call.
func (h *ReviewHandler) GetWeeklyVolume(c *gin.Context) {
	series, err := h.trackerService.WeeklyVolume(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute weekly volume.")
		return
	}
	c.JSON(http.StatusOK, series)
}
