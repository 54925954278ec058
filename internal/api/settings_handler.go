package api

import (
	"errors"
	"net/http"

	"alcyxob/gym-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves settings, export and reset.
type SettingsHandler struct {
	trackerService service.TrackerService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(trackerService service.TrackerService) *SettingsHandler {
	return &SettingsHandler{trackerService: trackerService}
}

// UpdateSettingsRequest carries the four nutrition targets as raw
// strings; non-numeric values coerce to 0 ("no target").
type UpdateSettingsRequest struct {
	KcalTarget    string `json:"kcalTarget"`
	ProteinTarget string `json:"proteinTarget"`
	CarbTarget    string `json:"carbTarget"`
	FatTarget     string `json:"fatTarget"`
}

// SetStartDateRequest moves the split anchor date.
type SetStartDateRequest struct {
	StartDate string `json:"startDate" binding:"required"`
}

// ResetRequest gates the destructive reset behind explicit confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// GetLog returns the full tracker log snapshot.
func (h *SettingsHandler) GetLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.trackerService.Log(c.Request.Context()))
}

// GetSettings returns the nutrition targets.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.trackerService.Settings(c.Request.Context()))
}

// UpdateSettings replaces the nutrition targets.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	settings := h.trackerService.UpdateSettings(
		c.Request.Context(),
		req.KcalTarget, req.ProteinTarget, req.CarbTarget, req.FatTarget,
	)
	c.JSON(http.StatusOK, settings)
}

// GetStartDate returns the split anchor date.
func (h *SettingsHandler) GetStartDate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"startDate": h.trackerService.StartDate(c.Request.Context())})
}

// SetStartDate moves the split anchor. Day indices already frozen on
// stored workouts are not recomputed.
func (h *SettingsHandler) SetStartDate(c *gin.Context) {
	var req SetStartDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.trackerService.SetStartDate(c.Request.Context(), req.StartDate); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCSV streams the flat-file backup with its fixed filename.
func (h *SettingsHandler) ExportCSV(c *gin.Context) {
	data, filename := h.trackerService.ExportCSV(c.Request.Context())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Reset wipes all local data after explicit confirmation.
func (h *SettingsHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.trackerService.Reset(c.Request.Context(), req.Confirm); err != nil {
		if errors.Is(err, service.ErrResetNotConfirmed) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to reset.")
		return
	}
	c.Status(http.StatusNoContent)
}
