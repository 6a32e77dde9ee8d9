// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the doctor-facing schedule editor endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler returns the doctor's schedule, defaulted when the doctor
// has never saved one.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	doctorID := c.Param("doctorID")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing doctor ID in path", "")
		return
	}

	cfg, err := h.Service.GetDoctorSchedule(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch schedule", zap.String("doctorId", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": cfg})
}

// SaveScheduleHandler validates and persists a full schedule replace.
func (h *ScheduleHandler) SaveScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID := c.Param("doctorID")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing doctor ID in path", "")
		return
	}

	var cfg models.ScheduleConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.Error("Invalid schedule payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	saved, err := h.Service.SaveDoctorSchedule(c.Request.Context(), doctorID, cfg)
	if err != nil {
		if isValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", err.Error())
			return
		}
		logger.Error("Failed to save schedule", zap.String("doctorId", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule saved successfully",
		"schedule": saved,
	})
}
