// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the patient-facing booking-form endpoints.
type AvailabilityHandler struct {
	Service schedule.ScheduleService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc schedule.ScheduleService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetTimeSlotsHandler returns the bookable slots for one date.
func (h *AvailabilityHandler) GetTimeSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing doctor ID or date", "")
		return
	}

	slots, err := h.Service.GetTimeSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		utils.GetLogger().Error("Failed to compute timeslots",
			zap.String("doctorId", doctorID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute timeslots", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeslots": slots})
}

// GetAvailableDatesHandler lists bookable dates over the requested horizon.
func (h *AvailabilityHandler) GetAvailableDatesHandler(c *gin.Context) {
	doctorID := c.Param("doctorID")
	if doctorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing doctor ID in path", "")
		return
	}

	horizon := 0
	if raw := c.Query("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid horizon", "horizon must be a positive integer")
			return
		}
		horizon = parsed
	}

	dates, err := h.Service.GetAvailableDates(c.Request.Context(), doctorID, horizon)
	if err != nil {
		utils.GetLogger().Error("Failed to compute available dates",
			zap.String("doctorId", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute available dates", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// isValidationError reports whether the service rejected the input rather
// than failing internally.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		schedule.ErrInvalidSlotDuration,
		schedule.ErrInvalidBreakDuration,
		schedule.ErrInvalidWorkingHours,
		schedule.ErrInvalidCustomBreak,
		schedule.ErrInvalidHoliday,
		schedule.ErrPastHoliday,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
