// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Doctor schedule endpoints
	GetScheduleHandler  gin.HandlerFunc
	SaveScheduleHandler gin.HandlerFunc

	// Booking availability endpoints
	GetTimeSlotsHandler      gin.HandlerFunc
	GetAvailableDatesHandler gin.HandlerFunc
}
