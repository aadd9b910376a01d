package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arkanhadi/kurir/services/driver"
	httpHandler "github.com/arkanhadi/kurir/services/driver/handler/http"
)

// HTTPHandler combines all handlers for the driver location service
type HTTPHandler struct {
	driverHTTP *httpHandler.DriverHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(driverUC driver.DriverUseCase) *HTTPHandler {
	return &HTTPHandler{
		driverHTTP: httpHandler.NewDriverHandler(driverUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for service-to-service communication
	internal := e.Group("/internal")

	internal.POST("/drivers/:id/locations", h.driverHTTP.SubmitLocations)
	internal.POST("/drivers/:id/status", h.driverHTTP.ChangeStatus)
	internal.POST("/drivers/:id/availability", h.driverHTTP.ChangeAvailability)
	internal.GET("/drivers/:id/location", h.driverHTTP.GetLastLocation)
	internal.GET("/drivers/:id/status", h.driverHTTP.GetStatus)
	internal.GET("/drivers/:id/history", h.driverHTTP.GetLocationHistory)
	internal.GET("/drivers/nearby", h.driverHTTP.FindNearbyDrivers)
}
