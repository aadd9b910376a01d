package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arkanhadi/kurir/internal/pkg/logger"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/internal/utils"
	"github.com/arkanhadi/kurir/services/driver"
)

// DriverHandler handles HTTP requests for driver presence and proximity
type DriverHandler struct {
	driverUC driver.DriverUseCase
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC driver.DriverUseCase) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

type submitLocationsRequest struct {
	Locations []models.GeoLocation `json:"locations"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type changeAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// SubmitLocations handles position batch submissions
func (h *DriverHandler) SubmitLocations(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req submitLocationsRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for location submission",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if len(req.Locations) == 0 {
		return utils.BadRequestResponse(c, "At least one location is required")
	}

	if err := h.driverUC.SubmitLocations(c.Request().Context(), driverID, req.Locations); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to submit locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Locations submitted", nil)
}

// ChangeStatus handles online/offline transitions
func (h *DriverHandler) ChangeStatus(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.driverUC.ChangeStatus(c.Request().Context(), driverID, models.DriverStatus(req.Status))
	if err != nil {
		if errors.Is(err, driver.ErrInvalidStatus) {
			return utils.BadRequestResponse(c, "Status must be online or offline")
		}
		return utils.InternalServerErrorResponse(c, "Failed to change status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// ChangeAvailability handles available/occupied transitions
func (h *DriverHandler) ChangeAvailability(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var req changeAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.driverUC.ChangeAvailability(c.Request().Context(), driverID, models.DriverAvailability(req.Availability))
	if err != nil {
		if errors.Is(err, driver.ErrInvalidAvailability) {
			return utils.BadRequestResponse(c, "Availability must be available or occupied")
		}
		return utils.InternalServerErrorResponse(c, "Failed to change availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// GetLastLocation returns the driver's cached most recent position
func (h *DriverHandler) GetLastLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	location, err := h.driverUC.GetLastLocation(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, driver.ErrLocationNotFound) {
			return utils.NotFoundResponse(c, "Driver location not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get driver location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", map[string]float64{
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
	})
}

// GetStatus returns whether the driver is online
func (h *DriverHandler) GetStatus(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	presence, err := h.driverUC.GetPresence(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get driver status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status retrieved", map[string]bool{
		"is_online": presence.IsOnline(),
	})
}

// FindNearbyDrivers returns available drivers close to a point
func (h *DriverHandler) FindNearbyDrivers(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radius := 100.0
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	drivers, err := h.driverUC.GetNearestAvailableDrivers(c.Request().Context(), latitude, longitude, radius, limit)
	if err != nil {
		if errors.Is(err, driver.ErrInvalidRadius) || errors.Is(err, driver.ErrInvalidMaxCount) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to find nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", map[string]interface{}{
		"drivers": drivers,
	})
}

// GetLocationHistory returns archived positions for a driver within a time
// range, defaulting to the last 24 hours
func (h *DriverHandler) GetLocationHistory(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	end := time.Now()
	start := end.Add(-24 * time.Hour)

	if raw := c.QueryParam("start"); raw != "" {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid start timestamp")
		}
		start = time.Unix(ts, 0)
	}
	if raw := c.QueryParam("end"); raw != "" {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid end timestamp")
		}
		end = time.Unix(ts, 0)
	}

	locations, err := h.driverUC.GetLocationHistory(c.Request().Context(), driverID, start, end)
	if err != nil {
		if errors.Is(err, driver.ErrInvalidTimeRange) {
			return utils.BadRequestResponse(c, "Start time must be before end time")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get location history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved", map[string]interface{}{
		"locations": locations,
	})
}
