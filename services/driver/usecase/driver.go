package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/arkanhadi/kurir/internal/pkg/logger"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/internal/utils"
	"github.com/arkanhadi/kurir/services/driver"
)

// DriverUC implements the driver.DriverUseCase interface. It composes the
// presence store, the position store and the spatial cell index into the
// driver aggregate. Cache updates are deliberately unsynchronized: a
// concurrent submission for the same driver can transiently leave the index
// over- or under-counting, which proximity results tolerate.
type DriverUC struct {
	cfg          *models.Config
	presenceRepo driver.PresenceRepo
	positionRepo driver.PositionRepo
	cellRepo     driver.CellRepo
	historyRepo  driver.HistoryRepo
	driverGW     driver.DriverGW
	validator    *LocationValidator
}

// NewDriverUC creates a new driver use case
func NewDriverUC(
	cfg *models.Config,
	presenceRepo driver.PresenceRepo,
	positionRepo driver.PositionRepo,
	cellRepo driver.CellRepo,
	historyRepo driver.HistoryRepo,
	driverGW driver.DriverGW,
) driver.DriverUseCase {
	return &DriverUC{
		cfg:          cfg,
		presenceRepo: presenceRepo,
		positionRepo: positionRepo,
		cellRepo:     cellRepo,
		historyRepo:  historyRepo,
		driverGW:     driverGW,
		validator:    NewLocationValidator(cfg.Location),
	}
}

// SubmitLocations ingests a batch of raw position samples for a driver.
// An offline driver rejoins fresh: stale position and index state are
// cleared, the driver flips online with availability reset to available, and
// only then is the new window stored. Invalid samples are dropped silently;
// the submission only fails on infrastructure errors.
func (s *DriverUC) SubmitLocations(ctx context.Context, driverID string, locations []models.GeoLocation) error {
	presence, err := s.presenceRepo.Get(ctx, driverID)
	if err != nil {
		logger.Error("failed to load driver presence",
			logger.String("driver_id", driverID),
			logger.String("operation", "submit_locations"),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to load driver presence: %w", err)
	}

	if !presence.IsOnline() {
		if err := s.clearDriverState(ctx, driverID); err != nil {
			logger.Error("failed to clear stale driver state",
				logger.String("driver_id", driverID),
				logger.ErrorField(err),
			)
			return fmt.Errorf("failed to clear stale driver state: %w", err)
		}
		if err := s.presenceRepo.Set(ctx, driverID, models.StatusOnline, models.AvailabilityAvailable); err != nil {
			logger.Error("failed to set driver online",
				logger.String("driver_id", driverID),
				logger.ErrorField(err),
			)
			return fmt.Errorf("failed to set driver online: %w", err)
		}
		presence.Status = models.StatusOnline
		presence.Availability = models.AvailabilityAvailable
	}

	window, err := s.buildWindow(ctx, driverID, locations)
	if err != nil {
		logger.Error("failed to build position window",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
		return err
	}
	if len(window) == 0 {
		logger.Debug("submission contained no valid locations",
			logger.String("driver_id", driverID),
			logger.Int("submitted", len(locations)),
		)
		return nil
	}

	if err := s.historyRepo.Insert(ctx, driverID, window); err != nil {
		logger.Error("failed to persist location history",
			logger.String("driver_id", driverID),
			logger.Int("locations", len(window)),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to persist location history: %w", err)
	}

	mostRecent := window[0]
	if err := s.positionRepo.CacheLast(ctx, driverID, mostRecent); err != nil {
		logger.Error("failed to cache last location",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to cache last location: %w", err)
	}

	cellID, err := s.updateCell(ctx, driverID, mostRecent)
	if err != nil {
		logger.Error("failed to update spatial index",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to update spatial index: %w", err)
	}

	if err := s.driverGW.PublishLocationUpdate(ctx, models.LocationUpdate{
		DriverID:  driverID,
		Location:  mostRecent,
		CellID:    cellID,
		CreatedAt: time.Now(),
	}); err != nil {
		logger.Warn("failed to publish location update",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
	}

	return nil
}

// ChangeStatus transitions the driver between online and offline. Unchanged
// status is a no-op. Any real transition clears the cached position and
// spatial membership and resets availability to available.
func (s *DriverUC) ChangeStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	if status != models.StatusOnline && status != models.StatusOffline {
		return driver.ErrInvalidStatus
	}

	presence, err := s.presenceRepo.Get(ctx, driverID)
	if err != nil {
		logger.Error("failed to load driver presence",
			logger.String("driver_id", driverID),
			logger.String("operation", "change_status"),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to load driver presence: %w", err)
	}

	if presence.Status == status {
		return nil
	}

	if err := s.clearDriverState(ctx, driverID); err != nil {
		logger.Error("failed to clear driver state",
			logger.String("driver_id", driverID),
			logger.String("status", string(status)),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to clear driver state: %w", err)
	}

	if err := s.presenceRepo.Set(ctx, driverID, status, models.AvailabilityAvailable); err != nil {
		logger.Error("failed to store driver status",
			logger.String("driver_id", driverID),
			logger.String("status", string(status)),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to store driver status: %w", err)
	}

	if err := s.driverGW.PublishStatusChange(ctx, models.StatusChange{
		DriverID:     driverID,
		Status:       status,
		Availability: models.AvailabilityAvailable,
		CreatedAt:    time.Now(),
	}); err != nil {
		logger.Warn("failed to publish status change",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
	}

	return nil
}

// ChangeAvailability flips the driver between available and occupied.
// Unchanged availability is a no-op; status is untouched either way.
func (s *DriverUC) ChangeAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error {
	if availability != models.AvailabilityAvailable && availability != models.AvailabilityOccupied {
		return driver.ErrInvalidAvailability
	}

	presence, err := s.presenceRepo.Get(ctx, driverID)
	if err != nil {
		logger.Error("failed to load driver presence",
			logger.String("driver_id", driverID),
			logger.String("operation", "change_availability"),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to load driver presence: %w", err)
	}

	if presence.Availability == availability {
		return nil
	}

	if err := s.presenceRepo.SetAvailability(ctx, driverID, availability); err != nil {
		logger.Error("failed to store driver availability",
			logger.String("driver_id", driverID),
			logger.String("availability", string(availability)),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to store driver availability: %w", err)
	}

	return nil
}

// GetLastLocation returns the driver's cached most recent position. An
// offline driver has no valid position by definition.
func (s *DriverUC) GetLastLocation(ctx context.Context, driverID string) (*models.GeoLocation, error) {
	presence, err := s.presenceRepo.Get(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver presence: %w", err)
	}
	if !presence.IsOnline() {
		return nil, driver.ErrLocationNotFound
	}

	location, err := s.positionRepo.GetLast(ctx, driverID)
	if err != nil {
		logger.Error("failed to load last location",
			logger.String("driver_id", driverID),
			logger.ErrorField(err),
		)
		return nil, fmt.Errorf("failed to load last location: %w", err)
	}
	if location == nil {
		return nil, driver.ErrLocationNotFound
	}

	return location, nil
}

// GetPresence returns the driver's cached presence, initializing the
// offline/available default on first contact
func (s *DriverUC) GetPresence(ctx context.Context, driverID string) (*models.DriverPresence, error) {
	presence, err := s.presenceRepo.Get(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver presence: %w", err)
	}
	return presence, nil
}

// GetNearestAvailableDrivers returns at most maxCount available drivers
// within radiusM meters of the point, closest first. Candidate presences are
// loaded concurrently; a candidate whose presence cannot be read is dropped
// from the result rather than failing the query.
func (s *DriverUC) GetNearestAvailableDrivers(ctx context.Context, latitude, longitude float64, radiusM float64, maxCount int) ([]models.NearbyDriver, error) {
	if radiusM <= 0 {
		return nil, driver.ErrInvalidRadius
	}
	if maxCount <= 0 {
		return nil, driver.ErrInvalidMaxCount
	}

	members, err := s.cellRepo.MembersNear(ctx, latitude, longitude)
	if err != nil {
		logger.Error("failed to query spatial index",
			logger.Float64("latitude", latitude),
			logger.Float64("longitude", longitude),
			logger.ErrorField(err),
		)
		return nil, fmt.Errorf("failed to query spatial index: %w", err)
	}

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	candidates := make([]models.NearbyDriver, 0, len(members))
	for driverID, location := range members {
		distance := utils.DistanceMeters(origin, utils.GeoPoint{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		})
		if distance <= radiusM {
			candidates = append(candidates, models.NearbyDriver{
				DriverID:  driverID,
				Latitude:  location.Latitude,
				Longitude: location.Longitude,
				Distance:  distance,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	if len(candidates) > maxCount {
		candidates = candidates[:maxCount]
	}

	presences := make([]*models.DriverPresence, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			presence, err := s.presenceRepo.Get(ctx, candidates[i].DriverID)
			if err != nil {
				logger.Warn("failed to load candidate presence",
					logger.String("driver_id", candidates[i].DriverID),
					logger.ErrorField(err),
				)
				return
			}
			presences[i] = presence
		}(i)
	}
	wg.Wait()

	available := make([]models.NearbyDriver, 0, len(candidates))
	for i, candidate := range candidates {
		if presences[i] != nil && presences[i].IsAvailable() {
			available = append(available, candidate)
		}
	}
	if len(available) > maxCount {
		available = available[:maxCount]
	}

	return available, nil
}

// GetLocationHistory reads archived position records for a driver
func (s *DriverUC) GetLocationHistory(ctx context.Context, driverID string, start, end time.Time) ([]models.GeoLocation, error) {
	if start.After(end) {
		return nil, driver.ErrInvalidTimeRange
	}

	return s.historyRepo.GetByTimeRange(ctx, driverID, start, end)
}

// buildWindow merges the cached most recent location with the valid subset
// of the submitted candidates, newest first, bounded by the configured
// window size.
func (s *DriverUC) buildWindow(ctx context.Context, driverID string, candidates []models.GeoLocation) ([]models.GeoLocation, error) {
	window := make([]models.GeoLocation, 0, len(candidates)+1)
	for _, candidate := range candidates {
		if s.validator.IsValid(candidate) {
			window = append(window, candidate)
		}
	}

	last, err := s.positionRepo.GetLast(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last location: %w", err)
	}
	if last != nil {
		window = append(window, *last)
	}

	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Timestamp > window[j].Timestamp
	})

	if len(window) > s.cfg.Location.WindowSize {
		window = window[:s.cfg.Location.WindowSize]
	}

	return window, nil
}

// updateCell keeps the spatial index consistent with the driver's newest
// position. Same cell means no index mutation; a cell change removes the old
// membership before the new one is written. The two writes are independent,
// so an interleaved concurrent submission can briefly observe the driver in
// two cells or in none.
func (s *DriverUC) updateCell(ctx context.Context, driverID string, location models.GeoLocation) (string, error) {
	currentCell := s.cellRepo.CellID(location)
	lastCell := s.cellRepo.GetLastCell(ctx, driverID)

	if lastCell == currentCell {
		return currentCell, nil
	}

	if lastCell != "" {
		if err := s.cellRepo.Invalidate(ctx, driverID); err != nil {
			return "", err
		}
	}
	if err := s.cellRepo.SetLastCell(ctx, driverID, location); err != nil {
		return "", err
	}
	if err := s.cellRepo.AddToCell(ctx, driverID, location); err != nil {
		return "", err
	}

	return currentCell, nil
}

// clearDriverState drops the cached last location and the spatial membership
// so a stale position can never surface after a status change
func (s *DriverUC) clearDriverState(ctx context.Context, driverID string) error {
	if err := s.cellRepo.Invalidate(ctx, driverID); err != nil {
		return err
	}
	return s.positionRepo.Clear(ctx, driverID)
}
