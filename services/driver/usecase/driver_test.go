package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/services/driver"
	"github.com/arkanhadi/kurir/services/driver/mocks"
)

type driverUCMocks struct {
	presence *mocks.MockPresenceRepo
	position *mocks.MockPositionRepo
	cell     *mocks.MockCellRepo
	history  *mocks.MockHistoryRepo
	gw       *mocks.MockDriverGW
}

func testConfig() *models.Config {
	return &models.Config{
		Presence: models.PresenceConfig{CacheTTLSeconds: 600},
		Location: models.LocationConfig{
			CacheTTLSeconds:    600,
			WindowSize:         5,
			AccuracyThresholdM: 15,
			MaxSpeedKmh:        150,
			MaxTimestampDelayS: 300,
			ValidationEnabled:  true,
		},
		Cell: models.CellConfig{Precision: 6, CacheTTLSeconds: 600},
	}
}

func setupDriverUC(t *testing.T) (driver.DriverUseCase, driverUCMocks) {
	ctrl := gomock.NewController(t)
	m := driverUCMocks{
		presence: mocks.NewMockPresenceRepo(ctrl),
		position: mocks.NewMockPositionRepo(ctrl),
		cell:     mocks.NewMockCellRepo(ctrl),
		history:  mocks.NewMockHistoryRepo(ctrl),
		gw:       mocks.NewMockDriverGW(ctrl),
	}
	uc := NewDriverUC(testConfig(), m.presence, m.position, m.cell, m.history, m.gw)
	return uc, m
}

func onlinePresence(driverID string) *models.DriverPresence {
	return &models.DriverPresence{
		DriverID:     driverID,
		Status:       models.StatusOnline,
		Availability: models.AvailabilityAvailable,
	}
}

func offlinePresence(driverID string) *models.DriverPresence {
	return &models.DriverPresence{
		DriverID:     driverID,
		Status:       models.StatusOffline,
		Availability: models.AvailabilityAvailable,
	}
}

func validSample(ts int64) models.GeoLocation {
	return models.GeoLocation{
		Latitude:  -6.1754,
		Longitude: 106.8272,
		Timestamp: ts,
		Accuracy:  floatPtr(10),
		Speed:     floatPtr(40),
	}
}

func TestSubmitLocations_OnlineDriver(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	sample := validSample(time.Now().Unix())

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", []models.GeoLocation{sample}).Return(nil)
	m.position.EXPECT().CacheLast(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().CellID(sample).Return("cell-a")
	m.cell.EXPECT().GetLastCell(gomock.Any(), "driver-1").Return("")
	m.cell.EXPECT().SetLastCell(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().AddToCell(gomock.Any(), "driver-1", sample).Return(nil)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.LocationUpdate) error {
			assert.Equal(t, "driver-1", update.DriverID)
			assert.Equal(t, sample, update.Location)
			assert.Equal(t, "cell-a", update.CellID)
			return nil
		})

	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{sample})

	assert.NoError(t, err)
}

func TestSubmitLocations_OfflineDriverRejoins(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	sample := validSample(time.Now().Unix())

	occupied := &models.DriverPresence{
		DriverID:     "driver-1",
		Status:       models.StatusOffline,
		Availability: models.AvailabilityOccupied,
	}
	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(occupied, nil)

	// stale state is cleared before the driver flips online; the flip is a
	// status change, so availability resets to available as well
	m.cell.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)
	m.position.EXPECT().Clear(gomock.Any(), "driver-1").Return(nil)
	m.presence.EXPECT().Set(gomock.Any(), "driver-1", models.StatusOnline, models.AvailabilityAvailable).Return(nil)

	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", []models.GeoLocation{sample}).Return(nil)
	m.position.EXPECT().CacheLast(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().CellID(sample).Return("cell-a")
	m.cell.EXPECT().GetLastCell(gomock.Any(), "driver-1").Return("")
	m.cell.EXPECT().SetLastCell(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().AddToCell(gomock.Any(), "driver-1", sample).Return(nil)
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{sample})

	assert.NoError(t, err)
}

func TestSubmitLocations_AllSamplesInvalid(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)

	// accuracy missing, so every sample is rejected and nothing is stored
	invalid := models.GeoLocation{
		Latitude:  -6.1754,
		Longitude: 106.8272,
		Timestamp: time.Now().Unix(),
	}
	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{invalid, invalid})

	assert.NoError(t, err)
}

func TestSubmitLocations_WindowBounded(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	now := time.Now().Unix()

	cached := validSample(now - 10)
	samples := []models.GeoLocation{
		validSample(now - 3),
		validSample(now - 1),
		validSample(now - 5),
		validSample(now - 2),
		validSample(now - 4),
		validSample(now - 6),
	}

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(&cached, nil)

	var window []models.GeoLocation
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, locations []models.GeoLocation) error {
			window = locations
			return nil
		})
	m.position.EXPECT().CacheLast(gomock.Any(), "driver-1", validSample(now-1)).Return(nil)
	m.cell.EXPECT().CellID(validSample(now - 1)).Return("cell-a")
	m.cell.EXPECT().GetLastCell(gomock.Any(), "driver-1").Return("cell-a")
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.SubmitLocations(ctx, "driver-1", samples)

	require.NoError(t, err)
	require.Len(t, window, 5)
	for i := 0; i < len(window)-1; i++ {
		assert.GreaterOrEqual(t, window[i].Timestamp, window[i+1].Timestamp)
	}
	assert.Equal(t, now-1, window[0].Timestamp)
	// the cached fix and the oldest sample fell off the end of the window
	assert.Equal(t, now-5, window[4].Timestamp)
}

func TestSubmitLocations_CellChange(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	sample := validSample(time.Now().Unix())

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	m.position.EXPECT().CacheLast(gomock.Any(), "driver-1", sample).Return(nil)

	// old membership is invalidated before the new cell is written
	m.cell.EXPECT().CellID(sample).Return("cell-new")
	m.cell.EXPECT().GetLastCell(gomock.Any(), "driver-1").Return("cell-old")
	m.cell.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)
	m.cell.EXPECT().SetLastCell(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().AddToCell(gomock.Any(), "driver-1", sample).Return(nil)

	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.LocationUpdate) error {
			assert.Equal(t, "cell-new", update.CellID)
			return nil
		})

	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{sample})

	assert.NoError(t, err)
}

func TestSubmitLocations_PublishFailureIsNotFatal(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	sample := validSample(time.Now().Unix())

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", gomock.Any()).Return(nil)
	m.position.EXPECT().CacheLast(gomock.Any(), "driver-1", sample).Return(nil)
	m.cell.EXPECT().CellID(sample).Return("cell-a")
	m.cell.EXPECT().GetLastCell(gomock.Any(), "driver-1").Return("cell-a")
	m.gw.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{sample})

	assert.NoError(t, err)
}

func TestSubmitLocations_HistoryInsertFailure(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	sample := validSample(time.Now().Unix())

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)
	m.history.EXPECT().Insert(gomock.Any(), "driver-1", gomock.Any()).Return(errors.New("db down"))

	err := uc.SubmitLocations(ctx, "driver-1", []models.GeoLocation{sample})

	assert.Error(t, err)
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	uc, _ := setupDriverUC(t)

	err := uc.ChangeStatus(context.Background(), "driver-1", models.DriverStatus("parked"))

	assert.ErrorIs(t, err, driver.ErrInvalidStatus)
}

func TestChangeStatus_UnchangedIsNoOp(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)

	err := uc.ChangeStatus(context.Background(), "driver-1", models.StatusOnline)

	assert.NoError(t, err)
}

func TestChangeStatus_GoingOffline(t *testing.T) {
	uc, m := setupDriverUC(t)

	occupied := &models.DriverPresence{
		DriverID:     "driver-1",
		Status:       models.StatusOnline,
		Availability: models.AvailabilityOccupied,
	}
	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(occupied, nil)
	m.cell.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)
	m.position.EXPECT().Clear(gomock.Any(), "driver-1").Return(nil)
	m.presence.EXPECT().Set(gomock.Any(), "driver-1", models.StatusOffline, models.AvailabilityAvailable).Return(nil)
	m.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, change models.StatusChange) error {
			assert.Equal(t, "driver-1", change.DriverID)
			assert.Equal(t, models.StatusOffline, change.Status)
			assert.Equal(t, models.AvailabilityAvailable, change.Availability)
			return nil
		})

	err := uc.ChangeStatus(context.Background(), "driver-1", models.StatusOffline)

	assert.NoError(t, err)
}

func TestChangeStatus_GoingOnline(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(offlinePresence("driver-1"), nil)
	m.cell.EXPECT().Invalidate(gomock.Any(), "driver-1").Return(nil)
	m.position.EXPECT().Clear(gomock.Any(), "driver-1").Return(nil)
	m.presence.EXPECT().Set(gomock.Any(), "driver-1", models.StatusOnline, models.AvailabilityAvailable).Return(nil)
	m.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ChangeStatus(context.Background(), "driver-1", models.StatusOnline)

	assert.NoError(t, err)
}

func TestChangeAvailability_InvalidValue(t *testing.T) {
	uc, _ := setupDriverUC(t)

	err := uc.ChangeAvailability(context.Background(), "driver-1", models.DriverAvailability("busy"))

	assert.ErrorIs(t, err, driver.ErrInvalidAvailability)
}

func TestChangeAvailability_UnchangedIsNoOp(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)

	err := uc.ChangeAvailability(context.Background(), "driver-1", models.AvailabilityAvailable)

	assert.NoError(t, err)
}

func TestChangeAvailability_Flip(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.presence.EXPECT().SetAvailability(gomock.Any(), "driver-1", models.AvailabilityOccupied).Return(nil)

	err := uc.ChangeAvailability(context.Background(), "driver-1", models.AvailabilityOccupied)

	assert.NoError(t, err)
}

func TestGetLastLocation_OfflineDriver(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(offlinePresence("driver-1"), nil)

	_, err := uc.GetLastLocation(context.Background(), "driver-1")

	assert.ErrorIs(t, err, driver.ErrLocationNotFound)
}

func TestGetLastLocation_NothingCached(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(nil, nil)

	_, err := uc.GetLastLocation(context.Background(), "driver-1")

	assert.ErrorIs(t, err, driver.ErrLocationNotFound)
}

func TestGetLastLocation_OK(t *testing.T) {
	uc, m := setupDriverUC(t)
	cached := validSample(time.Now().Unix())

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)
	m.position.EXPECT().GetLast(gomock.Any(), "driver-1").Return(&cached, nil)

	location, err := uc.GetLastLocation(context.Background(), "driver-1")

	require.NoError(t, err)
	assert.Equal(t, cached, *location)
}

func TestGetPresence(t *testing.T) {
	uc, m := setupDriverUC(t)

	m.presence.EXPECT().Get(gomock.Any(), "driver-1").Return(onlinePresence("driver-1"), nil)

	presence, err := uc.GetPresence(context.Background(), "driver-1")

	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, presence.Status)
}

func TestGetNearestAvailableDrivers_InvalidArguments(t *testing.T) {
	uc, _ := setupDriverUC(t)
	ctx := context.Background()

	_, err := uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 0, 10)
	assert.ErrorIs(t, err, driver.ErrInvalidRadius)

	_, err = uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 100, 0)
	assert.ErrorIs(t, err, driver.ErrInvalidMaxCount)
}

func TestGetNearestAvailableDrivers_SortedByDistance(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()

	// roughly 50m, 80m and 150m north of the query point
	members := map[string]models.GeoLocation{
		"driver-50":  {Latitude: -6.19955034, Longitude: 106.8, Timestamp: 1700000000},
		"driver-80":  {Latitude: -6.19928055, Longitude: 106.8, Timestamp: 1700000000},
		"driver-150": {Latitude: -6.19865110, Longitude: 106.8, Timestamp: 1700000000},
	}
	m.cell.EXPECT().MembersNear(gomock.Any(), -6.2, 106.8).Return(members, nil)
	m.presence.EXPECT().Get(gomock.Any(), "driver-50").Return(onlinePresence("driver-50"), nil)
	m.presence.EXPECT().Get(gomock.Any(), "driver-80").Return(onlinePresence("driver-80"), nil)

	drivers, err := uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 100, 10)

	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "driver-50", drivers[0].DriverID)
	assert.Equal(t, "driver-80", drivers[1].DriverID)
	assert.InDelta(t, 50, drivers[0].Distance, 1)
	assert.InDelta(t, 80, drivers[1].Distance, 1)
}

func TestGetNearestAvailableDrivers_AvailabilityGating(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()

	members := map[string]models.GeoLocation{
		"driver-50": {Latitude: -6.19955034, Longitude: 106.8, Timestamp: 1700000000},
		"driver-80": {Latitude: -6.19928055, Longitude: 106.8, Timestamp: 1700000000},
	}
	occupied := &models.DriverPresence{
		DriverID:     "driver-50",
		Status:       models.StatusOnline,
		Availability: models.AvailabilityOccupied,
	}
	m.cell.EXPECT().MembersNear(gomock.Any(), -6.2, 106.8).Return(members, nil)
	m.presence.EXPECT().Get(gomock.Any(), "driver-50").Return(occupied, nil)
	m.presence.EXPECT().Get(gomock.Any(), "driver-80").Return(onlinePresence("driver-80"), nil)

	drivers, err := uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 100, 10)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "driver-80", drivers[0].DriverID)
}

func TestGetNearestAvailableDrivers_PresenceLoadFailureDropsCandidate(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()

	members := map[string]models.GeoLocation{
		"driver-50": {Latitude: -6.19955034, Longitude: 106.8, Timestamp: 1700000000},
		"driver-80": {Latitude: -6.19928055, Longitude: 106.8, Timestamp: 1700000000},
	}
	m.cell.EXPECT().MembersNear(gomock.Any(), -6.2, 106.8).Return(members, nil)
	m.presence.EXPECT().Get(gomock.Any(), "driver-50").Return(nil, errors.New("redis down"))
	m.presence.EXPECT().Get(gomock.Any(), "driver-80").Return(onlinePresence("driver-80"), nil)

	drivers, err := uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 100, 10)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "driver-80", drivers[0].DriverID)
}

func TestGetNearestAvailableDrivers_MaxCountCap(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()

	members := map[string]models.GeoLocation{
		"driver-50": {Latitude: -6.19955034, Longitude: 106.8, Timestamp: 1700000000},
		"driver-80": {Latitude: -6.19928055, Longitude: 106.8, Timestamp: 1700000000},
	}
	m.cell.EXPECT().MembersNear(gomock.Any(), -6.2, 106.8).Return(members, nil)
	// only the closest candidate survives the cap, so only its presence loads
	m.presence.EXPECT().Get(gomock.Any(), "driver-50").Return(onlinePresence("driver-50"), nil)

	drivers, err := uc.GetNearestAvailableDrivers(ctx, -6.2, 106.8, 100, 1)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "driver-50", drivers[0].DriverID)
}

func TestGetLocationHistory(t *testing.T) {
	uc, m := setupDriverUC(t)
	ctx := context.Background()
	start := time.Unix(1700000000, 0)
	end := time.Unix(1700003600, 0)

	expected := []models.GeoLocation{validSample(1700000100)}
	m.history.EXPECT().GetByTimeRange(gomock.Any(), "driver-1", start, end).Return(expected, nil)

	locations, err := uc.GetLocationHistory(ctx, "driver-1", start, end)

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestGetLocationHistory_InvalidRange(t *testing.T) {
	uc, _ := setupDriverUC(t)

	_, err := uc.GetLocationHistory(context.Background(), "driver-1", time.Unix(100, 0), time.Unix(50, 0))

	assert.ErrorIs(t, err, driver.ErrInvalidTimeRange)
}
