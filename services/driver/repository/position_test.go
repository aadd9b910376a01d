package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/models"
	"github.com/arkanhadi/kurir/services/driver"
)

func setupPositionRepo(t *testing.T) (*miniredis.Miniredis, driver.PositionRepo) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	repo := NewPositionRepository(redisClient, models.LocationConfig{CacheTTLSeconds: 600})
	return mr, repo
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPositionRepo_CacheLastAndGetLast(t *testing.T) {
	_, repo := setupPositionRepo(t)
	ctx := context.Background()

	location := models.GeoLocation{
		Latitude:  -6.1754,
		Longitude: 106.8272,
		Timestamp: 1700000000,
		Accuracy:  floatPtr(8.5),
		Speed:     floatPtr(42.0),
		Bearing:   floatPtr(180.0),
	}
	require.NoError(t, repo.CacheLast(ctx, "driver-1", location))

	got, err := repo.GetLast(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, location, *got)
}

func TestPositionRepo_GetLastReturnsNilWhenAbsent(t *testing.T) {
	_, repo := setupPositionRepo(t)

	got, err := repo.GetLast(context.Background(), "driver-unknown")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPositionRepo_CacheLastDropsStaleOptionalFields(t *testing.T) {
	_, repo := setupPositionRepo(t)
	ctx := context.Background()

	withReadings := models.GeoLocation{
		Latitude:  -6.1754,
		Longitude: 106.8272,
		Timestamp: 1700000000,
		Accuracy:  floatPtr(8.5),
		Speed:     floatPtr(42.0),
		Bearing:   floatPtr(180.0),
	}
	require.NoError(t, repo.CacheLast(ctx, "driver-1", withReadings))

	bare := models.GeoLocation{
		Latitude:  -6.1760,
		Longitude: 106.8280,
		Timestamp: 1700000010,
	}
	require.NoError(t, repo.CacheLast(ctx, "driver-1", bare))

	got, err := repo.GetLast(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Accuracy)
	assert.Nil(t, got.Speed)
	assert.Nil(t, got.Bearing)
}

func TestPositionRepo_Clear(t *testing.T) {
	_, repo := setupPositionRepo(t)
	ctx := context.Background()

	location := models.GeoLocation{Latitude: -6.1754, Longitude: 106.8272, Timestamp: 1700000000}
	require.NoError(t, repo.CacheLast(ctx, "driver-1", location))
	require.NoError(t, repo.Clear(ctx, "driver-1"))

	got, err := repo.GetLast(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPositionRepo_EntryExpires(t *testing.T) {
	mr, repo := setupPositionRepo(t)
	ctx := context.Background()

	location := models.GeoLocation{Latitude: -6.1754, Longitude: 106.8272, Timestamp: 1700000000}
	require.NoError(t, repo.CacheLast(ctx, "driver-1", location))

	mr.FastForward(601 * time.Second)

	got, err := repo.GetLast(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
