package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/arkanhadi/kurir/internal/pkg/config"
	"github.com/arkanhadi/kurir/internal/pkg/database"
	"github.com/arkanhadi/kurir/internal/pkg/logger"
	natspkg "github.com/arkanhadi/kurir/internal/pkg/nats"
	"github.com/arkanhadi/kurir/services/driver/gateway"
	"github.com/arkanhadi/kurir/services/driver/handler"
	"github.com/arkanhadi/kurir/services/driver/repository"
	"github.com/arkanhadi/kurir/services/driver/usecase"
)

func main() {
	appName := "location-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	appLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Postgres client
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer postgresClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize repositories
	presenceRepo := repository.NewPresenceRepository(redisClient, configs.Presence)
	positionRepo := repository.NewPositionRepository(redisClient, configs.Location)
	cellRepo := repository.NewCellRepository(redisClient, configs.Cell)
	historyRepo := repository.NewHistoryRepository(postgresClient)

	// Initialize gateway
	driverGW := gateway.NewDriverGW(natsClient)

	// Initialize usecase
	driverUC := usecase.NewDriverUC(configs, presenceRepo, positionRepo, cellRepo, historyRepo, driverGW)

	// Initialize HTTP handler
	driverHandler := handler.NewHTTPHandler(driverUC)

	// Initialize Echo router
	e := echo.New()
	driverHandler.RegisterRoutes(e)

	// Start server
	logger.Info("starting service",
		logger.String("service", appName),
		logger.Int("port", configs.Server.Port),
	)
	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
