package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/circuitbreaker"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/config"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/database"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/health"
	httpclient "github.com/victoreduardo21/drb-operacao/internal/pkg/http"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/middleware"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	natspkg "github.com/victoreduardo21/drb-operacao/internal/pkg/nats"
	nrpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/newrelic"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/retry"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/server"
	wspkg "github.com/victoreduardo21/drb-operacao/internal/pkg/websocket"
	authGateway "github.com/victoreduardo21/drb-operacao/services/auth/gateway"
	authHandler "github.com/victoreduardo21/drb-operacao/services/auth/handler"
	authRepository "github.com/victoreduardo21/drb-operacao/services/auth/repository"
	authUsecase "github.com/victoreduardo21/drb-operacao/services/auth/usecase"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
	dashboardGateway "github.com/victoreduardo21/drb-operacao/services/dashboard/gateway"
	dashboardHandler "github.com/victoreduardo21/drb-operacao/services/dashboard/handler"
	dashboardUsecase "github.com/victoreduardo21/drb-operacao/services/dashboard/usecase"
	"github.com/victoreduardo21/drb-operacao/services/fleet"
	fleetGateway "github.com/victoreduardo21/drb-operacao/services/fleet/gateway"
	fleetUsecase "github.com/victoreduardo21/drb-operacao/services/fleet/usecase"
	livemapHandler "github.com/victoreduardo21/drb-operacao/services/livemap/handler"
	livemapUsecase "github.com/victoreduardo21/drb-operacao/services/livemap/usecase"
	"github.com/victoreduardo21/drb-operacao/services/store"
	terminalGateway "github.com/victoreduardo21/drb-operacao/services/terminals/gateway"
	terminalHandler "github.com/victoreduardo21/drb-operacao/services/terminals/handler"
	terminalUsecase "github.com/victoreduardo21/drb-operacao/services/terminals/usecase"
	tripHandler "github.com/victoreduardo21/drb-operacao/services/trips/handler"
	tripUsecase "github.com/victoreduardo21/drb-operacao/services/trips/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/operations.env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
	}
	shutdown.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})

	// NATS is optional; without it position events are not published
	var positionGW fleet.PositionGW
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Warn("NATS unavailable, position events disabled",
			logger.String("url", configs.NATS.URL),
			logger.ErrorField(err))
	} else {
		positionGW = fleetGateway.NewPositionGW(natsClient)
		shutdown.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	// Upstream HTTP client for the spreadsheet endpoint
	sheetClient := httpclient.NewEnhancedClient(zapLogger, configs.Sheet.Timeout,
		httpclient.WithRetryConfig(withNetworkRetries(retry.DefaultConfig())),
		httpclient.WithCircuitManager(circuitbreaker.NewManager(zapLogger)))

	// Data store and domain services
	dataStore := store.New(models.InitialData)

	terminalUC := terminalUsecase.NewTerminalUC(terminalGateway.NewSheetGW(sheetClient, configs.Sheet.URL), dataStore)

	var simulator fleet.SimulatorUC
	if configs.Simulation.Enabled {
		sim := fleetUsecase.NewSimulator(configs.Simulation, dataStore, positionGW)
		simulator = sim
		shutdown.Register("simulator", func(context.Context) error {
			sim.Stop()
			return nil
		})
	}

	sessionRepo := authRepository.NewSessionRepository(redisClient)
	operations := authUsecase.NewOperationsRunner(ctx, terminalUC, simulator, dataStore, sessionRepo)
	go operations.Watch(ctx, configs.Auth.SessionCheckInterval)
	authUC := authUsecase.NewAuthUC(
		configs,
		authGateway.NewSheetGW(sheetClient, configs.Sheet.URL),
		sessionRepo,
		operations,
	)

	tripUC := tripUsecase.NewTripUC(dataStore)
	mapUC := livemapUsecase.NewMapUC(dataStore)

	var generator dashboard.TextGenerator
	if gemini, err := dashboardGateway.NewGeminiGW(ctx, configs.Gemini); err != nil {
		zapLogger.Warn("AI analyst disabled", logger.ErrorField(err))
	} else {
		generator = gemini
	}
	dashboardUC := dashboardUsecase.NewDashboardUC(dataStore, terminalUC, generator)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(middleware.NewRelicMiddleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("redis", health.CheckFunc(redisClient.Ping))
	if natsClient != nil {
		healthSvc.AddChecker("nats", health.CheckFunc(func(context.Context) error {
			return natsClient.Ping()
		}))
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	// Register service routes
	public := e.Group("/api/v1")
	protected := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT, authUC))

	authHandler.NewHandler(authUC).RegisterRoutes(public, protected)
	terminalHandler.NewHandler(terminalUC).RegisterRoutes(protected)
	tripHandler.NewHandler(tripUC).RegisterRoutes(protected)
	dashboardHandler.NewHandler(dashboardUC).RegisterRoutes(protected)
	livemapHandler.NewHandler(ctx, mapUC, wspkg.NewManager(configs.JWT, authUC), dataStore).RegisterRoutes(e, protected)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	runErr := srv.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown completed with errors: %v", err)
	}

	if runErr != nil {
		log.Fatalf("server stopped: %v", runErr)
	}
}

func withNetworkRetries(cfg retry.Config) retry.Config {
	cfg.RetryableFunc = retry.NetworkRetryableFunc()
	return cfg
}
