package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beauty-booking-backend/config"
	"beauty-booking-backend/internal/availability"
	deliveryHttp "beauty-booking-backend/internal/delivery/http"
	"beauty-booking-backend/internal/delivery/http/handler"
	"beauty-booking-backend/internal/delivery/http/middleware"
	"beauty-booking-backend/internal/infrastructure/cache"
	"beauty-booking-backend/internal/infrastructure/database"
	"beauty-booking-backend/internal/repository"
	"beauty-booking-backend/internal/usecase"
	"beauty-booking-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations before serving traffic
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	establishmentRepo := repository.NewEstablishmentRepository()
	serviceRepo := repository.NewServiceRepository()
	staffRepo := repository.NewStaffMemberRepository()
	scheduleRepo := repository.NewWeeklyScheduleRepository()
	timeOffRepo := repository.NewTimeOffRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// The availability engine reads through one store adapter and ticks in the
	// configured timezone so "today" cutoffs match the business location.
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.App.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(location) }
	availabilityStore := repository.NewAvailabilityStore(db)
	engine := availability.NewEngine(availabilityStore, availabilityStore, availabilityStore, now)

	// Initialize usecases
	establishmentUsecase := usecase.NewEstablishmentUsecase(db, log, establishmentRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, establishmentRepo)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo, establishmentRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, timeOffRepo, staffRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, engine, staffRepo, serviceRepo)
	bookingUsecase := usecase.NewBookingUsecase(db, log, engine, appointmentRepo, staffRepo, serviceRepo, now)

	// Initialize handlers
	establishmentHandler := handler.NewEstablishmentHandler(establishmentUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(staffUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, log, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	// Initialize router
	router := deliveryHttp.NewRouter(
		establishmentHandler,
		serviceHandler,
		staffHandler,
		scheduleHandler,
		availabilityHandler,
		appointmentHandler,
		corsMiddleware,
		rateLimitMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
