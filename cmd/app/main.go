package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"littlelemon/api"
	"littlelemon/cmd"
	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	ensureAdmin(&app, configs, logger)

	jobManager := jobs.NewJobManager(
		app.CreateDeleteExpiredTokensCommandHandler(),
		configs.TokenCleanupSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := httpin.NewEcho(app.CreateHTTPServer(), app.CreateAuthenticateTokenQueryHandler(), logger)
	if err = api.RegisterRoutes(e); err != nil {
		log.Fatalf("Failed to register API documentation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go startWebServer(e, configs.HTTPPort, logger)

	<-ctx.Done()
	logger.Info("Shutting down")

	jobManager.StopAll()
	if err = httpin.Shutdown(e, configs.ShutdownTimeout); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	closeDatabase(gormDB, logger)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn, err := configs.DSN()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func ensureAdmin(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if !configs.HasAdmin() {
		return
	}

	user, created, err := app.CreateEnsureAdminCommandHandler().Handle(
		context.Background(),
		commands.NewEnsureAdminCommand(configs.AdminUsername, configs.AdminEmail, configs.AdminPassword),
	)
	if err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}
	logger.Info("Admin user ready", "username", user.Username(), "created", created)
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	address := fmt.Sprintf("0.0.0.0:%s", port)
	logger.Info("HTTP server started", "address", address)
	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

func closeDatabase(gormDB *gorm.DB, logger *slog.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Error("Failed to get database handle", "error", err)
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}
