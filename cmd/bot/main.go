package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/task-reminder-bot/internal/config"
	"github.com/diegoclair/task-reminder-bot/internal/database"
	"github.com/diegoclair/task-reminder-bot/internal/domain/service"
	"github.com/diegoclair/task-reminder-bot/internal/handlers"
	"github.com/diegoclair/task-reminder-bot/internal/scheduler"
	"github.com/diegoclair/task-reminder-bot/internal/telegram"
	"github.com/diegoclair/task-reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: .env file not found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}

// run wires the bot and blocks until ctx is done or the HTTP server fails.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations completed successfully")

	bot := telegram.New(cfg.TelegramBotToken,
		telegram.WithBaseURL(cfg.TelegramAPIURL),
		telegram.WithTimeout(cfg.HTTPClientTimeout),
	)

	svc := service.NewInstance(database.NewInstance(db), bot)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := scheduler.New("reminders", cfg.ReminderInterval, func(ctx context.Context) {
		svc.Reminder.RunCycle(ctx)
	})
	sched.Start(ctx)
	defer sched.Stop()

	go svc.Reminder.AnnounceStartup(ctx)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handlers.New(svc.Task)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	}
	log.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
