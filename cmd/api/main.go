package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adapterHTTP "github.com/comitanigiacomo/lifesync/internal/adapters/handler/http"
	"github.com/comitanigiacomo/lifesync/internal/app"
	"github.com/comitanigiacomo/lifesync/internal/config"
	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
	"github.com/comitanigiacomo/lifesync/internal/core/workers"
	"github.com/comitanigiacomo/lifesync/internal/logging"
)

// @title        LifeSync API
// @version      1.0
// @description  Daily routines, monthly reports and wellness companions.
// @BasePath     /api/v1
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lifesync-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	storage, err := app.OpenStorage(ctx, cfg, logger, true)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	logger.Info("Storage ready", zap.String("backend", storage.Backend), zap.Bool("cache", storage.Redis != nil))

	routineService := services.NewRoutineService(storage.Routines)
	journalService := services.NewJournalService(storage.Journal, nil)
	statsService := services.NewStatsService(storage.Routines)

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	streakWorker := workers.NewStreakWorker(storage.Routines, logger, nil)
	workerDone := streakWorker.Start(workerCtx)
	routineService.OnChange(streakWorker.Enqueue)
	statsService.UseStreakCache(streakWorker)

	gin.SetMode(gin.ReleaseMode)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		RoutineHandler:    adapterHTTP.NewRoutineHandler(routineService),
		ReportHandler:     adapterHTTP.NewReportHandler(routineService, nil),
		JournalHandler:    adapterHTTP.NewJournalHandler(journalService),
		AttractionHandler: adapterHTTP.NewAttractionHandler(services.NewAttractionService(domain.DefaultAttractions())),
		ChatbotHandler:    adapterHTTP.NewChatbotHandler(services.NewChatbotService(nil), services.NewWellnessService(storage.Health)),
		StatsHandler:      adapterHTTP.NewStatsHandler(statsService, nil),
		Logger:            logger,
		DefaultUser:       cfg.DefaultUser,
		StoragePing: func(ctx context.Context) error {
			return storage.Ping(ctx, cfg.DataDir)
		},
		StorageName: storage.Backend,
		Redis:       storage.Redis,
		RateLimit:   cfg.RateLimit,
		RateWindow:  cfg.RateWindow,
		StartTime:   startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("LifeSync API listening", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("Stop signal received, shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	stopWorker()
	<-workerDone

	logger.Info("Server stopped gracefully")
	return nil
}
