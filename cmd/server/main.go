package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bpcoach/internal/config"
	v1 "bpcoach/internal/handler/v1"
	"bpcoach/internal/llm"
	"bpcoach/internal/repository"
	"bpcoach/internal/service"
	"bpcoach/pkg/database"
	"bpcoach/pkg/logger"
	"bpcoach/pkg/metrics"
	"bpcoach/pkg/tracer"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("loading config: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("building logger: " + err.Error())
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	m := metrics.NewCollector("bpcoach")
	if sqlDB, err := db.DB(); err == nil {
		go func() {
			for range time.Tick(15 * time.Second) {
				m.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
			}
		}()
	}

	store := service.NewSessionStore()
	gateway := llm.NewGatewayClient(cfg.Coach, log)

	assessmentRepo := repository.NewAssessmentRepository(db)
	readingRepo := repository.NewReadingRepository(db)

	handlers := v1.Handlers{
		Assessment: v1.NewAssessmentHandler(service.NewAssessmentService(assessmentRepo, readingRepo, store, m, log)),
		Chat:       v1.NewChatHandler(service.NewChatService(store, gateway, m, log), log),
		DietPlan:   v1.NewDietPlanHandler(service.NewDietPlanService(store, gateway, m, log), log),
		Trend:      v1.NewTrendHandler(service.NewTrendService(readingRepo, gateway, m, log)),
	}

	router := v1.NewRouter(cfg, handlers, m, log)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout, // zero: SSE responses outlive any fixed deadline
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
