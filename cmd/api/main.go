package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bb-schoonmaak-backend/config"
	_ "bb-schoonmaak-backend/docs" // Important for Swagger
	v1 "bb-schoonmaak-backend/internal/delivery/http/v1"
	"bb-schoonmaak-backend/internal/domain"
	"bb-schoonmaak-backend/internal/relay"
	"bb-schoonmaak-backend/internal/repository/memory"
	"bb-schoonmaak-backend/internal/repository/redisstore"
	"bb-schoonmaak-backend/internal/usecase"
	"bb-schoonmaak-backend/pkg/logger"
	"bb-schoonmaak-backend/pkg/metrics"
	"bb-schoonmaak-backend/pkg/redis"
	"bb-schoonmaak-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           B&B Schoonmaakdiensten Site API
// @version         1.0
// @description     Backend for the B&B Schoonmaakdiensten marketing site: form submission pipeline, catalog, client state.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger and Metrics
	logger.Init()
	logger.Log.Info("Starting site backend", "port", cfg.Port, "env", cfg.Env)
	metrics.Init()

	// 3. Setup Redis (optional; in-memory fallback below)
	var stateRepo domain.ClientStateRepository
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, client state held in memory", "error", err.Error())
		stateRepo = memory.NewClientStateRepository()
	} else {
		stateRepo = redisstore.NewClientStateRepository(redis.Client())
		defer redis.Close()
	}

	// 4. Setup Repositories
	catalogRepo := memory.NewCatalogRepository()

	// 5. Setup Relay Transport and Fallback Policy
	relayClient := relay.NewClient(cfg)
	if !relayClient.IsConfigured() {
		logger.Log.Warn("Mail relay not configured - submissions will resolve via the demo fallback")
	}
	var policy relay.FallbackPolicy
	if cfg.PropagateFailures {
		policy = relay.PropagateTransportFailure{}
	} else {
		policy = relay.AlwaysSucceedOnTransportFailure{
			Delay: time.Duration(cfg.FallbackDelayMS) * time.Millisecond,
			Local: cfg.IsLocal(),
		}
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	submissionUC := usecase.NewSubmissionUsecase(relayClient, policy, catalogRepo, validate)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	clientStateUC := usecase.NewClientStateUsecase(stateRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC:  submissionUC,
		CatalogUC:     catalogUC,
		ClientStateUC: clientStateUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
