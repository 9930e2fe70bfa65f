package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/actions"
	"github.com/merchantkit/checkout-service/internal/api"
	"github.com/merchantkit/checkout-service/internal/config"
	"github.com/merchantkit/checkout-service/internal/handlers"
	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/processor"
	"github.com/merchantkit/checkout-service/internal/repository"
	"github.com/merchantkit/checkout-service/internal/service"
	"github.com/merchantkit/checkout-service/internal/signals"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

func main() {
	cfg := config.Load()

	if err := telemetry.Init("checkout-service"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Checkout Service")

	// Connect to PostgreSQL
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	receipts := repository.NewReceiptRepository(db)
	if err := receipts.InitDB(); err != nil {
		telemetry.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	attemptLock := repository.NewRedisAttemptLock(redisClient, 30*time.Second)

	// Connect to NATS
	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer nc.Close()

	// Kafka propagator for result frames
	propagator := signals.NewKafkaPropagator(cfg.KafkaBrokers, "checkout.result", telemetry.Logger)
	defer propagator.Close()

	tokenizer := processor.NewClient(cfg.ProcessorBaseURL, telemetry.Logger)
	runner := actions.NewRunner(cfg.ProcessorBaseURL, telemetry.Logger)

	creds := models.Credentials{
		MerchantID: cfg.MerchantID,
		Login:      cfg.ProcessorLogin,
		Password:   cfg.ProcessorPass,
	}

	controllerFactory := func() *service.Controller {
		return service.NewController(service.ControllerConfig{
			MerchantKey: cfg.MerchantKey,
			Credentials: creds,
			Tokenizer:   tokenizer,
			Actions:     runner,
			Lock:        attemptLock,
			Receipts:    receipts,
			Propagator:  propagator,
			OnSuccess:   signals.DefaultSuccessSteps(nc, telemetry.Logger),
			Logger:      telemetry.Logger,
		})
	}

	checkoutHandler := handlers.NewCheckoutHandler(controllerFactory)
	actionHandler := handlers.NewActionHandler(runner, creds)
	receiptHandler := handlers.NewReceiptHandler(receipts)

	r := api.NewRouter(checkoutHandler, actionHandler, receiptHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		telemetry.Logger.Info("Checkout Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
