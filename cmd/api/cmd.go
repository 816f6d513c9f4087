package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lendbridge/intake-backend/internal/client/razorpayx"
	"github.com/lendbridge/intake-backend/internal/config"
	"github.com/lendbridge/intake-backend/internal/handlers"
	"github.com/lendbridge/intake-backend/internal/response"
	"github.com/lendbridge/intake-backend/internal/router"
	"github.com/lendbridge/intake-backend/internal/services"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewJSONHandler)

	live := cfg.Razorpay.Live()

	// upstream client
	fav := razorpayx.NewAdapter(cfg.Razorpay)

	// services
	demo := services.NewDemoGenerator(services.DemoLatency)
	vserv := services.NewValidationService(fav, demo, cfg.Razorpay)
	rserv := services.NewRPDService(fav, cfg.Razorpay)

	// response handler
	rh := response.New(log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = log
	deps.ResponseHandler = rh
	deps.ValidationSvc = vserv
	deps.RPDSvc = rserv
	deps.Demo = !live

	// router
	r := router.NewRouter(deps, cfg.StaticDir)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening",
			"port", cfg.Port,
			"mode", mode(live),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			exitOnError("server start failed", err, log)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	exitOnError("server shutdown failed", srv.Shutdown(ctx), log)
	log.Info("server stopped")
}

func mode(live bool) string {
	if live {
		return "live"
	}
	return "demo"
}
