package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	baseconf "github.com/Sheesh1006/service-backend/core/config"
	coremetrics "github.com/Sheesh1006/service-backend/core/metrics"
	"github.com/Sheesh1006/service-backend/core/notesclient"
	"github.com/Sheesh1006/service-backend/core/transport"
	"github.com/Sheesh1006/service-backend/frontend/internal/metrics"
	"github.com/Sheesh1006/service-backend/frontend/internal/upload"
	"github.com/Sheesh1006/service-backend/frontend/pkg/config"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configFile := baseconf.FindConfigFile("frontend")
	envFile := baseconf.FindEnvironmentFile("frontend")

	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	cfg.Log.ConfigureZerolog()

	log.Info().Msg("Starting notes frontend")
	log.Info().Str("config_file", configFile).Str("env_file", envFile).Msg("Configuration loaded")

	clientOpts := notesclient.Options{
		FragmentBytes:   cfg.Relay.FragmentBytes.Int(),
		MaxMessageBytes: cfg.Relay.MaxMessageBytes.Int(),
	}
	if cfg.Auth.JWTSecretKey != "" {
		clientOpts.Token = coreauth.NewTokenManager(cfg.Auth.JWTSecretKey).TokenSource("frontend")
	}
	relayClient := notesclient.New(transport.NewH2CClient(), cfg.Relay.Endpoint, clientOpts)

	uploads := upload.NewHandler(relayClient, upload.Options{
		Timeout:     cfg.Relay.Timeout,
		MaxBytes:    int64(cfg.Upload.MaxBytes),
		MemoryBytes: int64(cfg.Upload.MemoryBytes),
	})

	server := &http.Server{
		Addr:              cfg.GetListenAddress(),
		Handler:           setupRouter(uploads, cfg.Server.StaticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("address", cfg.GetListenAddress()).
		Str("relay", cfg.Relay.Endpoint).
		Str("max_upload", cfg.Upload.MaxBytes.String()).
		Bool("service_tokens", clientOpts.Token != nil).
		Msg("Starting frontend server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down frontend server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func setupRouter(uploads http.Handler, staticDir string) http.Handler {
	r := mux.NewRouter()
	r.Use(coremetrics.HTTPMetricsMiddleware(metrics.HTTPRequestsTotal, metrics.HTTPRequestDuration))

	r.Handle("/api/process", uploads).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "frontend"}`))
	}).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	if staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir))).Methods("GET")
	}

	return r
}
