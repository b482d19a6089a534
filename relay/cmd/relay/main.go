package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	coreauth "github.com/Sheesh1006/service-backend/core/auth"
	baseconf "github.com/Sheesh1006/service-backend/core/config"
	coremetrics "github.com/Sheesh1006/service-backend/core/metrics"
	"github.com/Sheesh1006/service-backend/core/transport"
	"github.com/Sheesh1006/service-backend/gen/notes/v1/notesv1connect"
	"github.com/Sheesh1006/service-backend/relay/internal/metrics"
	"github.com/Sheesh1006/service-backend/relay/internal/relay"
	"github.com/Sheesh1006/service-backend/relay/internal/upstream"
	"github.com/Sheesh1006/service-backend/relay/pkg/config"
	"github.com/Sheesh1006/service-backend/relay/pkg/render"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	configFile := baseconf.FindConfigFile("relay")
	envFile := baseconf.FindEnvironmentFile("relay")

	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	cfg.Log.ConfigureZerolog()

	log.Info().Msg("Starting notes relay")
	log.Info().Str("config_file", configFile).Str("env_file", envFile).Msg("Configuration loaded")

	renderer, err := render.NewRenderer(cfg.Render.FontPath, log.Logger, render.WithObserver(metrics.RenderObserver{}))
	if err != nil {
		log.Fatal().Err(err).Str("font_path", cfg.Render.FontPath).Msg("Failed to load font")
	}

	maxMessage := cfg.Streaming.MaxMessageBytes.Int()

	// One generator client for the life of the process.
	generator := upstream.NewClient(transport.NewH2CClient(), cfg.Upstream.Endpoint, upstream.Options{
		Timeout:         cfg.Upstream.Timeout,
		ChunkBytes:      cfg.Streaming.UpstreamChunkBytes.Int(),
		MaxMessageBytes: maxMessage,
	})

	notesHandler := relay.NewNotesHandler(generator, renderer, relay.Options{
		OutputChunkBytes: cfg.Streaming.OutputChunkBytes.Int(),
		MaxVideoBytes:    int64(cfg.Streaming.MaxVideoBytes),
	})

	handlerOpts := []connect.HandlerOption{
		connect.WithReadMaxBytes(maxMessage),
		connect.WithSendMaxBytes(maxMessage),
	}
	if cfg.Auth.JWTSecretKey != "" {
		tokens := coreauth.NewTokenManager(cfg.Auth.JWTSecretKey)
		handlerOpts = append(handlerOpts, connect.WithInterceptors(relay.NewTokenValidationInterceptor(tokens)))
		log.Info().Msg("Service token validation enabled")
	} else {
		log.Warn().Msg("JWT_SECRET_KEY not set, accepting unauthenticated calls")
	}

	path, handler := notesv1connect.NewBackendServiceHandler(notesHandler, handlerOpts...)
	router := setupRouter(path, handler, cfg.Metrics.Enabled)

	server := transport.NewServer(cfg.GetListenAddress(), router)

	log.Info().
		Str("address", cfg.GetListenAddress()).
		Str("upstream", cfg.Upstream.Endpoint).
		Dur("upstream_timeout", cfg.Upstream.Timeout).
		Str("upstream_chunk", cfg.Streaming.UpstreamChunkBytes.String()).
		Str("output_chunk", cfg.Streaming.OutputChunkBytes.String()).
		Str("rpc_path", path).
		Msg("Starting relay server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down relay server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func setupRouter(path string, handler http.Handler, metricsEnabled bool) http.Handler {
	r := mux.NewRouter()

	r.PathPrefix(path).Handler(handler)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "relay"}`))
	}).Methods("GET")

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
		r.Use(coremetrics.HTTPMetricsMiddleware(metrics.HTTPRequestsTotal, metrics.HTTPRequestDuration))
	}

	return r
}
