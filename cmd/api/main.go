package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"productimage/internal/http/handlers"
	httpapi "productimage/internal/http/httpapi"
	"productimage/internal/imagegen"
	"productimage/internal/infra"
	"productimage/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// .env files are optional
	_ = godotenv.Load(".env", ".env.local")

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.Provider.EndpointBase == "" || cfg.Provider.APIKey == "" {
		logger.Warn().Msg("AZURE_OPENAI_DALLE_ENDPOINT or OPENAI_API_KEY is not set; generation requests will fail")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewGeneration(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	gen := imagegen.NewAzureDalleClient(imagegen.AzureOptions{
		Config:  cfg.Provider,
		Timeout: cfg.ProviderTimeout,
	})
	app := handlers.NewApp(gen, recorder, reg)
	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Msgf("API listening on %s", server.Addr())
		return server.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
