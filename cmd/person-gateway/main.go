package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nais/person-gateway/internal/api"
	"github.com/nais/person-gateway/internal/config"
	"github.com/nais/person-gateway/internal/database"
	"github.com/nais/person-gateway/internal/logger"
	"github.com/nais/person-gateway/internal/person"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.New()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		logrus.WithError(err).Fatal("setting up logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("person-gateway stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	exporter, err := prometheus.New()
	if err != nil {
		return err
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	meter := provider.Meter("github.com/nais/person-gateway")

	driver, err := database.NewDriver(ctx, cfg.Neo4j, cfg.VerifyConnectivity, log.WithField("component", "neo4j"))
	if err != nil {
		return err
	}

	repo := database.New(
		database.DriverSessions(driver),
		log.WithField("component", "store"),
		database.WithAtomicCreate(cfg.AtomicCreate),
		database.WithCloser(driver.Close),
	)
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			log.WithError(err).Error("closing neo4j driver")
		}
	}()

	if err := repo.Metrics(meter); err != nil {
		return err
	}

	metrics, err := api.NewMetrics(meter)
	if err != nil {
		return err
	}

	handler := api.New(repo, person.NewGenerator(nil), log.WithField("component", "api"), api.WithMetrics(metrics))

	corsMW := cors.New(
		cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			Debug:          cfg.Debug,
		})

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", corsMW.Handler(handler.Routes()))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutting down http server")
		}
	}()

	if cfg.AtomicCreate {
		log.Info("person ids are allocated and written in a single statement")
	} else {
		log.Warn("person ids are allocated in a separate statement; concurrent creates may share an id")
	}

	log.Infof("listening on http://%s/", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
