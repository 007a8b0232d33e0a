// Command mailpreview serves rendered previews of the application's emails.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/emailkit/internal/emails"
	"github.com/dmitrymomot/emailkit/pkg/health"
	"github.com/dmitrymomot/emailkit/pkg/logger"
	"github.com/dmitrymomot/emailkit/pkg/mailer"
	"github.com/dmitrymomot/emailkit/pkg/mailer/preview"
	"github.com/dmitrymomot/emailkit/pkg/mailer/resend"
	"github.com/dmitrymomot/emailkit/pkg/mailer/smtp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	log = log.With(slog.String("service", "mailpreview"))

	registry, err := newRegistry(cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	catalog, err := emails.New(registry)
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, log, catalog)
	if err != nil {
		return err
	}

	return serve(cfg.HTTPAddr, router, log)
}

func newRegistry(cfg *config, log *slog.Logger, reg prometheus.Registerer) (*mailer.Registry, error) {
	opts := []mailer.Option{mailer.WithLogger(log), mailer.WithMetrics(reg)}

	var provider mailer.Provider
	switch cfg.Provider {
	case providerResend:
		provider = resend.New(cfg.Resend)
	case providerSMTP:
		p, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		opts = append(opts, mailer.WithMock(true))
	}

	registry := mailer.NewFromConfig(provider, cfg.Mailer, opts...)
	log.Info("mailer configured",
		slog.String("provider", cfg.Provider),
		slog.Bool("mock", registry.Mock()),
	)
	return registry, nil
}

func newRouter(cfg *config, log *slog.Logger, catalog *emails.Catalog) (http.Handler, error) {
	r := chi.NewRouter()
	if err := preview.Mount(r, cfg.PreviewRoute, catalog.Previews(), preview.WithLogger(log), preview.WithIndex()); err != nil {
		return nil, err
	}
	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"templates": catalog.Check,
	}, health.WithLogger(log)))
	r.Handle("/metrics", promhttp.Handler())
	return r, nil
}
