package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"modelget/internal/httpapi"
	"modelget/internal/installer"
	"modelget/internal/manifest"
)

// runInstall executes a full run: manifest, optional status API server,
// transfers, summary. The returned error makes Main exit non-zero.
func runInstall(ctx context.Context, cfg *Config) error {
	logger := newLogger(cfg)

	man, err := manifest.Resolve(cfg.ManifestPath)
	if err != nil {
		return err
	}

	ins, err := installer.New(man, installer.Config{
		ModelsDir:     cfg.ModelsDir,
		Concurrency:   cfg.Concurrency,
		Retries:       cfg.Retries,
		HeaderTimeout: cfg.HeaderTimeout,
		Token:         hfToken(),
		UserAgent:     userAgent(),
		Logger:        logger,
		Events:        installer.NewMetricsPublisher(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := startStatusServer(cfg, ins, logger)

	_, runErr := ins.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("status API shutdown")
		}
	}
	return runErr
}

// startStatusServer starts the optional status API server. Returns nil
// when --status-addr is unset.
func startStatusServer(cfg *Config, ins *installer.Installer, logger zerolog.Logger) *http.Server {
	if cfg.StatusAddr == "" {
		return nil
	}
	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(cfg.CORSEnabled, splitCSV(cfg.CORSOrigins), nil, nil)
	srv := &http.Server{Addr: cfg.StatusAddr, Handler: httpapi.NewMux(ins)}
	go func() {
		logger.Info().Str("addr", cfg.StatusAddr).Msg("status API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("status API server")
		}
	}()
	return srv
}
