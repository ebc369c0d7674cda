package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/zwr/internal/config"
	"github.com/bnema/zwr/internal/frontdoor"
	"github.com/bnema/zwr/internal/metrics"
	"github.com/bnema/zwr/internal/middleware"
)

type Server struct {
	config   *config.Config
	logger   zerolog.Logger
	handler  http.Handler
	registry *prometheus.Registry
}

// New builds the front door for cfg. Metrics are collected on a private
// registry and only exposed when metrics are enabled.
func New(cfg *config.Config, logger, accessLogger zerolog.Logger) *Server {
	registry := prometheus.NewRegistry()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(registry)
	}

	door := frontdoor.NewHandler(frontdoor.Options{
		Static:  frontdoor.NewStaticHandler(cfg.UI.Dir),
		Shell:   frontdoor.NewShellHandler(cfg.ShellPath()),
		Logger:  logger.With().Str("component", "frontdoor").Logger(),
		Metrics: m,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.PanicRecovery(logger),
		middleware.RequestLogger(accessLogger),
	)(door)

	return &Server{
		config:   cfg,
		logger:   logger,
		handler:  handler,
		registry: registry,
	}
}

// Handler returns the full middleware-wrapped front door.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled or a listener fails, then shuts every
// listener down within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddr(), err)
	}

	var metricsListener net.Listener
	if s.config.Metrics.Enabled {
		metricsListener, err = net.Listen("tcp", s.config.MetricsAddr())
		if err != nil {
			listener.Close()
			return fmt.Errorf("failed to listen on %s: %w", s.config.MetricsAddr(), err)
		}
	}

	return s.serve(ctx, listener, metricsListener)
}

func (s *Server) serve(ctx context.Context, listener, metricsListener net.Listener) error {
	servers := []*http.Server{{
		Handler:           s.handler,
		ReadHeaderTimeout: s.config.Server.ReadHeaderTimeout,
	}}
	listeners := []net.Listener{listener}

	if metricsListener != nil {
		mux := http.NewServeMux()
		mux.Handle(s.config.Metrics.Path, metrics.Handler(s.registry))
		servers = append(servers, &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: s.config.Server.ReadHeaderTimeout,
		})
		listeners = append(listeners, metricsListener)
		s.logger.Info().Str("address", metricsListener.Addr().String()).Str("path", s.config.Metrics.Path).Msg("Metrics server starting")
	}

	s.logger.Info().
		Str("address", listener.Addr().String()).
		Str("ui_dir", s.config.UI.Dir).
		Msg("Front door starting")

	g, gctx := errgroup.WithContext(ctx)
	for i := range servers {
		srv, ln := servers[i], listeners[i]
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("Front door shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
