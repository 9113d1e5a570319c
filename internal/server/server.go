// Package server exposes share link building over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blacktop/socialshare/internal/config"
	"github.com/blacktop/socialshare/internal/logutil"
	"github.com/blacktop/socialshare/internal/share"
	"github.com/blacktop/socialshare/internal/share/redirect"
)

// Server serves share links and redirects.
type Server struct {
	cfg        config.Config
	builder    *share.Builder
	redirector redirect.Redirector
	links      *linkCache
	limiter    *clientLimiter
	metrics    *metrics
	handler    http.Handler
}

// New creates a Server. A nil builder uses the built-in network tables.
func New(cfg config.Config, builder *share.Builder) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if builder == nil {
		builder = share.NewBuilder()
	}

	s := &Server{
		cfg:        cfg,
		builder:    builder,
		redirector: redirect.Redirector{Diagnostic: cfg.Server.Diagnostic},
		links:      newLinkCache(cfg.Cache),
		metrics:    newMetrics(),
	}
	if cfg.Server.RateLimit > 0 {
		s.limiter = newClientLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.handler,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logutil.Info("listening", "addr", s.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logutil.Infof("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// resolve builds the link for the request's network and query, consulting
// the cache first.
func (s *Server) resolve(r *http.Request, rawNetwork string) (string, error) {
	network := share.ParseNetwork(rawNetwork)
	key := string(network) + "?" + r.URL.RawQuery

	if link, ok := s.links.get(key); ok {
		s.metrics.cacheHits.Inc()
		return link, nil
	}

	label := string(network)
	if !s.builder.Supports(network) {
		label = unsupportedLabel
	}

	params, err := share.ParseQuery(r.URL.RawQuery)
	if err != nil {
		err = share.BuildError{Network: network, Err: err}
		s.metrics.recordError(label, err)
		return "", err
	}

	link, err := s.builder.Build(network, params)
	if err != nil {
		s.metrics.recordError(label, err)
		logutil.Debug("build failed", "network", network, "error", err, "request_id", RequestID(r.Context()))
		return "", err
	}

	s.metrics.linksBuilt.WithLabelValues(label).Inc()
	s.links.set(key, link)
	return link, nil
}
