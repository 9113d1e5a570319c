package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"
	"golang.org/x/time/rate"

	"github.com/blacktop/socialshare/internal/logutil"
)

// HeaderRequestID carries the request identifier.
const HeaderRequestID = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns the request identifier stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID reuses an incoming X-Request-Id or assigns a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		logutil.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", RequestID(r.Context()),
		)
	})
}

const (
	maxTrackedClients = 10_000
	clientIdleTTL     = 10 * time.Minute
)

// clientLimiter applies a token bucket per client address. Idle buckets
// expire from the cache.
type clientLimiter struct {
	mu       sync.Mutex
	limiters *otter.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	return &clientLimiter{
		limiters: otter.Must(&otter.Options[string, *rate.Limiter]{
			MaximumSize:      maxTrackedClients,
			ExpiryCalculator: otter.ExpiryAccessing[string, *rate.Limiter](clientIdleTTL),
		}),
		limit: rate.Limit(perSecond),
		burst: burst,
	}
}

func (c *clientLimiter) get(client string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.limiters.GetIfPresent(client); ok {
		return l
	}
	l := rate.NewLimiter(c.limit, c.burst)
	c.limiters.Set(client, l)
	return l
}

func (c *clientLimiter) middleware(m *metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !c.get(clientAddr(r)).Allow() {
				m.rateLimited.Inc()
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
