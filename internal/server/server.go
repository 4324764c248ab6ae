package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/DropsMiner_Go/internal/docs"
	"github.com/osse101/DropsMiner_Go/internal/handler"
	"github.com/osse101/DropsMiner_Go/internal/logger"
	"github.com/osse101/DropsMiner_Go/internal/metrics"
	"github.com/osse101/DropsMiner_Go/internal/snapshot"
)

// ErrServerStopped is returned by Start once the server has been stopped
var ErrServerStopped = errors.New("server already stopped")

// Options configures the web server
type Options struct {
	// Port to listen on, all interfaces. 0 picks a free port.
	Port               int
	WebDir             string
	RateLimitPerMinute int
	TrustedProxies     []string
}

// Server exposes the miner's status over HTTP
type Server struct {
	httpServer *http.Server
	port       int

	mu       sync.Mutex
	listener net.Listener
	started  bool
	stopped  bool
	done     chan struct{}
}

// NewServer creates a new Server instance
func NewServer(opts Options, src snapshot.Source, checker handler.HealthChecker) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	if opts.RateLimitPerMinute > 0 {
		r.Use(RateLimitMiddleware(NewRateLimiter(opts.RateLimitPerMinute), opts.TrustedProxies))
	}
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.MethodNotAllowed(handler.HandleMethodNotAllowed())

	// Dashboard
	r.Get(RouteIndex, handler.HandleIndex(opts.WebDir))
	r.Get(RouteIcon, handler.HandleIcon(opts.WebDir))
	r.Handle(RouteStatic, handler.HandleStatic(PrefixStatic, opts.WebDir))

	// Snapshot API
	r.Get(RouteStatus, handler.HandleStatus(src))
	r.Get(RouteInventory, handler.HandleInventory(src))

	// Health check routes
	r.Get(RouteHealthz, handler.HandleHealthz())
	r.Get(RouteReadyz, handler.HandleReadyz(checker))
	r.Get(RouteVersion, handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle(RouteMetrics, promhttp.Handler())

	// Swagger documentation
	r.Get(RouteSwagger, httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		port: opts.Port,
		done: make(chan struct{}),
	}
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start binds the listening socket and serves in the background.
// A bind failure is returned to the caller and nothing is left running.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrServerStopped
	}
	if s.started {
		return nil
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	s.started = true

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgServeFailed, "error", err)
		}
	}()

	port := s.port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	slog.Info(fmt.Sprintf(LogMsgServerStarted, port))
	return nil
}

// Addr returns the bound address, or "" before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx expires. Calling it more than once, or before Start, is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	if !started {
		return nil
	}

	err := s.httpServer.Shutdown(ctx)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	slog.Info(LogMsgServerStopped)
	return err
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasAnyPrefix(r.URL.Path, QuietPaths) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		level := slog.LevelInfo
		if hasAnyPrefix(r.URL.Path, PollPaths) {
			level = slog.LevelDebug
		}

		log.Log(ctx, level, LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Log(ctx, level, LogMsgRequestComplete,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
