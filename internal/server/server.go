// Package server exposes the dashboard over HTTP: the built single-page app,
// a JSON API, a WebSocket push channel and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"GoldSentinel/internal/dashboard"
	"GoldSentinel/internal/logger"
	"GoldSentinel/internal/metrics"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/snapshot"
)

const shutdownTimeout = 10 * time.Second

// Config holds the server settings.
type Config struct {
	Port        int
	StaticDir   string
	Gzip        bool
	DefaultUnit model.CurrencyUnit
	Options     dashboard.Options
	History     PredictionHistory // nil disables /api/v1/predictions
}

// PredictionHistory reads recorded forecasts.
type PredictionHistory interface {
	RecentPredictions(ctx context.Context, limit int) ([]recorder.PredictionEvent, error)
}

// Server serves the dashboard.
type Server struct {
	cfg      Config
	store    *snapshot.Store
	engine   *gin.Engine
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// New builds the router. cfg.DefaultUnit must be valid.
func New(cfg Config, store *snapshot.Store) *Server {
	cfg.DefaultUnit.MustValid()
	s := &Server{
		cfg:   cfg,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: logger.Get().With("component", "server"),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	if cfg.Gzip {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/ws", "/metrics"})))
	}

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/ws", s.serveWS)

	api := r.Group("/api/v1")
	api.GET("/dashboard", s.dashboard)
	api.GET("/convert", s.convert)
	api.GET("/export/:format", s.export)
	api.GET("/predictions", s.predictions)

	// SPA fallback for client-side routing
	r.NoRoute(s.spa)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Infof("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

// requestLogger tags the request with an id, keeping one supplied by the
// client, and logs it once the handler returns.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Next()
		s.log.Debugf("[%s] %s %s %d %v", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// unit parses the unit query parameter, answering 400 when it is unknown.
func (s *Server) unit(c *gin.Context) (model.CurrencyUnit, bool) {
	u, err := model.ParseCurrencyUnit(c.Query("unit"), s.cfg.DefaultUnit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return u, true
}

func (s *Server) health(c *gin.Context) {
	snap := s.store.Snapshot()
	feeds := make(gin.H, len(snapshot.Feeds))
	healthy := true
	for _, f := range snapshot.Feeds {
		entry := gin.H{}
		if at, ok := snap.UpdatedAt[f]; ok {
			entry["updated_at"] = at
		}
		if err := snap.Err(f); err != nil {
			entry["error"] = err.Error()
			healthy = false
		}
		feeds[string(f)] = entry
	}
	status := "ok"
	if !healthy {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "feeds": feeds})
}

func (s *Server) spa(c *gin.Context) {
	p := c.Request.URL.Path
	// Preserve API and WS 404s
	if strings.HasPrefix(p, "/api/") || p == "/ws" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}

	name := filepath.Join(s.cfg.StaticDir, filepath.FromSlash(path.Clean("/"+p)))
	if serveFile(c, name) {
		return
	}
	if !serveFile(c, filepath.Join(s.cfg.StaticDir, "index.html")) {
		c.Status(http.StatusNotFound)
	}
}

// serveFile writes the regular file at name and reports whether it did.
// name must already be cleaned; the raw request path may still hold "..".
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, fi.Name(), fi.ModTime(), f)
	return true
}
