// Package web serves the read-only HTTP API: game status, finished
// galleries and join QR codes.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/julienschmidt/httprouter"
)

const (
	logDate string        = `2006-01-02T15:04:05.000-07:00`
	timeout time.Duration = 10 * time.Second

	// DefaultJoinFormat renders the chat command encoded in join QR codes
	DefaultJoinFormat = "/sketch join code:%s"
)

// Config holds the configuration for the web server
type Config struct {
	Bind    string
	Port    int
	Verbose bool

	// JoinFormat is a format string taking the game code
	JoinFormat string

	GameService game.Service
}

// Server exposes game state over HTTP
type Server struct {
	cfg         *Config
	gameService game.Service
	router      *httprouter.Router
}

// New creates a new web server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", cfg.Port)
	}

	if cfg.JoinFormat == "" {
		cfg.JoinFormat = DefaultJoinFormat
	}

	s := &Server{
		cfg:         cfg,
		gameService: cfg.GameService,
	}
	s.router = s.routes()

	return s, nil
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *httprouter.Router {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		log.Printf("Panic serving %s: %v", r.URL.Path, i)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	mux.GET("/healthz", s.serveHealthCheck())
	mux.GET("/games/:code", s.serveStatus())
	mux.GET("/games/:code/qr", s.serveQR())
	mux.GET("/gallery/:code", s.serveGallery())

	return mux
}

// Serve listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.cfg.Bind, strconv.Itoa(s.cfg.Port)),
		Handler:           s.router,
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Web API listening on http://%s/", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logf(format string, args ...any) {
	if !s.cfg.Verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}
