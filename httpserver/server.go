package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/andyle182810/apicheck/middleware"
	"github.com/labstack/echo/v5"
	echomiddleware "github.com/labstack/echo/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	kilobyte         = 1 << 10
	megabyte         = 1 << 20
	defaultBodyLimit = 1 * megabyte

	defaultGracePeriod = 5 * time.Second
)

var ErrNotRunning = errors.New("httpserver: server is not running")

type Config struct {
	Host         string
	Port         int
	BodyLimit    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	GracePeriod  time.Duration
}

type Server struct {
	address      string
	gracePeriod  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	logger       zerolog.Logger
	Echo         *echo.Echo
	Root         *echo.Group

	mu         sync.Mutex
	listener   net.Listener
	httpServer *http.Server
}

func New(cfg *Config, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Pre(middleware.RequestID())
	e.Pre(middleware.RequestLogger(logger))
	e.Pre(echomiddleware.BodyLimit(parseBodyLimit(cfg.BodyLimit)))

	gracePeriod := cfg.GracePeriod
	if gracePeriod <= 0 {
		gracePeriod = defaultGracePeriod
	}

	return &Server{ //nolint:exhaustruct
		address:      net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		gracePeriod:  gracePeriod,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		logger:       logger,
		Echo:         e,
		Root:         e.Group(""),
	}
}

func parseBodyLimit(limit string) int64 {
	if limit == "" {
		return defaultBodyLimit
	}

	multiplier := int64(1)

	switch limit[len(limit)-1:] {
	case "K", "k":
		multiplier = kilobyte
		limit = limit[:len(limit)-1]
	case "M", "m":
		multiplier = megabyte
		limit = limit[:len(limit)-1]
	}

	size, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || size <= 0 {
		return defaultBodyLimit
	}

	return size * multiplier
}

// Start binds the listener synchronously, so a port conflict is reported to
// the caller, then serves in the background.
func (s *Server) Start(_ context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("httpserver: listen on %s: %w", s.address, err)
	}

	httpServer := &http.Server{ //nolint:exhaustruct
		Handler:      s.Echo,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	s.mu.Lock()
	s.listener = listener
	s.httpServer = httpServer
	s.mu.Unlock()

	s.logger.Info().
		Str("address", listener.Addr().String()).
		Msg("The HTTP server is being started")

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	httpServer := s.httpServer
	s.httpServer = nil
	s.listener = nil
	s.mu.Unlock()

	if httpServer == nil {
		return ErrNotRunning
	}

	s.logger.Info().Msg("The graceful shutdown of HTTP server is being initiated")

	ctx, cancel := context.WithTimeout(context.Background(), s.gracePeriod)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("httpserver: shutdown: %w", err)
	}

	s.logger.Info().Msg("The HTTP server shutdown has been completed successfully")

	return nil
}

func (s *Server) Name() string {
	return "http"
}

// Addr reports the bound address once started, the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.address
}

// URL is the http:// base of the running server.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}
