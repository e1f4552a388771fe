package httpserver

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Option configures a Server. Invalid arguments panic at construction time.
type Option func(*settings)

type settings struct {
	addr            string
	listener        net.Listener
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []Hook
	stopHooks       []Hook
}

// Hook runs around the server life cycle with the server's logger.
type Hook func(*slog.Logger)

func invalid(option, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidOption, option, reason)
}

func positive(option string, d time.Duration) {
	if d <= 0 {
		panic(invalid(option, "duration must be positive"))
	}
}

// WithAddr sets the TCP address to listen on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic(invalid("WithAddr", "empty address"))
	}
	return func(s *settings) { s.addr = addr }
}

// WithListener serves on an existing listener instead of opening one.
func WithListener(ln net.Listener) Option {
	if ln == nil {
		panic(invalid("WithListener", "nil listener"))
	}
	return func(s *settings) { s.listener = ln }
}

func WithReadTimeout(d time.Duration) Option {
	positive("WithReadTimeout", d)
	return func(s *settings) { s.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	positive("WithWriteTimeout", d)
	return func(s *settings) { s.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	positive("WithIdleTimeout", d)
	return func(s *settings) { s.idleTimeout = d }
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	positive("WithShutdownTimeout", d)
	return func(s *settings) { s.shutdownTimeout = d }
}

// WithServer reuses srv. Fields already set on srv win over options.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic(invalid("WithServer", "nil server"))
	}
	return func(s *settings) { s.server = srv }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithStartHook registers h to run once the listener is open.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic(invalid("WithStartHook", "nil hook"))
	}
	return func(s *settings) { s.startHooks = append(s.startHooks, h) }
}

// WithStopHook registers h to run after graceful shutdown.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic(invalid("WithStopHook", "nil hook"))
	}
	return func(s *settings) { s.stopHooks = append(s.stopHooks, h) }
}
