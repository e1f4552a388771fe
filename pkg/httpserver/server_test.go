package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/pkg/httpserver"
)

const localAddr = "127.0.0.1:0"

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

// start runs srv in the background and waits for the start hook.
func start(t *testing.T, ctx context.Context, srv *httpserver.Server, started <-chan struct{}, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
	}
}

func startedHook() (chan struct{}, httpserver.Option) {
	ch := make(chan struct{})
	return ch, httpserver.WithStartHook(func(*slog.Logger) { close(ch) })
}

func TestServer_ServesUntilContextCancelled(t *testing.T) {
	t.Parallel()

	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), httpserver.WithShutdownTimeout(100*time.Millisecond), hook)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := start(t, ctx, srv, started, http.HandlerFunc(ok))

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	wait(t, done)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestServer_ManualShutdown(t *testing.T) {
	t.Parallel()

	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), hook)
	done := start(t, context.Background(), srv, started, http.HandlerFunc(ok))

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
	wait(t, done)
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestServer_StartError(t *testing.T) {
	t.Parallel()

	err := httpserver.New(httpserver.WithAddr(":invalid")).Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestServer_AlreadyServing(t *testing.T) {
	t.Parallel()

	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), hook)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv, started, http.NewServeMux())

	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyServing)

	cancel()
	wait(t, done)
}

func TestServer_Hooks(t *testing.T) {
	t.Parallel()

	var stopped atomic.Bool
	started, hook := startedHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		hook,
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv, started, nil)

	assert.False(t, stopped.Load())
	cancel()
	wait(t, done)
	assert.True(t, stopped.Load())
}

func TestServer_WithListener(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", localAddr)
	require.NoError(t, err)

	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithListener(ln), hook)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv, started, nil)

	assert.Equal(t, ln.Addr().String(), srv.Addr())
	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	wait(t, done)
}

func TestServer_OptionsApply(t *testing.T) {
	t.Parallel()

	hs := &http.Server{ReadTimeout: 7 * time.Second}
	gotLogger := make(chan *slog.Logger, 1)
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(localAddr),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(func(l *slog.Logger) { gotLogger <- l }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	l := <-gotLogger

	assert.NotNil(t, l)
	assert.Equal(t, localAddr, hs.Addr)
	assert.Equal(t, 7*time.Second, hs.ReadTimeout, "preset field wins")
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.IdleTimeout)
	assert.NotNil(t, hs.Handler)

	require.NoError(t, srv.Shutdown(context.Background()))
	wait(t, done)
}

func TestServer_LogsLifecycle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	started, hook := startedHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		hook,
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv, started, nil)
	cancel()
	wait(t, done)

	out := buf.String()
	assert.Contains(t, out, "http server started")
	assert.Contains(t, out, "component=httpserver")
	assert.Contains(t, out, "http server stopped")
}

// Not parallel: the signal is delivered to the whole test process.
func TestServer_SignalShutdown(t *testing.T) {
	started, hook := startedHook()
	srv := httpserver.New(httpserver.WithAddr(localAddr), httpserver.WithShutdownTimeout(50*time.Millisecond), hook)
	done := start(t, context.Background(), srv, started, nil)

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
	wait(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	hs := &http.Server{}
	started, hook := startedHook()
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:         localAddr,
		WriteTimeout: 4 * time.Second,
	}, httpserver.WithServer(hs), hook)

	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv, started, nil)
	assert.Equal(t, 4*time.Second, hs.WriteTimeout)
	assert.Zero(t, hs.ReadTimeout)
	cancel()
	wait(t, done)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := httpserver.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"listener", func() { httpserver.WithListener(nil) }},
		{"read", func() { httpserver.WithReadTimeout(0) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"server", func() { httpserver.WithServer(nil) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "expected panic with error")
				assert.ErrorIs(t, err, httpserver.ErrInvalidOption)
			}()
			tt.fn()
		})
	}

	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	probe := func(h http.Handler) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		return rec
	}

	t.Run("liveness", func(t *testing.T) {
		rec := probe(httpserver.HealthCheckHandler(nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		rec := probe(httpserver.HealthCheckHandler(nil, func(context.Context) error { return nil }))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		calls := 0
		rec := probe(httpserver.HealthCheckHandler(log,
			func(context.Context) error { calls++; return errors.New("db down") },
			func(context.Context) error { calls++; return nil },
		))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
		assert.Equal(t, 1, calls)
		assert.Contains(t, buf.String(), "db down")
	})
}
