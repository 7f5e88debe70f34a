package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qorikusi/backend/internal/config"
	testhelpers "github.com/qorikusi/backend/internal/test"
	"github.com/qorikusi/backend/internal/worker"
)

func newTestCartCleaner() *worker.CartCleaner {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	purger := testhelpers.CartFacadeStub{}
	return worker.NewCartCleaner(purger, 10*time.Millisecond, time.Hour, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     newTestCartCleaner(),
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleWorkerOutlivesStartContext(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	swept := make(chan struct{}, 8)
	purger := testhelpers.CartFacadeStub{
		PurgeAbandonedFn: func(context.Context, time.Duration) (int64, error) {
			swept <- struct{}{}
			return 0, nil
		},
	}
	cleaner := worker.NewCartCleaner(purger, 10*time.Millisecond, time.Hour, logger)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     logger,
		Server:     server,
		Worker:     cleaner,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	hook := recorder.Hooks[0]
	startCtx, cancelStart := context.WithCancel(context.Background())
	if err := hook.OnStart(startCtx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	// The framework cancels the start context once startup returns. The
	// cleanup loop must keep ticking past that point.
	cancelStart()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("expected a sweep after the start context was cancelled")
	}

	_ = hook.OnStop(context.Background())
}

func TestRegisterLifecycleWithoutWorker(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     logger,
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("on stop failed: %v", err)
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}
