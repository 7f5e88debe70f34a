package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/config"
	"github.com/qorikusi/backend/internal/worker"
)

// Module wires the HTTP server and lifecycle hooks shared by every service
// binary. The cart service additionally provides a *worker.CartCleaner; the
// lifecycle picks it up when present.
var Module = fx.Options(
	fx.Provide(newHTTPServer),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
	Worker     *worker.CartCleaner `optional:"true"`
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting service", slog.String("addr", p.Server.Addr))
			if p.Worker != nil {
				// The start hook context is cancelled as soon as startup
				// finishes, so the sweep loop gets a detached one. Stop
				// still shuts it down on the stop hook.
				p.Worker.Start(context.WithoutCancel(ctx))
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p.Worker != nil {
				p.Worker.Stop()
			}

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("service stopped")
			return nil
		},
	})
}
