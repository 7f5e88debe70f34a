package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/app"
	"github.com/qorikusi/backend/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fxApp := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.CartModule(),
	)

	app.Run(ctx, fxApp)
}
