package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// Run starts the fx application and blocks until the context is cancelled
// or the application shuts itself down.
func Run(ctx context.Context, fxApp *fx.App) {
	if err := fxApp.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start application: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-fxApp.Done():
	}

	if err := fxApp.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop application: %v\n", err)
		os.Exit(1)
	}
}
