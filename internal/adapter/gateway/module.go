package gateway

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/config"
	"github.com/qorikusi/backend/internal/pkg/codes"
)

// Module exposes the payment gateway implementation to the fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config    *config.Config
	Generator *codes.Generator
	Logger    *slog.Logger
}

func newGateway(p gatewayParams) Gateway {
	return NewSimulated(p.Config.CodeSeed, p.Generator, p.Logger)
}
