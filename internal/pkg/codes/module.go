package codes

import (
	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/config"
)

// Module provides the code generator via fx.
var Module = fx.Provide(newGenerator)

func newGenerator(cfg *config.Config) *Generator {
	return NewGenerator(cfg.CodeSeed)
}
