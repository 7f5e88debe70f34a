package gateway

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/pkg/codes"
)

// Result is the outcome of one settlement attempt.
type Result struct {
	Approved        bool
	OperationNumber string
}

// Gateway settles a payment against the collection channel.
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, method model.PaymentMethod) (Result, error)
}

// SimulatedGateway stands in for the real processor: it approves roughly
// nine out of ten charges. The random source is injected so tests can force
// either outcome.
type SimulatedGateway struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	gen    *codes.Generator
	logger *slog.Logger
}

// NewSimulated creates a SimulatedGateway. A zero seed falls back to the
// clock.
func NewSimulated(seed int64, gen *codes.Generator, logger *slog.Logger) *SimulatedGateway {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SimulatedGateway{
		rnd:    rand.New(rand.NewSource(seed)),
		gen:    gen,
		logger: logger,
	}
}

// Charge simulates the settlement. One draw in ten declines.
func (g *SimulatedGateway) Charge(_ context.Context, amount decimal.Decimal, method model.PaymentMethod) (Result, error) {
	g.mu.Lock()
	approved := g.rnd.Intn(10) != 0
	g.mu.Unlock()

	result := Result{Approved: approved}
	if approved {
		result.OperationNumber = g.gen.OperationNumber()
	}
	g.logger.Info("charge settled",
		slog.String("amount", amount.StringFixed(2)),
		slog.String("method", string(method)),
		slog.Bool("approved", approved),
	)
	return result, nil
}
