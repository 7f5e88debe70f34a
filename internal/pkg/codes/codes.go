package codes

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const orderCodePrefix = "QRK"

// Generator produces human-facing codes: order codes, payment operation
// numbers and receipt series/numbers. The random source is injected so tests
// can seed it; access is serialized because rand.Rand is not goroutine safe.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a Generator. A zero seed falls back to the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// OrderCode builds the order code from the order timestamp plus a 4-digit
// suffix: QRK-yyyyMMdd-HHmmss-NNNN. Generated once at creation and persisted.
func (g *Generator) OrderCode(orderedAt time.Time) string {
	g.mu.Lock()
	suffix := g.rnd.Intn(9000) + 1000
	g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%d", orderCodePrefix, orderedAt.Format("20060102-150405"), suffix)
}

// OperationNumber returns the settlement reference stored on a payment.
func (g *Generator) OperationNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%08d", g.rnd.Intn(100000000))
}

// ReceiptSeries returns a voucher series code, e.g. F042.
func (g *Generator) ReceiptSeries() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("F%03d", g.rnd.Intn(1000))
}

// ReceiptNumber returns an 8-digit voucher number. This is a random draw,
// not a guaranteed-unique counter; collisions are possible.
func (g *Generator) ReceiptNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%08d", g.rnd.Intn(100000000))
}
