package codes

import (
	"regexp"
	"testing"
	"time"
)

var orderCodePattern = regexp.MustCompile(`^QRK-\d{8}-\d{6}-\d{4}$`)

func TestOrderCodeFormat(t *testing.T) {
	gen := NewGenerator(1)
	orderedAt := time.Date(2024, 3, 15, 18, 4, 9, 0, time.UTC)

	code := gen.OrderCode(orderedAt)
	if !orderCodePattern.MatchString(code) {
		t.Fatalf("unexpected code format %q", code)
	}
	if want := "QRK-20240315-180409-"; code[:len(want)] != want {
		t.Fatalf("unexpected timestamp in %q", code)
	}
}

func TestGeneratorIsDeterministicWithSeed(t *testing.T) {
	orderedAt := time.Now()
	first := NewGenerator(42)
	second := NewGenerator(42)

	if a, b := first.OrderCode(orderedAt), second.OrderCode(orderedAt); a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
	if a, b := first.OperationNumber(), second.OperationNumber(); a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestOperationNumberIsEightDigits(t *testing.T) {
	gen := NewGenerator(7)
	pattern := regexp.MustCompile(`^\d{8}$`)
	for i := 0; i < 10; i++ {
		if n := gen.OperationNumber(); !pattern.MatchString(n) {
			t.Fatalf("unexpected operation number %q", n)
		}
	}
}

func TestReceiptSeriesAndNumber(t *testing.T) {
	gen := NewGenerator(7)
	seriesPattern := regexp.MustCompile(`^F\d{3}$`)
	numberPattern := regexp.MustCompile(`^\d{8}$`)
	for i := 0; i < 10; i++ {
		if s := gen.ReceiptSeries(); !seriesPattern.MatchString(s) {
			t.Fatalf("unexpected series %q", s)
		}
		if n := gen.ReceiptNumber(); !numberPattern.MatchString(n) {
			t.Fatalf("unexpected number %q", n)
		}
	}
}
