package valuation

import "testing"

func TestTheoreticalPrice(t *testing.T) {
	// P0 = 2.5 / (0.10 - 0.05) = 50
	p, err := TheoreticalPrice(2.5, 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(p, 50, 1e-12) {
		t.Fatalf("price = %v, want 50", p)
	}
}

func TestTheoreticalPriceUndefined(t *testing.T) {
	if _, err := TheoreticalPrice(2.5, 5, 5); err == nil {
		t.Fatalf("expected error when growth equals required return")
	}
	if _, err := TheoreticalPrice(2.5, 5, 6); err == nil {
		t.Fatalf("expected error when growth exceeds required return")
	}
}
