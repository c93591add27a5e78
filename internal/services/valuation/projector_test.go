package valuation

import (
	"math"
	"testing"
)

func TestProjectShape(t *testing.T) {
	points := NewProjector().Project(100, 5, 0.019, 10)
	if len(points) != 11 {
		t.Fatalf("len = %d, want 11", len(points))
	}
	p0 := points[0]
	if p0.Year != 0 || p0.Dividend != 0 {
		t.Fatalf("unexpected year 0 point: %+v", p0)
	}
	if p0.Investment != -100 || p0.TotalCashFlow != -100 || p0.CumulativeCashFlow != -100 {
		t.Fatalf("year 0 must carry the negative investment: %+v", p0)
	}
	for _, pt := range points[1:] {
		if pt.Investment != 0 {
			t.Fatalf("year %d has non-zero investment", pt.Year)
		}
		if pt.TotalCashFlow != pt.Dividend+pt.Investment {
			t.Fatalf("year %d total != dividend + investment", pt.Year)
		}
	}
}

func TestProjectDividendGrowth(t *testing.T) {
	g := 0.05
	d0 := 2.5
	points := NewProjector().Project(50, d0, g, 10)
	for t_, pt := range points {
		if t_ == 0 {
			continue
		}
		want := d0 * math.Pow(1+g, float64(t_))
		if !almostEqual(pt.Dividend, want, 1e-9) {
			t.Fatalf("dividend[%d] = %v, want %v", t_, pt.Dividend, want)
		}
	}
}

func TestProjectCumulative(t *testing.T) {
	points := NewProjector().Project(54.56, 3.60, 0.0074, 10)
	sum := 0.0
	for _, pt := range points[1:] {
		sum += pt.Dividend
	}
	last := points[len(points)-1]
	want := -54.56 + sum
	if !almostEqual(last.CumulativeCashFlow, want, 1e-9) {
		t.Fatalf("cumulative = %v, want %v", last.CumulativeCashFlow, want)
	}
}

func TestProjectDefaultHorizon(t *testing.T) {
	points := NewProjector().Project(100, 5, 0.02, 0)
	if len(points) != DefaultHorizonYears+1 {
		t.Fatalf("len = %d, want %d", len(points), DefaultHorizonYears+1)
	}
}

func TestProjectNoEarlyTermination(t *testing.T) {
	// cumulative stays negative for the whole horizon; schedule is still full
	points := NewProjector().Project(1000, 1, 0.01, 10)
	if len(points) != 11 {
		t.Fatalf("len = %d, want 11", len(points))
	}
	if points[10].CumulativeCashFlow >= 0 {
		t.Fatalf("expected negative terminal cumulative, got %v", points[10].CumulativeCashFlow)
	}
}

func TestBreakEvenYear(t *testing.T) {
	// small investment, large dividends: recovered in year 2
	points := NewProjector().Project(10, 6, 0, 10)
	if got := BreakEvenYear(points); got != 2 {
		t.Fatalf("break even = %d, want 2", got)
	}
	// never recovered within the horizon
	points = NewProjector().Project(1000, 1, 0.01, 10)
	if got := BreakEvenYear(points); got != -1 {
		t.Fatalf("break even = %d, want -1", got)
	}
}
