package renderer

import (
	"strings"
	"testing"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/internal/services/valuation"
)

func metricsFixture(t *testing.T) *models.GrowthMetrics {
	t.Helper()
	in := models.ModelInputs{
		MarketPrice: 100, CurrentDividend: 5, RequiredReturn: 7,
		InitialInvestment: 100, HorizonYears: 10,
	}
	res, err := valuation.NewClosedFormSolver().Solve(in)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	return &models.GrowthMetrics{
		Variant:   models.VariantClosedForm,
		Inputs:    in,
		Result:    res,
		CashFlows: valuation.NewProjector().Project(in.InitialInvestment, in.CurrentDividend, res.ImpliedGrowthDecimal, in.HorizonYears),
	}
}

func TestRenderTable(t *testing.T) {
	table := RenderTable(metricsFixture(t))
	if len(table.Rows) != 11 {
		t.Fatalf("rows = %d, want 11", len(table.Rows))
	}
	if len(table.Headers) != 5 {
		t.Fatalf("headers = %d, want 5", len(table.Headers))
	}
	if table.Rows[0].InvestmentLabel != "-$100.00" {
		t.Fatalf("investment label = %q", table.Rows[0].InvestmentLabel)
	}
	if table.Rows[0].Dividend != 0 {
		t.Fatalf("year 0 dividend = %v", table.Rows[0].Dividend)
	}
	if !strings.Contains(table.Caption, "1.90%") {
		t.Fatalf("caption = %q", table.Caption)
	}
}

func TestRenderSummary(t *testing.T) {
	s := RenderSummary(metricsFixture(t))
	if s.ImpliedGrowthLabel != "1.90%" {
		t.Fatalf("growth label = %q", s.ImpliedGrowthLabel)
	}
	if !s.IsValid {
		t.Fatalf("expected valid summary")
	}
	if s.HorizonYears != 10 {
		t.Fatalf("horizon = %d", s.HorizonYears)
	}
	// $5 growing slowly never repays $100 in 10 years
	if s.BreakEvenYear != -1 {
		t.Fatalf("break even = %d, want -1", s.BreakEvenYear)
	}
	if s.D1Consistent != nil {
		t.Fatalf("closed form summary must not carry d1 consistency")
	}
}

func TestRenderEquationClosedForm(t *testing.T) {
	eq := RenderEquation(metricsFixture(t))
	if eq.Formula != "g = (r * P0 - D0) / (P0 + D0)" {
		t.Fatalf("formula = %q", eq.Formula)
	}
	if !strings.Contains(eq.Substituted, "$100.00") || !strings.Contains(eq.Substituted, "$5.00") {
		t.Fatalf("substituted = %q", eq.Substituted)
	}
	if eq.Result != "g = 1.90%" {
		t.Fatalf("result = %q", eq.Result)
	}
}

func TestRenderEquationDirect(t *testing.T) {
	in := models.ModelInputs{
		MarketPrice: 50, CurrentDividend: 2, RequiredReturn: 10, ExpectedDividend: 2.5,
		InitialInvestment: 50, HorizonYears: 10,
	}
	res, err := valuation.NewDirectD1Solver().Solve(in)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	eq := RenderEquation(&models.GrowthMetrics{
		Variant: models.VariantDirectD1,
		Inputs:  in,
		Result:  res,
	})
	if eq.Formula != "g = r - D1 / P0" {
		t.Fatalf("formula = %q", eq.Formula)
	}
	if !strings.Contains(eq.Substituted, "$2.50") {
		t.Fatalf("substituted = %q", eq.Substituted)
	}
	if eq.Result != "g = 5.00%" {
		t.Fatalf("result = %q", eq.Result)
	}
}
