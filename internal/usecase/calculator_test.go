package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/internal/renderer"
	"github.com/PaulReadCFA/impliedgrowth/internal/services/valuation"
)

type nopMetrics struct{}

func (nopMetrics) RecordCalculation(string)         {}
func (nopMetrics) RecordError(string)               {}
func (nopMetrics) RecordLastGrowth(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)    {}

type mapCache struct {
	m map[string]*models.GrowthMetrics
}

func newMapCache() *mapCache { return &mapCache{m: make(map[string]*models.GrowthMetrics)} }

func (c *mapCache) Get(_ context.Context, key string) (*models.GrowthMetrics, bool) {
	m, ok := c.m[key]
	return m, ok
}

func (c *mapCache) Set(_ context.Context, key string, m *models.GrowthMetrics, _ time.Duration) {
	c.m[key] = m
}

// jsonCache stores marshaled snapshots, matching what the real cache
// backends persist.
type jsonCache struct {
	m map[string][]byte
}

func newJSONCache() *jsonCache { return &jsonCache{m: make(map[string][]byte)} }

func (c *jsonCache) Get(_ context.Context, key string) (*models.GrowthMetrics, bool) {
	b, ok := c.m[key]
	if !ok {
		return nil, false
	}
	var m models.GrowthMetrics
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	return &m, true
}

func (c *jsonCache) Set(_ context.Context, key string, m *models.GrowthMetrics, _ time.Duration) {
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	c.m[key] = b
}

type recordingPublisher struct {
	published []*models.GrowthMetrics
}

func (p *recordingPublisher) Publish(m *models.GrowthMetrics) {
	p.published = append(p.published, m)
}

func validInputs() models.ModelInputs {
	return models.ModelInputs{MarketPrice: 54.56, CurrentDividend: 3.60, RequiredReturn: 7.40}
}

func TestCalculateComposesResult(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{})

	m, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Variant != models.VariantClosedForm {
		t.Fatalf("variant = %s", m.Variant)
	}
	if len(m.CashFlows) != 11 {
		t.Fatalf("cash flows = %d, want 11", len(m.CashFlows))
	}
	if m.CashFlows[0].TotalCashFlow != -54.56 {
		t.Fatalf("year 0 total = %v, want -54.56", m.CashFlows[0].TotalCashFlow)
	}
	if !m.Result.IsValid {
		t.Fatalf("expected valid result")
	}
	if m.ComputedAt.IsZero() {
		t.Fatalf("missing computed_at")
	}
}

func TestCalculateFinancialLogicGate(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{})

	// dividend too large for the price/return pair: implied growth < 0
	_, err := calc.Calculate(context.Background(), models.ModelInputs{
		MarketPrice: 100, CurrentDividend: 20, RequiredReturn: 5,
	})
	if !errors.Is(err, ErrFinancialLogic) {
		t.Fatalf("expected ErrFinancialLogic, got %v", err)
	}
}

func TestCalculateDegeneracy(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{})

	_, err := calc.Calculate(context.Background(), models.ModelInputs{
		MarketPrice: 0, RequiredReturn: 5,
	})
	if !errors.Is(err, valuation.ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}

func TestCalculateCacheHit(t *testing.T) {
	cache := newMapCache()
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{},
		WithResultCache(cache, time.Minute))

	first, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.m) != 1 {
		t.Fatalf("expected one cached entry, got %d", len(cache.m))
	}

	second, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached result to be returned")
	}
}

func TestCalculateCacheHitKeepsInputs(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{},
		WithResultCache(newJSONCache(), time.Minute))

	if _, err := calc.Calculate(context.Background(), validInputs()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second call is served from the serialized copy, which does not
	// carry the inputs itself.
	m, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Inputs.MarketPrice != 54.56 {
		t.Fatalf("market price = %v, want 54.56", m.Inputs.MarketPrice)
	}
	if m.Inputs.RequiredReturn != 7.40 {
		t.Fatalf("required return = %v, want 7.40", m.Inputs.RequiredReturn)
	}

	eq := renderer.RenderEquation(m)
	if !strings.Contains(eq.Substituted, "54.56") {
		t.Fatalf("substituted equation lost the price: %q", eq.Substituted)
	}
	if !strings.Contains(eq.Substituted, "3.60") {
		t.Fatalf("substituted equation lost the dividend: %q", eq.Substituted)
	}
}

func TestCalculatePublishesSnapshot(t *testing.T) {
	pub := &recordingPublisher{}
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{},
		WithPublisher(pub))

	m, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pub.published) != 1 || pub.published[0] != m {
		t.Fatalf("expected one published snapshot")
	}
}

func TestCalculateDefaults(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewClosedFormSolver(), valuation.NewProjector(), nopMetrics{},
		WithDefaultHorizon(5))

	m, err := calc.Calculate(context.Background(), validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.CashFlows) != 6 {
		t.Fatalf("cash flows = %d, want 6", len(m.CashFlows))
	}
	if m.Inputs.InitialInvestment != 54.56 {
		t.Fatalf("investment should default to market price, got %v", m.Inputs.InitialInvestment)
	}
}

func TestCalculateDirectVariant(t *testing.T) {
	calc := NewGrowthCalculator(valuation.NewDirectD1Solver(), valuation.NewProjector(), nopMetrics{})

	m, err := calc.Calculate(context.Background(), models.ModelInputs{
		MarketPrice: 50, CurrentDividend: 2, RequiredReturn: 10, ExpectedDividend: 2.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Result.ImpliedGrowth != 5.0 {
		t.Fatalf("growth = %v, want 5.0", m.Result.ImpliedGrowth)
	}
	if m.Result.D1Consistent == nil {
		t.Fatalf("direct variant must carry d1 consistency flag")
	}
}
