package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	domrepo "github.com/PaulReadCFA/impliedgrowth/internal/domain/repository"
	domsvc "github.com/PaulReadCFA/impliedgrowth/internal/domain/service"
	"github.com/PaulReadCFA/impliedgrowth/internal/repository"
)

// ErrFinancialLogic marks an input combination that passed every field range
// check but fails the model's consistency predicate: the solved growth rate
// is negative or not below the required return. Treated as a blocking error,
// same severity as a validation failure.
var ErrFinancialLogic = errors.New("financial logic inconsistency")

// GrowthCalculator composes the growth solver and the cash-flow projector
// into the one operation callers invoke per input change. Every call
// recomputes from scratch; the previous result is discarded, never merged.
type GrowthCalculator struct {
	solver    domsvc.GrowthSolver
	projector domsvc.CashFlowProjector
	cache     domrepo.ResultCache
	publisher domrepo.SnapshotPublisher
	metrics   domrepo.Metrics

	cacheTTL       time.Duration
	defaultHorizon int
}

type Option func(*GrowthCalculator)

// WithResultCache enables result caching keyed by the input signature.
func WithResultCache(c domrepo.ResultCache, ttl time.Duration) Option {
	return func(g *GrowthCalculator) {
		g.cache = c
		g.cacheTTL = ttl
	}
}

// WithPublisher fans each fresh snapshot out to store listeners.
func WithPublisher(p domrepo.SnapshotPublisher) Option {
	return func(g *GrowthCalculator) { g.publisher = p }
}

// WithDefaultHorizon overrides the projection window used when the caller
// does not ask for one.
func WithDefaultHorizon(years int) Option {
	return func(g *GrowthCalculator) {
		if years > 0 {
			g.defaultHorizon = years
		}
	}
}

func NewGrowthCalculator(solver domsvc.GrowthSolver, projector domsvc.CashFlowProjector, metrics domrepo.Metrics, opts ...Option) *GrowthCalculator {
	g := &GrowthCalculator{
		solver:         solver,
		projector:      projector,
		metrics:        metrics,
		defaultHorizon: 10,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Variant reports which model variant this calculator is configured with.
func (g *GrowthCalculator) Variant() models.ModelVariant { return g.solver.Variant() }

// Calculate solves the model and unrolls the cash-flow schedule. Inputs must
// already have passed the field range validation; this method only enforces
// the cross-field financial logic check, which duplicates the solver's
// IsValid predicate and must stay consistent with it.
func (g *GrowthCalculator) Calculate(ctx context.Context, in models.ModelInputs) (*models.GrowthMetrics, error) {
	start := time.Now()

	if in.HorizonYears <= 0 {
		in.HorizonYears = g.defaultHorizon
	}
	if in.InitialInvestment == 0 {
		in.InitialInvestment = in.MarketPrice
	}

	key := repository.InputKey(g.solver.Variant(), in)
	if g.cache != nil {
		if cached, ok := g.cache.Get(ctx, key); ok {
			// Inputs are not part of the stored payload; the renderers
			// need them, so carry the caller's over.
			cached.Inputs = in
			if g.publisher != nil {
				g.publisher.Publish(cached)
			}
			g.metrics.RecordLatency("calculate_cached", time.Since(start).Seconds())
			return cached, nil
		}
	}

	result, err := g.solver.Solve(in)
	if err != nil {
		g.metrics.RecordError("computation")
		return nil, fmt.Errorf("solve %s: %w", g.solver.Variant(), err)
	}

	if !result.IsValid {
		g.metrics.RecordError("financial_logic")
		return nil, fmt.Errorf("implied growth %.4f%% outside [0, required return): %w",
			result.ImpliedGrowth, ErrFinancialLogic)
	}

	points := g.projector.Project(in.InitialInvestment, in.CurrentDividend, result.ImpliedGrowthDecimal, in.HorizonYears)

	m := &models.GrowthMetrics{
		Variant:    g.solver.Variant(),
		Inputs:     in,
		Result:     result,
		CashFlows:  points,
		ComputedAt: time.Now().UTC(),
	}

	if g.cache != nil {
		g.cache.Set(ctx, key, m, g.cacheTTL)
	}
	if g.publisher != nil {
		g.publisher.Publish(m)
	}

	g.metrics.RecordCalculation(string(g.solver.Variant()))
	g.metrics.RecordLastGrowth(string(g.solver.Variant()), result.ImpliedGrowth)
	g.metrics.RecordLatency("calculate", time.Since(start).Seconds())
	return m, nil
}
