package valuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	domsvc "github.com/PaulReadCFA/impliedgrowth/internal/domain/service"
)

// ErrDegenerate marks an arithmetic degeneracy: a zero or near-zero
// denominator, or a non-finite intermediate. Validated inputs never trigger
// it, but the solver refuses to propagate NaN/Inf if bounds are bypassed.
var ErrDegenerate = errors.New("degenerate computation")

// d1Tolerance is the absolute currency-unit tolerance used to cross-check a
// caller-supplied expected dividend against the model-implied one.
const d1Tolerance = 0.01

// ClosedFormSolver derives the implied growth rate from price, current
// dividend and required return alone, by substituting D1 = D0*(1+g) into
// g = r - D1/P0 and solving algebraically:
//
//	g = (r*P0 - D0) / (P0 + D0)
type ClosedFormSolver struct{}

func NewClosedFormSolver() *ClosedFormSolver { return &ClosedFormSolver{} }

func (s *ClosedFormSolver) Variant() models.ModelVariant { return models.VariantClosedForm }

func (s *ClosedFormSolver) Solve(in models.ModelInputs) (models.GrowthResult, error) {
	var res models.GrowthResult
	if in.MarketPrice <= 0 {
		return res, fmt.Errorf("solve closed form: market price must be positive: %w", ErrDegenerate)
	}
	denom := in.MarketPrice + in.CurrentDividend
	if denom == 0 {
		return res, fmt.Errorf("solve closed form: price plus dividend is zero: %w", ErrDegenerate)
	}

	r := in.RequiredReturn / 100
	g := (r*in.MarketPrice - in.CurrentDividend) / denom
	if !isFinite(g) {
		return res, fmt.Errorf("solve closed form: non-finite growth: %w", ErrDegenerate)
	}

	d1 := in.CurrentDividend * (1 + g)
	res.ImpliedGrowthDecimal = g
	res.ImpliedGrowth = g * 100
	res.ExpectedD1 = d1
	res.DividendYield = d1 / in.MarketPrice * 100
	res.IsValid = g >= 0 && g < r
	return res, nil
}

// DirectD1Solver takes the expected next dividend as an independent input and
// solves g = r - D1/P0. It additionally reports whether the supplied D1 agrees
// with the one the model implies from D0 and the solved g.
type DirectD1Solver struct{}

func NewDirectD1Solver() *DirectD1Solver { return &DirectD1Solver{} }

func (s *DirectD1Solver) Variant() models.ModelVariant { return models.VariantDirectD1 }

func (s *DirectD1Solver) Solve(in models.ModelInputs) (models.GrowthResult, error) {
	var res models.GrowthResult
	if in.MarketPrice <= 0 {
		return res, fmt.Errorf("solve direct d1: market price must be positive: %w", ErrDegenerate)
	}

	r := in.RequiredReturn / 100
	g := r - in.ExpectedDividend/in.MarketPrice
	if !isFinite(g) {
		return res, fmt.Errorf("solve direct d1: non-finite growth: %w", ErrDegenerate)
	}

	calculatedD1 := in.CurrentDividend * (1 + g)
	consistent := math.Abs(in.ExpectedDividend-calculatedD1) < d1Tolerance

	res.ImpliedGrowthDecimal = g
	res.ImpliedGrowth = g * 100
	res.ExpectedD1 = calculatedD1
	res.DividendYield = in.ExpectedDividend / in.MarketPrice * 100
	res.IsValid = g >= 0 && g < r
	res.D1Consistent = &consistent
	return res, nil
}

// ForVariant returns the solver implementing the given model variant.
func ForVariant(v models.ModelVariant) (domsvc.GrowthSolver, error) {
	switch v {
	case models.VariantClosedForm:
		return NewClosedFormSolver(), nil
	case models.VariantDirectD1:
		return NewDirectD1Solver(), nil
	default:
		return nil, fmt.Errorf("unknown model variant %q", v)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

var (
	_ domsvc.GrowthSolver = (*ClosedFormSolver)(nil)
	_ domsvc.GrowthSolver = (*DirectD1Solver)(nil)
)
