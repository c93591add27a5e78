package models

import "time"

// ModelVariant selects which form of the constant-growth model is solved.
// The two variants are not interchangeable: the direct variant takes the
// expected next dividend as an independent input, the closed-form variant
// derives it from the current dividend. A deployment picks exactly one.
type ModelVariant string

const (
	// VariantClosedForm solves g = (r*P0 - D0) / (P0 + D0).
	VariantClosedForm ModelVariant = "closed_form"
	// VariantDirectD1 solves g = r - D1/P0 with D1 supplied by the caller.
	VariantDirectD1 ModelVariant = "direct_d1"
)

// Valid reports whether v names a known model variant.
func (v ModelVariant) Valid() bool {
	return v == VariantClosedForm || v == VariantDirectD1
}

// ModelInputs are the validated market observables the engine solves from.
// ExpectedDividend is only meaningful under VariantDirectD1.
type ModelInputs struct {
	MarketPrice      float64
	CurrentDividend  float64
	RequiredReturn   float64 // percentage, e.g. 7.4 for 7.4%
	ExpectedDividend float64
	InitialInvestment float64 // defaults to MarketPrice when zero
	HorizonYears     int      // defaults to 10 when zero
}

// GrowthResult is the solved model: implied growth in both percentage and
// decimal form, the next-period dividend consistent with the model, and the
// validity verdict 0 <= g < r.
type GrowthResult struct {
	ImpliedGrowth        float64 `json:"implied_growth"` // percentage
	ImpliedGrowthDecimal float64 `json:"implied_growth_decimal"`
	ExpectedD1           float64 `json:"expected_d1"`
	DividendYield        float64 `json:"dividend_yield"` // percentage
	IsValid              bool    `json:"is_valid"`
	// D1Consistent is set only under VariantDirectD1: it cross-checks the
	// supplied expected dividend against D0*(1+g) within a 0.01 currency
	// tolerance.
	D1Consistent *bool `json:"d1_consistent,omitempty"`
}

// CashFlowPoint is one year of the projected schedule. Investment is non-zero
// (and negative) only at year 0. TotalCashFlow = Dividend + Investment and
// CumulativeCashFlow is the running sum of TotalCashFlow from year 0.
type CashFlowPoint struct {
	Year               int     `json:"year"`
	Dividend           float64 `json:"dividend"`
	Investment         float64 `json:"investment"`
	TotalCashFlow      float64 `json:"total_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
}

// GrowthMetrics is the complete engine output for one calculation request.
// Recomputed from scratch on every input change, never mutated in place.
type GrowthMetrics struct {
	Variant    ModelVariant    `json:"variant"`
	Inputs     ModelInputs     `json:"-"`
	Result     GrowthResult    `json:"result"`
	CashFlows  []CashFlowPoint `json:"cash_flows"`
	ComputedAt time.Time       `json:"computed_at"`
}
