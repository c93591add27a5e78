package renderer

import (
	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/internal/services/valuation"
	"github.com/PaulReadCFA/impliedgrowth/pkg/util"
)

// Summary is the headline rendering of a calculation: the solved growth, the
// derived quantities, and where in the horizon the investment is recovered.
type Summary struct {
	Variant             models.ModelVariant `json:"variant"`
	ImpliedGrowth       float64             `json:"implied_growth"`
	ImpliedGrowthLabel  string              `json:"implied_growth_label"`
	DividendYield       float64             `json:"dividend_yield"`
	DividendYieldLabel  string              `json:"dividend_yield_label"`
	ExpectedD1          float64             `json:"expected_d1"`
	ExpectedD1Label     string              `json:"expected_d1_label"`
	IsValid             bool                `json:"is_valid"`
	D1Consistent        *bool               `json:"d1_consistent,omitempty"`
	HorizonYears        int                 `json:"horizon_years"`
	// BreakEvenYear is -1 when cumulative cash flow stays negative for the
	// whole horizon.
	BreakEvenYear int `json:"break_even_year"`
}

// RenderSummary produces the results-panel view of the metrics.
func RenderSummary(m *models.GrowthMetrics) Summary {
	return Summary{
		Variant:            m.Variant,
		ImpliedGrowth:      m.Result.ImpliedGrowth,
		ImpliedGrowthLabel: util.FormatPercent(m.Result.ImpliedGrowth),
		DividendYield:      m.Result.DividendYield,
		DividendYieldLabel: util.FormatPercent(m.Result.DividendYield),
		ExpectedD1:         m.Result.ExpectedD1,
		ExpectedD1Label:    util.FormatCurrency(m.Result.ExpectedD1),
		IsValid:            m.Result.IsValid,
		D1Consistent:       m.Result.D1Consistent,
		HorizonYears:       len(m.CashFlows) - 1,
		BreakEvenYear:      valuation.BreakEvenYear(m.CashFlows),
	}
}
