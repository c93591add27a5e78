package renderer

import (
	"fmt"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/pkg/util"
)

// Equation re-displays the solved formula with the numeric inputs
// substituted in, for the formula panel under the chart.
type Equation struct {
	Variant     models.ModelVariant `json:"variant"`
	Formula     string              `json:"formula"`
	Substituted string              `json:"substituted"`
	Result      string              `json:"result"`
}

// RenderEquation formats the configured variant's formula with the request's
// numbers plugged in.
func RenderEquation(m *models.GrowthMetrics) Equation {
	in := m.Inputs
	r := in.RequiredReturn / 100

	switch m.Variant {
	case models.VariantDirectD1:
		return Equation{
			Variant: m.Variant,
			Formula: "g = r - D1 / P0",
			Substituted: fmt.Sprintf("g = %.4f - %s / %s",
				r, util.FormatCurrency(in.ExpectedDividend), util.FormatCurrency(in.MarketPrice)),
			Result: "g = " + util.FormatPercent(m.Result.ImpliedGrowth),
		}
	default:
		return Equation{
			Variant: m.Variant,
			Formula: "g = (r * P0 - D0) / (P0 + D0)",
			Substituted: fmt.Sprintf("g = (%.4f * %s - %s) / (%s + %s)",
				r, util.FormatCurrency(in.MarketPrice), util.FormatCurrency(in.CurrentDividend),
				util.FormatCurrency(in.MarketPrice), util.FormatCurrency(in.CurrentDividend)),
			Result: "g = " + util.FormatPercent(m.Result.ImpliedGrowth),
		}
	}
}
