package renderer

import (
	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	"github.com/PaulReadCFA/impliedgrowth/pkg/util"
)

// TableRow is one accessible data-table row: raw values for programmatic
// consumers plus formatted strings for display and screen readers.
type TableRow struct {
	Year                int     `json:"year"`
	Dividend            float64 `json:"dividend"`
	Investment          float64 `json:"investment"`
	TotalCashFlow       float64 `json:"total_cash_flow"`
	CumulativeCashFlow  float64 `json:"cumulative_cash_flow"`
	DividendLabel       string  `json:"dividend_label"`
	InvestmentLabel     string  `json:"investment_label"`
	TotalLabel          string  `json:"total_label"`
	CumulativeLabel     string  `json:"cumulative_label"`
}

// Table is the tabular rendering of a projected cash-flow schedule.
type Table struct {
	Caption string     `json:"caption"`
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

// RenderTable converts the cash-flow schedule into an accessible data table.
// It reads the metrics, never modifies them.
func RenderTable(m *models.GrowthMetrics) Table {
	t := Table{
		Caption: "Projected dividend cash flows at " + util.FormatPercent(m.Result.ImpliedGrowth) + " implied growth",
		Headers: []string{"Year", "Dividend", "Investment", "Total Cash Flow", "Cumulative Cash Flow"},
		Rows:    make([]TableRow, 0, len(m.CashFlows)),
	}
	for _, p := range m.CashFlows {
		t.Rows = append(t.Rows, TableRow{
			Year:               p.Year,
			Dividend:           p.Dividend,
			Investment:         p.Investment,
			TotalCashFlow:      p.TotalCashFlow,
			CumulativeCashFlow: p.CumulativeCashFlow,
			DividendLabel:      util.FormatCurrency(p.Dividend),
			InvestmentLabel:    util.FormatCurrency(p.Investment),
			TotalLabel:         util.FormatCurrency(p.TotalCashFlow),
			CumulativeLabel:    util.FormatCurrency(p.CumulativeCashFlow),
		})
	}
	return t
}
