package valuation

import (
	"math"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	domsvc "github.com/PaulReadCFA/impliedgrowth/internal/domain/service"
)

// DefaultHorizonYears is the projection window used when the caller does not
// ask for a specific one.
const DefaultHorizonYears = 10

// Projector deterministically unrolls a growth rate into a year-by-year
// dividend schedule. Year 0 carries the (negative) initial investment and no
// dividend; years 1..N carry the growing dividend. The sequence always has
// horizonYears+1 points regardless of the sign of the running total.
type Projector struct{}

func NewProjector() *Projector { return &Projector{} }

func (p *Projector) Project(initialInvestment, currentDividend, growthDecimal float64, horizonYears int) []models.CashFlowPoint {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}

	points := make([]models.CashFlowPoint, 0, horizonYears+1)
	points = append(points, models.CashFlowPoint{
		Year:               0,
		Dividend:           0,
		Investment:         -initialInvestment,
		TotalCashFlow:      -initialInvestment,
		CumulativeCashFlow: -initialInvestment,
	})

	cumulative := -initialInvestment
	for t := 1; t <= horizonYears; t++ {
		dividend := currentDividend * math.Pow(1+growthDecimal, float64(t))
		cumulative += dividend
		points = append(points, models.CashFlowPoint{
			Year:               t,
			Dividend:           dividend,
			Investment:         0,
			TotalCashFlow:      dividend,
			CumulativeCashFlow: cumulative,
		})
	}
	return points
}

// BreakEvenYear scans the schedule for the first year whose cumulative cash
// flow turns non-negative. Returns -1 when the investment is not recovered
// within the horizon. The projector itself never computes this; it is a
// consumer-side helper.
func BreakEvenYear(points []models.CashFlowPoint) int {
	for _, pt := range points {
		if pt.CumulativeCashFlow >= 0 {
			return pt.Year
		}
	}
	return -1
}

var _ domsvc.CashFlowProjector = (*Projector)(nil)
