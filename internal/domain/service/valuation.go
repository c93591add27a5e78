package service

import "github.com/PaulReadCFA/impliedgrowth/internal/domain/models"

// GrowthSolver solves the constant-growth model for the implied dividend
// growth rate. Implementations are pure: no I/O, no side effects.
type GrowthSolver interface {
	Solve(inputs models.ModelInputs) (models.GrowthResult, error)
	Variant() models.ModelVariant
}

// CashFlowProjector unrolls a solved growth rate into a fixed-horizon
// schedule of dividend cash flows.
type CashFlowProjector interface {
	Project(initialInvestment, currentDividend, growthDecimal float64, horizonYears int) []models.CashFlowPoint
}
