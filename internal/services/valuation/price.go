package valuation

import "fmt"

// TheoreticalPrice recovers the Gordon model price P0 = D1 / (r - g) from an
// expected dividend, required return and growth rate (both percentages).
// Reference helper only; it is not on the calculation path and fails loudly
// when the growth/return pair leaves the model undefined.
func TheoreticalPrice(expectedDividend, requiredReturnPct, growthPct float64) (float64, error) {
	r := requiredReturnPct / 100
	g := growthPct / 100
	if g >= r {
		return 0, fmt.Errorf("theoretical price undefined: growth %.4f%% >= required return %.4f%%", growthPct, requiredReturnPct)
	}
	return expectedDividend / (r - g), nil
}
