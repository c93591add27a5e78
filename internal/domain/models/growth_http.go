package models

// Requests for calculator HTTP endpoints. Defined in domain for consistency and reuse.

// GrowthRequest carries the raw market inputs. Bounds mirror the ranges the
// engine is allowed to see; anything outside is rejected before solving.
type GrowthRequest struct {
	MarketPrice      float64 `query:"market_price" json:"market_price" validate:"required,gt=0.009,lte=10000"`
	CurrentDividend  float64 `query:"current_dividend" json:"current_dividend" validate:"gte=0,lte=1000"`
	RequiredReturn   float64 `query:"required_return" json:"required_return" validate:"required,gt=0,lte=100"`
	ExpectedDividend float64 `query:"expected_dividend" json:"expected_dividend" validate:"gte=0,lte=1000"`
	Horizon          int     `query:"horizon" json:"horizon" default:"10" validate:"gte=1,lte=50"`
}

// Inputs converts the request into engine inputs. The investment at year 0 is
// the market price paid for the share.
func (r *GrowthRequest) Inputs() ModelInputs {
	return ModelInputs{
		MarketPrice:       r.MarketPrice,
		CurrentDividend:   r.CurrentDividend,
		RequiredReturn:    r.RequiredReturn,
		ExpectedDividend:  r.ExpectedDividend,
		InitialInvestment: r.MarketPrice,
		HorizonYears:      r.Horizon,
	}
}
