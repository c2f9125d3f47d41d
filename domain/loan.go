package domain

import "debt-planner/amortization"

// ProjectionInput describes one loan paid with a fixed monthly payment plus
// an optional extra payment.
type ProjectionInput struct {
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	ExtraPayment      float64 `json:"extra_payment"`
	// TermMonths derives MonthlyPayment as a level annuity when MonthlyPayment
	// is zero.
	TermMonths int `json:"term_months,omitempty"`
}

type ProjectionResult struct {
	MonthlyPayment float64                 `json:"monthly_payment"`
	Baseline       amortization.Projection `json:"baseline"`
	WithExtra      amortization.Projection `json:"with_extra"`
	InterestSaved  float64                 `json:"interest_saved"`
	MonthsSaved    int                     `json:"months_saved"`
	Summary        string                  `json:"summary"`
}
