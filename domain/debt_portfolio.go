package domain

import "debt-planner/amortization"

type PrioritizeInput struct {
	Loans    []amortization.Loan `json:"loans"`
	Strategy string              `json:"strategy"`
}

type PrioritizeResult struct {
	Strategy amortization.Strategy `json:"strategy"`
	Loans    []amortization.Loan   `json:"loans"`
}

// PortfolioInput is a set of loans paid from one monthly budget.
type PortfolioInput struct {
	Loans         []amortization.Loan `json:"loans"`
	MonthlyBudget float64             `json:"monthly_budget"`
	Strategy      string              `json:"strategy,omitempty"`
	// Mode overrides the configured allocation mode.
	Mode string `json:"mode,omitempty"`
}

type InterestResult struct {
	Strategy amortization.Strategy      `json:"strategy"`
	Mode     amortization.Mode          `json:"mode"`
	Loans    []amortization.Loan        `json:"loans"`
	Payoff   amortization.PayoffSummary `json:"payoff"`
}

type TrajectoryResult struct {
	Strategy   amortization.Strategy   `json:"strategy"`
	Mode       amortization.Mode       `json:"mode"`
	Trajectory amortization.Trajectory `json:"trajectory"`
	Months     int                     `json:"months"`
	Converged  bool                    `json:"converged"`
}

// StrategyOutcome is one strategy's side of a comparison. Payoff is nil when
// the budget cannot retire the loans; Error then says why.
type StrategyOutcome struct {
	Strategy   amortization.Strategy       `json:"strategy"`
	Loans      []amortization.Loan         `json:"loans"`
	Payoff     *amortization.PayoffSummary `json:"payoff"`
	Error      string                      `json:"error,omitempty"`
	Trajectory amortization.Trajectory     `json:"trajectory"`
	Converged  bool                        `json:"converged"`
}

type Comparison struct {
	Mode          amortization.Mode `json:"mode"`
	TotalDebt     float64           `json:"total_debt"`
	MonthlyBudget float64           `json:"monthly_budget"`
	Avalanche     StrategyOutcome   `json:"avalanche"`
	Snowball      StrategyOutcome   `json:"snowball"`
	// InterestSaved is snowball interest minus avalanche interest, present
	// only when both strategies pay off.
	InterestSaved *float64 `json:"interest_saved,omitempty"`
	Verdict       string   `json:"verdict"`
}
