package service

import (
	"fmt"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/money"
)

// projectionSummary describes what the extra payment buys.
func projectionSummary(r domain.ProjectionResult, f money.Formatter) string {
	if r.InterestSaved <= 0 && r.MonthsSaved <= 0 {
		return "The extra payment makes no difference to this loan."
	}
	return fmt.Sprintf("You save %s in interest and pay the loan off %s sooner.",
		f.Format(r.InterestSaved), Months(r.MonthsSaved))
}

// comparisonVerdict states which strategy wins and by how much.
func comparisonVerdict(c domain.Comparison, f money.Formatter) string {
	if c.InterestSaved == nil {
		return "The monthly budget does not cover the interest on every loan. Increase the monthly payment."
	}
	if *c.InterestSaved > 0 {
		return fmt.Sprintf("Avalanche saves you about %s in interest.", f.Format(*c.InterestSaved))
	}
	if c.Mode == amortization.Independent {
		return "No material difference between the methods: every loan receives the full budget, so order does not matter."
	}
	return "No material difference between the methods for these loans."
}

// StrategyLabel is the human name used by the presentation layers.
func StrategyLabel(s amortization.Strategy) string {
	switch s {
	case amortization.Avalanche:
		return "Avalanche (highest rate first)"
	case amortization.Snowball:
		return "Snowball (lowest balance first)"
	}
	return "Entered order"
}

// Months spells out a month count, "1 month" or "n months".
func Months(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
