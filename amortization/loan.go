// Package amortization models monthly interest accrual and payment allocation
// for one or several loans.
//
// Rates are annual nominal rates expressed in percent (5 means 5%). Every
// function works on copies of its input and never mutates the caller's loans.
package amortization

import "math"

// HistoryMonths caps the number of simulated months recorded by SimulatePayoff.
const HistoryMonths = 500

// Loan is an immutable loan input.
type Loan struct {
	Name              string  `json:"name,omitempty"`
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
}

// MonthlyRate returns the monthly fraction applied to the balance.
func (l Loan) MonthlyRate() float64 {
	return monthlyRate(l.AnnualRatePercent)
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// TotalBalance sums the balances of loans.
func TotalBalance(loans []Loan) float64 {
	total := 0.0
	for _, l := range loans {
		total += l.Balance
	}
	return total
}

// AnnuityPayment returns the level monthly payment that retires balance in
// termMonths at the given annual rate.
func AnnuityPayment(balance, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 || balance <= 0 {
		return 0
	}
	n := float64(termMonths)
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return balance / n
	}
	return balance * (r / (1 - math.Pow(1+r, -n)))
}

func workingBalances(loans []Loan) []float64 {
	balances := make([]float64, len(loans))
	for i, l := range loans {
		balances[i] = math.Max(0, l.Balance)
	}
	return balances
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
