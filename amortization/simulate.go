package amortization

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the monthly budget is spread over several loans.
type Mode string

const (
	// Independent offers the full budget to every active loan each month, so
	// the budget is effectively multiplied by the number of open loans and the
	// loan order has no numeric effect.
	Independent Mode = "independent"
	// Shared spends one budget per month: interest on every loan first, then
	// the remainder on loans in priority order.
	Shared Mode = "shared"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Independent, "":
		return Independent, nil
	case Shared:
		return Shared, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Options struct {
	Mode Mode
	// MaxMonths bounds ProjectSingleLoan and AccumulateInterest. Zero means
	// no bound.
	MaxMonths int
}

type Option func(*Options)

func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

func WithMaxMonths(n int) Option {
	return func(o *Options) { o.MaxMonths = n }
}

func buildOptions(opts []Option) Options {
	o := Options{Mode: Independent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stepFunc advances balances by one month and returns the interest accrued.
// When strict is set it fails instead of applying a non-positive principal.
type stepFunc func(loans []Loan, balances []float64, budget float64, month int, strict bool) (float64, error)

func (o Options) step() stepFunc {
	if o.Mode == Shared {
		return stepShared
	}
	return stepIndependent
}

func stepIndependent(loans []Loan, balances []float64, budget float64, month int, strict bool) (float64, error) {
	var monthInterest float64
	for i, b := range balances {
		if b <= 0 {
			continue
		}
		interest := b * loans[i].MonthlyRate()
		monthInterest += interest

		owed := b + interest
		payment := math.Min(budget, owed)
		principal := payment - interest
		if strict && principal <= 0 {
			return monthInterest, &InsufficientPaymentError{
				Loan:     i,
				Month:    month,
				Interest: interest,
				Payment:  payment,
			}
		}
		if payment >= owed {
			balances[i] = 0
			continue
		}
		balances[i] = math.Max(0, b-principal)
	}
	return monthInterest, nil
}

func stepShared(loans []Loan, balances []float64, budget float64, month int, strict bool) (float64, error) {
	interests := make([]float64, len(balances))
	var monthInterest, owed float64
	for i, b := range balances {
		if b <= 0 {
			continue
		}
		interests[i] = b * loans[i].MonthlyRate()
		monthInterest += interests[i]
		owed += b + interests[i]
	}

	if strict && math.Min(budget, owed)-monthInterest <= 0 {
		return monthInterest, &InsufficientPaymentError{
			Loan:     -1,
			Month:    month,
			Interest: monthInterest,
			Payment:  budget,
		}
	}

	pool := budget
	// Interest on every loan, in priority order.
	for i := range balances {
		if balances[i] <= 0 {
			continue
		}
		pay := math.Min(pool, interests[i])
		pool -= pay
		// Unpaid interest capitalizes.
		balances[i] += interests[i] - pay
	}
	// Remainder goes to principal, rolling over as loans are retired.
	for i := range balances {
		if pool <= 0 {
			break
		}
		if balances[i] <= 0 {
			continue
		}
		pay := math.Min(pool, balances[i])
		pool -= pay
		balances[i] = math.Max(0, balances[i]-pay)
	}
	return monthInterest, nil
}

// PayoffSummary is the result of a full multi-loan payoff.
type PayoffSummary struct {
	TotalInterest float64 `json:"total_interest"`
	Months        int     `json:"months"`
}

// AccumulateInterest returns the interest paid across all loans until every
// balance reaches zero.
func AccumulateInterest(loans []Loan, budget float64, opts ...Option) (float64, error) {
	s, err := Accumulate(loans, budget, opts...)
	if err != nil {
		return 0, err
	}
	return s.TotalInterest, nil
}

// Accumulate is AccumulateInterest that also reports the payoff duration.
func Accumulate(loans []Loan, budget float64, opts ...Option) (PayoffSummary, error) {
	o := buildOptions(opts)
	step := o.step()
	balances := workingBalances(loans)

	var s PayoffSummary
	for sum(balances) > 0 {
		if o.MaxMonths > 0 && s.Months >= o.MaxMonths {
			return PayoffSummary{}, horizonError(o.MaxMonths)
		}
		interest, err := step(loans, balances, budget, s.Months+1, true)
		if err != nil {
			return PayoffSummary{}, err
		}
		s.TotalInterest += interest
		s.Months++
	}
	return s, nil
}

// Trajectory holds the aggregate remaining balance per month. Entry zero is
// the opening balance.
type Trajectory []float64

func (t Trajectory) Months() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

func (t Trajectory) Initial() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// Converged reports whether every loan was retired within the recorded months.
func (t Trajectory) Converged() bool {
	return t.Final() <= 0
}

// SimulatePayoff records the aggregate balance month by month, for at most
// HistoryMonths months. It never fails: a payment that does not cover
// interest lets the balance stagnate or grow until the cap is reached.
func SimulatePayoff(loans []Loan, budget float64, opts ...Option) Trajectory {
	o := buildOptions(opts)
	step := o.step()
	balances := workingBalances(loans)

	total := sum(balances)
	history := make(Trajectory, 1, 64)
	history[0] = total

	for month := 1; total > 0 && month <= HistoryMonths; month++ {
		_, _ = step(loans, balances, budget, month, false)
		total = sum(balances)
		history = append(history, total)
	}
	return history
}
