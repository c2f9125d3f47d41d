package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/money"
	"debt-planner/repository"
)

// StrategySettings are the planner limits taken from configuration.
type StrategySettings struct {
	Mode      amortization.Mode
	MinBudget float64
	MaxLoans  int
	// MaxMonths bounds interest accumulation; zero or less selects
	// DefaultMaxMonths.
	MaxMonths int
	CacheTTL  time.Duration
}

func DefaultStrategySettings() StrategySettings {
	return StrategySettings{
		Mode:      amortization.Independent,
		MinBudget: DefaultMinBudget,
		MaxLoans:  DefaultMaxLoans,
		MaxMonths: DefaultMaxMonths,
	}
}

// StrategyService orders loans by avalanche or snowball and simulates paying
// them from a monthly budget.
type StrategyService struct {
	settings  StrategySettings
	cache     resultCache
	formatter money.Formatter
	log       *zap.Logger
}

// NewStrategyService creates a StrategyService. cache may be nil.
func NewStrategyService(
	cache repository.CacheRepository,
	settings StrategySettings,
	formatter money.Formatter,
	log *zap.Logger,
) *StrategyService {
	if log == nil {
		log = zap.NewNop()
	}
	if settings.Mode == "" {
		settings.Mode = amortization.Independent
	}
	if settings.MaxLoans <= 0 {
		settings.MaxLoans = DefaultMaxLoans
	}
	if settings.MaxMonths <= 0 {
		settings.MaxMonths = DefaultMaxMonths
	}
	return &StrategyService{
		settings:  settings,
		cache:     resultCache{repo: cache, ttl: settings.CacheTTL, log: log},
		formatter: formatter,
		log:       log,
	}
}

// portfolio is a validated PortfolioInput.
type portfolio struct {
	Loans     []amortization.Loan   `json:"loans"`
	Budget    float64               `json:"budget"`
	Strategy  amortization.Strategy `json:"strategy"`
	Mode      amortization.Mode     `json:"mode"`
	MaxMonths int                   `json:"max_months"`
}

func (p portfolio) options() []amortization.Option {
	return []amortization.Option{
		amortization.WithMode(p.Mode),
		amortization.WithMaxMonths(p.MaxMonths),
	}
}

// Prioritize orders the loans with a positive balance by strategy.
func (s *StrategyService) Prioritize(input domain.PrioritizeInput) (domain.PrioritizeResult, error) {
	strategy, err := amortization.ParseStrategy(input.Strategy)
	if err != nil {
		return domain.PrioritizeResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	loans, err := s.normalizeLoans(input.Loans)
	if err != nil {
		return domain.PrioritizeResult{}, err
	}

	return domain.PrioritizeResult{
		Strategy: strategy,
		Loans:    amortization.Prioritize(loans, strategy),
	}, nil
}

// TotalInterest orders the loans and accumulates interest until they are all
// paid. It fails with amortization.ErrInsufficientPayment when the budget
// cannot cover a month's interest.
func (s *StrategyService) TotalInterest(ctx context.Context, input domain.PortfolioInput) (domain.InterestResult, error) {
	p, err := s.normalize(input)
	if err != nil {
		return domain.InterestResult{}, err
	}

	return cached(ctx, s.cache, "interest", p, func() (domain.InterestResult, error) {
		ordered := amortization.Prioritize(p.Loans, p.Strategy)
		payoff, err := amortization.Accumulate(ordered, p.Budget, p.options()...)
		if err != nil {
			return domain.InterestResult{}, err
		}
		return domain.InterestResult{
			Strategy: p.Strategy,
			Mode:     p.Mode,
			Loans:    ordered,
			Payoff: amortization.PayoffSummary{
				TotalInterest: roundTo2Decimals(payoff.TotalInterest),
				Months:        payoff.Months,
			},
		}, nil
	})
}

// Trajectory returns the month-by-month aggregate balance for charting.
func (s *StrategyService) Trajectory(ctx context.Context, input domain.PortfolioInput) (domain.TrajectoryResult, error) {
	p, err := s.normalize(input)
	if err != nil {
		return domain.TrajectoryResult{}, err
	}

	return cached(ctx, s.cache, "trajectory", p, func() (domain.TrajectoryResult, error) {
		ordered := amortization.Prioritize(p.Loans, p.Strategy)
		t := amortization.SimulatePayoff(ordered, p.Budget, amortization.WithMode(p.Mode))
		return domain.TrajectoryResult{
			Strategy:   p.Strategy,
			Mode:       p.Mode,
			Trajectory: roundTrajectory(t),
			Months:     t.Months(),
			Converged:  t.Converged(),
		}, nil
	})
}

// Compare runs avalanche and snowball side by side.
func (s *StrategyService) Compare(ctx context.Context, input domain.PortfolioInput) (domain.Comparison, error) {
	p, err := s.normalize(input)
	if err != nil {
		return domain.Comparison{}, err
	}
	p.Strategy = amortization.None

	return cached(ctx, s.cache, "compare", p, func() (domain.Comparison, error) {
		return s.compare(p)
	})
}

func (s *StrategyService) compare(p portfolio) (domain.Comparison, error) {
	c := domain.Comparison{
		Mode:          p.Mode,
		TotalDebt:     roundTo2Decimals(amortization.TotalBalance(p.Loans)),
		MonthlyBudget: p.Budget,
	}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		c.Avalanche, err = s.outcome(p, amortization.Avalanche)
		return err
	})
	g.Go(func() error {
		var err error
		c.Snowball, err = s.outcome(p, amortization.Snowball)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Comparison{}, err
	}

	if c.Avalanche.Payoff != nil && c.Snowball.Payoff != nil {
		saved := roundTo2Decimals(c.Snowball.Payoff.TotalInterest - c.Avalanche.Payoff.TotalInterest)
		c.InterestSaved = &saved
	}
	c.Verdict = comparisonVerdict(c, s.formatter)

	s.log.Debug("compared strategies",
		zap.Int("loans", len(p.Loans)),
		zap.String("mode", string(p.Mode)),
		zap.Bool("both_pay_off", c.InterestSaved != nil))

	return c, nil
}

func (s *StrategyService) outcome(p portfolio, strategy amortization.Strategy) (domain.StrategyOutcome, error) {
	ordered := amortization.Prioritize(p.Loans, strategy)
	out := domain.StrategyOutcome{
		Strategy: strategy,
		Loans:    ordered,
	}

	payoff, err := amortization.Accumulate(ordered, p.Budget, p.options()...)
	switch {
	case err == nil:
		out.Payoff = &amortization.PayoffSummary{
			TotalInterest: roundTo2Decimals(payoff.TotalInterest),
			Months:        payoff.Months,
		}
	case errors.Is(err, amortization.ErrInsufficientPayment), errors.Is(err, amortization.ErrHorizonExceeded):
		out.Error = err.Error()
	default:
		return domain.StrategyOutcome{}, fmt.Errorf("%s: %w", strategy, err)
	}

	t := amortization.SimulatePayoff(ordered, p.Budget, amortization.WithMode(p.Mode))
	out.Trajectory = roundTrajectory(t)
	out.Converged = t.Converged()
	return out, nil
}

func (s *StrategyService) normalize(input domain.PortfolioInput) (portfolio, error) {
	strategy, err := amortization.ParseStrategy(input.Strategy)
	if err != nil {
		return portfolio{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	mode := s.settings.Mode
	if input.Mode != "" {
		if mode, err = amortization.ParseMode(input.Mode); err != nil {
			return portfolio{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if !finite(input.MonthlyBudget) || input.MonthlyBudget < 0 {
		return portfolio{}, fmt.Errorf("%w: monthly budget must be zero or positive", ErrInvalidInput)
	}

	loans, err := s.normalizeLoans(input.Loans)
	if err != nil {
		return portfolio{}, err
	}
	if input.MonthlyBudget < s.settings.MinBudget {
		return portfolio{}, fmt.Errorf("%w: %s is below %s",
			ErrBudgetTooLow, s.formatter.Format(input.MonthlyBudget), s.formatter.Format(s.settings.MinBudget))
	}

	return portfolio{
		Loans:     loans,
		Budget:    input.MonthlyBudget,
		Strategy:  strategy,
		Mode:      mode,
		MaxMonths: s.settings.MaxMonths,
	}, nil
}

// normalizeLoans validates loans, drops the ones with nothing owed and names
// unnamed loans after their input position. Only names given by the caller
// can be duplicates; a default name that is taken gets a suffix.
func (s *StrategyService) normalizeLoans(loans []amortization.Loan) ([]amortization.Loan, error) {
	if len(loans) > s.settings.MaxLoans {
		return nil, fmt.Errorf("%w: at most %d loans are supported", ErrInvalidInput, s.settings.MaxLoans)
	}

	names := make(map[string]bool, len(loans))
	for _, l := range loans {
		if l.Name == "" {
			continue
		}
		if names[l.Name] {
			return nil, fmt.Errorf("%w: duplicate loan name %s", ErrInvalidInput, l.Name)
		}
		names[l.Name] = true
	}

	out := make([]amortization.Loan, 0, len(loans))
	for i, l := range loans {
		if l.Name == "" {
			l.Name = defaultLoanName(i, names)
			names[l.Name] = true
		}
		switch {
		case !finite(l.Balance) || l.Balance < 0:
			return nil, fmt.Errorf("%w: balance of %s must be zero or positive", ErrInvalidInput, l.Name)
		case l.Balance > MaxLoanAmount:
			return nil, fmt.Errorf("%w: balance of %s exceeds the maximum of %.2f", ErrInvalidInput, l.Name, MaxLoanAmount)
		case !finite(l.AnnualRatePercent) || l.AnnualRatePercent < 0:
			return nil, fmt.Errorf("%w: interest rate of %s must be zero or positive", ErrInvalidInput, l.Name)
		case l.AnnualRatePercent > MaxInterestRate:
			return nil, fmt.Errorf("%w: interest rate of %s exceeds the maximum of %.2f%%", ErrInvalidInput, l.Name, MaxInterestRate)
		}

		if l.Balance > 0 {
			out = append(out, l)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoLoans
	}
	return out, nil
}

func defaultLoanName(i int, taken map[string]bool) string {
	name := fmt.Sprintf("Loan %d", i+1)
	for n := 2; taken[name]; n++ {
		name = fmt.Sprintf("Loan %d (%d)", i+1, n)
	}
	return name
}

func roundTrajectory(t amortization.Trajectory) amortization.Trajectory {
	out := make(amortization.Trajectory, len(t))
	for i, v := range t {
		out[i] = roundTo2Decimals(v)
	}
	return out
}
