package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/money"
	"debt-planner/repository"
)

func roundTo2Decimals(value float64) float64 {
	return money.Round(value, 2)
}

// ProjectionService compares paying one loan with and without an extra
// monthly payment.
type ProjectionService struct {
	cache     resultCache
	maxMonths int
	formatter money.Formatter
	log       *zap.Logger
}

// NewProjectionService creates a ProjectionService. cache may be nil. A
// projection still open after maxMonths fails with
// amortization.ErrHorizonExceeded; zero or less selects DefaultMaxMonths.
func NewProjectionService(
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	maxMonths int,
	formatter money.Formatter,
	log *zap.Logger,
) *ProjectionService {
	if log == nil {
		log = zap.NewNop()
	}
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}
	return &ProjectionService{
		cache:     resultCache{repo: cache, ttl: cacheTTL, log: log},
		maxMonths: maxMonths,
		formatter: formatter,
		log:       log,
	}
}

// Project runs the loan once with the base payment only and once with the
// extra payment added, and reports the difference. Both runs must succeed.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	if err := validateProjection(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	payment := input.MonthlyPayment
	if payment == 0 && input.TermMonths > 0 {
		payment = amortization.AnnuityPayment(input.Balance, input.AnnualRatePercent, input.TermMonths)
	}

	normalized := input
	normalized.MonthlyPayment = payment
	normalized.TermMonths = 0

	return cached(ctx, s.cache, "projection", normalized, func() (domain.ProjectionResult, error) {
		return s.project(normalized)
	})
}

func (s *ProjectionService) project(input domain.ProjectionInput) (domain.ProjectionResult, error) {
	limit := amortization.WithMaxMonths(s.maxMonths)

	baseline, err := amortization.ProjectSingleLoan(input.Balance, input.AnnualRatePercent, input.MonthlyPayment, 0, limit)
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("without extra payment: %w", err)
	}
	withExtra, err := amortization.ProjectSingleLoan(input.Balance, input.AnnualRatePercent, input.MonthlyPayment, input.ExtraPayment, limit)
	if err != nil {
		return domain.ProjectionResult{}, fmt.Errorf("with extra payment: %w", err)
	}

	result := domain.ProjectionResult{
		MonthlyPayment: roundTo2Decimals(input.MonthlyPayment),
		Baseline: amortization.Projection{
			TotalInterest: roundTo2Decimals(baseline.TotalInterest),
			Months:        baseline.Months,
		},
		WithExtra: amortization.Projection{
			TotalInterest: roundTo2Decimals(withExtra.TotalInterest),
			Months:        withExtra.Months,
		},
		InterestSaved: roundTo2Decimals(baseline.TotalInterest - withExtra.TotalInterest),
		MonthsSaved:   baseline.Months - withExtra.Months,
	}
	result.Summary = projectionSummary(result, s.formatter)

	s.log.Debug("projected loan",
		zap.Float64("balance", input.Balance),
		zap.Int("baseline_months", baseline.Months),
		zap.Int("with_extra_months", withExtra.Months))

	return result, nil
}

func validateProjection(input domain.ProjectionInput) error {
	switch {
	case !finite(input.Balance) || input.Balance < 0:
		return fmt.Errorf("%w: balance must be zero or positive", ErrInvalidInput)
	case input.Balance > MaxLoanAmount:
		return fmt.Errorf("%w: balance exceeds the maximum of %.2f", ErrInvalidInput, MaxLoanAmount)
	case !finite(input.AnnualRatePercent) || input.AnnualRatePercent < 0:
		return fmt.Errorf("%w: interest rate must be zero or positive", ErrInvalidInput)
	case input.AnnualRatePercent > MaxInterestRate:
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrInvalidInput, MaxInterestRate)
	case !finite(input.MonthlyPayment) || input.MonthlyPayment < 0:
		return fmt.Errorf("%w: monthly payment must be zero or positive", ErrInvalidInput)
	case !finite(input.ExtraPayment) || input.ExtraPayment < 0:
		return fmt.Errorf("%w: extra payment must be zero or positive", ErrInvalidInput)
	case input.TermMonths < 0 || input.TermMonths > MaxTermMonths:
		return fmt.Errorf("%w: term must be between 0 and %d months", ErrInvalidInput, MaxTermMonths)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
