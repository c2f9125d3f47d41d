package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/amortization"
	"debt-planner/domain"
	"debt-planner/money"
	"debt-planner/repository"
)

func newStrategyService(cache repository.CacheRepository, mode amortization.Mode) *StrategyService {
	settings := DefaultStrategySettings()
	settings.Mode = mode
	settings.MaxMonths = 1200
	return NewStrategyService(cache, settings, money.NewFormatter("kr"), nil)
}

func twoLoans() []amortization.Loan {
	return []amortization.Loan{
		{Balance: 10_000, AnnualRatePercent: 20},
		{Balance: 5_000, AnnualRatePercent: 5},
	}
}

func TestCompare_Independent(t *testing.T) {
	service := newStrategyService(NewMockCache(), amortization.Independent)

	c, err := service.Compare(context.Background(), domain.PortfolioInput{
		Loans:         twoLoans(),
		MonthlyBudget: 1_000,
	})
	require.NoError(t, err)

	assert.Equal(t, amortization.Independent, c.Mode)
	assert.Equal(t, 15_000.0, c.TotalDebt)
	assert.Equal(t, []string{"Loan 1", "Loan 2"}, loanNames(c.Avalanche.Loans))
	assert.Equal(t, []string{"Loan 2", "Loan 1"}, loanNames(c.Snowball.Loans))

	require.NotNil(t, c.Avalanche.Payoff)
	require.NotNil(t, c.Snowball.Payoff)
	assert.LessOrEqual(t, c.Avalanche.Payoff.TotalInterest, c.Snowball.Payoff.TotalInterest)
	require.NotNil(t, c.InterestSaved)
	assert.Zero(t, *c.InterestSaved)
	assert.Contains(t, c.Verdict, "No material difference")

	assert.Equal(t, 15_000.0, c.Avalanche.Trajectory.Initial())
	assert.True(t, c.Avalanche.Converged)
	assert.Equal(t, c.Avalanche.Payoff.Months, c.Avalanche.Trajectory.Months())
}

func TestCompare_SharedAvalancheWins(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	c, err := service.Compare(context.Background(), domain.PortfolioInput{
		Loans:         twoLoans(),
		MonthlyBudget: 1_000,
		Mode:          "shared",
	})
	require.NoError(t, err)

	assert.Equal(t, amortization.Shared, c.Mode)
	require.NotNil(t, c.InterestSaved)
	assert.Positive(t, *c.InterestSaved)
	assert.Contains(t, c.Verdict, "Avalanche saves you about")
}

func TestCompare_InsufficientBudget(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	c, err := service.Compare(context.Background(), domain.PortfolioInput{
		Loans:         []amortization.Loan{{Balance: 500_000, AnnualRatePercent: 10}},
		MonthlyBudget: 1_000,
	})
	require.NoError(t, err)

	assert.Nil(t, c.Avalanche.Payoff)
	assert.Nil(t, c.Snowball.Payoff)
	assert.NotEmpty(t, c.Avalanche.Error)
	assert.Nil(t, c.InterestSaved)
	assert.Contains(t, c.Verdict, "Increase the monthly payment")

	// The chart still runs to the month cap.
	assert.Len(t, c.Avalanche.Trajectory, amortization.HistoryMonths+1)
	assert.False(t, c.Avalanche.Converged)
}

func TestCompare_NoLoans(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	_, err := service.Compare(context.Background(), domain.PortfolioInput{MonthlyBudget: 5_000})
	assert.ErrorIs(t, err, ErrNoLoans)

	_, err = service.Compare(context.Background(), domain.PortfolioInput{
		Loans:         []amortization.Loan{{Balance: 0, AnnualRatePercent: 5}},
		MonthlyBudget: 5_000,
	})
	assert.ErrorIs(t, err, ErrNoLoans)
}

func TestCompare_BudgetFloor(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	_, err := service.Compare(context.Background(), domain.PortfolioInput{
		Loans:         twoLoans(),
		MonthlyBudget: 999,
	})
	assert.ErrorIs(t, err, ErrBudgetTooLow)
}

func TestCompare_Cached(t *testing.T) {
	cache := NewMockCache()
	service := newStrategyService(cache, amortization.Independent)
	input := domain.PortfolioInput{Loans: twoLoans(), MonthlyBudget: 1_000}

	first, err := service.Compare(context.Background(), input)
	require.NoError(t, err)
	second, err := service.Compare(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.SetCalls)
}

func TestNormalizeLoans(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	tests := []struct {
		name    string
		loans   []amortization.Loan
		wantErr error
		want    []string
	}{
		{
			name:  "drops empty loans and names the rest",
			loans: []amortization.Loan{{Balance: 0}, {Balance: 100, AnnualRatePercent: 3}, {Name: "car", Balance: 50}},
			want:  []string{"Loan 2", "car"},
		},
		{
			name:    "too many loans",
			loans:   make([]amortization.Loan, DefaultMaxLoans+1),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative balance",
			loans:   []amortization.Loan{{Balance: -10}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "rate too high",
			loans:   []amortization.Loan{{Balance: 10, AnnualRatePercent: MaxInterestRate + 1}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate names",
			loans:   []amortization.Loan{{Name: "a", Balance: 1}, {Name: "a", Balance: 2}},
			wantErr: ErrInvalidInput,
		},
		{
			name:  "default name taken by a given name",
			loans: []amortization.Loan{{Name: "Loan 2", Balance: 1}, {Balance: 2}},
			want:  []string{"Loan 2", "Loan 2 (2)"},
		},
		{
			name:  "given name after a default name",
			loans: []amortization.Loan{{Balance: 1}, {Name: "Loan 1", Balance: 2}},
			want:  []string{"Loan 1 (2)", "Loan 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.normalizeLoans(tt.loans)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loanNames(got))
		})
	}
}

func TestPrioritize(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	result, err := service.Prioritize(domain.PrioritizeInput{Loans: twoLoans(), Strategy: "snowball"})
	require.NoError(t, err)
	assert.Equal(t, amortization.Snowball, result.Strategy)
	assert.Equal(t, []string{"Loan 2", "Loan 1"}, loanNames(result.Loans))

	_, err = service.Prioritize(domain.PrioritizeInput{Loans: twoLoans(), Strategy: "random"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTotalInterest(t *testing.T) {
	service := newStrategyService(nil, amortization.Independent)

	single := []amortization.Loan{{Balance: 2_000_000, AnnualRatePercent: 5}}
	result, err := service.TotalInterest(context.Background(), domain.PortfolioInput{
		Loans:         single,
		MonthlyBudget: 11_000,
		Strategy:      "avalanche",
	})
	require.NoError(t, err)

	projection, err := amortization.ProjectSingleLoan(2_000_000, 5, 10_000, 1_000)
	require.NoError(t, err)
	assert.InDelta(t, projection.TotalInterest, result.Payoff.TotalInterest, 0.01)
	assert.Equal(t, projection.Months, result.Payoff.Months)

	_, err = service.TotalInterest(context.Background(), domain.PortfolioInput{
		Loans:         single,
		MonthlyBudget: 8_000,
	})
	assert.ErrorIs(t, err, amortization.ErrInsufficientPayment)
}

func TestTrajectory(t *testing.T) {
	service := newStrategyService(nil, amortization.Shared)

	result, err := service.Trajectory(context.Background(), domain.PortfolioInput{
		Loans:         twoLoans(),
		MonthlyBudget: 1_000,
		Strategy:      "avalanche",
	})
	require.NoError(t, err)

	assert.Equal(t, amortization.Shared, result.Mode)
	assert.Equal(t, 15_000.0, result.Trajectory.Initial())
	assert.True(t, result.Converged)
	assert.Equal(t, len(result.Trajectory)-1, result.Months)
}

func loanNames(loans []amortization.Loan) []string {
	out := make([]string, len(loans))
	for i, l := range loans {
		out[i] = l.Name
	}
	return out
}
