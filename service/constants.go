package service

import "errors"

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billion
	MaxInterestRate = 1000.0          // 1000% a year
	MaxTermMonths   = 600             // 50 years

	DefaultMaxLoans  = 5
	DefaultMinBudget = 1000.0
	DefaultMaxMonths = 1200 // 100 years
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoLoans is returned when no loan with a positive balance was given.
	ErrNoLoans      = errors.New("no loans with a positive balance")
	ErrBudgetTooLow = errors.New("monthly budget below minimum")
)
