package amortization

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPayment means the offered payment does not exceed the
	// interest accrued in the period, so principal cannot decrease.
	ErrInsufficientPayment = errors.New("payment does not cover accrued interest")

	// ErrHorizonExceeded means the payment does cover interest but the debt
	// is not retired within the configured number of months.
	ErrHorizonExceeded = errors.New("payoff horizon exceeded")
	ErrUnknownStrategy = errors.New("unknown prioritization strategy")
	ErrUnknownMode     = errors.New("unknown allocation mode")
)

// InsufficientPaymentError describes the month and loan where a payment
// stopped covering interest. Loan is -1 when the shortfall is not tied to one
// loan of a set: a single-loan projection, or a shared budget that cannot
// cover the interest of all loans together.
type InsufficientPaymentError struct {
	Loan     int
	Month    int
	Interest float64
	Payment  float64
}

func (e *InsufficientPaymentError) Error() string {
	if e.Loan < 0 {
		return fmt.Sprintf("month %d: payment %.2f does not cover interest %.2f", e.Month, e.Payment, e.Interest)
	}
	return fmt.Sprintf("loan %d, month %d: payment %.2f does not cover interest %.2f", e.Loan, e.Month, e.Payment, e.Interest)
}

func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}

func horizonError(maxMonths int) error {
	return fmt.Errorf("%w: still owing after %d months; the payment covers interest, but the payoff takes longer than the month limit", ErrHorizonExceeded, maxMonths)
}
