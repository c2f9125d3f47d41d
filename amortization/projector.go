package amortization

// Projection is the outcome of paying down a single loan.
type Projection struct {
	TotalInterest float64 `json:"total_interest"`
	Months        int     `json:"months"`
}

// ProjectSingleLoan pays basePayment+extraPayment every month until the
// balance reaches zero. It fails with ErrInsufficientPayment as soon as a
// month's payment no longer covers that month's interest, and with
// ErrHorizonExceeded when WithMaxMonths is given and the loan is still open
// after that many months. The allocation mode does not apply to one loan.
func ProjectSingleLoan(
	balance float64,
	annualRatePercent float64,
	basePayment float64,
	extraPayment float64,
	opts ...Option,
) (Projection, error) {

	o := buildOptions(opts)
	r := monthlyRate(annualRatePercent)
	payment := basePayment + extraPayment

	var p Projection
	for balance > 0 {
		if o.MaxMonths > 0 && p.Months >= o.MaxMonths {
			return Projection{}, horizonError(o.MaxMonths)
		}
		interest := balance * r
		principal := payment - interest
		if principal <= 0 {
			return Projection{}, &InsufficientPaymentError{
				Loan:     -1,
				Month:    p.Months + 1,
				Interest: interest,
				Payment:  payment,
			}
		}
		p.TotalInterest += interest
		balance -= principal
		p.Months++
	}

	return p, nil
}
