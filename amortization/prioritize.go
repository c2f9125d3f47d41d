package amortization

import (
	"fmt"
	"sort"
	"strings"
)

type Strategy string

const (
	Avalanche Strategy = "avalanche" // highest rate first
	Snowball  Strategy = "snowball"  // smallest balance first
	None      Strategy = "none"
)

// ParseStrategy accepts a strategy name case-insensitively. An empty name
// means None.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Avalanche:
		return Avalanche, nil
	case Snowball:
		return Snowball, nil
	case None, "":
		return None, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Prioritize returns a reordered copy of loans. Ties keep their input order.
func Prioritize(loans []Loan, strategy Strategy) []Loan {
	ordered := make([]Loan, len(loans))
	copy(ordered, loans)

	switch strategy {
	case Avalanche:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRatePercent > ordered[j].AnnualRatePercent
		})
	case Snowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	}
	return ordered
}
