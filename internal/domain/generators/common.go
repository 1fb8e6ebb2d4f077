package generators

import (
	"errors"
	"fmt"
)

// ErrRetryBudgetExhausted is returned when a rejection loop discards more
// draws than its budget allows.
var ErrRetryBudgetExhausted = errors.New("retry budget exhausted")

// retryHeadroom is the fixed number of extra attempts granted on top of 2n.
const retryHeadroom = 1024

// Source is the slice of the seeded stream the random generators draw from.
type Source interface {
	IntRange(lo, hi int) int
	Float64() float64
	Bit() bool
}

// attemptBudget bounds a rejection loop that must collect n values.
func attemptBudget(n int) int {
	return 2*n + retryHeadroom
}

func budgetError(kind string, n, collected, attempts int) error {
	return fmt.Errorf("%s: collected %d of %d values after %d attempts: %w",
		kind, collected, n, attempts, ErrRetryBudgetExhausted)
}
