package guard

import (
	"math"

	"github.com/pkordes/guarddiv/internal/domain"
)

// Divide returns dividend / divisor truncated toward zero.
// A zero divisor yields *domain.DivisionByZeroError; math.MinInt64 / -1
// yields domain.ErrOverflow because the result does not fit in an int64.
func Divide(dividend, divisor int64) (int64, error) {
	if divisor == 0 {
		return 0, domain.NewDivisionByZeroError()
	}
	if dividend == math.MinInt64 && divisor == -1 {
		return 0, domain.ErrOverflow
	}
	return dividend / divisor, nil
}
