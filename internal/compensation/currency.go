package compensation

import (
	"math"

	compensationerrors "go-directory/internal/compensation/errors"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// go-money keeps amounts as int64 minor units.
var maxSalaryCents = decimal.NewFromInt(math.MaxInt64)

// FormatSalary renders amount as US dollars, rounding half-even to cents:
// 123456.3 becomes "$123,456.30". Amounts whose cents do not fit in an int64
// are rejected with ErrSalaryOutOfRange.
func FormatSalary(amount decimal.Decimal) (string, error) {
	cents := amount.RoundBank(2).Shift(2)
	if cents.Abs().GreaterThan(maxSalaryCents) {
		return "", compensationerrors.ErrSalaryOutOfRange
	}
	return money.New(cents.IntPart(), money.USD).Display(), nil
}
