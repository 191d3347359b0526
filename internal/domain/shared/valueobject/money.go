package valueobject

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount of Chilean pesos. CLP has no minor unit, so amounts are
// whole integers and never floats. Operations never lose the sign: negative
// amounts are meaningful (trade-in direction, overpaid ledgers).
type Money int64

// Zero is the zero peso amount
const Zero Money = 0

// clp formats integers with the es-CL thousands separator (".").
var clp = message.NewPrinter(language.MustParse("es-CL"))

// NewMoney creates Money from an int64 peso amount
func NewMoney(amount int64) Money {
	return Money(amount)
}

// ParseAmount parses free-form operator input into Money. Every non-digit rune
// is stripped and the remainder is read as an unsigned peso amount, so
// "$1.250.000", "1250000" and "1.250.000 CLP" all parse to the same value.
// Empty or digit-free input yields zero. Lossy on purpose: there is no way to
// enter a fraction of a peso.
func ParseAmount(text string) Money {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Zero
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return Zero
	}
	return Money(n)
}

// Int64 returns the raw peso amount
func (m Money) Int64() int64 {
	return int64(m)
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m == 0
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m > 0
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m < 0
}

// Add returns the sum of both amounts
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference. The result may be negative; callers that need a
// display value clamp explicitly.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Neg returns the amount with the sign reversed
func (m Money) Neg() Money {
	return -m
}

// Abs returns the absolute value
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// ClampZero returns the amount floored at zero. Used only for display
// projections; persisted values keep their sign.
func (m Money) ClampZero() Money {
	if m < 0 {
		return Zero
	}
	return m
}

// DivideEven splits the amount into count equal parts, truncating toward zero.
// Every part gets the identical truncated value and no part absorbs the
// remainder, so count*part may fall short of the original by up to count-1
// pesos. Installment schedules depend on exactly this behavior.
func (m Money) DivideEven(count int) (Money, error) {
	if count <= 0 {
		return Zero, fmt.Errorf("count must be positive, got %d", count)
	}
	part := decimal.NewFromInt(int64(m)).
		Div(decimal.NewFromInt(int64(count))).
		Truncate(0)
	return Money(part.IntPart()), nil
}

// Decimal returns the amount as a decimal for ratio math (percentages,
// averages). Stored amounts never round-trip through decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// Format groups the digits with the es-CL thousands separator. No currency
// symbol: callers prefix "$".
func (m Money) Format() string {
	return clp.Sprintf("%d", int64(m))
}

// String implements fmt.Stringer
func (m Money) String() string {
	return m.Format()
}

// Value implements driver.Valuer for database storage
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *Money) Scan(value any) error {
	if value == nil {
		*m = Zero
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = Money(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid money value %q: %w", string(v), err)
		}
		*m = Money(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid money value %q: %w", v, err)
		}
		*m = Money(n)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}
