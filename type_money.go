package ledgers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// The amount grammar: up to thirteen integer digits, at most two fraction
// digits. ".5" is valid, "12.345" is not.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]{1,13}\.[0-9]{0,2}$`),
	regexp.MustCompile(`^[0-9]{1,13}$`),
	regexp.MustCompile(`^\.[0-9]{1,2}$`),
}

// ParseMoney parses a user-entered amount string into a Money in the given
// currency. The string must match the amount grammar, which keeps magnitudes
// below 10^13 and fractions to cents; anything else is ErrInvalidAmount.
func ParseMoney(s, currency string) (Money, error) {
	for _, re := range amountPatterns {
		if !re.MatchString(s) {
			continue
		}
		// The grammar admits "3500." and ".5"; normalize both for the
		// decimal parser.
		normalized := strings.TrimSuffix(s, ".")
		if strings.HasPrefix(normalized, ".") {
			normalized = "0" + normalized
		}
		value, err := decimal.NewFromString(normalized)
		if err != nil {
			return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		return Money{value: value, cur: currency}, nil
	}
	return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the display representation of the money value, with the
// currency symbol and a fixed number of fraction digits (two for USD).
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the bare value with exactly two fraction digits and no
// currency symbol, as transaction records display it.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

// Simple wrappers around the underlying decimal.

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                 { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                 { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
