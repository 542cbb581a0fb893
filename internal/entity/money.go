package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency the catalog is priced in.
const DefaultCurrency = "INR"

// minorExponent is the number of minor-unit digits for every supported currency.
const minorExponent = 2

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Money is an amount in integer minor units (paise for INR) plus its currency code.
// Amounts that are added together are assumed to share a currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney builds a Money from whole major units, e.g. NewMoney(2400, "INR") is ₹2,400.
func NewMoney(major int64, currency string) Money {
	return Money{Amount: major * 100, Currency: currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) Add(other Money) Money {
	cur := m.Currency
	if cur == "" {
		cur = other.Currency
	}
	return Money{Amount: saturatingAdd(m.Amount, other.Amount), Currency: cur}
}

func (m Money) Sub(other Money) Money {
	return m.Add(Money{Amount: -other.Amount, Currency: other.Currency})
}

// Mul scales the amount by n, saturating at the int64 bounds.
func (m Money) Mul(n int) Money {
	a, b := m.Amount, int64(n)
	if a == 0 || b == 0 {
		return Money{Currency: m.Currency}
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		if (a < 0) != (b < 0) {
			p = math.MinInt64
		} else {
			p = math.MaxInt64
		}
	}
	return Money{Amount: p, Currency: m.Currency}
}

func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// Major returns the whole major-unit part of the amount.
func (m Money) Major() int64 {
	return m.Amount / 100
}

// Format renders the amount for display: currency symbol, Indian digit
// grouping, and fraction digits only when the minor part is non-zero.
func (m Money) Format() string {
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	symbol, ok := currencySymbols[m.Currency]
	if !ok {
		symbol = m.Currency + " "
	}

	out := sign + symbol + groupDigits(amount/100)
	if minor := amount % 100; minor != 0 {
		out += fmt.Sprintf(".%02d", minor)
	}
	return out
}

func (m Money) String() string {
	return m.Format()
}

// groupDigits groups the last three digits, then pairs (1,00,000).
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// ErrInvalidPrice is returned by ParseMoney for text that is not a price.
var ErrInvalidPrice = errors.New("invalid price")

// ParseMoney parses display price text such as "₹2,400" or "INR 1,899.50".
// Unlike stripping every non-digit, it rejects anything that is not a plain
// non-negative decimal with at most two fraction digits.
func ParseMoney(text, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	s := strings.TrimSpace(text)
	for _, sym := range currencySymbols {
		s = strings.TrimPrefix(s, sym)
	}
	for _, prefix := range []string{currency, strings.ToLower(currency), "Rs.", "Rs"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(s)

	if s == "" {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q: %v", ErrInvalidPrice, text, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, text)
	}

	minor := d.Shift(minorExponent)
	if !minor.Equal(minor.Truncate(0)) {
		return Money{}, fmt.Errorf("%w: %q has more than %d fraction digits", ErrInvalidPrice, text, minorExponent)
	}

	if minor.GreaterThan(maxMinor) {
		return Money{}, fmt.Errorf("%w: %q is too large", ErrInvalidPrice, text)
	}

	return Money{Amount: minor.IntPart(), Currency: currency}, nil
}

// MustParseMoney is ParseMoney for compile-time catalog data.
func MustParseMoney(text string) Money {
	m, err := ParseMoney(text, DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return m
}

// UnmarshalJSON accepts the structured form, the legacy display string
// ("₹2,400") that older stored carts carry, and the bare number of major
// units older stored orders use for their total.
func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		parsed, err := ParseMoney(string(data), DefaultCurrency)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		parsed, err := ParseMoney(text, DefaultCurrency)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	type plain Money
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Money(p)
	return nil
}
