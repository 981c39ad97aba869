// Package money converts between integer minor units (cents) and the decimal
// strings users read and type. It is the only place that rounds or formats
// amounts; every view that shows a balance goes through it.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when an account carries no currency code.
const DefaultCurrency = "USD"

var (
	// ErrInvalidAmount marks input that is not a strictly positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooManyDecimals marks input with a fraction finer than one minor unit.
	ErrTooManyDecimals = errors.New("amount has more than two decimal places")
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	printer  = message.NewPrinter(language.AmericanEnglish)
)

// Format renders minor units as US dollars, e.g. 123456 -> "$1,234.56".
func Format(minor int64) string {
	return FormatCurrency(minor, DefaultCurrency)
}

// FormatCurrency renders minor units in the given ISO currency. Codes without
// a known symbol are written as a prefix: "CHF 1,234.56". Every int64 is
// formatted exactly.
func FormatCurrency(minor int64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}

	neg := minor < 0
	mag := uint64(minor)
	if neg {
		mag = uint64(-(minor + 1)) + 1
	}

	body := printer.Sprintf("%d.%02d", mag/100, mag%100)

	prefix := code + " "
	if s, ok := symbols[code]; ok {
		prefix = s
	}
	if neg {
		return "-" + prefix + body
	}
	return prefix + body
}

// ToMinorUnits parses a user-entered decimal string and returns the amount in
// minor units, rounding value*100 half away from zero. Empty, non-numeric,
// non-positive and out-of-range input yields ErrInvalidAmount, as does input
// that rounds down to zero minor units.
func ToMinorUnits(s string) (int64, error) {
	d, err := parsePositive(s)
	if err != nil {
		return 0, err
	}
	return toMinor(d.Mul(hundred).Round(0), s)
}

// ParseTransferAmount applies the transfer form policy: the amount must be
// valid for ToMinorUnits and must be a whole number of minor units, so
// "12.345" is rejected with ErrTooManyDecimals while "12.340" is accepted.
func ParseTransferAmount(s string) (int64, error) {
	d, err := parsePositive(s)
	if err != nil {
		return 0, err
	}
	scaled := d.Mul(hundred)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%q: %w", s, ErrTooManyDecimals)
	}
	return toMinor(scaled, s)
}

func parsePositive(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return decimal.Zero, fmt.Errorf("empty input: %w", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%q is not positive: %w", s, ErrInvalidAmount)
	}
	return d, nil
}

func toMinor(scaled decimal.Decimal, input string) (int64, error) {
	if scaled.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("%q is out of range: %w", input, ErrInvalidAmount)
	}
	m := scaled.IntPart()
	if m <= 0 {
		return 0, fmt.Errorf("%q rounds to zero: %w", input, ErrInvalidAmount)
	}
	return m, nil
}
