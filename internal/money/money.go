// Package money converts between user-entered decimal amounts and minor units.
//
// Amounts inside the ledger are int64 counts of the smallest currency unit.
// Decimal strings from callers ("12.34", "12,34") are parsed exactly with
// shopspring/decimal and rounded half-up to two places.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/sharemates/internal/calculator"
)

// ErrInvalidAmount is returned for unparseable, non-positive or oversized amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// Exponent is the number of minor-unit digits (cents, paise).
const Exponent = 2

var maxMinor = decimal.NewFromInt(calculator.MaxAmount)

// ParseMinorUnits converts a decimal string to minor units.
//
//	ParseMinorUnits("12.34")  -> 1234
//	ParseMinorUnits("12,345") -> 1235 (half-up)
//	ParseMinorUnits("108")    -> 10800
func ParseMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	minor := d.Round(Exponent).Shift(Exponent)
	if !minor.IsPositive() || minor.GreaterThan(maxMinor) {
		return 0, ErrInvalidAmount
	}
	return minor.IntPart(), nil
}

// Format renders minor units as a fixed two-decimal string, e.g. 1234 -> "12.34".
func Format(minor int64) string {
	return decimal.New(minor, -Exponent).StringFixed(Exponent)
}
