// Package core holds the expense domain types shared by the HTTP layer
// and the storage adapter.
//
// This file contains money parsing and JSON handling. Amounts travel as
// plain decimal numbers on the wire and are held as signed cents
// internally so arithmetic and storage never touch floating point.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is a currency-agnostic amount in signed cents.
type Money struct {
	Cents int64
}

// ParseDecimal converts a decimal string to Money with half-up rounding
// on the third decimal place.
//
// Examples:
//
//	ParseDecimal("42.50")  -> 4250 cents
//	ParseDecimal("-3.1")   -> -310 cents
//	ParseDecimal("12.346") -> 1235 cents (rounds up)
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" || s == "." {
		return Money{}, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	// First two fractional digits, half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	const maxSafe = math.MaxInt64 / 100
	if iv > maxSafe || (iv == maxSafe && fracCents > math.MaxInt64%100) {
		return Money{}, ErrInvalidAmount
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return Money{Cents: cents}, nil
}

// String renders the amount as a plain decimal with two places, e.g.
// "42.50" or "-3.10".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON emits the amount as a JSON number literal (42.50),
// matching the wire contract where amount is a decimal, not cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number (42.5) or a quoted decimal
// string ("42.50"). Exponent notation is rejected as malformed.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
