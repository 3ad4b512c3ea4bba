// Package money holds the decimal helpers shared by retention and charge
// issuance. Every monetary value is a decimal.Decimal with two places.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Places int32 = 2

var (
	ErrEmptyAmount   = errors.New("amount is empty")
	ErrInvalidAmount = errors.New("amount is not a number")

	hundred = decimal.NewFromInt(100)
)

// Parse accepts Brazilian and US notation: "1500.00", "1500,00",
// "1.500,00" and "1,500.00". When both separators appear the last one is the
// decimal point. A lone separator followed by exactly three digits, as in
// "1.500", could be either and is rejected. NaN and infinities are rejected
// by the decimal parser.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	normalized, ok := normalize(s)
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// normalize rewrites s with "." as the only separator.
func normalize(s string) (string, bool) {
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}

	dot, comma := strings.LastIndexByte(s, '.'), strings.LastIndexByte(s, ',')
	switch {
	case dot < 0 && comma < 0:
		return sign + s, true
	case dot >= 0 && comma >= 0:
		decimalAt, thousands := dot, byte(',')
		if comma > dot {
			decimalAt, thousands = comma, '.'
		}
		whole, frac := s[:decimalAt], s[decimalAt+1:]
		if !grouped(whole, thousands) || strings.ContainsAny(frac, ".,") {
			return "", false
		}
		return sign + strings.ReplaceAll(whole, string(thousands), "") + "." + frac, true
	}

	sep := byte('.')
	if comma >= 0 {
		sep = ','
	}
	if strings.Count(s, string(sep)) > 1 {
		if !grouped(s, sep) {
			return "", false
		}
		return sign + strings.ReplaceAll(s, string(sep), ""), true
	}

	whole, frac := s[:strings.IndexByte(s, sep)], s[strings.IndexByte(s, sep)+1:]
	if len(frac) == 3 && len(whole) > 0 && whole[0] != '0' && grouped(whole+string(sep)+frac, sep) {
		return "", false
	}
	return sign + whole + "." + frac, true
}

// grouped reports whether s is digits split by sep into a leading group of one
// to three digits followed by groups of exactly three.
func grouped(s string, sep byte) bool {
	groups := strings.Split(s, string(sep))
	for i, g := range groups {
		if g == "" || !digits(g) {
			return false
		}
		if i == 0 && len(g) > 3 && len(groups) > 1 {
			return false
		}
		if i > 0 && len(g) != 3 {
			return false
		}
	}
	return true
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Round rounds half away from zero, which is half-up for the positive
// amounts this package deals with.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns amount * rate / 100 rounded to cents.
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round(amount.Mul(rate).Div(hundred))
}

// Cents renders the amount as an integer number of cents, used by the
// barcode and PIX payload fields.
func Cents(d decimal.Decimal) int64 {
	return Round(d).Shift(int32(Places)).IntPart()
}
