package reit

import (
	"math/big"
	"strings"
)

// One is the 18-decimal fixed-point unit (1e18). Share amounts, prices and
// native-currency values are all carried at this scale on chain.
var One = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ParseUnits converts a human decimal string ("1", "0.5", "1.5") into an
// 18-decimal fixed-point integer. Input must be an unsigned decimal number;
// more than 18 fractional digits cannot be represented and are rejected
// rather than silently truncated.
func ParseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errInvalid("amount is empty")
	}
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, errInvalid("amount %q is not a number", s)
	}
	if hasDot && fracPart == "" {
		return nil, errInvalid("amount %q is not a number", s)
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return nil, errInvalid("amount %q is not a number", s)
	}
	if len(fracPart) > 18 {
		return nil, errInvalid("amount %q has more than 18 decimal places", s)
	}

	out := new(big.Int)
	if intPart != "" {
		out.SetString(intPart, 10)
	}
	out.Mul(out, One)
	if fracPart != "" {
		frac := new(big.Int)
		frac.SetString(fracPart+strings.Repeat("0", 18-len(fracPart)), 10)
		out.Add(out, frac)
	}
	return out, nil
}

// ParsePositiveUnits is ParseUnits plus a strict positivity check, the shape
// every request amount must have.
func ParsePositiveUnits(s string) (*big.Int, error) {
	v, err := ParseUnits(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() <= 0 {
		return nil, errInvalid("amount must be greater than zero")
	}
	return v, nil
}

// FormatUnits renders an 18-decimal fixed-point integer as a decimal string
// with trailing zeros trimmed. Negative values keep their sign (the solvency
// deficit is signed).
func FormatUnits(v *big.Int) string {
	if v == nil {
		return "0"
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	q, r := new(big.Int).QuoRem(abs, One, new(big.Int))

	out := q.String()
	if r.Sign() != 0 {
		frac := r.String()
		frac = strings.Repeat("0", 18-len(frac)) + frac
		frac = strings.TrimRight(frac, "0")
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
