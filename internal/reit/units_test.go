package reit

import (
	"math/big"
	"testing"
)

func TestParseUnits(t *testing.T) {
	cases := map[string]string{
		"1":       "1000000000000000000",
		"1.5":     "1500000000000000000",
		"0.001":   "1000000000000000",
		"0.5":     "500000000000000000",
		"0":       "0",
		"42.000001": "42000001000000000000",
	}
	for in, want := range cases {
		got, err := ParseUnits(in)
		if err != nil {
			t.Fatalf("ParseUnits(%q) returned error: %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("ParseUnits(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseUnitsRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", " ", "abc", "1.2.3", "1,5", "0x10", ".", "1.", "-1", "1e18", "1.5ether"} {
		if _, err := ParseUnits(in); err == nil {
			t.Fatalf("ParseUnits(%q) accepted invalid input", in)
		}
	}
}

func TestParseUnitsRejectsSubWeiPrecision(t *testing.T) {
	if _, err := ParseUnits("0.1234567890123456789"); err == nil {
		t.Fatal("expected 19 fractional digits to be rejected")
	}
	// 18 digits is the exact scale and must pass.
	v, err := ParseUnits("0.123456789012345678")
	if err != nil {
		t.Fatalf("18 fractional digits rejected: %v", err)
	}
	if v.String() != "123456789012345678" {
		t.Fatalf("unexpected scaled value %s", v)
	}
}

func TestParsePositiveUnits(t *testing.T) {
	if _, err := ParsePositiveUnits("0"); err == nil {
		t.Fatal("zero must be rejected")
	}
	if _, err := ParsePositiveUnits("0.0"); err == nil {
		t.Fatal("zero must be rejected")
	}
	v, err := ParsePositiveUnits("2.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "2500000000000000000" {
		t.Fatalf("unexpected scaled value %s", v)
	}
}

func TestFormatUnits(t *testing.T) {
	cases := map[string]string{
		"1000000000000000000": "1",
		"1500000000000000000": "1.5",
		"1500000000000000":    "0.0015",
		"0":                   "0",
		"1":                   "0.000000000000000001",
	}
	for in, want := range cases {
		v, _ := new(big.Int).SetString(in, 10)
		if got := FormatUnits(v); got != want {
			t.Fatalf("FormatUnits(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUnitsNegative(t *testing.T) {
	v, _ := new(big.Int).SetString("-2500000000000000000", 10)
	if got := FormatUnits(v); got != "-2.5" {
		t.Fatalf("FormatUnits deficit = %q, want -2.5", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "0.0015", "123.456", "0.000000000000000001"} {
		v, err := ParseUnits(s)
		if err != nil {
			t.Fatalf("ParseUnits(%q): %v", s, err)
		}
		if got := FormatUnits(v); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}
