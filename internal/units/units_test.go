package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid meters", Meters, true},
		{"valid feet", Feet, true},
		{"invalid unit", "yards", false},
		{"empty unit", "", false},
		{"uppercase FEET", "FEET", false}, // Case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValid(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}

func TestConvertLength(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		unit     string
		expected float64
	}{
		{"0 m to meters", 0.0, Meters, 0.0},
		{"2 m to meters", 2.0, Meters, 2.0},
		{"1 m to feet", 1.0, Feet, 3.28084},
		{"4 m to feet", 4.0, Feet, 13.12336},
		{"unknown unit falls back to meters", 3.0, "yards", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertLength(tt.meters, tt.unit)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ConvertLength(%f, %s) = %f, want %f", tt.meters, tt.unit, result, tt.expected)
			}
		})
	}
}

func TestToMeters_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 2.5, 13.12336} {
		got := ToMeters(ConvertLength(v, Feet), Feet)
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip of %f = %f", v, got)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.0, 2.0},
		{6.56168, 6.56},
		{3.28084, 3.28},
		{21.415, 21.42},
		{-0.004, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", Feet},
		{"en-GB", Feet},
		{"en_US", Feet},
		{"en-us", Feet},
		{"en", Meters}, // region is only guessed, not explicit
		{"en-AU", Meters},
		{"de-DE", Meters},
		{"fr", Meters},
		{"", Meters},
		{"not a locale!!", Meters},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := ForLocale(tt.locale); got != tt.want {
				t.Errorf("ForLocale(%q) = %s, want %s", tt.locale, got, tt.want)
			}
		})
	}
}

func TestPreferredLocale(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en-US,en;q=0.9", "en-US"},
		{"de;q=0.5, en-GB;q=0.8", "en-GB"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := PreferredLocale(tt.header); got != tt.want {
				t.Errorf("PreferredLocale(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
