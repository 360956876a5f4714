// Package units provides the length units used for room measurements and
// the locale rules that pick between them
package units

import (
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Unit constants
const (
	Meters = "meters"
	Feet   = "feet"
)

// FeetPerMeter is the fixed scale factor used for imperial display
const FeetPerMeter = 3.28084

// ValidUnits contains all valid unit values
var ValidUnits = []string{Meters, Feet}

// imperialRegions are the English-speaking regions shown in feet
var imperialRegions = map[string]bool{
	"US": true,
	"GB": true,
}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ConvertLength converts a length in meters to the target units
// Measurements are always computed in meters
func ConvertLength(lengthMeters float64, targetUnits string) float64 {
	switch targetUnits {
	case Feet:
		return lengthMeters * FeetPerMeter
	default:
		return lengthMeters
	}
}

// ToMeters converts a length expressed in the given units back to meters
func ToMeters(length float64, fromUnits string) float64 {
	switch fromUnits {
	case Feet:
		return length / FeetPerMeter
	default:
		return length
	}
}

// CentimetersToMeters converts catalog dimensions (cm) to meters
func CentimetersToMeters(cm float64) float64 {
	return cm / 100
}

// Round2 rounds to two decimal places, the precision used in every API response
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ForLocale returns the display units for a BCP 47 locale such as "en-US".
// Only English with an explicit US or GB region is imperial; everything
// else, including unparseable input, is metric.
func ForLocale(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return Meters
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Meters
	}

	base, _ := tag.Base()
	region, confidence := tag.Region()
	if base.String() != "en" || confidence != language.Exact {
		return Meters
	}

	if imperialRegions[region.String()] {
		return Feet
	}
	return Meters
}

// PreferredLocale returns the highest weighted tag of an Accept-Language
// header, or an empty string when the header is missing or malformed
func PreferredLocale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
