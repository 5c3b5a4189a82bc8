package engine

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase renders an archetype key for display, e.g. "minor_threat" ->
// "Minor Threat". A Caser is stateful, so one is built per call.
func titleCase(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// scale multiplies v and rounds half away from zero.
func scale(v int, mult float64) int {
	return int(math.Round(float64(v) * mult))
}
