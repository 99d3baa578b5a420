package pricing

import (
	"regexp"
	"strconv"
)

const (
	fallbackDurationMins = 60
	fallbackDistanceKm   = 10.0
)

var (
	hoursPattern    = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern  = regexp.MustCompile(`(\d+)\s*m`)
	distancePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseDurationToMins converts strings such as "2h 30m", "45m" or "8h" to minutes.
// Text without an hour or minute token yields 60.
func ParseDurationToMins(text string) int {
	h := hoursPattern.FindStringSubmatch(text)
	m := minutesPattern.FindStringSubmatch(text)
	if h == nil && m == nil {
		return fallbackDurationMins
	}

	total := 0
	if h != nil {
		n, _ := strconv.Atoi(h[1])
		total += n * 60
	}
	if m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	return total
}

// ParseDistanceToKm returns the first numeric token of text, or 10 km when there is none.
func ParseDistanceToKm(text string) float64 {
	tok := distancePattern.FindString(text)
	if tok == "" {
		return fallbackDistanceKm
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return fallbackDistanceKm
	}
	return v
}
