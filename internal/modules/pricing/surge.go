package pricing

import (
	"math/rand"
	"regexp"
	"strconv"
)

const (
	rushBaseSurge   = 1.4
	rushJitterRange = 0.4
	nightSurge      = 1.2
	noSurge         = 1.0
)

var leadingHour = regexp.MustCompile(`^\s*(\d{1,2})`)

// SurgeCalculator derives a time-of-day multiplier. Rush-hour values are jittered
// with the injected RandomSource, so identical inputs may yield different results.
type SurgeCalculator struct {
	rnd RandomSource
}

// NewSurgeCalculator returns a calculator drawing jitter from rnd, or from the
// global math/rand source when rnd is nil.
func NewSurgeCalculator(rnd RandomSource) *SurgeCalculator {
	if rnd == nil {
		rnd = RandomFunc(rand.Float64)
	}
	return &SurgeCalculator{rnd: rnd}
}

// Calculate returns 1.4–1.8 for 08–11 and 17–20, 1.2 for 22–06 and 1.0 otherwise.
func (c *SurgeCalculator) Calculate(timeString string) float64 {
	hour, ok := parseHour(timeString)
	if !ok {
		return noSurge
	}
	switch {
	case (hour >= 8 && hour <= 11) || (hour >= 17 && hour <= 20):
		return rushBaseSurge + c.rnd.Float64()*rushJitterRange
	case hour >= 22 || hour <= 6:
		return nightSurge
	default:
		return noSurge
	}
}

func parseHour(timeString string) (int, bool) {
	m := leadingHour.FindStringSubmatch(timeString)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return h, true
}
