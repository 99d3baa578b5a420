// README: Cab tariff definitions and fare quote returned by the pricing engine.
package pricing

// RateCard is a per-city cab tariff. Amounts are in INR.
type RateCard struct {
	City           string  `json:"city"`
	BaseFare       float64 `json:"baseFare"`
	PerKm          float64 `json:"perKm"`
	PerMin         float64 `json:"perMin"`
	MinFare        float64 `json:"minFare"`
	NightSurcharge float64 `json:"nightSurcharge"`
}

// CabQuote is the output of CalculateCabPrice.
type CabQuote struct {
	Price     int64   `json:"price"`
	Currency  string  `json:"currency"`
	Surge     float64 `json:"surge"`
	Breakdown string  `json:"breakdown"`
}

// RandomSource yields floats in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts a plain function to RandomSource.
type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }

const currencyINR = "INR"
