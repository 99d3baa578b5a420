// README: Pricing service computes cab fares from rate cards and time-of-day surge.
package pricing

import (
	"fmt"
	"math"

	"oneyatra/internal/types"
)

type Service struct {
	surge *SurgeCalculator
}

func NewService(surge *SurgeCalculator) *Service {
	if surge == nil {
		surge = NewSurgeCalculator(nil)
	}
	return &Service{surge: surge}
}

// CalculateCabPrice prices a cab trip as (base + km*perKm + min*perMin) * surge,
// floored at the city's minimum fare and rounded to whole rupees.
func (s *Service) CalculateCabPrice(distanceKm, durationMins float64, city, timeString string) CabQuote {
	card := GetRateCard(city)
	surge := s.surge.Calculate(timeString)

	distanceKm = math.Max(distanceKm, 0)
	durationMins = math.Max(durationMins, 0)

	raw := (card.BaseFare + distanceKm*card.PerKm + durationMins*card.PerMin) * surge
	price := int64(math.Round(math.Max(raw, card.MinFare)))

	return CabQuote{
		Price:     price,
		Currency:  currencyINR,
		Surge:     surge,
		Breakdown: breakdown(card, distanceKm, durationMins, surge, price),
	}
}

func breakdown(card RateCard, km, mins, surge float64, price int64) string {
	total := types.Money{Amount: price, Currency: currencyINR}
	s := fmt.Sprintf("Base ₹%.0f + %.1f km × ₹%.0f/km + %.0f min × ₹%.2f/min",
		card.BaseFare, km, card.PerKm, mins, card.PerMin)
	if surge > 1 {
		s += fmt.Sprintf(" × %.2fx surge", surge)
	}
	s += fmt.Sprintf(" = %s (%s tariff, min ₹%.0f)", total, card.City, card.MinFare)
	return s
}
