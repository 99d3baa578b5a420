package pricing

import "strings"

var (
	delhiCard     = RateCard{City: "Delhi", BaseFare: 50, PerKm: 14, PerMin: 1.5, MinFare: 100, NightSurcharge: 1.25}
	mumbaiCard    = RateCard{City: "Mumbai", BaseFare: 60, PerKm: 18, PerMin: 2, MinFare: 120, NightSurcharge: 1.25}
	bangaloreCard = RateCard{City: "Bangalore", BaseFare: 55, PerKm: 16, PerMin: 1.75, MinFare: 110, NightSurcharge: 1.2}
	hyderabadCard = RateCard{City: "Hyderabad", BaseFare: 50, PerKm: 15, PerMin: 1.5, MinFare: 100, NightSurcharge: 1.2}
	chennaiCard   = RateCard{City: "Chennai", BaseFare: 50, PerKm: 15, PerMin: 1.5, MinFare: 100, NightSurcharge: 1.2}
	kolkataCard   = RateCard{City: "Kolkata", BaseFare: 45, PerKm: 13, PerMin: 1.25, MinFare: 90, NightSurcharge: 1.2}
	puneCard      = RateCard{City: "Pune", BaseFare: 50, PerKm: 15, PerMin: 1.5, MinFare: 100, NightSurcharge: 1.2}
	defaultCard   = RateCard{City: "Default", BaseFare: 50, PerKm: 15, PerMin: 1.5, MinFare: 100, NightSurcharge: 1.2}
)

type cityRule struct {
	variants []string
	card     RateCard
}

// cityRules is evaluated in order; the first rule with a contained variant wins.
var cityRules = []cityRule{
	{variants: []string{"Delhi", "Noida", "Gurgaon", "Gurugram", "Ghaziabad", "Faridabad"}, card: delhiCard},
	{variants: []string{"Mumbai", "Thane", "Bombay"}, card: mumbaiCard},
	{variants: []string{"Bangalore", "Bengaluru"}, card: bangaloreCard},
	{variants: []string{"Hyderabad", "Secunderabad"}, card: hyderabadCard},
	{variants: []string{"Chennai"}, card: chennaiCard},
	{variants: []string{"Kolkata", "Howrah"}, card: kolkataCard},
	{variants: []string{"Pune"}, card: puneCard},
}

// GetRateCard resolves a free-text city name to a tariff using case-sensitive
// substring matching. Unknown cities get the default card.
func GetRateCard(city string) RateCard {
	for _, rule := range cityRules {
		for _, v := range rule.variants {
			if strings.Contains(city, v) {
				return rule.card
			}
		}
	}
	return defaultCard
}
