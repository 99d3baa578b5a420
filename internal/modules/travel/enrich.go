// README: Enrichment pipeline attaching cab fares, deep links, price trends and live status to options.
package travel

import (
	"fmt"
	"math/rand"

	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/pricing"
)

type Enricher struct {
	pricing *pricing.Service
	rnd     pricing.RandomSource
}

// NewEnricher returns an Enricher. rnd drives the simulated trend and status;
// nil uses the global math/rand source.
func NewEnricher(pricingSvc *pricing.Service, rnd pricing.RandomSource) *Enricher {
	if rnd == nil {
		rnd = pricing.RandomFunc(rand.Float64)
	}
	if pricingSvc == nil {
		pricingSvc = pricing.NewService(pricing.NewSurgeCalculator(rnd))
	}
	return &Enricher{pricing: pricingSvc, rnd: rnd}
}

// ProcessOption returns an enriched copy of opt. Legs are enriched first and
// share the parent's origin, time and destination.
func (e *Enricher) ProcessOption(opt TravelOption, origin, timeStr, destination string) TravelOption {
	if len(opt.Legs) > 0 {
		legs := make([]TravelOption, len(opt.Legs))
		for i, leg := range opt.Legs {
			legs[i] = e.ProcessOption(leg, origin, timeStr, destination)
		}
		opt.Legs = legs
	}
	opt.Features = append([]string(nil), opt.Features...)

	if opt.Mode == ModeCab && opt.Distance != "" {
		km := pricing.ParseDistanceToKm(opt.Distance)
		mins := pricing.ParseDurationToMins(opt.Duration)
		quote := e.pricing.CalculateCabPrice(km, float64(mins), origin, timeStr)

		opt.Price = float64(quote.Price)
		opt.Currency = quote.Currency
		opt.SurgeMultiplier = quote.Surge
		opt.FareBreakdown = quote.Breakdown
		if quote.Surge > 1 {
			opt.Features = append(opt.Features, fmt.Sprintf("Surge %.1fx", quote.Surge))
		} else {
			opt.Features = append(opt.Features, "Standard Rate")
		}
	}

	link := deeplink.Generate(opt.Provider, string(opt.Mode), origin, destination)
	opt.DeepLink = link.URL
	opt.DeepLinkFallback = link.FallbackURL
	opt.AndroidIntent = link.AndroidIntent

	opt.PriceTrend = e.priceTrend(opt.Mode)
	opt.RealTimeStatus = e.realTimeStatus(opt.Mode)
	return opt
}

// ProcessResponse enriches outbound options with the search context and return
// options with origin and destination swapped.
func (e *Enricher) ProcessResponse(resp RouteResponse, params SearchParams) RouteResponse {
	out := resp
	out.Options = e.processAll(resp.Options, params.Origin, params.Time, params.Destination)
	if len(resp.ReturnOptions) > 0 {
		returnTime := params.ReturnTime
		if returnTime == "" {
			returnTime = params.Time
		}
		out.ReturnOptions = e.processAll(resp.ReturnOptions, params.Destination, returnTime, params.Origin)
	}
	return out
}

func (e *Enricher) processAll(opts []TravelOption, origin, timeStr, destination string) []TravelOption {
	out := make([]TravelOption, len(opts))
	for i, o := range opts {
		out[i] = e.ProcessOption(o, origin, timeStr, destination)
	}
	return out
}

func (e *Enricher) priceTrend(mode Mode) PriceTrend {
	r := e.rnd.Float64()
	switch mode {
	case ModeFlight, ModeTrain:
		switch {
		case r < 0.6:
			return TrendUp
		case r < 0.85:
			return TrendStable
		default:
			return TrendDown
		}
	case ModeCab:
		switch {
		case r < 0.7:
			return TrendStable
		case r < 0.85:
			return TrendUp
		default:
			return TrendDown
		}
	default:
		return TrendStable
	}
}

func (e *Enricher) realTimeStatus(mode Mode) string {
	switch mode {
	case ModeCab:
		return fmt.Sprintf("Driver arriving in %d mins", 2+int(e.rnd.Float64()*8))
	case ModeBus:
		if e.rnd.Float64() < 0.7 {
			return "On Time"
		}
		return fmt.Sprintf("Delayed by %d mins", 5+int(e.rnd.Float64()*25))
	case ModeTrain:
		return "On Time • Running as per schedule"
	default:
		return ""
	}
}
