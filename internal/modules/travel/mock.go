package travel

import (
	"fmt"
	"math"
)

const (
	mockCabDistance = "148 km"
	mockCabDuration = "3h 10m"
	mockCabRawPrice = 8500
	roundTripSaving = 0.9
)

// RouteEstimate carries driving distance/duration text used to ground the mock cab option.
type RouteEstimate struct {
	Distance string
	Duration string
}

// MockRoutes builds the deterministic offline dataset for params. The result is
// not enriched. est, when non-nil, replaces the cab option's distance and duration.
func MockRoutes(params SearchParams, est *RouteEstimate) RouteResponse {
	params = params.Normalize()

	resp := RouteResponse{
		Origin:      params.Origin,
		Destination: params.Destination,
		Date:        params.Date,
		AIInsight: fmt.Sprintf(
			"Vande Bharat is the best value between %s and %s; morning flights fill up fast, so book early if you want to fly.",
			params.Origin, params.Destination),
		Source: SourceMock,
	}

	switch params.TripType {
	case TripMultiCity:
		resp.Options = mockMultiCity(params, est)
	default:
		resp.Options = mockOneWay("", params.Time, params.Passengers, est)
	}

	if params.TripType == TripRoundTrip {
		resp.ReturnDate = params.ReturnDate
		resp.ReturnOptions = mockOneWay("r-", params.ReturnTime, params.Passengers, est)
		resp.Options = append(resp.Options, roundTripBundle(resp.Options[0], resp.ReturnOptions[0]))
	}

	return filterByMode(resp, params.Mode)
}

func mockOneWay(idPrefix, cabTime string, passengers int, est *RouteEstimate) []TravelOption {
	pax := float64(passengers)
	if cabTime == "" {
		cabTime = "08:00"
	}
	cabDistance, cabDuration := mockCabDistance, mockCabDuration
	if est != nil && est.Distance != "" && est.Duration != "" {
		cabDistance, cabDuration = est.Distance, est.Duration
	}

	return []TravelOption{
		{
			ID:            idPrefix + "mock-flight-1",
			Mode:          ModeFlight,
			Provider:      "IndiGo 6E-2134",
			DepartureTime: "06:15",
			ArrivalTime:   "07:10",
			Duration:      "55m",
			Price:         4200 * pax,
			Currency:      "INR",
			Rating:        4.3,
			Tag:           "Fastest",
			Features:      []string{"15kg check-in", "Free web check-in"},
			EcoScore:      35,
		},
		{
			ID:            idPrefix + "mock-train-1",
			Mode:          ModeTrain,
			Provider:      "Vande Bharat Express 22229",
			DepartureTime: "06:10",
			ArrivalTime:   "09:25",
			Duration:      "3h 15m",
			Price:         1450 * pax,
			Currency:      "INR",
			Rating:        4.6,
			Tag:           "Best Value",
			Features:      []string{"Executive Chair Car", "Meals included"},
			EcoScore:      85,
		},
		{
			ID:            idPrefix + "mock-bus-1",
			Mode:          ModeBus,
			Provider:      "IntrCity SmartBus",
			DepartureTime: "07:00",
			ArrivalTime:   "11:30",
			Duration:      "4h 30m",
			Price:         850 * pax,
			Currency:      "INR",
			Rating:        4.1,
			Tag:           "Budget",
			Features:      []string{"AC Sleeper", "Live tracking"},
			EcoScore:      70,
		},
		{
			ID:            idPrefix + "mock-cab-1",
			Mode:          ModeCab,
			Provider:      "Uber Premier",
			DepartureTime: cabTime,
			Duration:      cabDuration,
			Distance:      cabDistance,
			Price:         mockCabRawPrice,
			Currency:      "INR",
			Rating:        4.4,
			Tag:           "Door to Door",
			Features:      []string{"Sedan", "Toll included"},
			EcoScore:      40,
		},
	}
}

func mockMultiCity(params SearchParams, est *RouteEstimate) []TravelOption {
	if len(params.Segments) == 0 {
		return mockOneWay("", params.Time, params.Passengers, est)
	}
	var fast, budget []TravelOption
	for i, seg := range params.Segments {
		legs := mockOneWay(fmt.Sprintf("s%d-", i+1), seg.Time, params.Passengers, est)
		fast = append(fast, legs[0])
		budget = append(budget, legs[1])
	}
	return []TravelOption{
		composite("mock-multi-fast", "OneYatra Multi-City Flights", "Fastest", fast, 1),
		composite("mock-multi-budget", "OneYatra Multi-City Rail", "Best Value", budget, 1),
	}
}

func roundTripBundle(outbound, inbound TravelOption) TravelOption {
	return composite("mock-roundtrip-saver", outbound.Provider+" Round-trip Saver", "Save 10%",
		[]TravelOption{outbound, inbound}, roundTripSaving)
}

// composite wraps legs in a MIXED option priced at the discounted sum of its legs.
func composite(id, provider, tag string, legs []TravelOption, discount float64) TravelOption {
	eco := 0
	for _, l := range legs {
		eco += l.EcoScore
	}
	opt := TravelOption{
		ID:       id,
		Mode:     ModeMixed,
		Provider: provider,
		Duration: fmt.Sprintf("%d legs", len(legs)),
		Price:    BundlePrice(legs, discount),
		Currency: "INR",
		Tag:      tag,
		Legs:     legs,
	}
	if len(legs) > 0 {
		opt.EcoScore = eco / len(legs)
		opt.DepartureTime = legs[0].DepartureTime
		opt.ArrivalTime = legs[len(legs)-1].ArrivalTime
	}
	return opt
}

// BundlePrice sums leg prices and applies discount, rounded to whole rupees.
func BundlePrice(legs []TravelOption, discount float64) float64 {
	sum := 0.0
	for _, l := range legs {
		sum += l.Price
	}
	return math.Round(sum * discount)
}

func filterByMode(resp RouteResponse, mode Mode) RouteResponse {
	if mode == "" || mode == ModeAll {
		return resp
	}
	keep := func(opts []TravelOption) []TravelOption {
		var out []TravelOption
		for _, o := range opts {
			if o.Mode == mode {
				out = append(out, o)
			}
		}
		return out
	}
	filtered := keep(resp.Options)
	if len(filtered) == 0 {
		// A preference never empties the dataset.
		return resp
	}
	resp.Options = filtered
	if len(resp.ReturnOptions) > 0 {
		if r := keep(resp.ReturnOptions); len(r) > 0 {
			resp.ReturnOptions = r
		}
	}
	return resp
}
