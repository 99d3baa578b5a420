package ai

import (
	"fmt"
	"strings"

	"oneyatra/internal/modules/travel"
)

const chatPersona = `You are Yatri, the travel assistant for OneYatra, an Indian multi-modal booking app covering flights, trains, buses and cabs.
Be concise and friendly. Quote prices in INR (₹). Prefer concrete suggestions: operators, typical durations, best departure windows.
Mention greener options such as trains when they are practical. If asked about bookings you cannot see, ask the user to open My Trips.`

// OfflineChatReply is returned when no model is configured or every attempt failed.
const OfflineChatReply = "I'm running in offline mode right now, so I can't chat live. You can still search routes: results will use our sample fares until the assistant is back."

var modeHints = map[travel.Mode]string{
	travel.ModeFlight: "Only return FLIGHT options from Indian carriers (IndiGo, Air India, Vistara, Akasa Air, SpiceJet).",
	travel.ModeTrain:  "Only return TRAIN options on Indian Railways (IRCTC), including Vande Bharat, Shatabdi and Rajdhani where they run.",
	travel.ModeBus:    "Only return BUS options from operators such as RedBus partners, ZingBus and IntrCity.",
	travel.ModeCab:    "Only return CAB options (Uber, Ola, Rapido, BluSmart). Always include distance like \"148 km\" and duration like \"3h 10m\".",
}

// BuildRoutePrompt renders the planner prompt for params. params should be normalized.
func BuildRoutePrompt(params travel.SearchParams) string {
	var b strings.Builder
	b.WriteString("Plan travel options in India for the following trip.\n")

	switch params.TripType {
	case travel.TripMultiCity:
		b.WriteString("Trip type: multi-city. Return one MIXED option per plan, with one leg per segment, in order:\n")
		for i, s := range params.Segments {
			fmt.Fprintf(&b, "  %d. %s -> %s on %s", i+1, s.Origin, s.Destination, s.Date)
			if s.Time != "" {
				fmt.Fprintf(&b, " around %s", s.Time)
			}
			b.WriteString("\n")
		}
		b.WriteString("Give at least two plans: the fastest and the cheapest. The plan price is the sum of its legs.\n")
	case travel.TripRoundTrip:
		fmt.Fprintf(&b, "Trip type: round trip.\nOutbound: %s -> %s on %s%s.\n",
			params.Origin, params.Destination, params.Date, around(params.Time))
		fmt.Fprintf(&b, "Return: %s -> %s on %s%s.\n",
			params.Destination, params.Origin, params.ReturnDate, around(params.ReturnTime))
		b.WriteString("Put outbound choices in options and return choices in returnOptions. Set returnDate.\n")
	default:
		fmt.Fprintf(&b, "Trip type: one way.\nRoute: %s -> %s on %s%s.\n",
			params.Origin, params.Destination, params.Date, around(params.Time))
	}

	fmt.Fprintf(&b, "Passengers: %d. Prices are totals for all passengers in INR; cab prices are per vehicle.\n", params.Passengers)

	if hint, ok := modeHints[params.Mode]; ok {
		b.WriteString(hint)
		b.WriteString("\n")
	} else {
		b.WriteString("Return a mix of FLIGHT, TRAIN, BUS and CAB options where each is realistic for the distance, 4 to 8 options in total.\n")
	}

	b.WriteString("Use unique ids, realistic Indian operators and schedules, an ecoScore from 0 to 100, and a short tag such as Fastest, Cheapest or Best Value.\n")
	b.WriteString("Write aiInsight as one or two sentences of practical advice.")
	return b.String()
}

func around(t string) string {
	if t == "" {
		return ""
	}
	return " around " + t
}
