// README: Search descriptors, travel options and route responses exchanged with the UI.
package travel

import (
	"errors"
	"strings"
)

type Mode string

const (
	ModeCab    Mode = "CAB"
	ModeBus    Mode = "BUS"
	ModeTrain  Mode = "TRAIN"
	ModeFlight Mode = "FLIGHT"
	ModeMixed  Mode = "MIXED"
	// ModeAll is a search preference only; options never carry it.
	ModeAll Mode = "ALL"
)

type TripType string

const (
	TripOneWay    TripType = "ONE_WAY"
	TripRoundTrip TripType = "ROUND_TRIP"
	TripMultiCity TripType = "MULTI_CITY"
)

type PriceTrend string

const (
	TrendUp     PriceTrend = "UP"
	TrendDown   PriceTrend = "DOWN"
	TrendStable PriceTrend = "STABLE"
)

type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
	SourceMock  Source = "mock"
)

var ErrInvalidSearch = errors.New("invalid search")

type TripSegment struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
}

type SearchParams struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Passengers  int           `json:"passengers"`
	TripType    TripType      `json:"tripType"`
	Mode        Mode          `json:"mode,omitempty"`
	ReturnDate  string        `json:"returnDate,omitempty"`
	ReturnTime  string        `json:"returnTime,omitempty"`
	Segments    []TripSegment `json:"segments,omitempty"`
}

// Normalize fills defaults: one passenger, one-way trip, all modes, and for
// multi-city searches the overall origin/destination from the segments.
func (p SearchParams) Normalize() SearchParams {
	p.Origin = strings.TrimSpace(p.Origin)
	p.Destination = strings.TrimSpace(p.Destination)
	if p.Passengers < 1 {
		p.Passengers = 1
	}
	if p.TripType == "" {
		p.TripType = TripOneWay
	}
	if p.Mode == "" {
		p.Mode = ModeAll
	}
	if p.TripType == TripMultiCity && len(p.Segments) > 0 {
		if p.Origin == "" {
			p.Origin = p.Segments[0].Origin
		}
		if p.Destination == "" {
			p.Destination = p.Segments[len(p.Segments)-1].Destination
		}
		if p.Date == "" {
			p.Date = p.Segments[0].Date
		}
		if p.Time == "" {
			p.Time = p.Segments[0].Time
		}
	}
	return p
}

// Validate enforces the trip-type invariants: segments iff multi-city,
// return date iff round-trip.
func (p SearchParams) Validate() error {
	switch p.TripType {
	case TripOneWay, TripRoundTrip, TripMultiCity:
	default:
		return ErrInvalidSearch
	}
	switch p.Mode {
	case ModeAll, ModeCab, ModeBus, ModeTrain, ModeFlight:
	default:
		return ErrInvalidSearch
	}
	if p.Origin == "" || p.Destination == "" {
		return ErrInvalidSearch
	}
	if (p.TripType == TripMultiCity) != (len(p.Segments) > 0) {
		return ErrInvalidSearch
	}
	if (p.TripType == TripRoundTrip) != (p.ReturnDate != "") {
		return ErrInvalidSearch
	}
	for _, s := range p.Segments {
		if strings.TrimSpace(s.Origin) == "" || strings.TrimSpace(s.Destination) == "" {
			return ErrInvalidSearch
		}
	}
	return nil
}

type TravelOption struct {
	ID            string         `json:"id"`
	Mode          Mode           `json:"mode"`
	Provider      string         `json:"provider"`
	DepartureTime string         `json:"departureTime,omitempty"`
	ArrivalTime   string         `json:"arrivalTime,omitempty"`
	Duration      string         `json:"duration"`
	Distance      string         `json:"distance,omitempty"`
	Price         float64        `json:"price"`
	Currency      string         `json:"currency,omitempty"`
	Rating        float64        `json:"rating,omitempty"`
	Tag           string         `json:"tag,omitempty"`
	Features      []string       `json:"features,omitempty"`
	EcoScore      int            `json:"ecoScore"`
	Legs          []TravelOption `json:"legs,omitempty"`

	DeepLink         string     `json:"deepLink,omitempty"`
	DeepLinkFallback string     `json:"deepLinkFallback,omitempty"`
	AndroidIntent    string     `json:"androidIntent,omitempty"`
	SurgeMultiplier  float64    `json:"surgeMultiplier,omitempty"`
	FareBreakdown    string     `json:"fareBreakdown,omitempty"`
	PriceTrend       PriceTrend `json:"priceTrend,omitempty"`
	RealTimeStatus   string     `json:"realTimeStatus,omitempty"`
}

type RouteResponse struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	Date          string         `json:"date"`
	ReturnDate    string         `json:"returnDate,omitempty"`
	Options       []TravelOption `json:"options"`
	ReturnOptions []TravelOption `json:"returnOptions,omitempty"`
	AIInsight     string         `json:"aiInsight"`
	Source        Source         `json:"source,omitempty"`
}
