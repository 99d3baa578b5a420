package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"oneyatra/internal/modules/travel"
)

// ParseRoutePlan decodes raw model output into a RouteResponse and checks the
// fields the enrichment pipeline depends on.
func ParseRoutePlan(raw string) (travel.RouteResponse, error) {
	var resp travel.RouteResponse
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &resp); err != nil {
		return travel.RouteResponse{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if len(resp.Options) == 0 {
		return travel.RouteResponse{}, fmt.Errorf("%w: no options", ErrInvalidPlan)
	}
	for _, list := range [][]travel.TravelOption{resp.Options, resp.ReturnOptions} {
		for _, o := range list {
			if err := validateOption(o, maxLegDepth); err != nil {
				return travel.RouteResponse{}, err
			}
		}
	}
	return resp, nil
}

func validateOption(o travel.TravelOption, depth int) error {
	if strings.TrimSpace(o.ID) == "" || strings.TrimSpace(o.Provider) == "" || strings.TrimSpace(o.Duration) == "" {
		return fmt.Errorf("%w: option %q missing id, provider or duration", ErrInvalidPlan, o.ID)
	}
	switch o.Mode {
	case travel.ModeCab, travel.ModeBus, travel.ModeTrain, travel.ModeFlight, travel.ModeMixed:
	default:
		return fmt.Errorf("%w: option %q has mode %q", ErrInvalidPlan, o.ID, o.Mode)
	}
	if o.Price < 0 {
		return fmt.Errorf("%w: option %q has negative price", ErrInvalidPlan, o.ID)
	}
	if len(o.Legs) > 0 && depth == 0 {
		return fmt.Errorf("%w: option %q nests legs too deeply", ErrInvalidPlan, o.ID)
	}
	for _, leg := range o.Legs {
		if err := validateOption(leg, depth-1); err != nil {
			return err
		}
	}
	return nil
}
