package ai

import "github.com/google/generative-ai-go/genai"

// maxLegDepth bounds how deeply composite options may nest legs in model output.
const maxLegDepth = 1

// RouteResponseSchema describes the RouteResponse document the planner must return.
func RouteResponseSchema() *genai.Schema {
	options := &genai.Schema{Type: genai.TypeArray, Items: optionSchema(maxLegDepth)}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"origin":        {Type: genai.TypeString},
			"destination":   {Type: genai.TypeString},
			"date":          {Type: genai.TypeString},
			"returnDate":    {Type: genai.TypeString, Nullable: true},
			"aiInsight":     {Type: genai.TypeString, Description: "One or two sentences of travel advice for this route."},
			"options":       options,
			"returnOptions": {Type: genai.TypeArray, Items: optionSchema(maxLegDepth)},
		},
		Required: []string{"origin", "destination", "date", "aiInsight", "options"},
	}
}

func optionSchema(depth int) *genai.Schema {
	s := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeString},
			"mode":          {Type: genai.TypeString, Enum: []string{"CAB", "BUS", "TRAIN", "FLIGHT", "MIXED"}},
			"provider":      {Type: genai.TypeString, Description: "Operator or brand name, e.g. IndiGo, IRCTC, RedBus, Uber."},
			"departureTime": {Type: genai.TypeString, Description: "HH:MM, 24-hour."},
			"arrivalTime":   {Type: genai.TypeString, Description: "HH:MM, 24-hour."},
			"duration":      {Type: genai.TypeString, Description: "Like 2h 30m."},
			"distance":      {Type: genai.TypeString, Description: "Like 148 km."},
			"price":         {Type: genai.TypeNumber, Description: "Total INR for all passengers."},
			"currency":      {Type: genai.TypeString},
			"rating":        {Type: genai.TypeNumber},
			"tag":           {Type: genai.TypeString},
			"features":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"ecoScore":      {Type: genai.TypeInteger, Description: "0-100, higher is greener."},
		},
		Required: []string{"id", "mode", "provider", "price", "duration", "ecoScore"},
	}
	if depth > 0 {
		s.Properties["legs"] = &genai.Schema{Type: genai.TypeArray, Items: optionSchema(depth - 1)}
	}
	return s
}
