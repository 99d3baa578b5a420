package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneyatra/internal/modules/travel"
)

const validPlan = `{
  "origin": "Mumbai", "destination": "Pune", "date": "2026-11-01",
  "aiInsight": "Take the Deccan Queen.",
  "options": [
    {"id": "t1", "mode": "TRAIN", "provider": "IRCTC Deccan Queen", "price": 900, "duration": "3h 10m", "ecoScore": 90},
    {"id": "m1", "mode": "MIXED", "provider": "Combo", "price": 1500, "duration": "4h", "ecoScore": 60,
     "legs": [{"id": "m1-a", "mode": "CAB", "provider": "Uber", "price": 300, "duration": "40m", "distance": "18 km", "ecoScore": 30}]}
  ]
}`

func TestParseRoutePlan(t *testing.T) {
	resp, err := ParseRoutePlan("```json\n" + validPlan + "\n```")
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", resp.Origin)
	require.Len(t, resp.Options, 2)
	assert.Equal(t, travel.ModeTrain, resp.Options[0].Mode)
	require.Len(t, resp.Options[1].Legs, 1)
	assert.Equal(t, "18 km", resp.Options[1].Legs[0].Distance)
}

func TestParseRoutePlan_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":      `Sorry, I cannot help with that.`,
		"no options":    `{"origin":"A","destination":"B","date":"d","aiInsight":"x","options":[]}`,
		"missing id":    `{"options":[{"mode":"BUS","provider":"RedBus","price":1,"duration":"1h"}]}`,
		"unknown mode":  `{"options":[{"id":"x","mode":"BOAT","provider":"Ferry","price":1,"duration":"1h"}]}`,
		"negative":      `{"options":[{"id":"x","mode":"BUS","provider":"RedBus","price":-5,"duration":"1h"}]}`,
		"bad return":    `{"options":[{"id":"x","mode":"BUS","provider":"RedBus","price":5,"duration":"1h"}],"returnOptions":[{"id":"","mode":"BUS"}]}`,
		"deep nesting":  `{"options":[{"id":"x","mode":"MIXED","provider":"P","price":5,"duration":"1h","legs":[{"id":"y","mode":"MIXED","provider":"P","price":1,"duration":"1h","legs":[{"id":"z","mode":"BUS","provider":"P","price":1,"duration":"1h"}]}]}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRoutePlan(raw)
			assert.ErrorIs(t, err, ErrInvalidPlan)
		})
	}
}

func TestCleanJSONString(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONString("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONString("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, cleanJSONString("  {\"a\":1}  "))
}
