package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

const directionsOK = `{
  "status": "OK",
  "geocoded_waypoints": [],
  "routes": [{
    "summary": "Mumbai-Pune Expy",
    "legs": [{
      "start_address": "Mumbai, Maharashtra, India",
      "end_address": "Pune, Maharashtra, India",
      "distance": {"text": "148 km", "value": 148213},
      "duration": {"text": "3 hours 10 mins", "value": 11400},
      "steps": []
    }]
  }]
}`

func newTestService(t *testing.T, body string, gotQuery *string) *RouteService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	svc, err := NewRouteService("test-key", maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return svc
}

func TestRouteService_Estimate(t *testing.T) {
	var query string
	svc := newTestService(t, directionsOK, &query)

	est, err := svc.Estimate(context.Background(), "Mumbai", "Pune")
	require.NoError(t, err)

	assert.Equal(t, "148 km", est.Distance)
	assert.Equal(t, "3h 10m", est.Duration)
	assert.Contains(t, query, "region=in")
	assert.Contains(t, query, "mode=driving")
}

func TestRouteService_NoRoute(t *testing.T) {
	svc := newTestService(t, `{"status": "OK", "routes": []}`, nil)

	_, _, err := svc.GetTravelEstimate(context.Background(), "Mumbai", "Atlantis")
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestRouteService_UpstreamError(t *testing.T) {
	svc := newTestService(t, `{"status": "REQUEST_DENIED", "error_message": "bad key"}`, nil)

	_, err := svc.Estimate(context.Background(), "Mumbai", "Pune")
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3h 10m", FormatDuration(3*time.Hour+10*time.Minute))
	assert.Equal(t, "2h", FormatDuration(2*time.Hour))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute+10*time.Second))
	assert.Equal(t, "1m", FormatDuration(5*time.Second))
}
