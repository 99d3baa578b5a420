// README: Handler tests against an offline planner.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneyatra/internal/ai"
	"oneyatra/internal/http/handlers"
	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/pricing"
	"oneyatra/internal/modules/travel"
	"oneyatra/internal/service"
)

type recordingClicks struct {
	mu     sync.Mutex
	events []deeplink.ClickEvent
	counts map[string]int64
	err    error
}

func (r *recordingClicks) AppendClick(_ context.Context, e deeplink.ClickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingClicks) CountByProvider(_ context.Context, _ string) (map[string]int64, error) {
	return r.counts, r.err
}

type testEnv struct {
	router  *gin.Engine
	tracker *deeplink.Tracker
	clicks  *recordingClicks
}

func buildTestRouter(counter handlers.ClickCounter) testEnv {
	gin.SetMode(gin.TestMode)
	rnd := pricing.RandomFunc(func() float64 { return 0.5 })
	pricingSvc := pricing.NewService(pricing.NewSurgeCalculator(rnd))
	planner := service.NewTravelPlanner(nil, nil, travel.NewEnricher(pricingSvc, rnd), service.PlannerOptions{})
	clicks := &recordingClicks{}
	tracker := deeplink.NewTracker(nil, clicks)

	r := gin.New()
	th := handlers.NewTravelHandler(planner)
	r.POST("/api/travel", th.Search)
	r.POST("/api/chat", th.Chat)
	fh := handlers.NewFareHandler(pricingSvc)
	r.POST("/api/fares/cab", fh.CabFare)
	dh := handlers.NewDeepLinkHandler(tracker, counter)
	r.GET("/api/deeplink", dh.Generate)
	r.POST("/api/analytics/deeplink", dh.TrackClick)
	r.GET("/api/analytics/deeplink/:provider", dh.Counts)
	return testEnv{router: r, tracker: tracker, clicks: clicks}
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTravelSearch(t *testing.T) {
	env := buildTestRouter(nil)

	w := doRequest(env.router, http.MethodPost, "/api/travel", map[string]any{
		"origin": "Mumbai", "destination": "Pune", "date": "2026-11-01", "time": "14:00",
		"passengers": 2, "tripType": "ONE_WAY",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp travel.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, travel.SourceMock, resp.Source)
	require.Len(t, resp.Options, 4)
	for _, o := range resp.Options {
		assert.NotEmpty(t, o.DeepLink)
		if o.Mode == travel.ModeCab {
			assert.Equal(t, 3104.0, o.Price)
		}
	}
}

func TestTravelSearch_BadRequests(t *testing.T) {
	env := buildTestRouter(nil)
	cases := map[string]any{
		"invalid json":          "{origin:",
		"round trip no return":  map[string]any{"origin": "A", "destination": "B", "tripType": "ROUND_TRIP"},
		"segments on one way":   map[string]any{"origin": "A", "destination": "B", "segments": []map[string]string{{"origin": "A", "destination": "B"}}},
		"multi city no segment": map[string]any{"origin": "A", "destination": "B", "tripType": "MULTI_CITY"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(env.router, http.MethodPost, "/api/travel", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestChat(t *testing.T) {
	env := buildTestRouter(nil)

	w := doRequest(env.router, http.MethodPost, "/api/chat", map[string]any{
		"message": "Best way from Delhi to Agra?",
		"history": []map[string]string{{"role": "user", "text": "hi"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":`+mustJSON(t, ai.OfflineChatReply)+`}`, w.Body.String())

	w = doRequest(env.router, http.MethodPost, "/api/chat", map[string]any{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCabFare(t *testing.T) {
	env := buildTestRouter(nil)

	w := doRequest(env.router, http.MethodPost, "/api/fares/cab", map[string]string{
		"distance": "10 km", "duration": "20m", "city": "Delhi", "time": "14:00",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var quote pricing.CabQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	// Delhi card: 50 + 10*14 + 20*1.5
	assert.Equal(t, int64(220), quote.Price)
	assert.Equal(t, 1.0, quote.Surge)
	assert.Equal(t, "INR", quote.Currency)
}

func TestDeepLink(t *testing.T) {
	env := buildTestRouter(nil)

	w := doRequest(env.router, http.MethodGet, "/api/deeplink?provider=RedBus&mode=bus&origin=Delhi&destination=Jaipur", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res deeplink.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "redbus://search?fromCityName=Delhi&toCityName=Jaipur", res.URL)

	w = doRequest(env.router, http.MethodGet, "/api/deeplink?provider=Unknown&mode=bus&origin=Delhi&destination=Jaipur", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, strings.HasPrefix(res.URL, "https://www.google.com/maps/dir/?api=1"))
	assert.Contains(t, res.URL, "travelmode=transit")

	w = doRequest(env.router, http.MethodGet, "/api/deeplink?provider=Uber", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackClick(t *testing.T) {
	env := buildTestRouter(nil)

	w := doRequest(env.router, http.MethodPost, "/api/analytics/deeplink", map[string]string{"provider": "Uber", "status": "opened"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doRequest(env.router, http.MethodPost, "/api/analytics/deeplink", map[string]string{"provider": "Uber", "status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.tracker.Wait()
	env.clicks.mu.Lock()
	defer env.clicks.mu.Unlock()
	require.Len(t, env.clicks.events, 1)
	assert.Equal(t, "Uber", env.clicks.events[0].Provider)
}

func TestClickCounts(t *testing.T) {
	disabled := buildTestRouter(nil)
	w := doRequest(disabled.router, http.MethodGet, "/api/analytics/deeplink/Uber", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	enabled := buildTestRouter(&recordingClicks{counts: map[string]int64{"opened": 3, "fallback": 1}})
	w = doRequest(enabled.router, http.MethodGet, "/api/analytics/deeplink/Uber", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"provider":"Uber","counts":{"opened":3,"fallback":1}}`, w.Body.String())

	failing := buildTestRouter(&recordingClicks{err: errors.New("db down")})
	w = doRequest(failing.router, http.MethodGet, "/api/analytics/deeplink/Uber", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
