package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "oneyatra/internal/http"
	"oneyatra/internal/modules/deeplink"
	"oneyatra/internal/modules/pricing"
	"oneyatra/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return httptransport.NewRouter(httptransport.RouterDeps{
		Planner: service.NewTravelPlanner(nil, nil, nil, service.PlannerOptions{}),
		Pricing: pricing.NewService(nil),
		Tracker: deeplink.NewTracker(nil, nil),
	})
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_RegistersAPI(t *testing.T) {
	r := newTestRouter()
	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, "/api/travel", `{"origin":"Delhi","destination":"Jaipur","date":"2026-11-01"}`, http.StatusOK},
		{http.MethodPost, "/api/travel", `{"origin":"Delhi"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/chat", `{"message":"hello"}`, http.StatusOK},
		{http.MethodPost, "/api/fares/cab", `{"distance":"12 km","duration":"30m","city":"Pune"}`, http.StatusOK},
		{http.MethodGet, "/api/deeplink?provider=IndiGo&origin=DEL&destination=BOM", "", http.StatusOK},
		{http.MethodPost, "/api/analytics/deeplink", `{"provider":"IndiGo","status":"fallback"}`, http.StatusAccepted},
		{http.MethodGet, "/api/analytics/deeplink/IndiGo", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}
