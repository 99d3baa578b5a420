package deeplink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uber(t *testing.T) {
	got := Generate("Uber Go", "CAB", "Delhi", "Mumbai")

	assert.Contains(t, got.URL, "m.uber.com")
	assert.Contains(t, got.URL, "dropoff[formatted_address]=Mumbai")
	assert.Contains(t, got.URL, "pickup[formatted_address]=Delhi")
	assert.True(t, got.IsUniversal)
	assert.True(t, strings.HasPrefix(got.AndroidIntent, "intent://"))
	assert.Contains(t, got.AndroidIntent, "scheme=uber;package=com.ubercab;")
	assert.Contains(t, got.AndroidIntent, "S.browser_fallback_url=")
	assert.True(t, strings.HasSuffix(got.AndroidIntent, ";end"))
}

func TestGenerate_EncodesParameters(t *testing.T) {
	got := Generate("Uber Premier", "CAB", "  Connaught Place ", "Terminal 3 & Lounge?x=1")

	assert.Contains(t, got.URL, "pickup[formatted_address]=Connaught%20Place&")
	assert.Contains(t, got.URL, "dropoff[formatted_address]=Terminal%203%20%26%20Lounge%3Fx%3D1")
	assert.NotContains(t, got.URL, " ")

	u, err := url.Parse(got.URL)
	require.NoError(t, err)
	assert.Equal(t, "Terminal 3 & Lounge?x=1", u.Query().Get("dropoff[formatted_address]"))
}

func TestGenerate_UnknownProviderFallsBackToMaps(t *testing.T) {
	got := Generate("SomeRandomCo", "BUS", "Pune", "Goa")

	assert.True(t, strings.HasPrefix(got.URL, "https://www.google.com/maps/dir/?api=1"))
	assert.Contains(t, got.URL, "origin=Pune")
	assert.Contains(t, got.URL, "destination=Goa")
	assert.Contains(t, got.URL, "travelmode=transit")
	assert.Equal(t, got.URL, got.FallbackURL)
	assert.Empty(t, got.AndroidIntent)
	assert.True(t, got.IsUniversal)

	cab := Generate("Meru Cabs", "CAB", "Pune", "Goa")
	assert.Contains(t, cab.URL, "travelmode=driving")
}

func TestGenerate_ProviderTemplates(t *testing.T) {
	cases := []struct {
		provider     string
		mode         string
		urlPrefix    string
		wantInURL    string
		wantIntent   string
		wantFallback string
	}{
		{"Ola Mini", "CAB", "olacabs://app/launch", "drop_name=Pune", "package=com.olacabs.customer", "https://book.olacabs.com/"},
		{"Rapido Bike", "CAB", "rapido://ride", "drop=Pune", "package=com.rapido.passenger", "https://www.rapido.bike/"},
		{"BluSmart EV", "CAB", "blusmart://book", "drop=Pune", "package=com.blusmart.rider", "https://www.blu-smart.com/"},
		{"IndiGo 6E-5312", "FLIGHT", "https://www.goindigo.in/", "destination=Pune", "", "https://www.goindigo.in/"},
		{"Air India AI-865", "FLIGHT", "https://www.airindia.com/", "to=Pune", "", "https://www.airindia.com/"},
		{"Vistara UK-971", "FLIGHT", "https://www.airvistara.com/", "to=Pune", "", "https://www.airvistara.com/"},
		{"IRCTC Deccan Queen", "TRAIN", "irctc://train-search", "dst=Pune", "package=cris.org.in.prs.ima", "https://www.irctc.co.in/nget/train-search"},
		{"Vande Bharat Express", "TRAIN", "irctc://train-search", "src=Mumbai", "scheme=irctc", "https://www.irctc.co.in/"},
		{"RedBus Volvo", "BUS", "redbus://search", "fromCityName=Mumbai&toCityName=Pune", "package=in.redbus.android", "https://www.redbus.in/search"},
		{"ZingBus Sleeper", "BUS", "https://www.zingbus.com/", "toCityName=Pune", "", "https://www.zingbus.com/"},
		{"IntrCity SmartBus", "BUS", "https://www.intrcity.com/", "src=Mumbai&dst=Pune", "", "https://www.intrcity.com/"},
	}
	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			got := Generate(tc.provider, tc.mode, "Mumbai", "Pune")
			assert.True(t, strings.HasPrefix(got.URL, tc.urlPrefix), got.URL)
			assert.Contains(t, got.URL, tc.wantInURL)
			assert.True(t, strings.HasPrefix(got.FallbackURL, tc.wantFallback), got.FallbackURL)
			if tc.wantIntent == "" {
				assert.Empty(t, got.AndroidIntent)
			} else {
				assert.Contains(t, got.AndroidIntent, tc.wantIntent)
			}
		})
	}
}

func TestGenerate_FirstAllowlistMatchWins(t *testing.T) {
	// Contains both "IRCTC" and "RedBus"; IRCTC comes first in the allowlist.
	got := Generate("IRCTC via RedBus", "TRAIN", "A", "B")
	assert.True(t, strings.HasPrefix(got.URL, "irctc://"))
}

func TestGenerate_IntentFallbackOnlyWhenSupported(t *testing.T) {
	assert.NotContains(t, Generate("Rapido", "CAB", "A", "B").AndroidIntent, "browser_fallback_url")
	assert.Contains(t, Generate("Ola", "CAB", "A", "B").AndroidIntent, "browser_fallback_url")
}
