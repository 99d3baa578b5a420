package deeplink

import (
	"net/url"
	"strings"
)

// Generate maps a provider and transport mode to app, web and Android intent links.
// Providers outside the allowlist get a Google Maps directions link.
func Generate(provider, mode, origin, destination string) Result {
	o := encodeComponent(origin)
	d := encodeComponent(destination)

	for _, p := range allowlist {
		if strings.Contains(provider, p.name) {
			return p.build(o, d)
		}
	}
	return genericLinks(o, d, mode)
}

// encodeComponent trims and percent-encodes s for use as a query value.
// Spaces become %20 so the output is valid in custom schemes as well as https URLs.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(s)), "+", "%20")
}

// androidIntent builds an intent:// URI. fallback, when set, is added as
// browser_fallback_url so Chrome can open the web flow if the app is missing.
func androidIntent(path, scheme, pkg, fallback string) string {
	var b strings.Builder
	b.WriteString("intent://")
	b.WriteString(path)
	b.WriteString("#Intent;scheme=")
	b.WriteString(scheme)
	b.WriteString(";package=")
	b.WriteString(pkg)
	b.WriteString(";")
	if fallback != "" {
		b.WriteString("S.browser_fallback_url=")
		b.WriteString(url.QueryEscape(fallback))
		b.WriteString(";")
	}
	b.WriteString("end")
	return b.String()
}
