package deeplink

// providerTemplate renders links for one provider. origin and destination are
// already URI-component encoded when build is called.
type providerTemplate struct {
	name  string
	build func(origin, destination string) Result
}

// allowlist is matched in order: the first name contained in the provider string wins.
var allowlist = []providerTemplate{
	{name: "Uber", build: uberLinks},
	{name: "Ola", build: olaLinks},
	{name: "Rapido", build: rapidoLinks},
	{name: "BluSmart", build: bluSmartLinks},
	{name: "IndiGo", build: indigoLinks},
	{name: "Air India", build: airIndiaLinks},
	{name: "Vistara", build: vistaraLinks},
	{name: "IRCTC", build: irctcLinks},
	{name: "Vande Bharat", build: irctcLinks},
	{name: "RedBus", build: redBusLinks},
	{name: "ZingBus", build: zingBusLinks},
	{name: "IntrCity", build: intrCityLinks},
}

func uberLinks(o, d string) Result {
	query := "?action=setPickup&pickup[formatted_address]=" + o + "&dropoff[formatted_address]=" + d
	web := "https://m.uber.com/ul/" + query
	return Result{
		URL:           web,
		FallbackURL:   web,
		AndroidIntent: androidIntent(query, "uber", "com.ubercab", web),
		IsUniversal:   true,
	}
}

func olaLinks(o, d string) Result {
	web := "https://book.olacabs.com/?pickup_name=" + o + "&drop_name=" + d
	return Result{
		URL:           "olacabs://app/launch?landing_page=bk&pickup_name=" + o + "&drop_name=" + d,
		FallbackURL:   web,
		AndroidIntent: androidIntent("app/launch?landing_page=bk&pickup_name="+o+"&drop_name="+d, "olacabs", "com.olacabs.customer", web),
	}
}

func rapidoLinks(o, d string) Result {
	return Result{
		URL:           "rapido://ride?pickup=" + o + "&drop=" + d,
		FallbackURL:   "https://www.rapido.bike/",
		AndroidIntent: androidIntent("ride?pickup="+o+"&drop="+d, "rapido", "com.rapido.passenger", ""),
	}
}

func bluSmartLinks(o, d string) Result {
	return Result{
		URL:           "blusmart://book?pickup=" + o + "&drop=" + d,
		FallbackURL:   "https://www.blu-smart.com/",
		AndroidIntent: androidIntent("book?pickup="+o+"&drop="+d, "blusmart", "com.blusmart.rider", ""),
	}
}

func indigoLinks(o, d string) Result {
	return Result{
		URL:         "https://www.goindigo.in/booking/flight-select.html?origin=" + o + "&destination=" + d,
		FallbackURL: "https://www.goindigo.in/",
		IsUniversal: true,
	}
}

func airIndiaLinks(o, d string) Result {
	return Result{
		URL:         "https://www.airindia.com/in/en/book.html?from=" + o + "&to=" + d,
		FallbackURL: "https://www.airindia.com/",
		IsUniversal: true,
	}
}

func vistaraLinks(o, d string) Result {
	return Result{
		URL:         "https://www.airvistara.com/in/en/book?from=" + o + "&to=" + d,
		FallbackURL: "https://www.airvistara.com/",
		IsUniversal: true,
	}
}

func irctcLinks(o, d string) Result {
	query := "train-search?src=" + o + "&dst=" + d
	web := "https://www.irctc.co.in/nget/" + query
	return Result{
		URL:           "irctc://" + query,
		FallbackURL:   web,
		AndroidIntent: androidIntent(query, "irctc", "cris.org.in.prs.ima", web),
	}
}

func redBusLinks(o, d string) Result {
	query := "search?fromCityName=" + o + "&toCityName=" + d
	web := "https://www.redbus.in/" + query
	return Result{
		URL:           "redbus://" + query,
		FallbackURL:   web,
		AndroidIntent: androidIntent(query, "redbus", "in.redbus.android", web),
	}
}

func zingBusLinks(o, d string) Result {
	return Result{
		URL:         "https://www.zingbus.com/search?fromCityName=" + o + "&toCityName=" + d,
		FallbackURL: "https://www.zingbus.com/",
		IsUniversal: true,
	}
}

func intrCityLinks(o, d string) Result {
	return Result{
		URL:         "https://www.intrcity.com/search?src=" + o + "&dst=" + d,
		FallbackURL: "https://www.intrcity.com/",
		IsUniversal: true,
	}
}

func genericLinks(o, d, mode string) Result {
	web := "https://www.google.com/maps/dir/?api=1&origin=" + o + "&destination=" + d + "&travelmode=" + travelMode(mode)
	return Result{URL: web, FallbackURL: web, IsUniversal: true}
}

func travelMode(mode string) string {
	switch mode {
	case "CAB":
		return "driving"
	case "BUS", "TRAIN", "FLIGHT", "MIXED":
		return "transit"
	default:
		return "driving"
	}
}
