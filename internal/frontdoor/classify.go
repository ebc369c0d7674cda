// Package frontdoor decides what to do with every request reaching the UI
// host: serve a static asset, serve the SPA shell, or translate a short
// registry style path such as /library/nginx:1.27 into a UI deep link and
// redirect there.
//
// The decision is a pure function of the request path and three headers
// (Host, X-Forwarded-Host, X-Forwarded-Proto). Nothing is shared between
// requests, so a Handler may serve any number of them concurrently.
package frontdoor

import "strings"

// Route is the outcome of classifying a request path.
type Route int

const (
	// RouteRedirect sends the client to a UI deep link.
	RouteRedirect Route = iota
	// RouteStatic serves a file from the asset root.
	RouteStatic
	// RouteShell serves the SPA shell document.
	RouteShell
	// RouteReject answers 404 without redirecting.
	RouteReject
)

func (r Route) String() string {
	switch r {
	case RouteRedirect:
		return "redirect"
	case RouteStatic:
		return "static"
	case RouteShell:
		return "shell"
	case RouteReject:
		return "reject"
	default:
		return "unknown"
	}
}

const (
	uiPrefix      = "/ui"
	uiImagePrefix = "/ui/image"
)

// Classify maps a request path to a Route. The first matching rule wins:
//
//	/favicon.ico, /robots.txt         static
//	/ui/home, /ui/login, /ui/explore  shell
//	/ui/image, /ui/image/...          shell
//	/ui, /ui/...                      static
//	any ':' segment starting with /ui reject
//	everything else                   redirect
func Classify(path string) Route {
	switch path {
	case "/favicon.ico", "/robots.txt":
		return RouteStatic
	case "/ui/home", "/ui/login", "/ui/explore":
		return RouteShell
	}

	switch {
	case path == uiImagePrefix || strings.HasPrefix(path, uiImagePrefix+"/"):
		return RouteShell
	case path == uiPrefix || strings.HasPrefix(path, uiPrefix+"/"):
		return RouteStatic
	}

	// A UI path smuggled in as a later segment, or one that only shares the
	// /ui prefix (/uix), must never be turned into a redirect.
	for _, segment := range SplitOrigin(path) {
		if strings.HasPrefix(segment, uiPrefix) {
			return RouteReject
		}
	}
	return RouteRedirect
}
