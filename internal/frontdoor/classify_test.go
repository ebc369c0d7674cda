package frontdoor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/favicon.ico", RouteStatic},
		{"/robots.txt", RouteStatic},
		{"/ui/home", RouteShell},
		{"/ui/login", RouteShell},
		{"/ui/explore", RouteShell},
		{"/ui/image", RouteShell},
		{"/ui/image/", RouteShell},
		{"/ui/image/library%2Fnginx", RouteShell},
		{"/ui/image/myrepo/tag/v1.0", RouteShell},
		{"/ui/image/a:b", RouteShell},
		{"/ui/image/index.html", RouteShell},
		{"/ui/imagex", RouteStatic},
		{"/ui/images/logo.png", RouteStatic},
		{"/ui", RouteStatic},
		{"/ui/", RouteStatic},
		{"/ui/main.js", RouteStatic},
		{"/ui/assets/logo.svg", RouteStatic},
		{"/ui/home/extra", RouteStatic},
		{"/", RouteRedirect},
		{"/myrepo", RouteRedirect},
		{"/myrepo:v1.0", RouteRedirect},
		{"/library/nginx:1.27", RouteRedirect},
		{"/favicon.ico/x", RouteRedirect},
		{"/a:b:c", RouteRedirect},
		{"/uix", RouteReject},
		{"/repo:/ui/home", RouteReject},
		{"/a:b:/ui", RouteReject},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestClassify_RedirectTargetsAreNeverRedirected(t *testing.T) {
	origins := []string{"/", "/myrepo", "/myrepo:v1.0", "/library/nginx:latest", "/a:b:c", "/my repo:x y"}

	for _, origin := range origins {
		t.Run(origin, func(t *testing.T) {
			target := BuildRedirectPath(SplitOrigin(origin))
			assert.NotEqual(t, RouteRedirect, Classify(target), "target %s", target)
			assert.NotEqual(t, RouteReject, Classify(target), "target %s", target)
		})
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "redirect", RouteRedirect.String())
	assert.Equal(t, "static", RouteStatic.String())
	assert.Equal(t, "shell", RouteShell.String())
	assert.Equal(t, "reject", RouteReject.String())
	assert.Equal(t, "unknown", Route(42).String())
}
