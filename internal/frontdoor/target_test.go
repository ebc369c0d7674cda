package frontdoor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigin(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/myrepo", []string{"/myrepo"}},
		{"/", []string{"/"}},
		{"/myrepo:v1.0", []string{"/myrepo", "v1.0"}},
		{"/a:b:c", []string{"/a", "b", "c"}},
		{"/repo:", []string{"/repo", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			segments := SplitOrigin(tt.path)
			assert.Equal(t, tt.want, segments)
			assert.Equal(t, tt.path, JoinOrigin(segments))
		})
	}
}

func TestBuildRedirectPath(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"repository only", "/myrepo", "/ui/image/myrepo"},
		{"repository and tag", "/myrepo:v1.0", "/ui/image/myrepo/tag/v1.0"},
		{"root", "/", "/ui/"},
		{"namespaced repository", "/library/nginx", "/ui/image/library%2Fnginx"},
		{"namespaced with tag", "/library/nginx:1.27-alpine", "/ui/image/library%2Fnginx/tag/1.27-alpine"},
		{"unreserved characters kept", "/my_repo.name~x-y", "/ui/image/my_repo.name~x-y"},
		{"escaped input escaped again", "/my%20repo", "/ui/image/my%2520repo"},
		{"tag copied verbatim", "/repo:v1%2B2", "/ui/image/repo/tag/v1%2B2"},
		{"empty repository with tag", "/:v1", "/ui/image//tag/v1"},
		{"too many segments", "/a:b:c", "/ui/"},
		{"digest like reference", "/repo@sha256:abc:def", "/ui/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRedirectPath(SplitOrigin(tt.origin)))
		})
	}
}

func TestBuildRedirectPath_NoSegments(t *testing.T) {
	assert.Equal(t, "/ui/", BuildRedirectPath(nil))
	assert.Equal(t, "/ui/", BuildRedirectPath([]string{}))
}

func TestBuildRedirectPath_SegmentWithoutLeadingSlash(t *testing.T) {
	assert.Equal(t, "/ui/image/repo", BuildRedirectPath([]string{"repo"}))
}

func TestEscapeComponent(t *testing.T) {
	assert.Equal(t, "abcXYZ019-._~", escapeComponent("abcXYZ019-._~"))
	assert.Equal(t, "a%2Fb%3Ac%40d%20e", escapeComponent("a/b:c@d e"))
	assert.Equal(t, "%C3%A9", escapeComponent("é"))
}
