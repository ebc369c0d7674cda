package frontdoor

import "strings"

const (
	uiHome      = "/ui/"
	originDelim = ":"
)

// SplitOrigin splits an origin path on ':'. The result is never empty.
func SplitOrigin(path string) []string {
	return strings.Split(path, originDelim)
}

// JoinOrigin is the inverse of SplitOrigin.
func JoinOrigin(segments []string) string {
	return strings.Join(segments, originDelim)
}

// BuildRedirectPath maps origin segments to a UI route.
//
//	["/"]               -> /ui/
//	["/repo"]           -> /ui/image/<escaped repo>
//	["/repo", "tag"]    -> /ui/image/<escaped repo>/tag/<tag>
//	anything else       -> /ui/
//
// The repository is escaped as a single path component, so a namespaced
// name like library/nginx becomes library%2Fnginx and stays one UI route
// parameter. The tag is copied as received.
func BuildRedirectPath(segments []string) string {
	switch len(segments) {
	case 1:
		repository := strings.TrimPrefix(segments[0], "/")
		if repository == "" {
			return uiHome
		}
		return uiImagePrefix + "/" + escapeComponent(repository)
	case 2:
		repository := strings.TrimPrefix(segments[0], "/")
		return uiImagePrefix + "/" + escapeComponent(repository) + "/tag/" + segments[1]
	default:
		return uiHome
	}
}

// escapeComponent percent-encodes every byte outside the RFC 3986
// unreserved set. url.PathEscape leaves sub-delims such as ':' and '@'
// alone, which would let them leak into the UI route.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
