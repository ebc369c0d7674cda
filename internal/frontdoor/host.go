package frontdoor

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	HeaderForwardedHost  = "X-Forwarded-Host"
	HeaderForwardedProto = "X-Forwarded-Proto"
)

// MissingHostMessage is the exact body returned when no host can be resolved.
const MissingHostMessage = "Request is missing required `Host` header"

var (
	// ErrMissingHost means neither the forwarded nor the native host is usable.
	ErrMissingHost = errors.New("missing host context")
	// ErrMalformedAuthority is returned by ParseAuthority. ResolveAuthority
	// recovers from it by falling back to the next source.
	ErrMalformedAuthority = errors.New("malformed authority")
)

// Authority is a validated host with an optional port.
type Authority struct {
	raw  string
	host string
}

// ParseAuthority accepts "host" or "host:port". Userinfo, paths, queries,
// fragments, whitespace and percent escapes are rejected.
func ParseAuthority(s string) (Authority, error) {
	if s == "" || strings.ContainsAny(s, "/?#@% \t\r\n") {
		return Authority{}, fmt.Errorf("%w: %q", ErrMalformedAuthority, s)
	}

	u, err := url.Parse("http://" + s)
	if err != nil || u.Host != s {
		return Authority{}, fmt.Errorf("%w: %q", ErrMalformedAuthority, s)
	}

	host := u.Hostname()
	if host == "" {
		return Authority{}, fmt.Errorf("%w: %q: empty host", ErrMalformedAuthority, s)
	}
	if port := u.Port(); port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return Authority{}, fmt.Errorf("%w: %q: invalid port", ErrMalformedAuthority, s)
		}
	}

	return Authority{raw: s, host: host}, nil
}

// String returns the authority as received, port included.
func (a Authority) String() string { return a.raw }

// Host returns the host without port or IPv6 brackets.
func (a Authority) Host() string { return a.host }

func (a Authority) IsZero() bool { return a.raw == "" }

// ResolveAuthority picks the authority a redirect should point at. A
// well-formed forwarded host wins; a malformed one is ignored in favour of
// the native host. With neither, ErrMissingHost is returned.
func ResolveAuthority(native, forwarded string) (Authority, error) {
	if forwarded != "" {
		if a, err := ParseAuthority(forwarded); err == nil {
			return a, nil
		}
	}

	if native != "" {
		if a, err := ParseAuthority(native); err == nil {
			return a, nil
		}
	}

	return Authority{}, ErrMissingHost
}
