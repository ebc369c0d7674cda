package frontdoor

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

const (
	sessionCookieName  = "user"
	sessionCookieValue = "anonymous"
	sessionCookieTTL   = 30 * time.Second
)

// ErrURIConstruction means the redirect target is not a valid absolute URI.
var ErrURIConstruction = errors.New("cannot build redirect URI")

// IncomingRequest is the part of a request the redirect track reads.
type IncomingRequest struct {
	// Path is the escaped request path as sent by the client.
	Path   string
	Host   string
	Header http.Header
}

// RedirectTarget is the absolute location a redirect points at.
type RedirectTarget struct {
	Scheme    string
	Authority Authority
	Path      string
	// Origin is the path the target was derived from, for logging.
	Origin string
}

// InferScheme trusts X-Forwarded-Proto only for the exact value "https".
func InferScheme(forwardedProto string) string {
	if forwardedProto == SchemeHTTPS {
		return SchemeHTTPS
	}
	return SchemeHTTP
}

// PlanRedirect resolves the authority and builds the target for req. The
// only error is ErrMissingHost.
func PlanRedirect(req IncomingRequest) (RedirectTarget, error) {
	authority, err := ResolveAuthority(req.Host, req.Header.Get(HeaderForwardedHost))
	if err != nil {
		return RedirectTarget{}, err
	}

	segments := SplitOrigin(req.Path)
	return RedirectTarget{
		Scheme:    InferScheme(req.Header.Get(HeaderForwardedProto)),
		Authority: authority,
		Path:      BuildRedirectPath(segments),
		Origin:    JoinOrigin(segments),
	}, nil
}

// URI renders the target as an absolute URI. Path is used verbatim since
// the repository part is already escaped.
func (t RedirectTarget) URI() (string, error) {
	if t.Authority.IsZero() {
		return "", fmt.Errorf("%w: empty authority", ErrURIConstruction)
	}

	raw := t.Scheme + "://" + t.Authority.String() + t.Path
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrURIConstruction, err)
	}
	if u.Scheme != t.Scheme || u.Host != t.Authority.String() || u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q does not round-trip", ErrURIConstruction, raw)
	}
	return raw, nil
}

// Secure reports whether the target is served over TLS.
func (t RedirectTarget) Secure() bool {
	return t.Scheme == SchemeHTTPS
}

// SessionCookie is the short-lived anonymous session cookie the UI expects
// on arrival, scoped to the redirect host. Hosts that cannot appear in a
// Domain attribute, such as IPv6 literals, get a host-only cookie instead.
func (t RedirectTarget) SessionCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionCookieValue,
		Domain:   t.Authority.Host(),
		Path:     "/",
		Secure:   t.Secure(),
		HttpOnly: false,
		MaxAge:   int(sessionCookieTTL / time.Second),
	}
	if cookie.Valid() != nil {
		cookie.Domain = ""
	}
	return cookie
}
