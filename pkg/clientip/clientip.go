package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Extractor resolves the client address of a request. Only trusted
// forwarding headers are consulted, in order; RemoteAddr is the fallback.
type Extractor struct {
	headers []string
}

// New creates an Extractor that trusts the given headers. An empty list
// means the service is reached directly and only RemoteAddr is used.
func New(trustedHeaders ...string) *Extractor {
	e := &Extractor{}
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			e.headers = append(e.headers, http.CanonicalHeaderKey(h))
		}
	}
	return e
}

// Headers returns the trusted headers in lookup order.
func (e *Extractor) Headers() []string {
	out := make([]string, len(e.headers))
	copy(out, e.headers)
	return out
}

// IP returns the normalized client address or an empty string.
func (e *Extractor) IP(r *http.Request) string {
	for _, h := range e.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For style lists carry the client first.
		for part := range strings.SplitSeq(v, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(raw string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
