// Package fetcher provides the outbound HTTP client shared by every widget
// provider: URL validation, per-host circuit breaking, a body size limit and
// mapping of failures onto the fetch error taxonomy.
package fetcher

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"newtab-feed/internal/usecase/fetch"
)

// ErrPrivateIP indicates the URL resolves to an address the client refuses
// to contact. It wraps fetch.ErrInvalidURL.
var ErrPrivateIP = fmt.Errorf("%w: private address", fetch.ErrInvalidURL)

var errTooManyRedirects = errors.New("too many redirects")

// lookupIP is swapped in tests.
var lookupIP = net.LookupIP

// validateURL rejects anything but absolute http(s) URLs and, when
// denyPrivateIPs is set, hosts resolving to loopback, private or link-local
// addresses. It returns the hostname for circuit breaker keying.
func validateURL(urlStr string, denyPrivateIPs bool) (string, error) {
	u, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("%w: parse error: %v", fetch.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", fetch.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return "", fmt.Errorf("%w: empty hostname", fetch.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return hostname, nil
	}

	ips, err := lookupIP(hostname)
	if err != nil {
		return "", fmt.Errorf("%w: DNS lookup failed for %s: %v", fetch.ErrTransport, hostname, err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return "", fmt.Errorf("%w: hostname '%s' resolves to %s", ErrPrivateIP, hostname, ip.String())
		}
	}

	return hostname, nil
}

// isPrivateIP reports loopback (127/8, ::1), private (RFC 1918, fc00::/7)
// and link-local (169.254/16, fe80::/10) addresses.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
