package sources

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
)

// IsNetworkError reports whether an adapter failure was connectivity-class
// (unreachable host, refused connection, timeout) as opposed to a parse error
// or an unexpected response. The resolver counts these separately to detect a
// degraded-connectivity resolution.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	msg := err.Error()
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
