// internal/pipeline/neterr.go
package pipeline

import (
	"errors"
	"net"
	"net/url"
	"syscall"
)

// RefusedAddr reports whether err is a connection-refused failure and, when it
// is, the host:port that refused the dial.
func RefusedAddr(err error) (string, bool) {
	if !errors.Is(err, syscall.ECONNREFUSED) {
		return "", false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Addr != nil {
		return opErr.Addr.String(), true
	}
	return "", true
}

// HostPort extracts the host:port of a service base URL.
func HostPort(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	return u.Host
}
