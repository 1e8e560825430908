package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

const authzDialTimeout = 1500 * time.Millisecond

// PingService verifies that a TCP listener answers at the service URL.
// It never speaks the protocol, it only proves the host:port is reachable,
// which is enough for readiness checks.
func PingService(serviceURL string, timeout time.Duration) error {
	parsed, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	port := parsed.Port()
	if port == "" {
		if parsed.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(parsed.Hostname(), port), timeout)
	if err != nil {
		return fmt.Errorf("%s unreachable: %w", parsed.Hostname(), err)
	}
	return conn.Close()
}

// PingAuthorizer checks that the Authorizer identity service is reachable.
func PingAuthorizer(authzURL string) error {
	return PingService(authzURL, authzDialTimeout)
}
