package status

/*
typofuzz — domain typosquatting generator and registration status checker
Copyright (C) 2025  typofuzz contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
)

// refusedTransport simulates a host with no listening HTTP server.
type refusedTransport struct{}

func (refusedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
}

// staticTransport answers every request with a fixed status and body.
type staticTransport struct {
	status int
	body   string
}

func (t staticTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: t.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Request:    r,
	}, nil
}

func TestParkedContent(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		parked  bool
	}{
		{"Sale banner", "<h1>This Domain May Be For Sale</h1>", true},
		{"Parked keyword", "This domain is PARKED free, courtesy of the registrar", true},
		{"Sedo lander", "<title>sedo.com</title>", true},
		{"Parking keyword", "domain parking service", true},
		{"Under construction", "Site Under Construction", true},
		{"Coming soon", "Coming Soon!", true},
		{"GoDaddy parked combo", "Proudly parked with GoDaddy", true},
		{"GoDaddy alone", "Buy domains at GoDaddy today", false},
		{"Real site", "<html><body>Welcome to our product documentation.</body></html>", false},
		{"Empty", "", false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParkedContent(tc.content); got != tc.parked {
				t.Errorf("ParkedContent(%q) = %v; want %v", tc.content, got, tc.parked)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		err     error
		timeout bool
	}{
		{"Deadline exceeded", context.DeadlineExceeded, true},
		{"DNS timeout", &net.DNSError{Err: "i/o timeout", IsTimeout: true}, true},
		{"NXDOMAIN", &net.DNSError{Err: "no such host", IsNotFound: true}, false},
		{"Plain error", errors.New("boom"), false},
	}
	for _, tc := range testCases {
		if got := isTimeout(tc.err); got != tc.timeout {
			t.Errorf("isTimeout(%v) = %v; want %v", tc.err, got, tc.timeout)
		}
	}
}

func TestProbeUnreachableServerMeansRegistered(t *testing.T) {
	t.Parallel()
	// Both schemes fail to connect; DNS already resolved, so the
	// domain counts as registered.
	tier := &DNSHTTPTier{Client: &http.Client{Transport: refusedTransport{}}}
	if got := tier.probe(context.Background(), "example.com"); got != Registered {
		t.Errorf("probe = %q; want %q", got, Registered)
	}
}

func TestProbeContentClassification(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		status   int
		body     string
		expected Outcome
	}{
		{"Parking lander", http.StatusOK, "<title>This domain may be for sale</title>", Parked},
		{"Active site", http.StatusOK, "<html><body>Welcome</body></html>", Registered},
		{"Empty body", http.StatusOK, "", Registered},
		{"Server error on both schemes", http.StatusInternalServerError, "oops", Registered},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tier := &DNSHTTPTier{Client: &http.Client{Transport: staticTransport{status: tc.status, body: tc.body}}}
			if got := tier.probe(context.Background(), "example.com"); got != tc.expected {
				t.Errorf("probe = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestDNSHTTPTierResolvingNameDeadServer(t *testing.T) {
	t.Parallel()
	// localhost resolves everywhere; the refused probe must still
	// yield registered, never available.
	tier := &DNSHTTPTier{Client: &http.Client{Transport: refusedTransport{}}}
	outcome, err := tier.Check(context.Background(), "localhost")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if outcome != Registered {
		t.Errorf("Check = %q; want %q", outcome, Registered)
	}
}

func TestDNSHTTPTierNonResolvingName(t *testing.T) {
	t.Parallel()
	// Reserved TLD guaranteed not to resolve (RFC 2606).
	tier := &DNSHTTPTier{}
	outcome, err := tier.Check(context.Background(), "nonexistent-host.invalid")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if outcome != Available && outcome != Timeout {
		t.Errorf("Check = %q; want available (or timeout on broken resolvers)", outcome)
	}
}
