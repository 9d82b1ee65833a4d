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
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/metrics"
	"github.com/typofuzz/typofuzz/internal/registry"
)

// WhoisTier checks registration status over the WHOIS protocol: one TCP
// query to the TLD's server, response text scanned for availability and
// registration markers. Responses matching neither fail the tier so the
// resolver can fall through to DNS.
type WhoisTier struct {
	// ServerFor overrides WHOIS server selection; used by tests. When
	// nil the registry table is consulted.
	ServerFor func(tld string) string
	// Dialer defaults to a plain net.Dialer.
	Dialer *net.Dialer
}

// Name implements Tier.
func (t *WhoisTier) Name() string { return "whois" }

// Check implements Tier.
func (t *WhoisTier) Check(ctx context.Context, name string) (Outcome, error) {
	server := t.server(domain.TLD(name))

	dialer := t.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	dialCtx, cancel := context.WithTimeout(ctx, WhoisConnectTimeout)
	defer cancel()
	conn, err := dialer.DialContext(dialCtx, "tcp", server)
	if err != nil {
		return "", fmt.Errorf("whois dial %s: %w", server, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(WhoisWriteTimeout)); err != nil {
		return "", err
	}
	if _, err := conn.Write([]byte(name + "\r\n")); err != nil {
		return "", fmt.Errorf("whois write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(WhoisReadTimeout)); err != nil {
		return "", err
	}
	response, err := io.ReadAll(io.LimitReader(conn, MaxProbeBody))
	if err != nil && len(response) == 0 {
		return "", fmt.Errorf("whois read: %w", err)
	}

	outcome, err := ClassifyWhois(string(response))
	if err != nil {
		return "", err
	}
	metrics.RecordTierOutcome(t.Name(), string(outcome))
	return outcome, nil
}

func (t *WhoisTier) server(tld string) string {
	if t.ServerFor != nil {
		return t.ServerFor(tld)
	}
	return registry.WhoisServer(tld)
}

// ClassifyWhois maps a raw WHOIS response to an outcome. Availability
// markers are checked before registration markers since some servers
// echo field names like "registrar:" in their not-found boilerplate.
// A response matching neither set is an error: the server format is
// unknown and the next tier should decide.
func ClassifyWhois(response string) (Outcome, error) {
	data := strings.ToLower(response)

	if strings.Contains(data, "no match") ||
		strings.Contains(data, "not found") ||
		strings.Contains(data, "no entries found") ||
		strings.Contains(data, "domain status: available") ||
		strings.Contains(data, "domain not found") ||
		strings.Contains(data, "no data found") {
		return Available, nil
	}

	if strings.Contains(data, "registrar:") ||
		strings.Contains(data, "registrant:") ||
		strings.Contains(data, "creation date:") ||
		strings.Contains(data, "created:") {
		if strings.Contains(data, "parked") ||
			strings.Contains(data, "parking") ||
			strings.Contains(data, "domain for sale") ||
			strings.Contains(data, "sedo") ||
			strings.Contains(data, "bodis") ||
			strings.Contains(data, "sedoparking") {
			return Parked, nil
		}
		return Registered, nil
	}

	return "", fmt.Errorf("whois response format not recognized")
}
