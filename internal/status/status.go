/*
Package status implements the cascading registration status checks: RDAP
first, then WHOIS, then a DNS lookup combined with an HTTP content probe.
Each tier either produces a definitive Outcome or fails with an error, in
which case the resolver moves on to the next tier.
*/
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
	"time"
)

// Outcome is the final registration status assigned to a domain.
type Outcome string

// The four possible outcomes. Every resolution ends in exactly one of
// these; tier failures never leak to callers as outcomes.
const (
	// Available means no registration was found.
	Available Outcome = "available"
	// Registered means the domain has an active registration.
	Registered Outcome = "registered"
	// Parked means the domain is registered but shows parking signals
	// (hold status, parking registrar, or sale-page content).
	Parked Outcome = "parked"
	// Timeout means the checks could not complete in time.
	Timeout Outcome = "timeout"
)

// Per-tier timeouts. These bound each network operation independently of
// the overall resolution.
const (
	// RDAPTimeout caps a single RDAP HTTP request.
	RDAPTimeout = 5 * time.Second
	// RDAPRetryDelay is the pause before the single retry after an HTTP 429.
	RDAPRetryDelay = 500 * time.Millisecond

	// WhoisConnectTimeout caps the TCP connect to the WHOIS server.
	WhoisConnectTimeout = 10 * time.Second
	// WhoisWriteTimeout caps sending the query line.
	WhoisWriteTimeout = 5 * time.Second
	// WhoisReadTimeout caps reading the full response.
	WhoisReadTimeout = 10 * time.Second

	// DNSTimeout caps the address lookup in the final tier.
	DNSTimeout = 5 * time.Second
	// ProbeTimeout caps each HTTP content probe request.
	ProbeTimeout = 10 * time.Second
	// ProbeBodyTimeout caps reading the probe response body.
	ProbeBodyTimeout = 5 * time.Second

	// MaxProbeBody limits how much of a probe response body is read for
	// parking signature scanning.
	MaxProbeBody = 512 * 1024
)

// Tier is a single registration status check. A nil error means the
// Outcome is definitive; a non-nil error means this tier could not
// determine a status and the next tier should be tried.
type Tier interface {
	// Name identifies the tier in logs and metrics.
	Name() string
	// Check determines the registration status of domain, which is
	// already normalized to its registrable form.
	Check(ctx context.Context, domain string) (Outcome, error)
}
