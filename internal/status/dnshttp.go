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
	"time"

	"github.com/typofuzz/typofuzz/internal/client"
	"github.com/typofuzz/typofuzz/internal/metrics"
)

// DNSHTTPTier is the tier of last resort: an address lookup decides
// registered vs available, and an HTTP content probe over http then
// https refines registered into parked when the page carries parking
// signatures. This tier is total: it always produces an outcome.
type DNSHTTPTier struct {
	// Resolver defaults to net.DefaultResolver.
	Resolver *net.Resolver
	// Client defaults to the shared application client when nil.
	Client *http.Client
}

// Name implements Tier.
func (t *DNSHTTPTier) Name() string { return "dns" }

// Check implements Tier. The returned error is always nil.
func (t *DNSHTTPTier) Check(ctx context.Context, name string) (Outcome, error) {
	resolver := t.Resolver
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	lookupCtx, cancel := context.WithTimeout(ctx, DNSTimeout)
	defer cancel()
	addrs, err := resolver.LookupIPAddr(lookupCtx, name)
	if err != nil {
		outcome := Available
		if isTimeout(err) {
			outcome = Timeout
		}
		metrics.RecordTierOutcome(t.Name(), string(outcome))
		return outcome, nil
	}
	if len(addrs) == 0 {
		metrics.RecordTierOutcome(t.Name(), string(Available))
		return Available, nil
	}

	// The name resolves; probe page content to separate parked from
	// genuinely active domains.
	outcome := t.probe(ctx, name)
	metrics.RecordTierOutcome(t.Name(), string(outcome))
	return outcome, nil
}

// isTimeout reports whether a DNS error was a deadline rather than a
// definitive NXDOMAIN-style answer.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// probe fetches the site over http, then https, and scans the first
// successful body for parking signatures. Any failure to fetch content
// still counts as registered since DNS resolution already succeeded.
func (t *DNSHTTPTier) probe(ctx context.Context, name string) Outcome {
	httpClient := t.Client
	if httpClient == nil {
		httpClient = client.GetHTTPClient()
	}

	for _, scheme := range []string{"http", "https"} {
		reqCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, scheme+"://"+name, nil)
		if err != nil {
			cancel()
			continue
		}
		req.Header.Set("User-Agent", client.UserAgent)

		resp, err := httpClient.Do(req)
		if err != nil {
			cancel()
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			cancel()
			continue
		}

		// Body read gets its own shorter deadline; a slow drip-feed
		// server should not stall the whole check.
		bodyTimer := time.AfterFunc(ProbeBodyTimeout, cancel)
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, MaxProbeBody))
		bodyTimer.Stop()
		resp.Body.Close()
		cancel()
		if readErr != nil && len(body) == 0 {
			return Registered
		}
		if ParkedContent(string(body)) {
			return Parked
		}
		return Registered
	}

	return Registered
}

// ParkedContent reports whether page content matches known parking and
// sale-page signatures.
func ParkedContent(content string) bool {
	lower := strings.ToLower(content)
	if strings.Contains(lower, "parked") ||
		strings.Contains(lower, "domain for sale") ||
		strings.Contains(lower, "this domain may be for sale") ||
		strings.Contains(lower, "sedo") ||
		strings.Contains(lower, "parking") ||
		strings.Contains(lower, "under construction") ||
		strings.Contains(lower, "coming soon") {
		return true
	}
	return strings.Contains(lower, "godaddy") && strings.Contains(lower, "parked")
}
