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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/typofuzz/typofuzz/internal/client"
	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/metrics"
	"github.com/typofuzz/typofuzz/internal/registry"
)

// RDAPTier checks registration status over RDAP. It is the fastest tier:
// a single HTTPS GET against the registry, with 404 meaning available and
// 200 meaning registered. TLDs without a known endpoint fail immediately
// so the resolver can fall through to WHOIS.
type RDAPTier struct {
	// Client defaults to the shared application client when nil.
	Client *http.Client
}

// Name implements Tier.
func (t *RDAPTier) Name() string { return "rdap" }

// rdapResponse is the subset of the RDAP domain object (RFC 9083) needed
// for parking classification. Entities carry jCard arrays with mixed
// element types, so those stay as raw JSON.
type rdapResponse struct {
	Status   []string     `json:"status"`
	Entities []rdapEntity `json:"entities"`
}

type rdapEntity struct {
	Roles      []string        `json:"roles"`
	Handle     string          `json:"handle"`
	Name       string          `json:"name"`
	VCardArray json.RawMessage `json:"vcardArray"`
	PublicIDs  []rdapPublicID  `json:"publicIds"`
}

type rdapPublicID struct {
	Identifier string `json:"identifier"`
}

// Check implements Tier.
func (t *RDAPTier) Check(ctx context.Context, name string) (Outcome, error) {
	endpoint, ok := registry.RDAPEndpoint(domain.TLD(name))
	if !ok {
		return "", fmt.Errorf("no RDAP endpoint for TLD %q", domain.TLD(name))
	}
	url := endpoint + name

	outcome, status, err := t.query(ctx, url, false)
	if err != nil {
		return "", err
	}
	if status == http.StatusTooManyRequests {
		// Rate limited; wait briefly and try exactly once more. The
		// retry classifies by status code alone: 200 means registered,
		// 404 means available, no parked heuristic.
		select {
		case <-time.After(RDAPRetryDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		outcome, status, err = t.query(ctx, url, true)
		if err != nil {
			return "", err
		}
		if status == http.StatusTooManyRequests {
			return "", fmt.Errorf("RDAP server still rate limiting after retry")
		}
	}
	if outcome == "" {
		return "", fmt.Errorf("RDAP server returned status %d", status)
	}
	metrics.RecordTierOutcome(t.Name(), string(outcome))
	return outcome, nil
}

// query performs one RDAP GET. It returns the derived outcome (empty on
// unexpected status codes) and the raw HTTP status so the caller can
// drive the 429 retry. With statusOnly set, a 200 is classified as
// registered without inspecting the body.
func (t *RDAPTier) query(ctx context.Context, url string, statusOnly bool) (Outcome, int, error) {
	ctx, cancel := context.WithTimeout(ctx, RDAPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Accept", "application/rdap+json")
	req.Header.Set("User-Agent", client.UserAgent)

	httpClient := t.Client
	if httpClient == nil {
		httpClient = client.GetHTTPClient()
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if statusOnly {
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			return Registered, resp.StatusCode, nil
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, MaxProbeBody))
		if err != nil {
			// Registration is confirmed by the 200 even if the body
			// was cut short.
			return Registered, resp.StatusCode, nil
		}
		return classifyRDAP(body), resp.StatusCode, nil
	case http.StatusNotFound:
		return Available, resp.StatusCode, nil
	case http.StatusTooManyRequests:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", resp.StatusCode, nil
	default:
		return "", resp.StatusCode, nil
	}
}

// classifyRDAP decides between registered and parked for a 200 response.
// Unparseable bodies count as registered since the status code already
// confirmed the registration exists.
func classifyRDAP(body []byte) Outcome {
	var resp rdapResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Registered
	}
	if rdapParked(&resp) {
		return Parked
	}
	return Registered
}

// rdapParked reports whether the RDAP object carries parking signals:
// a hold or deletion status, or a registrar known for domain parking.
func rdapParked(resp *rdapResponse) bool {
	for _, s := range resp.Status {
		lower := strings.ToLower(s)
		if strings.Contains(lower, "client hold") ||
			strings.Contains(lower, "redemption") ||
			strings.Contains(lower, "pending delete") {
			return true
		}
	}

	for i := range resp.Entities {
		entity := &resp.Entities[i]
		if !hasRole(entity.Roles, "registrar") {
			continue
		}
		name := strings.ToLower(registrarName(entity))
		if name == "" {
			continue
		}
		if strings.Contains(name, "sedo") ||
			strings.Contains(name, "parking") ||
			strings.Contains(name, "bodis") ||
			strings.Contains(name, "hugedomains") {
			return true
		}
	}
	return false
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}

// registrarName extracts a display name for the registrar entity. The
// jCard "fn" property wins, then the first public ID, then the entity
// handle or name.
func registrarName(entity *rdapEntity) string {
	if name := vcardFullName(entity.VCardArray); name != "" {
		return name
	}
	if len(entity.PublicIDs) > 0 && entity.PublicIDs[0].Identifier != "" {
		return entity.PublicIDs[0].Identifier
	}
	if entity.Handle != "" {
		return entity.Handle
	}
	return entity.Name
}

// vcardFullName pulls the "fn" value out of a jCard array. The format is
// ["vcard", [["version",{},"text","4.0"], ["fn",{},"text","Name"], ...]].
func vcardFullName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var card []json.RawMessage
	if err := json.Unmarshal(raw, &card); err != nil || len(card) < 2 {
		return ""
	}
	var props [][]json.RawMessage
	if err := json.Unmarshal(card[1], &props); err != nil {
		return ""
	}
	for _, prop := range props {
		if len(prop) < 4 {
			continue
		}
		var key string
		if err := json.Unmarshal(prop[0], &key); err != nil || key != "fn" {
			continue
		}
		var value string
		if err := json.Unmarshal(prop[3], &value); err == nil {
			return value
		}
	}
	return ""
}
