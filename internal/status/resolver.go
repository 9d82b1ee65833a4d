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
	"log"

	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/metrics"
)

// Resolver runs the tier cascade for a single domain. Tiers are tried
// in order; the first definitive outcome wins. The final tier is total,
// so Resolve always produces an outcome.
type Resolver struct {
	tiers   []Tier
	verbose bool
}

// NewResolver builds the default cascade: RDAP, WHOIS, then DNS+HTTP.
func NewResolver() *Resolver {
	return &Resolver{
		tiers: []Tier{
			&RDAPTier{},
			&WhoisTier{},
			&DNSHTTPTier{},
		},
	}
}

// NewResolverWithTiers builds a resolver over an explicit cascade.
// Primarily for tests.
func NewResolverWithTiers(tiers ...Tier) *Resolver {
	return &Resolver{tiers: tiers}
}

// SetVerbose enables per-tier fallthrough logging.
func (r *Resolver) SetVerbose(v bool) { r.verbose = v }

// Resolve determines the registration status of input. The domain is
// reduced to its registrable form first so subdomain candidates check
// the name that could actually be registered.
func (r *Resolver) Resolve(ctx context.Context, input string) Outcome {
	name := domain.Registrable(domain.Normalize(input))

	for _, tier := range r.tiers {
		select {
		case <-ctx.Done():
			metrics.RecordOutcome(string(Timeout))
			return Timeout
		default:
		}

		outcome, err := tier.Check(ctx, name)
		if err != nil {
			metrics.RecordTierFailure(tier.Name())
			if r.verbose {
				log.Printf("%s check failed for %s: %v", tier.Name(), name, err)
			}
			continue
		}
		metrics.RecordOutcome(string(outcome))
		return outcome
	}

	// Unreachable with the default cascade; kept for custom cascades
	// whose last tier can fail.
	metrics.RecordOutcome(string(Timeout))
	return Timeout
}
