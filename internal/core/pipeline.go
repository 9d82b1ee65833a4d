package core

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

	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/metrics"
	"github.com/typofuzz/typofuzz/internal/status"
)

// Source yields candidate domains one at a time. Next returns false
// when the stream is exhausted.
type Source interface {
	Next() (domain.Candidate, bool)
}

// Match is a candidate whose resolved outcome passed the pipeline
// filter.
type Match struct {
	Candidate domain.Candidate
	Outcome   status.Outcome
}

// Filter decides whether an outcome counts as a match.
type Filter struct {
	Name string
	Pass func(status.Outcome) bool
}

// Predefined filters for the two interesting hunts.
var (
	// FilterAvailable keeps candidates that can still be registered.
	FilterAvailable = Filter{Name: "available", Pass: func(o status.Outcome) bool {
		return o == status.Available
	}}
	// FilterRegistered keeps candidates someone already holds, parked
	// ones included.
	FilterRegistered = Filter{Name: "registered", Pass: func(o status.Outcome) bool {
		return o == status.Registered || o == status.Parked
	}}
	// FilterAny keeps everything; used when the caller wants raw
	// outcomes rather than a hunt.
	FilterAny = Filter{Name: "any", Pass: func(status.Outcome) bool {
		return true
	}}
)

// Pipeline pulls fixed-size groups of candidates from a Source,
// resolves each group through the Runner, and stops as soon as enough
// matches are collected. Early termination means an exhausted Source is
// never required: streams may be effectively unbounded.
type Pipeline struct {
	Runner    *Runner
	BatchSize int
	// Limit is the number of matches to collect; zero or negative
	// means run until the source is exhausted.
	Limit  int
	Filter Filter
}

// Run drives the pipeline until Limit matches are found, the source
// runs dry, or the context is cancelled. Duplicate candidates and
// candidates equal to the original registrable domain are skipped
// before resolution.
func (p *Pipeline) Run(ctx context.Context, src Source, original string) []Match {
	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	pass := p.Filter.Pass
	if pass == nil {
		pass = FilterAny.Pass
	}

	skip := domain.Registrable(domain.Normalize(original))
	seen := map[string]struct{}{skip: {}}

	var matches []Match
	for p.Limit <= 0 || len(matches) < p.Limit {
		select {
		case <-ctx.Done():
			return matches
		default:
		}

		batch, index := p.nextBatch(src, seen, batchSize)
		if len(batch) == 0 {
			return matches
		}

		results := p.Runner.RunBatch(ctx, batch)
		if metrics.IsMetricsEnabled() {
			metrics.GetMetrics().BatchesProcessed.WithLabelValues(p.Filter.Name).Inc()
		}

		for _, res := range results {
			if !pass(res.Outcome) {
				continue
			}
			cand, ok := index[res.Domain]
			if !ok {
				continue
			}
			matches = append(matches, Match{Candidate: cand, Outcome: res.Outcome})
			if metrics.IsMetricsEnabled() {
				metrics.GetMetrics().MatchesFound.WithLabelValues(p.Filter.Name).Inc()
			}
			if p.Limit > 0 && len(matches) >= p.Limit {
				return matches
			}
		}
	}
	return matches
}

// nextBatch pulls up to batchSize fresh candidates from the source,
// deduplicating against everything seen so far. The returned index maps
// domain name back to its candidate for result correlation.
func (p *Pipeline) nextBatch(src Source, seen map[string]struct{}, batchSize int) ([]string, map[string]domain.Candidate) {
	batch := make([]string, 0, batchSize)
	index := make(map[string]domain.Candidate, batchSize)
	for len(batch) < batchSize {
		cand, ok := src.Next()
		if !ok {
			break
		}
		name := domain.Normalize(cand.Name)
		if name == "" || !domain.IsValid(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		cand.Name = name
		batch = append(batch, name)
		index[name] = cand
	}
	return batch, index
}
