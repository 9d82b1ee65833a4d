package fuzz

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
	"math/rand"
	"strings"

	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/score"
)

type namedGenerator struct {
	name string
	fn   Generator
}

// enabledGenerators resolves the enabled set against the registry in
// canonical order so streams behave deterministically for a given
// seed.
func enabledGenerators(enabled map[string]struct{}, dict []string) []namedGenerator {
	registry := Registry(dict)

	var gens []namedGenerator
	for _, name := range allTransformations {
		if _, ok := enabled[name]; !ok {
			continue
		}
		gens = append(gens, namedGenerator{name: name, fn: registry[name]})
	}
	// Aliases resolve to transformations outside the canonical list.
	for name := range enabled {
		if fn, ok := registry[name]; ok && !containsName(gens, name) && !inCanonical(name) {
			gens = append(gens, namedGenerator{name: name, fn: fn})
		}
	}
	return gens
}

func containsName(gens []namedGenerator, name string) bool {
	for _, g := range gens {
		if g.name == name {
			return true
		}
	}
	return false
}

func inCanonical(name string) bool {
	for _, n := range allTransformations {
		if n == name {
			return true
		}
	}
	return false
}

// ComboStream produces candidates by chaining 2 to 5 random
// transformations, re-splitting the domain between steps so a TLD swap
// mid-chain feeds the next transformation correctly. Candidates are
// deduplicated, validated, and filtered by the similarity threshold.
type ComboStream struct {
	label      string
	tld        string
	original   string
	generators []namedGenerator
	threshold  float64
	rng        *rand.Rand

	seen        map[string]struct{}
	attempts    int
	maxAttempts int
}

// NewComboStream builds a combo source for the original label and TLD.
// maxAttempts bounds the generation loop so a tight threshold cannot
// spin forever; zero or negative means a generous default.
func NewComboStream(label, tld string, enabled map[string]struct{}, dict []string, threshold float64, maxAttempts int, rng *rand.Rand) *ComboStream {
	if maxAttempts <= 0 {
		maxAttempts = 1 << 20
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &ComboStream{
		label:       label,
		tld:         tld,
		original:    strings.ToLower(label + "." + tld),
		generators:  enabledGenerators(enabled, dict),
		threshold:   threshold,
		rng:         rng,
		seen:        make(map[string]struct{}),
		maxAttempts: maxAttempts,
	}
}

// Next returns the next candidate that survives dedup, validity, and
// threshold checks, or false when the attempt budget is spent.
func (s *ComboStream) Next() (domain.Candidate, bool) {
	if len(s.generators) == 0 {
		return domain.Candidate{}, false
	}

	for s.attempts < s.maxAttempts {
		s.attempts++

		current, currentTLD := s.label, s.tld
		applied := 0

		steps := 2 + s.rng.Intn(4)
		for i := 0; i < steps; i++ {
			gen := s.generators[s.rng.Intn(len(s.generators))]
			results := gen.fn(current, currentTLD)
			if len(results) == 0 {
				continue
			}
			picked := results[s.rng.Intn(len(results))]
			current, currentTLD = domain.Split(picked)
			applied++
		}
		if applied == 0 {
			continue
		}

		final := current + "." + currentTLD
		if strings.ToLower(final) == s.original {
			continue
		}
		if _, dup := s.seen[final]; dup {
			continue
		}
		if !domain.IsValid(final) {
			continue
		}
		s.seen[final] = struct{}{}

		sc := score.Calculate(s.original, final, "combo")
		if s.threshold > 0 && sc.Combined < s.threshold {
			continue
		}

		return domain.Candidate{Name: final, Transform: "combo", Score: sc.Combined}, true
	}

	return domain.Candidate{}, false
}

// SingleStream applies each enabled transformation once to the
// original domain and yields the results in order. The first
// transformation to produce a domain claims it.
type SingleStream struct {
	candidates []domain.Candidate
	pos        int
}

// NewSingleStream materializes the per-transformation candidate list
// up front; single-pass generation is small enough that laziness buys
// nothing.
func NewSingleStream(label, tld string, enabled map[string]struct{}, dict []string, threshold float64) *SingleStream {
	original := strings.ToLower(label + "." + tld)
	seen := make(map[string]struct{})
	var candidates []domain.Candidate

	for _, gen := range enabledGenerators(enabled, dict) {
		for _, variant := range gen.fn(label, tld) {
			if strings.ToLower(variant) == original {
				continue
			}
			if _, dup := seen[variant]; dup {
				continue
			}
			if !domain.IsValid(variant) {
				continue
			}
			seen[variant] = struct{}{}

			sc := score.Calculate(original, variant, gen.name)
			if threshold > 0 && sc.Combined < threshold {
				continue
			}
			candidates = append(candidates, domain.Candidate{
				Name:      variant,
				Transform: gen.name,
				Score:     sc.Combined,
			})
		}
	}

	return &SingleStream{candidates: candidates}
}

func (s *SingleStream) Next() (domain.Candidate, bool) {
	if s.pos >= len(s.candidates) {
		return domain.Candidate{}, false
	}
	c := s.candidates[s.pos]
	s.pos++
	return c, true
}
