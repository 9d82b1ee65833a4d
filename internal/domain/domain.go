/*
Package domain holds the candidate value type and the string-level rules for
domain names: validation, normalization, and label/TLD splitting. Everything
here is pure and allocation-light; the heavy lifting (generation, status
resolution) lives elsewhere and consumes these helpers.
*/
package domain

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
	"strings"
)

// Limits from RFC 1035. Labels are octet-limited; we measure runes on purpose
// so IDN variants produced by the encoding generators are not rejected before
// they can be scored.
const (
	MaxDomainLength = 253
	MaxLabelLength  = 63
)

// Candidate is one generated domain variation. Immutable after creation;
// created by the generators, consumed exactly once by the resolver.
type Candidate struct {
	// Name is the fully qualified domain name, lowercase.
	Name string
	// Transform names the transformation that produced this candidate
	// (a CLI token such as "fat-finger", or "combo").
	Transform string
	// Score is the combined similarity to the seed domain in [0,1].
	Score float64
}

// Normalize lowercases a domain and strips surrounding whitespace and dots.
func Normalize(s string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(s)), ".")
}

// Split separates a domain into its label part and TLD at the last dot.
// An input with no dot is treated as a bare label under "com", mirroring
// how seeds like "example" are interpreted on the command line.
func Split(input string) (label, tld string) {
	if i := strings.LastIndexByte(input, '.'); i >= 0 {
		return input[:i], input[i+1:]
	}
	return input, "com"
}

// TLD returns the lowercase final label of a domain, or "" when the input
// has no dot.
func TLD(domain string) string {
	i := strings.LastIndexByte(domain, '.')
	if i < 0 || i == len(domain)-1 {
		return ""
	}
	return strings.ToLower(domain[i+1:])
}

// Registrable collapses a (possibly subdomained) name down to its last two
// labels, e.g. "login.example.com" -> "example.com". Inputs without a dot
// are returned unchanged.
func Registrable(input string) string {
	parts := strings.Split(input, ".")
	if len(parts) < 2 {
		return input
	}
	return parts[len(parts)-2] + "." + parts[len(parts)-1]
}

// IsValid reports whether a string is a plausible FQDN. Non-ASCII runes are
// accepted so the homoglyph and IDN-TLD generators can emit candidates; all
// ASCII must be alphanumeric or hyphen.
func IsValid(domain string) bool {
	if domain == "" || len(domain) > MaxDomainLength {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > MaxLabelLength {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if r > 127 {
				continue // IDN characters pass through
			}
			if r == '-' {
				continue
			}
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				continue
			}
			return false
		}
	}

	// TLD must carry at least two characters.
	if len([]rune(labels[len(labels)-1])) < 2 {
		return false
	}
	return true
}

// FilterValid drops invalid variations and lowercases the survivors.
func FilterValid(variations []string) []string {
	out := variations[:0]
	for _, v := range variations {
		if IsValid(v) {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}
