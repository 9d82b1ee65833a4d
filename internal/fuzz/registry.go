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
	"fmt"
	"sort"
	"strings"
)

// Registry maps transformation names to their generators.
// Combosquatting closes over the dictionary; everything else ignores
// it.
func Registry(dict []string) map[string]Generator {
	return map[string]Generator{
		"1337speak":              Leetspeak,
		"mixed-encodings":        MixedEncodings,
		"misspelling":            Misspelling,
		"keyboard":               Misspelling,
		"fat-finger":             FatFinger,
		"word-swap":              WordSwap,
		"bitsquatting":           Bitsquatting,
		"hyphenation":            Hyphenation,
		"subdomain":              SubdomainInjection,
		"dot-insertion":          DotInsertion,
		"dot-omission":           DotOmission,
		"dot-hyphen-sub":         DotHyphenSubstitution,
		"cardinal-substitution":  CardinalSubstitution,
		"ordinal-substitution":   OrdinalSubstitution,
		"homophones":             Homophones,
		"singular-plural":        SingularPlural,
		"cognitive":              Cognitive,
		"cyrillic-comprehensive": MixedEncodings,
		"tld-variations":         TLDVariations,
		"intl-tld":               IntlTLD,
		"wrong-sld":              WrongSLD,
		"brand-confusion":        BrandConfusion,
		"domain-prefix":          DomainPrefix,
		"domain-suffix":          DomainSuffix,
		"combosquatting": func(label, tld string) []string {
			return Combosquatting(label, tld, dict)
		},
	}
}

// lookalikeBundle covers the character-level transformations that
// produce visually convincing fakes. It is the default selection.
var lookalikeBundle = []string{"1337speak", "misspelling", "fat-finger", "mixed-encodings"}

// systemFaultBundle covers errors caused by hardware rather than
// humans.
var systemFaultBundle = []string{"bitsquatting"}

var allTransformations = []string{
	"1337speak", "misspelling", "fat-finger",
	"bitsquatting",
	"mixed-encodings",
	"homophones", "cognitive", "singular-plural",
	"cardinal-substitution", "ordinal-substitution",
	"word-swap", "hyphenation", "subdomain",
	"dot-insertion", "dot-omission", "dot-hyphen-sub",
	"tld-variations", "intl-tld", "wrong-sld",
	"combosquatting", "brand-confusion", "domain-prefix", "domain-suffix",
}

// ParseTransforms resolves transformation names and bundle names into
// the concrete set of enabled transformations. An empty selection
// enables the lookalike bundle. Unknown names are an error.
func ParseTransforms(names []string) (map[string]struct{}, error) {
	enabled := make(map[string]struct{})

	if len(names) == 0 {
		enabled["lookalike"] = struct{}{}
	} else {
		for _, name := range names {
			enabled[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
		}
	}

	if _, ok := enabled["lookalike"]; ok {
		delete(enabled, "lookalike")
		for _, name := range lookalikeBundle {
			enabled[name] = struct{}{}
		}
	}
	if _, ok := enabled["system-fault"]; ok {
		delete(enabled, "system-fault")
		for _, name := range systemFaultBundle {
			enabled[name] = struct{}{}
		}
	}
	if _, ok := enabled["all"]; ok {
		enabled = make(map[string]struct{})
		for _, name := range allTransformations {
			enabled[name] = struct{}{}
		}
	}

	known := Registry(nil)
	for name := range enabled {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown transformation: %s", name)
		}
	}

	return enabled, nil
}

// Names returns every registered transformation name, sorted.
func Names() []string {
	names := make([]string, 0, len(allTransformations))
	names = append(names, allTransformations...)
	sort.Strings(names)
	return names
}
