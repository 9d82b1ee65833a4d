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

import "strings"

// SubdomainInjection splits the label with a dot at each interior
// position, turning part of the name into a fake subdomain.
func SubdomainInjection(label, tld string) []string {
	return injectSeparator(label, tld, '.', false)
}

// Hyphenation inserts a hyphen at each interior position.
func Hyphenation(label, tld string) []string {
	return injectSeparator(label, tld, '-', true)
}

// DotInsertion inserts a dot at each interior position.
func DotInsertion(label, tld string) []string {
	return injectSeparator(label, tld, '.', false)
}

func injectSeparator(label, tld string, sep rune, noTrailing bool) []string {
	var variations []string
	chars := []rune(label)

	for i := 1; i < len(chars); i++ {
		// Never double up an existing separator.
		if chars[i-1] == sep || chars[i] == sep {
			continue
		}
		variant := string(chars[:i]) + string(sep) + string(chars[i:])
		if noTrailing && strings.HasSuffix(variant, string(sep)) {
			continue
		}
		variations = append(variations, variant+"."+tld)
	}

	return variations
}

// DotOmission removes the dots from a multi-label name, the classic
// wwwexample.com trick.
func DotOmission(label, tld string) []string {
	var variations []string

	if strings.Contains(label, ".") {
		stripped := strings.ReplaceAll(label, ".", "")
		if stripped != "" {
			variations = append(variations, stripped+"."+tld)
		}
	}

	return variations
}

// DotHyphenSubstitution swaps dots for hyphens and hyphens for dots.
func DotHyphenSubstitution(label, tld string) []string {
	var variations []string

	if strings.Contains(label, ".") {
		variations = append(variations, strings.ReplaceAll(label, ".", "-")+"."+tld)
	}
	if strings.Contains(label, "-") {
		variations = append(variations, strings.ReplaceAll(label, "-", ".")+"."+tld)
	}

	return variations
}

// WordSwap reorders the halves of the label, and the thirds for longer
// labels.
func WordSwap(label, tld string) []string {
	var variations []string
	chars := []rune(label)

	if len(chars) >= 4 {
		mid := len(chars) / 2
		variations = append(variations, string(chars[mid:])+string(chars[:mid])+"."+tld)
	}
	if len(chars) >= 6 {
		third := len(chars) / 3
		variations = append(variations,
			string(chars[2*third:])+string(chars[third:2*third])+string(chars[:third])+"."+tld)
	}

	return variations
}
