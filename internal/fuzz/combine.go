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

// realisticCombinations expands per-position error candidates into
// variant domains: every single error, double errors on non-adjacent
// positions for labels of 4+ runes, and a sparse sample of triples for
// labels of 8+ runes. Variants longer than maxLength are dropped.
func realisticCombinations(chars []rune, errors [][]charError, maxErrors, maxLength int, tld string, out *[]string) {
	label := string(chars)

	for _, posErrors := range errors {
		for _, e := range posErrors {
			result := applyTypoError(chars, e)
			if result != "" && result != label && len(result) <= maxLength {
				*out = append(*out, result+"."+tld)
			}
		}
	}

	if len(chars) >= 4 && maxErrors >= 2 {
		for i := 0; i < len(errors); i++ {
			for j := i + 1; j < len(errors); j++ {
				// Errors on adjacent keys in one word are rare,
				// require a gap.
				if j-i <= 1 {
					continue
				}
				for _, e1 := range errors[i] {
					for _, e2 := range errors[j] {
						result := applyDoubleTypoError(chars, e1, e2)
						if result != "" && result != label && len(result) <= maxLength {
							*out = append(*out, result+"."+tld)
						}
					}
				}
			}
		}
	}

	if len(chars) >= 8 && maxErrors >= 3 {
		for i := 0; i < len(errors); i += 2 {
			for j := i + 2; j < len(errors); j++ {
				if j%2 != 0 {
					continue
				}
				for k := j + 2; k < len(errors); k++ {
					if k%2 != 0 {
						continue
					}
					e1 := errors[i][0]
					e2 := errors[j][0]
					e3 := errors[k][0]
					result := applyTripleTypoError(chars, e1, e2, e3)
					if result != "" && result != label && len(result) <= maxLength {
						*out = append(*out, result+"."+tld)
					}
				}
			}
		}
	}
}

func applyTypoError(chars []rune, e charError) string {
	result := make([]rune, 0, len(chars)+1)
	result = append(result, chars...)

	switch e.kind {
	case "repeat":
		if e.pos < len(result) {
			result = insertRune(result, e.pos, e.repl)
		}
	case "substitute":
		if e.pos < len(result) {
			result[e.pos] = e.repl
		}
	case "insert_before":
		result = insertRune(result, e.pos, e.repl)
	default:
		return ""
	}
	return string(result)
}

// applyDoubleTypoError applies the higher-positioned error first so
// the lower position stays valid.
func applyDoubleTypoError(chars []rune, e1, e2 charError) string {
	first, second := e1, e2
	if first.pos > second.pos {
		first, second = second, first
	}

	intermediate := applyTypoError(chars, second)
	if intermediate == "" {
		return ""
	}
	return applyTypoError([]rune(intermediate), first)
}

func applyTripleTypoError(chars []rune, e1, e2, e3 charError) string {
	double := applyDoubleTypoError(chars, e1, e2)
	if double == "" {
		return ""
	}

	adjusted := e3
	if e3.pos > e1.pos && e3.pos > e2.pos {
		adjusted.pos += countInsertionsBefore(e3.pos, e1, e2)
	}
	return applyTypoError([]rune(double), adjusted)
}

func countInsertionsBefore(target int, e1, e2 charError) int {
	count := 0
	if e1.pos < target && (e1.kind == "repeat" || e1.kind == "insert_before") {
		count++
	}
	if e2.pos < target && (e2.kind == "repeat" || e2.kind == "insert_before") {
		count++
	}
	return count
}

func insertRune(runes []rune, pos int, r rune) []rune {
	if pos > len(runes) {
		pos = len(runes)
	}
	runes = append(runes, 0)
	copy(runes[pos+1:], runes[pos:])
	runes[pos] = r
	return runes
}
