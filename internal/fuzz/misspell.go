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

import "unicode"

var vowelSwaps = map[rune][]rune{
	'a': {'e', 'i', 'o', 'u'},
	'e': {'a', 'i', 'o', 'u'},
	'i': {'a', 'e', 'o', 'u'},
	'o': {'a', 'e', 'i', 'u'},
	'u': {'a', 'e', 'i', 'o'},
}

// insertTypoChars are the characters used for representative
// insertions, picked by position.
var insertTypoChars = []rune{'a', 'e', 'i', 'o', 'u', 's', 't', 'n', 'r'}

// Misspelling produces common spelling mistakes: insertions,
// deletions, transpositions, adjacent-key slips, and vowel swaps.
func Misspelling(label, tld string) []string {
	var variations []string
	chars := []rune(label)

	maxErrors := len(chars) / 2
	if maxErrors < 1 {
		maxErrors = 1
	}
	maxLength := int(float64(len(label)) * 1.8)

	var errors [][]charError
	for pos, ch := range chars {
		posErrors := []charError{
			{pos: pos, kind: "insert", repl: 'a'},
			{pos: pos, kind: "delete", repl: ch},
		}
		if pos+1 < len(chars) {
			posErrors = append(posErrors, charError{pos: pos, kind: "transpose", repl: chars[pos+1]})
		}

		lower := unicode.ToLower(ch)
		if adjacent, ok := qwertyAdjacent[lower]; ok {
			for _, adj := range adjacent {
				posErrors = append(posErrors, charError{pos: pos, kind: "keyboard_sub", repl: adj})
			}
		}
		if vowels, ok := vowelSwaps[lower]; ok {
			for _, v := range vowels {
				if unicode.IsUpper(ch) {
					v = unicode.ToUpper(v)
				}
				posErrors = append(posErrors, charError{pos: pos, kind: "vowel_sub", repl: v})
			}
		}

		errors = append(errors, posErrors)
	}

	misspellingCombinations(chars, errors, maxErrors, maxLength, tld, &variations)
	return variations
}

// misspellingCombinations expands per-position errors into variants.
// Unlike fat-finger combinations, doubles are allowed on adjacent
// positions but pairs are limited to two options per position and the
// positions must be at most two apart.
func misspellingCombinations(chars []rune, errors [][]charError, maxErrors, maxLength int, tld string, out *[]string) {
	label := string(chars)

	for _, posErrors := range errors {
		for _, e := range posErrors {
			result := applyMisspelling(chars, e)
			if result != "" && result != label && len(result) <= maxLength {
				*out = append(*out, result+"."+tld)
			}
		}
	}

	if len(chars) < 4 || maxErrors < 2 {
		return
	}
	for i := 0; i < len(errors); i++ {
		for j := i + 1; j < len(errors); j++ {
			if j-i > 2 {
				continue
			}
			for _, e1 := range take(errors[i], 2) {
				for _, e2 := range take(errors[j], 2) {
					if incompatibleMisspellings(e1, e2) {
						continue
					}
					result := applyDoubleMisspelling(chars, e1, e2)
					if result != "" && result != label && len(result) <= maxLength {
						*out = append(*out, result+"."+tld)
					}
				}
			}
		}
	}
}

// incompatibleMisspellings rejects pairs that compound into
// implausible typos: adjacent deletions, overlapping transpositions,
// and deleting a transposed character.
func incompatibleMisspellings(e1, e2 charError) bool {
	if e1.kind == "delete" && e2.kind == "delete" && (e2.pos == e1.pos+1 || e1.pos == e2.pos+1) {
		return true
	}
	if e1.kind == "transpose" && e2.kind == "transpose" && e2.pos <= e1.pos+1 {
		return true
	}
	if (e1.kind == "delete" && e2.kind == "transpose" && e1.pos == e2.pos) ||
		(e2.kind == "delete" && e1.kind == "transpose" && e2.pos == e1.pos) {
		return true
	}
	return false
}

func applyMisspelling(chars []rune, e charError) string {
	result := make([]rune, 0, len(chars)+1)
	result = append(result, chars...)

	switch e.kind {
	case "insert":
		result = insertRune(result, e.pos, insertTypoChars[e.pos%len(insertTypoChars)])
	case "delete":
		if e.pos < len(result) {
			result = append(result[:e.pos], result[e.pos+1:]...)
		}
	case "transpose":
		if e.pos+1 < len(result) {
			result[e.pos], result[e.pos+1] = result[e.pos+1], result[e.pos]
		}
	case "keyboard_sub":
		if e.pos < len(result) {
			repl := e.repl
			if unicode.IsUpper(chars[e.pos]) {
				repl = unicode.ToUpper(repl)
			}
			result[e.pos] = repl
		}
	case "vowel_sub":
		if e.pos < len(result) {
			result[e.pos] = e.repl
		}
	default:
		return ""
	}

	if len(result) == 0 {
		return ""
	}
	return string(result)
}

// applyDoubleMisspelling applies e1 then e2, shifting e2's position
// when e1 inserted or deleted a character before it.
func applyDoubleMisspelling(chars []rune, e1, e2 charError) string {
	intermediate := applyMisspelling(chars, e1)
	if intermediate == "" {
		return ""
	}

	adjusted := e2
	switch e1.kind {
	case "insert":
		if e2.pos > e1.pos {
			adjusted.pos++
		}
	case "delete":
		if e2.pos > e1.pos && e2.pos > 0 {
			adjusted.pos--
		}
	}
	return applyMisspelling([]rune(intermediate), adjusted)
}

func take(errors []charError, n int) []charError {
	if len(errors) <= n {
		return errors
	}
	return errors[:n]
}
