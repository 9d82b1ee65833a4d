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
	"math"
	"strings"
)

// encodingMap maps Latin letters to visually confusable Cyrillic,
// Greek, and fullwidth forms.
var encodingMap = map[rune][]rune{
	'a': {'а', 'α', 'ａ'},
	'e': {'е', 'ε', 'ｅ'},
	'o': {'о', 'ο', 'ｏ'},
	'p': {'р', 'ρ', 'ｐ'},
	'c': {'с', 'ｃ'},
	'y': {'у', 'ｙ'},
	'x': {'х', 'χ', 'ｘ'},
	'v': {'ν', 'ｖ'},
	'u': {'υ', 'ｕ'},
	'i': {'і', 'ι', 'ｉ'},
	'j': {'ј', 'ｊ'},
	's': {'ѕ', 'ｓ'},
	'b': {'ь', 'β', 'ｂ'},
	'h': {'н', 'η', 'ｈ'},
	'k': {'к', 'κ', 'ｋ'},
	'm': {'м', 'μ', 'ｍ'},
	'n': {'п', 'η', 'ｎ'},
	't': {'т', 'τ', 'ｔ'},
	'r': {'г', 'ρ', 'ｒ'},
	'd': {'д', 'ｄ'},
	'f': {'ф', 'ｆ'},
	'g': {'ѓ', 'ｇ'},
	'l': {'ӏ', 'ｌ'},
	'w': {'ѡ', 'ｗ'},
	'q': {'ԛ', 'ｑ'},
	'z': {'ᴢ', 'ｚ'},
}

// MixedEncodings swaps Latin characters for homoglyphs from other
// scripts. Singles everywhere, doubles for labels of 3+ runes, triples
// with forced spacing for labels of 5+ runes.
func MixedEncodings(label, tld string) []string {
	var variations []string

	lower := strings.ToLower(label)
	chars := []rune(lower)

	maxErrors := int(math.Ceil(float64(len(chars)) * 0.6))
	if maxErrors < 1 {
		maxErrors = 1
	}

	var encodings [][]charError
	for pos, ch := range chars {
		replacements, ok := encodingMap[ch]
		if !ok {
			continue
		}
		var posEncodings []charError
		for _, repl := range replacements {
			posEncodings = append(posEncodings, charError{pos: pos, kind: "unicode_sub", repl: repl})
		}
		encodings = append(encodings, posEncodings)
	}

	encodingCombinations(chars, encodings, maxErrors, tld, &variations)
	return variations
}

func encodingCombinations(chars []rune, encodings [][]charError, maxErrors int, tld string, out *[]string) {
	label := string(chars)

	emit := func(result string) {
		if result != label {
			*out = append(*out, result+"."+tld)
		}
	}

	for _, posEncodings := range encodings {
		for _, e := range posEncodings {
			emit(substituteAt(chars, e.pos, e.repl))
		}
	}

	if len(chars) >= 3 && maxErrors >= 2 {
		for i := 0; i < len(encodings); i++ {
			for j := i + 1; j < len(encodings); j++ {
				// Limit options per position to keep the set small.
				for _, e1 := range take(encodings[i], 2) {
					for _, e2 := range take(encodings[j], 2) {
						result := []rune(substituteAt(chars, e1.pos, e1.repl))
						emit(substituteAt(result, e2.pos, e2.repl))
					}
				}
			}
		}
	}

	if len(chars) >= 5 && maxErrors >= 3 {
		for i := 0; i < len(encodings); i++ {
			for j := i + 2; j < len(encodings); j++ {
				for k := j + 2; k < len(encodings); k++ {
					e1 := encodings[i][0]
					e2 := encodings[j][0]
					e3 := encodings[k][0]
					result := []rune(substituteAt(chars, e1.pos, e1.repl))
					result = []rune(substituteAt(result, e2.pos, e2.repl))
					emit(substituteAt(result, e3.pos, e3.repl))
				}
			}
		}
	}
}

func substituteAt(chars []rune, pos int, repl rune) string {
	if pos >= len(chars) {
		return string(chars)
	}
	result := make([]rune, len(chars))
	copy(result, chars)
	result[pos] = repl
	return string(result)
}
