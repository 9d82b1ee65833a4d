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

// qwertyAdjacent lists the neighbouring keys most often hit by mistake
// for each key on a QWERTY layout.
var qwertyAdjacent = map[rune]string{
	'q': "wa",
	'w': "qes",
	'e': "wrd",
	'r': "etf",
	't': "rgy",
	'y': "tuh",
	'u': "yio",
	'i': "uop",
	'o': "ip",
	'p': "o",
	'a': "qsz",
	's': "awdz",
	'd': "sefx",
	'f': "dgrc",
	'g': "fthv",
	'h': "gyjb",
	'j': "hukn",
	'k': "julm",
	'l': "km",
	'z': "asx",
	'x': "zsdc",
	'c': "xdfv",
	'v': "cfgb",
	'b': "vghn",
	'n': "bhjm",
	'm': "njk",
}

// FatFinger simulates sloppy typing: doubled keys, adjacent-key
// substitutions, and stray insertions. One error per two characters at
// most, and the result never grows past 150% of the original length.
func FatFinger(label, tld string) []string {
	var variations []string
	chars := []rune(label)

	maxErrors := len(chars) / 2
	if maxErrors < 1 {
		maxErrors = 1
	}
	maxLength := int(float64(len(label)) * 1.5)

	var errors [][]charError
	for pos, ch := range chars {
		posErrors := []charError{{pos: pos, kind: "repeat", repl: ch}}

		if adjacent, ok := qwertyAdjacent[ch]; ok {
			for _, adj := range adjacent {
				posErrors = append(posErrors, charError{pos: pos, kind: "substitute", repl: adj})
			}
			for _, adj := range adjacent {
				posErrors = append(posErrors, charError{pos: pos, kind: "insert_before", repl: adj})
			}
		}

		errors = append(errors, posErrors)
	}

	realisticCombinations(chars, errors, maxErrors, maxLength, tld, &variations)
	return variations
}
