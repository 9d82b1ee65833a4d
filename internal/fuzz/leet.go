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

// leetSubstitutions maps characters to their leetspeak or easily
// confused replacements, in both directions.
var leetSubstitutions = [][2]rune{
	{'o', '0'}, {'0', 'o'},
	{'l', '1'}, {'1', 'l'},
	{'i', '1'}, {'1', 'i'},
	{'e', '3'}, {'3', 'e'},
	{'a', '@'}, {'@', 'a'},
	{'a', '4'}, {'4', 'a'},
	{'s', '$'}, {'$', 's'},
	{'s', '5'}, {'5', 's'},
	{'g', '9'}, {'9', 'g'},
	{'b', '6'}, {'6', 'b'},
	{'t', '7'}, {'7', 't'},
	{'z', '2'}, {'2', 'z'},
	{'i', 'l'}, {'l', 'i'},
	{'o', 'q'}, {'q', 'o'},
	{'p', 'q'}, {'q', 'p'},
	{'d', 'b'}, {'b', 'd'},
	{'u', 'v'}, {'v', 'u'},
	{'m', 'n'}, {'n', 'm'},
	{'r', 'n'},
	{'h', 'n'},
}

// Leetspeak swaps characters for their digit or symbol lookalikes.
// At most 40% of the label mutates and the result stays close to the
// original length.
func Leetspeak(label, tld string) []string {
	var variations []string

	lower := strings.ToLower(label)
	chars := []rune(lower)
	if len(chars) == 0 {
		return variations
	}

	var errors [][]charError
	for pos, ch := range chars {
		var posErrors []charError
		for _, sub := range leetSubstitutions {
			if sub[0] == ch {
				posErrors = append(posErrors, charError{pos: pos, kind: "substitute", repl: sub[1]})
			}
		}
		if len(posErrors) > 0 {
			errors = append(errors, posErrors)
		}
	}
	if len(errors) == 0 {
		return variations
	}

	maxErrors := int(math.Ceil(float64(len(chars)) * 0.4))
	if maxErrors < 1 {
		maxErrors = 1
	}
	if maxErrors > 3 {
		maxErrors = 3
	}
	maxLength := int(float64(len(lower)) * 1.2)

	realisticCombinations(chars, errors, maxErrors, maxLength, tld, &variations)
	return variations
}
