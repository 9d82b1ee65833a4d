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

// Bitsquatting flips each bit of each character and keeps the variants
// that remain ASCII letters or digits. These are the domains that
// memory errors can silently redirect traffic to.
func Bitsquatting(label, tld string) []string {
	var variations []string
	chars := []rune(label)

	for i, ch := range chars {
		if ch > 0x7f {
			continue
		}
		code := byte(ch)
		for bit := 0; bit < 8; bit++ {
			flipped := rune(code ^ (1 << bit))
			if !isASCIIAlphanumeric(flipped) {
				continue
			}
			variant := make([]rune, len(chars))
			copy(variant, chars)
			variant[i] = flipped
			variations = append(variations, string(variant)+"."+tld)
		}
	}

	return variations
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
