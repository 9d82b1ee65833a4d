/*
Package score rates how convincingly a candidate domain impersonates the
original. Two axes are measured: visual similarity (edit distance with a
homoglyph bonus) and cognitive similarity (phonetic encoding, known word
confusions, and length). The combined score weights the axes according
to the transformation class that produced the candidate.
*/
package score

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
	"strconv"
	"strings"
)

// Score is the similarity verdict for one candidate.
type Score struct {
	Visual    float64
	Cognitive float64
	Combined  float64
}

// homoglyphPairs are character pairs that read as the same glyph at a
// glance. Used for the visual bonus.
var homoglyphPairs = [][2]rune{
	{'a', 'α'}, {'o', '0'}, {'i', '1'}, {'l', '1'}, {'e', '3'},
	{'s', '$'}, {'g', '9'}, {'b', '6'}, {'z', '2'}, {'s', '5'},
	{'o', 'ο'}, {'a', 'а'}, {'p', 'р'}, {'c', 'с'}, {'e', 'е'},
	{'x', 'х'}, {'y', 'у'}, {'k', 'κ'}, {'n', 'η'}, {'m', 'μ'},
}

// cognitivePairs are word confusions that keep the meaning close even
// when the spelling drifts.
var cognitivePairs = [][2]string{
	{"amazon", "amazom"}, {"google", "gogle"}, {"microsoft", "mircosoft"},
	{"facebook", "facbook"}, {"paypal", "payball"}, {"secure", "secur"},
	{"support", "suport"}, {"service", "servic"}, {"account", "acount"},
	{"login", "loginn"}, {"portal", "portall"}, {"center", "centre"},
	{"corp", "corporate"}, {"inc", "incorporated"}, {"tech", "technology"},
	{"concordium", "consordium"}, {"consortium", "concordium"},
}

// Levenshtein returns the edit distance between two strings, counted in
// runes.
func Levenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	cur := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, c1 := range r1 {
		cur[0] = i + 1
		for j, c2 := range r2 {
			cost := 1
			if c1 == c2 {
				cost = 0
			}
			cur[j+1] = minInt(prev[j+1]+1, minInt(cur[j]+1, prev[j]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(r2)]
}

// Visual scores how alike two labels look: edit distance does most of
// the work, with a bonus when differing positions are homoglyph pairs.
func Visual(original, variant string) float64 {
	maxLen := maxInt(len([]rune(original)), len([]rune(variant)))
	if maxLen == 0 {
		return 1.0
	}

	sim := 1.0 - float64(Levenshtein(original, variant))/float64(maxLen)
	bonus := homoglyphSimilarity(original, variant)
	return clamp01(sim*0.7 + bonus*0.3)
}

// homoglyphSimilarity is the fraction of positions that match exactly
// or through a known homoglyph pair. Labels of different rune lengths
// score zero since positions no longer align.
func homoglyphSimilarity(s1, s2 string) float64 {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) != len(r2) || len(r1) == 0 {
		return 0.0
	}

	matches := 0
	for i := range r1 {
		if r1[i] == r2[i] || isHomoglyph(r1[i], r2[i]) {
			matches++
		}
	}
	return float64(matches) / float64(len(r1))
}

func isHomoglyph(c1, c2 rune) bool {
	for _, pair := range homoglyphPairs {
		if (c1 == pair[0] && c2 == pair[1]) || (c1 == pair[1] && c2 == pair[0]) {
			return true
		}
	}
	return false
}

// Cognitive scores how alike two labels sound and mean: phonetic
// encoding distance, known word confusions, and a length penalty.
func Cognitive(original, variant string) float64 {
	sim := phoneticSimilarity(original, variant) * 0.4
	sim += semanticSimilarity(original, variant) * 0.3

	lenO := len([]rune(original))
	lenV := len([]rune(variant))
	maxLen := maxInt(lenO, lenV)
	if maxLen > 0 {
		lengthDiff := float64(absInt(lenO - lenV))
		sim += (1.0 - lengthDiff/float64(maxLen)) * 0.3
	} else {
		sim += 0.3
	}
	return clamp01(sim)
}

func phoneticSimilarity(s1, s2 string) float64 {
	sound1 := Soundex(s1)
	sound2 := Soundex(s2)

	maxLen := maxInt(len(sound1), len(sound2))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(sound1, sound2))/float64(maxLen)
}

// Soundex produces a simplified phonetic code: consonants collapse into
// digit classes, vowels reset the run-length suppression.
func Soundex(s string) string {
	var b strings.Builder
	var prev rune
	hasPrev := false

	for _, c := range strings.ToLower(s) {
		var code rune
		switch c {
		case 'b', 'f', 'p', 'v':
			code = '1'
		case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
			code = '2'
		case 'd', 't':
			code = '3'
		case 'l':
			code = '4'
		case 'm', 'n':
			code = '5'
		case 'r':
			code = '6'
		default:
			hasPrev = false
			continue
		}
		if !hasPrev || prev != code {
			b.WriteRune(code)
			prev = code
			hasPrev = true
		}
	}
	return b.String()
}

// semanticSimilarity returns a high fixed score when the pair matches a
// known word confusion, otherwise falls back to edit distance.
func semanticSimilarity(original, variant string) float64 {
	for _, pair := range cognitivePairs {
		if (strings.Contains(original, pair[0]) && strings.Contains(variant, pair[1])) ||
			(strings.Contains(original, pair[1]) && strings.Contains(variant, pair[0])) {
			return 0.8
		}
	}

	maxLen := maxInt(len([]rune(original)), len([]rune(variant)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(original, variant))/float64(maxLen)
}

// Calculate scores a candidate against the original domain. Only the
// leading label is compared; TLD swaps are scored by the transformation
// weighting instead. The transform name shifts the visual/cognitive
// balance: encoding tricks are judged by the eye, homophones by the
// ear.
func Calculate(original, variant, transform string) Score {
	originalLabel := leadingLabel(original)
	variantLabel := leadingLabel(variant)

	visual := Visual(originalLabel, variantLabel)
	cognitive := Cognitive(originalLabel, variantLabel)

	var combined float64
	switch transform {
	case "mixed-encodings", "idn-homograph", "mixed-script":
		combined = visual*0.8 + cognitive*0.2
	case "cognitive", "homophones":
		combined = cognitive*0.8 + visual*0.2
	case "misspelling", "fat-finger", "1337speak":
		combined = visual*0.6 + cognitive*0.4
	default:
		combined = visual*0.5 + cognitive*0.5
	}

	return Score{Visual: visual, Cognitive: cognitive, Combined: combined}
}

func leadingLabel(domain string) string {
	if i := strings.IndexByte(domain, '.'); i >= 0 {
		return domain[:i]
	}
	return domain
}

// ParseThreshold accepts a similarity threshold as either a percentage
// ("73.28%") or a decimal ("0.7328") and normalizes it to [0, 1].
func ParseThreshold(input string) (float64, error) {
	input = strings.TrimSpace(input)

	if strings.HasSuffix(input, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(input, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percentage format: %s", input)
		}
		if pct < 0 || pct > 100 {
			return 0, fmt.Errorf("percentage must be between 0%% and 100%%, got: %g%%", pct)
		}
		return pct / 100.0, nil
	}

	dec, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid similarity threshold format: %s", input)
	}
	if dec < 0 || dec > 1 {
		return 0, fmt.Errorf("decimal threshold must be between 0.0 and 1.0, got: %g", dec)
	}
	return dec, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
