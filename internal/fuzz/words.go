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
	"sort"
	"strings"
)

// wordConfusions maps brand and business words to spellings people
// actually confuse them with.
var wordConfusions = []struct {
	word       string
	confusions []string
}{
	{"amazon", []string{"amazom", "amazone", "amazn"}},
	{"google", []string{"gogle", "googel", "googlle"}},
	{"microsoft", []string{"mircosoft", "microsooft", "microsft"}},
	{"facebook", []string{"facbook", "facebok", "faceboook"}},
	{"paypal", []string{"payball", "paypall", "paypaul"}},
	{"apple", []string{"aple", "applle", "aplle"}},
	{"twitter", []string{"twiter", "twittr", "twittter"}},
	{"linkedin", []string{"linkdin", "linkin", "linkedinn"}},
	{"secure", []string{"secur", "securee", "secuure"}},
	{"support", []string{"suport", "supportt", "supp0rt"}},
	{"service", []string{"servic", "servicee", "servise"}},
	{"account", []string{"acount", "accont", "accountt"}},
	{"login", []string{"loginn", "log1n", "l0gin"}},
	{"portal", []string{"portall", "p0rtal", "porttal"}},
	{"center", []string{"centre", "centr", "centerr"}},
	{"office", []string{"offic", "officee", "0ffice"}},
	{"corp", []string{"corporate", "company", "inc"}},
	{"inc", []string{"incorporated", "corp", "company"}},
	{"company", []string{"corp", "inc", "co"}},
	{"group", []string{"grp", "groupe", "groupp"}},
	{"tech", []string{"technology", "tec", "techno"}},
	{"solutions", []string{"solution", "solve", "solutionz"}},
	{"systems", []string{"system", "sys", "systemz"}},
	{"services", []string{"service", "servs", "servicez"}},
	{"concordium", []string{"consordium", "consortium", "concardium"}},
	{"consortium", []string{"consordium", "concordium", "consortum"}},
	{"foundation", []string{"fundation", "foundtion", "foundaton"}},
	{"enterprise", []string{"enterprize", "enterpise", "enterpris"}},
	{"international", []string{"internacional", "internation", "intl"}},
	{"development", []string{"developement", "developmnt", "develop"}},
	{"management", []string{"managment", "managem", "manage"}},
	{"consulting", []string{"consultng", "consult", "consultancy"}},
	{"financial", []string{"finance", "finacial", "financ"}},
	{"research", []string{"reserch", "researh", "resarch"}},
	{"laboratory", []string{"lab", "laborat", "laboratry"}},
	{"institute", []string{"institut", "institu", "instit"}},
	{"university", []string{"univrsity", "univ", "universty"}},
	{"college", []string{"colege", "coleg", "collegee"}},
	{"academy", []string{"acadmy", "academ", "academie"}},
	{"network", []string{"netwrk", "net", "nework"}},
	{"security", []string{"securty", "sec", "securit"}},
	{"technology", []string{"technlogy", "tech", "tecnology"}},
	{"innovation", []string{"inovation", "innov", "innovaton"}},
	{"intelligence", []string{"inteligence", "intel", "intelligenc"}},
	{"analytics", []string{"analytic", "anlytics", "analytix"}},
	{"communications", []string{"communication", "comm", "comunications"}},
}

var phoneticSubstitutions = [][2]string{
	{"ph", "f"}, {"f", "ph"},
	{"ck", "k"}, {"k", "ck"},
	{"c", "k"}, {"k", "c"},
	{"s", "z"}, {"z", "s"},
	{"i", "y"}, {"y", "i"},
	{"er", "or"}, {"or", "er"},
	{"an", "en"}, {"en", "an"},
	{"tion", "sion"}, {"sion", "tion"},
}

// compoundSplits are brand names that read as two words, with their
// split and leet renditions.
var compoundSplits = map[string][]string{
	"facebook":  {"face-book", "faceb00k"},
	"youtube":   {"you-tube", "youtub3"},
	"linkedin":  {"linked-in", "link3din"},
	"instagram": {"insta-gram", "instagr4m"},
	"microsoft": {"micro-soft", "micr0soft"},
}

var businessContexts = []struct {
	word         string
	alternatives []string
}{
	{"bank", []string{"banking", "banc", "finansial"}},
	{"pay", []string{"payment", "payments", "paying"}},
	{"shop", []string{"shopping", "store", "market"}},
	{"mail", []string{"email", "post", "message"}},
	{"cloud", []string{"server", "hosting", "storage"}},
	{"data", []string{"database", "info", "information"}},
	{"web", []string{"website", "site", "online"}},
	{"mobile", []string{"app", "application", "phone"}},
	{"digital", []string{"cyber", "online", "virtual"}},
	{"crypto", []string{"blockchain", "bitcoin", "coin"}},
}

// Cognitive generates variants that exploit how people remember and
// misremember words: known confusions, phonetic respellings, compound
// splits, and business term swaps. Output is sorted and deduplicated.
func Cognitive(label, tld string) []string {
	var variations []string
	lower := strings.ToLower(label)

	for _, wc := range wordConfusions {
		if strings.Contains(lower, wc.word) {
			for _, confusion := range wc.confusions {
				variant := strings.ReplaceAll(lower, wc.word, confusion)
				if variant != lower {
					variations = append(variations, variant+"."+tld)
				}
			}
		}
	}

	// Reverse direction: if the label already contains a confusion,
	// "correct" it back.
	for _, wc := range wordConfusions {
		for _, confusion := range wc.confusions {
			if strings.Contains(lower, confusion) {
				variant := strings.ReplaceAll(lower, confusion, wc.word)
				if variant != lower {
					variations = append(variations, variant+"."+tld)
				}
			}
		}
	}

	for _, sub := range phoneticSubstitutions {
		if strings.Contains(label, sub[0]) {
			variant := strings.ReplaceAll(label, sub[0], sub[1])
			if variant != label {
				variations = append(variations, variant+"."+tld)
			}
		}
	}

	for compound, splits := range compoundSplits {
		if strings.Contains(lower, compound) {
			for _, split := range splits {
				variations = append(variations, strings.ReplaceAll(lower, compound, split)+"."+tld)
			}
		}
	}

	for _, bc := range businessContexts {
		if strings.Contains(lower, bc.word) {
			for _, alt := range bc.alternatives {
				variant := strings.ReplaceAll(lower, bc.word, alt)
				if variant != lower {
					variations = append(variations, variant+"."+tld)
				}
			}
		}
	}

	sort.Strings(variations)
	variations = dedupSorted(variations)

	original := label + "." + tld
	filtered := variations[:0]
	for _, v := range variations {
		if v != original {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

var homophonePairs = []struct {
	word         string
	replacements []string
}{
	{"to", []string{"too", "two"}},
	{"there", []string{"their", "they're"}},
	{"your", []string{"you're"}},
	{"hear", []string{"here"}},
	{"buy", []string{"by", "bye"}},
	{"site", []string{"sight", "cite"}},
	{"right", []string{"write", "rite"}},
	{"four", []string{"for", "fore"}},
	{"one", []string{"won"}},
	{"son", []string{"sun"}},
	{"no", []string{"know"}},
	{"sea", []string{"see"}},
	{"be", []string{"bee"}},
	{"mail", []string{"male"}},
	{"sale", []string{"sail"}},
	{"peace", []string{"piece"}},
	{"break", []string{"brake"}},
	{"cell", []string{"sell"}},
	{"blue", []string{"blew"}},
	{"ate", []string{"eight"}},
	{"week", []string{"weak"}},
	{"meet", []string{"meat"}},
	{"fair", []string{"fare"}},
	{"pair", []string{"pear", "pare"}},
	{"bear", []string{"bare"}},
	{"dear", []string{"deer"}},
	{"flour", []string{"flower"}},
	{"hour", []string{"our"}},
	{"knight", []string{"night"}},
	{"knew", []string{"new"}},
	{"tail", []string{"tale"}},
	{"wait", []string{"weight"}},
	{"way", []string{"weigh"}},
	{"would", []string{"wood"}},
	{"hole", []string{"whole"}},
	{"role", []string{"roll"}},
	{"soul", []string{"sole"}},
	{"steal", []string{"steel"}},
	{"heal", []string{"heel"}},
	{"real", []string{"reel"}},
	{"read", []string{"red"}},
	{"lead", []string{"led"}},
	{"threw", []string{"through"}},
	{"plain", []string{"plane"}},
	{"rain", []string{"reign"}},
	{"main", []string{"mane"}},
	{"pain", []string{"pane"}},
	{"vain", []string{"vane"}},
}

// Homophones swaps words for others that sound identical, in both
// directions.
func Homophones(label, tld string) []string {
	var variations []string
	lower := strings.ToLower(label)

	for _, hp := range homophonePairs {
		if strings.Contains(lower, hp.word) {
			for _, repl := range hp.replacements {
				variant := strings.ReplaceAll(lower, hp.word, repl)
				if variant != lower {
					variations = append(variations, variant+"."+tld)
				}
			}
		}
		for _, repl := range hp.replacements {
			if strings.Contains(lower, repl) {
				variant := strings.ReplaceAll(lower, repl, hp.word)
				if variant != lower {
					variations = append(variations, variant+"."+tld)
				}
			}
		}
	}

	return variations
}

var cardinals = [][2]string{
	{"0", "zero"}, {"1", "one"}, {"2", "two"}, {"3", "three"},
	{"4", "four"}, {"5", "five"}, {"6", "six"}, {"7", "seven"},
	{"8", "eight"}, {"9", "nine"}, {"10", "ten"}, {"11", "eleven"},
	{"12", "twelve"}, {"20", "twenty"}, {"30", "thirty"}, {"40", "forty"},
	{"50", "fifty"}, {"100", "hundred"},
}

// CardinalSubstitution converts digits to number words and back.
func CardinalSubstitution(label, tld string) []string {
	return numberSubstitution(label, tld, cardinals)
}

var ordinals = [][2]string{
	{"1st", "first"}, {"2nd", "second"}, {"3rd", "third"}, {"4th", "fourth"},
	{"5th", "fifth"}, {"6th", "sixth"}, {"7th", "seventh"}, {"8th", "eighth"},
	{"9th", "ninth"}, {"10th", "tenth"}, {"11th", "eleventh"}, {"12th", "twelfth"},
	{"20th", "twentieth"}, {"21st", "twentyfirst"}, {"30th", "thirtieth"}, {"100th", "hundredth"},
}

// OrdinalSubstitution converts ordinal numbers to words and back.
func OrdinalSubstitution(label, tld string) []string {
	return numberSubstitution(label, tld, ordinals)
}

func numberSubstitution(label, tld string, pairs [][2]string) []string {
	var variations []string

	for _, pair := range pairs {
		if strings.Contains(label, pair[0]) {
			variant := strings.ReplaceAll(label, pair[0], pair[1])
			if variant != label {
				variations = append(variations, variant+"."+tld)
			}
		}
		if strings.Contains(label, pair[1]) {
			variant := strings.ReplaceAll(label, pair[1], pair[0])
			if variant != label {
				variations = append(variations, variant+"."+tld)
			}
		}
	}

	return variations
}

// SingularPlural flips the label between singular and plural forms
// using simple English rules.
func SingularPlural(label, tld string) []string {
	var variations []string
	lower := strings.ToLower(label)

	if !strings.HasSuffix(lower, "s") {
		variations = append(variations, label+"s."+tld)
	}
	if strings.HasSuffix(lower, "s") || strings.HasSuffix(lower, "x") ||
		strings.HasSuffix(lower, "z") || strings.HasSuffix(lower, "sh") ||
		strings.HasSuffix(lower, "ch") {
		variations = append(variations, label+"es."+tld)
	}
	if strings.HasSuffix(lower, "y") && len(label) > 1 {
		variations = append(variations, label[:len(label)-1]+"ies."+tld)
	}
	if strings.HasSuffix(lower, "s") && len(label) > 1 {
		variations = append(variations, label[:len(label)-1]+"."+tld)
	}
	if strings.HasSuffix(lower, "es") && len(label) > 2 {
		variations = append(variations, label[:len(label)-2]+"."+tld)
	}
	if strings.HasSuffix(lower, "ies") && len(label) > 3 {
		variations = append(variations, label[:len(label)-3]+"y."+tld)
	}

	return variations
}

func dedupSorted(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
