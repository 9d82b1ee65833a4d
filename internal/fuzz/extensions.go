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

// commonTLDs are the extensions people try when they misremember the
// real one.
var commonTLDs = []string{
	"com", "net", "org", "info", "biz", "us", "co", "io", "me", "app",
	"dev", "tech", "online", "site", "store", "shop", "uk", "ca", "de",
	"fr", "ru", "cn", "jp", "au", "br", "tk", "ml", "ga", "cf",
}

// TLDVariations keeps the label and swaps in every common TLD.
func TLDVariations(label, _ string) []string {
	variations := make([]string, 0, len(commonTLDs))
	for _, newTLD := range commonTLDs {
		variations = append(variations, label+"."+newTLD)
	}
	return variations
}

// idnTLDs maps Latin TLDs to their internationalized lookalikes.
var idnTLDs = []struct {
	latin string
	idn   string
}{
	{"com", "ком"}, {"net", "нет"}, {"org", "орг"},
	{"com", "كوم"}, {"net", "شبكة"}, {"org", "منظمة"},
	{"com", "公司"}, {"net", "网络"}, {"org", "组织"}, {"cn", "中国"},
	{"com", "コム"}, {"net", "ネット"}, {"org", "オルグ"},
	{"com", "컴"}, {"net", "넷"}, {"kr", "한국"},
	{"com", "κομ"}, {"net", "δικτυο"}, {"org", "οργ"}, {"gr", "ελ"},
	{"com", "קום"}, {"net", "רשת"}, {"org", "ארג"},
	{"com", "คอม"}, {"net", "เน็ต"}, {"th", "ไทย"},
	{"com", "कॉम"}, {"net", "नेट"}, {"org", "संगठन"}, {"in", "भारत"},
}

// mixedScriptTLDs look like common TLDs but contain Cyrillic or Greek
// characters.
var mixedScriptTLDs = []string{
	"co.ук", "com.ау", "со.uk", "сom", "nеt", "оrg", "οrg", "cοm",
}

// IntlTLD swaps the extension for internationalized and mixed-script
// lookalikes.
func IntlTLD(label, tld string) []string {
	var variations []string

	for _, pair := range idnTLDs {
		if tld == pair.latin || tld == "com" || tld == "net" || tld == "org" {
			variations = append(variations, label+"."+pair.idn)
		}
	}
	for _, mixed := range mixedScriptTLDs {
		variations = append(variations, label+"."+mixed)
	}

	return variations
}

// countrySLDs are the second-level domain hierarchies of countries
// that use them.
var countrySLDs = []struct {
	base string
	slds []string
}{
	{"uk", []string{"co.uk", "org.uk", "net.uk", "ac.uk", "gov.uk", "sch.uk"}},
	{"au", []string{"com.au", "net.au", "org.au", "edu.au", "gov.au", "asn.au"}},
	{"nz", []string{"co.nz", "net.nz", "org.nz", "ac.nz", "govt.nz", "school.nz"}},
	{"za", []string{"co.za", "net.za", "org.za", "edu.za", "gov.za", "ac.za"}},
	{"ca", []string{"co.ca", "net.ca", "org.ca", "gc.ca", "ab.ca", "bc.ca"}},
	{"br", []string{"com.br", "net.br", "org.br", "edu.br", "gov.br", "mil.br"}},
	{"in", []string{"co.in", "net.in", "org.in", "edu.in", "gov.in", "ac.in"}},
	{"cn", []string{"com.cn", "net.cn", "org.cn", "edu.cn", "gov.cn", "ac.cn"}},
	{"jp", []string{"co.jp", "ne.jp", "or.jp", "ac.jp", "go.jp", "ad.jp"}},
}

// WrongSLD moves the name between a country TLD and its second-level
// hierarchies: example.uk becomes example.co.uk and vice versa.
func WrongSLD(label, tld string) []string {
	var variations []string

	for _, entry := range countrySLDs {
		if tld == entry.base {
			for _, sld := range entry.slds {
				variations = append(variations, label+"."+sld)
			}
			continue
		}
		for _, sld := range entry.slds {
			if tld != sld {
				continue
			}
			variations = append(variations, label+"."+entry.base)
			for _, other := range entry.slds {
				if other != sld {
					variations = append(variations, label+"."+other)
				}
			}
		}
	}

	return variations
}

// Combosquatting joins the label with dictionary words in both orders.
func Combosquatting(label, tld string, dict []string) []string {
	variations := make([]string, 0, len(dict)*4)
	for _, word := range dict {
		variations = append(variations,
			label+"-"+word+"."+tld,
			label+word+"."+tld,
			word+"-"+label+"."+tld,
			word+label+"."+tld,
		)
	}
	return variations
}

var authorityPrefixes = []string{"www", "secure", "official", "my", "admin", "portal", "app"}
var authoritySuffixes = []string{"app", "online", "portal", "center", "pro", "plus", "secure"}

// BrandConfusion wraps the name in authority words that suggest an
// official property: secure-example.com, www.example.com as its own
// registration, example-portal.com.
func BrandConfusion(label, tld string) []string {
	var variations []string

	for _, prefix := range authorityPrefixes {
		variations = append(variations,
			prefix+"-"+label+"."+tld,
			prefix+"."+label+"."+tld,
		)
	}
	for _, suffix := range authoritySuffixes {
		variations = append(variations,
			label+"-"+suffix+"."+tld,
			label+suffix+"."+tld,
		)
	}

	return variations
}

var domainPrefixes = []string{
	"www", "mail", "secure", "admin", "test", "dev", "api", "cdn", "auth",
	"login", "support", "help", "shop", "store", "my", "portal", "mobile",
	"app", "service", "cloud", "server", "vpn", "security", "monitor", "beta",
}

// DomainPrefix attaches service words before the name, hyphenated,
// dotted, and concatenated.
func DomainPrefix(label, tld string) []string {
	variations := make([]string, 0, len(domainPrefixes)*3)
	for _, prefix := range domainPrefixes {
		variations = append(variations,
			prefix+"-"+label+"."+tld,
			prefix+"."+label+"."+tld,
			prefix+label+"."+tld,
		)
	}
	return variations
}

var domainSuffixes = []string{
	"app", "site", "web", "online", "pro", "plus", "premium", "club",
	"group", "tech", "service", "platform", "security", "media", "shop",
	"store", "finance", "health", "gaming", "demo", "beta",
}

// DomainSuffix attaches service words after the name.
func DomainSuffix(label, tld string) []string {
	variations := make([]string, 0, len(domainSuffixes)*2)
	for _, suffix := range domainSuffixes {
		variations = append(variations,
			label+"-"+suffix+"."+tld,
			label+suffix+"."+tld,
		)
	}
	return variations
}
