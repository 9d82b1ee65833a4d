// Package registry holds the static TLD lookup tables used by the
// status tiers: per-TLD RDAP base URLs and WHOIS server addresses.
//
// The tables are intentionally small. RDAP coverage is limited to the
// registries with stable public endpoints; everything else cascades to
// WHOIS, which falls back to IANA when the TLD has no dedicated server.
package registry

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

// IANAWhois is the WHOIS server of last resort for TLDs without a
// dedicated entry.
const IANAWhois = "whois.iana.org:43"

// rdapEndpoints maps a lowercase TLD to the RDAP base URL the domain
// name is appended to.
var rdapEndpoints = map[string]string{
	// Major gTLDs
	"com":  "https://rdap.verisign.com/com/v1/domain/",
	"net":  "https://rdap.verisign.com/net/v1/domain/",
	"org":  "https://rdap.publicinterestregistry.org/rdap/domain/",
	"info": "https://rdap.identitydigital.services/rdap/domain/",
	"biz":  "https://rdap.nic.biz/domain/",
	// Google TLDs
	"app":  "https://rdap.nic.google/domain/",
	"dev":  "https://rdap.nic.google/domain/",
	"page": "https://rdap.nic.google/domain/",
	// Other popular TLDs
	"xyz":    "https://rdap.nic.xyz/domain/",
	"tech":   "https://rdap.nic.tech/domain/",
	"online": "https://rdap.nic.online/domain/",
	"site":   "https://rdap.nic.site/domain/",
	// ccTLDs
	"io": "https://rdap.identitydigital.services/rdap/domain/",
	"ai": "https://rdap.nic.ai/domain/",
	"co": "https://rdap.nic.co/domain/",
	"me": "https://rdap.nic.me/domain/",
	"us": "https://rdap.nic.us/domain/",
	"uk": "https://rdap.nominet.uk/domain/",
	"eu": "https://rdap.eu.org/domain/",
	"de": "https://rdap.denic.de/domain/",
	"ca": "https://rdap.cira.ca/domain/",
	"au": "https://rdap.auda.org.au/domain/",
	"fr": "https://rdap.nic.fr/domain/",
	"jp": "https://rdap.jprs.jp/domain/",
	"br": "https://rdap.registro.br/domain/",
	"in": "https://rdap.registry.in/domain/",
	"cn": "https://rdap.cnnic.cn/domain/",
	"tv": "https://rdap.verisign.com/tv/v1/domain/",
	"cc": "https://rdap.verisign.com/cc/v1/domain/",
}

// whoisServers maps a lowercase TLD to its WHOIS server host:port.
var whoisServers = map[string]string{
	"com":  "whois.verisign-grs.com:43",
	"net":  "whois.verisign-grs.com:43",
	"org":  "whois.pir.org:43",
	"info": "whois.afilias.net:43",
	"biz":  "whois.neulevel.biz:43",
	"us":   "whois.nic.us:43",
	"co":   "whois.nic.co:43",
	"io":   "whois.nic.io:43",
	"me":   "whois.nic.me:43",
	"uk":   "whois.nic.uk:43",
	"ca":   "whois.cira.ca:43",
	"de":   "whois.denic.de:43",
	"fr":   "whois.afnic.fr:43",
	"ru":   "whois.tcinet.ru:43",
	"cn":   "whois.cnnic.net.cn:43",
	"jp":   "whois.jprs.jp:43",
	"au":   "whois.auda.org.au:43",
	"br":   "whois.registro.br:43",
	"tk":   "whois.dot.tk:43",
	"ml":   "whois.dot.ml:43",
	"ga":   "whois.dot.ga:43",
	"cf":   "whois.dot.cf:43",
	"app":  "whois.nic.google:43",
	"dev":  "whois.nic.google:43",
	"tech": "whois.nic.tech:43",
}

// RDAPEndpoint returns the RDAP base URL for tld. The second return is
// false when the TLD has no known endpoint and the caller should move
// on to the next tier.
func RDAPEndpoint(tld string) (string, bool) {
	endpoint, ok := rdapEndpoints[strings.ToLower(tld)]
	return endpoint, ok
}

// WhoisServer returns the WHOIS host:port for tld, falling back to the
// IANA server when no dedicated one is known.
func WhoisServer(tld string) string {
	if server, ok := whoisServers[strings.ToLower(tld)]; ok {
		return server
	}
	return IANAWhois
}

// RDAPTLDs returns the sorted list of TLDs with a known RDAP endpoint.
func RDAPTLDs() []string {
	tlds := make([]string, 0, len(rdapEndpoints))
	for tld := range rdapEndpoints {
		tlds = append(tlds, tld)
	}
	sort.Strings(tlds)
	return tlds
}

// WhoisTLDs returns the sorted list of TLDs with a dedicated WHOIS
// server.
func WhoisTLDs() []string {
	tlds := make([]string, 0, len(whoisServers))
	for tld := range whoisServers {
		tlds = append(tlds, tld)
	}
	sort.Strings(tlds)
	return tlds
}
