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
	"testing"
)

func TestRDAPEndpoint(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		tld      string
		expected string
		known    bool
	}{
		{"com", "https://rdap.verisign.com/com/v1/domain/", true},
		{"COM", "https://rdap.verisign.com/com/v1/domain/", true}, // case-insensitive
		{"org", "https://rdap.publicinterestregistry.org/rdap/domain/", true},
		{"io", "https://rdap.identitydigital.services/rdap/domain/", true},
		{"dev", "https://rdap.nic.google/domain/", true},
		{"tv", "https://rdap.verisign.com/tv/v1/domain/", true},
		{"zz", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		endpoint, ok := RDAPEndpoint(tc.tld)
		if ok != tc.known || endpoint != tc.expected {
			t.Errorf("RDAPEndpoint(%q) = (%q, %v); want (%q, %v)",
				tc.tld, endpoint, ok, tc.expected, tc.known)
		}
	}
}

func TestWhoisServer(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		tld      string
		expected string
	}{
		{"com", "whois.verisign-grs.com:43"},
		{"net", "whois.verisign-grs.com:43"},
		{"Org", "whois.pir.org:43"},
		{"de", "whois.denic.de:43"},
		{"app", "whois.nic.google:43"},
		{"zz", IANAWhois}, // fallback
		{"", IANAWhois},
	}
	for _, tc := range testCases {
		if got := WhoisServer(tc.tld); got != tc.expected {
			t.Errorf("WhoisServer(%q) = %q; want %q", tc.tld, got, tc.expected)
		}
	}
}

func TestRDAPTLDsSorted(t *testing.T) {
	t.Parallel()
	tlds := RDAPTLDs()
	if len(tlds) == 0 {
		t.Fatal("RDAPTLDs returned no entries")
	}
	if !sort.StringsAreSorted(tlds) {
		t.Errorf("RDAPTLDs not sorted: %v", tlds)
	}
	for _, tld := range tlds {
		endpoint, ok := RDAPEndpoint(tld)
		if !ok || !strings.HasPrefix(endpoint, "https://") {
			t.Errorf("listed TLD %q has bad endpoint %q", tld, endpoint)
		}
	}
}

func TestWhoisTLDsSorted(t *testing.T) {
	t.Parallel()
	tlds := WhoisTLDs()
	if len(tlds) == 0 {
		t.Fatal("WhoisTLDs returned no entries")
	}
	if !sort.StringsAreSorted(tlds) {
		t.Errorf("WhoisTLDs not sorted: %v", tlds)
	}
	for _, tld := range tlds {
		if WhoisServer(tld) == IANAWhois {
			t.Errorf("listed TLD %q fell back to IANA", tld)
		}
	}
}
