package domain

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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple domain", "example.com", "example.com"},
		{"Uppercase", "EXAMPLE.COM", "example.com"},
		{"Mixed case", "Www.Example.Com", "www.example.com"},
		{"Trailing dot", "example.com.", "example.com"},
		{"Leading dot", ".example.com", "example.com"},
		{"Surrounding spaces", "  example.com  ", "example.com"},
		{"Empty", "", ""},
		{"Just dots", "...", ""},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input string
		label string
		tld   string
	}{
		{"example.com", "example", "com"},
		{"login.example.com", "login.example", "com"},
		{"example", "example", "com"}, // bare label defaults to com
		{"example.co.uk", "example.co", "uk"},
	}
	for _, tc := range testCases {
		label, tld := Split(tc.input)
		if label != tc.label || tld != tc.tld {
			t.Errorf("Split(%q) = (%q, %q); want (%q, %q)", tc.input, label, tld, tc.label, tc.tld)
		}
	}
}

func TestRegistrable(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		expected string
	}{
		{"example.com", "example.com"},
		{"con.cordiumm.com", "cordiumm.com"},
		{"a.b.c.example.org", "example.org"},
		{"nodot", "nodot"},
	}
	for _, tc := range testCases {
		if got := Registrable(tc.input); got != tc.expected {
			t.Errorf("Registrable(%q) = %q; want %q", tc.input, got, tc.expected)
		}
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"Simple", "example.com", true},
		{"Hyphenated", "ex-ample.com", true},
		{"Digits", "examp1e.com", true},
		{"IDN label", "exаmple.com", true}, // Cyrillic а
		{"Empty", "", false},
		{"No dot", "example", false},
		{"Leading dot", ".example.com", false},
		{"Trailing dot", "example.com.", false},
		{"Consecutive dots", "ex..ample.com", false},
		{"Leading hyphen label", "-example.com", false},
		{"Trailing hyphen label", "example-.com", false},
		{"Single-char TLD", "example.c", false},
		{"Underscore", "exa_mple.com", false},
		{"Space", "exa mple.com", false},
		{"Long label", strings.Repeat("a", 64) + ".com", false},
		{"Long domain", strings.Repeat("a.", 130) + "com", false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValid(tc.input); got != tc.valid {
				t.Errorf("IsValid(%q) = %v; want %v", tc.input, got, tc.valid)
			}
		})
	}
}

func TestFilterValid(t *testing.T) {
	t.Parallel()
	in := []string{"Example.COM", "bad..dot.com", "-bad.com", "ok.io"}
	got := FilterValid(in)
	want := []string{"example.com", "ok.io"}
	if len(got) != len(want) {
		t.Fatalf("FilterValid returned %d entries; want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterValid[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func BenchmarkIsValid(b *testing.B) {
	domain := "login-secure.example-portal.com"
	for i := 0; i < b.N; i++ {
		_ = IsValid(domain)
	}
}
