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
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/typofuzz/typofuzz/internal/domain"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestLeetspeak(t *testing.T) {
	t.Parallel()

	got := Leetspeak("example", "com")
	for _, want := range []string{"examp1e.com", "3xample.com", "ex@mple.com"} {
		if !contains(got, want) {
			t.Errorf("Leetspeak(example) missing %s", want)
		}
	}
	if contains(got, "example.com") {
		t.Error("Leetspeak produced the original domain")
	}

	if got := Leetspeak("", "com"); len(got) != 0 {
		t.Errorf("empty label produced %d variants", len(got))
	}
	// No leetable characters at all.
	if got := Leetspeak("ck", "com"); len(got) != 0 {
		t.Errorf("unleetable label produced %v", got)
	}
}

func TestFatFinger(t *testing.T) {
	t.Parallel()

	got := FatFinger("ab", "com")
	for _, want := range []string{"aab.com", "sb.com", "qab.com"} {
		if !contains(got, want) {
			t.Errorf("FatFinger(ab) missing %s", want)
		}
	}

	// Length cap: 150% of the original.
	for _, v := range FatFinger("example", "com") {
		label := strings.TrimSuffix(v, ".com")
		if len(label) > 10 {
			t.Errorf("variant %q exceeds length cap", v)
		}
	}
}

func TestMisspelling(t *testing.T) {
	t.Parallel()

	got := Misspelling("example", "com")
	for _, want := range []string{
		"xample.com",  // deletion
		"xeample.com", // transposition
		"ixample.com", // vowel swap
		"wxample.com", // adjacent key
	} {
		if !contains(got, want) {
			t.Errorf("Misspelling(example) missing %s", want)
		}
	}
	if contains(got, "example.com") {
		t.Error("Misspelling produced the original domain")
	}
}

func TestMixedEncodings(t *testing.T) {
	t.Parallel()

	got := MixedEncodings("abc", "com")
	if !contains(got, "аbc.com") { // Cyrillic а
		t.Error("MixedEncodings(abc) missing cyrillic variant")
	}
	if !contains(got, "ａbc.com") { // fullwidth a
		t.Error("MixedEncodings(abc) missing fullwidth variant")
	}
	if contains(got, "abc.com") {
		t.Error("MixedEncodings produced the original domain")
	}
}

func TestBitsquatting(t *testing.T) {
	t.Parallel()

	got := Bitsquatting("a", "com")
	// Flipping bits of 'a' keeps c, e, i, q, and A in the
	// alphanumeric range.
	want := []string{"c.com", "e.com", "i.com", "q.com", "A.com"}
	if len(got) != len(want) {
		t.Fatalf("Bitsquatting(a) = %v, want %d variants", got, len(want))
	}
	for _, w := range want {
		if !contains(got, w) {
			t.Errorf("Bitsquatting(a) missing %s", w)
		}
	}
}

func TestCognitive(t *testing.T) {
	t.Parallel()

	got := Cognitive("google", "com")
	if !contains(got, "gogle.com") {
		t.Error("Cognitive(google) missing gogle.com")
	}
	if contains(got, "google.com") {
		t.Error("Cognitive produced the original domain")
	}

	// Output is sorted and free of duplicates.
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("output not strictly sorted at %d: %q then %q", i, got[i-1], got[i])
		}
	}

	// Phonetic substitution applies to any label.
	if !contains(Cognitive("phone", "com"), "fone.com") {
		t.Error("Cognitive(phone) missing fone.com")
	}
}

func TestHomophones(t *testing.T) {
	t.Parallel()

	if !contains(Homophones("mailbox", "com"), "malebox.com") {
		t.Error("Homophones(mailbox) missing malebox.com")
	}
	// Reverse direction.
	if !contains(Homophones("malebox", "com"), "mailbox.com") {
		t.Error("Homophones(malebox) missing mailbox.com")
	}
}

func TestNumberSubstitutions(t *testing.T) {
	t.Parallel()

	if !contains(CardinalSubstitution("site1", "com"), "siteone.com") {
		t.Error("CardinalSubstitution(site1) missing siteone.com")
	}
	if !contains(CardinalSubstitution("siteone", "com"), "site1.com") {
		t.Error("CardinalSubstitution(siteone) missing site1.com")
	}
	if !contains(OrdinalSubstitution("1stbank", "com"), "firstbank.com") {
		t.Error("OrdinalSubstitution(1stbank) missing firstbank.com")
	}
}

func TestSingularPlural(t *testing.T) {
	t.Parallel()

	got := SingularPlural("service", "com")
	if !contains(got, "services.com") {
		t.Errorf("SingularPlural(service) = %v, missing services.com", got)
	}

	got = SingularPlural("sites", "com")
	if !contains(got, "site.com") {
		t.Errorf("SingularPlural(sites) = %v, missing site.com", got)
	}

	got = SingularPlural("company", "com")
	if !contains(got, "companies.com") {
		t.Errorf("SingularPlural(company) = %v, missing companies.com", got)
	}
}

func TestStructureGenerators(t *testing.T) {
	t.Parallel()

	got := SubdomainInjection("example", "com")
	if len(got) != 6 {
		t.Errorf("SubdomainInjection(example) produced %d variants, want 6", len(got))
	}
	if !contains(got, "ex.ample.com") {
		t.Error("SubdomainInjection(example) missing ex.ample.com")
	}

	got = Hyphenation("example", "com")
	if !contains(got, "ex-ample.com") {
		t.Error("Hyphenation(example) missing ex-ample.com")
	}
	// Existing hyphens are not doubled.
	for _, v := range Hyphenation("ex-ample", "com") {
		if strings.Contains(v, "--") {
			t.Errorf("Hyphenation produced consecutive hyphens: %s", v)
		}
	}

	if !contains(DotOmission("www.example", "com"), "wwwexample.com") {
		t.Error("DotOmission(www.example) missing wwwexample.com")
	}
	if len(DotOmission("example", "com")) != 0 {
		t.Error("DotOmission without dots should produce nothing")
	}

	got = DotHyphenSubstitution("my-example", "com")
	if !contains(got, "my.example.com") {
		t.Error("DotHyphenSubstitution(my-example) missing my.example.com")
	}

	got = WordSwap("example", "com")
	if !contains(got, "mpleexa.com") {
		t.Errorf("WordSwap(example) = %v, missing mpleexa.com", got)
	}
	if len(WordSwap("abc", "com")) != 0 {
		t.Error("WordSwap on short label should produce nothing")
	}
}

func TestExtensionGenerators(t *testing.T) {
	t.Parallel()

	got := TLDVariations("example", "com")
	if len(got) != len(commonTLDs) {
		t.Errorf("TLDVariations produced %d variants, want %d", len(got), len(commonTLDs))
	}
	if !contains(got, "example.net") {
		t.Error("TLDVariations missing example.net")
	}

	got = WrongSLD("example", "uk")
	if !contains(got, "example.co.uk") {
		t.Error("WrongSLD(uk) missing example.co.uk")
	}
	if len(WrongSLD("example", "de")) != 0 {
		t.Error("WrongSLD(de) should produce nothing")
	}

	got = Combosquatting("example", "com", []string{"pay"})
	want := []string{"example-pay.com", "examplepay.com", "pay-example.com", "payexample.com"}
	if len(got) != len(want) {
		t.Fatalf("Combosquatting = %v, want %d variants", got, len(want))
	}
	for _, w := range want {
		if !contains(got, w) {
			t.Errorf("Combosquatting missing %s", w)
		}
	}

	if !contains(BrandConfusion("example", "com"), "secure-example.com") {
		t.Error("BrandConfusion missing secure-example.com")
	}
	if !contains(DomainPrefix("example", "com"), "www.example.com") {
		t.Error("DomainPrefix missing www.example.com")
	}
	if !contains(DomainSuffix("example", "com"), "example-app.com") {
		t.Error("DomainSuffix missing example-app.com")
	}

	got = IntlTLD("example", "com")
	if !contains(got, "example.ком") {
		t.Error("IntlTLD missing example.ком")
	}
}

func TestParseTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{"default is lookalike", nil, lookalikeBundle, false},
		{"lookalike bundle", []string{"lookalike"}, lookalikeBundle, false},
		{"system-fault bundle", []string{"system-fault"}, systemFaultBundle, false},
		{"all", []string{"all"}, allTransformations, false},
		{"explicit names", []string{"bitsquatting", "homophones"}, []string{"bitsquatting", "homophones"}, false},
		{"case folded", []string{"Bitsquatting"}, []string{"bitsquatting"}, false},
		{"bundle plus name", []string{"lookalike", "homophones"}, append([]string{"homophones"}, lookalikeBundle...), false},
		{"unknown", []string{"nonsense"}, nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTransforms(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransforms failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("enabled %d transforms, want %d: %v", len(got), len(tt.want), got)
			}
			for _, name := range tt.want {
				if _, ok := got[name]; !ok {
					t.Errorf("missing %s", name)
				}
			}
		})
	}
}

func TestRegistryCoversAllTransformations(t *testing.T) {
	t.Parallel()

	registry := Registry(nil)
	for _, name := range allTransformations {
		if _, ok := registry[name]; !ok {
			t.Errorf("registry missing %s", name)
		}
	}
}

func TestDictionary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	if err := os.WriteFile(path, []byte("alpha\n\n  beta  \ngamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	words := LoadDictionary(path)
	if len(words) != 3 || words[0] != "alpha" || words[1] != "beta" || words[2] != "gamma" {
		t.Errorf("LoadDictionary = %v", words)
	}

	if got := LoadDictionary(filepath.Join(dir, "missing.txt")); got != nil {
		t.Errorf("missing file returned %v", got)
	}

	if len(DefaultDictionary()) == 0 {
		t.Error("DefaultDictionary is empty")
	}
}

func TestSingleStream(t *testing.T) {
	t.Parallel()

	enabled := map[string]struct{}{"tld-variations": {}}
	stream := NewSingleStream("example", "com", enabled, nil, 0)

	var got []domain.Candidate
	for {
		c, ok := stream.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}

	// 29 common TLDs minus the original example.com.
	if len(got) != len(commonTLDs)-1 {
		t.Fatalf("stream yielded %d candidates, want %d", len(got), len(commonTLDs)-1)
	}
	for _, c := range got {
		if c.Transform != "tld-variations" {
			t.Errorf("candidate %s has transform %q", c.Name, c.Transform)
		}
		if c.Name == "example.com" {
			t.Error("stream yielded the original domain")
		}
		if c.Score <= 0 {
			t.Errorf("candidate %s has score %v", c.Name, c.Score)
		}
	}
}

func TestSingleStreamThreshold(t *testing.T) {
	t.Parallel()

	enabled := map[string]struct{}{"tld-variations": {}}
	all := NewSingleStream("example", "com", enabled, nil, 0)
	strict := NewSingleStream("example", "com", enabled, nil, 0.999)

	countAll := 0
	for _, ok := all.Next(); ok; _, ok = all.Next() {
		countAll++
	}
	countStrict := 0
	for _, ok := strict.Next(); ok; _, ok = strict.Next() {
		countStrict++
	}

	if countStrict > countAll {
		t.Errorf("threshold increased output: %d > %d", countStrict, countAll)
	}
}

func TestComboStream(t *testing.T) {
	t.Parallel()

	enabled, err := ParseTransforms(nil)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	stream := NewComboStream("example", "com", enabled, nil, 0, 5000, rng)

	seen := make(map[string]struct{})
	count := 0
	for count < 50 {
		c, ok := stream.Next()
		if !ok {
			break
		}
		count++

		if c.Transform != "combo" {
			t.Errorf("candidate %s has transform %q", c.Name, c.Transform)
		}
		if strings.EqualFold(c.Name, "example.com") {
			t.Error("combo stream yielded the original domain")
		}
		if !domain.IsValid(c.Name) {
			t.Errorf("combo stream yielded invalid domain %q", c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			t.Errorf("combo stream yielded duplicate %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	if count == 0 {
		t.Fatal("combo stream yielded nothing")
	}
}

func TestComboStreamExhaustsAttemptBudget(t *testing.T) {
	t.Parallel()

	enabled := map[string]struct{}{"dot-omission": {}}
	// dot-omission never fires on a dotless label, so the stream
	// runs out of attempts and stops.
	stream := NewComboStream("example", "com", enabled, nil, 0, 100, rand.New(rand.NewSource(1)))
	if c, ok := stream.Next(); ok {
		t.Errorf("expected exhausted stream, got %v", c)
	}
}
