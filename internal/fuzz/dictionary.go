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
	"os"
	"path/filepath"
	"strings"
)

// builtinDictionary seeds combosquatting when no user dictionary is
// available.
var builtinDictionary = []string{
	"support", "secure", "login", "pay", "help", "service", "account",
	"portal", "center", "app", "online", "store", "shop", "mail", "cloud",
	"data", "mobile", "web", "digital", "tech", "pro", "plus", "premium",
	"official", "admin", "manage", "bank", "finance", "crypto",
}

// LoadDictionary reads one word per line, skipping blanks. A missing
// or unreadable file yields an empty dictionary rather than an error;
// callers fall back to the default.
func LoadDictionary(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// DefaultDictionary prefers a user dictionary in the XDG data
// directory, then falls back to the built-in word list.
func DefaultDictionary() []string {
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "share", "typofuzz", "dictionary.txt")
		if _, err := os.Stat(path); err == nil {
			if words := LoadDictionary(path); len(words) > 0 {
				return words
			}
		}
	}

	words := make([]string, len(builtinDictionary))
	copy(words, builtinDictionary)
	return words
}
