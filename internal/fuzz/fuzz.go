/*
Package fuzz generates typosquatting candidates for a target domain.

Each transformation is a Generator that takes the registrable label and
TLD of the original domain and returns complete candidate domains. The
package also provides the transformation registry with its named
bundles, the supporting dictionary, and streaming candidate sources
that chain transformations and score the results.
*/
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

// Generator produces candidate domains from a label and TLD. The label
// is the part before the TLD ("example" for example.com); returned
// strings are full domains including their TLD, which need not be the
// input TLD.
type Generator func(label, tld string) []string

// charError is one potential keystroke or substitution error at a rune
// position. The kind decides how repl is applied.
type charError struct {
	pos  int
	kind string
	repl rune
}
