package output

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
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/typofuzz/typofuzz/internal/core"
	"github.com/typofuzz/typofuzz/internal/domain"
	"github.com/typofuzz/typofuzz/internal/status"
)

func sampleMatch() core.Match {
	return core.Match{
		Candidate: domain.Candidate{Name: "examp1e.com", Transform: "1337speak", Score: 0.7328},
		Outcome:   status.Available,
	}
}

func TestFormatMatch(t *testing.T) {
	t.Parallel()

	m := sampleMatch()

	if got := FormatMatch(m, false); got != "73.28%, examp1e.com, 1337speak" {
		t.Errorf("FormatMatch without status = %q", got)
	}
	if got := FormatMatch(m, true); got != "73.28%, examp1e.com, 1337speak, available" {
		t.Errorf("FormatMatch with status = %q", got)
	}
}

func TestConsoleSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, true)

	if err := sink.WriteMatch(sampleMatch()); err != nil {
		t.Fatalf("WriteMatch failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := "73.28%, examp1e.com, 1337speak, available\n"
	if buf.String() != want {
		t.Errorf("console output = %q, want %q", buf.String(), want)
	}
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "results.txt")
	sink, err := NewFileSink(path, false)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := sink.WriteMatch(sampleMatch()); err != nil {
			t.Fatalf("WriteMatch failed: %v", err)
		}
	}
	if got := sink.LinesWritten(); got != 3 {
		t.Errorf("LinesWritten = %d, want 3", got)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3", len(lines))
	}
	if lines[0] != "73.28%, examp1e.com, 1337speak" {
		t.Errorf("line = %q", lines[0])
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after close: %v", err)
	}

	// A second write after close is rejected.
	if err := sink.WriteMatch(sampleMatch()); err != ErrSinkClosed {
		t.Errorf("write after close returned %v, want ErrSinkClosed", err)
	}
}

func TestFileSinkGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.txt.gz")
	sink, err := NewFileSink(path, true)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}
	if err := sink.WriteMatch(sampleMatch()); err != nil {
		t.Fatalf("WriteMatch failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gzr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, err := io.ReadAll(gzr)
	if err != nil {
		t.Fatalf("reading gzip: %v", err)
	}

	want := "73.28%, examp1e.com, 1337speak, available\n"
	if string(data) != want {
		t.Errorf("gzip output = %q, want %q", string(data), want)
	}
}

func TestFileSinkSanitizesFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSink(filepath.Join(dir, `results:*?.txt`), false)
	if err != nil {
		t.Fatalf("NewFileSink failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "results___.txt")); err != nil {
		t.Errorf("sanitized file missing: %v", err)
	}
}
