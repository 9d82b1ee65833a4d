/*
Package output renders pipeline matches for people and files. The
console sink prints one line per match as soon as it arrives; the file
sink buffers lines and flushes in the background so slow disks never
stall the resolution pipeline.
*/
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
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/typofuzz/typofuzz/internal/core"
	"github.com/typofuzz/typofuzz/internal/util"
)

const (
	// DefaultBufferSize is the write buffer for the file sink.
	DefaultBufferSize = 64 * 1024

	// FlushInterval is how often the file sink flushes on its own.
	FlushInterval = 2 * time.Second
)

// ErrSinkClosed is returned when writing to a closed sink.
var ErrSinkClosed = errors.New("output sink closed")

// FormatMatch renders one match in the canonical output form:
// "73.28%, domain, transform" with the outcome appended when status
// checking ran.
func FormatMatch(m core.Match, withStatus bool) string {
	line := fmt.Sprintf("%.2f%%, %s, %s", m.Candidate.Score*100, m.Candidate.Name, m.Candidate.Transform)
	if withStatus {
		line += ", " + string(m.Outcome)
	}
	return line
}

// Sink consumes matches as the pipeline produces them.
type Sink interface {
	WriteMatch(m core.Match) error
	Close() error
}

// ConsoleSink writes each match line immediately. Safe for concurrent
// use.
type ConsoleSink struct {
	mu         sync.Mutex
	w          io.Writer
	withStatus bool
}

// NewConsoleSink writes matches to w, typically os.Stdout.
func NewConsoleSink(w io.Writer, withStatus bool) *ConsoleSink {
	return &ConsoleSink{w: w, withStatus: withStatus}
}

func (s *ConsoleSink) WriteMatch(m core.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, FormatMatch(m, s.withStatus))
	return err
}

func (s *ConsoleSink) Close() error { return nil }

// FileSink buffers match lines and flushes them periodically in the
// background. Paths ending in .gz are gzip-compressed.
type FileSink struct {
	file       *os.File
	gzWriter   *gzip.Writer
	bufWriter  *bufio.Writer
	withStatus bool
	tmpPath    string
	finalPath  string

	mu     sync.Mutex
	closed bool

	done    chan struct{}
	flushWg sync.WaitGroup

	linesWritten atomic.Int64
	flushCount   atomic.Int64
}

// NewFileSink opens path for writing, creating parent directories as
// needed. The filename component is sanitized so a hostile domain
// name cannot escape into the path. Lines are written to a temp file
// that is renamed into place on Close, so an interrupted run leaves
// either the previous file or a complete new one.
func NewFileSink(path string, withStatus bool) (*FileSink, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	path = filepath.Join(dir, util.SanitizeFilename(filepath.Base(path)))
	tmpPath := path + ".tmp"

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", tmpPath, err)
	}

	fs := &FileSink{
		file:       file,
		withStatus: withStatus,
		tmpPath:    tmpPath,
		finalPath:  path,
		done:       make(chan struct{}),
	}

	if strings.HasSuffix(path, ".gz") {
		gzw, err := gzip.NewWriterLevel(file, gzip.BestSpeed)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to create gzip writer: %w", err)
		}
		fs.gzWriter = gzw
		fs.bufWriter = bufio.NewWriterSize(gzw, DefaultBufferSize)
	} else {
		fs.bufWriter = bufio.NewWriterSize(file, DefaultBufferSize)
	}

	fs.startBackgroundFlusher()
	return fs, nil
}

func (s *FileSink) startBackgroundFlusher() {
	ticker := time.NewTicker(FlushInterval)
	s.flushWg.Add(1)

	go func() {
		defer s.flushWg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Flush()
			case <-s.done:
				return
			}
		}
	}()
}

func (s *FileSink) WriteMatch(m core.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	if _, err := s.bufWriter.WriteString(FormatMatch(m, s.withStatus) + "\n"); err != nil {
		return fmt.Errorf("failed to write to buffer: %w", err)
	}
	s.linesWritten.Add(1)
	return nil
}

// Flush forces buffered lines to disk.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	if s.bufWriter.Buffered() == 0 {
		return nil
	}

	if err := s.bufWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}
	if s.gzWriter != nil {
		if err := s.gzWriter.Flush(); err != nil {
			return fmt.Errorf("failed to flush gzip writer: %w", err)
		}
	}
	s.flushCount.Add(1)
	return nil
}

// LinesWritten reports how many matches have been accepted.
func (s *FileSink) LinesWritten() int64 {
	return s.linesWritten.Load()
}

// Close flushes remaining lines, closes the temp file, and renames it
// to the final path.
func (s *FileSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.flushWg.Wait()

	if err := s.bufWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer on close: %w", err)
	}
	if s.gzWriter != nil {
		if err := s.gzWriter.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer: %w", err)
		}
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(s.tmpPath, s.finalPath); err != nil {
		return fmt.Errorf("failed to rename %s: %w", s.tmpPath, err)
	}
	return nil
}
