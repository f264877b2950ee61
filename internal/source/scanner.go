// Package source locates capture files on disk.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// Extension is the suffix of capture files.
const Extension = ".spec"

// startLayout matches the start time embedded after the 8 character prefix of
// a capture filename.
const startLayout = "02Jan2006-15.04.05"

// Scanner finds capture files and reads their headers.
type Scanner struct {
	Devices  capture.DeviceTable
	Location *time.Location
}

// NewScanner creates a scanner using the built-in device table and the
// default capture timezone.
func NewScanner() *Scanner {
	return &Scanner{Devices: capture.DefaultDevices(), Location: capture.DefaultLocation()}
}

// Matches returns the capture files of dir in lexical order.
func Matches(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// Scan describes every capture in dir. Captures with unreadable headers are
// still listed, with the reason in HeaderError.
func (s *Scanner) Scan(dir string) ([]CaptureInfo, error) {
	matches, err := Matches(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", dir, err)
	}

	var captures []CaptureInfo
	for _, path := range matches {
		stat, err := os.Stat(path)
		if err != nil || stat.IsDir() {
			continue
		}
		info := CaptureInfo{
			Name:       filepath.Base(path),
			Path:       path,
			SizeBytes:  stat.Size(),
			ModifiedAt: stat.ModTime(),
			StartedAt:  s.startedAt(path),
		}
		if h, err := s.readHeader(path); err != nil {
			info.HeaderError = err.Error()
		} else {
			info.Device = h.Device
			info.Serial = h.Serial
			info.SamplesPerSweep = h.SamplesPerSweep
		}
		captures = append(captures, info)
	}
	return captures, nil
}

func (s *Scanner) readHeader(path string) (capture.Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return capture.Header{}, err
	}
	defer file.Close()

	return capture.ReadHeader(file, s.Devices)
}

// startedAt parses the start time from the filename, zero if absent.
func (s *Scanner) startedAt(path string) time.Time {
	base := filepath.Base(path)
	if len(base) < 8+len(startLayout) {
		return time.Time{}
	}
	loc := s.Location
	if loc == nil {
		loc = capture.DefaultLocation()
	}
	t, err := time.ParseInLocation(startLayout, base[8:8+len(startLayout)], loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
