package capture

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	// NoTimestampMarker starts every sweep line of captures recorded without
	// timestamps. It is followed by three more tokens before the values.
	NoTimestampMarker = "Wi-Spy"
	noTimestampPrefix = 4

	// SyntheticEpochMs is the first timestamp given to captures without
	// timestamps (2017-01-01T00:00:00Z).
	SyntheticEpochMs int64 = 1483228800000
	// TurboSweepPeriodMs is the sweep period of a 2.4 GHz turbo capture.
	TurboSweepPeriodMs int64 = 178

	// DefaultTimezone is the zone capture filenames are recorded in.
	DefaultTimezone = "America/New_York"

	edtOffsetMs int64 = -4 * 60 * 60 * 1000
	estOffsetMs int64 = -5 * 60 * 60 * 1000
)

// TimezoneOffset is the shift applied to UTC sweep timestamps.
type TimezoneOffset struct {
	Millis int64  `json:"millis"`
	Zone   string `json:"zone"`
}

// UTC leaves timestamps unchanged.
var UTC = TimezoneOffset{Zone: "UTC"}

// DefaultLocation returns the DefaultTimezone location, or UTC if it cannot be
// loaded.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

var errFilenamePattern = errors.New("filename does not carry a capture start time")

// OffsetFromFilename derives the timezone shift from the local start time
// embedded in a capture filename such as SpecCap-04Jan2018-16.22.29.spec. The
// start time is read at fixed positions and interpreted in loc, or in
// DefaultLocation when loc is nil. On failure UTC
// is returned together with an error describing why; callers treat that as a
// notice.
func OffsetFromFilename(name string, loc *time.Location) (TimezoneOffset, error) {
	base := filepath.Base(name)
	if len(base) < 26 {
		return UTC, fmt.Errorf("%q: %w", base, errFilenamePattern)
	}
	if loc == nil {
		loc = DefaultLocation()
	}

	stamp := base[8:10] + base[10:13] + base[13:17] + base[18:20] + base[21:23] + base[24:26]
	start, err := time.ParseInLocation("02Jan2006150405", stamp, loc)
	if err != nil {
		return UTC, fmt.Errorf("%q: %w: %v", base, errFilenamePattern, err)
	}

	if start.IsDST() {
		return TimezoneOffset{Millis: edtOffsetMs, Zone: "EDT"}, nil
	}
	return TimezoneOffset{Millis: estOffsetMs, Zone: "EST"}, nil
}

// rawSweep is a sweep line split into tokens, with its 1-based line number.
type rawSweep struct {
	line   int
	tokens []string
}

// NormalizeTimestamps returns the timestamp of every sweep together with the
// remaining value tokens. Captures whose first sweep starts with
// NoTimestampMarker get synthetic timestamps spaced TurboSweepPeriodMs apart,
// whatever their sample density, and are not shifted. Otherwise each sweep's
// leading "<ms>:" token is parsed as UTC and shifted by offset.
func NormalizeTimestamps(rows []rawSweep, offset TimezoneOffset) (timestamps []int64, values [][]string, synthesized bool, err error) {
	timestamps = make([]int64, len(rows))
	values = make([][]string, len(rows))
	if len(rows) == 0 {
		return timestamps, values, false, nil
	}

	if len(rows[0].tokens) > 0 && rows[0].tokens[0] == NoTimestampMarker {
		for i, row := range rows {
			timestamps[i] = SyntheticEpochMs + TurboSweepPeriodMs*int64(i)
			if len(row.tokens) > noTimestampPrefix {
				values[i] = row.tokens[noTimestampPrefix:]
			}
		}
		return timestamps, values, true, nil
	}

	for i, row := range rows {
		ts, rest, err := splitTimestamp(row.tokens)
		if err != nil {
			return nil, nil, false, &RowError{Line: row.line, Err: err}
		}
		timestamps[i] = ts + offset.Millis
		values[i] = rest
	}
	return timestamps, values, false, nil
}

// splitTimestamp parses the "<ms>:" prefix of a sweep. A value glued to the
// delimiter ("<ms>:-90.0") is handed back as the first value.
func splitTimestamp(tokens []string) (int64, []string, error) {
	if len(tokens) == 0 {
		return 0, nil, errors.New("empty sweep")
	}
	head, tail, found := strings.Cut(tokens[0], ":")
	if !found {
		return 0, nil, fmt.Errorf("timestamp %q: missing ':' delimiter", tokens[0])
	}
	ts, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("timestamp %q: %w", tokens[0], err)
	}
	rest := tokens[1:]
	if tail != "" {
		rest = append([]string{tail}, rest...)
	}
	return ts, rest, nil
}
