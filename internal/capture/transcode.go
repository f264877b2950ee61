package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

// Options configures Transcode.
type Options struct {
	// Location is the zone the filename start time is recorded in. Nil means
	// DefaultTimezone.
	Location *time.Location
	// Devices overrides the device lookup table.
	Devices DeviceTable
	// Logger receives warnings about degraded output.
	Logger *logrus.Entry
}

// Report describes what a conversion had to do to the capture.
type Report struct {
	Filename      string         `json:"filename"`
	NativeSamples int            `json:"nativeSamples"`
	Sweeps        int            `json:"sweeps"`
	Synthesized   bool           `json:"synthesizedTimestamps"`
	Offset        TimezoneOffset `json:"offset"`
	Resampled     bool           `json:"resampled"`
	PaddedRows    int            `json:"paddedRows"`
	TruncatedRows int            `json:"truncatedRows"`
	ClampedValues int            `json:"clampedValues"`
	Notices       []string       `json:"notices,omitempty"`
}

func (r *Report) notice(log *logrus.Entry, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Notices = append(r.Notices, msg)
	log.Warn(msg)
}

// ErrNoSweeps is returned for captures that end after the metadata block.
var ErrNoSweeps = errors.New("capture contains no sweeps")

// Transcode reads a whole capture and returns its encoded table. filename is
// only used to infer the timezone of the sweep timestamps. Nothing is
// returned unless every sweep converted.
func Transcode(r io.Reader, filename string, opts Options) (*Table, *Report, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("spec2wsx.capture")
	}

	header, sweeps, err := readCapture(r, opts.Devices)
	if err != nil {
		return nil, nil, err
	}
	if len(sweeps) == 0 {
		return nil, nil, ErrNoSweeps
	}

	report := &Report{
		Filename:      filename,
		NativeSamples: header.SamplesPerSweep,
		Sweeps:        len(sweeps),
	}
	if header.DeviceTypeID == UnknownDeviceType {
		report.notice(log, "device %q is not in the device table, using type id %d", header.Device, UnknownDeviceType)
	}
	if header.SamplesPerSweep != TurboSamplesPerSweep && header.SamplesPerSweep != FullSamplesPerSweep {
		report.notice(log, "unrecognized density of %d samples per sweep, writing it unchanged", header.SamplesPerSweep)
	}

	offset, err := OffsetFromFilename(filename, opts.Location)
	if err != nil {
		report.notice(log, "not converting timestamps from UTC: %v", err)
	}

	timestamps, values, synthesized, err := NormalizeTimestamps(sweeps, offset)
	if err != nil {
		return nil, nil, err
	}
	report.Synthesized = synthesized
	if synthesized {
		report.Offset = UTC
		report.notice(log, "no timestamps present, generated %d ms sweep timing", TurboSweepPeriodMs)
	} else {
		report.Offset = offset
	}

	lines := make([]int, len(sweeps))
	for i, s := range sweeps {
		lines[i] = s.line
	}
	table, stats, err := EncodeRows(header, lines, timestamps, values)
	if err != nil {
		return nil, nil, err
	}
	report.PaddedRows = stats.padded
	report.TruncatedRows = stats.truncated
	report.ClampedValues = stats.clamped
	if stats.clamped > 0 {
		report.notice(log, "%d amplitude values were outside the container range and were clamped", stats.clamped)
	}

	if NeedsResample(table.Header) {
		table = Resample(table)
		report.Resampled = true
	}

	log.WithFields(logrus.Fields{
		"device":    table.Header.Device,
		"serial":    table.Header.Serial,
		"sweeps":    report.Sweeps,
		"resampled": report.Resampled,
		"zone":      report.Offset.Zone,
		"padded":    report.PaddedRows,
		"truncated": report.TruncatedRows,
	}).Debug("Transcoded capture")

	return table, report, nil
}

// readCapture splits the stream into the header and the tokenized sweeps.
// Blank sweep lines are skipped.
func readCapture(r io.Reader, devices DeviceTable) (Header, []rawSweep, error) {
	scanner := bufio.NewScanner(r)
	const maxScanTokenSize = 1024 * 1024 // 1MB
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxScanTokenSize)

	var (
		headerLines []string
		sweeps      []rawSweep
		lineNum     int
	)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum <= HeaderLines {
			headerLines = append(headerLines, line)
			continue
		}
		tokens := Tokenize(line)
		if len(SweepValues(tokens)) == 0 {
			continue
		}
		sweeps = append(sweeps, rawSweep{line: lineNum, tokens: tokens})
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("read capture: %w", err)
	}

	header, err := ParseHeader(headerLines, devices)
	if err != nil {
		return Header{}, nil, err
	}
	return header, sweeps, nil
}
