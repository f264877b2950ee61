package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderLines is the number of metadata lines preceding the sweeps.
const HeaderLines = 4

// MaxSamplesPerSweep bounds the density a header may declare. Every sweep is
// allocated at the declared density, so larger values are rejected.
const MaxSamplesPerSweep = 4096

var errMissingToken = errors.New("token missing")

// ParseHeader extracts the capture metadata from the first HeaderLines lines.
// The layout is rigid: any missing or malformed field is an error.
func ParseHeader(lines []string, devices DeviceTable) (Header, error) {
	if len(lines) < HeaderLines {
		return Header{}, &HeaderError{Line: len(lines) + 1, Field: "metadata", Err: io.ErrUnexpectedEOF}
	}
	if devices == nil {
		devices = DefaultDevices()
	}

	device := Tokenize(lines[1])
	family, err := token(device, 3, 2, "device family")
	if err != nil {
		return Header{}, err
	}
	model, err := token(device, 4, 2, "device model")
	if err != nil {
		return Header{}, err
	}

	serial, err := token(Tokenize(lines[2]), 2, 3, "serial number")
	if err != nil {
		return Header{}, err
	}

	sweep := Tokenize(lines[3])
	resTok, err := token(sweep, 6, 4, "frequency resolution")
	if err != nil {
		return Header{}, err
	}
	resolution, err := strconv.ParseFloat(strings.TrimSuffix(resTok, "KHz,"), 64)
	if err != nil {
		return Header{}, &HeaderError{Line: 4, Field: "frequency resolution", Err: err}
	}
	samplesTok, err := token(sweep, 7, 4, "samples per sweep")
	if err != nil {
		return Header{}, err
	}
	samples, err := strconv.Atoi(samplesTok)
	if err != nil {
		return Header{}, &HeaderError{Line: 4, Field: "samples per sweep", Err: err}
	}
	if samples <= 0 || samples > MaxSamplesPerSweep {
		return Header{}, &HeaderError{Line: 4, Field: "samples per sweep", Err: fmt.Errorf("must be between 1 and %d, got %d", MaxSamplesPerSweep, samples)}
	}

	m := devices.Lookup(family, model)
	return Header{
		Device:                 m.Name,
		Serial:                 serial,
		DeviceTypeID:           m.TypeID,
		FrequencyResolutionKHz: resolution,
		SamplesPerSweep:        samples,
	}, nil
}

// ReadHeader reads just the metadata block of a capture.
func ReadHeader(r io.Reader, devices DeviceTable) (Header, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, HeaderLines)
	for len(lines) < HeaderLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	return ParseHeader(lines, devices)
}

func token(tokens []string, idx, line int, field string) (string, error) {
	if idx >= len(tokens) || tokens[idx] == "" {
		return "", &HeaderError{Line: line, Field: field, Err: errMissingToken}
	}
	return tokens[idx], nil
}
