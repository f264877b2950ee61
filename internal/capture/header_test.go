package capture

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	lines := strings.Split(headerText("Wi-Spy", "24x2", "1000.000", 95), "\n")

	h, err := ParseHeader(lines, nil)
	if err != nil {
		t.Fatalf("parse header: %v", err)
	}
	want := Header{
		Device:                 "WiSpy24X2",
		Serial:                 "0123456789",
		DeviceTypeID:           4,
		FrequencyResolutionKHz: 1000,
		SamplesPerSweep:        95,
	}
	if h != want {
		t.Fatalf("header = %+v, want %+v", h, want)
	}
	if h.SlotsPerSweep() != 96 {
		t.Fatalf("expected 96 slots, got %d", h.SlotsPerSweep())
	}
}

func TestParseHeaderDeviceTable(t *testing.T) {
	tests := []struct {
		family, model string
		name          string
		typeID        int
	}{
		{"Wi-Spy", "24x2", "WiSpy24X2", 4},
		{"Wi-Spy", "24X2", "WiSpy24X2", 4},
		{"Wi-Spy", "DBx3", "WiSpyDBx3", 10},
		{"Wi-Spy", "900x", "WiSpy900x", UnknownDeviceType},
	}
	for _, tt := range tests {
		lines := strings.Split(headerText(tt.family, tt.model, "333.252014160156", 285), "\n")
		h, err := ParseHeader(lines, nil)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.family, tt.model, err)
		}
		if h.Device != tt.name || h.DeviceTypeID != tt.typeID {
			t.Fatalf("%s %s: got %s/%d, want %s/%d", tt.family, tt.model, h.Device, h.DeviceTypeID, tt.name, tt.typeID)
		}
	}
}

func TestParseHeaderExtendedDeviceTable(t *testing.T) {
	devices := DefaultDevices().With(DeviceTable{"WiSpy900x": {TypeID: 7}})
	lines := strings.Split(headerText("Wi-Spy", "900x", "1000.000", 95), "\n")

	h, err := ParseHeader(lines, devices)
	if err != nil {
		t.Fatalf("parse header: %v", err)
	}
	if h.Device != "WiSpy900x" || h.DeviceTypeID != 7 {
		t.Fatalf("expected configured device, got %+v", h)
	}
	if len(DefaultDevices()) != 3 {
		t.Fatalf("With must not modify the built-in table")
	}
}

func TestParseHeaderErrors(t *testing.T) {
	valid := strings.Split(headerText("Wi-Spy", "24x2", "1000.000", 95), "\n")

	tests := []struct {
		name  string
		edit  func(lines []string) []string
		line  int
		field string
	}{
		{"too few lines", func(l []string) []string { return l[:3] }, 4, "metadata"},
		{"missing model", func(l []string) []string { l[1] = "Found device 0: Wi-Spy"; return l }, 2, "device model"},
		{"missing serial", func(l []string) []string { l[2] = "Device serial"; return l }, 3, "serial number"},
		{"bad resolution", func(l []string) []string {
			l[3] = "Sweep range 0: 2400MHz-2495MHz step @ fastKHz, 95 samples"
			return l
		}, 4, "frequency resolution"},
		{"missing samples", func(l []string) []string {
			l[3] = "Sweep range 0: 2400MHz-2495MHz step @ 1000.000KHz,"
			return l
		}, 4, "samples per sweep"},
		{"bad samples", func(l []string) []string {
			l[3] = "Sweep range 0: 2400MHz-2495MHz step @ 1000.000KHz, many samples"
			return l
		}, 4, "samples per sweep"},
		{"zero samples", func(l []string) []string {
			l[3] = "Sweep range 0: 2400MHz-2495MHz step @ 1000.000KHz, 0 samples"
			return l
		}, 4, "samples per sweep"},
		{"oversized samples", func(l []string) []string {
			l[3] = "Sweep range 0: 2400MHz-2495MHz step @ 1000.000KHz, 4000000000 samples"
			return l
		}, 4, "samples per sweep"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.edit(append([]string(nil), valid...))
			_, err := ParseHeader(lines, nil)
			var herr *HeaderError
			if !errors.As(err, &herr) {
				t.Fatalf("expected HeaderError, got %v", err)
			}
			if herr.Line != tt.line || herr.Field != tt.field {
				t.Fatalf("got line %d field %q, want line %d field %q", herr.Line, herr.Field, tt.line, tt.field)
			}
		})
	}
}

func TestReadHeaderStopsAfterMetadata(t *testing.T) {
	text := headerText("Wi-Spy", "DBx3", "333.252014160156", 285) + "this is not a sweep\n"

	h, err := ReadHeader(strings.NewReader(text), nil)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if h.SamplesPerSweep != 285 || h.FrequencyResolutionKHz != 333.252014160156 {
		t.Fatalf("unexpected header %+v", h)
	}
}
