package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

const header = "spectool_raw capture\n" +
	"Found device 0: Wi-Spy DBx3\n" +
	"Device serial 42\n" +
	"Sweep range 0: 2400MHz-2495MHz step @ 333.252014160156KHz, 285 samples\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolvePicksFirstCapture(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "SpecCap-05Jan2018-10.00.00.spec", header)
	first := writeFile(t, dir, "SpecCap-04Jan2018-16.22.29.spec", header)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != first {
		t.Fatalf("expected %s, got %s", first, got)
	}
}

func TestResolveFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "capture.txt", header)
	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != path {
		t.Fatalf("expected %s, got %s", path, got)
	}
}

func TestResolveNoInput(t *testing.T) {
	_, err := Resolve(t.TempDir())
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "SpecCap-04Jan2018-16.22.29.spec", header)
	writeFile(t, dir, "broken.spec", "spectool_raw capture\n")

	captures, err := NewScanner().Scan(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(captures) != 2 {
		t.Fatalf("expected 2 captures, got %d", len(captures))
	}

	// Lexical order puts upper case first.
	good, broken := captures[0], captures[1]
	if broken.Name != "broken.spec" {
		t.Fatalf("unexpected order %s, %s", good.Name, broken.Name)
	}
	if broken.HeaderError == "" {
		t.Fatalf("expected header error for %s", broken.Name)
	}
	if good.Device != "WiSpyDBx3" || good.Serial != "42" || good.SamplesPerSweep != 285 {
		t.Fatalf("unexpected capture info %+v", good)
	}
	loc, _ := time.LoadLocation("America/New_York")
	want := time.Date(2018, time.January, 4, 16, 22, 29, 0, loc)
	if !good.StartedAt.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, good.StartedAt)
	}
	if !broken.StartedAt.IsZero() {
		t.Fatalf("expected no start time for %s", broken.Name)
	}
}

func TestScanWithoutLocationUsesNewYork(t *testing.T) {
	prev := time.Local
	time.Local = time.UTC
	defer func() { time.Local = prev }()

	dir := t.TempDir()
	writeFile(t, dir, "SpecCap-04Jul2018-16.22.29.spec", header)

	captures, err := (&Scanner{}).Scan(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(captures) != 1 {
		t.Fatalf("expected 1 capture, got %d", len(captures))
	}
	loc, _ := time.LoadLocation("America/New_York")
	want := time.Date(2018, time.July, 4, 16, 22, 29, 0, loc)
	if !captures[0].StartedAt.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, captures[0].StartedAt)
	}
}
