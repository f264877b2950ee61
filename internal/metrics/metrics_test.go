package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/grovetools/spec2wsx/internal/capture"
)

func TestRecorderObserveSuccess(t *testing.T) {
	rec := NewRecorder()

	rec.ObserveSuccess(&capture.Report{Sweeps: 40, PaddedRows: 2, ClampedValues: 3, Resampled: true}, 0.2)
	rec.ObserveSuccess(&capture.Report{Sweeps: 10, TruncatedRows: 1}, 0.1)

	if got := testutil.ToFloat64(rec.conversions.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful conversions, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_sweeps_written_total"]); got != 50 {
		t.Fatalf("expected 50 sweeps, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_rows_padded_total"]); got != 2 {
		t.Fatalf("expected 2 padded rows, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_rows_truncated_total"]); got != 1 {
		t.Fatalf("expected 1 truncated row, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_values_clamped_total"]); got != 3 {
		t.Fatalf("expected 3 clamped values, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_resampled_captures_total"]); got != 1 {
		t.Fatalf("expected 1 resampled capture, got %f", got)
	}
	if samples := testutil.CollectAndCount(rec.duration); samples != 1 {
		t.Fatalf("expected one duration histogram, got %d", samples)
	}
}

func TestRecorderObserveFailure(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveFailure(0.01)

	if got := testutil.ToFloat64(rec.conversions.WithLabelValues("failure")); got != 1 {
		t.Fatalf("expected 1 failed conversion, got %f", got)
	}
	if got := testutil.ToFloat64(rec.counters["spec2wsx_sweeps_written_total"]); got != 0 {
		t.Fatalf("expected no sweeps, got %f", got)
	}
}

func TestRecorderWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveSuccess(&capture.Report{Sweeps: 7}, 0.05)

	path := filepath.Join(t.TempDir(), "spec2wsx.prom")
	if err := rec.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(raw), "spec2wsx_sweeps_written_total 7") {
		t.Fatalf("textfile missing sweep counter:\n%s", raw)
	}
}
