package capture

import (
	"math"
	"testing"
)

func TestEncodeAmplitude(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-134, 0},
		{-133.5, 0},
		{-120, 28},
		{-90.5, 86}, // floored, not truncated toward zero
		{-90, 88},
		{-7, 254},
		{-6.9, 254},
	}
	for _, tt := range tests {
		got, clamped := EncodeAmplitude(tt.in)
		if clamped {
			t.Fatalf("%v: unexpected clamp", tt.in)
		}
		if got != tt.want {
			t.Fatalf("encode(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEncodeAmplitudeMatchesFormula(t *testing.T) {
	for v := -134.0; v < -6.0; v += 0.25 {
		got, _ := EncodeAmplitude(v)
		want := (math.Round(math.Floor(v)) + 134) * 2
		if float64(got) != want {
			t.Fatalf("encode(%v) = %d, want %v", v, got, want)
		}
	}
}

func TestEncodeAmplitudeClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-134.5, 0},
		{-200, 0},
		{-6, 255},
		{10, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		got, clamped := EncodeAmplitude(tt.in)
		if !clamped {
			t.Fatalf("%v: expected clamp", tt.in)
		}
		if got != tt.want {
			t.Fatalf("encode(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecodeAmplitudeRecoversFlooredReading(t *testing.T) {
	for _, v := range []float64{-133.2, -101.7, -90.5, -60, -7.01} {
		b, _ := EncodeAmplitude(v)
		if got := DecodeAmplitude(b); got != math.Floor(v) {
			t.Fatalf("decode(encode(%v)) = %v, want %v", v, got, math.Floor(v))
		}
	}
}

func TestEncodeRowsPadsAndTruncates(t *testing.T) {
	h := Header{SamplesPerSweep: 4}
	values := [][]string{
		Tokenize("-90 -91 -92 -93 "),
		Tokenize("-90 -91 "),
		Tokenize("-90 -91 -92 -93 -94 -95 "),
		nil,
	}
	ts := []int64{1, 2, 3, 4}

	table, stats, err := EncodeRows(h, []int{5, 6, 7, 8}, ts, values)
	if err != nil {
		t.Fatalf("encode rows: %v", err)
	}
	if stats.padded != 2 || stats.truncated != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		if len(row.Data) != h.SamplesPerSweep+1 {
			t.Fatalf("row %d: %d bytes, want %d", i, len(row.Data), h.SamplesPerSweep+1)
		}
		if row.Data[h.SamplesPerSweep] != Filler {
			t.Fatalf("row %d: missing filler", i)
		}
		if row.Timestamp != ts[i] {
			t.Fatalf("row %d: timestamp %d", i, row.Timestamp)
		}
	}
	if got := table.Row(1).Data; got[2] != Filler || got[3] != Filler {
		t.Fatalf("short row not padded with filler: %v", got)
	}
	if got := table.Row(2).Data; got[3] != 82 {
		t.Fatalf("long row truncated at the wrong value: %v", got)
	}
}

func TestEncodeRowsRejectsBadValue(t *testing.T) {
	_, _, err := EncodeRows(Header{SamplesPerSweep: 2}, []int{9}, []int64{0}, [][]string{{"-90", "loud"}})
	if err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
	rerr, ok := err.(*RowError)
	if !ok || rerr.Line != 9 {
		t.Fatalf("expected RowError on line 9, got %v", err)
	}
}
