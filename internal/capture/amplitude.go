package capture

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// AmplitudeOffset is added to the floored reading before scaling.
	AmplitudeOffset = 134
	// AmplitudeScale gives the container 0.5 dBm steps.
	AmplitudeScale = 2
)

// EncodeAmplitude maps a dBm reading to the container's byte encoding. The
// second result reports whether the value had to be clamped into [0,255].
func EncodeAmplitude(v float64) (byte, bool) {
	// Floors toward -Inf, so -90.5 encodes as 86.
	encoded := (math.Floor(v) + AmplitudeOffset) * AmplitudeScale
	switch {
	case math.IsNaN(encoded) || encoded < 0:
		return 0, true
	case encoded > math.MaxUint8:
		return math.MaxUint8, true
	}
	return byte(encoded), false
}

// DecodeAmplitude reverses EncodeAmplitude for in-range values.
func DecodeAmplitude(b byte) float64 {
	return float64(b)/AmplitudeScale - AmplitudeOffset
}

// encodeStats counts the shape fixes applied while encoding.
type encodeStats struct {
	padded    int
	truncated int
	clamped   int
}

// EncodeRows builds a table whose rows hold exactly h.SamplesPerSweep encoded
// values followed by Filler. Short sweeps are padded with Filler and long ones
// truncated so that every row has the same length.
func EncodeRows(h Header, lines []int, timestamps []int64, values [][]string) (*Table, encodeStats, error) {
	var stats encodeStats
	t := newTable(h, len(timestamps))
	copy(t.timestamps, timestamps)

	for i, tokens := range values {
		slot := t.slot(i)
		vals := SweepValues(tokens)
		if len(vals) > h.SamplesPerSweep {
			vals = vals[:h.SamplesPerSweep]
			stats.truncated++
		}
		for j, tok := range vals {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, stats, &RowError{Line: lineAt(lines, i), Err: fmt.Errorf("value %d: %w", j, err)}
			}
			b, clamped := EncodeAmplitude(f)
			if clamped {
				stats.clamped++
			}
			slot[j] = b
		}
		if len(vals) < h.SamplesPerSweep {
			stats.padded++
		}
		for j := len(vals); j < len(slot); j++ {
			slot[j] = Filler
		}
	}
	return t, stats, nil
}

func lineAt(lines []int, i int) int {
	if i < len(lines) {
		return lines[i]
	}
	return HeaderLines + 1 + i
}
