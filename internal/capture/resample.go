package capture

const (
	// TurboSamplesPerSweep is the reduced density of turbo captures.
	TurboSamplesPerSweep = 95
	// FullSamplesPerSweep is the only density the viewer renders.
	FullSamplesPerSweep = 285
	// FullResolutionKHz is the frequency resolution of the full band setting.
	FullResolutionKHz = 333.252014160156

	turboRepeat = FullSamplesPerSweep / TurboSamplesPerSweep
)

// NeedsResample reports whether a capture has the turbo density.
func NeedsResample(h Header) bool {
	return h.SamplesPerSweep == TurboSamplesPerSweep
}

// Resample stretches turbo sweeps to the full density by repeating every
// value three times. Timestamps and the trailing filler are carried over. The
// input table is left untouched; tables of any other density are returned
// as is.
func Resample(t *Table) *Table {
	if !NeedsResample(t.Header) {
		return t
	}

	h := t.Header
	h.SamplesPerSweep = FullSamplesPerSweep
	h.FrequencyResolutionKHz = FullResolutionKHz

	out := newTable(h, t.Len())
	copy(out.timestamps, t.timestamps)
	for i := 0; i < t.Len(); i++ {
		src, dst := t.slot(i), out.slot(i)
		for j := 0; j < TurboSamplesPerSweep; j++ {
			for k := 0; k < turboRepeat; k++ {
				dst[j*turboRepeat+k] = src[j]
			}
		}
		dst[FullSamplesPerSweep] = src[TurboSamplesPerSweep]
	}
	return out
}
