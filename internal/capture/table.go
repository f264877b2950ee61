// Package capture transcodes spectool_raw sweep captures into the row layout
// stored by the WSX container.
package capture

// Filler is appended to every encoded sweep and used to pad short sweeps.
const Filler byte = 30

// Header is the metadata block at the top of a capture.
type Header struct {
	Device                 string  `json:"device"`
	Serial                 string  `json:"serial"`
	DeviceTypeID           int     `json:"deviceTypeId"`
	FrequencyResolutionKHz float64 `json:"frequencyResolutionKHz"`
	SamplesPerSweep        int     `json:"samplesPerSweep"`
}

// SlotsPerSweep is the number of bytes stored per sweep: one per sample plus
// the trailing filler byte.
func (h Header) SlotsPerSweep() int {
	return h.SamplesPerSweep + 1
}

// SweepRow is one encoded sweep.
type SweepRow struct {
	Timestamp int64
	Data      []byte
}

// Table holds a header and its sweeps. Sweep data lives in a single arena with
// a fixed stride so every row has the same length.
type Table struct {
	Header     Header
	timestamps []int64
	stride     int
	arena      []byte
}

func newTable(h Header, sweeps int) *Table {
	stride := h.SlotsPerSweep()
	return &Table{
		Header:     h,
		timestamps: make([]int64, sweeps),
		stride:     stride,
		arena:      make([]byte, sweeps*stride),
	}
}

// Len returns the number of sweeps.
func (t *Table) Len() int {
	return len(t.timestamps)
}

// Stride returns the length of every row's data.
func (t *Table) Stride() int {
	return t.stride
}

// Row returns sweep i. The returned data is a read-only view into the table.
func (t *Table) Row(i int) SweepRow {
	return SweepRow{
		Timestamp: t.timestamps[i],
		Data:      t.slot(i),
	}
}

// Rows returns every sweep in file order.
func (t *Table) Rows() []SweepRow {
	rows := make([]SweepRow, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

func (t *Table) slot(i int) []byte {
	start := i * t.stride
	end := start + t.stride
	return t.arena[start:end:end]
}
