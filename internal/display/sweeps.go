package display

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// PrintSweeps prints the first n sweeps of a table with their decoded
// amplitude range. The filler byte is left out.
func PrintSweeps(t *capture.Table, n int, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tTIMESTAMP\tMIN dBm\tMAX dBm\tMEAN dBm")
	if n > t.Len() || n < 0 {
		n = t.Len()
	}
	samples := t.Header.SamplesPerSweep
	for i := 0; i < n; i++ {
		row := t.Row(i)
		lo, hi, sum := 255.0, -255.0, 0.0
		for _, b := range row.Data[:samples] {
			v := capture.DecodeAmplitude(b)
			lo = min(lo, v)
			hi = max(hi, v)
			sum += v
		}
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\n", i,
			time.UnixMilli(row.Timestamp).UTC().Format("2006-01-02 15:04:05.000"),
			lo, hi, sum/float64(samples))
	}
	w.Flush()
}
