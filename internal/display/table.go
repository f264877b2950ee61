package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/spec2wsx/internal/source"
)

// PrintCapturesTable prints a list of captures in a formatted table.
func PrintCapturesTable(captures []source.CaptureInfo, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CAPTURE\tDEVICE\tSERIAL\tSAMPLES\tSIZE\tSTARTED")
	for _, c := range captures {
		device, serial, samples := c.Device, c.Serial, fmt.Sprintf("%d", c.SamplesPerSweep)
		if c.HeaderError != "" {
			device, serial, samples = "invalid header", "-", "-"
		}
		started := "-"
		if !c.StartedAt.IsZero() {
			started = c.StartedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, device, serial, samples, formatSize(c.SizeBytes), started)
	}
	w.Flush()
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
