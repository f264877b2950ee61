package capture

import (
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newYork(t interface{ Fatalf(string, ...any) }) *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func headerText(family, model string, resolution string, samples int) string {
	return strings.Join([]string{
		"spectool_raw capture",
		fmt.Sprintf("Found device 0: %s %s", family, model),
		"Device serial 0123456789",
		fmt.Sprintf("Sweep range 0: 2400MHz-2495MHz step @ %sKHz, %d samples", resolution, samples),
	}, "\n") + "\n"
}

// sweepLine renders n readings starting at start and decreasing by one, with
// the trailing delimiter the capture tool writes.
func sweepLine(prefix string, start float64, n int) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, " %.1f", start-float64(i%20))
	}
	b.WriteString(" \n")
	return b.String()
}
