// Package display renders conversion results for the terminal.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// FormatSummary renders the header and report of a conversion. output is
// empty for dry runs.
func FormatSummary(h capture.Header, r *capture.Report, output string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	valueStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.LightText)
	okStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	warnStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)

	var b strings.Builder
	row := func(label string, value any) {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", label+":")), valueStyle.Render(fmt.Sprint(value))))
	}

	b.WriteString(fmt.Sprintf("%s %s\n", theme.IconFile, r.Filename))
	row("device", fmt.Sprintf("%s (type %d)", h.Device, h.DeviceTypeID))
	row("serial", h.Serial)
	row("sweeps", r.Sweeps)
	row("samples per sweep", samplesLabel(h, r))
	row("frequency resolution", fmt.Sprintf("%g kHz", h.FrequencyResolutionKHz))
	row("timestamps", timestampLabel(r))
	if r.PaddedRows > 0 || r.TruncatedRows > 0 {
		row("irregular sweeps", fmt.Sprintf("%d padded, %d truncated", r.PaddedRows, r.TruncatedRows))
	}
	if r.ClampedValues > 0 {
		row("clamped readings", r.ClampedValues)
	}

	for _, n := range r.Notices {
		b.WriteString(warnStyle.Render("  ! "+n) + "\n")
	}
	if output != "" {
		b.WriteString(okStyle.Render(fmt.Sprintf("%s Wrote %s", theme.IconFilePlus, output)) + "\n")
	}
	return b.String()
}

func samplesLabel(h capture.Header, r *capture.Report) string {
	if r.Resampled {
		return fmt.Sprintf("%d (resampled from %d)", h.SamplesPerSweep, r.NativeSamples)
	}
	return fmt.Sprintf("%d", h.SamplesPerSweep)
}

func timestampLabel(r *capture.Report) string {
	switch {
	case r.Synthesized:
		return fmt.Sprintf("generated, %d ms apart from %s", capture.TurboSweepPeriodMs,
			time.UnixMilli(capture.SyntheticEpochMs).UTC().Format(time.RFC3339))
	case r.Offset.Millis == 0:
		return "left in UTC"
	default:
		return fmt.Sprintf("converted from UTC to %s", r.Offset.Zone)
	}
}
