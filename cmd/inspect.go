package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/spec2wsx/internal/convert"
	"github.com/grovetools/spec2wsx/internal/display"
	"github.com/grovetools/spec2wsx/internal/source"
	"github.com/spf13/cobra"
)

var ulogInspect = grovelogging.NewUnifiedLogger("spec2wsx.cmd.inspect")

func newInspectCmd() *cobra.Command {
	var flags conversionFlags
	var rows int

	cmd := &cobra.Command{
		Use:   "inspect [capture|dir]",
		Short: "Transcode a capture without writing a container",
		Long:  "Run the full conversion of a capture in memory and report what it would write: header, timestamp handling, resampling and any irregular sweeps.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := "."
			if len(args) > 0 {
				spec = args[0]
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			opts, err := captureOptions(cfg)
			if err != nil {
				return err
			}
			input, err := source.Resolve(spec)
			if err != nil {
				return err
			}

			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open capture: %w", err)
			}
			defer file.Close()

			table, report, err := convert.Transcode(file, input, opts)
			if err != nil {
				return err
			}

			var pretty strings.Builder
			if flags.jsonOutput {
				data, err := json.MarshalIndent(convert.Result{Header: table.Header, Report: report}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result to JSON: %w", err)
				}
				pretty.Write(data)
				pretty.WriteString("\n")
			} else {
				pretty.WriteString(display.FormatSummary(table.Header, report, ""))
				if rows > 0 {
					pretty.WriteString("\n")
					display.PrintSweeps(table, rows, &pretty)
				}
			}

			ulogInspect.Info("Inspected capture").
				Field("input", input).
				Field("device", table.Header.Device).
				Field("sweeps", report.Sweeps).
				Field("notices", len(report.Notices)).
				Pretty(pretty.String()).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&rows, "rows", 0, "Also print the first N sweeps with their decoded amplitude range")

	return cmd
}
