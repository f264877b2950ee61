package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/spec2wsx/internal/convert"
	"github.com/grovetools/spec2wsx/internal/display"
	"github.com/grovetools/spec2wsx/internal/metrics"
	"github.com/grovetools/spec2wsx/internal/source"
	"github.com/grovetools/spec2wsx/internal/wsx"
	"github.com/spf13/cobra"
)

var ulogConvert = grovelogging.NewUnifiedLogger("spec2wsx.cmd.convert")

func newConvertCmd() *cobra.Command {
	var flags conversionFlags
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "convert [capture|dir]",
		Short: "Convert a capture into a .wsx container",
		Long: "Convert a spectool_raw capture into a Chanalyzer .wsx container. " +
			"Given a directory (default: the current one), the first .spec file in it is converted. " +
			"Turbo captures are resampled to 285 samples per sweep and timestamps are moved from UTC " +
			"to the capture's local time when the filename carries its start time.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
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
			output := outputFlag
			if output == "" {
				output = convert.OutputPath(input)
				if cfg.Conversion.OutputDir != "" {
					output = filepath.Join(cfg.Conversion.OutputDir, filepath.Base(output))
				}
			}
			if filepath.Clean(output) == filepath.Clean(input) {
				return errors.New("output would overwrite the capture; pass --output")
			}

			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open capture: %w", err)
			}
			defer file.Close()

			rec := metrics.NewRecorder()
			start := time.Now()
			res, err := convert.Run(ctx, file, input, opts, func(ctx context.Context) (convert.ContainerWriter, error) {
				return wsx.Create(ctx, output)
			})
			if err != nil {
				rec.ObserveFailure(time.Since(start).Seconds())
				if mErr := writeMetrics(cfg, rec); mErr != nil {
					err = errors.Join(err, mErr)
				}
				return err
			}
			res.Output = output
			rec.ObserveSuccess(res.Report, time.Since(start).Seconds())
			if err := writeMetrics(cfg, rec); err != nil {
				return err
			}

			pretty := display.FormatSummary(res.Header, res.Report, output)
			if flags.jsonOutput {
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result to JSON: %w", err)
				}
				pretty = string(data) + "\n"
			}

			ulogConvert.Info("Converted capture").
				Field("input", input).
				Field("output", output).
				Field("device", res.Header.Device).
				Field("sweeps", res.Report.Sweeps).
				Field("resampled", res.Report.Resampled).
				Field("zone", res.Report.Offset.Zone).
				Pretty(pretty).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Container path (default: the capture path with a .wsx extension)")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "Write conversion metrics in node_exporter textfile format to this path")

	return cmd
}
