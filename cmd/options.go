package cmd

import (
	"fmt"

	"github.com/grovetools/spec2wsx/config"
	"github.com/grovetools/spec2wsx/internal/capture"
	"github.com/grovetools/spec2wsx/internal/metrics"
	"github.com/spf13/cobra"
)

// conversionFlags are shared by the commands that read captures.
type conversionFlags struct {
	configPath  string
	timezone    string
	metricsFile string
	jsonOutput  bool
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a spec2wsx YAML config (default: the spec2wsx section of grove.yml)")
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA zone the capture filenames are recorded in. Overrides config.")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output in JSON format")
}

func (f *conversionFlags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if f.timezone != "" {
		cfg.Conversion.Timezone = f.timezone
	}
	if f.metricsFile != "" {
		cfg.Metrics.TextfilePath = f.metricsFile
	}
	return cfg, nil
}

func captureOptions(cfg *config.Config) (capture.Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return capture.Options{}, fmt.Errorf("invalid timezone %q: %w", cfg.Conversion.Timezone, err)
	}
	return capture.Options{
		Location: loc,
		Devices:  cfg.DeviceTable(),
	}, nil
}

func writeMetrics(cfg *config.Config, rec *metrics.Recorder) error {
	if cfg.Metrics.TextfilePath == "" {
		return nil
	}
	if err := rec.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
