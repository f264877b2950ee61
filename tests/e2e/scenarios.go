package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const captureName = "SpecCap-04Jan2018-16.22.29.spec"

// turboCapture renders a turbo capture without timestamps.
func turboCapture(sweeps int) string {
	var b strings.Builder
	b.WriteString("spectool_raw capture\n")
	b.WriteString("Found device 0: Wi-Spy 24x2\n")
	b.WriteString("Device serial 0123456789\n")
	b.WriteString("Sweep range 0: 2400MHz-2495MHz step @ 1000.000KHz, 95 samples\n")
	for i := 0; i < sweeps; i++ {
		b.WriteString("Wi-Spy 24x2 0 sweep:")
		for j := 0; j < 95; j++ {
			fmt.Fprintf(&b, " -%d.0", 60+j%40)
		}
		b.WriteString(" \n")
	}
	return b.String()
}

// setupCaptureDir creates a directory holding one capture
func setupCaptureDir(ctx *harness.Context) error {
	dir := ctx.NewDir("captures")
	if err := fs.CreateDir(dir); err != nil {
		return err
	}
	if err := fs.WriteString(filepath.Join(dir, captureName), turboCapture(25)); err != nil {
		return fmt.Errorf("failed to write %s: %w", captureName, err)
	}
	if err := fs.WriteString(filepath.Join(dir, "README.txt"), "not a capture"); err != nil {
		return err
	}
	ctx.Set("capture_dir", dir)
	return nil
}

// ConvertTurboScenario tests 'spec2wsx convert' on a directory
func ConvertTurboScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "spec2wsx-convert-turbo",
		Steps: []harness.Step{
			harness.NewStep("Setup capture directory", setupCaptureDir),
			harness.NewStep("Run 'spec2wsx convert <dir>'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.GetString("capture_dir")
				cmd := command.New(bin, "convert", dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "spec2wsx convert should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "resampled from 95", "Should report resampling"); err != nil {
					return err
				}
				output := filepath.Join(dir, strings.TrimSuffix(captureName, ".spec")+".wsx")
				if _, err := os.Stat(output); err != nil {
					return fmt.Errorf("expected container %s: %w", output, err)
				}
				return nil
			}),
			harness.NewStep("Run 'spec2wsx inspect --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				path := filepath.Join(ctx.GetString("capture_dir"), captureName)
				cmd := command.New(bin, "inspect", path, "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("spec2wsx inspect failed: %s", result.Stderr)
				}

				var res struct {
					Header struct {
						SamplesPerSweep int `json:"samplesPerSweep"`
					} `json:"header"`
					Report struct {
						Sweeps      int  `json:"sweeps"`
						Synthesized bool `json:"synthesizedTimestamps"`
					} `json:"report"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &res); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal(285, res.Header.SamplesPerSweep, "Header should be resampled"); err != nil {
					return err
				}
				if err := assert.Equal(25, res.Report.Sweeps, "Every sweep should be converted"); err != nil {
					return err
				}
				return assert.Equal(true, res.Report.Synthesized, "Timestamps should be generated")
			}),
		},
	}
}

// ConvertMissingInputScenario tests 'spec2wsx convert' on a directory without captures
func ConvertMissingInputScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "spec2wsx-convert-missing-input",
		Steps: []harness.Step{
			harness.NewStep("Run 'spec2wsx convert' on an empty directory", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				dir := ctx.NewDir("empty")
				if err := fs.CreateDir(dir); err != nil {
					return err
				}
				cmd := command.New(bin, "convert", dir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected spec2wsx convert to fail without input")
				}
				return assert.Contains(result.Stderr, "no input file", "Should explain that no capture was found")
			}),
		},
	}
}

// ListScenario tests the 'spec2wsx list' command
func ListScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "spec2wsx-list-command",
		Steps: []harness.Step{
			harness.NewStep("Setup capture directory", setupCaptureDir),
			harness.NewStep("Run 'spec2wsx list'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "list", ctx.GetString("capture_dir"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("spec2wsx list failed: %s", result.Stderr)
				}
				if err := assert.Contains(result.Stdout, "CAPTURE", "Should print table header"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "WiSpy24X2", "Should show the device"); err != nil {
					return err
				}
				return assert.NotContains(result.Stdout, "README.txt", "Should only list captures")
			}),
		},
	}
}
