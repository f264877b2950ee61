package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/spec2wsx/internal/display"
	"github.com/grovetools/spec2wsx/internal/source"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var flags conversionFlags

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List capture files in a directory",
		Long:  "List the .spec captures in a directory (default: the current one) with the device and density read from their headers. convert picks the first one listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			opts, err := captureOptions(cfg)
			if err != nil {
				return err
			}

			scanner := &source.Scanner{Devices: opts.Devices, Location: opts.Location}
			captures, err := scanner.Scan(dir)
			if err != nil {
				return fmt.Errorf("failed to scan for captures: %w", err)
			}
			if len(captures) == 0 && !flags.jsonOutput {
				fmt.Printf("No %s captures found in %s\n", source.Extension, dir)
				return nil
			}

			if flags.jsonOutput {
				if captures == nil {
					captures = []source.CaptureInfo{}
				}
				data, err := json.MarshalIndent(captures, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal captures to JSON: %w", err)
				}
				fmt.Println(string(data))
			} else {
				display.PrintCapturesTable(captures, os.Stdout)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
