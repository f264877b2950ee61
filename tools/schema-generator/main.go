package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/spec2wsx/config"
	"github.com/grovetools/spec2wsx/internal/capture"
)

func main() {
	var output string

	cmd := &cobra.Command{
		Use:   "schema-generator",
		Short: "Generate the JSON schema of the spec2wsx grove.yml extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := generate()
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			logrus.WithField("path", output).Info("Generated spec2wsx schema")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", config.ExtensionName+".schema.json", "Schema path, - for stdout")

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&config.Config{})
	schema.ID = jsonschema.ID("https://grovetools.dev/schemas/" + config.ExtensionName + ".schema.json")
	schema.Title = "spec2wsx Configuration"
	schema.Description = fmt.Sprintf("Schema for the '%s' extension in grove.yml.", config.ExtensionName)

	// Built-in devices double as examples.
	if def, ok := schema.Definitions["DeviceModel"]; ok {
		def.Description = "Canonical device name and viewer type id for a capture device."
		devices := capture.DefaultDevices()
		keys := make([]string, 0, len(devices))
		for k := range devices {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			def.Examples = append(def.Examples, devices[k])
		}
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
