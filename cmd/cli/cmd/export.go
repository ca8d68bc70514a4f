package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the parameter set consumed by the planner",
	Long: `Print the live parameters merged with the constants derived from the
vehicle geometry. Derived constants take precedence over editable values.`,
	RunE: exportParameters,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "yaml", "output format (yaml, json)")
}

func exportParameters(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")

	editor, closeStore, err := openEditor(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer closeStore()

	cfg := editor.Config()

	var data []byte
	switch format {
	case "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
