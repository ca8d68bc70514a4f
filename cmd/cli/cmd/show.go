package cmd

import (
	"github.com/spf13/cobra"

	"github.com/picogrid/planner-tuning/pkg/form"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the planner parameters",
	Long: `Show every editable planner parameter with its current and default value.
Rows marked with * differ from the default.`,
	RunE: showParameters,
}

func init() {
	showCmd.Flags().BoolP("modified", "m", false, "only show parameters that differ from their defaults")
}

func showParameters(cmd *cobra.Command, _ []string) error {
	onlyModified, _ := cmd.Flags().GetBool("modified")

	view := form.NewTerminalView(cmd.OutOrStdout()).OnlyModified(onlyModified)

	// Constructing the editor renders the fields
	_, closeStore, err := openEditor(cmd.Context(), view)
	if err != nil {
		return err
	}
	defer closeStore()

	return nil
}
