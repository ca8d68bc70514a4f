package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/picogrid/planner-tuning/pkg/form"
	"github.com/picogrid/planner-tuning/pkg/logger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every planner parameter to its default",
	RunE:  resetParameters,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "don't ask for confirmation")
}

func resetParameters(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	editor, closeStore, err := openEditor(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer closeStore()

	overrides := editor.Overrides()
	if len(overrides) == 0 {
		// Still clear the snapshot in case it only holds default values
		editor.Reset(cmd.Context())
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All parameters are already at their defaults")
		return nil
	}

	if !yes {
		if !form.IsInteractive() {
			return errors.New("refusing to reset without confirmation; pass --yes")
		}

		var confirm bool
		confirmPrompt := &survey.Confirm{
			Message: fmt.Sprintf("Discard %d modified parameter(s) and restore defaults?", len(overrides)),
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
			return err
		}

		if !confirm {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
			return nil
		}
	}

	editor.Reset(cmd.Context())
	logger.Success("Planner parameters restored to defaults")
	return nil
}
