package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/picogrid/planner-tuning/pkg/form"
	"github.com/picogrid/planner-tuning/pkg/logger"
	"github.com/picogrid/planner-tuning/pkg/plannerconfig"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the planner parameters interactively",
	Long: `Prompt for every planner parameter, offering the current value as the
default, then save the whole form. Input that is not a number is rejected
and the previous value is kept.`,
	RunE: editParameters,
}

func editParameters(cmd *cobra.Command, _ []string) error {
	if !form.IsInteractive() {
		return errors.New("edit needs a terminal; use 'planner-tune set key=value' instead")
	}

	view := form.NewTerminalView(os.Stdout)
	editor, closeStore, err := openEditor(cmd.Context(), view)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := editor.Submit(cmd.Context())
	if err != nil {
		return err
	}

	return reportSave(result)
}

// reportSave logs the outcome of a save and turns rejected input into an error
// so scripts can notice it
func reportSave(result plannerconfig.SaveResult) error {
	if !result.Persisted {
		logger.Warn("Changes apply to this session only: they could not be saved")
	}
	for _, key := range result.Ignored {
		logger.Warnf("%s is not an editable parameter", key)
	}

	if len(result.Rejected) > 0 {
		return fmt.Errorf("%d value(s) rejected, previous values kept", len(result.Rejected))
	}

	if result.Persisted {
		logger.Successf("Saved %d parameter(s)", len(result.Applied))
	}
	return nil
}
