package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/picogrid/planner-tuning/pkg/form"
	"github.com/picogrid/planner-tuning/pkg/plannerconfig"
)

var setCmd = &cobra.Command{
	Use:     "set key=value [key=value...]",
	Short:   "Set planner parameters without prompting",
	Example: "  planner-tune set spatialHorizon=150 laneCostSlope=25",
	Args:    cobra.MinimumNArgs(1),
	RunE:    setParameters,
}

func init() {
	setCmd.Flags().BoolP("quiet", "q", false, "don't print the parameter table after saving")
}

func setParameters(cmd *cobra.Command, args []string) error {
	values, err := parseAssignments(args)
	if err != nil {
		return err
	}

	var view plannerconfig.View
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		view = form.NewTerminalView(cmd.OutOrStdout()).OnlyModified(true)
	}

	editor, closeStore, err := openEditor(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer closeStore()

	result := editor.Save(cmd.Context(), values)
	if view != nil {
		if err := view.RenderFields(editor.Fields()); err != nil {
			return err
		}
	}

	return reportSave(result)
}

func parseAssignments(args []string) ([]plannerconfig.FormValue, error) {
	values := make([]plannerconfig.FormValue, 0, len(args))
	for _, arg := range args {
		key, text, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		values = append(values, plannerconfig.FormValue{Key: key, Text: text})
	}
	return values, nil
}
