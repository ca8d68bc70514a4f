package form

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/picogrid/planner-tuning/pkg/logger"
	"github.com/picogrid/planner-tuning/pkg/plannerconfig"
)

// Row colors for the modified and rejected indicators
var (
	colorModified = color.New(color.FgRed)
	colorInvalid  = color.New(color.FgYellow)
)

// AskFunc asks a single survey prompt
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// TerminalView renders parameter fields as a table and reads edits with survey prompts
type TerminalView struct {
	out          io.Writer
	ask          AskFunc
	onlyModified bool
	fields       []plannerconfig.Field
}

// NewTerminalView creates a view writing to out
func NewTerminalView(out io.Writer) *TerminalView {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalView{out: out, ask: survey.AskOne}
}

// WithAsk replaces the prompt function, mostly for tests
func (v *TerminalView) WithAsk(ask AskFunc) *TerminalView {
	v.ask = ask
	return v
}

// OnlyModified limits rendering to fields that differ from their defaults or were rejected
func (v *TerminalView) OnlyModified(only bool) *TerminalView {
	v.onlyModified = only
	return v
}

// RenderFields prints one row per field. Modified fields are marked with "*",
// rejected input with "!" followed by the text that was refused.
func (v *TerminalView) RenderFields(fields []plannerconfig.Field) error {
	v.fields = fields

	table := logger.NewTable("", "PARAMETER", "KEY", "VALUE", "DEFAULT")
	shown := 0
	for _, f := range fields {
		if v.onlyModified && !f.Modified && !f.Invalid {
			continue
		}
		shown++

		def := plannerconfig.FormatValue(f.Default)
		switch {
		case f.Invalid:
			table.AddColoredRow(colorInvalid, "!", f.DisplayName, f.Key,
				fmt.Sprintf("%s (rejected %q)", f.Text, f.Rejected), def)
		case f.Modified:
			table.AddColoredRow(colorModified, "*", f.DisplayName, f.Key, f.Text, def)
		default:
			table.AddRow("", f.DisplayName, f.Key, f.Text, def)
		}
	}

	if shown == 0 {
		_, err := fmt.Fprintln(v.out, "All parameters are at their defaults")
		return err
	}

	table.Fprint(v.out)
	return nil
}

// ReadFormValues asks for every rendered field in order, offering the current
// value as the default, and returns the whole form as one batch
func (v *TerminalView) ReadFormValues() ([]plannerconfig.FormValue, error) {
	values := make([]plannerconfig.FormValue, 0, len(v.fields))

	for _, f := range v.fields {
		prompt := &survey.Input{
			Message: fmt.Sprintf("%s [%s]:", f.DisplayName, f.Key),
			Default: f.Text,
			Help:    fmt.Sprintf("Default %s", plannerconfig.FormatValue(f.Default)),
		}

		var text string
		if err := v.ask(prompt, &text); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Key, err)
		}
		values = append(values, plannerconfig.FormValue{Key: f.Key, Text: text})
	}

	return values, nil
}

// IsInteractive reports whether stdin is a terminal that survey can prompt on
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
