package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconWarning = "⚠️"
	IconConfig  = "⚙️"
	IconRefresh = "🔄"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconDot     = "•"
	IconArrow   = "→"
)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	message := fmt.Sprint(args...)
	defaultLogger.Info(IconSuccess + " " + message)
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	message := fmt.Sprint(args...)
	defaultLogger.Info(IconRefresh + " " + message)
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

func colorEnabled() bool {
	l, ok := defaultLogger.(*logger)
	if !ok {
		return false
	}
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	return !l.out.noColor
}

// LogSection creates a visual section separator
func LogSection(title string) {
	line := strings.Repeat("=", 50)

	if colorEnabled() {
		rule := color.New(color.FgCyan)
		rule.Println(line)
		color.New(color.FgCyan, color.Bold).Println(title)
		rule.Println(line)
	} else {
		fmt.Println(line)
		fmt.Println(title)
		fmt.Println(line)
	}
}

// LogKeyValue logs a key-value pair with nice formatting
func LogKeyValue(key string, value interface{}) {
	if colorEnabled() {
		fmt.Printf("%s %v\n", color.CyanString(key+":"), value)
	} else {
		fmt.Printf("%s: %v\n", key, value)
	}
}

// Table represents a simple table for logging
type Table struct {
	headers []string
	rows    [][]string
	// painters color whole cells by row index; nil entries print plain
	painters []*color.Color
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
	t.painters = append(t.painters, nil)
}

// AddColoredRow adds a row printed with c
func (t *Table) AddColoredRow(c *color.Color, values ...string) {
	t.rows = append(t.rows, values)
	t.painters = append(t.painters, c)
}

// Print prints the table to stdout
func (t *Table) Print() {
	t.Fprint(os.Stdout)
}

// Fprint prints the table to w
func (t *Table) Fprint(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	// Column widths are display widths so CJK labels line up
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = displayWidth(h)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && displayWidth(cell) > widths[i] {
				widths[i] = displayWidth(cell)
			}
		}
	}

	for i, h := range t.headers {
		_, _ = fmt.Fprint(w, pad(h, widths[i])+"  ")
	}
	_, _ = fmt.Fprintln(w)

	for i := range t.headers {
		_, _ = fmt.Fprint(w, strings.Repeat("-", widths[i])+"  ")
	}
	_, _ = fmt.Fprintln(w)

	for r, row := range t.rows {
		var line strings.Builder
		for i, cell := range row {
			if i < len(widths) {
				line.WriteString(pad(cell, widths[i]) + "  ")
			}
		}
		if c := t.painters[r]; c != nil && colorEnabled() {
			_, _ = fmt.Fprintln(w, c.Sprint(line.String()))
		} else {
			_, _ = fmt.Fprintln(w, line.String())
		}
	}
}

func pad(s string, width int) string {
	if n := width - displayWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
