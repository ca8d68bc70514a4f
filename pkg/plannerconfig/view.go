package plannerconfig

// Field is the display record of one editable parameter
type Field struct {
	Key         string
	DisplayName string
	Value       float64
	// Text is the value as it appears in the form
	Text    string
	Default float64
	// Modified is set when the value differs from the factory default
	Modified bool
	// Invalid is set when the last save rejected the input for this field.
	// Rejected holds that input; Value is still the last committed value.
	Invalid  bool
	Rejected string
}

// FormValue is one submitted form field
type FormValue struct {
	Key  string
	Text string
}

// View is the form surface the editor renders into and reads submissions from
type View interface {
	RenderFields(fields []Field) error
	ReadFormValues() ([]FormValue, error)
}

// SaveResult describes what a save did with each submitted field
type SaveResult struct {
	// Applied holds the values committed to the live set
	Applied map[string]float64
	// Rejected maps keys to input that did not parse as a finite number
	Rejected map[string]string
	// Ignored lists submitted keys that are not editable parameters
	Ignored []string
	// Persisted is false when the snapshot could not be written to storage
	Persisted bool
}

// OK reports whether every submitted field was applied and persisted
func (r SaveResult) OK() bool {
	return len(r.Rejected) == 0 && len(r.Ignored) == 0 && r.Persisted
}
