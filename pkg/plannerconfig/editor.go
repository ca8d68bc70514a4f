package plannerconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/picogrid/planner-tuning/pkg/logger"
	"github.com/picogrid/planner-tuning/pkg/storage"
	"github.com/picogrid/planner-tuning/pkg/vehicle"
)

// StorageKey is the state key the live parameter set is persisted under
const StorageKey = "path_planner_config"

// Options configures a new Editor
type Options struct {
	// Vehicle supplies the geometry that defaults and derived constants are computed from
	Vehicle vehicle.Geometry
	// Store persists edits between sessions. Nil keeps them in memory only.
	Store storage.StateStore
	// View is optional; without one the editor is driven through Save and Reset directly
	View   View
	Locale string
	Logger logger.Logger
}

// Editor owns the live parameter set of the path planner
type Editor struct {
	mu       sync.RWMutex
	defaults Table
	derived  Table
	live     Table
	invalid  map[string]string

	store  storage.StateStore
	view   View
	locale string
	log    logger.Logger
}

// New builds the live set from the defaults and any persisted overrides. Storage
// problems never fail construction; only an unusable vehicle geometry does.
func New(ctx context.Context, opts Options) (*Editor, error) {
	if err := opts.Vehicle.Validate(); err != nil {
		return nil, fmt.Errorf("failed to derive planner defaults: %w", err)
	}

	st := opts.Store
	if st == nil {
		st = storage.NewMemoryStore()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	locale := opts.Locale
	if locale == "" {
		locale = LocaleEnglish
	}

	e := &Editor{
		defaults: Defaults(opts.Vehicle),
		derived:  Derived(opts.Vehicle),
		invalid:  make(map[string]string),
		store:    st,
		view:     opts.View,
		locale:   locale,
		log:      log.WithPrefix("planner-config").WithField("session", uuid.NewString()[:8]),
	}

	e.live = e.defaults.Clone()
	for key, v := range e.loadOverrides(ctx) {
		e.live[key] = v
	}

	e.render()
	return e, nil
}

// loadOverrides reads the persisted snapshot and keeps the entries that name a
// known parameter and hold a finite number. Anything unreadable counts as no overrides.
func (e *Editor) loadOverrides(ctx context.Context) Table {
	raw, ok := e.store.GetState(ctx, StorageKey)
	if !ok {
		return nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		e.log.Warnf("Ignoring unreadable saved parameters: %v", err)
		return nil
	}

	overrides := make(Table, len(entries))
	for key, msg := range entries {
		if !e.defaults.Has(key) {
			e.log.Debugf("Dropping saved value for unknown parameter %s", key)
			continue
		}

		var v *float64
		if err := json.Unmarshal(msg, &v); err != nil || v == nil || !IsFinite(*v) {
			e.log.WithField("key", key).Warnf("Dropping saved value %s: not a number", string(msg))
			continue
		}
		overrides[key] = *v
	}

	if len(overrides) > 0 {
		e.log.Debugf("Loaded %d saved parameter overrides", len(overrides))
	}
	return overrides
}

// Fields returns one display record per editable parameter, ordered by key
func (e *Editor) Fields() []Field {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fieldsLocked()
}

func (e *Editor) fieldsLocked() []Field {
	keys := e.defaults.Keys()
	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		v := e.live[key]
		rejected, invalid := e.invalid[key]
		fields = append(fields, Field{
			Key:         key,
			DisplayName: DisplayName(e.locale, key),
			Value:       v,
			Text:        FormatValue(v),
			Default:     e.defaults[key],
			Modified:    v != e.defaults[key],
			Invalid:     invalid,
			Rejected:    rejected,
		})
	}
	return fields
}

// Save commits a batch of form input. Each valid field replaces the live value;
// input that is not a finite number is rejected and leaves the previous value in
// place. The whole live set is then persisted. Save never fails: storage errors
// are logged and reported through SaveResult.Persisted.
func (e *Editor) Save(ctx context.Context, values []FormValue) SaveResult {
	result := SaveResult{
		Applied:  make(map[string]float64),
		Rejected: make(map[string]string),
	}

	e.mu.Lock()
	for _, fv := range values {
		if !e.defaults.Has(fv.Key) {
			result.Ignored = append(result.Ignored, fv.Key)
			continue
		}

		v, err := ParseValue(fv.Text)
		if err != nil {
			e.invalid[fv.Key] = fv.Text
			result.Rejected[fv.Key] = fv.Text
			e.log.WithField("key", fv.Key).Warn(err)
			continue
		}

		delete(e.invalid, fv.Key)
		e.live[fv.Key] = v
		result.Applied[fv.Key] = v
	}
	snapshot := e.live.Clone()
	e.mu.Unlock()

	result.Persisted = e.persist(ctx, snapshot)
	if len(result.Ignored) > 0 {
		e.log.Debugf("Ignored non-editable fields %v", result.Ignored)
	}

	e.render()
	return result
}

// Submit reads the current form from the view and saves it
func (e *Editor) Submit(ctx context.Context) (SaveResult, error) {
	if e.view == nil {
		return SaveResult{}, errors.New("no view attached")
	}

	values, err := e.view.ReadFormValues()
	if err != nil {
		return SaveResult{}, fmt.Errorf("failed to read form: %w", err)
	}

	return e.Save(ctx, values), nil
}

// Reset restores every parameter to its default and removes the persisted snapshot
func (e *Editor) Reset(ctx context.Context) {
	e.mu.Lock()
	e.live = e.defaults.Clone()
	e.invalid = make(map[string]string)
	e.mu.Unlock()

	if err := e.store.DeleteState(ctx, StorageKey); err != nil {
		e.log.Warnf("Failed to remove saved parameters: %v", err)
	}

	e.render()
}

// Config returns the parameter set handed to the planner: the live values merged
// with the derived constants, derived values winning. The result is a fresh copy;
// callers should fetch it again each planning cycle.
func (e *Editor) Config() Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.live.Merge(e.derived)
}

// Value returns the live value of an editable parameter
func (e *Editor) Value(key string) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.live[key]
	return v, ok
}

// Overrides returns the live values that differ from their defaults
func (e *Editor) Overrides() Table {
	e.mu.RLock()
	defer e.mu.RUnlock()

	overrides := make(Table)
	for k, v := range e.live {
		if v != e.defaults[k] {
			overrides[k] = v
		}
	}
	return overrides
}

// Defaults returns a copy of the factory defaults
func (e *Editor) Defaults() Table {
	return e.defaults.Clone()
}

// Derived returns a copy of the derived constants
func (e *Editor) Derived() Table {
	return e.derived.Clone()
}

func (e *Editor) persist(ctx context.Context, snapshot Table) bool {
	data, err := json.Marshal(snapshot)
	if err != nil {
		e.log.Errorf("Failed to encode parameters: %v", err)
		return false
	}

	if err := e.store.SetState(ctx, StorageKey, string(data)); err != nil {
		e.log.Warnf("Failed to save parameters, keeping them for this session only: %v", err)
		return false
	}
	return true
}

func (e *Editor) render() {
	if e.view == nil {
		return
	}
	if err := e.view.RenderFields(e.Fields()); err != nil {
		e.log.Warnf("Failed to render parameter fields: %v", err)
	}
}
