package plannerconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picogrid/planner-tuning/pkg/logger"
	"github.com/picogrid/planner-tuning/pkg/storage"
	"github.com/picogrid/planner-tuning/pkg/vehicle"
)

// recordingView keeps every render and hands back a canned form submission
type recordingView struct {
	renders    [][]Field
	submission []FormValue
	readErr    error
}

func (v *recordingView) RenderFields(fields []Field) error {
	v.renders = append(v.renders, fields)
	return nil
}

func (v *recordingView) ReadFormValues() ([]FormValue, error) {
	return v.submission, v.readErr
}

func (v *recordingView) last() []Field {
	return v.renders[len(v.renders)-1]
}

// brokenStore fails every operation, like a disabled or full storage area
type brokenStore struct{}

func (brokenStore) GetState(context.Context, string) (string, bool) { return "", false }
func (brokenStore) SetState(context.Context, string, string) error {
	return errors.New("quota exceeded")
}
func (brokenStore) DeleteState(context.Context, string) error { return errors.New("storage disabled") }

func quietLogger() logger.Logger {
	return logger.NewWithConfig(logger.Config{Level: logger.DebugLevel, Writer: &bytes.Buffer{}, NoColor: true})
}

func newEditor(t *testing.T, st storage.StateStore, view View) *Editor {
	t.Helper()
	e, err := New(context.Background(), Options{
		Vehicle: vehicle.DefaultGeometry(),
		Store:   st,
		View:    view,
		Logger:  quietLogger(),
	})
	require.NoError(t, err)
	return e
}

func fieldByKey(t *testing.T, fields []Field, key string) Field {
	t.Helper()
	for _, f := range fields {
		if f.Key == key {
			return f
		}
	}
	t.Fatalf("field %s not rendered", key)
	return Field{}
}

func TestNew_NoSnapshotUsesDefaults(t *testing.T) {
	view := &recordingView{}
	e := newEditor(t, storage.NewMemoryStore(), view)

	defaults := Defaults(vehicle.DefaultGeometry())
	for key, want := range defaults {
		got, ok := e.Value(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	require.Len(t, view.renders, 1)
	fields := view.last()
	require.Len(t, fields, len(defaults))
	for i, key := range defaults.Keys() {
		assert.Equal(t, key, fields[i].Key)
		assert.False(t, fields[i].Modified, key)
	}
}

func TestNew_AppliesPersistedOverrides(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	require.NoError(t, st.SetState(ctx, StorageKey,
		`{"spatialHorizon":150,"laneCostSlope":25,"retiredParameter":3,"roadWidth":99}`))

	e := newEditor(t, st, nil)

	v, _ := e.Value(KeySpatialHorizon)
	assert.Equal(t, 150.0, v)
	v, _ = e.Value(KeyLaneCostSlope)
	assert.Equal(t, 25.0, v)

	_, ok := e.Value("retiredParameter")
	assert.False(t, ok)
	_, ok = e.Value(KeyRoadWidth)
	assert.False(t, ok, "derived constants are not editable")

	assert.Len(t, e.Fields(), len(e.Defaults()))
	assert.Equal(t, Table{KeySpatialHorizon: 150, KeyLaneCostSlope: 25}, e.Overrides())
}

func TestNew_BadSnapshotFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name     string
		snapshot string
	}{
		{"not json", "not json"},
		{"json array", "[1,2,3]"},
		{"json null", "null"},
		{"truncated", `{"spatialHorizon":15`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := storage.NewMemoryStore()
			require.NoError(t, st.SetState(context.Background(), StorageKey, tt.snapshot))

			e := newEditor(t, st, nil)
			assert.Equal(t, e.Defaults(), Table(e.live))
		})
	}
}

func TestNew_DropsNonNumericEntries(t *testing.T) {
	st := storage.NewMemoryStore()
	require.NoError(t, st.SetState(context.Background(), StorageKey,
		`{"spatialHorizon":"far","gridMargin":null,"hazardDilationS":9,"cubicPathPenalty":true}`))

	e := newEditor(t, st, nil)

	assert.Equal(t, Table{KeyHazardDilationS: 9}, e.Overrides())
}

func TestNew_UnreadableStorage(t *testing.T) {
	e := newEditor(t, brokenStore{}, nil)
	assert.Empty(t, e.Overrides())
}

func TestNew_RejectsInvalidGeometry(t *testing.T) {
	g := vehicle.DefaultGeometry()
	g.WheelBase = 0

	_, err := New(context.Background(), Options{Vehicle: g, Logger: quietLogger()})
	assert.ErrorIs(t, err, vehicle.ErrInvalidGeometry)
}

func TestSave_CommitsAndPersists(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	view := &recordingView{}
	e := newEditor(t, st, view)

	result := e.Save(ctx, []FormValue{
		{Key: KeySpatialHorizon, Text: "150"},
		{Key: KeyLaneCostSlope, Text: "20"},
	})

	assert.True(t, result.OK())
	assert.Equal(t, map[string]float64{KeySpatialHorizon: 150, KeyLaneCostSlope: 20}, result.Applied)

	v, _ := e.Value(KeySpatialHorizon)
	assert.Equal(t, 150.0, v)

	raw, ok := st.GetState(ctx, StorageKey)
	require.True(t, ok)
	var persisted map[string]float64
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, map[string]float64(e.Defaults().Merge(Table{KeySpatialHorizon: 150})), persisted)

	require.Len(t, view.renders, 2)
	assert.True(t, fieldByKey(t, view.last(), KeySpatialHorizon).Modified)
	assert.False(t, fieldByKey(t, view.last(), KeyLaneCostSlope).Modified)
}

func TestSave_SmallDefaultTable(t *testing.T) {
	// Two-parameter version of the editor from the operator's point of view
	ctx := context.Background()
	st := storage.NewMemoryStore()
	e := &Editor{
		defaults: Table{KeySpatialHorizon: 120, KeyLaneCostSlope: 20},
		derived:  Table{},
		live:     Table{KeySpatialHorizon: 120, KeyLaneCostSlope: 20},
		invalid:  make(map[string]string),
		store:    st,
		locale:   LocaleEnglish,
		log:      quietLogger(),
	}

	e.Save(ctx, []FormValue{{Key: KeySpatialHorizon, Text: "150"}, {Key: KeyLaneCostSlope, Text: "20"}})

	assert.Equal(t, Table{KeySpatialHorizon: 150, KeyLaneCostSlope: 20}, Table(e.live))
	raw, _ := st.GetState(ctx, StorageKey)
	assert.JSONEq(t, `{"spatialHorizon":150,"laneCostSlope":20}`, raw)

	fields := e.Fields()
	assert.False(t, fieldByKey(t, fields, KeyLaneCostSlope).Modified)
	assert.True(t, fieldByKey(t, fields, KeySpatialHorizon).Modified)
}

func TestSave_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	e := newEditor(t, st, nil)

	e.Save(ctx, []FormValue{{Key: KeyGridMargin, Text: "25"}})

	for _, text := range []string{"abc", "", "NaN", "Inf", "-inf", "1e400", "12abc"} {
		result := e.Save(ctx, []FormValue{{Key: KeyGridMargin, Text: text}})

		assert.False(t, result.OK(), text)
		assert.True(t, result.Persisted, text)
		assert.Equal(t, text, result.Rejected[KeyGridMargin], text)

		v, _ := e.Value(KeyGridMargin)
		assert.Equal(t, 25.0, v, "previous value kept for %q", text)

		f := fieldByKey(t, e.Fields(), KeyGridMargin)
		assert.True(t, f.Invalid, text)
		assert.Equal(t, text, f.Rejected)
	}

	// The snapshot only ever holds numbers
	raw, _ := st.GetState(ctx, StorageKey)
	var persisted map[string]float64
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, 25.0, persisted[KeyGridMargin])

	// A later valid save clears the flag
	e.Save(ctx, []FormValue{{Key: KeyGridMargin, Text: " 30 "}})
	f := fieldByKey(t, e.Fields(), KeyGridMargin)
	assert.False(t, f.Invalid)
	assert.Equal(t, 30.0, f.Value)
}

func TestSave_CannotOverrideDerivedConstants(t *testing.T) {
	e := newEditor(t, storage.NewMemoryStore(), nil)

	result := e.Save(context.Background(), []FormValue{
		{Key: KeyDCurvatureMax, Text: "5"},
		{Key: "madeUp", Text: "1"},
	})

	assert.ElementsMatch(t, []string{KeyDCurvatureMax, "madeUp"}, result.Ignored)
	assert.Equal(t, vehicle.DefaultGeometry().MaxCurvatureRate(), e.Config()[KeyDCurvatureMax])
	_, ok := e.Config()["madeUp"]
	assert.False(t, ok)
}

func TestSave_StorageFailureKeepsMemoryUpdate(t *testing.T) {
	e := newEditor(t, brokenStore{}, nil)

	result := e.Save(context.Background(), []FormValue{{Key: KeyObstacleHazardCost, Text: "300"}})

	assert.False(t, result.Persisted)
	v, _ := e.Value(KeyObstacleHazardCost)
	assert.Equal(t, 300.0, v)
}

func TestSave_RoundTripThroughReload(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	e := newEditor(t, st, nil)

	form := []FormValue{
		{Key: KeySpatialHorizon, Text: "90"},
		{Key: KeyXYGridCellSize, Text: "0.25"},
		{Key: KeySoftLateralAccelerationLimit, Text: "3.5"},
		{Key: "notAParameter", Text: "7"},
	}
	e.Save(ctx, form)

	reloaded := newEditor(t, st, nil)
	assert.Equal(t, Table{
		KeySpatialHorizon:               90,
		KeyXYGridCellSize:               0.25,
		KeySoftLateralAccelerationLimit: 3.5,
	}, reloaded.Overrides())
	assert.Equal(t, e.Config(), reloaded.Config())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStore()
	view := &recordingView{}
	e := newEditor(t, st, view)

	e.Save(ctx, []FormValue{{Key: KeyHysteresisDiscount, Text: "75"}, {Key: KeyGridMargin, Text: "x"}})
	e.Reset(ctx)

	_, ok := st.GetState(ctx, StorageKey)
	assert.False(t, ok, "snapshot removed")
	assert.Equal(t, e.Defaults(), Table(e.live))

	for _, f := range view.last() {
		assert.False(t, f.Modified, f.Key)
		assert.False(t, f.Invalid, f.Key)
	}

	reloaded := newEditor(t, st, nil)
	assert.Empty(t, reloaded.Overrides())

	// Resetting again with nothing stored is fine
	e.Reset(ctx)
	assert.Equal(t, e.Defaults(), Table(e.live))
}

func TestReset_StorageFailure(t *testing.T) {
	e := newEditor(t, brokenStore{}, nil)
	e.Save(context.Background(), []FormValue{{Key: KeyGridMargin, Text: "1"}})

	e.Reset(context.Background())

	assert.Empty(t, e.Overrides())
}

func TestConfig_MergesDerivedConstants(t *testing.T) {
	e := newEditor(t, storage.NewMemoryStore(), nil)
	g := vehicle.DefaultGeometry()

	cfg := e.Config()
	assert.Len(t, cfg, len(Defaults(g))+len(Derived(g)))
	for k, v := range Derived(g) {
		assert.Equal(t, v, cfg[k], k)
	}

	// Idempotent and a fresh copy every time
	again := e.Config()
	assert.Equal(t, cfg, again)
	cfg[KeySpatialHorizon] = -1
	assert.Equal(t, 120.0, e.Config()[KeySpatialHorizon])
}

func TestConfig_DerivedWinsOnOverlap(t *testing.T) {
	e := &Editor{
		defaults: Table{KeyRoadWidth: 1, KeyGridMargin: 20},
		derived:  Table{KeyRoadWidth: RoadWidth},
		live:     Table{KeyRoadWidth: 1, KeyGridMargin: 20},
		invalid:  make(map[string]string),
		store:    storage.NewMemoryStore(),
		log:      quietLogger(),
	}

	e.Save(context.Background(), []FormValue{{Key: KeyRoadWidth, Text: "12"}})

	assert.Equal(t, 12.0, e.live[KeyRoadWidth])
	assert.Equal(t, RoadWidth, e.Config()[KeyRoadWidth])
}

func TestSubmit(t *testing.T) {
	view := &recordingView{submission: []FormValue{{Key: KeySpeedLimitPenalty, Text: "250"}}}
	e := newEditor(t, storage.NewMemoryStore(), view)

	result, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 250.0, result.Applied[KeySpeedLimitPenalty])

	view.readErr = errors.New("interrupt")
	_, err = e.Submit(context.Background())
	assert.Error(t, err)

	headless := newEditor(t, storage.NewMemoryStore(), nil)
	_, err = headless.Submit(context.Background())
	assert.Error(t, err)
}

func TestFields_Idempotent(t *testing.T) {
	e := newEditor(t, storage.NewMemoryStore(), nil)
	assert.Equal(t, e.Fields(), e.Fields())
}
