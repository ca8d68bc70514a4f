package plannerconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/picogrid/planner-tuning/pkg/vehicle"
)

func TestDefaults(t *testing.T) {
	d := Defaults(vehicle.DefaultGeometry())

	assert.Len(t, d, 28)
	assert.Equal(t, 120.0, d[KeySpatialHorizon])
	assert.Equal(t, 4.5, d[KeyCollisionDilationS])
	assert.Equal(t, 1.5, d[KeyCollisionDilationL])
	assert.InDelta(t, 1.85, d[KeyLaneCenterLatitude], 1e-12)
	assert.InDelta(t, 3.07, d[KeyLaneShoulderLatitude], 1e-12)

	for k, v := range d {
		assert.True(t, IsFinite(v), k)
	}
}

func TestDefaults_FollowVehicleSize(t *testing.T) {
	g := vehicle.DefaultGeometry()
	g.HalfCarLength = 3
	g.HalfCarWidth = 1.2

	d := Defaults(g)
	assert.Equal(t, 5.0, d[KeyCollisionDilationS])
	assert.InDelta(t, 1.7, d[KeyCollisionDilationL], 1e-12)
}

func TestDerived(t *testing.T) {
	g := vehicle.DefaultGeometry()
	d := Derived(g)

	assert.Equal(t, 8.0, d[KeyLatticeNumStations])
	assert.Equal(t, 17.0, d[KeyLatticeNumLatitudes])
	assert.Equal(t, RoadWidth, d[KeyRoadWidth])
	assert.InDelta(t, 0.8/3, d[KeyDCurvatureMax], 1e-12)
	assert.Equal(t, 1.5, d[KeyRearAxleToCenter])

	for k := range d {
		assert.False(t, Defaults(g).Has(k), "%s is both editable and derived", k)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "空间视野", DisplayName("zh", KeySpatialHorizon))
	assert.Equal(t, "空间视野", DisplayName("zh-CN", KeySpatialHorizon))
	assert.Equal(t, "Grid margin (m)", DisplayName("en_US", KeyGridMargin))
	assert.Equal(t, "newKnob", DisplayName("zh", "newKnob"))
	assert.Equal(t, KeyGridMargin, DisplayName("fr", KeyGridMargin))

	for _, locale := range Locales() {
		for k := range Defaults(vehicle.DefaultGeometry()) {
			assert.NotEqual(t, k, DisplayName(locale, k), "%s has no %s label", k, locale)
		}
	}
}

func TestTable(t *testing.T) {
	base := Table{"b": 2, "a": 1}
	merged := base.Merge(Table{"b": 3, "c": 4})

	assert.Equal(t, Table{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, Table{"b": 2, "a": 1}, base)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())

	clone := base.Clone()
	clone["a"] = 9
	assert.Equal(t, 1.0, base["a"])
}
