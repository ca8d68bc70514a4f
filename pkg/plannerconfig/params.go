package plannerconfig

import "github.com/picogrid/planner-tuning/pkg/vehicle"

// Editable parameter names
const (
	KeySpatialHorizon                   = "spatialHorizon"
	KeyCenterlineStationInterval        = "centerlineStationInterval"
	KeyXYGridCellSize                   = "xyGridCellSize"
	KeySLGridCellSize                   = "slGridCellSize"
	KeyGridMargin                       = "gridMargin"
	KeyPathSamplingStep                 = "pathSamplingStep"
	KeyCubicPathPenalty                 = "cubicPathPenalty"
	KeyCollisionDilationS               = "collisionDilationS"
	KeyHazardDilationS                  = "hazardDilationS"
	KeyCollisionDilationL               = "collisionDilationL"
	KeyHazardDilationL                  = "hazardDilationL"
	KeyDynamicHazardDilationS           = "dynamicHazardDilationS"
	KeyDynamicHazardDilationL           = "dynamicHazardDilationL"
	KeyObstacleHazardCost               = "obstacleHazardCost"
	KeyLaneCenterLatitude               = "laneCenterLatitude"
	KeyLaneShoulderLatitude             = "laneShoulderLatitude"
	KeyLaneCostSlope                    = "laneCostSlope"
	KeyLanePreferenceDiscount           = "lanePreferenceDiscount"
	KeyStationReachDiscount             = "stationReachDiscount"
	KeyExtraTimePenalty                 = "extraTimePenalty"
	KeyHysteresisDiscount               = "hysteresisDiscount"
	KeySpeedLimitPenalty                = "speedLimitPenalty"
	KeyHardAccelerationPenalty          = "hardAccelerationPenalty"
	KeyHardDecelerationPenalty          = "hardDecelerationPenalty"
	KeySoftLateralAccelerationLimit     = "softLateralAccelerationLimit"
	KeySoftLateralAccelerationPenalty   = "softLateralAccelerationPenalty"
	KeyLinearLateralAccelerationPenalty = "linearLateralAccelerationPenalty"
	KeyAccelerationChangePenalty        = "accelerationChangePenalty"
)

// Derived constant names. Lattice settings are flattened with a "lattice." prefix.
const (
	KeyLatticeNumStations          = "lattice.numStations"
	KeyLatticeNumLatitudes         = "lattice.numLatitudes"
	KeyLatticeStationConnectivity  = "lattice.stationConnectivity"
	KeyLatticeLatitudeConnectivity = "lattice.latitudeConnectivity"
	KeyRoadWidth                   = "roadWidth"
	KeyNumDynamicFrames            = "numDynamicFrames"
	KeyNumDynamicSubframes         = "numDynamicSubframes"
	KeyDCurvatureMax               = "dCurvatureMax"
	KeyRearAxleToCenter            = "rearAxleToCenter"
)

// RoadWidth is the width of the two-lane road the planner drives on, in meters
const RoadWidth = 3.7 * 2

// Defaults returns the factory value of every editable parameter. Dilations and
// lane latitudes depend on the car size, the rest are fixed.
func Defaults(g vehicle.Geometry) Table {
	return Table{
		KeySpatialHorizon:            120, // meters
		KeyCenterlineStationInterval: 0.5, // meters

		KeyXYGridCellSize:   0.3,  // meters
		KeySLGridCellSize:   0.15, // meters
		KeyGridMargin:       20,   // meters
		KeyPathSamplingStep: 1,    // meters

		KeyCubicPathPenalty: 0,

		KeyCollisionDilationS: g.HalfCarLength + 2,  // meters
		KeyHazardDilationS:    8,                    // meters
		KeyCollisionDilationL: g.HalfCarWidth + 0.5, // meters
		KeyHazardDilationL:    0.5,                  // meters

		KeyDynamicHazardDilationS: 16,
		KeyDynamicHazardDilationL: 0.5,

		KeyObstacleHazardCost: 200,

		KeyLaneCenterLatitude:     RoadWidth / 4,
		KeyLaneShoulderLatitude:   RoadWidth/2*1.1 - g.HalfCarWidth,
		KeyLaneCostSlope:          20, // cost / meter
		KeyLanePreferenceDiscount: 55,

		KeyStationReachDiscount: 400,
		KeyExtraTimePenalty:     1000,

		KeyHysteresisDiscount: 50,

		KeySpeedLimitPenalty: 200,

		KeyHardAccelerationPenalty: 70,
		KeyHardDecelerationPenalty: 50,

		KeySoftLateralAccelerationLimit:     4, // m/s^2
		KeySoftLateralAccelerationPenalty:   100,
		KeyLinearLateralAccelerationPenalty: 10,

		KeyAccelerationChangePenalty: 10,
	}
}

// Derived returns the constants computed from the vehicle geometry. They are
// never editable and never persisted.
func Derived(g vehicle.Geometry) Table {
	return Table{
		KeyLatticeNumStations:          8,
		KeyLatticeNumLatitudes:         17,
		KeyLatticeStationConnectivity:  3,
		KeyLatticeLatitudeConnectivity: 7,

		KeyRoadWidth: RoadWidth, // meters

		KeyNumDynamicFrames:    20,
		KeyNumDynamicSubframes: 4,

		KeyDCurvatureMax:    g.MaxCurvatureRate(),
		KeyRearAxleToCenter: -g.RearAxlePos,
	}
}
