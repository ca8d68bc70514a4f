package plannerconfig

import "strings"

// Supported display locales
const (
	LocaleEnglish = "en"
	LocaleChinese = "zh"
)

var displayNames = map[string]map[string]string{
	LocaleChinese: {
		KeySpatialHorizon:                   "空间视野",
		KeyCenterlineStationInterval:        "中心线站点间隔",
		KeyXYGridCellSize:                   "XY网格单元大小",
		KeySLGridCellSize:                   "SL网格单元大小",
		KeyGridMargin:                       "网格边距",
		KeyPathSamplingStep:                 "路径采样步长",
		KeyCubicPathPenalty:                 "三次路径惩罚",
		KeyCollisionDilationS:               "碰撞膨胀S",
		KeyHazardDilationS:                  "危险膨胀S",
		KeyCollisionDilationL:               "碰撞膨胀L",
		KeyHazardDilationL:                  "危险膨胀L",
		KeyDynamicHazardDilationS:           "动态危险膨胀S",
		KeyDynamicHazardDilationL:           "动态危险膨胀L",
		KeyObstacleHazardCost:               "障碍物危险成本",
		KeyLaneCenterLatitude:               "车道中心纬度",
		KeyLaneShoulderLatitude:             "车道边缘纬度",
		KeyLaneCostSlope:                    "车道成本斜率",
		KeyLanePreferenceDiscount:           "车道偏好折扣",
		KeyStationReachDiscount:             "站点到达折扣",
		KeyExtraTimePenalty:                 "额外时间惩罚",
		KeyHysteresisDiscount:               "滞后折扣",
		KeySpeedLimitPenalty:                "速度限制惩罚",
		KeyHardAccelerationPenalty:          "急加速惩罚",
		KeyHardDecelerationPenalty:          "急减速惩罚",
		KeySoftLateralAccelerationLimit:     "软横向加速度限制",
		KeySoftLateralAccelerationPenalty:   "软横向加速度惩罚",
		KeyLinearLateralAccelerationPenalty: "线性横向加速度惩罚",
		KeyAccelerationChangePenalty:        "加速度变化惩罚",
	},
	LocaleEnglish: {
		KeySpatialHorizon:                   "Spatial horizon (m)",
		KeyCenterlineStationInterval:        "Centerline station interval (m)",
		KeyXYGridCellSize:                   "XY grid cell size (m)",
		KeySLGridCellSize:                   "SL grid cell size (m)",
		KeyGridMargin:                       "Grid margin (m)",
		KeyPathSamplingStep:                 "Path sampling step (m)",
		KeyCubicPathPenalty:                 "Cubic path penalty",
		KeyCollisionDilationS:               "Collision dilation S (m)",
		KeyHazardDilationS:                  "Hazard dilation S (m)",
		KeyCollisionDilationL:               "Collision dilation L (m)",
		KeyHazardDilationL:                  "Hazard dilation L (m)",
		KeyDynamicHazardDilationS:           "Dynamic hazard dilation S (m)",
		KeyDynamicHazardDilationL:           "Dynamic hazard dilation L (m)",
		KeyObstacleHazardCost:               "Obstacle hazard cost",
		KeyLaneCenterLatitude:               "Lane center latitude (m)",
		KeyLaneShoulderLatitude:             "Lane shoulder latitude (m)",
		KeyLaneCostSlope:                    "Lane cost slope (per m)",
		KeyLanePreferenceDiscount:           "Lane preference discount",
		KeyStationReachDiscount:             "Station reach discount",
		KeyExtraTimePenalty:                 "Extra time penalty",
		KeyHysteresisDiscount:               "Hysteresis discount",
		KeySpeedLimitPenalty:                "Speed limit penalty",
		KeyHardAccelerationPenalty:          "Hard acceleration penalty",
		KeyHardDecelerationPenalty:          "Hard deceleration penalty",
		KeySoftLateralAccelerationLimit:     "Soft lateral acceleration limit (m/s²)",
		KeySoftLateralAccelerationPenalty:   "Soft lateral acceleration penalty",
		KeyLinearLateralAccelerationPenalty: "Linear lateral acceleration penalty",
		KeyAccelerationChangePenalty:        "Acceleration change penalty",
	},
}

// DisplayName returns the label shown for key in locale. Unknown locales and
// unmapped keys fall back to the key itself so a label is never blank.
func DisplayName(locale, key string) string {
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if name := displayNames[lang][key]; name != "" {
		return name
	}
	return key
}

// Locales returns the locales that have display names
func Locales() []string {
	return []string{LocaleEnglish, LocaleChinese}
}
