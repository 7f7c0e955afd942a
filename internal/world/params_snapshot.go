package world

import (
	"strconv"

	"tileworld/internal/core"
)

// Parameters reports every tunable of the current configuration.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				stringParam("projection", "Projection", c.Projection),
				stringParam("basis", "Noise basis", string(p.Basis)),
			},
		},
		{
			Name:   "Height Thresholds",
			Params: thresholdParams(heightKeys, p.Height),
		},
		{
			Name:   "Heat Thresholds",
			Params: thresholdParams(heatKeys, p.Heat),
		},
		{
			Name:   "Moisture Thresholds",
			Params: thresholdParams(moistureKeys, p.Moisture),
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				intParam("terrain_octaves", "Terrain octaves", p.TerrainOctaves),
				floatParam("terrain_frequency", "Terrain frequency", p.TerrainFrequency),
				intParam("heat_octaves", "Heat octaves", p.HeatOctaves),
				floatParam("heat_frequency", "Heat frequency", p.HeatFrequency),
				intParam("moisture_octaves", "Moisture octaves", p.MoistureOctaves),
				floatParam("moisture_frequency", "Moisture frequency", p.MoistureFrequency),
			},
		},
		{
			Name: "Rivers",
			Params: []core.Parameter{
				intParam("river_count", "River count", p.RiverCount),
				floatParam("min_river_height", "Min source height", p.MinRiverHeight),
				intParam("max_river_attempts", "Max seeding attempts", p.MaxRiverAttempts),
				intParam("min_river_turns", "Min turns", p.MinRiverTurns),
				intParam("min_river_length", "Min length", p.MinRiverLength),
				intParam("max_river_intersections", "Max intersections", p.MaxRiverIntersections),
				floatParam("river_tie_epsilon", "Tie epsilon", p.RiverTieEpsilon),
			},
		},
		{
			Name: "Moisture",
			Params: []core.Parameter{
				intParam("moisture_radius", "Diffusion radius", p.MoistureRadius),
				floatParam("moisture_falloff", "Diffusion falloff", p.MoistureFalloff),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the viewer HUD can adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "river_count", Label: "River count", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: 500, HasMax: true},
		{Key: "min_river_turns", Label: "Min turns", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "min_river_length", Label: "Min length", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "moisture_radius", Label: "Diffusion radius", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
		{Key: "min_river_height", Label: "Min source height", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "sand", Label: "Sea level", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, HasMin: true, Max: 0.99, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. It reports false when the key
// is unknown or the result would not validate. Changes apply on the next
// Reset.
func (w *World) SetIntParameter(key string, value int) bool {
	next := w.cfg
	switch key {
	case "river_count":
		next.Params.RiverCount = value
	case "min_river_turns":
		next.Params.MinRiverTurns = value
	case "min_river_length":
		next.Params.MinRiverLength = value
	case "max_river_intersections":
		next.Params.MaxRiverIntersections = value
	case "max_river_attempts":
		next.Params.MaxRiverAttempts = value
	case "moisture_radius":
		next.Params.MoistureRadius = value
	default:
		return false
	}
	return w.apply(next)
}

// SetFloatParameter updates a floating point tunable, including individual
// thresholds addressed by their FromMap key.
func (w *World) SetFloatParameter(key string, value float64) bool {
	next := w.cfg
	switch key {
	case "min_river_height":
		next.Params.MinRiverHeight = value
	case "river_tie_epsilon":
		next.Params.RiverTieEpsilon = value
	case "moisture_falloff":
		next.Params.MoistureFalloff = value
	default:
		if !setThreshold(&next.Params, key, value) {
			return false
		}
	}
	return w.apply(next)
}

func setThreshold(p *Params, key string, value float64) bool {
	for _, set := range []struct {
		keys [6]string
		th   *Thresholds
	}{
		{heightKeys, &p.Height},
		{heatKeys, &p.Heat},
		{moistureKeys, &p.Moisture},
	} {
		for i, k := range set.keys {
			if k == key {
				set.th[i] = value
				return true
			}
		}
	}
	return false
}

func (w *World) apply(next Config) bool {
	if err := next.Validate(); err != nil {
		w.log.Debug("parameter rejected", "err", err)
		return false
	}
	w.cfg = next
	return true
}

func thresholdParams(keys [6]string, th Thresholds) []core.Parameter {
	params := make([]core.Parameter, len(keys))
	for i, key := range keys {
		params[i] = floatParam(key, key, th[i])
	}
	return params
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
