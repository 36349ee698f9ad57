package nematic

import (
	"strconv"

	"nematic-mc/pkg/core"
)

// Parameters reports the current configuration for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("n", "Lattice side", w.cfg.Size),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Model",
			Params: []core.Parameter{
				floatParam("ts", "Reduced temperature", w.cfg.Params.Temperature),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "ts",
			Label:  "Reduced temperature",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0.05,
			Max:    2.0,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float parameter from the HUD. Non-positive
// temperatures are refused; the Boltzmann factor is undefined there.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "ts":
		if value <= 0 {
			return false
		}
		w.cfg.Params.Temperature = value
		return true
	}
	return false
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
