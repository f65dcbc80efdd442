package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/bobleesj/sasmodels/internal/kernel"
)

type Config struct {
	OutputDir string
	Models    map[string]ModelParameters

	// global values to reset per-model defaults
	ModelParameters

	InputUnits []string
}

// ModelParameters describe one particle model plus its q sampling.
// Lengths in input length units, q bounds in input wavevector units
// (converted to kernel units by CheckDefaults).
type ModelParameters struct {
	Radius    float64 // core radius
	Thickness float64 // shell thickness

	NucCore    float64 // [1e-6 A^-2]
	NucShell   float64
	NucSolvent float64
	MagCore    float64
	MagShell   float64
	MagSolvent float64

	HkCore float64 // core anisotropy field amplitude
	Hi     float64 // internal field
	Ms     float64 // saturation magnetization
	A      float64 // exchange stiffness [1e-12 J/m]
	D      float64 // DMI constant [1e-3 J/m^2]

	UpI   float64 // incident polarization efficiency
	UpF   float64 // final polarization efficiency
	Alpha float64 // sample tilt [deg]
	Beta  float64 // sample tilt [deg]

	QMin    float64
	QMax    float64
	QPoints int
	LogQ    bool

	QMapMax   float64 // 2D map half-width
	MapPoints int     // 2D map resolution per axis

	MakeDir bool
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, err
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("input unit conflict: %v", unitsConflict)
	}

	if len(config.Models) == 0 {
		return config, meta, fmt.Errorf("no models provided")
	}
	return config, meta, nil
}

var defaultValues = map[string]float64{
	"Thickness":  10.,
	"NucCore":    1.,
	"NucShell":   1.7,
	"NucSolvent": 6.4,
	"MagCore":    1.,
	"MagShell":   0.,
	"MagSolvent": 0.,
	"HkCore":     1.,
	"Hi":         2.,
	"A":          10.,
	"D":          0.,
	"UpI":        0.5,
	"UpF":        0.5,
	"Alpha":      0.,
	"Beta":       0.,
	"QMin":       1e-3,
	"QMax":       0.5,
	"QMapMax":    0.1,
}

// field value priority: local, then global, then default
func fallbackFloat(field, modelName string, meta *toml.MetaData, dst, global *float64) {
	if meta.IsDefined("Models", modelName, field) {
		return
	}
	if meta.IsDefined(field) {
		*dst = *global
	} else {
		*dst = defaultValues[field]
	}
}

// CheckDefaults layers global values and defaults under the per-model
// section, converts lengths and wavevectors to kernel units, and rejects
// models the kernel cannot evaluate.
func (mp *ModelParameters) CheckDefaults(modelName string, config *Config, meta *toml.MetaData) error {
	if !meta.IsDefined("Models", modelName, "Radius") && !meta.IsDefined("Radius") {
		return fmt.Errorf("model %s lacks key parameter Radius", modelName)
	}
	if !meta.IsDefined("Models", modelName, "Ms") && !meta.IsDefined("Ms") {
		return fmt.Errorf("model %s lacks key parameter Ms", modelName)
	}
	if !meta.IsDefined("Models", modelName, "Radius") {
		mp.Radius = config.Radius
	}
	if !meta.IsDefined("Models", modelName, "Ms") {
		mp.Ms = config.Ms
	}

	global := &config.ModelParameters
	fallbackFloat("Thickness", modelName, meta, &mp.Thickness, &global.Thickness)
	fallbackFloat("NucCore", modelName, meta, &mp.NucCore, &global.NucCore)
	fallbackFloat("NucShell", modelName, meta, &mp.NucShell, &global.NucShell)
	fallbackFloat("NucSolvent", modelName, meta, &mp.NucSolvent, &global.NucSolvent)
	fallbackFloat("MagCore", modelName, meta, &mp.MagCore, &global.MagCore)
	fallbackFloat("MagShell", modelName, meta, &mp.MagShell, &global.MagShell)
	fallbackFloat("MagSolvent", modelName, meta, &mp.MagSolvent, &global.MagSolvent)
	fallbackFloat("HkCore", modelName, meta, &mp.HkCore, &global.HkCore)
	fallbackFloat("Hi", modelName, meta, &mp.Hi, &global.Hi)
	fallbackFloat("A", modelName, meta, &mp.A, &global.A)
	fallbackFloat("D", modelName, meta, &mp.D, &global.D)
	fallbackFloat("UpI", modelName, meta, &mp.UpI, &global.UpI)
	fallbackFloat("UpF", modelName, meta, &mp.UpF, &global.UpF)
	fallbackFloat("Alpha", modelName, meta, &mp.Alpha, &global.Alpha)
	fallbackFloat("Beta", modelName, meta, &mp.Beta, &global.Beta)
	fallbackFloat("QMin", modelName, meta, &mp.QMin, &global.QMin)
	fallbackFloat("QMax", modelName, meta, &mp.QMax, &global.QMax)
	fallbackFloat("QMapMax", modelName, meta, &mp.QMapMax, &global.QMapMax)

	if !meta.IsDefined("Models", modelName, "QPoints") {
		if meta.IsDefined("QPoints") {
			mp.QPoints = config.QPoints
		} else {
			mp.QPoints = 150
		}
	}
	if !meta.IsDefined("Models", modelName, "MapPoints") {
		if meta.IsDefined("MapPoints") {
			mp.MapPoints = config.MapPoints
		} else {
			mp.MapPoints = 128
		}
	}
	if !meta.IsDefined("Models", modelName, "LogQ") {
		mp.LogQ = true
		if meta.IsDefined("LogQ") {
			mp.LogQ = config.LogQ
		}
	}
	if !meta.IsDefined("Models", modelName, "MakeDir") {
		if meta.IsDefined("MakeDir") {
			mp.MakeDir = config.MakeDir
		}
	}

	mp.Radius = toKernel(mp.Radius, Length, config.InputUnits)
	mp.Thickness = toKernel(mp.Thickness, Length, config.InputUnits)
	mp.QMin = toKernel(mp.QMin, WaveVector, config.InputUnits)
	mp.QMax = toKernel(mp.QMax, WaveVector, config.InputUnits)
	mp.QMapMax = toKernel(mp.QMapMax, WaveVector, config.InputUnits)

	if mp.QPoints < 1 {
		return fmt.Errorf("model %s: QPoints must be positive, got %d", modelName, mp.QPoints)
	}
	if mp.QMin <= 0 || mp.QMax <= mp.QMin {
		return fmt.Errorf("model %s: need 0 < QMin < QMax, got [%g, %g]", modelName, mp.QMin, mp.QMax)
	}
	if mp.MapPoints < 2 {
		return fmt.Errorf("model %s: MapPoints must be at least 2, got %d", modelName, mp.MapPoints)
	}
	return mp.Kernel().Validate()
}

// Kernel extracts the evaluation parameters in kernel units.
func (mp *ModelParameters) Kernel() kernel.Parameters {
	return kernel.Parameters{
		Radius:     mp.Radius,
		Thickness:  mp.Thickness,
		NucCore:    mp.NucCore,
		NucShell:   mp.NucShell,
		NucSolvent: mp.NucSolvent,
		MagCore:    mp.MagCore,
		MagShell:   mp.MagShell,
		MagSolvent: mp.MagSolvent,
		HkCore:     mp.HkCore,
		Hi:         mp.Hi,
		Ms:         mp.Ms,
		A:          mp.A,
		D:          mp.D,
		UpI:        mp.UpI,
		UpF:        mp.UpF,
		Alpha:      mp.Alpha,
		Beta:       mp.Beta,
	}
}
