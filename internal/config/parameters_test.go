package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "models.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "models")
}

func TestLoadConfigLayering(t *testing.T) {
	name := writeConfig(t, `
Ms = 1.0
Hi = 50.0

[Models.base]
Radius = 40.0

[Models.override]
Radius = 60.0
Hi = 120.0
`)
	cfg, meta, err := LoadConfig(name)
	if err != nil {
		t.Fatal(err)
	}

	base := cfg.Models["base"]
	if err := base.CheckDefaults("base", &cfg, &meta); err != nil {
		t.Fatal(err)
	}
	if base.Ms != 1. {
		t.Fatalf("global Ms not inherited: %g", base.Ms)
	}
	if base.Hi != 50. {
		t.Fatalf("global Hi not inherited: %g", base.Hi)
	}
	if base.A != 10. {
		t.Fatalf("default A not applied: %g", base.A)
	}
	if base.QPoints != 150 || !base.LogQ {
		t.Fatalf("q sampling defaults not applied: %d points, logQ %v", base.QPoints, base.LogQ)
	}

	override := cfg.Models["override"]
	if err := override.CheckDefaults("override", &cfg, &meta); err != nil {
		t.Fatal(err)
	}
	if override.Hi != 120. {
		t.Fatalf("local Hi not kept: %g", override.Hi)
	}
}

func TestLoadConfigUnitConversion(t *testing.T) {
	name := writeConfig(t, `
InputUnits = ["nm", "nm^-1"]
Ms = 1.0

[Models.m]
Radius = 5.0
Thickness = 1.0
QMin = 0.01
QMax = 5.0
`)
	cfg, meta, err := LoadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	mp := cfg.Models["m"]
	if err := mp.CheckDefaults("m", &cfg, &meta); err != nil {
		t.Fatal(err)
	}
	if mp.Radius != 50. || mp.Thickness != 10. {
		t.Fatalf("nm lengths not converted: radius %g, thickness %g", mp.Radius, mp.Thickness)
	}
	if math.Abs(mp.QMin-0.001) > 1e-15 || math.Abs(mp.QMax-0.5) > 1e-15 {
		t.Fatalf("nm^-1 wavevectors not converted: [%g, %g]", mp.QMin, mp.QMax)
	}
}

func TestLoadConfigRejectsUnitConflict(t *testing.T) {
	name := writeConfig(t, `
InputUnits = ["nm", "A"]

[Models.m]
Radius = 5.0
Ms = 1.0
`)
	if _, _, err := LoadConfig(name); err == nil {
		t.Fatal("conflicting length units accepted")
	}
}

func TestCheckDefaultsRejectsInvalidModels(t *testing.T) {
	cases := map[string]string{
		"no models":      ``,
		"missing radius": "[Models.m]\nMs = 1.0\n",
		"missing Ms":     "[Models.m]\nRadius = 50.0\n",
		"zero Ms":        "[Models.m]\nRadius = 50.0\nMs = 0.0\n",
		"bad q window":   "[Models.m]\nRadius = 50.0\nMs = 1.0\nQMin = 0.5\nQMax = 0.1\n",
		"bad QPoints":    "[Models.m]\nRadius = 50.0\nMs = 1.0\nQPoints = 0\n",
	}
	for label, body := range cases {
		name := writeConfig(t, body)
		cfg, meta, err := LoadConfig(name)
		if err != nil {
			continue // rejected at load
		}
		mp := cfg.Models["m"]
		if err := mp.CheckDefaults("m", &cfg, &meta); err == nil {
			t.Fatalf("%s: accepted", label)
		}
	}
}

func TestKernelParameters(t *testing.T) {
	name := writeConfig(t, `
[Models.m]
Radius = 50.0
Ms = 1.2
Hi = 80.0
D = 0.3
UpI = 0.9
UpF = 0.1
`)
	cfg, meta, err := LoadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	mp := cfg.Models["m"]
	if err := mp.CheckDefaults("m", &cfg, &meta); err != nil {
		t.Fatal(err)
	}
	p := mp.Kernel()
	if p.Radius != 50. || p.Ms != 1.2 || p.Hi != 80. || p.D != 0.3 {
		t.Fatalf("kernel parameters not carried over: %+v", p)
	}
	if p.UpI != 0.9 || p.UpF != 0.1 {
		t.Fatalf("efficiencies not carried over: %+v", p)
	}
}
