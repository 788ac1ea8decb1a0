package config

import (
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := &Config{
		ModelFile:          "model.txt",
		InitialPopulations: []float64{10, 5},
		Dt:                 0.02,
		Duration:           50,
		Output:             "out.txt",
		Sample:             &SampleConfig{Start: 0, End: 50, Step: 1},
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.ModelFile != cfg.ModelFile {
		t.Errorf("model file = %q, want %q", got.ModelFile, cfg.ModelFile)
	}
	if got.Dt != cfg.Dt || got.Duration != cfg.Duration {
		t.Errorf("dt/duration = %g/%g, want %g/%g", got.Dt, got.Duration, cfg.Dt, cfg.Duration)
	}
	if len(got.InitialPopulations) != 2 || got.InitialPopulations[0] != 10 {
		t.Errorf("initial populations = %v, want %v", got.InitialPopulations, cfg.InitialPopulations)
	}
	if got.Sample == nil || got.Sample.Step != 1 {
		t.Errorf("sample config lost in round trip: %+v", got.Sample)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildModelRequiresSource(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.BuildModel(); err == nil {
		t.Error("expected error when neither model_file nor inline model is set")
	}
}

func TestPresetPredatorPrey(t *testing.T) {
	cfg := GetPreset("predator-prey")
	if cfg == nil {
		t.Fatal("predator-prey preset missing")
	}

	m, err := cfg.BuildModel()
	if err != nil {
		t.Fatalf("preset model build failed: %v", err)
	}

	if m.Species() != 2 {
		t.Fatalf("species = %d, want 2", m.Species())
	}
	if m.GrowthRate(0) <= 0 || m.GrowthRate(1) >= 0 {
		t.Errorf("expected prey growth > 0 and predator growth < 0, got %g, %g", m.GrowthRate(0), m.GrowthRate(1))
	}
	if m.PredationLoss(1, 0) <= 0 {
		t.Errorf("expected predation loss from predator 1 onto prey 0")
	}
	if len(cfg.InitialPopulations) != 2 {
		t.Errorf("initial populations = %v, want 2 entries", cfg.InitialPopulations)
	}
}

func TestAllPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		m, err := cfg.BuildModel()
		if err != nil {
			t.Errorf("preset %s: build failed: %v", name, err)
			continue
		}
		if len(cfg.InitialPopulations) != m.Species() {
			t.Errorf("preset %s: %d initial populations for %d species", name, len(cfg.InitialPopulations), m.Species())
		}
		if cfg.Dt <= 0 || cfg.Duration <= 0 {
			t.Errorf("preset %s: non-positive dt or duration", name)
		}
	}
}

func TestInlineModelDimensionMismatch(t *testing.T) {
	mc := &ModelConfig{
		Species:        2,
		GrowthRates:    []float64{1},
		SelfLimitation: []float64{0, 0},
		PredationLoss:  [][]float64{{0, 0}, {0, 0}},
		PredationGain:  [][]float64{{0, 0}, {0, 0}},
	}
	if _, err := mc.Build(); err == nil {
		t.Error("expected error for mismatched growth rates")
	}
}
