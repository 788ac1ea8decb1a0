// Package config loads and saves simulation run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ecosim/internal/lotka"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 100.0
)

// Config describes one simulation run: where the model comes from, the
// initial populations, and the integration window.
type Config struct {
	// ModelFile names a parameter file to load; Model gives the
	// parameters inline. ModelFile wins when both are set.
	ModelFile string       `yaml:"model_file,omitempty"`
	Model     *ModelConfig `yaml:"model,omitempty"`

	InitialPopulations []float64 `yaml:"initial_populations"`
	Dt                 float64   `yaml:"dt"`
	Duration           float64   `yaml:"duration"`
	Output             string    `yaml:"output,omitempty"`

	// Sample, when present, resamples the trace onto a regular grid
	// before writing it out.
	Sample *SampleConfig `yaml:"sample,omitempty"`
}

// ModelConfig holds inline model parameters. The matrices are addressed
// [predator][prey], matching the model's public accessors.
type ModelConfig struct {
	Species        int         `yaml:"species"`
	GrowthRates    []float64   `yaml:"growth_rates"`
	SelfLimitation []float64   `yaml:"self_limitation"`
	PredationLoss  [][]float64 `yaml:"predation_loss"`
	PredationGain  [][]float64 `yaml:"predation_gain"`
}

// SampleConfig is a regular resampling grid.
type SampleConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildModel constructs the configured model, from file or inline
// parameters.
func (c *Config) BuildModel() (*lotka.Model, error) {
	if c.ModelFile != "" {
		return lotka.ReadFile(c.ModelFile)
	}
	if c.Model == nil {
		return nil, fmt.Errorf("config: no model_file or inline model given")
	}
	return c.Model.Build()
}

// Build applies the inline parameters through the model's setters.
func (mc *ModelConfig) Build() (*lotka.Model, error) {
	n := mc.Species
	if len(mc.GrowthRates) != n || len(mc.SelfLimitation) != n ||
		len(mc.PredationLoss) != n || len(mc.PredationGain) != n {
		return nil, fmt.Errorf("config: model parameter lengths do not match %d species", n)
	}

	m := lotka.New(n)
	for i := 0; i < n; i++ {
		m.SetGrowthRate(i, mc.GrowthRates[i])
		if err := m.SetSelfLimitation(i, mc.SelfLimitation[i]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if len(mc.PredationLoss[i]) != n || len(mc.PredationGain[i]) != n {
			return nil, fmt.Errorf("config: predation matrix row %d does not match %d species", i, n)
		}
		for j := 0; j < n; j++ {
			if err := m.SetPredationLoss(i, j, mc.PredationLoss[i][j]); err != nil {
				return nil, err
			}
			if err := m.SetPredationGain(i, j, mc.PredationGain[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
