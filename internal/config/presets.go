package config

// Presets are ready-made scenarios, keyed by name.
var Presets = map[string]*Config{
	// Classic two-species pair: prey grows, predator decays in isolation.
	"predator-prey": {
		Model: &ModelConfig{
			Species:        2,
			GrowthRates:    []float64{1.0, -1.0},
			SelfLimitation: []float64{0.0, 0.0},
			PredationLoss: [][]float64{
				{0.0, 0.0},
				{0.1, 0.0},
			},
			PredationGain: [][]float64{
				{0.0, 0.0},
				{0.075, 0.0},
			},
		},
		InitialPopulations: []float64{10, 5},
		Dt:                 0.01,
		Duration:           100.0,
	},
	// Two logistic species suppressing each other.
	"competition": {
		Model: &ModelConfig{
			Species:        2,
			GrowthRates:    []float64{1.0, 0.8},
			SelfLimitation: []float64{0.01, 0.008},
			PredationLoss: [][]float64{
				{0.0, 0.004},
				{0.006, 0.0},
			},
			PredationGain: [][]float64{
				{0.0, 0.0},
				{0.0, 0.0},
			},
		},
		InitialPopulations: []float64{20, 20},
		Dt:                 0.01,
		Duration:           200.0,
	},
	// Grass-herbivore-carnivore chain.
	"food-chain": {
		Model: &ModelConfig{
			Species:        3,
			GrowthRates:    []float64{1.2, -0.4, -0.6},
			SelfLimitation: []float64{0.005, 0.0, 0.0},
			PredationLoss: [][]float64{
				{0.0, 0.0, 0.0},
				{0.08, 0.0, 0.0},
				{0.0, 0.05, 0.0},
			},
			PredationGain: [][]float64{
				{0.0, 0.0, 0.0},
				{0.04, 0.0, 0.0},
				{0.0, 0.03, 0.0},
			},
		},
		InitialPopulations: []float64{40, 10, 4},
		Dt:                 0.005,
		Duration:           150.0,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
