package engine

import "github.com/mitchellh/mapstructure"

// Config is the recognized options dictionary from spec.md §6's run()
// operation.
type Config struct {
	PopulationSize  int
	MaxGenerations  int
	MutationRate    float64
	CrossoverRate   float64
	ElitismCount    int
	TournamentSize  int
	Weights         map[string]float64
	Seed            *int64
}

// DefaultConfig returns the spec.md §4.5 default parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 100,
		MaxGenerations: 1000,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		ElitismCount:   5,
		TournamentSize: 5,
		Weights:        defaultWeights(),
	}
}

// DecodeConfig overlays a loosely-typed overrides map onto DefaultConfig via
// mapstructure, the same decode-with-defaults pattern the teacher's
// InputFromJson/ProcessRawInput split uses for snapshot loading.
func DecodeConfig(overrides map[string]any) (Config, error) {
	config := DefaultConfig()
	if len(overrides) == 0 {
		return config, nil
	}

	decoderConfig := &mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(overrides); err != nil {
		return Config{}, err
	}

	if config.Weights == nil {
		config.Weights = defaultWeights()
	} else {
		merged := defaultWeights()
		for k, v := range config.Weights {
			merged[k] = v
		}
		config.Weights = merged
	}

	return config, nil
}

// Validate rejects nonsensical configuration values; Run calls it before
// anything else and returns its error unchanged.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return invalidConfigf("population-size must be positive, got %d", c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return invalidConfigf("max-generations must be positive, got %d", c.MaxGenerations)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return invalidConfigf("mutation-rate must be in [0,1], got %v", c.MutationRate)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return invalidConfigf("crossover-rate must be in [0,1], got %v", c.CrossoverRate)
	}
	if c.ElitismCount < 0 || c.ElitismCount > c.PopulationSize {
		return invalidConfigf("elitism-count must be within [0, population-size], got %d", c.ElitismCount)
	}
	if c.TournamentSize <= 0 || c.TournamentSize > c.PopulationSize {
		return invalidConfigf("tournament-size must be within (0, population-size], got %d", c.TournamentSize)
	}
	return nil
}
