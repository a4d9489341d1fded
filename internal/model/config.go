package model

// Config holds every tunable for a comparison run.
//
// Hierarchy (highest to lowest priority): CLI flags, GENBENCH_* environment
// variables, ~/.genbench/config.yaml, the defaults below.
type Config struct {
	Matching MatchingConfig `yaml:"matching" mapstructure:"matching"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// MatchingConfig holds the thresholds and weights of both match policies.
type MatchingConfig struct {
	// Threshold policy
	NameThreshold int `yaml:"name_threshold" mapstructure:"name_threshold"` // minimum 0-100 name ratio
	YearTolerance int `yaml:"year_tolerance" mapstructure:"year_tolerance"` // +/- years on birth and death

	// Weighted policy
	MatchThreshold float64 `yaml:"match_threshold" mapstructure:"match_threshold"` // minimum total score
	Weights        Weights `yaml:"weights" mapstructure:"weights"`

	// Birth-year candidate filtering
	Filter       bool    `yaml:"filter" mapstructure:"filter"`               // bucket targets by birth year
	YearWindow   int     `yaml:"year_window" mapstructure:"year_window"`     // +/- years scanned when filtering
	ShortCircuit float64 `yaml:"short_circuit" mapstructure:"short_circuit"` // stop scanning a source row at this score
}

// Weights is the maximum contribution of each factor to the weighted score.
// The defaults sum to 100 so the total reads as a percentage.
type Weights struct {
	Name    float64 `yaml:"name" mapstructure:"name"`
	Birth   float64 `yaml:"birth" mapstructure:"birth"`
	Death   float64 `yaml:"death" mapstructure:"death"`
	Parents float64 `yaml:"parents" mapstructure:"parents"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Matching: MatchingConfig{
			NameThreshold:  85,
			YearTolerance:  1,
			MatchThreshold: 70,
			Weights: Weights{
				Name:    40,
				Birth:   25,
				Death:   25,
				Parents: 10,
			},
			Filter:       true,
			YearWindow:   5,
			ShortCircuit: 95,
		},
	}
}
