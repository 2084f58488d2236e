package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigError reports an invalid simulation configuration. It is fatal and
// raised before any event is scheduled.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Config holds all parameters of one simulation run. Loadable from a YAML
// instance file; zero intervals are filled in by Normalize.
type Config struct {
	NumDoctors  int     `yaml:"num_doctors"`
	NumBeds     int     `yaml:"num_beds"`
	ArrivalRate float64 `yaml:"arrival_rate"` // patients per hour
	Horizon     float64 `yaml:"horizon"`      // simulated minutes

	OptimizationInterval float64 `yaml:"optimization_interval"` // minutes between policy invocations
	MetricsInterval      float64 `yaml:"metrics_interval"`      // minutes between samples

	// Deterioration constants. Observed revisions of the system disagree on
	// these values, so they are configuration, not constants.
	DeteriorationInterval   float64 `yaml:"deterioration_interval"`    // minutes between checks
	DeteriorationWaitFactor float64 `yaml:"deterioration_wait_factor"` // multiple of the max recommended wait
	DeteriorationChance     float64 `yaml:"deterioration_chance"`      // per-check escalation probability

	Seed int64 `yaml:"seed"`

	// Replications is carried from the instance bundle for external
	// orchestration; the simulation itself always runs one replication.
	Replications int `yaml:"replications"`
}

// DefaultConfig returns a config with the standard intervals and
// deterioration constants.
func DefaultConfig() Config {
	return Config{
		NumDoctors:              3,
		NumBeds:                 10,
		ArrivalRate:             6,
		Horizon:                 480,
		OptimizationInterval:    30,
		MetricsInterval:         10,
		DeteriorationInterval:   15,
		DeteriorationWaitFactor: 1.5,
		DeteriorationChance:     0.2,
		Seed:                    42,
		Replications:            1,
	}
}

// Normalize fills unset intervals and constants with their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.OptimizationInterval == 0 {
		c.OptimizationInterval = def.OptimizationInterval
	}
	if c.MetricsInterval == 0 {
		c.MetricsInterval = def.MetricsInterval
	}
	if c.DeteriorationInterval == 0 {
		c.DeteriorationInterval = def.DeteriorationInterval
	}
	if c.DeteriorationWaitFactor == 0 {
		c.DeteriorationWaitFactor = def.DeteriorationWaitFactor
	}
	if c.DeteriorationChance == 0 {
		c.DeteriorationChance = def.DeteriorationChance
	}
	if c.Replications == 0 {
		c.Replications = 1
	}
}

// Validate checks the configuration. All failures here abort the run before
// anything is scheduled.
func (c *Config) Validate() error {
	if c.NumDoctors <= 0 {
		return &ConfigError{Field: "num_doctors", Reason: "must be positive"}
	}
	if c.NumBeds <= 0 {
		return &ConfigError{Field: "num_beds", Reason: "must be positive"}
	}
	if c.ArrivalRate <= 0 {
		return &ConfigError{Field: "arrival_rate", Reason: "must be positive"}
	}
	if c.Horizon <= 0 {
		return &ConfigError{Field: "horizon", Reason: "must be positive"}
	}
	if c.OptimizationInterval <= 0 {
		return &ConfigError{Field: "optimization_interval", Reason: "must be positive"}
	}
	if c.MetricsInterval <= 0 {
		return &ConfigError{Field: "metrics_interval", Reason: "must be positive"}
	}
	if c.DeteriorationInterval <= 0 {
		return &ConfigError{Field: "deterioration_interval", Reason: "must be positive"}
	}
	if c.DeteriorationWaitFactor <= 0 {
		return &ConfigError{Field: "deterioration_wait_factor", Reason: "must be positive"}
	}
	if c.DeteriorationChance < 0 || c.DeteriorationChance > 1 {
		return &ConfigError{Field: "deterioration_chance", Reason: "must be in [0, 1]"}
	}
	return nil
}

// LoadConfig reads and parses a YAML instance file, normalizing defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading instance config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing instance config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}
