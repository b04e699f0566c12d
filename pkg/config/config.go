package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config represents the application configuration: the effect multiplier
// tables for each attribute dimension, the base risk constants, the clamp
// bounds, and the default transition horizon. Loaded once at startup and
// never mutated afterwards.
type Config struct {
	BaseSystematic    float64         `json:"base_systematic"`
	BaseIdiosyncratic float64         `json:"base_idiosyncratic"`
	MinRisk           float64         `json:"min_risk"`
	MaxRisk           float64         `json:"max_risk"`
	DefaultHorizon    int             `json:"default_horizon"`
	AnthropicAPIKey   string          `json:"anthropic_api_key,omitempty"`
	Models            ModelsConfig    `json:"models,omitempty"`
	Skill             DimensionConfig `json:"skill"`
	Education         DimensionConfig `json:"education"`
	Industry          DimensionConfig `json:"industry"`
	JobRole           DimensionConfig `json:"job_role"`
}

// ModelsConfig holds model selection for the advise command.
type ModelsConfig struct {
	Advice string `json:"advice,omitempty"`
}

// DimensionConfig holds the closed set of valid levels for one attribute
// dimension and the effect multipliers for each level. Levels is ordered:
// for ordinal dimensions (skill, education) the index is the level's
// ordinal code.
type DimensionConfig struct {
	Levels        []string           `json:"levels"`
	Systematic    map[string]float64 `json:"systematic"`
	Idiosyncratic map[string]float64 `json:"idiosyncratic"`
}

// GetAdviceModel returns the advice model or default if not specified.
func (c *Config) GetAdviceModel() (model string) {
	if c.Models.Advice != "" {
		model = c.Models.Advice
		return model
	}
	model = "claude-sonnet-4-20250514"
	return model
}

// Load reads configuration from file with environment variable overrides.
// An empty configPath means the default location; if no file exists there
// the built-in default tables are used. An explicit path must exist.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".career-risk", "config.json")

		// No config file at the default location: fall back to the
		// built-in factor tables.
		_, statErr := os.Stat(path)
		if os.IsNotExist(statErr) {
			cfg = Default()
			applyEnvOverrides(&cfg)
			err = cfg.Validate()
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'career-risk init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	applyEnvOverrides(&cfg)

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func applyEnvOverrides(cfg *Config) {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}
}

// Validate checks that the configuration describes a usable factor table:
// sane clamp bounds, positive base risks, a positive horizon, and full
// effect coverage for every configured level of every dimension.
func (c *Config) Validate() (err error) {
	if c.BaseSystematic <= 0 {
		err = errors.New("base_systematic must be positive")
		return err
	}

	if c.BaseIdiosyncratic <= 0 {
		err = errors.New("base_idiosyncratic must be positive")
		return err
	}

	if c.MinRisk <= 0 || c.MaxRisk <= c.MinRisk {
		err = errors.Errorf("clamp bounds must satisfy 0 < min_risk < max_risk, got [%v, %v]", c.MinRisk, c.MaxRisk)
		return err
	}

	if c.DefaultHorizon <= 0 {
		err = errors.Errorf("default_horizon must be positive, got %d", c.DefaultHorizon)
		return err
	}

	dimensions := map[string]DimensionConfig{
		"skill":     c.Skill,
		"education": c.Education,
		"industry":  c.Industry,
		"job_role":  c.JobRole,
	}

	for name, dim := range dimensions {
		err = dim.validate(name)
		if err != nil {
			return err
		}
	}

	return err
}

func (d DimensionConfig) validate(name string) (err error) {
	if len(d.Levels) == 0 {
		err = errors.Errorf("%s: at least one level is required", name)
		return err
	}

	seen := make(map[string]bool, len(d.Levels))
	for _, level := range d.Levels {
		if level == "" {
			err = errors.Errorf("%s: empty level name", name)
			return err
		}

		if seen[level] {
			err = errors.Errorf("%s: duplicate level %q", name, level)
			return err
		}
		seen[level] = true

		// Every valid level needs an entry in both effect maps.
		systematic, ok := d.Systematic[level]
		if !ok {
			err = errors.Errorf("%s: level %q has no systematic effect multiplier", name, level)
			return err
		}
		if systematic <= 0 {
			err = errors.Errorf("%s: level %q systematic effect multiplier must be positive, got %v", name, level, systematic)
			return err
		}

		idiosyncratic, ok := d.Idiosyncratic[level]
		if !ok {
			err = errors.Errorf("%s: level %q has no idiosyncratic effect multiplier", name, level)
			return err
		}
		if idiosyncratic <= 0 {
			err = errors.Errorf("%s: level %q idiosyncratic effect multiplier must be positive, got %v", name, level, idiosyncratic)
			return err
		}
	}

	// The level set is closed: effect entries for levels outside it would
	// be unreachable and usually indicate a typo in the config file.
	for level := range d.Systematic {
		if !seen[level] {
			err = errors.Errorf("%s: systematic effect entry for unconfigured level %q", name, level)
			return err
		}
	}

	for level := range d.Idiosyncratic {
		if !seen[level] {
			err = errors.Errorf("%s: idiosyncratic effect entry for unconfigured level %q", name, level)
			return err
		}
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".career-risk", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Default()

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
