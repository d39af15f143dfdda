package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the finlens configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the finlens configuration directory
const ConfigDirName = ".finlens"

// Config holds all finlens configuration
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Report   ReportConfig   `yaml:"report"`
	Output   OutputConfig   `yaml:"output"`
}

// AnalysisConfig holds the tunable constants consumed by the analyzers.
// None of these are baked into analyzer code; they are always injected.
type AnalysisConfig struct {
	// MarginRatio is the assumed profit margin used for break-even revenue.
	MarginRatio float64 `yaml:"margin_ratio"`

	// OutlierFence is the Tukey fence multiplier for salary outliers.
	OutlierFence float64 `yaml:"outlier_fence"`

	// CorrelationWeak and CorrelationStrong bound the qualitative labels
	// for the budget/ROI correlation: |r| below weak is "weak", at or
	// above strong is "strong", in between is "moderate".
	CorrelationWeak   float64 `yaml:"correlation_weak"`
	CorrelationStrong float64 `yaml:"correlation_strong"`

	// MaintenanceRatioAlert is the annual-maintenance/purchase-cost ratio
	// (percent) above which cost recommendations flag maintenance
	// contracts for review.
	MaintenanceRatioAlert float64 `yaml:"maintenance_ratio_alert"`

	// CostConcentrationAlert is the share (percent) of total monthly
	// maintenance concentrated in one department above which an audit of
	// that department is recommended.
	CostConcentrationAlert float64 `yaml:"cost_concentration_alert"`
}

// ReportConfig holds presentation-level settings.
type ReportConfig struct {
	// Currency is the display label for monetary amounts. It never
	// affects computation.
	Currency string `yaml:"currency"`

	// TopN is the length of ranking slices shown in text reports. The
	// underlying results always carry the full ordered sequence.
	TopN int `yaml:"top_n"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .finlens/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge with defaults
	merged := Merge(loaded, DefaultConfig())

	// Validate the merged config
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .finlens directory by walking up from startDir.
// Returns the path to the .finlens directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .finlens directory if it doesn't exist.
// Returns the path to the .finlens directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if cfg.Analysis.MarginRatio <= 0 || cfg.Analysis.MarginRatio > 1 {
		return fmt.Errorf("%w: margin_ratio must be in (0, 1], got %f",
			ErrInvalidConfig, cfg.Analysis.MarginRatio)
	}

	if cfg.Analysis.OutlierFence <= 0 {
		return fmt.Errorf("%w: outlier_fence must be positive, got %f",
			ErrInvalidConfig, cfg.Analysis.OutlierFence)
	}

	if cfg.Analysis.CorrelationWeak < 0 || cfg.Analysis.CorrelationWeak > 1 {
		return fmt.Errorf("%w: correlation_weak must be between 0 and 1, got %f",
			ErrInvalidConfig, cfg.Analysis.CorrelationWeak)
	}

	if cfg.Analysis.CorrelationStrong < 0 || cfg.Analysis.CorrelationStrong > 1 {
		return fmt.Errorf("%w: correlation_strong must be between 0 and 1, got %f",
			ErrInvalidConfig, cfg.Analysis.CorrelationStrong)
	}

	if cfg.Analysis.CorrelationWeak > cfg.Analysis.CorrelationStrong {
		return fmt.Errorf("%w: correlation_weak (%f) must not exceed correlation_strong (%f)",
			ErrInvalidConfig, cfg.Analysis.CorrelationWeak, cfg.Analysis.CorrelationStrong)
	}

	if cfg.Analysis.MaintenanceRatioAlert < 0 {
		return fmt.Errorf("%w: maintenance_ratio_alert must be non-negative, got %f",
			ErrInvalidConfig, cfg.Analysis.MaintenanceRatioAlert)
	}

	if cfg.Analysis.CostConcentrationAlert < 0 || cfg.Analysis.CostConcentrationAlert > 100 {
		return fmt.Errorf("%w: cost_concentration_alert must be between 0 and 100, got %f",
			ErrInvalidConfig, cfg.Analysis.CostConcentrationAlert)
	}

	if cfg.Report.TopN <= 0 {
		return fmt.Errorf("%w: top_n must be positive, got %d",
			ErrInvalidConfig, cfg.Report.TopN)
	}

	if !IsValidFormat(cfg.Output.DefaultFormat) {
		return fmt.Errorf("%w: default_format must be one of %v, got %q",
			ErrInvalidConfig, ValidFormats, cfg.Output.DefaultFormat)
	}

	return nil
}

// SaveDefault writes the default configuration to .finlens/config.yaml in
// workDir. Creates the .finlens directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# finlens configuration\n# See https://github.com/hargabyte/finlens for documentation\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
