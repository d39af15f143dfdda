package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MarginRatio:            0.30,
			OutlierFence:           1.5,
			CorrelationWeak:        0.3,
			CorrelationStrong:      0.7,
			MaintenanceRatioAlert:  15.0,
			CostConcentrationAlert: 40.0,
		},
		Report: ReportConfig{
			Currency: "RUB",
			TopN:     10,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Analysis = mergeAnalysisConfig(loaded.Analysis, defaults.Analysis)
	result.Report = mergeReportConfig(loaded.Report, defaults.Report)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)

	return result
}

func mergeAnalysisConfig(loaded, defaults AnalysisConfig) AnalysisConfig {
	result := AnalysisConfig{}

	// MarginRatio: use loaded if non-zero
	if loaded.MarginRatio != 0 {
		result.MarginRatio = loaded.MarginRatio
	} else {
		result.MarginRatio = defaults.MarginRatio
	}

	// OutlierFence: use loaded if non-zero
	if loaded.OutlierFence != 0 {
		result.OutlierFence = loaded.OutlierFence
	} else {
		result.OutlierFence = defaults.OutlierFence
	}

	// CorrelationWeak: use loaded if non-zero
	if loaded.CorrelationWeak != 0 {
		result.CorrelationWeak = loaded.CorrelationWeak
	} else {
		result.CorrelationWeak = defaults.CorrelationWeak
	}

	// CorrelationStrong: use loaded if non-zero
	if loaded.CorrelationStrong != 0 {
		result.CorrelationStrong = loaded.CorrelationStrong
	} else {
		result.CorrelationStrong = defaults.CorrelationStrong
	}

	// MaintenanceRatioAlert: use loaded if non-zero
	if loaded.MaintenanceRatioAlert != 0 {
		result.MaintenanceRatioAlert = loaded.MaintenanceRatioAlert
	} else {
		result.MaintenanceRatioAlert = defaults.MaintenanceRatioAlert
	}

	// CostConcentrationAlert: use loaded if non-zero
	if loaded.CostConcentrationAlert != 0 {
		result.CostConcentrationAlert = loaded.CostConcentrationAlert
	} else {
		result.CostConcentrationAlert = defaults.CostConcentrationAlert
	}

	return result
}

func mergeReportConfig(loaded, defaults ReportConfig) ReportConfig {
	result := ReportConfig{}

	// Currency: use loaded if non-empty
	if loaded.Currency != "" {
		result.Currency = loaded.Currency
	} else {
		result.Currency = defaults.Currency
	}

	// TopN: use loaded if non-zero
	if loaded.TopN != 0 {
		result.TopN = loaded.TopN
	} else {
		result.TopN = defaults.TopN
	}

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	// DefaultFormat: use loaded if non-empty
	if loaded.DefaultFormat != "" {
		result.DefaultFormat = loaded.DefaultFormat
	} else {
		result.DefaultFormat = defaults.DefaultFormat
	}

	return result
}

// ValidFormats lists the valid values for output format
var ValidFormats = []string{"text", "yaml", "json"}

// IsValidFormat checks if the given format value is valid
func IsValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}
