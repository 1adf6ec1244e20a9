package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Load merges LoadBaseline() defaults + env overrides (SIMCTL_*) + optional
// simctl.json, then validates the result.
func Load() (*Config, error) {
	config := LoadBaseline()

	applyEnvOverrides(config)

	// Try to load from simctl.json if it exists
	if _, err := os.Stat("simctl.json"); err == nil {
		fileConfig, err := loadFromFile("simctl.json")
		if err != nil {
			return nil, fmt.Errorf("failed to load simctl.json: %w", err)
		}
		config = mergeConfigs(config, fileConfig)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies SIMCTL_* environment variables to the config.
func applyEnvOverrides(config *Config) {
	config.ProjectDir = GetEnvVar("SIMCTL_PROJECT_DIR", config.ProjectDir)
	config.ConfigDir = GetEnvVar("SIMCTL_CONFIG_DIR", config.ConfigDir)
	config.LogDir = GetEnvVar("SIMCTL_LOG_DIR", config.LogDir)
	config.DataDir = GetEnvVar("SIMCTL_DATA_DIR", config.DataDir)
	config.RunDir = GetEnvVar("SIMCTL_RUN_DIR", config.RunDir)

	config.CoreNetworkBin = GetEnvVar("SIMCTL_CORE_NETWORK_BIN", config.CoreNetworkBin)
	config.RadioNodeBin = GetEnvVar("SIMCTL_RADIO_NODE_BIN", config.RadioNodeBin)
	config.CoreNetworkConfig = GetEnvVar("SIMCTL_CORE_NETWORK_CONFIG", config.CoreNetworkConfig)
	config.RadioNodeConfig = GetEnvVar("SIMCTL_RADIO_NODE_CONFIG", config.RadioNodeConfig)

	config.SettleInterval = GetEnvDuration("SIMCTL_SETTLE_INTERVAL", config.SettleInterval)
	config.GraceInterval = GetEnvDuration("SIMCTL_GRACE_INTERVAL", config.GraceInterval)

	config.MinMemoryMiB = GetEnvUint("SIMCTL_MIN_MEMORY_MIB", config.MinMemoryMiB)
	config.RecommendedMemoryMiB = GetEnvUint("SIMCTL_RECOMMENDED_MEMORY_MIB", config.RecommendedMemoryMiB)
	config.MinDiskGiB = GetEnvUint("SIMCTL_MIN_DISK_GIB", config.MinDiskGiB)
	config.RecommendedDiskGiB = GetEnvUint("SIMCTL_RECOMMENDED_DISK_GIB", config.RecommendedDiskGiB)
	config.RecommendedCores = GetEnvInt("SIMCTL_RECOMMENDED_CORES", config.RecommendedCores)
}

// loadFromFile loads configuration from a JSON file.
func loadFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// mergeConfigs merges file configuration with current configuration.
// File values take precedence over current values; zero values in the file
// leave the current value untouched.
func mergeConfigs(current, file *Config) *Config {
	merged := *current

	if file.ProjectDir != "" {
		merged.ProjectDir = file.ProjectDir
	}
	if file.ConfigDir != "" {
		merged.ConfigDir = file.ConfigDir
	}
	if file.LogDir != "" {
		merged.LogDir = file.LogDir
	}
	if file.DataDir != "" {
		merged.DataDir = file.DataDir
	}
	if file.RunDir != "" {
		merged.RunDir = file.RunDir
	}
	if file.CoreNetworkBin != "" {
		merged.CoreNetworkBin = file.CoreNetworkBin
	}
	if file.RadioNodeBin != "" {
		merged.RadioNodeBin = file.RadioNodeBin
	}
	if file.CoreNetworkConfig != "" {
		merged.CoreNetworkConfig = file.CoreNetworkConfig
	}
	if file.RadioNodeConfig != "" {
		merged.RadioNodeConfig = file.RadioNodeConfig
	}
	if file.SettleInterval != 0 {
		merged.SettleInterval = file.SettleInterval
	}
	if file.GraceInterval != 0 {
		merged.GraceInterval = file.GraceInterval
	}
	if file.MinMemoryMiB != 0 {
		merged.MinMemoryMiB = file.MinMemoryMiB
	}
	if file.RecommendedMemoryMiB != 0 {
		merged.RecommendedMemoryMiB = file.RecommendedMemoryMiB
	}
	if file.MinDiskGiB != 0 {
		merged.MinDiskGiB = file.MinDiskGiB
	}
	if file.RecommendedDiskGiB != 0 {
		merged.RecommendedDiskGiB = file.RecommendedDiskGiB
	}
	if file.RecommendedCores != 0 {
		merged.RecommendedCores = file.RecommendedCores
	}

	return &merged
}

// GetEnvVar returns the value of an environment variable with a default.
func GetEnvVar(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvDuration returns the value of an environment variable as a duration with a default.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvUint returns the value of an environment variable as a uint64 with a default.
func GetEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

// GetEnvInt returns the value of an environment variable as an int with a default.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
