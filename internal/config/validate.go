package config

import (
	"fmt"
)

// Validate enforces configuration invariants before the container acts on them.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validatePaths(config); err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}

	if err := validateTiming(config); err != nil {
		return fmt.Errorf("timing validation failed: %w", err)
	}

	if err := validateThresholds(config); err != nil {
		return fmt.Errorf("threshold validation failed: %w", err)
	}

	return nil
}

// validatePaths validates the filesystem layout and daemon references.
func validatePaths(config *Config) error {
	if config.ProjectDir == "" {
		return fmt.Errorf("project dir must not be empty")
	}
	for name, dir := range map[string]string{
		"config dir": config.ConfigDir,
		"log dir":    config.LogDir,
		"data dir":   config.DataDir,
		"run dir":    config.RunDir,
	} {
		if dir == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	if config.CoreNetworkBin == "" {
		return fmt.Errorf("core network executable must not be empty")
	}
	if config.RadioNodeBin == "" {
		return fmt.Errorf("radio node executable must not be empty")
	}
	if config.CoreNetworkBin == config.RadioNodeBin {
		return fmt.Errorf("core network and radio node must be distinct executables, both are %q", config.CoreNetworkBin)
	}
	if config.CoreNetworkConfig == "" {
		return fmt.Errorf("core network config path must not be empty")
	}
	if config.RadioNodeConfig == "" {
		return fmt.Errorf("radio node config path must not be empty")
	}

	return nil
}

// validateTiming validates lifecycle timing parameters.
func validateTiming(config *Config) error {
	if config.SettleInterval <= 0 {
		return fmt.Errorf("settle interval must be positive, got %v", config.SettleInterval)
	}
	if config.GraceInterval <= 0 {
		return fmt.Errorf("grace interval must be positive, got %v", config.GraceInterval)
	}
	return nil
}

// validateThresholds validates readiness thresholds.
func validateThresholds(config *Config) error {
	if config.MinMemoryMiB == 0 {
		return fmt.Errorf("minimum memory must be positive")
	}
	if config.RecommendedMemoryMiB < config.MinMemoryMiB {
		return fmt.Errorf("recommended memory %d MiB must be >= minimum %d MiB",
			config.RecommendedMemoryMiB, config.MinMemoryMiB)
	}
	if config.MinDiskGiB == 0 {
		return fmt.Errorf("minimum disk space must be positive")
	}
	if config.RecommendedDiskGiB < config.MinDiskGiB {
		return fmt.Errorf("recommended disk space %d GiB must be >= minimum %d GiB",
			config.RecommendedDiskGiB, config.MinDiskGiB)
	}
	if config.RecommendedCores <= 0 {
		return fmt.Errorf("recommended core count must be positive, got %d", config.RecommendedCores)
	}
	return nil
}
