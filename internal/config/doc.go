// Package config implements the configuration store for the LTE Simulator
// operations container.
//
// Configuration is resolved in three layers: compiled baseline defaults,
// SIMCTL_* environment overrides, and an optional simctl.json file in the
// working directory. The merged result is validated before use.
package config
