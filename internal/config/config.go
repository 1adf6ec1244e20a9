package config

import (
	"path/filepath"
	"time"
)

// Config holds every tunable the operations container consumes: filesystem
// layout, daemon executables and their configuration files, lifecycle timing,
// and readiness thresholds.
type Config struct {
	// Filesystem layout
	ProjectDir string `json:"projectDir"`
	ConfigDir  string `json:"configDir"`
	LogDir     string `json:"logDir"`
	DataDir    string `json:"dataDir"`
	RunDir     string `json:"runDir"`

	// Managed daemons
	CoreNetworkBin    string `json:"coreNetworkBin"`
	RadioNodeBin      string `json:"radioNodeBin"`
	CoreNetworkConfig string `json:"coreNetworkConfig"`
	RadioNodeConfig   string `json:"radioNodeConfig"`

	// Lifecycle timing
	SettleInterval time.Duration `json:"settleInterval"`
	GraceInterval  time.Duration `json:"graceInterval"`

	// Readiness thresholds
	MinMemoryMiB         uint64 `json:"minMemoryMib"`
	RecommendedMemoryMiB uint64 `json:"recommendedMemoryMib"`
	MinDiskGiB           uint64 `json:"minDiskGib"`
	RecommendedDiskGiB   uint64 `json:"recommendedDiskGib"`
	RecommendedCores     int    `json:"recommendedCores"`
}

// DefaultProjectDir is the installation root of the simulator container.
const DefaultProjectDir = "/opt/lte-simulator"

// LoadBaseline returns the compiled baseline configuration.
func LoadBaseline() *Config {
	return &Config{
		ProjectDir: DefaultProjectDir,
		ConfigDir:  filepath.Join(DefaultProjectDir, "config"),
		LogDir:     filepath.Join(DefaultProjectDir, "logs"),
		DataDir:    filepath.Join(DefaultProjectDir, "data"),
		RunDir:     filepath.Join(DefaultProjectDir, "run"),

		CoreNetworkBin:    "srsepc",
		RadioNodeBin:      "srsenb",
		CoreNetworkConfig: filepath.Join(DefaultProjectDir, "config", "epc.conf"),
		RadioNodeConfig:   filepath.Join(DefaultProjectDir, "config", "enb.conf"),

		// The core network needs time to bring up its S1AP listener before
		// the radio node attempts to connect.
		SettleInterval: 2 * time.Second,
		GraceInterval:  5 * time.Second,

		MinMemoryMiB:         2048,
		RecommendedMemoryMiB: 4096,
		MinDiskGiB:           10,
		RecommendedDiskGiB:   20,
		RecommendedCores:     4,
	}
}

// PIDFilePath returns the PID file path for a daemon name under the run dir.
func (c *Config) PIDFilePath(name string) string {
	return filepath.Join(c.RunDir, name+".pid")
}
