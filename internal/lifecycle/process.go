package lifecycle

import (
	"path/filepath"

	"github.com/lte-simulator/simctl/internal/config"
)

// Role identifies one of the two managed daemons.
type Role string

const (
	// RoleCoreNetwork is the control-plane daemon, started first and
	// stopped last.
	RoleCoreNetwork Role = "CORE_NETWORK"
	// RoleRadioNode is the dependent daemon, started second and stopped
	// first.
	RoleRadioNode Role = "RADIO_NODE"
)

// State describes the observable lifecycle state of a managed daemon.
type State string

const (
	StateNotRunning     State = "NOT_RUNNING"
	StateRunning        State = "RUNNING"
	StateStopping       State = "STOPPING"
	StateStoppingForced State = "STOPPING_FORCED"
	StateStopped        State = "STOPPED"
)

// RoleSpec binds a role to its executable, configuration file, and records.
type RoleSpec struct {
	Role       Role
	Executable string
	ConfigPath string
	LogPath    string
	// RecordName keys the PID file and the process log for this role.
	RecordName string
}

// ProcessStatus is one row of a status query.
type ProcessStatus struct {
	Role  Role   `json:"role"`
	State State  `json:"state"`
	PID   int    `json:"pid,omitempty"`
	Stale bool   `json:"stale,omitempty"`
	Name  string `json:"name"`
}

// roleSpecs returns the role table in start order.
func roleSpecs(cfg *config.Config) []RoleSpec {
	coreName := filepath.Base(cfg.CoreNetworkBin)
	radioName := filepath.Base(cfg.RadioNodeBin)
	return []RoleSpec{
		{
			Role:       RoleCoreNetwork,
			Executable: cfg.CoreNetworkBin,
			ConfigPath: cfg.CoreNetworkConfig,
			LogPath:    filepath.Join(cfg.LogDir, coreName+"_process.log"),
			RecordName: coreName,
		},
		{
			Role:       RoleRadioNode,
			Executable: cfg.RadioNodeBin,
			ConfigPath: cfg.RadioNodeConfig,
			LogPath:    filepath.Join(cfg.LogDir, radioName+"_process.log"),
			RecordName: radioName,
		},
	}
}
