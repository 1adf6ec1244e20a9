// Package lifecycle defines ports (interfaces) for orchestrator operations.
package lifecycle

import (
	"context"
	"time"
)

// ProcessRunner spawns, probes, and signals operating-system processes.
type ProcessRunner interface {
	// Spawn launches the role's executable with its configuration file and
	// returns the child's pid. The child is detached into its own session
	// with output redirected to the role's process log.
	Spawn(ctx context.Context, spec RoleSpec) (int, error)

	// Alive reports whether a process with the given pid exists.
	Alive(pid int) bool

	// Terminate delivers the graceful termination signal.
	Terminate(pid int) error

	// Kill delivers the forced termination signal.
	Kill(pid int) error

	// KillByName force-terminates every process whose executable name
	// matches, returning the number of processes signaled. Absence is not
	// an error.
	KillByName(ctx context.Context, name string) (int, error)
}

// AuditLogger interface for writing lifecycle audit records.
type AuditLogger interface {
	LogLifecycleAction(action string, role string, pid int, outcome string, latency time.Duration)
}
