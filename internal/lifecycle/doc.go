// Package lifecycle implements the service lifecycle orchestrator for the
// two simulator daemons.
//
// The core network (srsepc) starts first and stops last; the radio node
// (srsenb) depends on the core network's S1AP listener and is started second
// and signaled first on shutdown. Each spawned daemon is recorded in a PID
// file which is the single source of truth for "role believed running".
// Shutdown escalates from SIGTERM to SIGKILL after a bounded grace interval
// and ends with a best-effort sweep of leftover processes by executable name.
package lifecycle
