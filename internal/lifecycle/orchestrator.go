package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/lte-simulator/simctl/internal/config"
	"github.com/lte-simulator/simctl/internal/pidfile"
)

// Orchestrator starts and stops the managed daemons in dependency order.
type Orchestrator struct {
	cfg    *config.Config
	runner ProcessRunner
	store  *pidfile.Store

	// Audit logger (optional)
	auditLogger AuditLogger
}

// NewOrchestrator creates a lifecycle orchestrator.
func NewOrchestrator(cfg *config.Config, runner ProcessRunner, store *pidfile.Store) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		runner: runner,
		store:  store,
	}
}

// SetAuditLogger sets the audit logger for lifecycle actions.
func (o *Orchestrator) SetAuditLogger(logger AuditLogger) {
	o.auditLogger = logger
}

// Start launches the core network, waits the settle interval for its
// listeners to come up, then launches the radio node. Each spawn is recorded
// in the role's PID file before the next stage proceeds. Any failure rolls
// back whatever was already started; Start never leaves a running process
// without a record.
func (o *Orchestrator) Start(ctx context.Context) error {
	specs := roleSpecs(o.cfg)

	for i, spec := range specs {
		started := time.Now()

		pid, err := o.runner.Spawn(ctx, spec)
		if err != nil {
			o.logAudit("start", spec.Role, 0, "SPAWN_FAILED", time.Since(started))
			o.rollback()
			return &SpawnError{Role: spec.Role, Original: err}
		}

		if err := o.store.Write(spec.RecordName, pid); err != nil {
			// The child is running but unrecorded; kill it before
			// rolling back so nothing escapes the records.
			_ = o.runner.Kill(pid)
			o.logAudit("start", spec.Role, pid, "RECORD_FAILED", time.Since(started))
			o.rollback()
			return &SpawnError{Role: spec.Role, Original: err}
		}

		o.logAudit("start", spec.Role, pid, "SUCCESS", time.Since(started))

		if i < len(specs)-1 {
			if err := sleepContext(ctx, o.cfg.SettleInterval); err != nil {
				o.rollback()
				return err
			}
		}
	}

	return nil
}

// Stop signals the radio node first and the core network second, escalating
// from graceful to forced termination after the grace interval, then sweeps
// leftover processes by executable name. Missing PID files mean the role is
// already stopped; Stop on empty state is a no-op. A signal failure on one
// role never prevents processing of the other role or the sweep.
func (o *Orchestrator) Stop(ctx context.Context) error {
	specs := roleSpecs(o.cfg)

	var firstErr error
	for i := len(specs) - 1; i >= 0; i-- {
		if err := o.stopRole(ctx, specs[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// Defensive sweep against orphans from a previous orchestrator
	// instance that lost its PID files.
	for _, spec := range specs {
		killed, err := o.runner.KillByName(ctx, spec.RecordName)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if killed > 0 {
			o.logAudit("sweep", spec.Role, 0, "KILLED_LEFTOVERS", 0)
		}
	}

	return firstErr
}

// Status derives per-role state from the PID records and a liveness probe.
func (o *Orchestrator) Status() []ProcessStatus {
	specs := roleSpecs(o.cfg)
	statuses := make([]ProcessStatus, 0, len(specs))

	for _, spec := range specs {
		status := ProcessStatus{
			Role:  spec.Role,
			State: StateNotRunning,
			Name:  spec.RecordName,
		}

		pid, err := o.store.Read(spec.RecordName)
		if err == nil {
			if o.runner.Alive(pid) {
				status.State = StateRunning
				status.PID = pid
			} else {
				// Record present but the process is gone.
				status.PID = pid
				status.Stale = true
			}
		}

		statuses = append(statuses, status)
	}
	return statuses
}

// stopRole runs the graceful-then-forced termination protocol for one role.
// The PID file is removed on every path.
func (o *Orchestrator) stopRole(ctx context.Context, spec RoleSpec) error {
	started := time.Now()

	pid, err := o.store.Read(spec.RecordName)
	if errors.Is(err, pidfile.ErrNotFound) {
		// Already stopped.
		return nil
	}
	if err != nil {
		// Malformed record from a crashed or incompatible writer; clear
		// it and treat the role as not running.
		_ = o.store.Remove(spec.RecordName)
		o.logAudit("stop", spec.Role, 0, "STALE_RECORD", time.Since(started))
		return nil
	}

	var signalErr error
	outcome := "ALREADY_DEAD"

	if o.runner.Alive(pid) {
		if err := o.runner.Terminate(pid); err != nil {
			signalErr = &SignalError{Role: spec.Role, PID: pid, Original: err}
			outcome = "TERMINATE_FAILED"
		} else {
			o.awaitExit(ctx, pid)
			if o.runner.Alive(pid) {
				if err := o.runner.Kill(pid); err != nil {
					signalErr = &SignalError{Role: spec.Role, PID: pid, Original: err}
					outcome = "KILL_FAILED"
				} else {
					outcome = "FORCED"
				}
			} else {
				outcome = "GRACEFUL"
			}
		}
	}

	_ = o.store.Remove(spec.RecordName)
	o.logAudit("stop", spec.Role, pid, outcome, time.Since(started))
	return signalErr
}

// awaitExit polls for process exit until the grace interval elapses.
func (o *Orchestrator) awaitExit(ctx context.Context, pid int) {
	const pollInterval = 100 * time.Millisecond

	deadline := time.Now().Add(o.cfg.GraceInterval)
	for time.Now().Before(deadline) {
		if !o.runner.Alive(pid) {
			return
		}
		interval := pollInterval
		if remaining := time.Until(deadline); remaining < interval {
			interval = remaining
		}
		if err := sleepContext(ctx, interval); err != nil {
			return
		}
	}
}

// rollback tears down whatever a failed Start already launched. It runs with
// a fresh context so a canceled Start still cleans up.
func (o *Orchestrator) rollback() {
	_ = o.Stop(context.Background())
}

// logAudit writes an audit record when a logger is configured.
func (o *Orchestrator) logAudit(action string, role Role, pid int, outcome string, latency time.Duration) {
	if o.auditLogger == nil {
		return
	}
	o.auditLogger.LogLifecycleAction(action, string(role), pid, outcome, latency)
}

// sleepContext blocks for the duration or until the context is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
