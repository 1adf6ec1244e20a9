package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

// ExecRunner implements ProcessRunner with os/exec and gopsutil.
type ExecRunner struct{}

// NewExecRunner creates a host-backed process runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Compile-time assertion that ExecRunner implements ProcessRunner
var _ ProcessRunner = (*ExecRunner)(nil)

// Spawn launches the role's executable with its configuration file as the
// single argument. The child gets its own session so signals aimed at simctl
// never reach the daemons, and its output goes to the role's process log.
func (r *ExecRunner) Spawn(ctx context.Context, spec RoleSpec) (int, error) {
	if err := os.MkdirAll(filepath.Dir(spec.LogPath), 0755); err != nil {
		return 0, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(spec.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("open process log: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	cmd := exec.Command(spec.Executable, spec.ConfigPath)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid

	// Reap the child when it exits so it never lingers as a zombie while
	// simctl is still running.
	go func() { _ = cmd.Wait() }()

	return pid, nil
}

// Alive reports whether a process with the given pid exists.
func (r *ExecRunner) Alive(pid int) bool {
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}

// Terminate delivers SIGTERM.
func (r *ExecRunner) Terminate(pid int) error {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return proc.Terminate()
}

// Kill delivers SIGKILL.
func (r *ExecRunner) Kill(pid int) error {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return proc.Kill()
}

// KillByName force-terminates every process whose executable name matches.
// Processes that disappear mid-walk are skipped.
func (r *ExecRunner) KillByName(ctx context.Context, name string) (int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	killed := 0
	for _, proc := range procs {
		if int(proc.Pid) == self {
			continue
		}
		procName, err := proc.NameWithContext(ctx)
		if err != nil || procName != name {
			continue
		}
		if err := proc.KillWithContext(ctx); err != nil {
			continue
		}
		killed++
	}
	return killed, nil
}
