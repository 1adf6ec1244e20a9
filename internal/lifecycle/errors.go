package lifecycle

import (
	"errors"
	"fmt"
)

// Normalized lifecycle error codes.
var (
	// ErrSpawn indicates a daemon executable could not be launched.
	ErrSpawn = errors.New("SPAWN_FAILED")
	// ErrSignal indicates a termination signal could not be delivered.
	ErrSignal = errors.New("SIGNAL_FAILED")
)

// SpawnError wraps a launch failure with the role that failed.
type SpawnError struct {
	Role     Role
	Original error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%v: %s (%v)", ErrSpawn, e.Role, e.Original)
}

func (e *SpawnError) Unwrap() error {
	return ErrSpawn
}

// SignalError wraps a signal delivery failure with the role and pid.
type SignalError struct {
	Role     Role
	PID      int
	Original error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("%v: %s pid %d (%v)", ErrSignal, e.Role, e.PID, e.Original)
}

func (e *SignalError) Unwrap() error {
	return ErrSignal
}
