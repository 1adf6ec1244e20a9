// Package verify defines ports (interfaces) over the host environment.
package verify

import (
	"context"
)

// HostInfo describes the operating system identity.
type HostInfo struct {
	// Platform is the lowercase distribution id, e.g. "ubuntu".
	Platform string
	// PlatformVersion is the distribution release, e.g. "22.04".
	PlatformVersion string
	// KernelVersion is the running kernel release, e.g. "5.15.0-91-generic".
	KernelVersion string
}

// MemoryInfo describes installed memory.
type MemoryInfo struct {
	TotalBytes uint64
}

// DiskInfo describes free space on a volume.
type DiskInfo struct {
	FreeBytes uint64
}

// Port identifies a bound transport endpoint.
type Port struct {
	Proto  string // "tcp", "udp", or "sctp"
	Number uint32
}

// SystemProbe reads facts about the host: identity, resources, network
// state, and filesystem presence. All methods are read-only.
type SystemProbe interface {
	Host() (HostInfo, error)
	Memory() (MemoryInfo, error)
	Disk(path string) (DiskInfo, error)
	CPUCount() (int, error)
	BoundPorts() ([]Port, error)
	IPForwarding() (bool, error)
	FileExists(path string) bool
	DirExists(path string) bool
}

// ToolProbe locates and invokes external tools.
type ToolProbe interface {
	// LookPath reports the resolved path of an executable on the search
	// path, or an error when it is absent.
	LookPath(name string) (string, error)
	// Run invokes a tool and returns its combined output. A non-nil error
	// with non-empty output means the tool ran but exited non-zero.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// UserProbe reads the identity of the invoking user.
type UserProbe interface {
	UID() int
	Username() string
	// Groups returns the names of the groups the current user belongs to.
	Groups() ([]string, error)
	// GroupExists reports whether a named OS group is defined.
	GroupExists(name string) (bool, error)
}
