// Package sysinfo implements the verify package's environment ports against
// the live host.
//
// Host identity and resource facts come from gopsutil; tool invocation goes
// through os/exec; user identity through os/user. SCTP endpoints are parsed
// directly from /proc/net/sctp since gopsutil only covers inet sockets.
package sysinfo
