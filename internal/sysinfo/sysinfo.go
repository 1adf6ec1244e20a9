package sysinfo

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"

	"github.com/lte-simulator/simctl/internal/verify"
)

const (
	ipForwardPath = "/proc/sys/net/ipv4/ip_forward"
	sctpEpsPath   = "/proc/net/sctp/eps"
)

// SystemProbe implements verify.SystemProbe against the live host.
type SystemProbe struct{}

// NewSystemProbe creates a host-backed system probe.
func NewSystemProbe() *SystemProbe {
	return &SystemProbe{}
}

// Compile-time assertion that SystemProbe implements verify.SystemProbe
var _ verify.SystemProbe = (*SystemProbe)(nil)

// Host returns the distribution identity and kernel release.
func (p *SystemProbe) Host() (verify.HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return verify.HostInfo{}, err
	}
	return verify.HostInfo{
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
	}, nil
}

// Memory returns installed memory.
func (p *SystemProbe) Memory() (verify.MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return verify.MemoryInfo{}, err
	}
	return verify.MemoryInfo{TotalBytes: vm.Total}, nil
}

// Disk returns free space on the volume holding path. When the path does not
// exist yet the root volume is measured instead.
func (p *SystemProbe) Disk(path string) (verify.DiskInfo, error) {
	if _, err := os.Stat(path); err != nil {
		path = "/"
	}
	usage, err := disk.Usage(path)
	if err != nil {
		return verify.DiskInfo{}, err
	}
	return verify.DiskInfo{FreeBytes: usage.Free}, nil
}

// CPUCount returns the logical core count.
func (p *SystemProbe) CPUCount() (int, error) {
	return cpu.Counts(true)
}

// BoundPorts returns listening TCP sockets, bound UDP sockets, and SCTP
// endpoints. An unreadable SCTP table (no SCTP module loaded) is treated as
// no SCTP endpoints.
func (p *SystemProbe) BoundPorts() ([]verify.Port, error) {
	conns, err := gopsnet.Connections("inet")
	if err != nil {
		return nil, err
	}

	ports := make([]verify.Port, 0, len(conns))
	for _, conn := range conns {
		switch conn.Type {
		case syscall.SOCK_STREAM:
			if conn.Status == "LISTEN" {
				ports = append(ports, verify.Port{Proto: "tcp", Number: conn.Laddr.Port})
			}
		case syscall.SOCK_DGRAM:
			ports = append(ports, verify.Port{Proto: "udp", Number: conn.Laddr.Port})
		}
	}

	if file, err := os.Open(sctpEpsPath); err == nil {
		defer func() { _ = file.Close() }()
		for _, port := range parseSCTPEndpoints(file) {
			ports = append(ports, verify.Port{Proto: "sctp", Number: port})
		}
	}

	return ports, nil
}

// IPForwarding reads net.ipv4.ip_forward.
func (p *SystemProbe) IPForwarding() (bool, error) {
	data, err := os.ReadFile(ipForwardPath)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(data)) == "1", nil
}

// FileExists reports whether path names an existing regular file.
func (p *SystemProbe) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path names an existing directory.
func (p *SystemProbe) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// parseSCTPEndpoints extracts local ports from /proc/net/sctp/eps content.
// The table has a header row; LPORT is the sixth column.
func parseSCTPEndpoints(r io.Reader) []uint32 {
	var ports []uint32
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}
		port, err := strconv.ParseUint(fields[5], 10, 32)
		if err != nil {
			continue
		}
		ports = append(ports, uint32(port))
	}
	return ports
}
