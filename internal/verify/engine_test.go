package verify

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lte-simulator/simctl/internal/config"
	"github.com/lte-simulator/simctl/internal/usb"
)

// fakeSystem is a canned SystemProbe for testing.
type fakeSystem struct {
	host    HostInfo
	hostErr error

	memoryBytes uint64
	memErr      error

	diskFreeBytes uint64
	diskErr       error

	cores    int
	coresErr error

	ports    []Port
	portsErr error

	ipForward bool
	ipErr     error

	files map[string]bool
	dirs  map[string]bool
}

func (f *fakeSystem) Host() (HostInfo, error) { return f.host, f.hostErr }
func (f *fakeSystem) Memory() (MemoryInfo, error) {
	return MemoryInfo{TotalBytes: f.memoryBytes}, f.memErr
}
func (f *fakeSystem) Disk(path string) (DiskInfo, error) {
	return DiskInfo{FreeBytes: f.diskFreeBytes}, f.diskErr
}
func (f *fakeSystem) CPUCount() (int, error) { return f.cores, f.coresErr }
func (f *fakeSystem) BoundPorts() ([]Port, error) { return f.ports, f.portsErr }
func (f *fakeSystem) IPForwarding() (bool, error) { return f.ipForward, f.ipErr }
func (f *fakeSystem) FileExists(path string) bool { return f.files[path] }
func (f *fakeSystem) DirExists(path string) bool { return f.dirs[path] }

// fakeTools is a canned ToolProbe for testing.
type fakeTools struct {
	paths      map[string]string
	runOutputs map[string]string
	runErrs    map[string]error
}

func (f *fakeTools) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeTools) Run(ctx context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := f.runErrs[key]; ok {
		return f.runOutputs[key], err
	}
	if output, ok := f.runOutputs[key]; ok {
		return output, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

// fakeUser is a canned UserProbe for testing.
type fakeUser struct {
	uid       int
	username  string
	groups    []string
	groupsErr error
	osGroups  map[string]bool
}

func (f *fakeUser) UID() int { return f.uid }
func (f *fakeUser) Username() string { return f.username }
func (f *fakeUser) Groups() ([]string, error) {
	return f.groups, f.groupsErr
}
func (f *fakeUser) GroupExists(name string) (bool, error) {
	return f.osGroups[name], nil
}

// fakeEnumerator is a canned usb.Enumerator for testing.
type fakeEnumerator struct {
	devices []usb.Device
	err     error
}

func (f *fakeEnumerator) Devices() ([]usb.Device, error) {
	return f.devices, f.err
}

// testEnv bundles a fully healthy fake environment.
type testEnv struct {
	cfg     *config.Config
	system  *fakeSystem
	tools   *fakeTools
	user    *fakeUser
	devices *fakeEnumerator
}

func (e *testEnv) engine() *Engine {
	return NewEngine(e.cfg, e.system, e.tools, e.user, e.devices)
}

// readyEnvironment returns an environment that passes every catalog check.
func readyEnvironment() *testEnv {
	cfg := config.LoadBaseline()

	return &testEnv{
		cfg: cfg,
		system: &fakeSystem{
			host: HostInfo{
				Platform:        "ubuntu",
				PlatformVersion: "22.04",
				KernelVersion:   "5.15.0-91-generic",
			},
			memoryBytes:   8 << 30,
			diskFreeBytes: 50 << 30,
			cores:         8,
			ipForward:     true,
			files: map[string]bool{
				filepath.Join(cfg.ProjectDir, "docker-compose.yml"): true,
				filepath.Join(cfg.ProjectDir, "Dockerfile"):         true,
				cfg.CoreNetworkConfig:                               true,
				cfg.RadioNodeConfig:                                 true,
				UdevRulesPath:                                       true,
			},
			dirs: map[string]bool{
				cfg.ConfigDir: true,
				cfg.LogDir:    true,
				cfg.DataDir:   true,
			},
		},
		tools: &fakeTools{
			paths: map[string]string{
				"docker":           "/usr/bin/docker",
				"uhd_find_devices": "/usr/bin/uhd_find_devices",
				"python3":          "/usr/bin/python3",
			},
			runOutputs: map[string]string{
				"systemctl is-active docker":            "active",
				"docker compose version":                "Docker Compose version v2.24.5",
				"python3 -c import yaml, rich, textual": "",
			},
		},
		user: &fakeUser{
			uid:      1000,
			username: "operator",
			groups:   []string{"operator", "docker", "usrp"},
			osGroups: map[string]bool{"usrp": true},
		},
		devices: &fakeEnumerator{
			devices: []usb.Device{
				{VendorID: "2500", ProductID: "0021", SpeedMbps: 5000, Product: "USRP B210"},
			},
		},
	}
}

func severitiesByName(report Report) map[string]Severity {
	out := make(map[string]Severity, len(report.Results))
	for _, result := range report.Results {
		out[result.Name] = result.Severity
	}
	return out
}

func TestRun_HealthyEnvironmentIsReady(t *testing.T) {
	report := readyEnvironment().engine().Run(context.Background())

	require.Len(t, report.Results, CatalogSize)
	assert.Equal(t, OutcomeReady, report.Outcome)
	assert.Equal(t, 0, report.CriticalCount)
	assert.Equal(t, 0, report.WarningCount)

	for _, result := range report.Results {
		assert.Equal(t, SeverityPass, result.Severity, "check %s: %s", result.Name, result.Message)
	}
}

func TestRun_EmitsOneResultPerCatalogEntry(t *testing.T) {
	// Break as much of the environment as possible; the full battery must
	// still run and produce exactly one result per check.
	env := readyEnvironment()
	env.system.hostErr = errors.New("hostinfo unavailable")
	env.system.memErr = errors.New("meminfo unavailable")
	env.system.diskErr = errors.New("statfs failed")
	env.system.coresErr = errors.New("cpuinfo unavailable")
	env.system.portsErr = errors.New("netlink failed")
	env.system.ipErr = errors.New("procfs unavailable")
	env.system.files = nil
	env.system.dirs = nil
	env.tools.paths = nil
	env.tools.runOutputs = nil
	env.user.groupsErr = errors.New("nss failure")
	env.devices.err = errors.New("sysfs unreadable")

	report := env.engine().Run(context.Background())

	require.Len(t, report.Results, CatalogSize)
	seen := make(map[string]int)
	for _, result := range report.Results {
		seen[result.Name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "check %s emitted %d results", name, count)
	}
	assert.Equal(t, OutcomeNotReady, report.Outcome)
}

func TestRun_ResultOrderMatchesCatalogOrder(t *testing.T) {
	report := readyEnvironment().engine().Run(context.Background())

	want := []string{
		"os-version",
		"kernel-version",
		"docker-service",
		"docker-access",
		"compose-version",
		"uhd-driver",
		"sdr-hardware",
		"usb-speed",
		"udev-rules",
		"usrp-group",
		"memory",
		"disk-space",
		"cpu-cores",
		"project-files",
		"ip-forwarding",
		"network-ports",
		"python-runtime",
	}
	require.Len(t, report.Results, len(want))
	for i, result := range report.Results {
		assert.Equal(t, want[i], result.Name, "position %d", i)
	}
}

// TestRun_DegradedHostScenario pins the exact expected severity set for a
// host with 2 cores, 3 GiB memory, no SDR attached, no container runtime,
// and only legacy docker-compose installed.
func TestRun_DegradedHostScenario(t *testing.T) {
	env := readyEnvironment()
	env.system.cores = 2
	env.system.memoryBytes = 3 << 30
	env.devices.devices = nil
	delete(env.tools.paths, "docker")
	delete(env.tools.runOutputs, "docker compose version")
	env.tools.paths["docker-compose"] = "/usr/local/bin/docker-compose"

	report := env.engine().Run(context.Background())

	want := map[string]Severity{
		"os-version":      SeverityPass,
		"kernel-version":  SeverityPass,
		"docker-service":  SeverityCritical,
		"docker-access":   SeverityPass,
		"compose-version": SeverityWarning,
		"uhd-driver":      SeverityPass,
		"sdr-hardware":    SeverityCritical,
		"usb-speed":       SeverityPass, // skipped, no hardware enumerated
		"udev-rules":      SeverityPass,
		"usrp-group":      SeverityPass,
		"memory":          SeverityWarning,
		"disk-space":      SeverityPass,
		"cpu-cores":       SeverityWarning,
		"project-files":   SeverityPass,
		"ip-forwarding":   SeverityPass,
		"network-ports":   SeverityPass,
		"python-runtime":  SeverityPass,
	}
	assert.Equal(t, want, severitiesByName(report))

	assert.Equal(t, OutcomeNotReady, report.Outcome)
	assert.Equal(t, 2, report.CriticalCount)
	assert.Equal(t, 3, report.WarningCount)
}

func TestRun_WarningsNeverBlockReadiness(t *testing.T) {
	env := readyEnvironment()
	env.system.cores = 2
	env.system.memoryBytes = 3 << 30
	env.system.ipForward = false

	report := env.engine().Run(context.Background())

	assert.Equal(t, 3, report.WarningCount)
	assert.Equal(t, 0, report.CriticalCount)
	assert.Equal(t, OutcomeReady, report.Outcome)
	assert.True(t, report.Ready())
}
