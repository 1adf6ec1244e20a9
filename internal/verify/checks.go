package verify

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Host environment constants for the LTE simulator deployment.
const (
	// Supported distribution and release window.
	SupportedPlatform  = "ubuntu"
	MinOSVersion       = "20.04"
	MaxTestedOSVersion = "22.04"

	// Kernel generations before 5.x predate the USB/UHD fixes the B-series
	// front end relies on.
	MinKernelMajor = 5

	// Ettus Research USB vendor id and the supported B-series product ids.
	EttusVendorID = "2500"

	// USB 3.0 SuperSpeed link rate; the B210 falls back to 480 Mb/s on
	// USB 2.0 ports, which limits usable bandwidth.
	RecommendedUSBSpeedMbps = 5000

	// UHD device access rule installed by setup.
	UdevRulesPath = "/etc/udev/rules.d/uhd-usrp.rules"

	// Group granting unprivileged access to the SDR.
	USRPGroup = "usrp"

	// Group granting passwordless access to the container runtime.
	DockerGroup = "docker"
)

// BSeriesProductIDs are the B200, B210, and B200mini product ids.
var BSeriesProductIDs = []string{"0020", "0021", "0022"}

// ReservedPorts are the daemon listening endpoints that must be free before
// the network starts.
var ReservedPorts = []Port{
	{Proto: "sctp", Number: 36412}, // S1AP (MME)
	{Proto: "udp", Number: 2152},   // GTP-U (SPGW)
	{Proto: "udp", Number: 2123},   // GTP-C
}

// PythonModules are the host-side TUI dependencies probed by python-runtime.
var PythonModules = []string{"yaml", "rich", "textual"}

// checkOSVersion verifies the distribution identity and release.
func (e *Engine) checkOSVersion(ctx context.Context) CheckResult {
	const name = "os-version"

	host, err := e.system.Host()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to determine OS identity: %v", err))
	}

	if !strings.EqualFold(host.Platform, SupportedPlatform) {
		return critical(name, fmt.Sprintf("unsupported OS %q; only %s %s+ is supported",
			host.Platform, SupportedPlatform, MinOSVersion))
	}

	version, err := semver.NewVersion(host.PlatformVersion)
	if err != nil {
		return warn(name, fmt.Sprintf("unable to parse OS version %q: %v", host.PlatformVersion, err))
	}

	minVersion := semver.MustParse(MinOSVersion)
	maxTested := semver.MustParse(MaxTestedOSVersion)

	switch {
	case version.LessThan(minVersion):
		return critical(name, fmt.Sprintf("%s %s is older than minimum supported %s; upgrade the host",
			SupportedPlatform, host.PlatformVersion, MinOSVersion))
	case version.GreaterThan(maxTested):
		return warn(name, fmt.Sprintf("%s %s is newer than the tested release %s; proceed with caution",
			SupportedPlatform, host.PlatformVersion, MaxTestedOSVersion))
	default:
		return pass(name, fmt.Sprintf("%s %s", SupportedPlatform, host.PlatformVersion))
	}
}

// checkKernelVersion reports the kernel generation. Informational: never CRITICAL.
func (e *Engine) checkKernelVersion(ctx context.Context) CheckResult {
	const name = "kernel-version"

	host, err := e.system.Host()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to determine kernel version: %v", err))
	}

	version, err := semver.NewVersion(host.KernelVersion)
	if err != nil {
		return warn(name, fmt.Sprintf("unable to parse kernel version %q: %v", host.KernelVersion, err))
	}

	if version.Major() < MinKernelMajor {
		return warn(name, fmt.Sprintf("kernel %s predates the %d.x generation; USB throughput may suffer",
			host.KernelVersion, MinKernelMajor))
	}
	return pass(name, fmt.Sprintf("kernel %s", host.KernelVersion))
}

// checkDockerService verifies the container runtime binary and its service.
func (e *Engine) checkDockerService(ctx context.Context) CheckResult {
	const name = "docker-service"

	if _, err := e.tools.LookPath("docker"); err != nil {
		return critical(name, "docker binary not found; install Docker Engine")
	}

	output, err := e.tools.Run(ctx, "systemctl", "is-active", "docker")
	state := strings.TrimSpace(output)
	if err != nil && state == "" {
		// systemctl itself unavailable; the binary exists so presence is
		// established, but the service state is unknown.
		return warn(name, fmt.Sprintf("unable to query docker service state: %v", err))
	}
	if state != "active" {
		return critical(name, fmt.Sprintf("docker service is %q; run: sudo systemctl start docker", state))
	}
	return pass(name, "docker service is active")
}

// checkDockerAccess verifies passwordless access to the container runtime.
func (e *Engine) checkDockerAccess(ctx context.Context) CheckResult {
	const name = "docker-access"

	if e.user.UID() == 0 {
		return pass(name, "running as root")
	}

	groups, err := e.user.Groups()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to read group memberships: %v", err))
	}
	for _, group := range groups {
		if group == DockerGroup {
			return pass(name, fmt.Sprintf("user %s is in the %s group", e.user.Username(), DockerGroup))
		}
	}
	return warn(name, fmt.Sprintf("user %s lacks passwordless docker access; run: sudo usermod -aG %s %s",
		e.user.Username(), DockerGroup, e.user.Username()))
}

// checkComposeVersion verifies the orchestration tool generation.
func (e *Engine) checkComposeVersion(ctx context.Context) CheckResult {
	const name = "compose-version"

	output, err := e.tools.Run(ctx, "docker", "compose", "version")
	if err == nil {
		return pass(name, strings.TrimSpace(output))
	}

	if _, err := e.tools.LookPath("docker-compose"); err == nil {
		return warn(name, "legacy docker-compose v1 found; install the docker compose v2 plugin")
	}
	return critical(name, "docker compose not found; install the docker compose v2 plugin")
}

// checkUHDDriver verifies the UHD driver CLI on the host search path.
func (e *Engine) checkUHDDriver(ctx context.Context) CheckResult {
	const name = "uhd-driver"

	if path, err := e.tools.LookPath("uhd_find_devices"); err == nil {
		return pass(name, fmt.Sprintf("uhd_find_devices at %s", path))
	}
	return warn(name, "uhd_find_devices not on PATH; acceptable when UHD lives only inside the container")
}

// checkSDRHardware verifies the B-series SDR is enumerated on the USB bus.
func (e *Engine) checkSDRHardware(ctx context.Context) CheckResult {
	const name = "sdr-hardware"

	devices, err := e.devices.Devices()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to enumerate USB devices: %v", err))
	}

	vendorSeen := false
	for _, dev := range devices {
		if dev.VendorID != EttusVendorID {
			continue
		}
		vendorSeen = true
		for _, product := range BSeriesProductIDs {
			if dev.ProductID == product {
				return pass(name, fmt.Sprintf("detected %s (%s:%s)",
					deviceLabel(dev.Product), dev.VendorID, dev.ProductID))
			}
		}
	}

	if vendorSeen {
		return warn(name, fmt.Sprintf("Ettus device present but product id is not a supported B-series model (%s)",
			strings.Join(BSeriesProductIDs, "/")))
	}
	return critical(name, fmt.Sprintf("no Ettus B-series SDR detected (vendor %s); connect the B210 and re-run",
		EttusVendorID))
}

// checkUSBSpeed verifies the negotiated bus speed of the SDR link.
// Skips the measurement when no supported device was enumerated, but still
// emits a result.
func (e *Engine) checkUSBSpeed(ctx context.Context) CheckResult {
	const name = "usb-speed"

	devices, err := e.devices.Devices()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to enumerate USB devices: %v", err))
	}

	for _, dev := range devices {
		if dev.VendorID != EttusVendorID {
			continue
		}
		if dev.SpeedMbps < RecommendedUSBSpeedMbps {
			return warn(name, fmt.Sprintf("%s negotiated %d Mb/s; use a USB 3.0 port for full bandwidth",
				deviceLabel(dev.Product), dev.SpeedMbps))
		}
		return pass(name, fmt.Sprintf("%s on a %d Mb/s link", deviceLabel(dev.Product), dev.SpeedMbps))
	}
	return pass(name, "skipped: no SDR hardware enumerated")
}

// checkUdevRules verifies the UHD device access rule file.
func (e *Engine) checkUdevRules(ctx context.Context) CheckResult {
	const name = "udev-rules"

	if e.system.FileExists(UdevRulesPath) {
		return pass(name, UdevRulesPath+" present")
	}
	return warn(name, fmt.Sprintf("%s missing; re-run setup to install the UHD udev rules", UdevRulesPath))
}

// checkUSRPGroup verifies the usrp group exists and the user is a member.
func (e *Engine) checkUSRPGroup(ctx context.Context) CheckResult {
	const name = "usrp-group"

	exists, err := e.user.GroupExists(USRPGroup)
	if err != nil {
		return warn(name, fmt.Sprintf("unable to look up group %q: %v", USRPGroup, err))
	}
	if !exists {
		return warn(name, fmt.Sprintf("group %q does not exist; re-run setup to create it", USRPGroup))
	}

	groups, err := e.user.Groups()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to read group memberships: %v", err))
	}
	for _, group := range groups {
		if group == USRPGroup {
			return pass(name, fmt.Sprintf("user %s is in the %s group", e.user.Username(), USRPGroup))
		}
	}
	return warn(name, fmt.Sprintf("user %s is not in the %s group; run: sudo usermod -aG %s %s",
		e.user.Username(), USRPGroup, USRPGroup, e.user.Username()))
}

// checkMemory verifies installed memory against the hard and recommended minimums.
func (e *Engine) checkMemory(ctx context.Context) CheckResult {
	const name = "memory"

	mem, err := e.system.Memory()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to read memory info: %v", err))
	}

	totalMiB := mem.TotalBytes / (1 << 20)
	switch {
	case totalMiB < e.cfg.MinMemoryMiB:
		return critical(name, fmt.Sprintf("%d MiB installed; %d MiB is the hard minimum",
			totalMiB, e.cfg.MinMemoryMiB))
	case totalMiB < e.cfg.RecommendedMemoryMiB:
		return warn(name, fmt.Sprintf("%d MiB installed; %d MiB recommended",
			totalMiB, e.cfg.RecommendedMemoryMiB))
	default:
		return pass(name, fmt.Sprintf("%d MiB installed", totalMiB))
	}
}

// checkDiskSpace verifies free space on the project volume.
func (e *Engine) checkDiskSpace(ctx context.Context) CheckResult {
	const name = "disk-space"

	disk, err := e.system.Disk(e.cfg.ProjectDir)
	if err != nil {
		return warn(name, fmt.Sprintf("unable to read disk usage for %s: %v", e.cfg.ProjectDir, err))
	}

	freeGiB := disk.FreeBytes / (1 << 30)
	switch {
	case freeGiB < e.cfg.MinDiskGiB:
		return critical(name, fmt.Sprintf("%d GiB free on %s; %d GiB is the hard minimum",
			freeGiB, e.cfg.ProjectDir, e.cfg.MinDiskGiB))
	case freeGiB < e.cfg.RecommendedDiskGiB:
		return warn(name, fmt.Sprintf("%d GiB free on %s; %d GiB recommended",
			freeGiB, e.cfg.ProjectDir, e.cfg.RecommendedDiskGiB))
	default:
		return pass(name, fmt.Sprintf("%d GiB free on %s", freeGiB, e.cfg.ProjectDir))
	}
}

// checkCPUCores verifies the logical core count.
func (e *Engine) checkCPUCores(ctx context.Context) CheckResult {
	const name = "cpu-cores"

	cores, err := e.system.CPUCount()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to count CPU cores: %v", err))
	}
	if cores < e.cfg.RecommendedCores {
		return warn(name, fmt.Sprintf("%d logical cores; %d recommended for real-time signal processing",
			cores, e.cfg.RecommendedCores))
	}
	return pass(name, fmt.Sprintf("%d logical cores", cores))
}

// checkProjectFiles verifies the required project layout. Missing files are
// CRITICAL, missing directories only WARNING (they are recreated on start).
func (e *Engine) checkProjectFiles(ctx context.Context) CheckResult {
	const name = "project-files"

	requiredFiles := []string{
		filepath.Join(e.cfg.ProjectDir, "docker-compose.yml"),
		filepath.Join(e.cfg.ProjectDir, "Dockerfile"),
		e.cfg.CoreNetworkConfig,
		e.cfg.RadioNodeConfig,
	}
	requiredDirs := []string{
		e.cfg.ConfigDir,
		e.cfg.LogDir,
		e.cfg.DataDir,
	}

	var missingFiles, missingDirs []string
	for _, path := range requiredFiles {
		if !e.system.FileExists(path) {
			missingFiles = append(missingFiles, path)
		}
	}
	for _, path := range requiredDirs {
		if !e.system.DirExists(path) {
			missingDirs = append(missingDirs, path)
		}
	}

	switch {
	case len(missingFiles) > 0:
		return critical(name, "missing required files: "+strings.Join(missingFiles, ", "))
	case len(missingDirs) > 0:
		return warn(name, "missing directories (recreated on start): "+strings.Join(missingDirs, ", "))
	default:
		return pass(name, "project layout complete")
	}
}

// checkIPForwarding verifies net.ipv4.ip_forward.
func (e *Engine) checkIPForwarding(ctx context.Context) CheckResult {
	const name = "ip-forwarding"

	enabled, err := e.system.IPForwarding()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to read ip_forward flag: %v", err))
	}
	if !enabled {
		return warn(name, "IP forwarding disabled; enabled automatically at network start")
	}
	return pass(name, "IP forwarding enabled")
}

// checkNetworkPorts verifies the reserved daemon ports are free.
func (e *Engine) checkNetworkPorts(ctx context.Context) CheckResult {
	const name = "network-ports"

	bound, err := e.system.BoundPorts()
	if err != nil {
		return warn(name, fmt.Sprintf("unable to enumerate bound ports: %v", err))
	}

	boundSet := make(map[Port]bool, len(bound))
	for _, port := range bound {
		boundSet[port] = true
	}

	var collisions []string
	for _, reserved := range ReservedPorts {
		if boundSet[reserved] {
			collisions = append(collisions, fmt.Sprintf("%d/%s", reserved.Number, reserved.Proto))
		}
	}
	if len(collisions) > 0 {
		return warn(name, "reserved ports already bound: "+strings.Join(collisions, ", "))
	}
	return pass(name, "reserved ports free")
}

// checkPythonRuntime verifies the host-side interpreter and TUI libraries.
func (e *Engine) checkPythonRuntime(ctx context.Context) CheckResult {
	const name = "python-runtime"

	if _, err := e.tools.LookPath("python3"); err != nil {
		return warn(name, "python3 not on PATH; acceptable when the TUI runs only inside the container")
	}

	script := "import " + strings.Join(PythonModules, ", ")
	if _, err := e.tools.Run(ctx, "python3", "-c", script); err != nil {
		return warn(name, fmt.Sprintf("host python3 is missing one of %s; acceptable when the TUI runs only inside the container",
			strings.Join(PythonModules, "/")))
	}
	return pass(name, "python3 and TUI libraries available on host")
}

// deviceLabel falls back to a generic label when the descriptor carries no
// product string.
func deviceLabel(product string) string {
	if product == "" {
		return "Ettus B-series SDR"
	}
	return product
}
