package verify

import (
	"context"

	"github.com/lte-simulator/simctl/internal/config"
	"github.com/lte-simulator/simctl/internal/usb"
)

// Engine runs the readiness check catalog against the host environment.
type Engine struct {
	cfg     *config.Config
	system  SystemProbe
	tools   ToolProbe
	user    UserProbe
	devices usb.Enumerator
}

// NewEngine creates a verification engine over the given environment ports.
func NewEngine(cfg *config.Config, system SystemProbe, tools ToolProbe, user UserProbe, devices usb.Enumerator) *Engine {
	return &Engine{
		cfg:     cfg,
		system:  system,
		tools:   tools,
		user:    user,
		devices: devices,
	}
}

// Run executes the full catalog in fixed order and folds the results into a
// report. A failing check never prevents the remaining checks from running.
func (e *Engine) Run(ctx context.Context) Report {
	checks := []func(context.Context) CheckResult{
		e.checkOSVersion,
		e.checkKernelVersion,
		e.checkDockerService,
		e.checkDockerAccess,
		e.checkComposeVersion,
		e.checkUHDDriver,
		e.checkSDRHardware,
		e.checkUSBSpeed,
		e.checkUdevRules,
		e.checkUSRPGroup,
		e.checkMemory,
		e.checkDiskSpace,
		e.checkCPUCores,
		e.checkProjectFiles,
		e.checkIPForwarding,
		e.checkNetworkPorts,
		e.checkPythonRuntime,
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		results = append(results, check(ctx))
	}
	return NewReport(results)
}

// CatalogSize is the number of checks in the fixed catalog.
const CatalogSize = 17
