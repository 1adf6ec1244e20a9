package sysinfo

import (
	"context"
	"os/exec"

	"github.com/lte-simulator/simctl/internal/verify"
)

// ToolProbe implements verify.ToolProbe with os/exec.
type ToolProbe struct{}

// NewToolProbe creates a host-backed tool probe.
func NewToolProbe() *ToolProbe {
	return &ToolProbe{}
}

// Compile-time assertion that ToolProbe implements verify.ToolProbe
var _ verify.ToolProbe = (*ToolProbe)(nil)

// LookPath resolves an executable on the search path.
func (p *ToolProbe) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run invokes a tool and returns its combined output. The returned error is
// non-nil when the tool is missing or exits non-zero; callers distinguish
// the two cases by whether output was produced.
func (p *ToolProbe) Run(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(output), err
}
