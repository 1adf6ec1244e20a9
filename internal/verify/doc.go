// Package verify implements the readiness verification engine for the LTE
// Simulator operations container.
//
// The engine runs a fixed catalog of host environment checks covering the
// operating system, container runtime, SDR hardware, system resources, and
// project layout. Every check always runs, contributes exactly one result,
// and classifies as PASS, WARNING, or CRITICAL. The aggregate outcome is
// READY only when no check is CRITICAL; warnings are advisory.
//
// Host access goes through the SystemProbe, ToolProbe, and UserProbe ports
// plus the usb.Enumerator, so the full battery is testable against a faked
// environment.
package verify
