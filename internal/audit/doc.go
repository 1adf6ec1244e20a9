// Package audit implements the append-only JSON-lines audit log for
// lifecycle actions.
//
// Every start, stop, and sweep decision of the orchestrator produces one
// record with the role, the action outcome, the pid involved, and the
// latency of the operation.
package audit
