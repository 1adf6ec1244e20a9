package verify

// Severity classifies a single check result.
type Severity string

const (
	SeverityPass     Severity = "PASS"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Outcome is the aggregate go/no-go verdict of a verification run.
type Outcome string

const (
	OutcomeReady    Outcome = "READY"
	OutcomeNotReady Outcome = "NOT_READY"
)

// CheckResult is the immutable outcome of one catalog check.
type CheckResult struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	// Message carries human-readable detail and, where applicable, a
	// remediation hint.
	Message string `json:"message"`
}

// Report aggregates one verification run.
type Report struct {
	// Results are ordered by catalog execution order.
	Results       []CheckResult `json:"results"`
	CriticalCount int           `json:"criticalCount"`
	WarningCount  int           `json:"warningCount"`
	Outcome       Outcome       `json:"outcome"`
}

// NewReport folds a result sequence into a report. The outcome is NOT_READY
// exactly when at least one result is CRITICAL.
func NewReport(results []CheckResult) Report {
	report := Report{
		Results: results,
		Outcome: OutcomeReady,
	}
	for _, result := range results {
		switch result.Severity {
		case SeverityCritical:
			report.CriticalCount++
		case SeverityWarning:
			report.WarningCount++
		}
	}
	if report.CriticalCount > 0 {
		report.Outcome = OutcomeNotReady
	}
	return report
}

// Ready reports whether the run permits proceeding.
func (r Report) Ready() bool {
	return r.Outcome == OutcomeReady
}

// pass, warn, and critical build results for a named check.
func pass(name, message string) CheckResult {
	return CheckResult{Name: name, Severity: SeverityPass, Message: message}
}

func warn(name, message string) CheckResult {
	return CheckResult{Name: name, Severity: SeverityWarning, Message: message}
}

func critical(name, message string) CheckResult {
	return CheckResult{Name: name, Severity: SeverityCritical, Message: message}
}
