package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	tests := []struct {
		name          string
		results       []CheckResult
		wantOutcome   Outcome
		wantCriticals int
		wantWarnings  int
	}{
		{
			name:        "empty_run_is_ready",
			results:     nil,
			wantOutcome: OutcomeReady,
		},
		{
			name: "all_pass",
			results: []CheckResult{
				pass("a", ""), pass("b", ""),
			},
			wantOutcome: OutcomeReady,
		},
		{
			name: "warnings_never_change_outcome",
			results: []CheckResult{
				pass("a", ""), warn("b", ""), warn("c", ""),
			},
			wantOutcome:  OutcomeReady,
			wantWarnings: 2,
		},
		{
			name: "single_critical_blocks",
			results: []CheckResult{
				pass("a", ""), critical("b", ""),
			},
			wantOutcome:   OutcomeNotReady,
			wantCriticals: 1,
		},
		{
			name: "mixed_counts",
			results: []CheckResult{
				critical("a", ""), warn("b", ""), critical("c", ""), pass("d", ""),
			},
			wantOutcome:   OutcomeNotReady,
			wantCriticals: 2,
			wantWarnings:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewReport(tt.results)

			assert.Equal(t, tt.wantOutcome, report.Outcome)
			assert.Equal(t, tt.wantCriticals, report.CriticalCount)
			assert.Equal(t, tt.wantWarnings, report.WarningCount)
			assert.Equal(t, report.Outcome == OutcomeReady, report.Ready())

			// Aggregation invariant: NOT_READY iff at least one CRITICAL.
			assert.Equal(t, report.CriticalCount > 0, report.Outcome == OutcomeNotReady)
		})
	}
}

func TestNewReport_PreservesResultOrder(t *testing.T) {
	results := []CheckResult{
		critical("third", ""), pass("first", ""), warn("second", ""),
	}

	report := NewReport(results)

	assert.Equal(t, results, report.Results)
}
