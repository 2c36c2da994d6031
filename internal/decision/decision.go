// Package decision maps analysis results to the CI verdict and the process
// exit code used for pipeline gating.
package decision

import (
	"github.com/sonarci/sonarci/internal/analysis"
	"github.com/sonarci/sonarci/internal/sonar"
)

// GatePassing is the sole quality gate status that counts as a pass.
const GatePassing = "OK"

// Exit codes for pipeline gating.
const (
	ExitPass      = 0
	ExitFail      = 1
	ExitFetchFail = 2
)

// Decision carries the CI verdict derived from the gate status and the
// aggregated severity counts. ShouldFail and HasWarnings are independent;
// both can be true at once.
type Decision struct {
	ShouldFail  bool `json:"should_fail"`
	HasWarnings bool `json:"has_warnings"`
	IsPassing   bool `json:"is_passing"`
}

func Evaluate(gateStatus string, a *analysis.IssueAnalysis) Decision {
	blockers := a.BySeverity[analysis.SeverityBlocker]
	criticals := a.BySeverity[analysis.SeverityCritical]
	return Decision{
		ShouldFail:  gateStatus != GatePassing || blockers > 0,
		HasWarnings: criticals > 0,
		IsPassing:   gateStatus == GatePassing && blockers == 0,
	}
}

// ExitCode maps the fetched gate and issue responses to the process exit
// code. A nil response means the fetch itself failed, which is reported
// separately from a failing gate.
func ExitCode(gate *sonar.QualityGate, issues *sonar.IssuesSearch) int {
	if gate == nil || issues == nil {
		return ExitFetchFail
	}
	if gate.Status() != GatePassing {
		return ExitFail
	}
	a := analysis.Analyze(issues.Issues)
	if a.BySeverity[analysis.SeverityBlocker] > 0 {
		return ExitFail
	}
	return ExitPass
}
