package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sonarci/sonarci/internal/analysis"
	"github.com/sonarci/sonarci/internal/decision"
)

// jsonSummary is the structure consumed by downstream pipeline steps.
// Metric values stay raw; ratings are not converted to letter grades here.
type jsonSummary struct {
	Timestamp    string                  `json:"timestamp"`
	Project      string                  `json:"project"`
	QualityGate  jsonGate                `json:"quality_gate"`
	Metrics      analysis.MetricSet      `json:"metrics"`
	Issues       *analysis.IssueAnalysis `json:"issues"`
	CIDecision   decision.Decision       `json:"ci_decision"`
	DashboardURL string                  `json:"dashboard_url"`
}

type jsonGate struct {
	Status string `json:"status"`
	Passed bool   `json:"passed"`
}

// JSON renders the machine-readable summary.
func JSON(in Input) (string, error) {
	summary := jsonSummary{
		Timestamp: in.Timestamp.Format(time.RFC3339),
		Project:   in.Project,
		QualityGate: jsonGate{
			Status: in.GateStatus,
			Passed: in.GateStatus == decision.GatePassing,
		},
		Metrics:      in.Metrics,
		Issues:       in.Issues,
		CIDecision:   decision.Evaluate(in.GateStatus, in.Issues),
		DashboardURL: dashboardURL(in),
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}
	return string(data), nil
}
