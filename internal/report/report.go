// Package report renders an analysis as plain text, Markdown or JSON.
package report

import (
	"fmt"
	"time"

	"github.com/sonarci/sonarci/internal/analysis"
	"github.com/sonarci/sonarci/internal/decision"
)

// Input carries everything the renderers need. Each renderer is a pure
// function of its Input, so rendering the same Input twice yields identical
// output.
type Input struct {
	Metrics    analysis.MetricSet
	Issues     *analysis.IssueAnalysis
	GateStatus string
	Project    string
	ServerURL  string
	Timestamp  time.Time
}

func dashboardURL(in Input) string {
	return fmt.Sprintf("%s/dashboard?id=%s", in.ServerURL, in.Project)
}

func gateGlyph(status string) string {
	if status == decision.GatePassing {
		return "✅"
	}
	return "❌"
}
