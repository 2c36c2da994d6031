package report

import (
	"fmt"
	"strings"

	"github.com/sonarci/sonarci/internal/analysis"
)

// Markdown renders a summary suitable for posting as a pull-request comment.
func Markdown(in Input) string {
	var b strings.Builder
	a := in.Issues

	b.WriteString("## 🔍 SonarQube Analysis Report\n\n")
	fmt.Fprintf(&b, "### Quality Gate: %s %s\n\n", gateGlyph(in.GateStatus), in.GateStatus)

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|--------|\n")
	fmt.Fprintf(&b, "| Lines of Code | %s |\n", in.Metrics.Get("ncloc"))
	fmt.Fprintf(&b, "| Coverage | %s%% |\n", in.Metrics.Get("coverage"))
	fmt.Fprintf(&b, "| Duplicated Lines | %s%% |\n", in.Metrics.Get("duplicated_lines_density"))
	fmt.Fprintf(&b, "| Maintainability | %s |\n", FormatRating(in.Metrics.Raw("sqale_rating")))
	fmt.Fprintf(&b, "| Reliability | %s |\n", FormatRating(in.Metrics.Raw("reliability_rating")))
	fmt.Fprintf(&b, "| Security | %s |\n\n", FormatRating(in.Metrics.Raw("security_rating")))

	b.WriteString("### Issues Summary\n\n")
	b.WriteString("| Severity | Count |\n")
	b.WriteString("|----------|-------|\n")
	fmt.Fprintf(&b, "| 🔴 Blocker | %d |\n", a.BySeverity[analysis.SeverityBlocker])
	fmt.Fprintf(&b, "| 🟠 Critical | %d |\n", a.BySeverity[analysis.SeverityCritical])
	fmt.Fprintf(&b, "| 🟡 Major | %d |\n", a.BySeverity[analysis.SeverityMajor])
	fmt.Fprintf(&b, "| 🔵 Minor | %d |\n", a.BySeverity[analysis.SeverityMinor])
	fmt.Fprintf(&b, "| ⚪ Info | %d |\n\n", a.BySeverity[analysis.SeverityInfo])

	fmt.Fprintf(&b, "**Total Issues:** %d | **New Issues:** %d\n\n", a.Total, a.NewIssues)
	fmt.Fprintf(&b, "[📊 View Full Report](%s)\n", dashboardURL(in))

	return b.String()
}
