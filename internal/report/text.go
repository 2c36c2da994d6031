package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sonarci/sonarci/internal/analysis"
	"github.com/sonarci/sonarci/internal/decision"
)

const divider = "════════════════════════════════════════════════════════════════"

// maxCriticalShown caps the critical issue list in the text report; the
// analysis itself keeps the full list.
const maxCriticalShown = 5

// Text renders the fixed-layout plain-text summary used in CI logs.
func Text(in Input) string {
	var b strings.Builder
	a := in.Issues

	b.WriteString("\n" + divider + "\n")
	b.WriteString("                    SONARQUBE CI ANALYSIS SUMMARY\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "📅 Analysis Time: %s\n", in.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "🏗️  Project: %s\n", in.Project)
	fmt.Fprintf(&b, "🎯 Quality Gate: %s %s\n\n", in.GateStatus, gateGlyph(in.GateStatus))

	b.WriteString("📊 CODE METRICS:\n")
	fmt.Fprintf(&b, "├── Lines of Code: %s\n", in.Metrics.Get("ncloc"))
	fmt.Fprintf(&b, "├── Coverage: %s%%\n", in.Metrics.Get("coverage"))
	fmt.Fprintf(&b, "├── Duplicated Lines: %s%%\n", in.Metrics.Get("duplicated_lines_density"))
	b.WriteString("└── Quality Ratings:\n")
	fmt.Fprintf(&b, "    ├── Maintainability: %s\n", FormatRating(in.Metrics.Raw("sqale_rating")))
	fmt.Fprintf(&b, "    ├── Reliability: %s\n", FormatRating(in.Metrics.Raw("reliability_rating")))
	fmt.Fprintf(&b, "    └── Security: %s\n\n", FormatRating(in.Metrics.Raw("security_rating")))

	b.WriteString("🚨 ISSUES SUMMARY:\n")
	fmt.Fprintf(&b, "├── Total Issues: %d\n", a.Total)
	fmt.Fprintf(&b, "├── New Issues: %d\n", a.NewIssues)
	b.WriteString("├── By Quality Category:\n")
	fmt.Fprintf(&b, "│   ├── 🔧 RELIABILITY: %d (bugs, crashes, exceptions)\n", a.ByCategory[analysis.CategoryReliability])
	fmt.Fprintf(&b, "│   ├── 🔒 SECURITY: %d (vulnerabilities, secrets)\n", a.ByCategory[analysis.CategorySecurity])
	fmt.Fprintf(&b, "│   └── 🧹 MAINTAINABILITY: %d (code smells, complexity)\n", a.ByCategory[analysis.CategoryMaintainability])
	b.WriteString("├── By Severity:\n")
	fmt.Fprintf(&b, "│   ├── 🔴 BLOCKER: %d\n", a.BySeverity[analysis.SeverityBlocker])
	fmt.Fprintf(&b, "│   ├── 🟠 CRITICAL: %d\n", a.BySeverity[analysis.SeverityCritical])
	fmt.Fprintf(&b, "│   ├── 🟡 MAJOR: %d\n", a.BySeverity[analysis.SeverityMajor])
	fmt.Fprintf(&b, "│   ├── 🔵 MINOR: %d\n", a.BySeverity[analysis.SeverityMinor])
	fmt.Fprintf(&b, "│   └── ⚪ INFO: %d\n", a.BySeverity[analysis.SeverityInfo])
	b.WriteString("└── By Type:\n")
	fmt.Fprintf(&b, "    ├── 🐛 BUGS: %d\n", a.ByType[analysis.TypeBug])
	fmt.Fprintf(&b, "    ├── 🔒 VULNERABILITIES: %d\n", a.ByType[analysis.TypeVulnerability])
	fmt.Fprintf(&b, "    └── 💨 CODE SMELLS: %d\n", a.ByType[analysis.TypeCodeSmell])

	if len(a.CriticalIssues) > 0 {
		b.WriteString("\n⚠️  CRITICAL ISSUES (BLOCKING):\n")
		for i, issue := range a.CriticalIssues {
			if i >= maxCriticalShown {
				break
			}
			fmt.Fprintf(&b, "  %d. [%s] %s:%s\n", i+1, issue.Severity, issue.File, lineLabel(issue.Line))
			fmt.Fprintf(&b, "     %s\n", issue.Message)
		}
		if remaining := len(a.CriticalIssues) - maxCriticalShown; remaining > 0 {
			fmt.Fprintf(&b, "     ... and %d more critical issues\n", remaining)
		}
	}

	b.WriteString("\n🎯 CI/CD DECISION:\n")
	blockers := a.BySeverity[analysis.SeverityBlocker]
	criticals := a.BySeverity[analysis.SeverityCritical]
	switch {
	case in.GateStatus != decision.GatePassing:
		b.WriteString("❌ FAIL - Quality Gate failed\n")
	case blockers > 0:
		fmt.Fprintf(&b, "❌ FAIL - %d BLOCKER issue(s) found\n", blockers)
	case criticals > 0:
		fmt.Fprintf(&b, "⚠️  WARNING - %d CRITICAL issue(s) found\n", criticals)
	default:
		b.WriteString("✅ PASS - No blocking issues found\n")
	}

	fmt.Fprintf(&b, "\n🌐 Dashboard: %s\n", dashboardURL(in))
	b.WriteString(divider)

	return b.String()
}

func lineLabel(line *int) string {
	if line == nil {
		return "?"
	}
	return strconv.Itoa(*line)
}
