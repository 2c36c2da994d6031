// Package analysis reshapes raw issue lists and metric pairs into the
// aggregates the renderers and the CI decision work from.
package analysis

import (
	"strings"

	"github.com/sonarci/sonarci/internal/sonar"
)

// Severity levels reported by the server, highest to lowest urgency.
const (
	SeverityBlocker  = "BLOCKER"
	SeverityCritical = "CRITICAL"
	SeverityMajor    = "MAJOR"
	SeverityMinor    = "MINOR"
	SeverityInfo     = "INFO"
)

// Issue types.
const (
	TypeBug           = "BUG"
	TypeVulnerability = "VULNERABILITY"
	TypeCodeSmell     = "CODE_SMELL"
)

// Quality categories derived per issue. Not part of the wire format.
const (
	CategoryReliability     = "RELIABILITY"
	CategorySecurity        = "SECURITY"
	CategoryMaintainability = "MAINTAINABILITY"
)

// lineUnknown is the sentinel rendered when the server omitted the line.
const lineUnknown = "N/A"

// IssueDetail is a normalized per-issue record grouped under its category.
// Line holds either the line number or the "N/A" sentinel.
type IssueDetail struct {
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	File     string `json:"component"`
	Line     any    `json:"line"`
}

// CriticalIssue is a BLOCKER or CRITICAL issue tracked for CI decisions.
type CriticalIssue struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     *int   `json:"line"`
}

// IssueAnalysis aggregates an issue list into counts by severity, type and
// quality category. Every known bucket is present even when zero.
type IssueAnalysis struct {
	Total           int                      `json:"total"`
	BySeverity      map[string]int           `json:"by_severity"`
	ByType          map[string]int           `json:"by_type"`
	ByCategory      map[string]int           `json:"by_category"`
	CategoryDetails map[string][]IssueDetail `json:"category_details"`
	CriticalIssues  []CriticalIssue          `json:"critical_issues"`
	NewIssues       int                      `json:"new_issues"`
}

func newIssueAnalysis() *IssueAnalysis {
	return &IssueAnalysis{
		BySeverity: map[string]int{
			SeverityBlocker: 0, SeverityCritical: 0, SeverityMajor: 0,
			SeverityMinor: 0, SeverityInfo: 0,
		},
		ByType: map[string]int{
			TypeBug: 0, TypeVulnerability: 0, TypeCodeSmell: 0,
		},
		ByCategory: map[string]int{
			CategoryReliability: 0, CategorySecurity: 0, CategoryMaintainability: 0,
		},
		CategoryDetails: map[string][]IssueDetail{
			CategoryReliability:     {},
			CategorySecurity:        {},
			CategoryMaintainability: {},
		},
		CriticalIssues: []CriticalIssue{},
	}
}

// Analyze aggregates a raw issue list in a single pass. Unrecognized
// severity and type values get insert-on-demand buckets rather than being
// dropped, so no issue is ever lost to a new upstream enum value.
func Analyze(issues []sonar.Issue) *IssueAnalysis {
	a := newIssueAnalysis()
	a.Total = len(issues)

	for _, issue := range issues {
		severity := orUnknown(issue.Severity)
		issueType := orUnknown(issue.Type)

		a.BySeverity[severity]++
		a.ByType[issueType]++

		category := Categorize(issueType, issue.Rule, issue.Message)
		a.ByCategory[category]++

		file := fileName(issue.Component)
		a.CategoryDetails[category] = append(a.CategoryDetails[category], IssueDetail{
			Rule:     issue.Rule,
			Message:  issue.Message,
			Severity: severity,
			File:     file,
			Line:     lineOrSentinel(issue.Line),
		})

		if severity == SeverityBlocker || severity == SeverityCritical {
			a.CriticalIssues = append(a.CriticalIssues, CriticalIssue{
				Rule:     issue.Rule,
				Severity: severity,
				Message:  issue.Message,
				File:     file,
				Line:     issue.Line,
			})
		}

		if issue.IsNew {
			a.NewIssues++
		}
	}

	return a
}

// categoryRules are evaluated top-down; the first keyword match wins, which
// keeps the security-before-reliability precedence explicit.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategorySecurity, []string{"hardcoded", "password", "secret", "credential", "token", "key"}},
	{CategoryReliability, []string{"null", "npe", "exception", "crash", "fail"}},
}

// Categorize maps an issue to its quality category. The exact type mapping
// is checked first; the keyword fallback only fires for types outside the
// three known values.
func Categorize(issueType, rule, message string) string {
	switch issueType {
	case TypeBug:
		return CategoryReliability
	case TypeVulnerability:
		return CategorySecurity
	case TypeCodeSmell:
		return CategoryMaintainability
	}

	ruleLower := strings.ToLower(rule)
	messageLower := strings.ToLower(message)
	for _, r := range categoryRules {
		for _, keyword := range r.keywords {
			if strings.Contains(ruleLower, keyword) || strings.Contains(messageLower, keyword) {
				return r.category
			}
		}
	}
	return CategoryMaintainability
}

// fileName extracts the file name from a colon-delimited component path.
func fileName(component string) string {
	parts := strings.Split(component, ":")
	return parts[len(parts)-1]
}

func orUnknown(value string) string {
	if value == "" {
		return "UNKNOWN"
	}
	return value
}

func lineOrSentinel(line *int) any {
	if line == nil {
		return lineUnknown
	}
	return *line
}
