package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonarci/sonarci/internal/sonar"
)

// scenario configures the fake SonarQube server backing an end-to-end run.
type scenario struct {
	gateStatus  string
	issues      []map[string]any
	failIssues  bool
	failGate    bool
	failMetrics bool
}

func newScenarioServer(t *testing.T, sc scenario) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/measures/component", func(w http.ResponseWriter, req *http.Request) {
		if sc.failMetrics {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]any{
			"component": map[string]any{
				"key": req.URL.Query().Get("component"),
				"measures": []map[string]string{
					{"metric": "ncloc", "value": "1200"},
					{"metric": "coverage", "value": "75.0"},
					{"metric": "sqale_rating", "value": "1.0"},
				},
			},
		})
	})
	r.Get("/api/issues/search", func(w http.ResponseWriter, req *http.Request) {
		if sc.failIssues {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]any{"total": len(sc.issues), "issues": sc.issues})
	})
	r.Get("/api/qualitygates/project_status", func(w http.ResponseWriter, req *http.Request) {
		if sc.failGate {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]any{"projectStatus": map[string]any{"status": sc.gateStatus}})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func issueRecord(severity, issueType, message string) map[string]any {
	return map[string]any{
		"key": "i1", "rule": "java:S100", "severity": severity, "type": issueType,
		"component": "my-service:src/App.java", "line": 10, "message": message,
	}
}

func runScenario(t *testing.T, sc scenario, format string) analysisResult {
	t.Helper()
	srv := newScenarioServer(t, sc)
	client := sonar.NewClient(srv.URL, "token", "my-service")
	return runAnalysis(context.Background(), client, format)
}

func TestRunAnalysisCleanProjectPasses(t *testing.T) {
	result := runScenario(t, scenario{gateStatus: "OK"}, "text")

	assert.Contains(t, result.summary, "✅ PASS - No blocking issues found")
	assert.Equal(t, 0, result.exitCode)
}

func TestRunAnalysisGateFailureWithBlocker(t *testing.T) {
	sc := scenario{
		gateStatus: "ERROR",
		issues:     []map[string]any{issueRecord("BLOCKER", "BUG", "boom")},
	}
	result := runScenario(t, sc, "json")

	assert.Equal(t, 1, result.exitCode)

	var decoded struct {
		CIDecision struct {
			ShouldFail bool `json:"should_fail"`
		} `json:"ci_decision"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.summary), &decoded))
	assert.True(t, decoded.CIDecision.ShouldFail)
}

func TestRunAnalysisCriticalsWarnButPass(t *testing.T) {
	sc := scenario{
		gateStatus: "OK",
		issues: []map[string]any{
			issueRecord("CRITICAL", "BUG", "first"),
			issueRecord("CRITICAL", "VULNERABILITY", "second"),
		},
	}
	result := runScenario(t, sc, "text")

	assert.Contains(t, result.summary, "⚠️  WARNING - 2 CRITICAL issue(s) found")
	assert.Equal(t, 0, result.exitCode)
}

func TestRunAnalysisIssuesFetchFailureIsTerminal(t *testing.T) {
	result := runScenario(t, scenario{gateStatus: "OK", failIssues: true}, "text")

	assert.Equal(t, fetchFailureMessage, result.summary)
	assert.Equal(t, 2, result.exitCode)
}

func TestRunAnalysisMissingMetricsDegradesToPlaceholders(t *testing.T) {
	result := runScenario(t, scenario{gateStatus: "OK", failMetrics: true}, "text")

	assert.Contains(t, result.summary, "├── Lines of Code: N/A")
	assert.Equal(t, 0, result.exitCode)
}

func TestRunAnalysisMissingGateDegradesToUnknown(t *testing.T) {
	result := runScenario(t, scenario{failGate: true}, "text")

	assert.Contains(t, result.summary, "🎯 Quality Gate: UNKNOWN ❌")
	assert.Equal(t, 2, result.exitCode)
}

func TestWriteSummaryToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.md")
	require.NoError(t, writeSummary("# report", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# report", string(content))
}
