package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sonarci/sonarci/internal/analysis"
	"github.com/sonarci/sonarci/internal/decision"
	"github.com/sonarci/sonarci/internal/report"
	"github.com/sonarci/sonarci/internal/sonar"
)

// fetchFailureMessage replaces the whole summary when the issue list could
// not be retrieved. Metrics or gate failures alone degrade to placeholders.
const fetchFailureMessage = "❌ Failed to retrieve analysis data"

func analyzeCmd() *cobra.Command {
	var (
		serverURL   string
		token       string
		projectKey  string
		format      string
		outputPath  string
		setExitCode bool
		waitSeconds int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate a CI analysis summary for a SonarQube project",
		Long: `Queries the SonarQube REST API for project metrics, unresolved issues and
the quality gate status, then renders a CI-friendly summary.

Examples:
  # Plain text summary on stdout
  sonarci analyze --token $TOKEN --project-key my-service

  # Markdown summary for a pull request comment
  sonarci analyze --token $TOKEN --project-key my-service --format markdown

  # Gate the pipeline on the result
  sonarci analyze --token $TOKEN --project-key my-service --exit-code`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("authentication token is required (use --token or SONARCI_TOKEN)")
			}
			if projectKey == "" {
				return fmt.Errorf("project key is required (use --project-key)")
			}
			switch format {
			case "text", "json", "markdown":
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}

			if waitSeconds > 0 {
				log.Info().Int("seconds", waitSeconds).Msg("Waiting for analysis to complete")
				time.Sleep(time.Duration(waitSeconds) * time.Second)
			}

			client := sonar.NewClient(serverURL, token, projectKey)
			result := runAnalysis(cmd.Context(), client, format)

			if err := writeSummary(result.summary, outputPath); err != nil {
				return err
			}

			if setExitCode {
				log.Info().Int("code", result.exitCode).Msg("Exit code set from analysis results")
				os.Exit(result.exitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server-url", "http://localhost:9999", "SonarQube server URL")
	cmd.Flags().StringVar(&token, "token", "", "SonarQube authentication token")
	cmd.Flags().StringVar(&projectKey, "project-key", "", "SonarQube project key")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json or markdown)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&setExitCode, "exit-code", false, "Set exit code based on analysis results")
	cmd.Flags().IntVar(&waitSeconds, "wait-for-analysis", 0, "Wait N seconds for analysis to complete")

	return cmd
}

type analysisResult struct {
	summary  string
	exitCode int
}

// runAnalysis fetches the three datasets, aggregates the issues and renders
// the requested format. The three queries are independent; a failed issues
// fetch is terminal for the summary, while missing metrics or gate data
// degrade to "N/A"/"UNKNOWN" placeholders.
func runAnalysis(ctx context.Context, client *sonar.Client, format string) analysisResult {
	log.Info().Str("project", client.ProjectKey()).Msg("Fetching SonarQube analysis data")

	measures, err := client.Measures(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Project measures unavailable")
	}
	issues, err := client.Issues(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Issue search unavailable")
	}
	gate, err := client.QualityGateStatus(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Quality gate status unavailable")
	}

	exitCode := decision.ExitCode(gate, issues)

	if issues == nil {
		return analysisResult{summary: fetchFailureMessage, exitCode: exitCode}
	}

	in := report.Input{
		Metrics:    analysis.NewMetricSet(measures),
		Issues:     analysis.Analyze(issues.Issues),
		GateStatus: gate.Status(),
		Project:    client.ProjectKey(),
		ServerURL:  client.ServerURL(),
		Timestamp:  time.Now(),
	}

	var summary string
	switch format {
	case "json":
		rendered, err := report.JSON(in)
		if err != nil {
			log.Error().Err(err).Msg("Failed to render JSON summary")
			return analysisResult{summary: fetchFailureMessage, exitCode: decision.ExitFetchFail}
		}
		summary = rendered
	case "markdown":
		summary = report.Markdown(in)
	default:
		summary = report.Text(in)
	}

	return analysisResult{summary: summary, exitCode: exitCode}
}

func writeSummary(summary, outputPath string) error {
	if outputPath == "" {
		fmt.Println(summary)
		return nil
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for output: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(summary), 0644); err != nil {
		return fmt.Errorf("failed to write summary to file: %w", err)
	}
	log.Info().Str("output", outputPath).Msg("Summary written successfully")
	return nil
}
