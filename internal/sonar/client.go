package sonar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	requestTimeout = 30 * time.Second
	issuePageSize  = "500"
)

// metricKeys is the fixed set of measures requested for every project.
var metricKeys = strings.Join([]string{
	"ncloc", "bugs", "vulnerabilities", "code_smells",
	"sqale_rating", "reliability_rating", "security_rating",
	"coverage", "duplicated_lines_density",
	"new_bugs", "new_vulnerabilities", "new_code_smells",
}, ",")

// Client issues authenticated read-only queries against a SonarQube server
// for a single project. Failed queries are reported as errors; callers treat
// the missing result as "no data", which is distinct from an empty result.
type Client struct {
	serverURL  string
	token      string
	projectKey string
	httpClient *http.Client
}

func NewClient(serverURL, token, projectKey string) *Client {
	return &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		token:      token,
		projectKey: projectKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) ServerURL() string {
	return c.serverURL
}

func (c *Client) ProjectKey() string {
	return c.projectKey
}

// Measures fetches the fixed metric set for the project.
func (c *Client) Measures(ctx context.Context) (*ComponentMeasures, error) {
	params := url.Values{
		"component":  {c.projectKey},
		"metricKeys": {metricKeys},
	}
	var out ComponentMeasures
	if err := c.get(ctx, "measures/component", params, &out); err != nil {
		log.Error().Err(err).Msg("Failed to fetch project measures")
		return nil, err
	}
	return &out, nil
}

// Issues fetches up to one page of unresolved issues for the project.
func (c *Client) Issues(ctx context.Context) (*IssuesSearch, error) {
	params := url.Values{
		"componentKeys": {c.projectKey},
		"ps":            {issuePageSize},
		"resolved":      {"false"},
	}
	var out IssuesSearch
	if err := c.get(ctx, "issues/search", params, &out); err != nil {
		log.Error().Err(err).Msg("Failed to fetch project issues")
		return nil, err
	}
	return &out, nil
}

// QualityGateStatus fetches the pass/fail gate verdict for the project.
func (c *Client) QualityGateStatus(ctx context.Context) (*QualityGate, error) {
	params := url.Values{"projectKey": {c.projectKey}}
	var out QualityGate
	if err := c.get(ctx, "qualitygates/project_status", params, &out); err != nil {
		log.Error().Err(err).Msg("Failed to fetch quality gate status")
		return nil, err
	}
	return &out, nil
}

// get performs an authenticated GET against /api/<endpoint> and decodes the
// JSON body into out. Any non-200 status or transport error is returned as
// an error, never retried.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	requestURL := fmt.Sprintf("%s/api/%s?%s", c.serverURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error %d on %s: %s", resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
