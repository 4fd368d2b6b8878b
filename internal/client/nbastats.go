package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"nuggets_v2/ingestion/internal/metrics"

	"github.com/rs/zerolog/log"
)

const (
	// League identifier the stats API uses for the NBA
	LeagueNBA = "00"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// ResultTable is one named tabular result set from a stats API response.
// RowSet values arrive as JSON strings and numbers; null is preserved as nil.
type ResultTable struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Records zips each row with the header names, preserving row order.
// Rows shorter than the header list simply omit the trailing fields.
func (t *ResultTable) Records() []map[string]any {
	records := make([]map[string]any, 0, len(t.RowSet))
	for _, row := range t.RowSet {
		rec := make(map[string]any, len(t.Headers))
		for i, name := range t.Headers {
			if i >= len(row) {
				break
			}
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

// statsResponse is the envelope every stats API endpoint returns: an ordered
// list of named tabular result sets.
type statsResponse struct {
	Resource   string        `json:"resource"`
	ResultSets []ResultTable `json:"resultSets"`
}

func (r *statsResponse) resultSet(name string) *ResultTable {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i]
		}
	}
	return nil
}

func (r *statsResponse) resultSetNames() []string {
	names := make([]string, 0, len(r.ResultSets))
	for _, rs := range r.ResultSets {
		names = append(names, rs.Name)
	}
	return names
}

// Client is the NBA stats API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new NBA stats API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request against a stats API endpoint. A non-200 response
// or a failed request comes back as *APIError; pacing is the caller's job.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// stats.nba.com rejects requests without browser-like headers
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", "https://stats.nba.com/")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	log.Debug().
		Str("url", req.URL.String()).
		Str("method", req.Method).
		Msg("Making stats API request")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(endpoint, "error", time.Since(started))
		return nil, &APIError{Endpoint: endpoint, Body: err.Error()}
	}
	defer resp.Body.Close()

	metrics.RecordAPIRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(started))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("size", len(body)).
		Msg("Stats API request successful")

	return body, nil
}

// fetchResultSet performs a request and extracts one result set by name.
func (c *Client) fetchResultSet(ctx context.Context, endpoint string, params map[string]string, name string) (*ResultTable, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var resp statsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &APIError{Endpoint: endpoint, StatusCode: http.StatusOK, Body: fmt.Sprintf("malformed response: %v", err)}
	}

	tbl := resp.resultSet(name)
	if tbl == nil {
		return nil, &ResultSetError{Endpoint: endpoint, Name: name, Found: resp.resultSetNames()}
	}

	return tbl, nil
}

// TeamGameLog fetches one team's game log for a season. Zero rows is a valid
// empty result.
func (c *Client) TeamGameLog(ctx context.Context, teamID, season, seasonType string) (*ResultTable, error) {
	params := map[string]string{
		"TeamID":     teamID,
		"Season":     season,
		"SeasonType": seasonType,
	}
	return c.fetchResultSet(ctx, "teamgamelog", params, "TeamGameLog")
}

// LeaguePlayerGameLog fetches per-player game logs for the whole league,
// sorted ascending by date.
func (c *Client) LeaguePlayerGameLog(ctx context.Context, season, seasonType string) (*ResultTable, error) {
	params := map[string]string{
		"Counter":      "1000",
		"Direction":    "ASC",
		"LeagueID":     LeagueNBA,
		"PlayerOrTeam": "P",
		"Season":       season,
		"SeasonType":   seasonType,
		"Sorter":       "DATE",
	}
	return c.fetchResultSet(ctx, "leaguegamelog", params, "LeagueGameLog")
}

// BoxScoreTraditional fetches the traditional box score for one game and
// returns the player-level table. The table is located by its name, never by
// its position in the response.
func (c *Client) BoxScoreTraditional(ctx context.Context, gameID string) (*ResultTable, error) {
	params := map[string]string{
		"GameID":      gameID,
		"StartPeriod": "0",
		"EndPeriod":   "10",
		"StartRange":  "0",
		"EndRange":    "0",
		"RangeType":   "0",
	}
	return c.fetchResultSet(ctx, "boxscoretraditionalv2", params, "PlayerStats")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
