package census

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://www.census.gov/data/developers/data-sets/acs-5year.html
// Sample request:
// https://api.census.gov/data/2021/acs/acs5?get=NAME,B01003_001E&for=place:*&in=state:53
const (
	baseURL = "https://api.census.gov/data/2021/acs/acs5"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL is useful for tests against a local HTTP server.
func NewClientWithBaseURL(base, apiKey string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = base
	return c
}

// GetPlaceData fetches ACS variables for every place in a state and picks the
// row best matching the given city name. Census place names look like
// "Seattle city, Washington", so the match is best-effort: exact "<city> city"
// first, then prefix, then substring, all case-insensitive.
func (c *Client) GetPlaceData(ctx context.Context, stateFIPS, city string) (*PlaceData, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	variables := strings.Join([]string{
		"NAME",
		VarTotalPopulation,
		VarMedianAge,
		VarMedianIncome,
		VarLaborForce,
		VarEmployed,
		VarAdults25Plus,
		VarBachelors,
	}, ",")

	q := u.Query()
	q.Set("get", variables)
	q.Set("for", "place:*")
	q.Set("in", "state:"+stateFIPS)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// The census API returns a JSON array of string arrays; row 0 is the
	// header.
	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no places returned for state %s", stateFIPS)
	}

	row := matchPlaceRow(rows[1:], city)
	if row == nil {
		return nil, fmt.Errorf("no place matching %q in state %s", city, stateFIPS)
	}

	return parsePlaceRow(row)
}

// matchPlaceRow scans data rows (NAME in column 0) for the best city match.
func matchPlaceRow(rows [][]string, city string) []string {
	needle := strings.ToLower(strings.TrimSpace(city))
	exact := needle + " city,"

	var prefixMatch, containsMatch []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.ToLower(row[0])
		switch {
		case strings.HasPrefix(name, exact):
			return row
		case prefixMatch == nil && strings.HasPrefix(name, needle):
			prefixMatch = row
		case containsMatch == nil && strings.Contains(name, needle):
			containsMatch = row
		}
	}
	if prefixMatch != nil {
		return prefixMatch
	}
	return containsMatch
}

func parsePlaceRow(row []string) (*PlaceData, error) {
	// NAME + 7 variables; trailing columns (state, place) are ignored.
	if len(row) < 8 {
		return nil, fmt.Errorf("malformed place row: %d columns", len(row))
	}

	data := &PlaceData{Name: row[0]}
	data.Population = parseInt(row[1])
	data.MedianAge = parseFloat(row[2])
	data.MedianIncome = parseInt(row[3])
	data.LaborForce = parseInt(row[4])
	data.Employed = parseInt(row[5])
	data.Adults25Plus = parseInt(row[6])
	data.Bachelors = parseInt(row[7])

	if data.Population <= 0 {
		return nil, fmt.Errorf("place %q has no population data", data.Name)
	}
	return data, nil
}

// ACS uses negative sentinel values (e.g. -666666666) for suppressed
// estimates; treat those and unparseable cells as zero.
func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
