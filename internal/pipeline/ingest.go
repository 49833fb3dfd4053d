package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-records-dashboard/internal/model"
)

// DefaultBaseURL is the hosted records API
const DefaultBaseURL = "https://dashboard-backend-lmd9.onrender.com/api/records"

// ErrFetch is wrapped by every upstream failure
var ErrFetch = errors.New("fetch failed")

// fetchError carries the fixed per-endpoint message; status and body stay out of it
type fetchError struct {
	what string
}

func (e *fetchError) Error() string { return "failed to fetch " + e.what }

func (e *fetchError) Unwrap() error { return ErrFetch }

// ------------------- Records API client -------------------

// Client issues GET requests against the records API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchRecords returns the records matching params
func (c *Client) FetchRecords(ctx context.Context, params model.QueryParams) ([]model.Record, error) {
	body, err := c.get(ctx, "records", BuildQuery(params), "records")
	if err != nil {
		return nil, err
	}
	records, report, err := DecodeRecords(body)
	if err != nil {
		return nil, err
	}
	if report.Skipped > 0 {
		fmt.Printf("⚠️ Records: skipped %d non-object entries out of %d\n", report.Skipped, report.Total)
	}
	return records, nil
}

// FetchFilters returns the available option values for every dropdown
func (c *Client) FetchFilters(ctx context.Context) (model.FilterOptions, error) {
	body, err := c.get(ctx, "filters", "/filters", "filters")
	if err != nil {
		return nil, err
	}
	raw := map[string][]interface{}{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode filters: %w", err)
	}
	return model.DecodeFilterOptions(raw), nil
}

// FetchIntensityByYear returns the server-side intensity aggregation
func (c *Client) FetchIntensityByYear(ctx context.Context) ([]model.IntensityPoint, error) {
	var out []model.IntensityPoint
	err := c.getJSON(ctx, "intensity_by_year", "/agg/intensity-by-year", "intensity by year", &out)
	return out, err
}

// FetchLikelihoodByCountry returns the server-side likelihood aggregation
func (c *Client) FetchLikelihoodByCountry(ctx context.Context) ([]model.LikelihoodPoint, error) {
	var out []model.LikelihoodPoint
	err := c.getJSON(ctx, "likelihood_by_country", "/agg/likelihood-by-country", "likelihood by country", &out)
	return out, err
}

// FetchTopicFrequency returns the server-side topic aggregation
func (c *Client) FetchTopicFrequency(ctx context.Context) ([]model.TopicPoint, error) {
	var out []model.TopicPoint
	err := c.getJSON(ctx, "topic_frequency", "/agg/topic-frequency", "topic frequency", &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, endpoint, suffix, what string, out interface{}) error {
	body, err := c.get(ctx, endpoint, suffix, what)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, suffix, what string) ([]byte, error) {
	started := time.Now()
	url := c.BaseURL + suffix

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", what, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		trackRequest(endpoint, 0, started)
		fmt.Printf("🌐 GET %s failed: %v\n", url, err)
		return nil, &fetchError{what: what}
	}
	defer resp.Body.Close()
	trackRequest(endpoint, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &fetchError{what: what}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fetchError{what: what}
	}
	return body, nil
}
