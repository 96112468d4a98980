package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

// apiClient is a thin JSON client for the monitor's HTTP API.
type apiClient struct {
	baseURL string
	key     string
	http    *http.Client
}

func newAPIClient(baseURL, key string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		// An explicit check blocks for up to samples x timeout per target.
		http: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (c *apiClient) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, msg)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type upsertPayload struct {
	URL                     string  `json:"url"`
	LatencyThresholdSeconds float64 `json:"latency_threshold_seconds"`
}

type upsertResponse struct {
	Target domain.Target      `json:"target"`
	Result domain.ProbeResult `json:"result"`
}

func (c *apiClient) ListTargets() ([]domain.Target, error) {
	var out []domain.Target
	err := c.do(http.MethodGet, "/api/targets", nil, &out)
	return out, err
}

func (c *apiClient) UpsertTarget(rawURL string, threshold float64) (*upsertResponse, error) {
	var out upsertResponse
	err := c.do(http.MethodPost, "/api/targets", upsertPayload{
		URL:                     rawURL,
		LatencyThresholdSeconds: threshold,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) RemoveTarget(rawURL string) error {
	return c.do(http.MethodDelete, "/api/targets?url="+url.QueryEscape(rawURL), nil, nil)
}

func (c *apiClient) Results() ([]domain.ProbeResult, error) {
	var out []domain.ProbeResult
	err := c.do(http.MethodGet, "/api/results", nil, &out)
	return out, err
}

func (c *apiClient) RunCycle() ([]domain.ProbeResult, error) {
	var out []domain.ProbeResult
	err := c.do(http.MethodPost, "/api/checks", nil, &out)
	return out, err
}
