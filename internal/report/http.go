package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/internal/domain/dashboard"
	"github.com/okian/campus/internal/domain/model"
)

// Client reads dashboard sections from a running portal service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new HTTP client with timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError mirrors the service error body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends a request and decodes a 200 response into out.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeResponse, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Code != "" {
			return fmt.Errorf("%w: %s %s: %d %s: %s", ErrUnexpectedStatus, method, path, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeResponse, path, err)
	}
	return nil
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Placement fetches the overall placement statistics.
func (c *Client) Placement(ctx context.Context) (dashboard.PlacementStats, error) {
	return get[dashboard.PlacementStats](ctx, c, "/placements/stats")
}

// YearWise fetches per-year placement counts.
func (c *Client) YearWise(ctx context.Context) ([]dashboard.YearStat, error) {
	return get[[]dashboard.YearStat](ctx, c, "/placements/years")
}

// BranchWise fetches per-branch placement counts.
func (c *Client) BranchWise(ctx context.Context) ([]dashboard.BranchStat, error) {
	return get[[]dashboard.BranchStat](ctx, c, "/placements/branches")
}

// CompanyWise fetches per-company hiring counts.
func (c *Client) CompanyWise(ctx context.Context) ([]dashboard.CompanyStat, error) {
	return get[[]dashboard.CompanyStat](ctx, c, "/placements/companies")
}

// TopPerformers fetches the n highest-paid placed students.
func (c *Client) TopPerformers(ctx context.Context, n int) ([]model.PlacedStudent, error) {
	return get[[]model.PlacedStudent](ctx, c, "/placements/top?limit="+strconv.Itoa(n))
}

// Improvement fetches the ranking improvement summary.
func (c *Client) Improvement(ctx context.Context) (dashboard.ImprovementStats, error) {
	return get[dashboard.ImprovementStats](ctx, c, "/rankings/improvement")
}

// ReplaceDataset uploads a JSON array that replaces the named dataset.
func (c *Client) ReplaceDataset(ctx context.Context, name string, payload []byte) (service.DatasetInfo, error) {
	var info service.DatasetInfo
	err := c.do(ctx, http.MethodPut, "/datasets/"+url.PathEscape(name), payload, &info)
	return info, err
}
