package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tdubuke98/gostop/internal/domain"
)

type chartServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewChartService creates a client for the external chart renderer. The
// renderer draws the plot; this service only ships the numeric series.
func NewChartService(baseURL, apiKey string) domain.ChartService {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &chartServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// renderRequest is the payload consumed by the chart renderer
type renderRequest struct {
	Title  string               `json:"title"`
	XLabel string               `json:"x_label"`
	YLabel string               `json:"y_label"`
	Series []domain.ChartSeries `json:"series"`
}

// RenderSVG posts the balance series and returns the rendered SVG document
func (c *chartServiceImpl) RenderSVG(series []domain.ChartSeries) ([]byte, error) {
	payload := renderRequest{
		Title:  "Player Points Over Time",
		XLabel: "Game",
		YLabel: "Cumulative Points",
		Series: series,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/render/svg", c.baseURL)
	req, err := retryablehttp.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read renderer response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart renderer error: unexpected status %d - %s", resp.StatusCode, string(body))
	}

	return body, nil
}
