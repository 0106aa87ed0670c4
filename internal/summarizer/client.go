// Package summarizer calls the external text-generation service that writes
// the executive summary of a monthly monitoring report. The service is
// opaque: one JSON POST in, one summary string out.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrDisabled = errors.New("summary service is not configured")

type Client struct {
	url    string
	apiKey string
	client *http.Client
}

func New(url, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type summaryRequest struct {
	PatientName string  `json:"patient_name"`
	Month       string  `json:"month"`
	HoursWorked float64 `json:"hours_worked"`
	Occurrences string  `json:"occurrences"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (c *Client) Summarize(ctx context.Context, patientName, month string, hoursWorked float64, occurrences string) (string, error) {
	const op = "summarizer.Client.Summarize"

	if c.url == "" {
		return "", fmt.Errorf("%s: %w", op, ErrDisabled)
	}

	body, err := json.Marshal(summaryRequest{
		PatientName: patientName,
		Month:       month,
		HoursWorked: hoursWorked,
		Occurrences: occurrences,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var result summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return result.Summary, nil
}
