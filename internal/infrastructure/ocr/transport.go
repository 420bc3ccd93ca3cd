package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kirillkom/docsight/internal/infrastructure/resilience"
)

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ocr %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return newStatusError(operation, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

type statusError struct {
	operation string
	code      int
	message   string
}

func newStatusError(operation string, resp *http.Response) *statusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &statusError{
		operation: operation,
		code:      resp.StatusCode,
		message:   strings.TrimSpace(string(body)),
	}
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("ocr %s status: %d", e.operation, e.code)
	}
	return fmt.Sprintf("ocr %s status: %d: %s", e.operation, e.code, e.message)
}

func classifyOCRError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{
			Retryable:     false,
			RecordFailure: false,
		}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{
			Retryable:     true,
			RecordFailure: true,
		}
	}

	var status *statusError
	if errors.As(err, &status) {
		// 5xx means the backend is struggling; 4xx means the request
		// itself is bad and retrying cannot help.
		return resilience.ErrorClassification{
			Retryable:     status.code >= 500,
			RecordFailure: status.code >= 500,
		}
	}

	// Transport-level failure: connection refused, reset, timeout.
	return resilience.ErrorClassification{
		Retryable:     true,
		RecordFailure: true,
	}
}
