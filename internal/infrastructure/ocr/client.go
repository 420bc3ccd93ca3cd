// Package ocr talks to an external OCR backend over HTTP. This is the
// only unbounded-latency dependency of the analysis pipeline, so calls
// carry a per-request timeout and optionally run through the resilience
// executor.
package ocr

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/docsight/internal/infrastructure/resilience"
)

const defaultTimeout = 60 * time.Second

type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
	executor   *resilience.Executor
}

type Options struct {
	Timeout            time.Duration
	ResilienceExecutor *resilience.Executor
}

func New(baseURL, language string) *Client {
	return NewWithOptions(baseURL, language, Options{})
}

func NewWithOptions(baseURL, language string, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if language == "" {
		language = "eng"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		executor:   options.ResilienceExecutor,
	}
}

// Recognize submits the image and returns the recognized text. The
// backend also reports a confidence value; it is not propagated further
// in the pipeline.
func (c *Client) Recognize(ctx context.Context, filename string, image []byte) (string, error) {
	request := map[string]any{
		"image":    base64.StdEncoding.EncodeToString(image),
		"filename": filename,
		"language": c.language,
	}

	var response struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}

	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/api/ocr", request, &response, "recognize")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "ocr.recognize", call, classifyOCRError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", err
	}
	return response.Text, nil
}
