// Package client is the Go client for the disease prediction service. It
// owns the configured endpoint and exposes a one-shot request/response
// contract to UI layers: no retries, no backoff, and exactly one failure
// type regardless of the underlying cause.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"disease-predict-pipeline/encoder"
	"disease-predict-pipeline/models"

	"github.com/apex/log"
)

// AnalysisError is the single failure type callers handle. Every failure
// path (encode, transport, non-2xx status, response parsing) collapses into
// it; the original cause is preserved for diagnostics via Unwrap and logs,
// but callers are expected to treat all instances uniformly.
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("failed to analyze image (%s)", e.Stage)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// Config holds the client configuration, resolved once at process start and
// injected here rather than read from the environment ad hoc.
type Config struct {
	// Endpoint is the prediction service URL, e.g.
	// "https://farmwise.example.com/predict". Empty means the disease
	// detection feature is not configured and should stay hidden.
	Endpoint string
}

// Client issues prediction requests against a configured endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a prediction client. Construction never fails: an absent
// endpoint produces a client that reports itself not configured.
func New(cfg Config) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{},
	}
}

// IsConfigured reports whether an endpoint was configured. Callers use this
// to decide whether to show the disease detection feature at all.
func (c *Client) IsConfigured() bool {
	return c.endpoint != ""
}

// PredictFile encodes the image file at path and requests a prediction.
func (c *Client) PredictFile(ctx context.Context, path string) (*models.PredictionResult, error) {
	encoded, err := encoder.EncodeFile(path)
	if err != nil {
		return nil, c.fail("encode", path, err)
	}
	return c.predict(ctx, encoded, path)
}

// Predict encodes the image read from r and requests a prediction.
// Filename is informational only.
func (c *Client) Predict(ctx context.Context, r io.Reader, filename string) (*models.PredictionResult, error) {
	encoded, err := encoder.Encode(r)
	if err != nil {
		return nil, c.fail("encode", filename, err)
	}
	return c.predict(ctx, encoded, filename)
}

func (c *Client) predict(ctx context.Context, encoded, filename string) (*models.PredictionResult, error) {
	body, err := json.Marshal(models.PredictionRequest{
		Image:    encoded,
		Filename: filename,
	})
	if err != nil {
		return nil, c.fail("marshal", filename, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, c.fail("request", filename, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail("transport", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail("status", filename, fmt.Errorf("prediction service returned %s", resp.Status))
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, c.fail("parse", filename, err)
	}
	if err := validateResult(&result); err != nil {
		return nil, c.fail("parse", filename, err)
	}

	return &result, nil
}

// validateResult fails fast on responses that do not match the documented
// shape instead of handing partially-typed data to the caller.
func validateResult(r *models.PredictionResult) error {
	if r.Disease == "" {
		return fmt.Errorf("response missing disease label")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("response confidence %v outside [0, 100]", r.Confidence)
	}
	return nil
}

// fail logs the diagnostic detail and wraps the cause into the uniform
// AnalysisError. Nothing is logged on success paths.
func (c *Client) fail(stage, filename string, err error) error {
	log.WithFields(log.Fields{
		"stage":    stage,
		"filename": filename,
	}).Errorf("image analysis failed: %v", err)
	return &AnalysisError{Stage: stage, Err: err}
}
