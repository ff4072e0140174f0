package models

import (
	"time"
)

// Prediction sources, echoed in every response so callers can tell a real
// model result from a demo-mode one.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// PredictionRequest is the body of POST /predict. Image is base64 without a
// data-URI prefix; Filename is informational only and is not validated.
type PredictionRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// PredictionResult is the advisory result returned for one image.
type PredictionResult struct {
	Disease    string   `json:"disease"`
	Confidence float64  `json:"confidence"`
	Severity   string   `json:"severity"`
	Symptoms   []string `json:"symptoms"`
	Treatment  []string `json:"treatment"`
	Prevention []string `json:"prevention"`
	ImageURL   string   `json:"image_url,omitempty"`
	Source     string   `json:"source"`
}

// PredictionRecord is one row of the optional prediction history table.
type PredictionRecord struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Label      string    `json:"label"`
	Disease    string    `json:"disease"`
	Confidence float64   `json:"confidence"`
	Severity   string    `json:"severity"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// PredictionEvent is published to RabbitMQ after each served prediction so
// downstream services (advisory feed, notifications) can react to it.
type PredictionEvent struct {
	ID        string            `json:"id"`
	Filename  string            `json:"filename"`
	Result    *PredictionResult `json:"result"`
	Timestamp time.Time         `json:"timestamp"`
}
