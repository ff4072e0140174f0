package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"disease-predict-pipeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, New(Config{}).IsConfigured())
	assert.True(t, New(Config{Endpoint: "http://localhost:8080/predict"}).IsConfigured())
}

func TestPredictSuccess(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.PredictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "leaf.jpg", req.Filename)

		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		require.NoError(t, err)
		assert.Equal(t, image, decoded)

		json.NewEncoder(w).Encode(models.PredictionResult{
			Disease:    "Tomato Late Blight",
			Confidence: 92.5,
			Severity:   "High",
			Symptoms:   []string{"dark blotches"},
			Treatment:  []string{"remove infected plants"},
			Prevention: []string{"resistant varieties"},
			Source:     models.SourceModel,
		})
	}))
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL})
	result, err := c.Predict(context.Background(), bytes.NewReader(image), "leaf.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Late Blight", result.Disease)
	assert.Equal(t, 92.5, result.Confidence)
	assert.Equal(t, "High", result.Severity)
}

// Any non-2xx status must surface as the one uniform AnalysisError,
// regardless of the specific status code.
func TestPredictNon2xxIsUniformAnalysisError(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusServiceUnavailable}

	for _, status := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := New(Config{Endpoint: srv.URL})
		_, err := c.Predict(context.Background(), bytes.NewReader([]byte("x")), "leaf.jpg")
		srv.Close()

		var analysisErr *AnalysisError
		require.ErrorAs(t, err, &analysisErr, "status %d", status)
	}
}

func TestPredictTransportFailureIsAnalysisError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := New(Config{Endpoint: srv.URL})
	_, err := c.Predict(context.Background(), bytes.NewReader([]byte("x")), "leaf.jpg")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
}

func TestPredictMalformedResponseIsAnalysisError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL})
	_, err := c.Predict(context.Background(), bytes.NewReader([]byte("x")), "leaf.jpg")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
}

func TestPredictRejectsOutOfRangeConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.PredictionResult{
			Disease:    "Tomato Late Blight",
			Confidence: 150,
		})
	}))
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL})
	_, err := c.Predict(context.Background(), bytes.NewReader([]byte("x")), "leaf.jpg")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
}

func TestPredictFileEncodeFailure(t *testing.T) {
	c := New(Config{Endpoint: "http://localhost:1/predict"})
	_, err := c.PredictFile(context.Background(), "/nonexistent/leaf.jpg")

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "encode", analysisErr.Stage)
	// The cause stays reachable for diagnostics.
	assert.True(t, errors.Is(err, analysisErr.Err))
}
