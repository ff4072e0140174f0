package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"disease-predict-pipeline/labels"
)

// RemoteClassifier calls a deployed model endpoint over HTTP. The endpoint
// accepts a base64-encoded image and returns either a single prediction or
// a ranked list. No request deadline is set here; callers control cancellation
// through the context and the transport keeps its default timeout behavior.
type RemoteClassifier struct {
	endpoint string
	client   *http.Client
}

// NewRemoteClassifier creates a classifier backed by the given endpoint URL.
func NewRemoteClassifier(endpoint string) *RemoteClassifier {
	return &RemoteClassifier{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

func (c *RemoteClassifier) SourceName() string { return "model" }

type remoteRequest struct {
	Image string `json:"image"`
}

type remoteResponse struct {
	Label       string      `json:"label"`
	Probability float64     `json:"probability"`
	Severity    string      `json:"severity,omitempty"`
	Predictions []Candidate `json:"predictions,omitempty"`
}

// Classify sends the image to the model endpoint and returns ranked
// candidates. A non-200 status, an undecodable body, an empty prediction
// list or an out-of-range probability are all reported as errors.
func (c *RemoteClassifier) Classify(ctx context.Context, image []byte) ([]Candidate, error) {
	body, err := json.Marshal(remoteRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classifier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status: %d", resp.StatusCode)
	}

	var parsed remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	candidates := parsed.Predictions
	if len(candidates) == 0 {
		if parsed.Label == "" {
			return nil, fmt.Errorf("classifier returned no predictions")
		}
		candidates = []Candidate{{
			Label:       parsed.Label,
			Probability: parsed.Probability,
			Severity:    parsed.Severity,
		}}
	}

	for _, cand := range candidates {
		if cand.Label == "" {
			return nil, fmt.Errorf("classifier returned a prediction with an empty label")
		}
		if err := labels.ValidateProbability(cand.Probability); err != nil {
			return nil, fmt.Errorf("classifier prediction %q: %w", cand.Label, err)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Probability > candidates[j].Probability
	})

	return candidates, nil
}
