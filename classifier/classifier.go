package classifier

import (
	"context"
)

// Candidate is one ranked prediction from a classifier: a raw class label
// and its probability in [0, 1]. Severity is optional and only present when
// the classifier itself estimates it.
type Candidate struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Severity    string  `json:"severity,omitempty"`
}

// Classifier abstracts the image classification capability used by the
// prediction service. Implementations must be concurrency-safe and must
// return at least one candidate or an error, never an empty result.
type Classifier interface {
	// Classify takes raw image bytes and returns candidates ranked by
	// probability, best first.
	Classify(ctx context.Context, image []byte) ([]Candidate, error)
	// SourceName returns a short label identifying the prediction source
	// (e.g., "model", "fallback"), echoed in responses and metrics.
	SourceName() string
}
