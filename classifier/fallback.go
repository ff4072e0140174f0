package classifier

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// fallbackCandidates is the fixed demo candidate set. Every entry carries a
// label and a severity so the rest of the pipeline always receives a fully
// populated candidate.
var fallbackCandidates = []Candidate{
	{Label: "Tomato___Late_blight", Severity: "High"},
	{Label: "Corn___Common_rust", Severity: "Medium"},
	{Label: "Potato___Early_blight", Severity: "Medium"},
	{Label: "Apple___Apple_scab", Severity: "Medium"},
	{Label: "Grape___Black_rot", Severity: "High"},
}

// FallbackClassifier produces plausible demo predictions when no trained
// model endpoint is configured. It picks a random candidate with a random
// confidence, keeping the rest of the pipeline exercisable without a model.
type FallbackClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackClassifier creates a time-seeded fallback classifier.
func NewFallbackClassifier() *FallbackClassifier {
	return NewSeededFallbackClassifier(time.Now().UnixNano())
}

// NewSeededFallbackClassifier creates a fallback classifier with a fixed
// seed so tests get a deterministic prediction sequence.
func NewSeededFallbackClassifier(seed int64) *FallbackClassifier {
	return &FallbackClassifier{rng: rand.New(rand.NewSource(seed))}
}

func (c *FallbackClassifier) SourceName() string { return "fallback" }

// Classify ignores the image bytes and returns a single random candidate
// with a probability in [0.75, 0.95).
func (c *FallbackClassifier) Classify(ctx context.Context, image []byte) ([]Candidate, error) {
	c.mu.Lock()
	pick := fallbackCandidates[c.rng.Intn(len(fallbackCandidates))]
	pick.Probability = 0.75 + c.rng.Float64()*0.20
	c.mu.Unlock()

	return []Candidate{pick}, nil
}
