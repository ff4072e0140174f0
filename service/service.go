package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"time"

	_ "image/gif"
	_ "image/png"

	"disease-predict-pipeline/classifier"
	"disease-predict-pipeline/config"
	"disease-predict-pipeline/diseaseinfo"
	"disease-predict-pipeline/labels"
	"disease-predict-pipeline/metrics"
	"disease-predict-pipeline/models"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// ErrBadRequest marks failures caused by the request itself: missing image,
// undecodable base64, or bytes that are not a valid image. Handlers map it
// to HTTP 400.
var ErrBadRequest = errors.New("bad request")

// ErrInternal marks unexpected faults during classification or enrichment.
// Handlers map it to HTTP 500 with a structured error body.
var ErrInternal = errors.New("internal error")

// Recorder persists served predictions. Implemented by database.Database.
type Recorder interface {
	SavePrediction(record *models.PredictionRecord) error
}

// EventPublisher publishes prediction events. Implemented by
// rabbitmq.Publisher.
type EventPublisher interface {
	Publish(message interface{}) error
}

// Service turns an encoded image into an advisory prediction result. It is
// stateless across requests; the knowledge base it consults is read-only.
type Service struct {
	clf         classifier.Classifier
	maxImageDim int
	recorder    Recorder
	publisher   EventPublisher
}

// New creates the prediction service. Recorder and publisher are optional
// side channels and may be nil; predictions are served without them.
func New(cfg *config.Config, clf classifier.Classifier, recorder Recorder, publisher EventPublisher) *Service {
	return &Service{
		clf:         clf,
		maxImageDim: cfg.MaxImageDim,
		recorder:    recorder,
		publisher:   publisher,
	}
}

// Source returns the label of the classifier backing this service.
func (s *Service) Source() string {
	return s.clf.SourceName()
}

// Analyze validates the request, invokes the classifier and enriches the
// top prediction with knowledge-base advisory content.
func (s *Service) Analyze(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error) {
	if req == nil || req.Image == "" {
		return nil, fmt.Errorf("%w: no image provided", ErrBadRequest)
	}

	raw, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 image data", ErrBadRequest)
	}

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported or corrupt image", ErrBadRequest)
	}

	if s.maxImageDim > 0 && (imgCfg.Width > s.maxImageDim || imgCfg.Height > s.maxImageDim) {
		raw = s.downscale(raw)
	}

	candidates, err := s.clf.Classify(ctx, raw)
	if err != nil {
		log.WithFields(log.Fields{
			"source":   s.clf.SourceName(),
			"filename": req.Filename,
			"format":   format,
		}).Errorf("classifier call failed: %v", err)
		return nil, fmt.Errorf("%w: classification failed", ErrInternal)
	}
	if len(candidates) == 0 {
		log.Errorf("classifier %s returned no candidates", s.clf.SourceName())
		return nil, fmt.Errorf("%w: classification failed", ErrInternal)
	}

	top := candidates[0]
	if err := labels.ValidateProbability(top.Probability); err != nil {
		log.Errorf("classifier %s returned invalid probability %v for %q", s.clf.SourceName(), top.Probability, top.Label)
		return nil, fmt.Errorf("%w: classification failed", ErrInternal)
	}

	entry, known := diseaseinfo.Lookup(top.Label)
	if !known && top.Severity != "" {
		// The classifier's own severity estimate beats the generic default.
		entry = diseaseinfo.Generic(labels.Prettify(top.Label), top.Severity)
	}

	result := &models.PredictionResult{
		Disease:    entry.Name,
		Confidence: roundConfidence(top.Probability),
		Severity:   entry.Severity,
		Symptoms:   entry.Symptoms,
		Treatment:  entry.Treatment,
		Prevention: entry.Prevention,
		Source:     s.clf.SourceName(),
	}

	s.record(req.Filename, top.Label, result)

	return result, nil
}

// record persists and publishes the served prediction, best-effort.
func (s *Service) record(filename, label string, result *models.PredictionResult) {
	if s.recorder == nil && s.publisher == nil {
		return
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	if s.recorder != nil {
		err := s.recorder.SavePrediction(&models.PredictionRecord{
			ID:         id,
			Filename:   filename,
			Label:      label,
			Disease:    result.Disease,
			Confidence: result.Confidence,
			Severity:   result.Severity,
			Source:     result.Source,
			CreatedAt:  now,
		})
		if err != nil {
			metrics.HistoryWriteErrorTotal.Inc()
			log.Warnf("failed to save prediction %s to history: %v", id, err)
		}
	}

	if s.publisher != nil {
		err := s.publisher.Publish(&models.PredictionEvent{
			ID:        id,
			Filename:  filename,
			Result:    result,
			Timestamp: now,
		})
		if err != nil {
			metrics.PublishErrorTotal.Inc()
			log.Warnf("failed to publish prediction event %s: %v", id, err)
		}
	}
}

// downscale bounds the longer image edge to maxImageDim before the
// classifier call, re-encoding as JPEG. On any failure the original bytes
// are kept; preprocessing must never reject a request.
func (s *Service) downscale(raw []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return raw
	}

	bounded := resize.Thumbnail(uint(s.maxImageDim), uint(s.maxImageDim), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, bounded, &jpeg.Options{Quality: 85}); err != nil {
		return raw
	}
	return buf.Bytes()
}

// roundConfidence scales a [0,1] probability to a percentage with two
// decimal places.
func roundConfidence(probability float64) float64 {
	return math.Round(probability*100*100) / 100
}
