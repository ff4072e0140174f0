package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"disease-predict-pipeline/database"
	"disease-predict-pipeline/diseaseinfo"
	"disease-predict-pipeline/metrics"
	"disease-predict-pipeline/models"
	"disease-predict-pipeline/service"

	"github.com/gin-gonic/gin"
)

// Handlers represents the HTTP handlers
type Handlers struct {
	svc  *service.Service
	db   *database.Database
	mode string
}

// NewHandlers creates new HTTP handlers. db may be nil when prediction
// history is disabled.
func NewHandlers(svc *service.Service, db *database.Database, mode string) *Handlers {
	return &Handlers{svc: svc, db: db, mode: mode}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "disease-predict-pipeline",
		"mode":    h.mode,
	})
}

// Predict handles a disease prediction request
func (h *Handlers) Predict(c *gin.Context) {
	start := time.Now()
	source := h.svc.Source()
	// Error-path latency matters too: slow classifier faults must show up.
	defer func() {
		metrics.PredictionDurationSeconds.WithLabelValues(source).Observe(time.Since(start).Seconds())
	}()

	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.PredictionsTotal.WithLabelValues("bad_request", source).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid JSON body",
		})
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBadRequest) {
			metrics.PredictionsTotal.WithLabelValues("bad_request", source).Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		metrics.PredictionsTotal.WithLabelValues("error", source).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	metrics.PredictionsTotal.WithLabelValues("ok", source).Inc()
	c.JSON(http.StatusOK, result)
}

// GetDiseases lists the knowledge base entries
func (h *Handlers) GetDiseases(c *gin.Context) {
	entries := diseaseinfo.All()
	c.JSON(http.StatusOK, gin.H{
		"diseases": entries,
		"count":    len(entries),
	})
}

// GetStats returns prediction history statistics
func (h *Handlers) GetStats(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "prediction history is not enabled",
		})
		return
	}

	total, bySource, err := h.db.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get prediction stats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_predictions":     total,
		"predictions_by_source": bySource,
	})
}

// GetPredictionByID returns one prediction history record
func (h *Handlers) GetPredictionByID(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "prediction history is not enabled",
		})
		return
	}

	record, err := h.db.GetPredictionByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "prediction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get prediction",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}
