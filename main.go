package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"disease-predict-pipeline/classifier"
	"disease-predict-pipeline/config"
	"disease-predict-pipeline/database"
	"disease-predict-pipeline/handlers"
	"disease-predict-pipeline/metrics"
	"disease-predict-pipeline/rabbitmq"
	"disease-predict-pipeline/service"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	metrics.Register()

	// Select the classifier per configured mode
	mode := cfg.ResolveMode()
	var clf classifier.Classifier
	switch mode {
	case config.ModeRemote:
		if cfg.ClassifierURL == "" {
			log.Fatal("CLASSIFIER_URL is required when CLASSIFIER_MODE=remote")
		}
		clf = classifier.NewRemoteClassifier(cfg.ClassifierURL)
		metrics.FallbackMode.Set(0)
	default:
		clf = classifier.NewFallbackClassifier()
		metrics.FallbackMode.Set(1)
	}
	log.Infof("Prediction classifier mode=%s source=%s", mode, clf.SourceName())

	// Prediction history is optional; the service runs without it
	var db *database.Database
	var recorder service.Recorder
	if cfg.PredictionHistory {
		var err error
		db, err = database.NewDatabase(cfg)
		if err != nil {
			log.Warnf("Prediction history disabled: %v", err)
		} else if err := db.CreatePredictionHistoryTable(); err != nil {
			log.Warnf("Prediction history disabled: %v", err)
			db.Close()
			db = nil
		} else {
			defer db.Close()
			recorder = db
		}
	}

	// Event publishing is optional as well
	var publisher service.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.PredictionRoutingKey)
		if err != nil {
			log.Warnf("Failed to initialize RabbitMQ publisher, continuing without events: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	// Initialize service and handlers
	predictionService := service.New(cfg, clf, recorder, publisher)
	h := handlers.NewHandlers(predictionService, db, mode)

	// Setup HTTP server
	router := gin.Default()
	router.Use(corsMiddleware())

	router.POST("/predict", h.Predict)
	router.GET("/health", h.HealthCheck)
	router.GET("/diseases", h.GetDiseases)
	router.GET("/stats", h.GetStats)
	router.GET("/history/:id", h.GetPredictionByID)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Infof("Starting HTTP server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

// corsMiddleware allows the web client to call the prediction endpoint from
// another origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
