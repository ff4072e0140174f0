package database

import (
	"database/sql"
	"fmt"
	"time"

	"disease-predict-pipeline/config"
	"disease-predict-pipeline/models"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// Database stores prediction history. The history is a side channel for
// later model retraining and operator dashboards; the prediction request
// path never depends on it.
type Database struct {
	db *sql.DB
}

// NewDatabase opens a connection to the history database. The connection is
// verified with a bounded exponential backoff so a missing database surfaces
// quickly instead of blocking startup forever.
func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	waitInterval := 1 * time.Second
	var pingErr error
	for attempt := 0; attempt < 5; attempt++ {
		if pingErr = db.Ping(); pingErr == nil {
			break
		}
		log.Warnf("database connection failed, retrying in %v: %v", waitInterval, pingErr)
		time.Sleep(waitInterval)
		waitInterval *= 2
	}
	if pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", pingErr)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Database{db: db}, nil
}

// NewDatabaseWithDB wraps an existing connection, used by tests.
func NewDatabaseWithDB(db *sql.DB) *Database {
	return &Database{db: db}
}

// GetDB returns the underlying database connection
func (d *Database) GetDB() *sql.DB {
	return d.db
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// CreatePredictionHistoryTable creates the prediction_history table if it
// doesn't exist
func (d *Database) CreatePredictionHistoryTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS prediction_history (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		filename VARCHAR(255) NOT NULL DEFAULT '',
		label VARCHAR(255) NOT NULL,
		disease VARCHAR(255) NOT NULL,
		confidence DOUBLE NOT NULL,
		severity VARCHAR(16) NOT NULL,
		source VARCHAR(32) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_created_at (created_at),
		INDEX idx_disease (disease)
	)`

	_, err := d.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create prediction_history table: %w", err)
	}
	return nil
}

// SavePrediction inserts one served prediction into the history table.
func (d *Database) SavePrediction(record *models.PredictionRecord) error {
	query := `
	INSERT INTO prediction_history (id, filename, label, disease, confidence, severity, source)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.Exec(query,
		record.ID,
		record.Filename,
		record.Label,
		record.Disease,
		record.Confidence,
		record.Severity,
		record.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

// GetPredictionByID returns one history row by its prediction id.
func (d *Database) GetPredictionByID(id string) (*models.PredictionRecord, error) {
	query := `
	SELECT id, filename, label, disease, confidence, severity, source, created_at
	FROM prediction_history
	WHERE id = ?`

	var record models.PredictionRecord
	err := d.db.QueryRow(query, id).Scan(
		&record.ID,
		&record.Filename,
		&record.Label,
		&record.Disease,
		&record.Confidence,
		&record.Severity,
		&record.Source,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetStats returns overall prediction counts plus a per-source breakdown.
func (d *Database) GetStats() (total int, bySource map[string]int, err error) {
	if err = d.db.QueryRow("SELECT COUNT(*) FROM prediction_history").Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("failed to count predictions: %w", err)
	}

	rows, err := d.db.Query(`
		SELECT source, COUNT(*) as count
		FROM prediction_history
		GROUP BY source
	`)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get predictions by source: %w", err)
	}
	defer rows.Close()

	bySource = make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return 0, nil, fmt.Errorf("failed to scan predictions by source: %w", err)
		}
		bySource[source] = count
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("failed to read predictions by source: %w", err)
	}

	return total, bySource, nil
}
