package database

import (
	"errors"
	"testing"
	"time"

	"disease-predict-pipeline/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePrediction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO prediction_history").
		WithArgs("abc-123", "leaf.jpg", "Tomato___Late_blight", "Tomato Late Blight", 92.5, "High", "model").
		WillReturnResult(sqlmock.NewResult(1, 1))

	d := NewDatabaseWithDB(db)
	err = d.SavePrediction(&models.PredictionRecord{
		ID:         "abc-123",
		Filename:   "leaf.jpg",
		Label:      "Tomato___Late_blight",
		Disease:    "Tomato Late Blight",
		Confidence: 92.5,
		Severity:   "High",
		Source:     "model",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPredictionByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "filename", "label", "disease", "confidence", "severity", "source", "created_at"}).
		AddRow("abc-123", "leaf.jpg", "Tomato___Late_blight", "Tomato Late Blight", 92.5, "High", "model", created)

	mock.ExpectQuery("SELECT id, filename, label, disease, confidence, severity, source, created_at").
		WithArgs("abc-123").
		WillReturnRows(rows)

	d := NewDatabaseWithDB(db)
	record, err := d.GetPredictionByID("abc-123")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Late Blight", record.Disease)
	assert.Equal(t, 92.5, record.Confidence)
	assert.Equal(t, created, record.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM prediction_history").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery("SELECT source, COUNT\\(\\*\\) as count").
		WillReturnRows(sqlmock.NewRows([]string{"source", "count"}).
			AddRow("model", 5).
			AddRow("fallback", 2))

	d := NewDatabaseWithDB(db)
	total, bySource, err := d.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Equal(t, map[string]int{"model": 5, "fallback": 2}, bySource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A row that fails to scan must fail the whole call rather than silently
// producing a partial breakdown.
func TestGetStatsScanErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM prediction_history").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT source, COUNT\\(\\*\\) as count").
		WillReturnRows(sqlmock.NewRows([]string{"source", "count"}).
			AddRow("model", 2).
			AddRow("fallback", "not-a-number"))

	d := NewDatabaseWithDB(db)
	_, _, err = d.GetStats()
	require.Error(t, err)
}

// A deferred row error must surface instead of truncating the result.
func TestGetStatsRowErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM prediction_history").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT source, COUNT\\(\\*\\) as count").
		WillReturnRows(sqlmock.NewRows([]string{"source", "count"}).
			AddRow("model", 2).
			RowError(0, errors.New("connection reset")))

	d := NewDatabaseWithDB(db)
	_, _, err = d.GetStats()
	require.Error(t, err)
}
