package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/models"
)

// maxAnalysesPerList bounds how much history a single list call returns.
const maxAnalysesPerList = 100

// AnalysisServiceProvider defines the interface for the analysis store.
type AnalysisServiceProvider interface {
	Record(ctx context.Context, userID, imageType string, findings []models.Finding, scores map[string]float64) (models.AnalysisResult, error)
	ListForUser(ctx context.Context, userID string) ([]models.AnalysisResult, error)
	Get(ctx context.Context, analysisID, userID string) (models.AnalysisResult, error)
}

// AnalysisService persists and queries analysis records scoped by owner.
type AnalysisService struct {
	db  *sql.DB
	now func() time.Time
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *sql.DB) *AnalysisService {
	return &AnalysisService{db: db, now: time.Now}
}

const analysisColumns = "id, user_id, image_type, findings_json, scores_json, created_at"

// Record persists a new immutable analysis result for the given user.
func (s *AnalysisService) Record(ctx context.Context, userID, imageType string, findings []models.Finding, scores map[string]float64) (models.AnalysisResult, error) {
	result := models.AnalysisResult{
		ID:               uuid.New().String(),
		UserID:           userID,
		ImageType:        imageType,
		Findings:         findings,
		ConfidenceScores: scores,
		CreatedAt:        s.now().UTC(),
	}

	findingsJSON, err := json.Marshal(result.Findings)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	scoresJSON, err := json.Marshal(result.ConfidenceScores)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO analyses("+analysisColumns+") VALUES(?, ?, ?, ?, ?, ?)",
		result.ID, result.UserID, result.ImageType,
		string(findingsJSON), string(scoresJSON), result.CreatedAt.UnixNano())
	if err != nil {
		return models.AnalysisResult{}, err
	}
	return result, nil
}

// ListForUser returns the user's analyses, newest first, capped at 100.
func (s *AnalysisService) ListForUser(ctx context.Context, userID string) ([]models.AnalysisResult, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+analysisColumns+" FROM analyses WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		userID, maxAnalysesPerList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.AnalysisResult, 0)
	for rows.Next() {
		result, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Get returns a single analysis. Ownership is part of the lookup itself: an
// id owned by another user reads the same as a missing record.
func (s *AnalysisService) Get(ctx context.Context, analysisID, userID string) (models.AnalysisResult, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+analysisColumns+" FROM analyses WHERE id = ? AND user_id = ?",
		analysisID, userID)
	result, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AnalysisResult{}, apierr.ErrNotFound
		}
		return models.AnalysisResult{}, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (models.AnalysisResult, error) {
	var result models.AnalysisResult
	var findingsJSON, scoresJSON string
	var createdAt int64
	if err := row.Scan(&result.ID, &result.UserID, &result.ImageType,
		&findingsJSON, &scoresJSON, &createdAt); err != nil {
		return models.AnalysisResult{}, err
	}
	if err := json.Unmarshal([]byte(findingsJSON), &result.Findings); err != nil {
		return models.AnalysisResult{}, err
	}
	if err := json.Unmarshal([]byte(scoresJSON), &result.ConfidenceScores); err != nil {
		return models.AnalysisResult{}, err
	}
	result.CreatedAt = time.Unix(0, createdAt).UTC()
	return result, nil
}
