package models

import "time"

// Finding is a single named observation within an analysis result.
type Finding struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Severity string `json:"severity"`
}

// AnalysisResult is one immutable record per analysis request. Records are
// owned by the user who requested them and are never updated or deleted.
type AnalysisResult struct {
	ID               string             `json:"id"`
	UserID           string             `json:"user_id"`
	ImageType        string             `json:"image_type"`
	Findings         []Finding          `json:"findings"`
	ConfidenceScores map[string]float64 `json:"confidence_scores"`
	CreatedAt        time.Time          `json:"timestamp"`
}
