// Package analyzer is a stand-in for a real medical inference backend. It
// maps an image-type label to a fixed set of findings; the contract callers
// rely on is determinism, not diagnostic accuracy.
package analyzer

import (
	"strings"

	"github.com/zemedic/zemedic-be/internal/models"
)

// Result bundles the findings of one analysis with their confidence scores.
type Result struct {
	Findings         []models.Finding
	ConfidenceScores map[string]float64
}

// Analyze returns canned findings for the given image type. Matching is
// case-insensitive; unrecognized labels report no significant findings.
func Analyze(imageType string) Result {
	switch strings.ToLower(imageType) {
	case "xray":
		return Result{
			Findings: []models.Finding{
				{Name: "Pneumonia", Location: "Right Lower Lobe", Severity: "Moderate"},
				{Name: "Pleural Effusion", Location: "Right Side", Severity: "Mild"},
			},
			ConfidenceScores: map[string]float64{
				"Pneumonia":        0.94,
				"Pleural Effusion": 0.78,
				"Tuberculosis":     0.01,
			},
		}
	case "mri":
		return Result{
			Findings: []models.Finding{
				{Name: "Disc Herniation", Location: "L4-L5", Severity: "Moderate"},
				{Name: "Spinal Stenosis", Location: "L3-L4", Severity: "Mild"},
			},
			ConfidenceScores: map[string]float64{
				"Disc Herniation": 0.89,
				"Spinal Stenosis": 0.76,
				"Tumor":           0.02,
			},
		}
	default:
		return Result{
			Findings: []models.Finding{
				{Name: "No significant findings", Location: "N/A", Severity: "N/A"},
			},
			ConfidenceScores: map[string]float64{
				"Normal": 0.95,
			},
		}
	}
}
