// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ContentType classifies what kind of document was submitted for analysis
type ContentType string

// Recognized document content types
const (
	ContentTypeResume      ContentType = "resume"
	ContentTypeCertificate ContentType = "certificate"
	ContentTypeTraining    ContentType = "training"
	ContentTypeArticle     ContentType = "article"
	ContentTypeOther       ContentType = "other"
)

// Score range bounds enforced on every report before it leaves the engine
const (
	MinCategoryScore = 15
	MaxCategoryScore = 95
	MinATSScore      = 20
	MaxATSScore      = 100
	MaxFeedbackItems = 5
)

// ClassificationVerdict is the classifier's decision about a submitted document.
// Certificate detection is a hard override: a single certificate marker forces
// IsActualResume to false regardless of any other signal.
type ClassificationVerdict struct {
	IsActualResume bool        `json:"is_actual_resume"`
	ContentType    ContentType `json:"content_type"`
}

// CategoryScores holds the five per-category scores of a resume analysis
type CategoryScores struct {
	Quality    int `json:"quality"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Format     int `json:"format"`
}

// TextStats summarizes the structural statistics gathered during feature extraction.
// WordCount counts whitespace-separated tokens longer than two characters; the
// same definition is used for scoring, classification, and display.
type TextStats struct {
	WordCount          int `json:"word_count"`
	LineCount          int `json:"line_count"`
	SectionsFound      int `json:"sections_found"`
	SkillsFound        int `json:"skills_found"`
	KeywordsFound      int `json:"keywords_found"`
	CertificateMarkers int `json:"certificate_markers"`
}

// ScoreReport is the immutable result of a single resume analysis
type ScoreReport struct {
	ID              uuid.UUID      `json:"id"`
	IsActualResume  bool           `json:"is_actual_resume"`
	ContentType     ContentType    `json:"content_type"`
	OverallScore    int            `json:"overall_score"`
	Scores          CategoryScores `json:"scores"`
	ATSScore        int            `json:"ats_score"`
	Strengths       []string       `json:"strengths"`
	Improvements    []string       `json:"improvements"`
	Recommendations []string       `json:"recommendations"`
	TextStats       TextStats      `json:"text_stats"`
	AnalysisMethod  string         `json:"analysis_method"`
	AnalyzedAt      time.Time      `json:"analyzed_at"`
}

// Analysis method identifiers recorded on a ScoreReport
const (
	MethodHeuristic = "heuristic"
	MethodAI        = "ai"
)

// Validate checks the documented score-range and feedback-list invariants.
// A report that fails validation must never reach a caller.
func (r *ScoreReport) Validate() error {
	if r.OverallScore < MinCategoryScore || r.OverallScore > MaxCategoryScore {
		return fmt.Errorf("overall score %d outside [%d, %d]", r.OverallScore, MinCategoryScore, MaxCategoryScore)
	}
	categories := map[string]int{
		"quality":    r.Scores.Quality,
		"skills":     r.Scores.Skills,
		"experience": r.Scores.Experience,
		"education":  r.Scores.Education,
		"format":     r.Scores.Format,
	}
	for name, score := range categories {
		if score < MinCategoryScore || score > MaxCategoryScore {
			return fmt.Errorf("%s score %d outside [%d, %d]", name, score, MinCategoryScore, MaxCategoryScore)
		}
	}
	if r.ATSScore < MinATSScore || r.ATSScore > MaxATSScore {
		return fmt.Errorf("ats score %d outside [%d, %d]", r.ATSScore, MinATSScore, MaxATSScore)
	}
	lists := map[string][]string{
		"strengths":       r.Strengths,
		"improvements":    r.Improvements,
		"recommendations": r.Recommendations,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("%s list is empty", name)
		}
		if len(list) > MaxFeedbackItems {
			return fmt.Errorf("%s list has %d items, max %d", name, len(list), MaxFeedbackItems)
		}
	}
	return nil
}
