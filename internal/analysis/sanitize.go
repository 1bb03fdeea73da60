package analysis

import "github.com/jonathan/career-coach/internal/types"

// Fallback feedback strings substituted when a list would otherwise be empty
var (
	fallbackStrength       = "Document is readable"
	fallbackImprovement    = "Consider adding more quantified achievements to strengthen impact"
	fallbackRecommendation = "Tailor keywords and skills to match target job descriptions"
)

// Sanitize enforces the documented report invariants in place: overall and
// category scores clamped to [15, 95], ATS score to [20, 100], and each
// feedback list non-empty and at most five entries (truncated, never
// reordered). It is the single enforcement point for these invariants and is
// mandatory on every path, AI-derived and deterministic alike.
func Sanitize(report *types.ScoreReport) {
	report.OverallScore = clamp(report.OverallScore, types.MinCategoryScore, types.MaxCategoryScore)
	report.Scores.Quality = clamp(report.Scores.Quality, types.MinCategoryScore, types.MaxCategoryScore)
	report.Scores.Skills = clamp(report.Scores.Skills, types.MinCategoryScore, types.MaxCategoryScore)
	report.Scores.Experience = clamp(report.Scores.Experience, types.MinCategoryScore, types.MaxCategoryScore)
	report.Scores.Education = clamp(report.Scores.Education, types.MinCategoryScore, types.MaxCategoryScore)
	report.Scores.Format = clamp(report.Scores.Format, types.MinCategoryScore, types.MaxCategoryScore)
	report.ATSScore = clamp(report.ATSScore, types.MinATSScore, types.MaxATSScore)

	report.Strengths = sanitizeList(report.Strengths, fallbackStrength)
	report.Improvements = sanitizeList(report.Improvements, fallbackImprovement)
	report.Recommendations = sanitizeList(report.Recommendations, fallbackRecommendation)
}

// sanitizeList truncates a feedback list to the cap and substitutes a fallback
// entry when empty
func sanitizeList(list []string, fallback string) []string {
	if len(list) == 0 {
		return []string{fallback}
	}
	if len(list) > types.MaxFeedbackItems {
		return list[:types.MaxFeedbackItems]
	}
	return list
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
