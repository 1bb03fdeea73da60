package analysis

import (
	"fmt"

	"github.com/jonathan/career-coach/internal/types"
)

// Feedback holds the three human-readable feedback lists of a report
type Feedback struct {
	Strengths       []string
	Improvements    []string
	Recommendations []string
}

// baselineRecommendations is the fixed tail appended for every accepted resume
var baselineRecommendations = []string{
	"Use strong action verbs to begin each accomplishment (managed, developed, achieved, optimized)",
	"Quantify achievements with specific numbers, percentages, and dollar amounts",
	"Tailor keywords and skills to match target job descriptions",
	"Include relevant certifications, training, and professional development",
	"Optimize for ATS systems while maintaining human readability",
	"Keep resume concise but comprehensive (1-2 pages for most roles)",
}

// GenerateFeedback converts scores and features into strengths, improvements,
// and recommendations via ordered threshold rules. It is a total function of
// its inputs: no randomness, no external calls, no failure modes. List caps
// are applied later by Sanitize.
func GenerateFeedback(text string, scores types.CategoryScores, features *types.FeatureSet, verdict types.ClassificationVerdict) Feedback {
	if !verdict.IsActualResume {
		return nonResumeFeedback(verdict.ContentType)
	}

	fb := Feedback{
		Strengths:       make([]string, 0),
		Improvements:    make([]string, 0),
		Recommendations: make([]string, 0),
	}

	if scores.Experience >= 70 {
		fb.Strengths = append(fb.Strengths, "Strong professional experience with clear career progression")
	}
	if len(features.Skills) >= 10 {
		fb.Strengths = append(fb.Strengths, "Comprehensive skill set covering multiple technical areas")
	}
	if features.Sections[types.SectionEducation] && features.Sections[types.SectionExperience] && features.Sections[types.SectionSkills] {
		fb.Strengths = append(fb.Strengths, "Well-structured resume with all essential sections")
	}
	if scores.Format >= 75 {
		fb.Strengths = append(fb.Strengths, "Professional formatting optimized for ATS systems")
	}
	if quantifiedAchievementPattern.MatchString(text) {
		fb.Strengths = append(fb.Strengths, "Includes quantified achievements and measurable results")
	}

	if scores.Quality < 65 {
		fb.Improvements = append(fb.Improvements, "Enhance content with more specific achievements and impact statements")
	}
	if len(features.Skills) < 8 {
		fb.Improvements = append(fb.Improvements, "Add more relevant technical and industry-specific skills")
	}
	if !features.Sections[types.SectionSummary] {
		fb.Improvements = append(fb.Improvements, "Include a compelling professional summary or objective statement")
	}
	if scores.Format < 70 {
		fb.Improvements = append(fb.Improvements, "Improve formatting consistency and visual hierarchy")
	}
	if !metricPattern.MatchString(text) {
		fb.Improvements = append(fb.Improvements, "Add quantified results using numbers, percentages, and metrics")
	}
	if len(features.Keywords) < 5 {
		fb.Improvements = append(fb.Improvements, "Include more industry-relevant keywords and buzzwords")
	}

	fb.Recommendations = append(fb.Recommendations, baselineRecommendations...)

	if len(fb.Strengths) == 0 {
		fb.Strengths = append(fb.Strengths, "Resume demonstrates relevant professional background and skills")
	}
	if len(fb.Improvements) == 0 {
		fb.Improvements = append(fb.Improvements, "Consider adding more quantified achievements to strengthen impact")
	}

	return fb
}

// nonResumeFeedback returns the fixed canned feedback for rejected documents,
// naming the detected content type
func nonResumeFeedback(contentType types.ContentType) Feedback {
	return Feedback{
		Strengths: []string{"Document is readable and well-formatted"},
		Improvements: []string{
			fmt.Sprintf("This appears to be a %s, not a professional resume", contentType),
			"Please upload an actual resume with work experience and skills",
			"Include standard resume sections: contact info, experience, education, skills",
		},
		Recommendations: []string{
			"Create a professional resume document with your career information",
			"Include your work experience and key accomplishments",
			"Add education background and relevant technical skills",
			"Use a standard resume format with clear sections",
		},
	}
}
