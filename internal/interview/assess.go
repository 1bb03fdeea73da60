// Package interview implements deterministic interview-answer grading and
// fallback question generation. Like the resume engine, it is a stateless
// function of its inputs plus fixed rubric tables.
package interview

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// answerBaseScore is the starting score before any rubric increments
const answerBaseScore = 3.0

var digitPattern = regexp.MustCompile(`\d+`)

// AssessAnswer grades a single interview answer against the fixed rubric:
// word-count band, content-quality markers, and STAR-method indicators for
// story-style questions. The result is clamped to [1, 10] and rounded to one
// decimal.
func AssessAnswer(question, answer string) types.InterviewAssessment {
	score := scoreAnswer(question, answer)
	return types.InterviewAssessment{
		Score:    score,
		Feedback: feedbackForScore(score),
		Tips:     tipsForAnswer(answer),
	}
}

// scoreAnswer computes the deterministic answer score
func scoreAnswer(question, answer string) float64 {
	score := answerBaseScore
	answerLower := strings.ToLower(answer)
	wordCount := len(strings.Fields(answer))

	// Length band
	switch {
	case wordCount >= 50 && wordCount <= 200:
		score += 2
	case wordCount >= 25 && wordCount <= 300:
		score += 1.5
	case wordCount >= 15:
		score += 1
	}

	// Content quality markers
	if strings.Contains(answerLower, "example") {
		score += 0.8
	}
	if strings.Contains(answerLower, "result") || strings.Contains(answerLower, "outcome") {
		score += 0.7
	}
	if strings.Contains(answerLower, "learned") || strings.Contains(answerLower, "experience") {
		score += 0.5
	}
	if digitPattern.MatchString(answer) {
		score += 0.5
	}
	if strings.Contains(answerLower, "team") || strings.Contains(answerLower, "collaborate") {
		score += 0.5
	}

	// STAR-method indicators, only for story-style questions
	questionLower := strings.ToLower(question)
	if strings.Contains(questionLower, "tell me about") || strings.Contains(questionLower, "describe") {
		if strings.Contains(answerLower, "situation") || strings.Contains(answerLower, "when") {
			score += 0.5
		}
		if strings.Contains(answerLower, "action") || strings.Contains(answerLower, "did") || strings.Contains(answerLower, "approach") {
			score += 0.5
		}
		if strings.Contains(answerLower, "result") || strings.Contains(answerLower, "outcome") || strings.Contains(answerLower, "achieved") {
			score += 1
		}
	}

	if score < types.MinAnswerScore {
		score = types.MinAnswerScore
	}
	if score > types.MaxAnswerScore {
		score = types.MaxAnswerScore
	}
	return math.Round(score*10) / 10
}

// feedbackForScore selects the banded feedback string for a score
func feedbackForScore(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent response! Comprehensive, well-structured, and demonstrates strong competency."
	case score >= 7:
		return "Very good answer! Shows clear understanding with relevant examples and good structure."
	case score >= 5.5:
		return "Good response with solid content. Consider adding more specific examples and quantifiable results."
	case score >= 4:
		return "Decent answer but could be enhanced. Focus on providing more detailed examples and clearer outcomes."
	default:
		return "Your response needs improvement. Consider using the STAR method and including specific examples with measurable results."
	}
}

// baselineTips are appended unconditionally after any matched conditional
// tips, then the combined list is truncated to the cap. With one or more
// matched conditional tips, at most three baseline tips survive, in table
// order. This append-then-truncate order is part of the contract.
var baselineTips = []string{
	"Use the STAR method: Situation, Task, Action, Result",
	"Show enthusiasm and genuine interest in the role",
	"Connect your experience to the company's needs and values",
}

// tipsForAnswer builds the tips list for an answer
func tipsForAnswer(answer string) []string {
	answerLower := strings.ToLower(answer)
	tips := make([]string, 0, types.MaxTips)

	if len(answer) < 150 {
		tips = append(tips, "Provide more comprehensive explanations with additional details")
	}
	if !strings.Contains(answerLower, "example") {
		tips = append(tips, "Include specific, real-world examples from your experience")
	}
	if !digitPattern.MatchString(answer) {
		tips = append(tips, "Add quantifiable results and metrics when possible")
	}
	if !strings.Contains(answerLower, "learn") {
		tips = append(tips, "Mention key learnings or insights gained")
	}

	tips = append(tips, baselineTips...)
	if len(tips) > types.MaxTips {
		tips = tips[:types.MaxTips]
	}
	return tips
}
