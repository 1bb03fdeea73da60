//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Interview assessment score bounds
const (
	MinAnswerScore = 1.0
	MaxAnswerScore = 10.0
	MaxTips        = 4
)

// InterviewAssessment is the result of grading a single interview answer
type InterviewAssessment struct {
	Score    float64  `json:"score"`
	Feedback string   `json:"feedback"`
	Tips     []string `json:"tips"`
}

// Validate checks the documented score-range and tip-list invariants
func (a *InterviewAssessment) Validate() error {
	if a.Score < MinAnswerScore || a.Score > MaxAnswerScore {
		return fmt.Errorf("answer score %.1f outside [%.0f, %.0f]", a.Score, MinAnswerScore, MaxAnswerScore)
	}
	if a.Feedback == "" {
		return fmt.Errorf("feedback is empty")
	}
	if len(a.Tips) > MaxTips {
		return fmt.Errorf("tips list has %d items, max %d", len(a.Tips), MaxTips)
	}
	return nil
}

// InterviewQuestion is a single generated interview question
type InterviewQuestion struct {
	Question   string `json:"question"`
	Type       string `json:"type"`       // behavioral, technical, situational
	Difficulty string `json:"difficulty"` // easy, medium, hard
}
