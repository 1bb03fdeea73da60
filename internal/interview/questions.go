package interview

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// FallbackQuestions returns the templated seven-question interview set used
// when no AI collaborator is available. Questions reference the candidate's
// role and up to three of their listed skills.
func FallbackQuestions(role string, skills []string) []types.InterviewQuestion {
	skillsText := "your technical skills"
	if len(skills) > 0 {
		shown := skills
		if len(shown) > 3 {
			shown = shown[:3]
		}
		skillsText = strings.Join(shown, ", ")
	}

	return []types.InterviewQuestion{
		{
			Question:   fmt.Sprintf("Tell me about yourself and your background in %s.", role),
			Type:       "behavioral",
			Difficulty: "easy",
		},
		{
			Question:   fmt.Sprintf("What interests you about this %s position and our company?", role),
			Type:       "behavioral",
			Difficulty: "easy",
		},
		{
			Question:   fmt.Sprintf("Describe a challenging project where you used %s. What was your approach and what did you learn?", skillsText),
			Type:       "technical",
			Difficulty: "medium",
		},
		{
			Question:   "How do you handle tight deadlines and competing priorities? Give me a specific example.",
			Type:       "situational",
			Difficulty: "medium",
		},
		{
			Question:   "Tell me about a time you had to learn a new technology or skill quickly for a project.",
			Type:       "behavioral",
			Difficulty: "medium",
		},
		{
			Question:   "Where do you see yourself professionally in 3-5 years, and how does this role fit into those plans?",
			Type:       "behavioral",
			Difficulty: "easy",
		},
		{
			Question:   "Describe a situation where you disagreed with a team member or supervisor. How did you handle it?",
			Type:       "situational",
			Difficulty: "medium",
		},
	}
}
