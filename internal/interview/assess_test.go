package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const starQuestion = "Tell me about a time you solved a difficult problem."

// starAnswer hits every rubric increment: ideal length, example, results,
// learnings, numbers, teamwork, and STAR language.
var starAnswer = strings.TrimSpace(`
For example, when our checkout service started timing out during a sale, I was
in a situation where orders were failing for thousands of customers. My
approach: I profiled the service, found the blocking call, and did a careful
rollout of an async rewrite with the team. The result was a 40% latency drop
and zero failed orders the next sale. The outcome taught me a lot; I learned
to collaborate early with the platform team, and we achieved our reliability
target together. That experience shaped how I design services today, and my
team now reviews every critical path for blocking calls before launch, which
has kept our error budget intact for six straight quarters and counting.
`)

func TestAssessAnswer_EmptyAnswerScoresFloor(t *testing.T) {
	result := AssessAnswer("Why do you want this job?", "")

	// Nothing matches: the score is the untouched base
	assert.Equal(t, 3.0, result.Score)
	assert.NotEmpty(t, result.Feedback)
}

func TestAssessAnswer_ElaborateBeatsOneWord(t *testing.T) {
	elaborate := AssessAnswer(starQuestion, starAnswer)
	oneWord := AssessAnswer(starQuestion, "Yes.")

	assert.Greater(t, elaborate.Score, oneWord.Score)
	assert.GreaterOrEqual(t, elaborate.Score, 8.0)
}

func TestAssessAnswer_ScoreWithinRange(t *testing.T) {
	answers := []string{"", "short", starAnswer, strings.Repeat("word ", 500)}
	for _, answer := range answers {
		result := AssessAnswer(starQuestion, answer)
		assert.GreaterOrEqual(t, result.Score, 1.0)
		assert.LessOrEqual(t, result.Score, 10.0)
	}
}

func TestAssessAnswer_STAROnlyForStoryQuestions(t *testing.T) {
	answer := "The situation was tense. My approach worked. We achieved the result we wanted."

	story := AssessAnswer("Describe a conflict you resolved.", answer)
	factual := AssessAnswer("What is your favorite language?", answer)

	assert.Greater(t, story.Score, factual.Score)
}

func TestAssessAnswer_RoundedToOneDecimal(t *testing.T) {
	result := AssessAnswer(starQuestion, "I have an example with a result.")

	rounded := float64(int(result.Score*10)) / 10
	assert.Equal(t, rounded, result.Score)
}

func TestScoreAnswer_LengthBands(t *testing.T) {
	ideal := strings.Repeat("word ", 100)  // 100 words: +2
	decent := strings.Repeat("word ", 30)  // 30 words: +1.5
	minimal := strings.Repeat("word ", 16) // 16 words: +1
	tiny := "word"

	assert.Equal(t, 5.0, scoreAnswer("q", ideal))
	assert.Equal(t, 4.5, scoreAnswer("q", decent))
	assert.Equal(t, 4.0, scoreAnswer("q", minimal))
	assert.Equal(t, 3.0, scoreAnswer("q", tiny))
}

func TestFeedbackForScore_Bands(t *testing.T) {
	assert.Contains(t, feedbackForScore(9.0), "Excellent")
	assert.Contains(t, feedbackForScore(7.5), "Very good")
	assert.Contains(t, feedbackForScore(6.0), "Good response")
	assert.Contains(t, feedbackForScore(4.5), "Decent answer")
	assert.Contains(t, feedbackForScore(2.0), "needs improvement")
}

func TestTipsForAnswer_ShortAnswerMatchesAllConditionals(t *testing.T) {
	tips := tipsForAnswer("No.")

	// Four conditional tips matched; baseline tips are appended after and the
	// truncation to four crowds them out entirely.
	assert.Len(t, tips, 4)
	assert.Equal(t, "Provide more comprehensive explanations with additional details", tips[0])
	assert.NotContains(t, tips, baselineTips[0])
}

func TestTipsForAnswer_BaselineSurvivesWhenFewConditionalsMatch(t *testing.T) {
	answer := strings.Repeat("detail ", 30) + "for example I learned from the 3 experiments we ran"

	tips := tipsForAnswer(answer)

	// No conditional tip matched, so the full baseline survives
	assert.Equal(t, baselineTips, tips)
}

func TestTipsForAnswer_ConditionalThenBaselineOrder(t *testing.T) {
	// Long answer with examples and learnings but no numbers: exactly one
	// conditional tip, then three baseline tips.
	answer := strings.Repeat("detail ", 30) + "for example I learned to delegate across the org"

	tips := tipsForAnswer(answer)

	assert.Len(t, tips, 4)
	assert.Equal(t, "Add quantifiable results and metrics when possible", tips[0])
	assert.Equal(t, baselineTips, tips[1:])
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions("Backend Developer", []string{"go", "postgresql", "docker", "aws"})

	assert.Len(t, questions, 7)
	assert.Contains(t, questions[0].Question, "Backend Developer")
	// Only the first three skills are mentioned
	assert.Contains(t, questions[2].Question, "go, postgresql, docker")
	assert.NotContains(t, questions[2].Question, "aws")

	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.Contains(t, []string{"behavioral", "technical", "situational"}, q.Type)
		assert.Contains(t, []string{"easy", "medium", "hard"}, q.Difficulty)
	}
}

func TestFallbackQuestions_NoSkills(t *testing.T) {
	questions := FallbackQuestions("Data Analyst", nil)

	assert.Contains(t, questions[2].Question, "your technical skills")
}
