package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AnalysisPrompt(t *testing.T) {
	prompt, err := Get("analysis.json", "analyze-resume")

	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Document}}")
	assert.Contains(t, prompt, "overall_score")
}

func TestGet_InterviewPrompts(t *testing.T) {
	assess, err := Get("interview.json", "assess-answer")
	require.NoError(t, err)
	assert.Contains(t, assess, "{{.Question}}")
	assert.Contains(t, assess, "{{.Answer}}")

	questions, err := Get("interview.json", "generate-questions")
	require.NoError(t, err)
	assert.Contains(t, questions, "{{.Role}}")
	assert.Contains(t, questions, "{{.Skills}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("analysis.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "key")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("analysis.json", "no-such-prompt")
	})
}

func TestFormat(t *testing.T) {
	template := "Question: {{.Question}} for a {{.Role}} role"
	result := Format(template, map[string]string{
		"Question": "Tell me about yourself",
		"Role":     "backend engineer",
	})

	assert.Equal(t, "Question: Tell me about yourself for a backend engineer role", result)
	assert.False(t, strings.Contains(result, "{{"))
}
