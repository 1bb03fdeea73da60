package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validReportJSON = `{
  "is_actual_resume": true,
  "content_type": "resume",
  "overall_score": 72,
  "scores": {"quality": 70, "skills": 75, "experience": 68, "education": 74, "format": 73},
  "ats_score": 81,
  "strengths": ["Clear structure"],
  "improvements": ["Add metrics"],
  "recommendations": ["Use action verbs"]
}`

func TestValidateScoreReport_Valid(t *testing.T) {
	assert.NoError(t, ValidateScoreReport(validReportJSON))
}

func TestValidateScoreReport_MissingScores(t *testing.T) {
	err := ValidateScoreReport(`{"overall_score": 72, "ats_score": 80}`)

	var ve *ValidationError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateScoreReport_WrongType(t *testing.T) {
	err := ValidateScoreReport(`{
	  "overall_score": "seventy",
	  "scores": {"quality": 70, "skills": 75, "experience": 68, "education": 74, "format": 73},
	  "ats_score": 81
	}`)
	assert.Error(t, err)
}

func TestValidateScoreReport_BadContentType(t *testing.T) {
	err := ValidateScoreReport(`{
	  "content_type": "poem",
	  "overall_score": 72,
	  "scores": {"quality": 70, "skills": 75, "experience": 68, "education": 74, "format": 73},
	  "ats_score": 81
	}`)
	assert.Error(t, err)
}

func TestValidateInterviewAssessment_Valid(t *testing.T) {
	err := ValidateInterviewAssessment(`{"score": 7.5, "feedback": "Good answer", "tips": ["Use STAR"]}`)
	assert.NoError(t, err)
}

func TestValidateInterviewAssessment_MissingFeedback(t *testing.T) {
	err := ValidateInterviewAssessment(`{"score": 7.5}`)
	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateScoreReport(`{}`)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "validation failed")
}
