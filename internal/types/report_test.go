package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validReport() *ScoreReport {
	return &ScoreReport{
		IsActualResume: true,
		ContentType:    ContentTypeResume,
		OverallScore:   70,
		Scores: CategoryScores{
			Quality:    65,
			Skills:     72,
			Experience: 68,
			Education:  75,
			Format:     70,
		},
		ATSScore:        80,
		Strengths:       []string{"Strong professional experience"},
		Improvements:    []string{"Add quantified results"},
		Recommendations: []string{"Use action verbs"},
	}
}

func TestScoreReportValidate_Valid(t *testing.T) {
	assert.NoError(t, validReport().Validate())
}

func TestScoreReportValidate_OverallOutOfRange(t *testing.T) {
	r := validReport()
	r.OverallScore = 14
	assert.Error(t, r.Validate())

	r.OverallScore = 96
	assert.Error(t, r.Validate())
}

func TestScoreReportValidate_CategoryOutOfRange(t *testing.T) {
	r := validReport()
	r.Scores.Skills = 10
	assert.Error(t, r.Validate())
}

func TestScoreReportValidate_ATSOutOfRange(t *testing.T) {
	r := validReport()
	r.ATSScore = 19
	assert.Error(t, r.Validate())

	r.ATSScore = 101
	assert.Error(t, r.Validate())
}

func TestScoreReportValidate_EmptyFeedbackList(t *testing.T) {
	r := validReport()
	r.Strengths = nil
	assert.Error(t, r.Validate())
}

func TestScoreReportValidate_FeedbackListTooLong(t *testing.T) {
	r := validReport()
	r.Recommendations = []string{"a", "b", "c", "d", "e", "f"}
	assert.Error(t, r.Validate())
}

func TestInterviewAssessmentValidate(t *testing.T) {
	a := &InterviewAssessment{Score: 7.5, Feedback: "Very good answer!", Tips: []string{"Use the STAR method"}}
	assert.NoError(t, a.Validate())

	a.Score = 0.5
	assert.Error(t, a.Validate())

	a.Score = 7.5
	a.Tips = []string{"a", "b", "c", "d", "e"}
	assert.Error(t, a.Validate())
}

func TestFeatureSetHelpers(t *testing.T) {
	f := &FeatureSet{
		Sections: map[string]bool{
			SectionExperience: true,
			SectionEducation:  true,
			SectionSummary:    false,
		},
		HasEmail: true,
	}

	assert.Equal(t, 2, f.SectionCount())
	assert.True(t, f.HasContactInfo())

	f.HasEmail = false
	assert.False(t, f.HasContactInfo())
	f.HasPhone = true
	assert.True(t, f.HasContactInfo())
}
