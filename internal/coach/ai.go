package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/analysis"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// aiReportPayload is the wire shape expected from the model. IsActualResume
// is a pointer so an omitted field can default to true, matching the local
// override rules below.
type aiReportPayload struct {
	IsActualResume  *bool                `json:"is_actual_resume"`
	ContentType     string               `json:"content_type"`
	OverallScore    int                  `json:"overall_score"`
	Scores          types.CategoryScores `json:"scores"`
	ATSScore        int                  `json:"ats_score"`
	Strengths       []string             `json:"strengths"`
	Improvements    []string             `json:"improvements"`
	Recommendations []string             `json:"recommendations"`
}

// aiAnalyze asks the model for a scored report and applies the local override
// rules before returning. Any failure along the way (generation, JSON
// extraction, schema validation) is returned to the caller, which falls back
// to the heuristic pipeline.
func aiAnalyze(ctx context.Context, client llm.Client, text string) (*types.ScoreReport, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze-resume"), map[string]string{
		"Document": text,
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	object, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	if err := schemas.ValidateScoreReport(object); err != nil {
		return nil, fmt.Errorf("validating model response: %w", err)
	}

	var payload aiReportPayload
	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	features := analysis.ExtractFeatures(text)
	applyOverrides(&payload, features)

	return &types.ScoreReport{
		ID:              uuid.New(),
		IsActualResume:  payload.IsActualResume != nil && *payload.IsActualResume,
		ContentType:     types.ContentType(payload.ContentType),
		OverallScore:    payload.OverallScore,
		Scores:          payload.Scores,
		ATSScore:        payload.ATSScore,
		Strengths:       payload.Strengths,
		Improvements:    payload.Improvements,
		Recommendations: payload.Recommendations,
		TextStats:       statsFromFeatures(features),
		AnalysisMethod:  types.MethodAI,
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}

// applyOverrides enforces the local classification rules on a model-produced
// payload. The model's verdict is advisory: certificate language or missing
// resume essentials force a rejection with a bounded low score, and a verdict
// that survives both checks has its overall score pulled into the accepted
// range. The model can never accept what the local rules reject.
func applyOverrides(payload *aiReportPayload, features *types.FeatureSet) {
	accepted := payload.IsActualResume == nil || *payload.IsActualResume
	if payload.OverallScore == 0 {
		payload.OverallScore = 50
	}
	if payload.ContentType == "" {
		payload.ContentType = string(types.ContentTypeResume)
	}

	if features.CertificateMarkers >= 1 {
		accepted = false
		payload.ContentType = string(types.ContentTypeCertificate)
		payload.OverallScore = clampInt(20+rand.IntN(10), 15, 30)
	}

	if !features.HasExperienceLanguage || !features.HasContactInfo() {
		accepted = false
		payload.OverallScore = clampInt(18+rand.IntN(12), 15, 30)
	}

	if accepted {
		payload.OverallScore = clampInt(payload.OverallScore, 50, 95)
	}
	payload.IsActualResume = &accepted
}

// aiAssess asks the model to grade an interview answer. Failures are returned
// so the caller can fall back to the deterministic rubric.
func aiAssess(ctx context.Context, client llm.Client, question, answer, role string) (types.InterviewAssessment, error) {
	if role == "" {
		role = "General"
	}
	prompt := prompts.Format(prompts.MustGet("interview.json", "assess-answer"), map[string]string{
		"Question": question,
		"Answer":   answer,
		"Role":     role,
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return types.InterviewAssessment{}, fmt.Errorf("generating assessment: %w", err)
	}

	object, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return types.InterviewAssessment{}, fmt.Errorf("no JSON object in model response")
	}
	if err := schemas.ValidateInterviewAssessment(object); err != nil {
		return types.InterviewAssessment{}, fmt.Errorf("validating model response: %w", err)
	}

	var assessment types.InterviewAssessment
	if err := json.Unmarshal([]byte(object), &assessment); err != nil {
		return types.InterviewAssessment{}, fmt.Errorf("decoding model response: %w", err)
	}

	if assessment.Score < types.MinAnswerScore {
		assessment.Score = types.MinAnswerScore
	}
	if assessment.Score > types.MaxAnswerScore {
		assessment.Score = types.MaxAnswerScore
	}
	if len(assessment.Tips) > types.MaxTips {
		assessment.Tips = assessment.Tips[:types.MaxTips]
	}
	return assessment, nil
}

// aiQuestions asks the model for an interview question set
func aiQuestions(ctx context.Context, client llm.Client, role string, level types.ExperienceLevel, skills []string) ([]types.InterviewQuestion, error) {
	prompt := prompts.Format(prompts.MustGet("interview.json", "generate-questions"), map[string]string{
		"Role":   role,
		"Level":  string(level),
		"Skills": strings.Join(skills, ", "),
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}

	array, ok := llm.ExtractJSONArray(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var questions []types.InterviewQuestion
	if err := json.Unmarshal([]byte(array), &questions); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	for _, q := range questions {
		if q.Question == "" {
			return nil, fmt.Errorf("model returned an empty question")
		}
	}
	return questions, nil
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
