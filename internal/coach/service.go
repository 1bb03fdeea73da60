// Package coach orchestrates the analysis, interview, and job-matching
// engines behind a single service facade. A model client is optional: every
// operation has a deterministic local path, and any model failure falls back
// to it silently. Analysis never fails for reasons other than unusable input.
package coach

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/analysis"
	"github.com/jonathan/career-coach/internal/interview"
	"github.com/jonathan/career-coach/internal/jobs"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// minAnalyzableLength is the minimum document length, in bytes, accepted for
// analysis.
const minAnalyzableLength = 50

// aiAnswerThreshold gates the model path for answer grading: very short
// answers are graded locally, the rubric handles them better than a model
// prompt would.
const aiAnswerThreshold = 20

// Coach is the service facade. Zero value is not usable; construct with New.
type Coach struct {
	client llm.Client // nil means local-only operation
	cache  Cache
}

// New creates a Coach. client may be nil for local-only operation; cache may
// be nil to disable report memoization.
func New(client llm.Client, cache Cache) *Coach {
	return &Coach{client: client, cache: cache}
}

// AnalyzeResume produces a sanitized score report for the document text. The
// only error it returns is an InputError for unusable input: model failures,
// malformed model output, and cache problems all degrade to the local
// heuristic pipeline. Identical input yields the identical cached report.
func (c *Coach) AnalyzeResume(ctx context.Context, text string) (*types.ScoreReport, error) {
	if len(text) < minAnalyzableLength {
		return nil, ErrTextTooShort
	}

	key := CacheKey(text)
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, key); ok {
			var report types.ScoreReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
			// Corrupt entry: treat as a miss and overwrite below
			log.Printf("Discarding corrupt cached report for key %s", key)
		}
	}

	var report *types.ScoreReport
	if c.client != nil {
		aiReport, err := aiAnalyze(ctx, c.client, text)
		if err != nil {
			log.Printf("Model analysis failed, using heuristic pipeline: %v", err)
		} else {
			report = aiReport
		}
	}
	if report == nil {
		report = heuristicAnalyze(text)
	}

	analysis.Sanitize(report)

	if c.cache != nil {
		if serialized, err := json.Marshal(report); err == nil {
			c.cache.Set(ctx, key, string(serialized))
		}
	}
	return report, nil
}

// AssessAnswer grades an interview answer. Substantial answers go to the
// model when one is configured; short answers and model failures use the
// local rubric. It never fails.
func (c *Coach) AssessAnswer(ctx context.Context, question, answer, role string) types.InterviewAssessment {
	if c.client != nil && len(answer) > aiAnswerThreshold {
		assessment, err := aiAssess(ctx, c.client, question, answer, role)
		if err == nil {
			return assessment
		}
		log.Printf("Model assessment failed, using local rubric: %v", err)
	}
	return interview.AssessAnswer(question, answer)
}

// GenerateQuestions produces an interview question set for the role. Model
// failures fall back to the templated question set.
func (c *Coach) GenerateQuestions(ctx context.Context, role string, level types.ExperienceLevel, skills []string) []types.InterviewQuestion {
	if c.client != nil {
		questions, err := aiQuestions(ctx, c.client, role, level, skills)
		if err == nil {
			return questions
		}
		log.Printf("Model question generation failed, using fallback set: %v", err)
	}
	return interview.FallbackQuestions(role, skills)
}

// MatchJobs returns simulated job matches for the candidate profile
func (c *Coach) MatchJobs(skills []string, level types.ExperienceLevel, prefs types.JobPreferences) []types.JobMatch {
	return jobs.Match(skills, level, prefs)
}

// heuristicAnalyze runs the deterministic local pipeline:
// classify, extract, score, narrate.
func heuristicAnalyze(text string) *types.ScoreReport {
	verdict := analysis.Classify(text)
	features := analysis.ExtractFeatures(text)
	result := analysis.Score(text, features, verdict)
	feedback := analysis.GenerateFeedback(text, result.Scores, features, verdict)

	return &types.ScoreReport{
		ID:              uuid.New(),
		IsActualResume:  verdict.IsActualResume,
		ContentType:     verdict.ContentType,
		OverallScore:    result.OverallScore,
		Scores:          result.Scores,
		ATSScore:        result.ATSScore,
		Strengths:       feedback.Strengths,
		Improvements:    feedback.Improvements,
		Recommendations: feedback.Recommendations,
		TextStats:       statsFromFeatures(features),
		AnalysisMethod:  types.MethodHeuristic,
		AnalyzedAt:      time.Now().UTC(),
	}
}

func statsFromFeatures(features *types.FeatureSet) types.TextStats {
	return types.TextStats{
		WordCount:          features.WordCount,
		LineCount:          features.LineCount,
		SectionsFound:      features.SectionCount(),
		SkillsFound:        len(features.Skills),
		KeywordsFound:      len(features.Keywords),
		CertificateMarkers: features.CertificateMarkers,
	}
}
