package coach

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

// fakeClient is a canned llm.Client for orchestration tests
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

const sampleResumeText = `John Smith
Software Engineer
john.smith@example.com | 555-123-4567 | San Francisco, CA

SUMMARY
Senior software engineer with 8 years of experience designing and building
scalable web platforms for high-traffic consumer products. Passionate about
clean architecture, mentoring, and measurable results.

EXPERIENCE
Senior Software Engineer, Acme Corp (2019 - Present)
- Led a team of 6 developers building microservices with go and docker
- Increased revenue by 20% through checkout flow optimization
- Improved API performance by 35% and reduced infrastructure costs by $50k
- Designed authentication and authorization services used by 40 internal teams
- Managed migration of legacy workloads onto kubernetes across three regions

Software Developer, Beta Labs (2015 - 2019)
- Developed react and nodejs applications backed by postgresql and redis
- Implemented ci/cd pipelines with jenkins, cutting release time by 60%
- Built automated testing and debugging tooling adopted by the whole team
- Created internal dashboards with javascript, typescript, html, and css

EDUCATION
Bachelor of Science in Computer Science, State University (2015)
Graduated with honors; studied algorithms, databases, and security.

SKILLS
javascript, typescript, python, java, react, angular, nodejs, html, css,
mongodb, mysql, postgresql, redis, aws, docker, kubernetes, git, sql,
tableau, excel, leadership, communication, teamwork, agile, scrum, rest,
performance, scalability

ACHIEVEMENTS
Recognized as engineer of the quarter twice for delivery excellence and
collaboration across 12 client projects.
`

const sampleCertificateText = `CERTIFICATE OF COMPLETION

This is to hereby certify that Jane Doe has successfully completed the
Advanced Cloud Computing course offered by the Online Learning Academy.
Contact the academy at registrar@academy.example.com for verification.
`

// workLanguageResume states its experience through job titles and employment
// language, with no achievement verbs or quantified results
const workLanguageResume = `Maria Garcia
Software Engineer
maria.garcia@example.com | Austin, TX

SUMMARY
Software engineer with eight years of professional experience across web
platforms and data services. Employment history spans consumer products and
internal tooling, with a focus on reliability and maintainable architecture.

EXPERIENCE
Senior Software Engineer, Orbit Systems (2019 - Present)
Backend services in go and python backed by postgresql and redis, with
deployment pipelines on aws and docker. Ongoing responsibility for api
reliability, observability, and on-call rotations within the platform group.

Software Developer, Quartz Labs (2015 - 2019)
Web applications in react and typescript for enterprise customers, plus
database tuning, code review, and mentorship of junior developers.

EDUCATION
Bachelor of Science in Computer Science, State University (2015)

SKILLS
go, python, react, typescript, postgresql, redis, aws, docker, kubernetes,
git, sql, leadership, communication, teamwork, agile, scrum, rest, testing
`

// validModelReport is a schema-valid accepted payload as a model would return it
const validModelReport = `{
  "is_actual_resume": true,
  "content_type": "resume",
  "overall_score": 82,
  "scores": {"quality": 80, "skills": 85, "experience": 84, "education": 78, "format": 83},
  "ats_score": 88,
  "strengths": ["Clear progression"],
  "improvements": ["Add more metrics"],
  "recommendations": ["Tailor keywords"]
}`

func TestAnalyzeResume_TooShort(t *testing.T) {
	c := New(nil, nil)

	report, err := c.AnalyzeResume(context.Background(), "short text")

	assert.Nil(t, report)
	require.Error(t, err)

	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestAnalyzeResume_HeuristicResume(t *testing.T) {
	c := New(nil, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleResumeText)
	require.NoError(t, err)

	assert.True(t, report.IsActualResume)
	assert.Equal(t, types.ContentTypeResume, report.ContentType)
	assert.GreaterOrEqual(t, report.OverallScore, 55)
	assert.LessOrEqual(t, report.OverallScore, 95)
	assert.Equal(t, types.MethodHeuristic, report.AnalysisMethod)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_HeuristicCertificate(t *testing.T) {
	c := New(nil, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleCertificateText)
	require.NoError(t, err)

	assert.False(t, report.IsActualResume)
	assert.Equal(t, types.ContentTypeCertificate, report.ContentType)
	assert.GreaterOrEqual(t, report.OverallScore, 15)
	assert.LessOrEqual(t, report.OverallScore, 30)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_CacheMakesRepeatCallsIdentical(t *testing.T) {
	cache := NewMemoryCache()
	c := New(nil, cache)

	first, err := c.AnalyzeResume(context.Background(), sampleCertificateText)
	require.NoError(t, err)

	// The rejected branch draws random scores, so only caching can make the
	// second call identical.
	second, err := c.AnalyzeResume(context.Background(), sampleCertificateText)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.AnalyzedAt, second.AnalyzedAt)
	assert.Equal(t, 1, cache.Len())
}

func TestAnalyzeResume_CorruptCacheEntryIsAMiss(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set(context.Background(), CacheKey(sampleResumeText), "{not json")
	c := New(nil, cache)

	report, err := c.AnalyzeResume(context.Background(), sampleResumeText)
	require.NoError(t, err)
	require.NoError(t, report.Validate())

	// The fresh report replaced the corrupt entry
	cached, ok := cache.Get(context.Background(), CacheKey(sampleResumeText))
	assert.True(t, ok)
	assert.NotEqual(t, "{not json", cached)
}

func TestAnalyzeResume_ModelPathUsed(t *testing.T) {
	client := &fakeClient{response: validModelReport}
	c := New(client, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.MethodAI, report.AnalysisMethod)
	assert.True(t, report.IsActualResume)
	assert.Equal(t, 82, report.OverallScore)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_ModelFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}
	c := New(client, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, types.MethodHeuristic, report.AnalysisMethod)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_ModelGarbageFallsBack(t *testing.T) {
	client := &fakeClient{response: "I cannot analyze this document, sorry."}
	c := New(client, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, types.MethodHeuristic, report.AnalysisMethod)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_ModelCannotAcceptCertificate(t *testing.T) {
	// The model claims the certificate is a strong resume; local override
	// rules must reject it anyway.
	client := &fakeClient{response: validModelReport}
	c := New(client, nil)

	report, err := c.AnalyzeResume(context.Background(), sampleCertificateText)
	require.NoError(t, err)

	assert.False(t, report.IsActualResume)
	assert.Equal(t, types.ContentTypeCertificate, report.ContentType)
	assert.GreaterOrEqual(t, report.OverallScore, 15)
	assert.LessOrEqual(t, report.OverallScore, 30)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_ModelAcceptsResumeWithoutActionVerbs(t *testing.T) {
	// Experience stated through job titles and employment language must not
	// trip the missing-essentials override even with no achievement verbs.
	client := &fakeClient{response: validModelReport}
	c := New(client, nil)

	report, err := c.AnalyzeResume(context.Background(), workLanguageResume)
	require.NoError(t, err)

	assert.True(t, report.IsActualResume)
	assert.Equal(t, types.ContentTypeResume, report.ContentType)
	assert.Equal(t, 82, report.OverallScore)
	assert.Equal(t, types.MethodAI, report.AnalysisMethod)
	require.NoError(t, report.Validate())
}

func TestAnalyzeResume_NeverErrorsOnLongInput(t *testing.T) {
	c := New(&fakeClient{response: "garbage"}, NewMemoryCache())

	inputs := []string{
		sampleResumeText,
		sampleCertificateText,
		strings.Repeat("lorem ipsum dolor sit amet ", 20),
		strings.Repeat("x", 60),
	}
	for _, input := range inputs {
		report, err := c.AnalyzeResume(context.Background(), input)
		require.NoError(t, err)
		require.NoError(t, report.Validate())
	}
}

func TestAssessAnswer_ShortAnswerSkipsModel(t *testing.T) {
	client := &fakeClient{response: `{"score": 9, "feedback": "great", "tips": []}`}
	c := New(client, nil)

	assessment := c.AssessAnswer(context.Background(), "Why us?", "Because.", "Engineer")

	assert.Equal(t, 0, client.calls)
	assert.Equal(t, 3.0, assessment.Score)
}

func TestAssessAnswer_ModelPathForSubstantialAnswer(t *testing.T) {
	client := &fakeClient{response: `{"score": 8.5, "feedback": "Strong structure and examples.", "tips": ["Add metrics"]}`}
	c := New(client, nil)

	answer := "I restructured our deployment pipeline and cut release time in half."
	assessment := c.AssessAnswer(context.Background(), "Describe an achievement.", answer, "Engineer")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 8.5, assessment.Score)
	assert.Equal(t, "Strong structure and examples.", assessment.Feedback)
}

func TestAssessAnswer_ModelFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("timeout")}
	c := New(client, nil)

	answer := "I restructured our deployment pipeline and cut release time in half."
	assessment := c.AssessAnswer(context.Background(), "Describe an achievement.", answer, "Engineer")

	require.NoError(t, assessment.Validate())
}

func TestGenerateQuestions_ModelFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("timeout")}
	c := New(client, nil)

	questions := c.GenerateQuestions(context.Background(), "Backend Developer", types.LevelMid, []string{"go"})

	assert.Len(t, questions, 7)
	assert.Contains(t, questions[0].Question, "Backend Developer")
}

func TestGenerateQuestions_ModelPath(t *testing.T) {
	client := &fakeClient{response: `[{"question": "How would you shard a write-heavy table?", "type": "technical", "difficulty": "hard"}]`}
	c := New(client, nil)

	questions := c.GenerateQuestions(context.Background(), "Backend Developer", types.LevelSenior, []string{"postgresql"})

	assert.Len(t, questions, 1)
	assert.Equal(t, "How would you shard a write-heavy table?", questions[0].Question)
}

func TestMatchJobs_Passthrough(t *testing.T) {
	c := New(nil, nil)

	matches := c.MatchJobs([]string{"go"}, types.LevelMid, types.JobPreferences{})

	assert.Len(t, matches, 8)
}
