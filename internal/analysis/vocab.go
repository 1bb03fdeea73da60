// Package analysis implements the deterministic resume analysis engine:
// document classification, feature extraction, rubric-based scoring, and
// feedback generation. All vocabularies and patterns are process-wide
// constants; the engine holds no state between calls.
package analysis

import "regexp"

// certificateVocab marks certificate and training documents. A single match
// forces rejection of the document as a resume.
var certificateVocab = []string{
	"certificate", "certification", "completion", "awarded", "training",
	"course", "program", "workshop", "seminar", "hereby certify",
	"has successfully completed", "course completion",
}

// resumeVocab marks professional resume language
var resumeVocab = []string{
	"experience", "employment", "skills", "developer", "engineer", "manager",
}

// skillVocab is the fixed skill vocabulary matched by substring containment,
// in display order: languages, web, databases, cloud/devops, tools, data, soft skills.
var skillVocab = []string{
	// Programming languages
	"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "kotlin", "swift",
	// Web technologies
	"react", "angular", "vue", "nodejs", "express", "html", "css", "sass", "scss", "tailwind",
	// Databases
	"mongodb", "mysql", "postgresql", "redis", "sqlite", "oracle", "firebase",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible",
	// Tools and frameworks
	"git", "github", "gitlab", "jira", "confluence", "figma", "sketch", "photoshop",
	// Data and analytics
	"sql", "tableau", "power bi", "excel", "r", "matlab", "pandas", "numpy",
	// Soft skills
	"leadership", "communication", "teamwork", "management", "problem solving", "analytical thinking",
}

// keywordVocab is the smaller process/engineering keyword vocabulary
var keywordVocab = []string{
	"agile", "scrum", "api", "rest", "microservices", "ci/cd", "testing", "debugging",
	"optimization", "performance", "scalability", "security", "authentication", "authorization",
}

// skillCategories groups representative skills for diversity scoring
var skillCategories = map[string][]string{
	"programming": {"javascript", "python", "java", "typescript"},
	"frameworks":  {"react", "angular", "vue", "nodejs"},
	"databases":   {"mongodb", "mysql", "postgresql"},
	"cloud":       {"aws", "azure", "gcp", "docker"},
	"tools":       {"git", "jira", "figma"},
}

// educationLevels maps credential keywords to points in descending seniority
// order. The first match wins.
var educationLevels = []struct {
	keywords []string
	points   int
}{
	{[]string{"phd", "doctorate"}, 30},
	{[]string{"master", "mba"}, 25},
	{[]string{"bachelor", "degree"}, 20},
	{[]string{"diploma", "certificate"}, 15},
}

// defaultEducationPoints applies when no credential keyword is present
const defaultEducationPoints = 10

// sectionPatterns detect resume sections via keyword-synonym matching against
// lower-cased text, keyed by section name.
var sectionPatterns = map[string]*regexp.Regexp{
	"summary":        regexp.MustCompile(`summary|profile|about|objective`),
	"experience":     regexp.MustCompile(`experience|work|employment|career|professional|history`),
	"education":      regexp.MustCompile(`education|academic|degree|university|college|school`),
	"skills":         regexp.MustCompile(`skills|competencies|technologies|technical|proficiencies`),
	"projects":       regexp.MustCompile(`projects|portfolio|work samples`),
	"certifications": regexp.MustCompile(`certifications|certificates|licenses|credentials`),
	"contact":        regexp.MustCompile(`contact|phone|email|address|linkedin|github`),
	"achievements":   regexp.MustCompile(`achievements|awards|honors|recognition`),
}

var (
	// emailPattern matches an @ with surrounding non-whitespace
	emailPattern = regexp.MustCompile(`\S@\S`)
	// phonePattern matches ddd[-. ]ddd[-. ]dddd phone shapes
	phonePattern = regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`)
	// workExperiencePattern marks work-experience language
	workExperiencePattern = regexp.MustCompile(`(?i)experience|employment|worked|job`)
	// experienceLanguagePattern is the broader work-language check applied when
	// vetting model verdicts; it also accepts job-title words
	experienceLanguagePattern = regexp.MustCompile(`(?i)experience|employment|worked|job|developer|engineer|manager`)
	// actionVerbPattern matches achievement verbs; occurrences feed the quality rubric
	actionVerbPattern = regexp.MustCompile(`(?i)achieved|improved|increased|managed|led|developed|created|implemented|designed|built|launched|optimized|streamlined`)
	// markerVerbPattern is the presence check used for experience markers
	markerVerbPattern = regexp.MustCompile(`(?i)managed|led|developed|created|implemented|designed|built|achieved|improved|increased`)
	// quantifierPattern matches quantified results for the quality rubric
	quantifierPattern = regexp.MustCompile(`(?i)\d+(?:%|\$|k|million|thousand|years?|months?|projects?|clients?|team|people)`)
	// markerQuantifierPattern is the presence check used for experience markers
	markerQuantifierPattern = regexp.MustCompile(`(?i)\d+(?:%|\$|k|million)`)
	// yearsPattern extracts years-of-experience mentions
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs)`)
	// jobTitlePattern matches common job-title words
	jobTitlePattern = regexp.MustCompile(`(?i)developer|engineer|manager|analyst|specialist|coordinator|assistant|intern|consultant|director|lead|senior|junior`)
	// sectionHeaderPattern marks structural section headers for the format rubric
	sectionHeaderPattern = regexp.MustCompile(`(?i)experience|education|skills`)
	// contactMarkerPattern marks contact info for the format rubric
	contactMarkerPattern = regexp.MustCompile(`(?i)@|email|phone|linkedin`)
	// yearDigitsPattern marks 4-digit years (dates) for the format rubric
	yearDigitsPattern = regexp.MustCompile(`\d{4}`)
	// quantifiedAchievementPattern feeds strength/improvement feedback rules
	quantifiedAchievementPattern = regexp.MustCompile(`(?i)\d+(?:%|\$|projects|clients)`)
	// metricPattern checks for numeric metrics in feedback rules
	metricPattern = regexp.MustCompile(`(?i)\d+(?:%|\$|k)`)
)
