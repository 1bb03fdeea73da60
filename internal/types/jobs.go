//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel buckets candidates for question generation and job matching
type ExperienceLevel string

// Recognized experience levels
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// JobPreferences holds optional constraints for job matching
type JobPreferences struct {
	Location string `json:"location,omitempty"`
	Remote   bool   `json:"remote,omitempty"`
}

// JobMatch is a single simulated job posting matched against a candidate profile
type JobMatch struct {
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salary_range"`
	MatchPercentage int      `json:"match_percentage"`
	RequiredSkills  []string `json:"required_skills"`
	Description     string   `json:"description"`
	GrowthPotential string   `json:"growth_potential"`
	WhyMatch        string   `json:"why_match"`
	Remote          bool     `json:"remote"`
	PostedDaysAgo   int      `json:"posted_days_ago"`
	Benefits        []string `json:"benefits"`
	CompanySize     string   `json:"company_size"`
}
