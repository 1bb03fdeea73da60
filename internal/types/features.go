//nolint:revive // types is a standard Go package name pattern
package types

// Resume section names tested for during feature extraction
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
	SectionAchievements   = "achievements"
)

// SectionNames lists all detectable sections in a fixed order
var SectionNames = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionContact,
	SectionAchievements,
}

// FeatureSet holds the structural features derived from a document's raw text.
// It is computed once per analysis and never persisted independently.
type FeatureSet struct {
	Sections              map[string]bool `json:"sections"`
	Skills                []string        `json:"skills"`
	Keywords              []string        `json:"keywords"`
	WordCount             int             `json:"word_count"`
	LineCount             int             `json:"line_count"`
	CertificateMarkers    int             `json:"certificate_markers"`
	HasWorkExperience     bool            `json:"has_work_experience"`
	HasExperienceLanguage bool            `json:"has_experience_language"`
	HasEmail              bool            `json:"has_email"`
	HasPhone              bool            `json:"has_phone"`
	EducationLevelPoints  int             `json:"education_level_points"`
}

// HasContactInfo reports whether the document contains an email or phone marker
func (f *FeatureSet) HasContactInfo() bool {
	return f.HasEmail || f.HasPhone
}

// SectionCount returns the number of detected sections
func (f *FeatureSet) SectionCount() int {
	count := 0
	for _, found := range f.Sections {
		if found {
			count++
		}
	}
	return count
}
