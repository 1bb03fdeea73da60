package analysis

import (
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// ExtractFeatures derives structural features from raw document text. It is a
// total function: empty matches are valid results, not errors.
func ExtractFeatures(text string) *types.FeatureSet {
	lower := strings.ToLower(text)

	sections := make(map[string]bool, len(types.SectionNames))
	for _, name := range types.SectionNames {
		sections[name] = sectionPatterns[name].MatchString(lower)
	}

	return &types.FeatureSet{
		Sections:              sections,
		Skills:                matchVocab(lower, skillVocab),
		Keywords:              matchVocab(lower, keywordVocab),
		WordCount:             countWords(lower),
		LineCount:             countLines(text),
		CertificateMarkers:    countVocabTerms(lower, certificateVocab),
		HasWorkExperience:     markerVerbPattern.MatchString(text) || markerQuantifierPattern.MatchString(text),
		HasExperienceLanguage: experienceLanguagePattern.MatchString(text),
		HasEmail:              emailPattern.MatchString(text),
		HasPhone:              phonePattern.MatchString(text),
		EducationLevelPoints:  educationLevel(lower),
	}
}

// matchVocab collects vocabulary terms contained in the lower-cased text,
// preserving vocabulary order
func matchVocab(lowerText string, vocab []string) []string {
	matched := make([]string, 0)
	for _, term := range vocab {
		if strings.Contains(lowerText, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// countLines counts non-blank lines
func countLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// educationLevel returns credential points for the highest credential keyword
// found, scanning in descending seniority order so the first match wins
func educationLevel(lowerText string) int {
	for _, level := range educationLevels {
		for _, keyword := range level.keywords {
			if strings.Contains(lowerText, keyword) {
				return level.points
			}
		}
	}
	return defaultEducationPoints
}

// categorizeSkills groups matched skills into category buckets for the skill
// diversity rubric. A category counts when any matched skill contains one of
// its representative terms.
func categorizeSkills(skills []string) map[string][]string {
	result := make(map[string][]string)
	for category, representatives := range skillCategories {
		for _, skill := range skills {
			for _, rep := range representatives {
				if strings.Contains(skill, rep) {
					result[category] = append(result[category], skill)
					break
				}
			}
		}
	}
	return result
}
