package analysis

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/jonathan/career-coach/internal/types"
)

// Rubric base scores. Contributions are non-negative, so each base is also the
// effective floor for its category on the accepted branch.
const (
	qualityBase    = 35
	skillsBase     = 25
	experienceBase = 30
	educationBase  = 35
	formatBase     = 40
	atsBase        = 50
)

// ScoreResult holds the numeric outcome of scoring one document
type ScoreResult struct {
	Scores       types.CategoryScores
	OverallScore int
	ATSScore     int
}

// Score converts extracted features into category scores, an overall score,
// and an ATS-compatibility score.
//
// The two branches deliberately use different overall-score formulas: accepted
// resumes get the rounded mean of the five categories, while rejected
// documents get an independent bounded random penalty draw that the category
// scores are derived from. This keeps rejected-document scores visibly low and
// internally consistent with the rejection messaging; do not unify the
// formulas.
func Score(text string, features *types.FeatureSet, verdict types.ClassificationVerdict) ScoreResult {
	if !verdict.IsActualResume {
		return penaltyScore(verdict.ContentType)
	}

	scores := types.CategoryScores{
		Quality:    qualityScore(text, features),
		Skills:     skillsScore(features),
		Experience: experienceScore(text, features),
		Education:  educationScore(features),
		Format:     formatScore(text, features),
	}
	sum := scores.Quality + scores.Skills + scores.Experience + scores.Education + scores.Format
	overall := int(math.Round(float64(sum) / 5.0))

	return ScoreResult{
		Scores:       scores,
		OverallScore: overall,
		ATSScore:     atsScore(features),
	}
}

// qualityScore rates content quality: word-count band, section completeness,
// achievement verbs, and quantified results.
func qualityScore(text string, features *types.FeatureSet) int {
	score := qualityBase

	switch wc := features.WordCount; {
	case wc >= 300 && wc <= 800:
		score += 20
	case wc >= 200 && wc <= 1000:
		score += 15
	case wc >= 150:
		score += 10
	default:
		score += 5
	}

	score += capAt(features.SectionCount()*3, 20)

	achievementVerbs := len(actionVerbPattern.FindAllString(text, -1))
	score += capAt(achievementVerbs*2, 20)

	quantifiers := len(quantifierPattern.FindAllString(text, -1))
	score += capAt(quantifiers*3, 15)

	return capAt(score, types.MaxCategoryScore)
}

// skillsScore rates skill breadth, category diversity, and keyword relevance.
// Adding one more matched skill never decreases the score, up to its cap.
func skillsScore(features *types.FeatureSet) int {
	score := skillsBase
	score += capAt(len(features.Skills)*2, 25)
	score += capAt(len(categorizeSkills(features.Skills))*5, 25)
	score += capAt(len(features.Keywords), 25)
	return capAt(score, types.MaxCategoryScore)
}

// experienceScore rates the experience section, years mentioned, and job titles
func experienceScore(text string, features *types.FeatureSet) int {
	score := experienceBase

	if features.Sections[types.SectionExperience] {
		score += 25
	}

	if maxYears := maxYearsMentioned(text); maxYears > 0 {
		score += capAt(maxYears*3, 20)
	}

	jobTitles := len(jobTitlePattern.FindAllString(text, -1))
	score += capAt(jobTitles*4, 20)

	return capAt(score, types.MaxCategoryScore)
}

// educationScore rates the education section and the highest credential found
func educationScore(features *types.FeatureSet) int {
	score := educationBase
	if features.Sections[types.SectionEducation] {
		score += 30
	}
	score += features.EducationLevelPoints
	return capAt(score, types.MaxCategoryScore)
}

// formatScore rates document length and structural markers
func formatScore(text string, features *types.FeatureSet) int {
	score := formatBase

	switch lc := features.LineCount; {
	case lc >= 20 && lc <= 80:
		score += 20
	case lc >= 15 && lc <= 100:
		score += 15
	default:
		score += 10
	}

	if sectionHeaderPattern.MatchString(text) {
		score += 15
	}
	if contactMarkerPattern.MatchString(text) {
		score += 10
	}
	if yearDigitsPattern.MatchString(text) {
		score += 10
	}

	return capAt(score, types.MaxCategoryScore)
}

// atsScore rates applicant-tracking-system compatibility: keyword density and
// the presence of the three essential sections.
func atsScore(features *types.FeatureSet) int {
	score := atsBase
	score += capAt(len(features.Keywords)*2, 25)

	essential := 0
	for _, name := range []string{types.SectionExperience, types.SectionEducation, types.SectionSkills} {
		if features.Sections[name] {
			essential++
		}
	}
	score += essential * 8

	return capAt(score, types.MaxATSScore)
}

// penaltyScore produces the rejected-document scores. The overall score is a
// bounded random draw that also seeds the category offsets; certificates score
// relatively higher on education and harsher on experience.
func penaltyScore(contentType types.ContentType) ScoreResult {
	var overall int
	if contentType == types.ContentTypeCertificate {
		overall = 15 + rand.IntN(15) // 15-29
	} else {
		overall = 18 + rand.IntN(12) // 18-29
	}

	experienceOffset := -8
	educationOffset := 0
	if contentType == types.ContentTypeCertificate {
		experienceOffset = -15
		educationOffset = 20
	}

	return ScoreResult{
		Scores: types.CategoryScores{
			Quality:    floorAt(overall-5, 15),
			Skills:     floorAt(overall-10, 15),
			Experience: floorAt(overall+experienceOffset, 15),
			Education:  floorAt(overall+educationOffset, 15),
			Format:     floorAt(overall+5, 20),
		},
		OverallScore: overall,
		ATSScore:     floorAt(overall+5, types.MinATSScore),
	}
}

// maxYearsMentioned returns the largest years-of-experience figure in the text
func maxYearsMentioned(text string) int {
	maxYears := 0
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}

func capAt(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}

func floorAt(value, limit int) int {
	if value < limit {
		return limit
	}
	return value
}
