// Package jobs generates simulated job matches for a candidate profile. The
// postings are synthetic but deterministic in shape: titles follow the
// candidate's skill families, salary bands follow the experience level, and
// match percentages stay within a fixed window.
package jobs

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const matchedJobCount = 8

// Clamp window for match percentages
const (
	minMatchPercentage = 65
	maxMatchPercentage = 98
)

var companies = []string{
	"TechCorp Solutions", "InnovateLab Inc.", "Digital Dynamics", "FutureWork Technologies",
	"CloudScale Systems", "DataDriven Co.", "AgileMinds", "NextGen Enterprises",
	"SmartSolutions Ltd.", "CodeCraft Industries", "TechVision Group", "DevForce Labs",
}

var defaultLocations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Remote", "Boston, MA", "Denver, CO",
}

var growthOptions = []string{"High", "Very High", "Exceptional", "Strong"}

var companySizes = []string{"Startup (1-50)", "Small (51-200)", "Medium (201-1000)", "Large (1000+)"}

var allBenefits = []string{
	"Health Insurance", "Dental Coverage", "Vision Care", "401(k) Matching",
	"Flexible Hours", "Remote Work", "Professional Development", "Stock Options",
	"Paid Time Off", "Parental Leave", "Gym Membership", "Learning Budget",
}

var paddingSkills = []string{"Problem Solving", "Team Collaboration", "Agile Methodology"}

type salaryBand struct {
	min, max int
}

var salaryBands = map[types.ExperienceLevel]salaryBand{
	types.LevelEntry:  {65000, 85000},
	types.LevelMid:    {85000, 120000},
	types.LevelSenior: {120000, 180000},
}

var matchBases = map[types.ExperienceLevel]int{
	types.LevelEntry:  75,
	types.LevelMid:    80,
	types.LevelSenior: 85,
}

// Match builds eight simulated postings for the candidate and returns them
// sorted by match percentage, best first.
func Match(skills []string, level types.ExperienceLevel, prefs types.JobPreferences) []types.JobMatch {
	titles := jobTitles(skills, level)
	locations := defaultLocations
	if prefs.Location != "" {
		locations = []string{prefs.Location}
	}

	matches := make([]types.JobMatch, 0, matchedJobCount)
	for i := 0; i < matchedJobCount; i++ {
		matches = append(matches, types.JobMatch{
			JobTitle:        titles[rand.IntN(len(titles))],
			Company:         companies[rand.IntN(len(companies))],
			Location:        locations[rand.IntN(len(locations))],
			SalaryRange:     salaryRange(level),
			MatchPercentage: matchPercentage(skills, level),
			RequiredSkills:  requiredSkills(skills),
			Description:     description(skills),
			GrowthPotential: growthOptions[rand.IntN(len(growthOptions))],
			WhyMatch:        matchReason(skills, level),
			Remote:          prefs.Remote || rand.Float64() > 0.6,
			PostedDaysAgo:   rand.IntN(14) + 1,
			Benefits:        benefits(),
			CompanySize:     companySizes[rand.IntN(len(companySizes))],
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches
}

// jobTitles derives candidate titles from skill families. At least one title
// is always returned.
func jobTitles(skills []string, level types.ExperienceLevel) []string {
	prefix := levelPrefix(level)
	var titles []string

	if anySkillContains(skills, "react", "angular", "vue") {
		titles = append(titles, prefix+"Frontend Developer", prefix+"React Developer")
	}
	if anySkillContains(skills, "node", "python", "java") {
		titles = append(titles, prefix+"Backend Developer", prefix+"Full Stack Developer")
	}
	if anySkillContains(skills, "data", "analytics", "sql") {
		titles = append(titles, prefix+"Data Analyst", prefix+"Data Scientist")
	}
	if anySkillContains(skills, "aws", "cloud", "devops") {
		titles = append(titles, prefix+"DevOps Engineer", prefix+"Cloud Engineer")
	}

	if len(titles) == 0 {
		titles = []string{
			prefix + "Software Developer",
			prefix + "Software Engineer",
			prefix + "Full Stack Developer",
		}
	}
	return titles
}

func levelPrefix(level types.ExperienceLevel) string {
	switch level {
	case types.LevelSenior:
		return "Senior "
	case types.LevelEntry:
		return "Junior "
	default:
		return ""
	}
}

func anySkillContains(skills []string, substrings ...string) bool {
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// salaryRange formats a band for the level with up to 15% downward jitter on
// each endpoint.
func salaryRange(level types.ExperienceLevel) string {
	band, ok := salaryBands[level]
	if !ok {
		band = salaryBands[types.LevelMid]
	}

	jitter := func(base int) int {
		factor := 1 - 0.15 + rand.Float64()*0.15
		return int(float64(base)*factor + 0.5)
	}
	low := jitter(band.min)
	high := jitter(band.max)

	return fmt.Sprintf("$%dk - $%dk", (low+500)/1000, (high+500)/1000)
}

func matchPercentage(skills []string, level types.ExperienceLevel) int {
	base, ok := matchBases[level]
	if !ok {
		base = 75
	}
	bonus := len(skills) * 2
	if bonus > 15 {
		bonus = 15
	}
	score := base + bonus + rand.IntN(10) - 5

	if score < minMatchPercentage {
		score = minMatchPercentage
	}
	if score > maxMatchPercentage {
		score = maxMatchPercentage
	}
	return score
}

// requiredSkills lists up to six of the candidate's skills, padded with
// generic skills to a minimum of five.
func requiredSkills(skills []string) []string {
	selected := make([]string, 0, 6)
	for _, skill := range skills {
		if len(selected) == 6 {
			break
		}
		selected = append(selected, skill)
	}
	for i := 0; len(selected) < 5 && i < len(paddingSkills); i++ {
		selected = append(selected, paddingSkills[i])
	}
	return selected
}

func description(skills []string) string {
	primary := skillAt(skills, 0, "modern web technologies")
	descriptions := []string{
		fmt.Sprintf("Join our innovative team building next-generation applications with %s.", joinSkills(skills, 2, primary)),
		fmt.Sprintf("Exciting opportunity to work on cutting-edge projects using modern technologies including %s.", primary),
		fmt.Sprintf("We're looking for a talented professional to help us scale our platform using %s.", joinSkills(skills, 3, primary)),
		fmt.Sprintf("Great opportunity to make an impact in a fast-growing company with expertise in %s and %s.", primary, skillAt(skills, 1, "modern web technologies")),
	}
	return descriptions[rand.IntN(len(descriptions))]
}

func matchReason(skills []string, level types.ExperienceLevel) string {
	primary := skillAt(skills, 0, "technical")
	reasons := []string{
		fmt.Sprintf("Perfect match for your %s expertise and %s experience level.", primary, level),
		fmt.Sprintf("Strong alignment with your technical skills in %s.", joinSkills(skills, 2, primary)),
		fmt.Sprintf("Great opportunity to leverage your %s-level experience with %s.", level, primary),
		fmt.Sprintf("Excellent fit based on your background in %s.", joinSkills(skills, 3, primary)),
	}
	return reasons[rand.IntN(len(reasons))]
}

func skillAt(skills []string, i int, fallback string) string {
	if i < len(skills) {
		return skills[i]
	}
	return fallback
}

// joinSkills joins up to n skills: pairs read "a and b", longer lists are
// comma-separated. The separator follows the requested count, not the
// available count.
func joinSkills(skills []string, n int, fallback string) string {
	if len(skills) == 0 {
		return fallback
	}
	sep := " and "
	if n >= 3 {
		sep = ", "
	}
	if n > len(skills) {
		n = len(skills)
	}
	return strings.Join(skills[:n], sep)
}

// benefits picks five distinct entries from the benefits pool
func benefits() []string {
	picks := rand.Perm(len(allBenefits))[:5]
	selected := make([]string, 0, 5)
	for _, i := range picks {
		selected = append(selected, allBenefits[i])
	}
	return selected
}
