package analysis

import (
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// minAcceptWordCount is the minimum filtered word count for a document to be
// accepted as a resume.
const minAcceptWordCount = 100

// minResumeMarkers is the minimum number of distinct resume vocabulary terms
// required for acceptance.
const minResumeMarkers = 3

// Classify decides whether a document is a genuine resume. The decision is a
// strict priority chain, not a weighted vote: any certificate marker rejects
// the document as a certificate before resume signals are considered.
func Classify(text string) types.ClassificationVerdict {
	lower := strings.ToLower(text)

	if countVocabTerms(lower, certificateVocab) >= 1 {
		return types.ClassificationVerdict{
			IsActualResume: false,
			ContentType:    types.ContentTypeCertificate,
		}
	}

	resumeMarkers := countVocabTerms(lower, resumeVocab)
	hasWorkExperience := workExperiencePattern.MatchString(text)
	hasContact := emailPattern.MatchString(text) || phonePattern.MatchString(text)

	if resumeMarkers >= minResumeMarkers && hasWorkExperience && hasContact && countWords(lower) >= minAcceptWordCount {
		return types.ClassificationVerdict{
			IsActualResume: true,
			ContentType:    types.ContentTypeResume,
		}
	}

	return types.ClassificationVerdict{
		IsActualResume: false,
		ContentType:    types.ContentTypeOther,
	}
}

// countVocabTerms counts how many distinct vocabulary terms appear in the
// lower-cased text by substring containment
func countVocabTerms(lowerText string, vocab []string) int {
	count := 0
	for _, term := range vocab {
		if strings.Contains(lowerText, term) {
			count++
		}
	}
	return count
}

// countWords counts whitespace-separated tokens longer than two characters.
// This filtered definition is used consistently for classification, scoring,
// and report statistics.
func countWords(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if len(token) > 2 {
			count++
		}
	}
	return count
}
