package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/career-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify_RealResume(t *testing.T) {
	verdict := Classify(sampleResumeText)

	assert.True(t, verdict.IsActualResume)
	assert.Equal(t, types.ContentTypeResume, verdict.ContentType)
}

func TestClassify_Certificate(t *testing.T) {
	verdict := Classify(sampleCertificateText)

	assert.False(t, verdict.IsActualResume)
	assert.Equal(t, types.ContentTypeCertificate, verdict.ContentType)
}

func TestClassify_CertificateOverridesResumeSignals(t *testing.T) {
	// A strong resume plus a single certificate marker must still be rejected
	// as a certificate: the override is a hard rule, not a weighted vote.
	text := sampleResumeText + "\nCertificate of excellence attached."

	verdict := Classify(text)

	assert.False(t, verdict.IsActualResume)
	assert.Equal(t, types.ContentTypeCertificate, verdict.ContentType)
}

func TestClassify_OtherWhenTooFewWords(t *testing.T) {
	// All resume signals present but under 100 significant words
	text := "Skills and experience as a developer and engineer. Employment history available. Contact: a@b.com 555-123-4567, worked on many projects."

	verdict := Classify(text)

	assert.False(t, verdict.IsActualResume)
	assert.Equal(t, types.ContentTypeOther, verdict.ContentType)
}

func TestClassify_OtherWithoutContactInfo(t *testing.T) {
	text := strings.ReplaceAll(sampleResumeText, "john.smith@example.com", "redacted")
	text = strings.ReplaceAll(text, "555-123-4567", "redacted")

	verdict := Classify(text)

	assert.False(t, verdict.IsActualResume)
	assert.Equal(t, types.ContentTypeOther, verdict.ContentType)
}

func TestClassify_PhoneAloneSatisfiesContact(t *testing.T) {
	text := strings.ReplaceAll(sampleResumeText, "john.smith@example.com", "redacted")

	verdict := Classify(text)

	assert.True(t, verdict.IsActualResume)
}

func TestCountWords_FiltersShortTokens(t *testing.T) {
	assert.Equal(t, 3, countWords("go is fun and fast"))
	assert.Equal(t, 0, countWords("a b c"))
	assert.Equal(t, 3, countWords("  one\n two   three "))
}

func TestCountVocabTerms_DistinctTermsNotOccurrences(t *testing.T) {
	// "experience" appears three times but counts once
	count := countVocabTerms("experience experience experience skills", resumeVocab)
	assert.Equal(t, 2, count)
}
