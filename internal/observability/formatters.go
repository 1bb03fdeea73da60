// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of an analysis report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	verdict := "Not a resume"
	if report.IsActualResume {
		verdict = "Resume"
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s (%s)\n", verdict, report.ContentType))
	sb.WriteString(fmt.Sprintf("Overall:  %d\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("ATS:      %d\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("Method:   %s\n", report.AnalysisMethod))
	sb.WriteString("\n")

	sb.WriteString("Categories:\n")
	sb.WriteString(fmt.Sprintf("  Quality:    %d\n", report.Scores.Quality))
	sb.WriteString(fmt.Sprintf("  Skills:     %d\n", report.Scores.Skills))
	sb.WriteString(fmt.Sprintf("  Experience: %d\n", report.Scores.Experience))
	sb.WriteString(fmt.Sprintf("  Education:  %d\n", report.Scores.Education))
	sb.WriteString(fmt.Sprintf("  Format:     %d\n", report.Scores.Format))

	writeList(&sb, "Strengths", report.Strengths)
	writeList(&sb, "Improvements", report.Improvements)
	writeList(&sb, "Recommendations", report.Recommendations)

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTextStats outputs the structural statistics of an analyzed document.
func (p *Printer) PrintTextStats(stats types.TextStats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:                %d\n", stats.WordCount))
	sb.WriteString(fmt.Sprintf("Lines:                %d\n", stats.LineCount))
	sb.WriteString(fmt.Sprintf("Sections found:       %d\n", stats.SectionsFound))
	sb.WriteString(fmt.Sprintf("Skills found:         %d\n", stats.SkillsFound))
	sb.WriteString(fmt.Sprintf("Keywords found:       %d\n", stats.KeywordsFound))
	sb.WriteString(fmt.Sprintf("Certificate markers:  %d", stats.CertificateMarkers))

	p.printBox("DOCUMENT STATISTICS", sb.String())
}

// PrintAssessment outputs a human-readable summary of an answer assessment.
func (p *Printer) PrintAssessment(assessment *types.InterviewAssessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.1f / 10\n", assessment.Score))
	sb.WriteString(fmt.Sprintf("Feedback: %s\n", assessment.Feedback))

	writeList(&sb, "Tips", assessment.Tips)

	p.printBox("ANSWER ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs a generated interview question set.
func (p *Printer) PrintQuestions(questions []types.InterviewQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. [%s/%s]\n", i+1, q.Type, q.Difficulty))
		sb.WriteString(fmt.Sprintf("   %s\n", q.Question))
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs the top job matches with scores.
func (p *Printer) PrintJobMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%d%% %s\n", m.MatchPercentage, m.JobTitle))
		sb.WriteString(fmt.Sprintf("    %s, %s (%s)\n", m.Company, m.Location, m.SalaryRange))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// writeList appends a titled bullet list capped at maxItemsToShow
func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
