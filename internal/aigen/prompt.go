package aigen

import (
	"fmt"
	"strings"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

const systemPrompt = `You are an expert NEET examiner writing original practice questions for medical entrance aspirants.

Rules:
- Generate single-correct multiple choice questions at NEET difficulty, strictly within the NCERT class 11 and 12 syllabus.
- Each question has exactly 4 options with exactly one correct answer. Distractors must reflect common misconceptions, not random values.
- Use plain ASCII text. Write formulas and units inline, e.g. "9.8 m/s^2", "H2SO4".
- The question text must be self-contained: no references to figures, tables, or previous questions.
- Spread questions across different chapters rather than clustering on one.
- Do not reproduce past NEET questions verbatim; write fresh ones in the same style.`

// buildUserMessage constructs the per-subject request from the
// syllabus and config limits.
func buildUserMessage(subject syllabus.Subject, n int, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subjectLabel(subject))
	fmt.Fprintf(&b, "Questions needed: %d\n", n)
	b.WriteString("\nChapters to draw from:\n")
	b.WriteString(chapterList(subject, cfg.MaxChapters))

	return b.String()
}

// chapterList formats chapter names for the prompt, respecting the cap.
func chapterList(subject syllabus.Subject, max int) string {
	chapters := syllabus.Chapters(subject)
	if max > 0 && len(chapters) > max {
		chapters = chapters[:max]
	}

	var b strings.Builder
	for i, ch := range chapters {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ch.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func subjectLabel(s syllabus.Subject) string {
	switch s {
	case syllabus.SubjectPhysics:
		return "Physics"
	case syllabus.SubjectChemistry:
		return "Chemistry"
	case syllabus.SubjectBiology:
		return "Biology (Botany and Zoology)"
	default:
		return string(s)
	}
}
