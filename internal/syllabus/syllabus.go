// Package syllabus holds the static NEET UG syllabus dataset and the
// scope queries used by the progress tracker. The data is hand-authored
// at build time and never mutated.
package syllabus

// Subject identifies one of the three NEET subjects.
type Subject string

const (
	SubjectPhysics   Subject = "Physics"
	SubjectChemistry Subject = "Chemistry"
	SubjectBiology   Subject = "Biology"
)

// AllSubjects returns the three subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectPhysics, SubjectChemistry, SubjectBiology}
}

// ParseSubject maps a subject name (case-sensitive, as stored on
// questions) to a Subject. Returns false for unknown names.
func ParseSubject(name string) (Subject, bool) {
	switch Subject(name) {
	case SubjectPhysics, SubjectChemistry, SubjectBiology:
		return Subject(name), true
	}
	return "", false
}

// Topic is the smallest trackable unit of the syllabus.
type Topic struct {
	ID   string
	Name string
}

// Chapter is an ordered group of topics. Identity is ID.
type Chapter struct {
	ID     string
	Name   string
	Topics []Topic
}

// SubjectSyllabus groups a subject's chapters by class tier.
type SubjectSyllabus struct {
	Class11 []Chapter
	Class12 []Chapter
}

// Get returns the syllabus for a subject.
func Get(s Subject) (SubjectSyllabus, bool) {
	switch s {
	case SubjectPhysics:
		return physicsSyllabus, true
	case SubjectChemistry:
		return chemistrySyllabus, true
	case SubjectBiology:
		return biologySyllabus, true
	}
	return SubjectSyllabus{}, false
}

// Chapters returns all chapters of a subject, class 11 before class 12.
func Chapters(s Subject) []Chapter {
	syl, ok := Get(s)
	if !ok {
		return nil
	}
	out := make([]Chapter, 0, len(syl.Class11)+len(syl.Class12))
	out = append(out, syl.Class11...)
	out = append(out, syl.Class12...)
	return out
}

// FindChapter looks up a chapter by ID within a subject.
func FindChapter(s Subject, chapterID string) (Chapter, bool) {
	for _, ch := range Chapters(s) {
		if ch.ID == chapterID {
			return ch, true
		}
	}
	return Chapter{}, false
}

// Scope selects a slice of the syllabus for progress queries.
// The zero value means the entire syllabus across all subjects.
// Subject alone selects one subject; Subject plus ChapterID selects
// a single chapter.
type Scope struct {
	Subject   Subject
	ChapterID string
}

// TopicIDs returns the IDs of every topic inside the scope, in
// syllabus order. A chapter ID that does not exist under the subject
// yields an empty slice.
func TopicIDs(scope Scope) []string {
	var ids []string
	collect := func(ch Chapter) {
		for _, t := range ch.Topics {
			ids = append(ids, t.ID)
		}
	}

	if scope.Subject == "" {
		for _, s := range AllSubjects() {
			for _, ch := range Chapters(s) {
				collect(ch)
			}
		}
		return ids
	}

	if scope.ChapterID != "" {
		if ch, ok := FindChapter(scope.Subject, scope.ChapterID); ok {
			collect(ch)
		}
		return ids
	}

	for _, ch := range Chapters(scope.Subject) {
		collect(ch)
	}
	return ids
}

// TopicCount returns the number of topics in the scope.
func TopicCount(scope Scope) int {
	return len(TopicIDs(scope))
}
