package syllabus

import "testing"

func TestAllSubjectsHaveData(t *testing.T) {
	for _, s := range AllSubjects() {
		syl, ok := Get(s)
		if !ok {
			t.Fatalf("Get(%s) returned no syllabus", s)
		}
		if len(syl.Class11) == 0 || len(syl.Class12) == 0 {
			t.Errorf("%s: expected chapters in both class tiers, got %d/%d",
				s, len(syl.Class11), len(syl.Class12))
		}
	}
}

func TestTopicIDsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, s := range AllSubjects() {
		for _, ch := range Chapters(s) {
			if ch.ID == "" || ch.Name == "" {
				t.Errorf("%s: chapter with empty ID or name", s)
			}
			for _, topic := range ch.Topics {
				if topic.ID == "" || topic.Name == "" {
					t.Errorf("%s/%s: topic with empty ID or name", s, ch.ID)
				}
				if prev, dup := seen[topic.ID]; dup {
					t.Errorf("duplicate topic ID %s (in %s and %s)", topic.ID, prev, ch.ID)
				}
				seen[topic.ID] = ch.ID
			}
		}
	}
}

func TestTopicIDsScopes(t *testing.T) {
	all := TopicIDs(Scope{})
	if len(all) == 0 {
		t.Fatal("empty syllabus")
	}

	perSubject := 0
	for _, s := range AllSubjects() {
		perSubject += len(TopicIDs(Scope{Subject: s}))
	}
	if perSubject != len(all) {
		t.Errorf("subject scopes sum to %d topics, whole syllabus has %d", perSubject, len(all))
	}

	// One chapter scope.
	phys := Chapters(SubjectPhysics)
	ch := phys[0]
	got := TopicIDs(Scope{Subject: SubjectPhysics, ChapterID: ch.ID})
	if len(got) != len(ch.Topics) {
		t.Errorf("chapter scope %s: got %d topics, want %d", ch.ID, len(got), len(ch.Topics))
	}
}

func TestTopicIDsUnknownChapter(t *testing.T) {
	got := TopicIDs(Scope{Subject: SubjectBiology, ChapterID: "no_such_chapter"})
	if len(got) != 0 {
		t.Errorf("unknown chapter: got %d topics, want 0", len(got))
	}
}

func TestFindChapterSearchesBothTiers(t *testing.T) {
	syl, _ := Get(SubjectChemistry)
	c12 := syl.Class12[0]
	got, ok := FindChapter(SubjectChemistry, c12.ID)
	if !ok {
		t.Fatalf("FindChapter(%s) not found", c12.ID)
	}
	if got.Name != c12.Name {
		t.Errorf("FindChapter(%s).Name = %q, want %q", c12.ID, got.Name, c12.Name)
	}
}

func TestParseSubject(t *testing.T) {
	tests := []struct {
		in   string
		want Subject
		ok   bool
	}{
		{"Physics", SubjectPhysics, true},
		{"Chemistry", SubjectChemistry, true},
		{"Biology", SubjectBiology, true},
		{"physics", "", false},
		{"", "", false},
		{"Maths", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSubject(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseSubject(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
