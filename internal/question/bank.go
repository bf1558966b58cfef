package question

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

// Pool sizes per subject, mirroring the NEET weighting (half the paper
// is Biology).
const (
	biologyPoolSize   = 500
	chemistryPoolSize = 250
	physicsPoolSize   = 250
)

// bankSeed fixes the PRNG used for option order, answer placement and
// year tags so the bank is identical across runs.
const bankSeed = 20260503

var (
	bankOnce sync.Once
	bank     []Question
)

// Bank returns the full static question pool. The pool is derived from
// the syllabus dataset by cycling chapters and topics, so every topic
// is represented. The slice is shared; callers must not mutate it.
func Bank() []Question {
	bankOnce.Do(func() { bank = generateBank() })
	return bank
}

// BySubject returns the bank questions for one subject, in bank order.
func BySubject(s syllabus.Subject) []Question {
	var out []Question
	for _, q := range Bank() {
		if q.Subject == s {
			out = append(out, q)
		}
	}
	return out
}

var questionTemplates = []string{
	"Which of the following statements is most accurate regarding %[1]s?",
	"Identify the incorrect match for %[1]s among the following options:",
	"Consider the following properties of %[1]s. Which one is a defining characteristic?",
	"In the context of %[2]s, how does %[1]s influence the overall system?",
	"A student is studying %[1]s. Which observation would best support the current theory?",
	"Which of the following is the primary function/application of %[1]s?",
	"Select the correct sequence of events related to %[1]s:",
	"What is the major difference between %[1]s and its related concepts in %[2]s?",
}

func generateBank() []Question {
	r := rand.New(rand.NewPCG(bankSeed, 0))

	counts := map[syllabus.Subject]int{
		syllabus.SubjectBiology:   biologyPoolSize,
		syllabus.SubjectChemistry: chemistryPoolSize,
		syllabus.SubjectPhysics:   physicsPoolSize,
	}

	var out []Question
	for _, subject := range []syllabus.Subject{syllabus.SubjectPhysics, syllabus.SubjectChemistry, syllabus.SubjectBiology} {
		chapters := syllabus.Chapters(subject)
		for i := 1; i <= counts[subject]; i++ {
			chapter := chapters[i%len(chapters)]
			topic := chapter.Topics[i%len(chapter.Topics)]

			tmpl := questionTemplates[i%len(questionTemplates)]
			text := fmt.Sprintf(tmpl, topic.Name, chapter.Name)

			options := [OptionCount]string{
				fmt.Sprintf("Primary characteristic of %s involving %s principles.", topic.Name, chapter.Name),
				fmt.Sprintf("Secondary effect observed in %s under standard conditions.", topic.Name),
				fmt.Sprintf("Regulatory mechanism associated with %s in biological/physical systems.", topic.Name),
				fmt.Sprintf("None of the above statements correctly describe %s.", topic.Name),
			}
			r.Shuffle(OptionCount, func(a, b int) {
				options[a], options[b] = options[b], options[a]
			})

			aspect := "functional"
			if i%2 == 0 {
				aspect = "structural"
			}

			out = append(out, Question{
				ID:      fmt.Sprintf("%s_%03d", strings.ToUpper(string(subject)[:3]), i),
				Subject: subject,
				Chapter: chapter.Name,
				Topic:   topic.Name,
				Text:    fmt.Sprintf("%s (Question ID: %c%d)", text, subject[0], i),
				Options: options,
				Answer:  r.IntN(OptionCount),
				Explanation: fmt.Sprintf(
					"The concept of %s is central to %s. Understanding its %s aspects is crucial for NEET. This question tests your ability to differentiate between similar concepts.",
					topic.Name, chapter.Name, aspect),
				Year: 2015 + r.IntN(11),
			})
		}
	}
	return out
}
