package service

import (
	"fmt"
	"slices"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

func (b *batch) signQuestions(signs []entities.Sign) []entities.Question {
	labels := make([]string, len(signs))
	for i, s := range signs {
		labels[i] = s.Name
	}

	descriptors := collect(signs, func(s entities.Sign) []string { return s.Descriptors })
	needs := collect(signs, func(s entities.Sign) []string { return s.Needs })

	if b.mode == entities.ModeEasy {
		rulers := make([]string, len(signs))
		categories := make([]string, len(signs))
		for i, s := range signs {
			rulers[i], _ = s.Ruler()
			categories[i] = s.Categories()
		}

		b.valueQuestions("Which planet rules the sign of %s?", labels, rulers)
		b.valueQuestions("What are the categories (polarity, element, modality) of %s?", labels, categories)
		b.listQuestions(labels, listField{
			values:     descriptors,
			easyPrompt: "What are the descriptors of %s?",
		})
		b.listQuestions(labels, listField{
			values:     needs,
			easyPrompt: "What are the needs of %s?",
		})

		return b.questions
	}

	b.listQuestions(labels, listField{
		values:     descriptors,
		hardPrompt: "Which of these is a descriptor of %s?",
	})
	b.listQuestions(labels, listField{
		values:     needs,
		hardPrompt: "Which of these is a need of %s?",
	})

	b.domainQuestions("What is the modality of %s?", signs, entities.Modalities, func(s entities.Sign) string { return s.Modality })
	b.domainQuestions("What is the element of %s?", signs, entities.Elements, func(s entities.Sign) string { return s.Element })
	b.domainQuestions("What is the polarity of %s?", signs, entities.Polarities, func(s entities.Sign) string { return s.Polarity })

	return b.questions
}

// domainQuestions offers the whole fixed domain in canonical order.
func (b *batch) domainQuestions(prompt string, signs []entities.Sign, domain []string, get func(entities.Sign) string) {
	for _, s := range signs {
		correct := get(s)
		if !slices.Contains(domain, correct) {
			continue
		}
		b.add(fmt.Sprintf(prompt, s.Name), correct, slices.Clone(domain))
	}
}
