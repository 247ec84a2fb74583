package service

import (
	"strconv"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

func (b *batch) aspectQuestions(aspects []entities.Aspect) []entities.Question {
	filtered := aspects
	if b.mode == entities.ModeEasy {
		filtered = make([]entities.Aspect, 0, len(aspects))
		for _, a := range aspects {
			if a.IsMajor {
				filtered = append(filtered, a)
			}
		}
	}

	labels := make([]string, len(filtered))
	relationships := make([]string, len(filtered))
	degrees := make([]string, len(filtered))
	for i, a := range filtered {
		labels[i] = a.Name
		relationships[i] = a.Relationship
		degrees[i] = strconv.Itoa(a.Degrees)
	}

	b.valueQuestions("What is the relationship description of a %s aspect?", labels, relationships)
	b.valueQuestions("How many degrees are in a %s aspect?", labels, degrees)

	for i, a := range filtered {
		b.choice(
			"Which zodiacal qualities are shared in a "+labels[i]+" aspect?",
			a.SharedQualities(),
			entities.QualityCombinations,
		)
	}

	b.listQuestions(labels, listField{
		values:     collect(filtered, func(a entities.Aspect) []string { return a.Function }),
		easyPrompt: "What is the function or meaning of a %s aspect?",
		hardPrompt: "Which of these is a function or keyword of a %s aspect?",
	})

	return b.questions
}
