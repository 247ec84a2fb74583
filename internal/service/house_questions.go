package service

import (
	"fmt"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

func (b *batch) houseQuestions(houses []entities.House) []entities.Question {
	labels := make([]string, len(houses))
	chartPoints := make([]string, len(houses))
	for i, h := range houses {
		labels[i] = houseRef(h)
		chartPoints[i] = h.ChartPoint
	}

	b.listQuestions(labels, listField{
		values:     collect(houses, func(h entities.House) []string { return h.PrimaryTopics }),
		easyPrompt: "What are the primary topics of %s?",
		hardPrompt: "Which of these is a primary topic of %s?",
	})
	b.listQuestions(labels, listField{
		values:     collect(houses, func(h entities.House) []string { return h.SecondaryTopics }),
		easyPrompt: "What are the secondary topics of %s?",
		hardPrompt: "Which of these is a secondary topic of %s?",
	})

	if b.mode == entities.ModeHard {
		b.houseTypeQuestions(houses)
	}

	b.valueQuestions("Which chart point is found on the cusp of %s?", labels, chartPoints)

	return b.questions
}

// houseTypeQuestions offers one exemplar type string per house type, in
// canonical order, with the asked house's own type in its slot.
func (b *batch) houseTypeQuestions(houses []entities.House) {
	exemplars := make([]string, len(entities.HouseTypes))
	copy(exemplars, entities.HouseTypes)

	found := make([]bool, len(entities.HouseTypes))
	for _, h := range houses {
		if _, idx := h.TypePrefix(); idx >= 0 && !found[idx] {
			exemplars[idx] = h.Type
			found[idx] = true
		}
	}

	for _, h := range houses {
		_, idx := h.TypePrefix()
		if idx < 0 {
			continue
		}

		options := make([]string, len(exemplars))
		copy(options, exemplars)
		options[idx] = h.Type

		b.add(fmt.Sprintf("What type of house is %s?", houseRef(h)), h.Type, options)
	}
}
