package service

import "github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"

func (b *batch) planetQuestions(planets []entities.Planet) []entities.Question {
	labels := make([]string, len(planets))
	for i, p := range planets {
		labels[i] = planetRef(p)
	}

	fields := []listField{
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Archetypes }),
			easyPrompt: "What are the archetypes of %s?",
			hardPrompt: "Which of these is an archetype of %s?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Needs }),
			easyPrompt: "What are the needs of %s?",
			hardPrompt: "Which of these is a need of %s?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Descriptors }),
			easyPrompt: "What are the descriptors of %s?",
			hardPrompt: "Which of these is a descriptor of %s?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Domicile }),
			easyPrompt: "Which sign(s) is %s in domicile?",
			hardPrompt: "In which sign is %s in domicile?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Exaltation }),
			easyPrompt: "In which sign(s) is %s exalted?",
			hardPrompt: "In which sign is %s exalted?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Detriment }),
			easyPrompt: "In which sign(s) is %s in detriment?",
			hardPrompt: "In which sign is %s in detriment?",
		},
		{
			values:     collect(planets, func(p entities.Planet) []string { return p.Fall }),
			easyPrompt: "In which sign(s) is %s in fall?",
			hardPrompt: "In which sign is %s in fall?",
		},
	}

	for _, f := range fields {
		b.listQuestions(labels, f)
	}

	return b.questions
}
