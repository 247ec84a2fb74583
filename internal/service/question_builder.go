package service

import (
	"fmt"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// batch collects the questions of one category during a single generation call.
type batch struct {
	mode        entities.Mode
	category    entities.Category
	rnd         Random
	options     *OptionGenerator
	distractors int
	questions   []entities.Question
}

func newBatch(category entities.Category, mode entities.Mode, rnd Random, distractors int) *batch {
	return &batch{
		mode:        mode,
		category:    category,
		rnd:         rnd,
		options:     NewOptionGenerator(rnd),
		distractors: distractors,
	}
}

// add appends a question with a ready option set.
func (b *batch) add(prompt, correct string, options []string) {
	b.questions = append(b.questions, entities.Question{
		ID:            entities.QuestionID{Category: b.category, Seq: len(b.questions) + 1},
		Question:      prompt,
		Options:       options,
		CorrectAnswer: correct,
		Category:      b.category,
	})
}

// choice appends a question whose wrong options are drawn from pool.
func (b *batch) choice(prompt, correct string, pool []string) {
	b.add(prompt, correct, b.options.Generate(correct, pool, b.distractors))
}

// listField is one multi-valued attribute across every entity of a category.
// values[i] belongs to the i-th entity and is empty when it does not apply.
type listField struct {
	values     [][]string
	easyPrompt string // format with one %s for the entity label
	hardPrompt string
}

func collect[T any](items []T, get func(T) []string) [][]string {
	values := make([][]string, len(items))
	for i, item := range items {
		values[i] = get(item)
	}
	return values
}

// listQuestions asks about f for every entity that has it. Easy mode treats
// the whole joined list as the answer; hard mode asks about one random item.
func (b *batch) listQuestions(labels []string, f listField) {
	for i, own := range f.values {
		if len(own) == 0 {
			continue
		}

		if b.mode == entities.ModeHard {
			b.pickedQuestion(fmt.Sprintf(f.hardPrompt, labels[i]), i, f.values)
		} else {
			b.joinedQuestion(fmt.Sprintf(f.easyPrompt, labels[i]), i, f.values)
		}
	}
}

func (b *batch) joinedQuestion(prompt string, self int, values [][]string) {
	correct := joinList(values[self])

	pool := make([]string, 0, len(values))
	for j, other := range values {
		if j == self || len(other) == 0 {
			continue
		}
		pool = append(pool, joinList(other))
	}

	b.choice(prompt, correct, pool)
}

func (b *batch) pickedQuestion(prompt string, self int, values [][]string) {
	own := values[self]
	correct := capitalize(own[b.rnd.IntN(len(own))])
	if correct == "" {
		return
	}

	// Items the entity itself has must not show up as wrong options.
	owned := make(map[string]bool, len(own))
	for _, item := range own {
		owned[capitalize(item)] = true
	}

	var pool []string
	for j, other := range values {
		if j == self {
			continue
		}
		for _, item := range other {
			if c := capitalize(item); !owned[c] {
				pool = append(pool, c)
			}
		}
	}

	b.choice(prompt, correct, pool)
}

// valueQuestions asks about a single-valued attribute. Entities with an
// empty value are skipped and do not contribute distractors.
func (b *batch) valueQuestions(prompt string, labels, values []string) {
	for i, correct := range values {
		if correct == "" {
			continue
		}

		pool := make([]string, 0, len(values))
		for j, other := range values {
			if j != i && other != "" {
				pool = append(pool, other)
			}
		}

		b.choice(fmt.Sprintf(prompt, labels[i]), correct, pool)
	}
}
