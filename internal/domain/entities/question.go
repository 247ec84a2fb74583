package entities

import (
	"fmt"
	"strings"
)

// Mode is the quiz difficulty.
type Mode string

const (
	ModeEasy Mode = "easy"
	ModeHard Mode = "hard"
)

// Modes lists every difficulty in display order.
var Modes = []Mode{ModeEasy, ModeHard}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeEasy || m == ModeHard
}

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// Category is the subject area of a question.
type Category string

const (
	CategoryPlanet Category = "planet"
	CategorySign   Category = "sign"
	CategoryHouse  Category = "house"
	CategoryAspect Category = "aspect"
)

// Categories lists every category in canonical order.
var Categories = []Category{CategoryPlanet, CategorySign, CategoryHouse, CategoryAspect}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// Label returns the plural display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryPlanet:
		return "Planets"
	case CategorySign:
		return "Signs"
	case CategoryHouse:
		return "Houses"
	case CategoryAspect:
		return "Aspects"
	default:
		return string(c)
	}
}

// QuestionID identifies a question within one generated batch.
type QuestionID struct {
	Category Category
	Seq      int
}

// String renders the id as "<category>-<seq>".
func (id QuestionID) String() string {
	return fmt.Sprintf("%s-%d", id.Category, id.Seq)
}

// MarshalText implements encoding.TextMarshaler.
func (id QuestionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Question is a generated multiple-choice question.
type Question struct {
	ID            QuestionID `json:"id"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correctAnswer"`
	Category      Category   `json:"category"`
}

// CorrectIndex returns the position of the correct answer in Options, or -1.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
