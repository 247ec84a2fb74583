package entities

import (
	"errors"
	"time"
)

// ErrLastCategory is returned when deselecting the only selected category.
var ErrLastCategory = errors.New("at least one category must stay selected")

// QuestionCounts are the quiz lengths a chat can choose from.
var QuestionCounts = []int{5, 10, 15, 20}

// ChatSettings stores quiz preferences of a chat.
type ChatSettings struct {
	ChatID        int64
	Mode          Mode
	Categories    []Category // selected categories in canonical order
	QuestionCount int        // number of questions per quiz
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewChatSettings creates settings with every category selected in easy mode.
func NewChatSettings(chatID int64, questionCount int) *ChatSettings {
	now := time.Now()
	categories := make([]Category, len(Categories))
	copy(categories, Categories)

	return &ChatSettings{
		ChatID:        chatID,
		Mode:          ModeEasy,
		Categories:    categories,
		QuestionCount: questionCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasCategory reports whether c is selected.
func (cs *ChatSettings) HasCategory(c Category) bool {
	for _, selected := range cs.Categories {
		if selected == c {
			return true
		}
	}
	return false
}

// ToggleCategory selects or deselects c, keeping canonical order.
// The last selected category cannot be deselected.
func (cs *ChatSettings) ToggleCategory(c Category) error {
	if cs.HasCategory(c) && len(cs.Categories) == 1 {
		return ErrLastCategory
	}

	selected := cs.HasCategory(c)
	next := make([]Category, 0, len(Categories))
	for _, known := range Categories {
		switch {
		case known == c && selected:
			continue
		case known == c, cs.HasCategory(known):
			next = append(next, known)
		}
	}

	cs.Categories = next
	cs.UpdatedAt = time.Now()
	return nil
}

// IsValidQuestionCount reports whether n is one of QuestionCounts.
func IsValidQuestionCount(n int) bool {
	for _, allowed := range QuestionCounts {
		if n == allowed {
			return true
		}
	}
	return false
}
