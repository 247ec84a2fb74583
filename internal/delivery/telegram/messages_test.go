package telegram

import (
	"strings"
	"testing"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{0, 10, "[░░░░░░░░░░]"},
		{5, 10, "[█████░░░░░]"},
		{10, 10, "[██████████]"},
		{12, 10, "[██████████]"},
	}

	for _, tt := range tests {
		if got := buildProgressBar(tt.current, tt.total, 10); got != tt.want {
			t.Errorf("%d/%d: got %s, want %s", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestFormatQuizQuestion_Escapes(t *testing.T) {
	q := &entities.Question{
		Question: "Which aspect spans 72 degrees (a fifth of the circle)?",
		Category: entities.CategoryAspect,
	}

	got := formatQuizQuestion(q, 2, 10)
	if !strings.Contains(got, `Question 2 of 10 · Aspects`) {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, `\(a fifth of the circle\)?`) {
		t.Errorf("question is not escaped: %s", got)
	}
}

func TestFormatAnswerFeedback(t *testing.T) {
	q := entities.Question{Options: []string{"Leo", "Aries"}, CorrectAnswer: "Leo"}

	right := entities.NewQuizAnswer(q, "Leo")
	if got := formatAnswerFeedback(&right); !strings.Contains(got, "Correct") {
		t.Errorf("unexpected feedback %q", got)
	}

	wrong := entities.NewQuizAnswer(q, "Aries")
	got := formatAnswerFeedback(&wrong)
	if !strings.Contains(got, "Aries") || !strings.Contains(got, "*Leo*") {
		t.Errorf("feedback should show both answers: %q", got)
	}
}

func TestFormatQuizResult(t *testing.T) {
	q := entities.Question{Question: "What is the ruler of Aries?", Options: []string{"Mars", "Venus"}, CorrectAnswer: "Mars"}
	session := entities.NewQuizSession(1, entities.ModeHard, []entities.Category{entities.CategorySign}, []entities.Question{q, q})
	session.Answers = []entities.QuizAnswer{entities.NewQuizAnswer(q, "Mars"), entities.NewQuizAnswer(q, "Venus")}
	session.Score = 1

	got := formatQuizResult(session)
	for _, want := range []string{"1/2 \\(50%\\)", "Great job", "Review", "*Mars*", "Signs"} {
		if !strings.Contains(got, want) {
			t.Errorf("result missing %q:\n%s", want, got)
		}
	}

	session.Score = 2
	session.Answers[1] = entities.NewQuizAnswer(q, "Mars")
	if strings.Contains(formatQuizResult(session), "Review") {
		t.Error("perfect score has nothing to review")
	}
}

func TestFormatQuizResult_Truncates(t *testing.T) {
	q := entities.Question{
		Question:      strings.Repeat("What are the needs of this very long planet name? ", 3),
		Options:       []string{"A", "B"},
		CorrectAnswer: "A",
	}

	questions := make([]entities.Question, 100)
	answers := make([]entities.QuizAnswer, 100)
	for i := range questions {
		questions[i] = q
		answers[i] = entities.NewQuizAnswer(q, "B")
	}
	session := entities.NewQuizSession(1, entities.ModeEasy, entities.Categories, questions)
	session.Answers = answers

	got := formatQuizResult(session)
	if len(got) > 4096 {
		t.Fatalf("result is %d bytes", len(got))
	}
	if !strings.Contains(got, "more") {
		t.Error("truncated review should say how many are left")
	}
}

func TestSettingsKeyboard(t *testing.T) {
	settings := entities.NewChatSettings(1, 10)
	settings.Categories = []entities.Category{entities.CategoryHouse}

	kb := buildSettingsKeyboard(settings)

	// mode, two category rows, counts, start
	if len(kb.InlineKeyboard) != 5 {
		t.Fatalf("got %d rows", len(kb.InlineKeyboard))
	}

	selected := 0
	for _, row := range kb.InlineKeyboard[1:3] {
		for _, b := range row {
			if strings.HasPrefix(b.Text, "✅") {
				selected++
				if *b.CallbackData != buildCategoryCallback(entities.CategoryHouse) {
					t.Errorf("unexpected callback %q", *b.CallbackData)
				}
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d categories marked selected", selected)
	}

	if kb.InlineKeyboard[3][1].Text != "• 10 •" {
		t.Errorf("current count not marked: %q", kb.InlineKeyboard[3][1].Text)
	}
}
