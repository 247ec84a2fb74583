// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// Error and status messages.
const (
	msgInternalError        = "Something went wrong. Please try again later."
	msgSettingsUnavailable  = "Could not load your settings. Please try again later."
	msgQuizUnavailable      = "Could not create a quiz. Please try again later."
	msgNoAvailableQuestions = "There are no questions for the selected categories. Pick other categories in /categories."
	msgNoActiveQuiz         = "This quiz is no longer active. Start a new one with /quiz."
	msgAlreadyAnswered      = "You have already answered this question."
	msgAnswerFirst          = "Answer the question first."
	msgLastCategory         = "At least one category must stay selected."
	msgInvalidMode          = "Unknown mode. Use /mode easy or /mode hard."
	msgUnknownCommand       = "Unknown command. Available commands:\n\n" +
		"/quiz — start a quiz\n" +
		"/mode — choose difficulty\n" +
		"/categories — choose categories\n" +
		"/settings — view all settings\n" +
		"/help — how it works"
)

// maxMessageLen keeps messages below the Telegram limit of 4096 characters.
const maxMessageLen = 3800

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMessage builds the /start greeting.
func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("✨ Welcome to Astro Quiz!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Test what you know about the building blocks of astrology:"))
	sb.WriteString("\n\n")
	sb.WriteString(md("🪐 Planets: archetypes, needs and dignities\n"))
	sb.WriteString(md("♈ Signs: rulers, elements, modalities and polarities\n"))
	sb.WriteString(md("🏠 Houses: topics, types and chart points\n"))
	sb.WriteString(md("📐 Aspects: degrees, meanings and shared qualities\n"))
	sb.WriteString("\n")
	sb.WriteString(md("Easy mode asks about whole lists. Hard mode picks a single item and mixes in minor aspects."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Press the button below or send /quiz to begin."))

	return sb.String()
}

// helpMessage explains commands and modes.
func helpMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("❓ How it works"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Every quiz draws a fresh random set of multiple choice questions from the categories you selected."))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Commands"))
	sb.WriteString("\n")
	sb.WriteString(md("/quiz — start a quiz\n"))
	sb.WriteString(md("/mode easy|hard — set the difficulty\n"))
	sb.WriteString(md("/categories — toggle planets, signs, houses and aspects\n"))
	sb.WriteString(md("/settings — difficulty, categories and quiz length in one place\n"))
	sb.WriteString("\n")
	sb.WriteString(bold("Modes"))
	sb.WriteString("\n")
	sb.WriteString(md("🟢 Easy: answers are complete lists, major aspects only.\n"))
	sb.WriteString(md("🔴 Hard: answers are single items, all aspects included."))

	return sb.String()
}

// formatMode formats quiz mode for display.
func formatMode(mode entities.Mode) string {
	switch mode {
	case entities.ModeEasy:
		return "🟢 Easy"
	case entities.ModeHard:
		return "🔴 Hard"
	default:
		return string(mode)
	}
}

func formatCategories(categories []entities.Category) string {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label())
	}
	return strings.Join(labels, ", ")
}

// buildQuizStartMessage builds quiz start message (MarkdownV2 safe).
func buildQuizStartMessage(session *entities.QuizSession) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s\n%s %s\n\n%s",
		bold("🔮 The quiz begins!"),
		md("Mode:"),
		bold(formatMode(session.Mode)),
		md("Categories:"),
		bold(formatCategories(session.Categories)),
		md("Questions:"),
		bold(fmt.Sprintf("%d", len(session.Questions))),
		md("Choose the correct option for each question."),
	)
}

// optionLabel returns the letter shown for the i-th option: A, B, C...
func optionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}

// formatQuizQuestion formats a quiz question with its lettered options
// (MarkdownV2 safe). Buttons carry only the letters, so the full option
// texts must be readable in the message itself.
func formatQuizQuestion(q *entities.Question, currentNum, totalQuestions int) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("Question %d of %d · %s", currentNum, totalQuestions, q.Category.Label())))
	sb.WriteString("\n\n")
	sb.WriteString(bold(q.Question))
	sb.WriteString("\n")

	for i, option := range q.Options {
		sb.WriteString("\n")
		sb.WriteString(bold(optionLabel(i) + "."))
		sb.WriteString(" ")
		sb.WriteString(md(option))
	}

	return sb.String()
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(answer *entities.QuizAnswer) string {
	if answer.IsCorrect {
		return fmt.Sprintf("%s %s", md("✅ Correct!"), bold(answer.UserAnswer))
	}
	return fmt.Sprintf(
		"%s %s\n%s %s",
		md("❌ Your answer:"),
		md(answer.UserAnswer),
		md("Correct answer:"),
		bold(answer.Question.CorrectAnswer),
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatQuizResult formats quiz results with a review of missed questions (MarkdownV2 safe).
func formatQuizResult(session *entities.QuizSession) string {
	total := len(session.Questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(session.Score) / float64(total) * 100
	}

	var sb strings.Builder
	sb.WriteString(bold("🏁 Quiz complete!"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Score: "))
	sb.WriteString(bold(fmt.Sprintf("%d/%d (%.0f%%)", session.Score, total, percentage)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(session.Score, total, 10)))
	sb.WriteString("\n\n")
	sb.WriteString(md(session.Verdict()))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Mode: %s\nCategories: %s", formatMode(session.Mode), formatCategories(session.Categories))))

	var missed []entities.QuizAnswer
	for _, a := range session.Answers {
		if !a.IsCorrect {
			missed = append(missed, a)
		}
	}
	if len(missed) == 0 {
		return sb.String()
	}

	sb.WriteString("\n\n")
	sb.WriteString(bold("Review"))

	for i, a := range missed {
		entry := fmt.Sprintf("\n\n%s\n%s %s",
			italic(a.Question.Question),
			md("→"),
			bold(a.Question.CorrectAnswer),
		)
		if sb.Len()+len(entry) > maxMessageLen {
			sb.WriteString("\n\n")
			sb.WriteString(md(fmt.Sprintf("…and %d more", len(missed)-i)))
			break
		}
		sb.WriteString(entry)
	}

	return sb.String()
}

// buildSettingsMessage renders current chat settings.
func buildSettingsMessage(settings *entities.ChatSettings) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s\n%s %s\n\n%s",
		bold("⚙️ Settings"),
		md("🎚 Mode:"),
		bold(formatMode(settings.Mode)),
		md("📚 Categories:"),
		bold(formatCategories(settings.Categories)),
		md("📝 Questions per quiz:"),
		bold(fmt.Sprintf("%d", settings.QuestionCount)),
		md("Tap a button to change a setting."),
	)
}

func buildModeMessage(settings *entities.ChatSettings) string {
	return fmt.Sprintf(
		"%s\n\n%s %s",
		bold("🎚 Difficulty"),
		md("Current mode:"),
		bold(formatMode(settings.Mode)),
	)
}

func buildCategoriesMessage(settings *entities.ChatSettings) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n\n%s",
		bold("📚 Categories"),
		md("Selected:"),
		bold(formatCategories(settings.Categories)),
		md("Tap a category to select or deselect it."),
	)
}
