package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔮 Start quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// maxAnswerButtonsPerRow keeps lettered answer buttons on as few rows as possible.
const maxAnswerButtonsPerRow = 4

// buildQuizAnswerKeyboard builds keyboard for quiz question.
// Buttons show the option letters listed in the question text.
func buildQuizAnswerKeyboard(q *entities.Question, shortID string, questionNum int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for i := range q.Options {
		callbackData := buildQuizAnswerCallback(shortID, questionNum, i)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(optionLabel(i), callbackData))

		if len(row) == maxAnswerButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizNextKeyboard is shown under an answered question.
func buildQuizNextKeyboard(session *entities.QuizSession) tgbotapi.InlineKeyboardMarkup {
	label := "Next question ▶️"
	if session.IsLast() {
		label = "See results 🏁"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback(session.ShortID())),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

func modeRow(settings *entities.ChatSettings) []tgbotapi.InlineKeyboardButton {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.Modes))
	for _, m := range entities.Modes {
		label := formatMode(m)
		if settings.Mode == m {
			label = "• " + label + " •"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildModeCallback(m)))
	}
	return row
}

func categoryRows(settings *entities.ChatSettings) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, c := range entities.Categories {
		mark := "▫️"
		if settings.HasCategory(c) {
			mark = "✅"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(mark+" "+c.Label(), buildCategoryCallback(c)))

		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows
}

func countRow(settings *entities.ChatSettings) []tgbotapi.InlineKeyboardButton {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.QuestionCounts))
	for _, n := range entities.QuestionCounts {
		label := fmt.Sprintf("%d", n)
		if settings.QuestionCount == n {
			label = "• " + label + " •"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildCountCallback(n)))
	}
	return row
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard(settings *entities.ChatSettings) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{modeRow(settings)}
	rows = append(rows, categoryRows(settings)...)
	rows = append(rows,
		countRow(settings),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔮 Start quiz", buildQuizStartCallback()),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildModeKeyboard builds keyboard for the difficulty setting.
func buildModeKeyboard(settings *entities.ChatSettings) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(modeRow(settings), backRow())
}

// buildCategoriesKeyboard builds keyboard for category selection.
func buildCategoriesKeyboard(settings *entities.ChatSettings) tgbotapi.InlineKeyboardMarkup {
	rows := categoryRows(settings)
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
