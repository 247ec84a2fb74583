package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionSettings = "settings"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "a"
	quizNext   = "n"
)

// Settings sub-actions.
const (
	settingsMenu     = "menu"
	settingsMode     = "mode"
	settingsCategory = "cat"
	settingsCount    = "count"
)

// maxCallbackDataLen is the Telegram limit for inline button payloads.
const maxCallbackDataLen = 64

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or "" if it is missing.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(shortID string, questionNum, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			shortID,
			strconv.Itoa(questionNum),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// buildQuizNextCallback builds callback data for moving to the next question.
func buildQuizNextCallback(shortID string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNext, shortID},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildModeCallback(mode entities.Mode) string {
	return buildSettingsCallback(settingsMode, string(mode))
}

func buildCategoryCallback(category entities.Category) string {
	return buildSettingsCallback(settingsCategory, string(category))
}

func buildCountCallback(count int) string {
	return buildSettingsCallback(settingsCount, strconv.Itoa(count))
}

// parseAnswerCallback extracts the session id, question number and option
// index from quiz:a:<session>:<question>:<option>.
func parseAnswerCallback(cd callbackData) (shortID string, questionNum, optionIndex int, ok bool) {
	if len(cd.Params) != 4 || cd.Params[0] != quizAnswer || cd.Params[1] == "" {
		return "", 0, 0, false
	}

	questionNum, err1 := strconv.Atoi(cd.Params[2])
	optionIndex, err2 := strconv.Atoi(cd.Params[3])
	if err1 != nil || err2 != nil || questionNum < 0 || optionIndex < 0 {
		return "", 0, 0, false
	}

	return cd.Params[1], questionNum, optionIndex, true
}
