package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/service"
)

// startQuiz creates a session from the chat's settings and sends the first question.
func (h *Handler) startQuiz(ctx context.Context, chatID int64) error {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to get settings for quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return h.send(newPlainMessage(chatID, msgQuizUnavailable))
	}

	session, err := h.quizService.StartSession(chatID, settings)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			return h.send(newPlainMessage(chatID, msgNoAvailableQuestions))
		}
		return fmt.Errorf("start quiz session: %w", err)
	}

	h.logger.Debug("quiz session created",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID.String()),
		zap.String("mode", string(session.Mode)),
		zap.Int("questions", len(session.Questions)),
	)

	if err := h.send(newMessage(chatID, buildQuizStartMessage(session))); err != nil {
		return err
	}

	return h.sendQuestion(chatID, session)
}

func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession) error {
	q := session.CurrentQuestion()
	if q == nil {
		return fmt.Errorf("session %s has no current question", session.ShortID())
	}

	msg := newMessage(chatID, formatQuizQuestion(q, session.Current+1, len(session.Questions)))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(q, session.ShortID(), session.Current)
	return h.send(msg)
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	switch data.param(0) {
	case quizStart:
		h.answerCallback(cb.ID, "")
		return h.startQuiz(ctx, cb.Message.Chat.ID)
	case quizAnswer:
		return h.handleAnswer(cb, data)
	case quizNext:
		return h.handleNext(cb, data)
	default:
		return fmt.Errorf("unknown quiz action %q", data.Raw)
	}
}

func (h *Handler) handleAnswer(cb *tgbotapi.CallbackQuery, data callbackData) error {
	chatID := cb.Message.Chat.ID

	shortID, questionNum, optionIndex, ok := parseAnswerCallback(data)
	if !ok {
		return fmt.Errorf("malformed answer callback %q", data.Raw)
	}

	session, answer, err := h.quizService.Answer(chatID, shortID, questionNum, optionIndex)
	if err != nil {
		if text, handled := sessionErrorText(err); handled {
			h.answerCallback(cb.ID, text)
			return nil
		}
		return err
	}

	text := formatQuizQuestion(&answer.Question, session.Current+1, len(session.Questions)) +
		"\n\n" + formatAnswerFeedback(answer)

	edit := newEdit(chatID, cb.Message.MessageID, text)
	keyboard := buildQuizNextKeyboard(session)
	edit.ReplyMarkup = &keyboard
	if err := h.send(edit); err != nil {
		return err
	}

	toast := "❌ Wrong"
	if answer.IsCorrect {
		toast = "✅ Correct!"
	}
	h.answerCallback(cb.ID, toast)

	return nil
}

func (h *Handler) handleNext(cb *tgbotapi.CallbackQuery, data callbackData) error {
	chatID := cb.Message.Chat.ID

	session, err := h.quizService.Next(chatID, data.param(1))
	if err != nil {
		if text, handled := sessionErrorText(err); handled {
			h.answerCallback(cb.ID, text)
			return nil
		}
		return err
	}

	h.answerCallback(cb.ID, "")

	// The "next" button has done its job.
	markup := tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := h.bot.Request(markup); err != nil {
		h.logger.Debug("failed to clear keyboard", zap.Error(err))
	}

	if session.Status == entities.SessionCompleted {
		h.quizService.Finish(chatID)

		h.logger.Info("quiz completed",
			zap.Int64("chat_id", chatID),
			zap.Int("score", session.Score),
			zap.Int("total", len(session.Questions)),
		)

		msg := newMessage(chatID, formatQuizResult(session))
		msg.ReplyMarkup = buildQuizResultKeyboard()
		return h.send(msg)
	}

	return h.sendQuestion(chatID, session)
}

// sessionErrorText maps expected session errors to a short user notice.
func sessionErrorText(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrStaleSession),
		errors.Is(err, service.ErrInvalidOption):
		return msgNoActiveQuiz, true
	case errors.Is(err, service.ErrAlreadyAnswered):
		return msgAlreadyAnswered, true
	case errors.Is(err, service.ErrNotAnswered):
		return msgAnswerFirst, true
	default:
		return "", false
	}
}
