package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/repository"
	"github.com/aliskhannn/astro-quiz-bot/internal/service"
	"github.com/aliskhannn/astro-quiz-bot/internal/storage"
)

const testChatID int64 = 42

type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	updates  chan tgbotapi.Update

	// sendErr, when set, decides whether Send fails for a message.
	sendErr func(c tgbotapi.Chattable) error
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		if err := b.sendErr(c); err != nil {
			return tgbotapi.Message{}, err
		}
	}
	b.sent = append(b.sent, c)
	return tgbotapi.Message{MessageID: len(b.sent)}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = nil
	b.requests = nil
}

// lastToast returns the text of the most recent callback answer.
func (b *fakeBot) lastToast(t *testing.T) string {
	t.Helper()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if cb, ok := b.requests[i].(tgbotapi.CallbackConfig); ok {
			return cb.Text
		}
	}
	t.Fatal("no callback was answered")
	return ""
}

type testEnv struct {
	bot      *fakeBot
	handler  *Handler
	quiz     *service.QuizService
	settings *service.SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dataset, err := repository.NewDataset("")
	if err != nil {
		t.Fatal(err)
	}

	bot := newFakeBot()
	quiz := service.NewQuizService(dataset, storage.NewSessionStorage(), 3)
	settings := service.NewSettingsService(repository.NewSettingsRepository(), 10)

	return &testEnv{
		bot:      bot,
		handler:  NewHandler(bot, zap.NewNop(), quiz, settings),
		quiz:     quiz,
		settings: settings,
	}
}

func commandUpdate(text string) tgbotapi.Update {
	command := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: testChatID},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: 7},
			Data: data,
			Message: &tgbotapi.Message{
				MessageID: 100,
				Chat:      &tgbotapi.Chat{ID: testChatID},
			},
		},
	}
}

func messageText(t *testing.T, c tgbotapi.Chattable) string {
	t.Helper()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		return m.Text
	case tgbotapi.EditMessageTextConfig:
		return m.Text
	default:
		t.Fatalf("unexpected chattable %T", c)
		return ""
	}
}

func TestHandler_Start(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.handler.handleUpdate(ctx, commandUpdate("/start"))

	if len(env.bot.sent) != 1 {
		t.Fatalf("sent %d messages", len(env.bot.sent))
	}
	msg := env.bot.sent[0].(tgbotapi.MessageConfig)
	if msg.ParseMode != tgbotapi.ModeMarkdownV2 || !strings.Contains(msg.Text, "Welcome") {
		t.Errorf("unexpected welcome: %+v", msg)
	}
	if _, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); !ok {
		t.Error("welcome should have an inline keyboard")
	}

	if _, err := env.settings.GetOrCreate(ctx, testChatID); err != nil {
		t.Fatal(err)
	}
}

func TestHandler_UnknownInput(t *testing.T) {
	env := newTestEnv(t)

	env.handler.handleUpdate(context.Background(), commandUpdate("/horoscope"))
	env.handler.handleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{Text: "hello", Chat: &tgbotapi.Chat{ID: testChatID}},
	})

	if len(env.bot.sent) != 2 {
		t.Fatalf("sent %d messages", len(env.bot.sent))
	}
	for _, c := range env.bot.sent {
		if messageText(t, c) != msgUnknownCommand {
			t.Errorf("unexpected reply %q", messageText(t, c))
		}
	}
}

func TestHandler_ModeCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.handler.handleUpdate(ctx, commandUpdate("/mode hard"))

	settings, _ := env.settings.GetOrCreate(ctx, testChatID)
	if settings.Mode != entities.ModeHard {
		t.Fatalf("mode %q, want hard", settings.Mode)
	}

	env.bot.reset()
	env.handler.handleUpdate(ctx, commandUpdate("/mode medium"))

	if len(env.bot.sent) != 1 || messageText(t, env.bot.sent[0]) != msgInvalidMode {
		t.Fatalf("expected invalid mode reply, got %v", env.bot.sent)
	}
}

func TestHandler_QuizFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.settings.UpdateQuestionCount(ctx, testChatID, 5); err != nil {
		t.Fatal(err)
	}

	env.handler.handleUpdate(ctx, commandUpdate("/quiz"))
	if len(env.bot.sent) != 2 {
		t.Fatalf("expected intro and first question, got %d messages", len(env.bot.sent))
	}

	session, err := env.quiz.Current(testChatID)
	if err != nil {
		t.Fatal(err)
	}

	for i, q := range session.Questions {
		env.bot.reset()

		data := buildQuizAnswerCallback(session.ShortID(), i, q.CorrectIndex())
		env.handler.handleUpdate(ctx, callbackUpdate(data))

		if len(env.bot.sent) != 1 {
			t.Fatalf("question %d: expected one edit, got %d", i, len(env.bot.sent))
		}
		if _, ok := env.bot.sent[0].(tgbotapi.EditMessageTextConfig); !ok {
			t.Fatalf("question %d: expected an edit, got %T", i, env.bot.sent[0])
		}
		if toast := env.bot.lastToast(t); toast != "✅ Correct!" {
			t.Fatalf("question %d: toast %q", i, toast)
		}

		// A second press on the same question is rejected.
		env.handler.handleUpdate(ctx, callbackUpdate(data))
		if toast := env.bot.lastToast(t); toast != msgAlreadyAnswered {
			t.Fatalf("question %d: repeated answer toast %q", i, toast)
		}

		env.bot.reset()
		env.handler.handleUpdate(ctx, callbackUpdate(buildQuizNextCallback(session.ShortID())))
		if len(env.bot.sent) != 1 {
			t.Fatalf("question %d: expected one message after next, got %d", i, len(env.bot.sent))
		}
	}

	result := messageText(t, env.bot.sent[0])
	if !strings.Contains(result, "Quiz complete") || !strings.Contains(result, "5/5") {
		t.Errorf("unexpected result:\n%s", result)
	}

	if _, err := env.quiz.Current(testChatID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("finished session should be removed, got %v", err)
	}
}

func TestHandler_StaleCallbacks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.handler.handleUpdate(ctx, callbackUpdate(buildQuizAnswerCallback("deadbeef", 0, 0)))
	if toast := env.bot.lastToast(t); toast != msgNoActiveQuiz {
		t.Errorf("toast %q, want %q", toast, msgNoActiveQuiz)
	}

	env.handler.handleUpdate(ctx, commandUpdate("/quiz"))
	session, err := env.quiz.Current(testChatID)
	if err != nil {
		t.Fatal(err)
	}

	env.handler.handleUpdate(ctx, callbackUpdate(buildQuizNextCallback(session.ShortID())))
	if toast := env.bot.lastToast(t); toast != msgAnswerFirst {
		t.Errorf("toast %q, want %q", toast, msgAnswerFirst)
	}

	env.handler.handleUpdate(ctx, callbackUpdate("quiz:a:broken"))
	if toast := env.bot.lastToast(t); toast != msgInternalError {
		t.Errorf("toast %q, want %q", toast, msgInternalError)
	}
}

func TestHandler_SettingsCallbacks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.handler.handleUpdate(ctx, callbackUpdate(buildModeCallback(entities.ModeHard)))

	settings, _ := env.settings.GetOrCreate(ctx, testChatID)
	if settings.Mode != entities.ModeHard {
		t.Fatalf("mode %q, want hard", settings.Mode)
	}
	if len(env.bot.sent) != 1 {
		t.Fatalf("expected settings redraw, got %d messages", len(env.bot.sent))
	}
	edit, ok := env.bot.sent[0].(tgbotapi.EditMessageTextConfig)
	if !ok || edit.MessageID != 100 || edit.ReplyMarkup == nil {
		t.Fatalf("unexpected redraw %+v", env.bot.sent[0])
	}

	for _, c := range []entities.Category{entities.CategoryPlanet, entities.CategorySign, entities.CategoryHouse} {
		env.handler.handleUpdate(ctx, callbackUpdate(buildCategoryCallback(c)))
	}
	env.handler.handleUpdate(ctx, callbackUpdate(buildCategoryCallback(entities.CategoryAspect)))
	if toast := env.bot.lastToast(t); toast != msgLastCategory {
		t.Errorf("toast %q, want %q", toast, msgLastCategory)
	}

	env.handler.handleUpdate(ctx, callbackUpdate(buildCountCallback(15)))
	settings, _ = env.settings.GetOrCreate(ctx, testChatID)
	if settings.QuestionCount != 15 {
		t.Errorf("count %d, want 15", settings.QuestionCount)
	}

	env.handler.handleUpdate(ctx, callbackUpdate(buildCountCallback(7)))
	if toast := env.bot.lastToast(t); toast != msgInternalError {
		t.Errorf("invalid count toast %q", toast)
	}
}

func TestHandler_SettingsUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Telegram refuses edits that change nothing.
	env.bot.sendErr = func(c tgbotapi.Chattable) error {
		if _, ok := c.(tgbotapi.EditMessageTextConfig); ok {
			return &tgbotapi.Error{
				Code:    400,
				Message: "Bad Request: message is not modified: specified new message content and reply markup are exactly the same",
			}
		}
		return nil
	}

	for _, data := range []string{
		buildSettingsCallback(settingsMenu),
		buildModeCallback(entities.ModeEasy),
		buildCountCallback(10),
	} {
		env.handler.handleUpdate(ctx, callbackUpdate(data))
		if toast := env.bot.lastToast(t); toast == msgInternalError {
			t.Errorf("%s: unchanged screen reported as a failure", data)
		}
	}

	if toast := env.bot.lastToast(t); toast != "10 questions per quiz" {
		t.Errorf("toast %q", toast)
	}

	// Other edit failures are still reported.
	env.bot.sendErr = func(tgbotapi.Chattable) error {
		return &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}
	}
	env.handler.handleUpdate(ctx, callbackUpdate(buildSettingsCallback(settingsMenu)))
	if toast := env.bot.lastToast(t); toast != msgInternalError {
		t.Errorf("toast %q, want %q", toast, msgInternalError)
	}
}

func TestHandler_CallbackWithoutMessage(t *testing.T) {
	env := newTestEnv(t)

	update := callbackUpdate(buildQuizStartCallback())
	update.CallbackQuery.Message = nil
	env.handler.handleUpdate(context.Background(), update)

	if len(env.bot.sent) != 0 || len(env.bot.requests) != 1 {
		t.Errorf("expected only a callback answer, got %d sent, %d requests", len(env.bot.sent), len(env.bot.requests))
	}
}

func TestHandler_Run(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- env.handler.Run(ctx) }()

	env.bot.updates <- commandUpdate("/help")
	close(env.bot.updates)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not stop after the updates channel closed")
	}

	env.bot.mu.Lock()
	defer env.bot.mu.Unlock()
	if len(env.bot.sent) != 1 || !strings.Contains(messageText(t, env.bot.sent[0]), "How it works") {
		t.Errorf("help was not sent: %v", env.bot.sent)
	}
}
