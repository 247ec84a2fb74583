package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// QuizSession is a single quiz run in a chat.
// It tracks the questions, the current position, the score and the answers given so far.
type QuizSession struct {
	ID          uuid.UUID
	ChatID      int64
	Mode        Mode
	Categories  []Category
	Questions   []Question
	Current     int  // zero-based index of the current question
	Answered    bool // whether the current question has been answered
	Score       int
	Answers     []QuizAnswer
	Status      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewQuizSession creates an active session for the chat.
func NewQuizSession(chatID int64, mode Mode, categories []Category, questions []Question) *QuizSession {
	return &QuizSession{
		ID:         uuid.New(),
		ChatID:     chatID,
		Mode:       mode,
		Categories: categories,
		Questions:  questions,
		Status:     SessionActive,
		StartedAt:  time.Now(),
	}
}

// ShortID returns the first eight hex digits of the session id,
// enough to tell sessions of one chat apart in callback data.
func (qs *QuizSession) ShortID() string {
	return qs.ID.String()[:8]
}

// CurrentQuestion returns the question being asked, or nil once the session is over.
func (qs *QuizSession) CurrentQuestion() *Question {
	if qs.Current < 0 || qs.Current >= len(qs.Questions) {
		return nil
	}
	return &qs.Questions[qs.Current]
}

// IsLast reports whether the current question is the final one.
func (qs *QuizSession) IsLast() bool {
	return qs.Current == len(qs.Questions)-1
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.Status = SessionCompleted
	now := time.Now()
	qs.CompletedAt = &now
}

// QuizAnswer is a user's answer to one quiz question.
type QuizAnswer struct {
	Question   Question
	UserAnswer string
	IsCorrect  bool
	AnsweredAt time.Time
}

// NewQuizAnswer checks the selected option against the question.
func NewQuizAnswer(q Question, userAnswer string) QuizAnswer {
	return QuizAnswer{
		Question:   q,
		UserAnswer: userAnswer,
		IsCorrect:  userAnswer == q.CorrectAnswer,
		AnsweredAt: time.Now(),
	}
}

// Verdict is a one-line summary of how well the quiz went.
func (qs *QuizSession) Verdict() string {
	total := len(qs.Questions)
	switch {
	case total > 0 && qs.Score == total:
		return "Perfect score! You're an astrology expert! ✨"
	case qs.Score*2 >= total:
		return "Great job! You know your astrology quite well."
	default:
		return "Keep studying, you'll get there! The stars are complex."
	}
}
