package service

import (
	"errors"
	"testing"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

const testChatID int64 = 777

func startTestSession(t *testing.T, s *QuizService, count int) *entities.QuizSession {
	t.Helper()

	settings := entities.NewChatSettings(testChatID, count)
	session, err := s.StartSession(testChatID, settings)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return session
}

func TestStartSession(t *testing.T) {
	s := newTestQuizService(t)
	session := startTestSession(t, s, 5)

	if len(session.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(session.Questions))
	}
	if session.Status != entities.SessionActive || session.Current != 0 || session.Score != 0 {
		t.Fatalf("unexpected initial state: %+v", session)
	}

	current, err := s.Current(testChatID)
	if err != nil {
		t.Fatal(err)
	}
	if current.ID != session.ID {
		t.Error("current session should be the started one")
	}

	// A new session replaces the previous one.
	next := startTestSession(t, s, 5)
	current, _ = s.Current(testChatID)
	if current.ID != next.ID {
		t.Error("expected the newest session to be active")
	}
}

func TestStartSession_NoQuestions(t *testing.T) {
	s := newTestQuizService(t)

	settings := entities.NewChatSettings(testChatID, 10)
	settings.Categories = nil

	if _, err := s.StartSession(testChatID, settings); !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("expected ErrNoQuestionsAvailable, got %v", err)
	}
}

func TestSessionFlow(t *testing.T) {
	s := newTestQuizService(t)
	session := startTestSession(t, s, 5)
	shortID := session.ShortID()

	correct := 0
	for i := range session.Questions {
		q := session.Questions[i]

		// Alternate right and wrong answers.
		option := q.CorrectIndex()
		if i%2 == 1 {
			option = (option + 1) % len(q.Options)
		} else {
			correct++
		}

		updated, answer, err := s.Answer(testChatID, shortID, i, option)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if answer.IsCorrect != (i%2 == 0) {
			t.Fatalf("answer %d: unexpected correctness %v", i, answer.IsCorrect)
		}
		if updated.Score != correct {
			t.Fatalf("answer %d: score %d, want %d", i, updated.Score, correct)
		}

		if _, _, err := s.Answer(testChatID, shortID, i, option); !errors.Is(err, ErrAlreadyAnswered) {
			t.Fatalf("second answer: expected ErrAlreadyAnswered, got %v", err)
		}

		updated, err = s.Next(testChatID, shortID)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}

		if i == len(session.Questions)-1 {
			if updated.Status != entities.SessionCompleted || updated.CompletedAt == nil {
				t.Fatalf("session should be completed: %+v", updated)
			}
		} else if updated.Current != i+1 || updated.Answered {
			t.Fatalf("next %d: unexpected position %d", i, updated.Current)
		}
	}

	final, err := s.Current(testChatID)
	if err != nil {
		t.Fatal(err)
	}
	if len(final.Answers) != 5 || final.Score != 3 {
		t.Fatalf("unexpected final state: score %d, %d answers", final.Score, len(final.Answers))
	}

	if _, _, err := s.Answer(testChatID, shortID, 4, 0); !errors.Is(err, ErrStaleSession) {
		t.Errorf("answer after completion: expected ErrStaleSession, got %v", err)
	}

	s.Finish(testChatID)
	if _, err := s.Current(testChatID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after finish, got %v", err)
	}
}

func TestAnswer_Errors(t *testing.T) {
	s := newTestQuizService(t)

	if _, _, err := s.Answer(testChatID, "deadbeef", 0, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	session := startTestSession(t, s, 5)
	shortID := session.ShortID()

	tests := []struct {
		name        string
		shortID     string
		questionNum int
		option      int
		want        error
	}{
		{"other session", "00000000", 0, 0, ErrStaleSession},
		{"future question", shortID, 3, 0, ErrStaleSession},
		{"negative option", shortID, 0, -1, ErrInvalidOption},
		{"option out of range", shortID, 0, 10, ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := s.Answer(testChatID, tt.shortID, tt.questionNum, tt.option); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := s.Next(testChatID, shortID); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("next before answering: expected ErrNotAnswered, got %v", err)
	}

	if _, _, err := s.Answer(testChatID, shortID, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Next(testChatID, shortID); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Answer(testChatID, shortID, 0, 0); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("past question: expected ErrAlreadyAnswered, got %v", err)
	}
}
