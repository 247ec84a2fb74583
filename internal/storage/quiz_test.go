package storage

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

func newSession(chatID int64) *entities.QuizSession {
	questions := []entities.Question{{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: "a"}}
	return entities.NewQuizSession(chatID, entities.ModeEasy, entities.Categories, questions)
}

func TestSessionStorage_GetReturnsSnapshot(t *testing.T) {
	s := NewSessionStorage()
	s.Store(newSession(1))

	got, ok := s.Get(1)
	if !ok {
		t.Fatal("session not found")
	}
	got.Score = 42
	got.Answers = append(got.Answers, entities.QuizAnswer{})

	again, _ := s.Get(1)
	if again.Score != 0 || len(again.Answers) != 0 {
		t.Error("snapshot mutation leaked into storage")
	}

	if _, ok := s.Get(2); ok {
		t.Error("unexpected session for chat 2")
	}
}

func TestSessionStorage_Update(t *testing.T) {
	s := NewSessionStorage()

	if _, ok, _ := s.Update(1, func(*entities.QuizSession) error { return nil }); ok {
		t.Fatal("update of missing session must report false")
	}

	s.Store(newSession(1))

	updated, ok, err := s.Update(1, func(qs *entities.QuizSession) error {
		qs.Score++
		return nil
	})
	if !ok || err != nil || updated.Score != 1 {
		t.Fatalf("update: ok=%v err=%v score=%d", ok, err, updated.Score)
	}

	errBoom := errors.New("boom")
	if _, _, err := s.Update(1, func(*entities.QuizSession) error { return errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
}

func TestSessionStorage_ConcurrentUpdates(t *testing.T) {
	s := NewSessionStorage()
	s.Store(newSession(1))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = s.Update(1, func(qs *entities.QuizSession) error {
				qs.Score++
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Get(1)
	if got.Score != 50 {
		t.Errorf("score %d, want 50", got.Score)
	}
}

func TestSessionStorage_DeleteStale(t *testing.T) {
	s := NewSessionStorage()
	now := time.Now()

	old := newSession(1)
	old.StartedAt = now.Add(-time.Hour)
	s.Store(old)
	s.Store(newSession(2))

	if removed := s.DeleteStale(now.Add(-time.Minute)); removed != 1 {
		t.Fatalf("removed %d, want 1", removed)
	}
	if s.Len() != 1 {
		t.Errorf("len %d, want 1", s.Len())
	}

	s.Delete(2)
	if s.Len() != 0 {
		t.Error("storage should be empty")
	}
}
