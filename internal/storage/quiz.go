package storage

import (
	"slices"
	"sync"
	"time"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
// A chat has at most one session; storing a new one replaces the old.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session for its chat.
func (s *SessionStorage) Store(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ChatID] = session
}

// Get returns a snapshot of the chat's session.
func (s *SessionStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	return snapshot(session), true
}

// Update runs fn on the chat's session while holding the write lock.
// It reports false if the chat has no session. The returned session is a
// snapshot taken after fn, even when fn fails.
func (s *SessionStorage) Update(chatID int64, fn func(*entities.QuizSession) error) (*entities.QuizSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, false, nil
	}

	err := fn(session)
	return snapshot(session), true, err
}

// Delete removes the chat's session.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// DeleteStale removes sessions started before cutoff and returns how many were removed.
func (s *SessionStorage) DeleteStale(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for chatID, session := range s.sessions {
		if session.StartedAt.Before(cutoff) {
			delete(s.sessions, chatID)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func snapshot(session *entities.QuizSession) *entities.QuizSession {
	cp := *session
	cp.Answers = slices.Clone(session.Answers)
	return &cp
}
