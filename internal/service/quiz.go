package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

var (
	ErrInvalidMode          = errors.New("invalid quiz mode")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrSessionNotFound      = errors.New("quiz session not found")
	ErrStaleSession         = errors.New("quiz session is outdated")
	ErrAlreadyAnswered      = errors.New("question already answered")
	ErrNotAnswered          = errors.New("current question not answered yet")
	ErrInvalidOption        = errors.New("invalid option index")
)

// QuizService generates quizzes from the dataset and drives chat quiz sessions.
type QuizService struct {
	dataset     Dataset
	storage     SessionStorage
	newRandom   func() Random
	distractors int
}

// NewQuizService creates a QuizService. A non-positive distractorCount
// means DefaultDistractorCount.
func NewQuizService(dataset Dataset, storage SessionStorage, distractorCount int) *QuizService {
	if distractorCount <= 0 {
		distractorCount = DefaultDistractorCount
	}

	return &QuizService{
		dataset:     dataset,
		storage:     storage,
		newRandom:   NewRandom,
		distractors: distractorCount,
	}
}

// SetRandomSource replaces the factory used to seed each generation call.
func (s *QuizService) SetRandomSource(newRandom func() Random) {
	s.newRandom = newRandom
}

// GenerateQuiz builds up to count questions for the selected categories.
// Fewer questions are returned when the pool is smaller than count.
func (s *QuizService) GenerateQuiz(count int, mode entities.Mode, categories []entities.Category) ([]entities.Question, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	selected := make(map[entities.Category]bool, len(categories))
	for _, c := range categories {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		selected[c] = true
	}

	if count <= 0 {
		return []entities.Question{}, nil
	}

	rnd := s.newRandom()

	var pool []entities.Question
	for _, c := range entities.Categories {
		if selected[c] {
			pool = append(pool, s.generate(c, mode, rnd)...)
		}
	}

	shuffle(rnd, pool)

	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count:count], nil
}

func (s *QuizService) generate(category entities.Category, mode entities.Mode, rnd Random) []entities.Question {
	b := newBatch(category, mode, rnd, s.distractors)

	switch category {
	case entities.CategoryPlanet:
		return b.planetQuestions(s.dataset.Planets())
	case entities.CategorySign:
		return b.signQuestions(s.dataset.Signs())
	case entities.CategoryHouse:
		return b.houseQuestions(s.dataset.Houses())
	case entities.CategoryAspect:
		return b.aspectQuestions(s.dataset.Aspects())
	default:
		return nil
	}
}

// StartSession generates a quiz from the chat's settings and makes it the
// chat's active session, replacing any previous one.
func (s *QuizService) StartSession(chatID int64, settings *entities.ChatSettings) (*entities.QuizSession, error) {
	questions, err := s.GenerateQuiz(settings.QuestionCount, settings.Mode, settings.Categories)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(chatID, settings.Mode, settings.Categories, questions)
	s.storage.Store(session)

	return session, nil
}

// Current returns the chat's active session.
func (s *QuizService) Current(chatID int64) (*entities.QuizSession, error) {
	session, ok := s.storage.Get(chatID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Answer records the option chosen for question questionNum of the session
// identified by shortID. It returns the updated session and the recorded answer.
func (s *QuizService) Answer(
	chatID int64, shortID string, questionNum, optionIndex int,
) (*entities.QuizSession, *entities.QuizAnswer, error) {
	var answer entities.QuizAnswer

	session, ok, err := s.storage.Update(chatID, func(qs *entities.QuizSession) error {
		if qs.ShortID() != shortID || qs.Status != entities.SessionActive {
			return ErrStaleSession
		}

		switch {
		case questionNum < qs.Current:
			return ErrAlreadyAnswered
		case questionNum > qs.Current:
			return ErrStaleSession
		case qs.Answered:
			return ErrAlreadyAnswered
		}

		q := qs.CurrentQuestion()
		if q == nil {
			return ErrStaleSession
		}
		if optionIndex < 0 || optionIndex >= len(q.Options) {
			return ErrInvalidOption
		}

		answer = entities.NewQuizAnswer(*q, q.Options[optionIndex])
		qs.Answers = append(qs.Answers, answer)
		qs.Answered = true
		if answer.IsCorrect {
			qs.Score++
		}

		return nil
	})
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	return session, &answer, nil
}

// Next moves the session past an answered question. After the last question
// the session is completed.
func (s *QuizService) Next(chatID int64, shortID string) (*entities.QuizSession, error) {
	session, ok, err := s.storage.Update(chatID, func(qs *entities.QuizSession) error {
		if qs.ShortID() != shortID || qs.Status != entities.SessionActive {
			return ErrStaleSession
		}
		if !qs.Answered {
			return ErrNotAnswered
		}

		if qs.IsLast() {
			qs.Complete()
			return nil
		}

		qs.Current++
		qs.Answered = false
		return nil
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Finish drops the chat's session once its summary has been shown.
func (s *QuizService) Finish(chatID int64) {
	s.storage.Delete(chatID)
}
