// Package httpapi exposes quiz generation as a small JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/service"
)

// maxQuestionCount bounds the count query parameter.
const maxQuestionCount = 500

type QuizService interface {
	GenerateQuiz(count int, mode entities.Mode, categories []entities.Category) ([]entities.Question, error)
}

type Handler struct {
	quizService  QuizService
	defaultCount int
	logger       *zap.Logger
}

func NewHandler(quizService QuizService, defaultCount int, logger *zap.Logger) *Handler {
	return &Handler{
		quizService:  quizService,
		defaultCount: defaultCount,
		logger:       logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type quizResponse struct {
	Questions []entities.Question `json:"questions"`
}

type categoryInfo struct {
	ID    entities.Category `json:"id"`
	Label string            `json:"label"`
}

type categoriesResponse struct {
	Categories []categoryInfo  `json:"categories"`
	Modes      []entities.Mode `json:"modes"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GenerateQuiz handles GET /api/v1/quiz?count=10&mode=easy&categories=planet,sign.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	count := h.defaultCount
	if s := query.Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > maxQuestionCount {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be an integer between 0 and " + strconv.Itoa(maxQuestionCount)})
			return
		}
		count = n
	}

	mode := entities.ModeEasy
	if s := query.Get("mode"); s != "" {
		mode, _ = entities.ParseMode(s)
	}

	categories := entities.Categories
	if s := query.Get("categories"); s != "" {
		categories = parseCategories(s)
		if len(categories) == 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one category is required"})
			return
		}
	}

	questions, err := h.quizService.GenerateQuiz(count, mode, categories)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMode) || errors.Is(err, service.ErrUnknownCategory) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		h.logger.Error("failed to generate quiz", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz generation failed"})
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{Questions: questions})
}

// ListCategories handles GET /api/v1/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	resp := categoriesResponse{Modes: entities.Modes}
	for _, c := range entities.Categories {
		resp.Categories = append(resp.Categories, categoryInfo{ID: c, Label: c.Label()})
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseCategories(s string) []entities.Category {
	var categories []entities.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, _ := entities.ParseCategory(part)
		categories = append(categories, c)
	}
	return categories
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
