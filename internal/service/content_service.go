package service

import (
	"context"
	"fmt"
	"html/template"

	"driving-theory-web/internal/data"
	"driving-theory-web/internal/i18n"

	"github.com/microcosm-cc/bluemonday"
)

// ContentService is the read-only query surface over the per-locale stores.
// It resolves cross-references strictly: a question whose category cannot be
// found is treated as absent, never surfaced partially.
type ContentService struct {
	categories *data.CategoryRepository
	questions  *data.QuestionRepository
	sanitizer  *bluemonday.Policy
}

// NewContentService creates a ContentService over the given store.
func NewContentService(store *data.Store) *ContentService {
	// The description/explanation columns hold authored HTML fragments.
	// UGCPolicy strips anything dangerous; id attributes are allowed so
	// in-document anchors survive.
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowAttrs("id").Globally()

	return &ContentService{
		categories: data.NewCategoryRepository(store),
		questions:  data.NewQuestionRepository(store),
		sanitizer:  sanitizer,
	}
}

// ListCategories returns every category of a locale in ascending-ID order.
func (s *ContentService) ListCategories(ctx context.Context, locale i18n.Locale) ([]data.Category, error) {
	return s.categories.GetAll(ctx, locale)
}

// GetCategory returns a category by ID, or nil when absent.
func (s *ContentService) GetCategory(ctx context.Context, locale i18n.Locale, id int64) (*data.Category, error) {
	return s.categories.GetByID(ctx, locale, id)
}

// ListQuestions returns every question of a locale in ascending-ID order.
func (s *ContentService) ListQuestions(ctx context.Context, locale i18n.Locale) ([]data.Question, error) {
	return s.questions.GetAll(ctx, locale)
}

// GetQuestion returns a question by ID, or nil when absent.
func (s *ContentService) GetQuestion(ctx context.Context, locale i18n.Locale, id int64) (*data.Question, error) {
	return s.questions.GetByID(ctx, locale, id)
}

// ListAnswers returns a question's answers sorted by position.
func (s *ContentService) ListAnswers(ctx context.Context, locale i18n.Locale, questionID int64) ([]data.Answer, error) {
	return s.questions.GetAnswers(ctx, locale, questionID)
}

// GetQuestionWithContext returns a question together with its answers and
// resolved category. It returns nil when either the question or its category
// is missing: a dangling category_id must not produce a partial result.
func (s *ContentService) GetQuestionWithContext(ctx context.Context, locale i18n.Locale, id int64) (*data.QuestionWithContext, error) {
	question, err := s.questions.GetByID(ctx, locale, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}

	category, err := s.categories.GetByID(ctx, locale, question.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	answers, err := s.questions.GetAnswers(ctx, locale, id)
	if err != nil {
		return nil, err
	}

	q := &data.QuestionWithContext{
		Question: *question,
		Answers:  answers,
		Category: *category,
	}
	s.sanitizeHTML(&q.Question)
	return q, nil
}

// ListQuestionsByCategory returns a category's questions with answers and
// the shared category attached, in ascending-ID order. An unknown category
// yields an empty slice.
func (s *ContentService) ListQuestionsByCategory(ctx context.Context, locale i18n.Locale, categoryID int64) ([]data.QuestionWithContext, error) {
	category, err := s.categories.GetByID(ctx, locale, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	questions, err := s.questions.GetByCategoryID(ctx, locale, categoryID)
	if err != nil {
		return nil, err
	}

	result := make([]data.QuestionWithContext, 0, len(questions))
	for _, question := range questions {
		answers, err := s.questions.GetAnswers(ctx, locale, question.ID)
		if err != nil {
			return nil, err
		}
		q := data.QuestionWithContext{
			Question: question,
			Answers:  answers,
			Category: *category,
		}
		s.sanitizeHTML(&q.Question)
		result = append(result, q)
	}
	return result, nil
}

// ListAllWithContext returns every question of a locale with answers and
// category resolved, in ascending-ID order. A question with a dangling
// category reference fails the whole listing; the build must not silently
// drop content.
func (s *ContentService) ListAllWithContext(ctx context.Context, locale i18n.Locale) ([]data.QuestionWithContext, error) {
	questions, err := s.questions.GetAll(ctx, locale)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.GetAll(ctx, locale)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]data.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	result := make([]data.QuestionWithContext, 0, len(questions))
	for _, question := range questions {
		category, ok := byID[question.CategoryID]
		if !ok {
			return nil, fmt.Errorf("question %d in %s references missing category %d", question.ID, locale, question.CategoryID)
		}
		answers, err := s.questions.GetAnswers(ctx, locale, question.ID)
		if err != nil {
			return nil, err
		}
		q := data.QuestionWithContext{
			Question: question,
			Answers:  answers,
			Category: category,
		}
		s.sanitizeHTML(&q.Question)
		result = append(result, q)
	}
	return result, nil
}

func (s *ContentService) sanitizeHTML(q *data.Question) {
	if q.Description != nil {
		q.HTMLDescription = template.HTML(s.sanitizer.Sanitize(*q.Description))
	}
	if q.Explanation != nil {
		q.HTMLExplanation = template.HTML(s.sanitizer.Sanitize(*q.Explanation))
	}
}
