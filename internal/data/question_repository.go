package data

import (
	"context"
	"database/sql"
	"fmt"

	"driving-theory-web/internal/i18n"
)

const questionColumns = `id, category_id, media, question, points, description,
	explanation, correct_answer, type, official_number, license_categories`

// QuestionRepository handles read queries for questions and their answers.
type QuestionRepository struct {
	store *Store
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(store *Store) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// GetAll retrieves every question for a locale in ascending-ID order.
func (r *QuestionRepository) GetAll(ctx context.Context, locale i18n.Locale) ([]Question, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var questions []Question
	query := `SELECT ` + questionColumns + ` FROM Questions ORDER BY id`
	if err := db.SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("failed to get questions for %s: %w", locale, err)
	}
	return questions, nil
}

// GetByID finds a question by its ID. A missing row is (nil, nil), not an error.
func (r *QuestionRepository) GetByID(ctx context.Context, locale i18n.Locale, id int64) (*Question, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var question Question
	query := `SELECT ` + questionColumns + ` FROM Questions WHERE id = ?`
	if err := db.GetContext(ctx, &question, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d for %s: %w", id, locale, err)
	}
	return &question, nil
}

// GetByCategoryID retrieves the questions of one category in ascending-ID order.
func (r *QuestionRepository) GetByCategoryID(ctx context.Context, locale i18n.Locale, categoryID int64) ([]Question, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var questions []Question
	query := `SELECT ` + questionColumns + ` FROM Questions WHERE category_id = ? ORDER BY id`
	if err := db.SelectContext(ctx, &questions, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get questions of category %d for %s: %w", categoryID, locale, err)
	}
	return questions, nil
}

// GetAnswers retrieves a question's answers sorted by position.
func (r *QuestionRepository) GetAnswers(ctx context.Context, locale i18n.Locale, questionID int64) ([]Answer, error) {
	db, err := r.store.DB(locale)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	query := `SELECT id, question_id, answer, position FROM Answers WHERE question_id = ? ORDER BY position`
	if err := db.SelectContext(ctx, &answers, query, questionID); err != nil {
		return nil, fmt.Errorf("failed to get answers of question %d for %s: %w", questionID, locale, err)
	}
	return answers, nil
}
