package service

import (
	"context"
	"fmt"

	"driving-theory-web/internal/data"
	"driving-theory-web/internal/i18n"
)

// VerifyLocale checks the authoring-data invariants of one locale's store:
// every question's category resolves, the answer positions match the question
// type ({0,1} for AB, {0,1,2} for ABC), the correct answer points at an
// existing position, and points are within 1..3. Any violation aborts the
// build; partial sites must never be published.
func (s *ContentService) VerifyLocale(ctx context.Context, locale i18n.Locale) error {
	categories, err := s.categories.GetAll(ctx, locale)
	if err != nil {
		return err
	}
	known := make(map[int64]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	questions, err := s.questions.GetAll(ctx, locale)
	if err != nil {
		return err
	}

	for _, q := range questions {
		if !known[q.CategoryID] {
			return fmt.Errorf("question %d in %s: dangling category %d", q.ID, locale, q.CategoryID)
		}
		if q.Points < 1 || q.Points > 3 {
			return fmt.Errorf("question %d in %s: points %d out of range", q.ID, locale, q.Points)
		}

		want, ok := expectedPositions(q.Type)
		if !ok {
			return fmt.Errorf("question %d in %s: unknown type %q", q.ID, locale, q.Type)
		}

		answers, err := s.questions.GetAnswers(ctx, locale, q.ID)
		if err != nil {
			return err
		}
		if len(answers) != len(want) {
			return fmt.Errorf("question %d in %s: type %s requires %d answers, found %d",
				q.ID, locale, q.Type, len(want), len(answers))
		}
		for i, a := range answers {
			if a.Position != want[i] {
				return fmt.Errorf("question %d in %s: expected answer position %d, found %d",
					q.ID, locale, want[i], a.Position)
			}
		}

		correctOK := false
		for _, a := range answers {
			if a.Position == q.CorrectAnswer {
				correctOK = true
				break
			}
		}
		if !correctOK {
			return fmt.Errorf("question %d in %s: correct_answer %d has no matching answer position",
				q.ID, locale, q.CorrectAnswer)
		}
	}
	return nil
}

func expectedPositions(questionType string) ([]int, bool) {
	switch questionType {
	case data.QuestionTypeAB:
		return []int{0, 1}, true
	case data.QuestionTypeABC:
		return []int{0, 1, 2}, true
	}
	return nil, false
}
