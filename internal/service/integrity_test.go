package service

import (
	"context"
	"strings"
	"testing"

	"driving-theory-web/internal/i18n"
)

func TestVerifyLocalePasses(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, consistentFixture())
	defer teardown()

	if err := svc.VerifyLocale(context.Background(), i18n.Polish); err != nil {
		t.Errorf("unexpected verification failure: %v", err)
	}
}

// An AB question must have exactly the answer positions 0 and 1; a fixture
// with only position 0 is an authoring defect and must be rejected.
func TestVerifyLocaleMissingAnswer(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, []string{
		`INSERT INTO Categories (id, name) VALUES (1, 'Kategoria')`,
		`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
			VALUES (42, 1, 'Pytanie AB', 1, 1, 'AB')`,
		`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 42, 'Tak', 0)`,
	})
	defer teardown()

	err := svc.VerifyLocale(context.Background(), i18n.Polish)
	if err == nil {
		t.Fatal("expected verification to fail for a missing answer")
	}
	if !strings.Contains(err.Error(), "question 42") {
		t.Errorf("error does not identify the offending question: %v", err)
	}
}

func TestVerifyLocaleViolations(t *testing.T) {
	tests := []struct {
		name       string
		statements []string
	}{
		{
			"dangling category",
			[]string{
				`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
					VALUES (1, 999, 'Pytanie', 1, 0, 'AB')`,
				`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 1, 'Tak', 0), (2, 1, 'Nie', 1)`,
			},
		},
		{
			"correct answer out of range",
			[]string{
				`INSERT INTO Categories (id, name) VALUES (1, 'Kategoria')`,
				`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
					VALUES (1, 1, 'Pytanie', 1, 2, 'AB')`,
				`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 1, 'Tak', 0), (2, 1, 'Nie', 1)`,
			},
		},
		{
			"points out of range",
			[]string{
				`INSERT INTO Categories (id, name) VALUES (1, 'Kategoria')`,
				`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
					VALUES (1, 1, 'Pytanie', 5, 0, 'AB')`,
				`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 1, 'Tak', 0), (2, 1, 'Nie', 1)`,
			},
		},
		{
			"unknown question type",
			[]string{
				`INSERT INTO Categories (id, name) VALUES (1, 'Kategoria')`,
				`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
					VALUES (1, 1, 'Pytanie', 1, 0, 'ABCD')`,
				`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 1, 'Tak', 0), (2, 1, 'Nie', 1)`,
			},
		},
		{
			"ABC question with gapped positions",
			[]string{
				`INSERT INTO Categories (id, name) VALUES (1, 'Kategoria')`,
				`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
					VALUES (1, 1, 'Pytanie', 1, 0, 'ABC')`,
				`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 1, 'A', 0), (2, 1, 'B', 1), (3, 1, 'C', 3)`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, teardown := newTestService(t, i18n.Polish, tt.statements)
			defer teardown()

			if err := svc.VerifyLocale(context.Background(), i18n.Polish); err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}
