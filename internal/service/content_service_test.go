package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"driving-theory-web/internal/data"
	"driving-theory-web/internal/i18n"

	_ "modernc.org/sqlite"
)

const fixtureSchema = `
CREATE TABLE Categories (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE Questions (
	id INTEGER PRIMARY KEY,
	category_id INTEGER NOT NULL,
	media TEXT,
	question TEXT NOT NULL,
	points INTEGER NOT NULL,
	description TEXT,
	explanation TEXT,
	correct_answer INTEGER NOT NULL,
	type TEXT NOT NULL,
	official_number INTEGER,
	license_categories TEXT
);
CREATE TABLE Answers (
	id INTEGER PRIMARY KEY,
	question_id INTEGER NOT NULL,
	answer TEXT NOT NULL,
	position INTEGER NOT NULL
);`

// newTestService builds a ContentService over a single-locale fixture store.
func newTestService(t *testing.T, locale i18n.Locale, statements []string) (*ContentService, func()) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "database_"+string(locale)+".db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create fixture store: %v", err)
	}
	if _, err := db.Exec(fixtureSchema); err != nil {
		t.Fatalf("failed to create fixture schema: %v", err)
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("fixture exec failed: %v\n%s", err, stmt)
		}
	}
	db.Close()

	store := data.NewStore(dir)
	return NewContentService(store), func() { store.Close() }
}

func consistentFixture() []string {
	return []string{
		`INSERT INTO Categories (id, name) VALUES (5, 'Znaki drogowe')`,
		`INSERT INTO Questions (id, category_id, question, points, correct_answer, type, license_categories, description)
			VALUES (42, 5, 'Co oznacza ten znak?', 2, 1, 'AB', 'A,B', '<p>Opis <script>alert(1)</script>znaku</p>')`,
		`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 42, 'Tak', 0), (2, 42, 'Nie', 1)`,
	}
}

func TestGetQuestionWithContext(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, consistentFixture())
	defer teardown()

	q, err := svc.GetQuestionWithContext(context.Background(), i18n.Polish, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == nil {
		t.Fatal("expected a question, got nil")
	}
	if q.Category.ID != 5 || q.Category.Name != "Znaki drogowe" {
		t.Errorf("unexpected category: %+v", q.Category)
	}
	if len(q.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(q.Answers))
	}
	correct := q.Correct()
	if correct == nil || correct.Answer != "Nie" {
		t.Errorf("expected correct answer 'Nie', got %v", correct)
	}
}

func TestGetQuestionWithContextSanitizesHTML(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, consistentFixture())
	defer teardown()

	q, err := svc.GetQuestionWithContext(context.Background(), i18n.Polish, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(q.HTMLDescription)
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization: %s", html)
	}
	if !strings.Contains(html, "Opis") {
		t.Errorf("benign content was stripped: %s", html)
	}
}

// A question whose category_id does not resolve must be absent, not partial.
func TestGetQuestionWithContextDanglingCategory(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, []string{
		`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
			VALUES (42, 999, 'Pytanie bez kategorii', 1, 0, 'AB')`,
		`INSERT INTO Answers (id, question_id, answer, position) VALUES (1, 42, 'Tak', 0), (2, 42, 'Nie', 1)`,
	})
	defer teardown()

	q, err := svc.GetQuestionWithContext(context.Background(), i18n.Polish, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil for a dangling category reference, got %+v", q)
	}
}

func TestGetQuestionWithContextMissingQuestion(t *testing.T) {
	svc, teardown := newTestService(t, i18n.Polish, consistentFixture())
	defer teardown()

	q, err := svc.GetQuestionWithContext(context.Background(), i18n.Polish, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil for a missing question, got %+v", q)
	}
}

func TestListQuestionsByCategory(t *testing.T) {
	fixture := append(consistentFixture(),
		`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
			VALUES (43, 5, 'Drugie pytanie', 1, 0, 'AB')`,
		`INSERT INTO Answers (id, question_id, answer, position) VALUES (3, 43, 'Tak', 0), (4, 43, 'Nie', 1)`,
	)
	svc, teardown := newTestService(t, i18n.Polish, fixture)
	defer teardown()

	questions, err := svc.ListQuestionsByCategory(context.Background(), i18n.Polish, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != 42 || questions[1].ID != 43 {
		t.Errorf("expected IDs [42 43], got [%d %d]", questions[0].ID, questions[1].ID)
	}
	for _, q := range questions {
		if q.Category.ID != 5 {
			t.Errorf("question %d carries wrong category %d", q.ID, q.Category.ID)
		}
	}

	none, err := svc.ListQuestionsByCategory(context.Background(), i18n.Polish, 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty result for unknown category, got %d", len(none))
	}
}

func TestListAllWithContextFailsOnDanglingCategory(t *testing.T) {
	fixture := append(consistentFixture(),
		`INSERT INTO Questions (id, category_id, question, points, correct_answer, type)
			VALUES (50, 999, 'Pytanie z wiszącą kategorią', 1, 0, 'AB')`,
		`INSERT INTO Answers (id, question_id, answer, position) VALUES (5, 50, 'Tak', 0), (6, 50, 'Nie', 1)`,
	)
	svc, teardown := newTestService(t, i18n.Polish, fixture)
	defer teardown()

	if _, err := svc.ListAllWithContext(context.Background(), i18n.Polish); err == nil {
		t.Error("expected an error for a dangling category reference")
	}
}
