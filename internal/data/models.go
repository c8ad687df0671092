package data

import "html/template"

// Category is a thematic group of questions. The numeric ID is the stable,
// locale-invariant identity; the name is localized.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// QuestionTypeAB has two answers (positions 0 and 1), QuestionTypeABC three.
const (
	QuestionTypeAB  = "AB"
	QuestionTypeABC = "ABC"
)

// Question is a single exam question in one locale's store.
type Question struct {
	ID                int64   `db:"id"`
	CategoryID        int64   `db:"category_id"`
	Media             *string `db:"media"`
	Question          string  `db:"question"`
	Points            int     `db:"points"`
	Description       *string `db:"description"`
	Explanation       *string `db:"explanation"`
	CorrectAnswer     int     `db:"correct_answer"`
	Type              string  `db:"type"`
	OfficialNumber    *int64  `db:"official_number"`
	LicenseCategories *string `db:"license_categories"`

	// Sanitized render-ready copies of the HTML fragment columns.
	HTMLDescription template.HTML `db:"-"`
	HTMLExplanation template.HTML `db:"-"`
}

// LicenseTags exposes the raw license_categories value for filtering.
func (q Question) LicenseTags() *string {
	return q.LicenseCategories
}

// Answer is one of a question's two or three answer options.
type Answer struct {
	ID         int64  `db:"id"`
	QuestionID int64  `db:"question_id"`
	Answer     string `db:"answer"`
	Position   int    `db:"position"` // 0 = A, 1 = B, 2 = C
}

// QuestionWithContext bundles a question with its answers and resolved
// category. It only exists for questions whose category reference resolves;
// a dangling category_id is "not found", never a partial result.
type QuestionWithContext struct {
	Question
	Answers  []Answer
	Category Category
}

// Correct returns the answer matching the question's correct_answer position,
// or nil if the data is inconsistent.
func (q *QuestionWithContext) Correct() *Answer {
	for i := range q.Answers {
		if q.Answers[i].Position == q.CorrectAnswer {
			return &q.Answers[i]
		}
	}
	return nil
}
