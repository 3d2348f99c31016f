package domain

import (
	"context"
	"time"
)

// Question represents a question posted by a user. UserName and
// AnswerCount are derived at read time from joined rows and are never
// stored on the questions table.
type Question struct {
	ID          int64
	Title       string
	Description string
	UserID      int64
	CreatedAt   time.Time
	UserName    string
	AnswerCount int64
}

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	Create(ctx context.Context, question *Question) error
	// List returns all questions with author names resolved, newest first.
	List(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id int64) (*Question, error)
}
