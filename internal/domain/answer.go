package domain

import (
	"context"
	"time"
)

// Answer represents an answer posted against a question. UserName is
// resolved from the users table at read time.
type Answer struct {
	ID         int64
	Content    string
	QuestionID int64
	UserID     int64
	CreatedAt  time.Time
	UserName   string
}

// AnswerRepository defines persistence operations for answers.
type AnswerRepository interface {
	Create(ctx context.Context, answer *Answer) error
	// ListByQuestion returns a question's answers with author names
	// resolved, oldest first.
	ListByQuestion(ctx context.Context, questionID int64) ([]Answer, error)
}
