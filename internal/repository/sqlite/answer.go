package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/stackit/internal/domain"
)

// AnswerRepository implements domain.AnswerRepository using SQLite.
type AnswerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new SQLite-backed AnswerRepository.
func NewAnswerRepository(db *DB) *AnswerRepository {
	return &AnswerRepository{db: db.SqlDB}
}

// Create inserts the answer without checking that the referenced question
// exists. An unknown question id produces an orphaned row; callers decide
// whether to guard against that.
func (r *AnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (content, question_id, user_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		answer.Content, answer.QuestionID, answer.UserID, now,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	answer.ID = id
	answer.CreatedAt = now
	return nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.content, a.question_id, a.user_id, a.created_at, u.name
		 FROM answers a
		 JOIN users u ON a.user_id = u.id
		 WHERE a.question_id = ?
		 ORDER BY a.created_at ASC, a.id ASC`, questionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.Content, &a.QuestionID, &a.UserID,
			&a.CreatedAt, &a.UserName); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
