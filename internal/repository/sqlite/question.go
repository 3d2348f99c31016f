package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/stackit/internal/domain"
)

// QuestionRepository implements domain.QuestionRepository using SQLite.
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new SQLite-backed QuestionRepository.
func NewQuestionRepository(db *DB) *QuestionRepository {
	return &QuestionRepository{db: db.SqlDB}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (title, description, user_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		question.Title, question.Description, question.UserID, now,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	question.ID = id
	question.CreatedAt = now
	return nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT q.id, q.title, q.description, q.user_id, q.created_at, u.name,
		        (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id)
		 FROM questions q
		 JOIN users u ON q.user_id = u.id
		 ORDER BY q.created_at DESC, q.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.UserID,
			&q.CreatedAt, &q.UserName, &q.AnswerCount); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	q := &domain.Question{}
	err := r.db.QueryRowContext(ctx,
		`SELECT q.id, q.title, q.description, q.user_id, q.created_at, u.name,
		        (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id)
		 FROM questions q
		 JOIN users u ON q.user_id = u.id
		 WHERE q.id = ?`, id,
	).Scan(&q.ID, &q.Title, &q.Description, &q.UserID, &q.CreatedAt,
		&q.UserName, &q.AnswerCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query question by id: %w", err)
	}
	return q, nil
}
