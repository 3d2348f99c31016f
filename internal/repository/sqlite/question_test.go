package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/stackit/internal/domain"
	"github.com/msomdec/stackit/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: email, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func TestQuestionRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewQuestionRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "Asker", "asker@example.com")

	question := &domain.Question{
		Title:       "How do I test?",
		Description: "Looking for testing advice.",
		UserID:      user.ID,
	}

	if err := repo.Create(ctx, question); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if question.ID == 0 {
		t.Fatal("expected question ID to be set after create")
	}
	if question.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestQuestionRepository_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewQuestionRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "Asker", "asker@example.com")

	first := &domain.Question{Title: "First", Description: "d1", UserID: user.ID}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second := &domain.Question{Title: "Second", Description: "d2", UserID: user.ID}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	questions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Title != "Second" || questions[1].Title != "First" {
		t.Fatalf("expected newest first, got [%s, %s]", questions[0].Title, questions[1].Title)
	}
	if questions[0].UserName != "Asker" {
		t.Fatalf("expected resolved author name Asker, got %s", questions[0].UserName)
	}
}

func TestQuestionRepository_List_AnswerCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "Asker", "asker@example.com")

	answered := &domain.Question{Title: "Answered", Description: "d", UserID: user.ID}
	if err := db.Questions().Create(ctx, answered); err != nil {
		t.Fatalf("Create answered: %v", err)
	}
	unanswered := &domain.Question{Title: "Unanswered", Description: "d", UserID: user.ID}
	if err := db.Questions().Create(ctx, unanswered); err != nil {
		t.Fatalf("Create unanswered: %v", err)
	}

	for range 2 {
		answer := &domain.Answer{Content: "a", QuestionID: answered.ID, UserID: user.ID}
		if err := db.Answers().Create(ctx, answer); err != nil {
			t.Fatalf("Create answer: %v", err)
		}
	}

	questions, err := db.Questions().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	counts := make(map[string]int64)
	for _, q := range questions {
		counts[q.Title] = q.AnswerCount
	}
	if counts["Answered"] != 2 {
		t.Fatalf("expected 2 answers on Answered, got %d", counts["Answered"])
	}
	if counts["Unanswered"] != 0 {
		t.Fatalf("expected 0 answers on Unanswered, got %d", counts["Unanswered"])
	}
}

func TestQuestionRepository_List_Empty(t *testing.T) {
	db := newTestDB(t)

	questions, err := db.Questions().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}

func TestQuestionRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewQuestionRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "Asker", "asker@example.com")

	question := &domain.Question{Title: "Find me", Description: "d", UserID: user.ID}
	if err := repo.Create(ctx, question); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, question.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Find me" {
		t.Fatalf("expected title Find me, got %s", got.Title)
	}
	if got.UserName != "Asker" {
		t.Fatalf("expected author name Asker, got %s", got.UserName)
	}
}

func TestQuestionRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Questions().GetByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
