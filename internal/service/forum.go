package service

import (
	"context"
	"fmt"

	"github.com/msomdec/stackit/internal/domain"
)

// ForumService handles question and answer operations.
type ForumService struct {
	questions domain.QuestionRepository
	answers   domain.AnswerRepository
}

// NewForumService creates a new ForumService.
func NewForumService(questions domain.QuestionRepository, answers domain.AnswerRepository) *ForumService {
	return &ForumService{questions: questions, answers: answers}
}

// AskQuestion creates a question owned by the given author and returns
// its id.
func (s *ForumService) AskQuestion(ctx context.Context, title, description string, authorID int64) (int64, error) {
	if title == "" || description == "" {
		return 0, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}

	question := &domain.Question{
		Title:       title,
		Description: description,
		UserID:      authorID,
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}

	return question.ID, nil
}

// ListQuestions returns all questions, newest first, with author names
// and derived answer counts.
func (s *ForumService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.questions.List(ctx)
}

// GetQuestion returns a question and its answers in posting order.
func (s *ForumService) GetQuestion(ctx context.Context, id int64) (*domain.Question, []domain.Answer, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	answers, err := s.answers.ListByQuestion(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list answers: %w", err)
	}

	return question, answers, nil
}

// PostAnswer creates an answer against a question and returns its id.
// The question id is not checked for existence; an unknown id leaves an
// orphaned answer. That matches the reference behavior and stays until
// the product decides otherwise.
func (s *ForumService) PostAnswer(ctx context.Context, questionID int64, content string, authorID int64) (int64, error) {
	if content == "" {
		return 0, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	answer := &domain.Answer{
		Content:    content,
		QuestionID: questionID,
		UserID:     authorID,
	}

	if err := s.answers.Create(ctx, answer); err != nil {
		return 0, fmt.Errorf("create answer: %w", err)
	}

	return answer.ID, nil
}
