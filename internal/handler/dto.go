package handler

import (
	"time"

	"github.com/msomdec/stackit/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// QuestionDTO is the JSON representation of a question summary.
type QuestionDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UserName    string `json:"user_name"`
	AnswerCount int64  `json:"answer_count"`
}

func toQuestionDTO(q *domain.Question) QuestionDTO {
	return QuestionDTO{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		UserID:      q.UserID,
		CreatedAt:   q.CreatedAt.Format(time.RFC3339),
		UserName:    q.UserName,
		AnswerCount: q.AnswerCount,
	}
}

func toQuestionDTOs(questions []domain.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i := range questions {
		dtos[i] = toQuestionDTO(&questions[i])
	}
	return dtos
}

// QuestionDetailDTO is a question summary plus its answers.
type QuestionDetailDTO struct {
	QuestionDTO
	Answers []AnswerDTO `json:"answers"`
}

func toQuestionDetailDTO(q *domain.Question, answers []domain.Answer) QuestionDetailDTO {
	return QuestionDetailDTO{
		QuestionDTO: toQuestionDTO(q),
		Answers:     toAnswerDTOs(answers),
	}
}

// AnswerDTO is the JSON representation of an answer.
type AnswerDTO struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	QuestionID int64  `json:"question_id"`
	UserID     int64  `json:"user_id"`
	CreatedAt  string `json:"created_at"`
	UserName   string `json:"user_name"`
}

func toAnswerDTO(a domain.Answer) AnswerDTO {
	return AnswerDTO{
		ID:         a.ID,
		Content:    a.Content,
		QuestionID: a.QuestionID,
		UserID:     a.UserID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UserName:   a.UserName,
	}
}

func toAnswerDTOs(answers []domain.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, len(answers))
	for i, a := range answers {
		dtos[i] = toAnswerDTO(a)
	}
	return dtos
}
