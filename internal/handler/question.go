package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/stackit/internal/domain"
	"github.com/msomdec/stackit/internal/service"
)

// QuestionHandler handles question and answer requests.
type QuestionHandler struct {
	forum *service.ForumService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(forum *service.ForumService) *QuestionHandler {
	return &QuestionHandler{forum: forum}
}

// HandleCreate processes question creation by an authenticated user.
// POST /api/questions
// Request:  {"title":"...","description":"..."}
// Response: {"message":"...","questionId":123}
func (h *QuestionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	questionID, err := h.forum.AskQuestion(r.Context(), req.Title, req.Description, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Title and description are required")
			return
		}
		slog.Error("create question", "error", err)
		writeError(w, http.StatusInternalServerError, "Error creating question")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Question created successfully",
		"questionId": questionID,
	})
}

// HandleList returns all questions, newest first.
// GET /api/questions
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	questions, err := h.forum.ListQuestions(r.Context())
	if err != nil {
		slog.Error("list questions", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching questions")
		return
	}

	writeJSON(w, http.StatusOK, toQuestionDTOs(questions))
}

// HandleGet returns a single question with its answers.
// GET /api/questions/{id}
func (h *QuestionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	question, answers, err := h.forum.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Question not found")
			return
		}
		slog.Error("get question", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching question")
		return
	}

	writeJSON(w, http.StatusOK, toQuestionDetailDTO(question, answers))
}

// HandleCreateAnswer processes answer creation by an authenticated user.
// POST /api/questions/{id}/answers
// Request:  {"content":"..."}
// Response: {"message":"...","answerId":123}
func (h *QuestionHandler) HandleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	questionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answerID, err := h.forum.PostAnswer(r.Context(), questionID, req.Content, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		slog.Error("create answer", "error", err)
		writeError(w, http.StatusInternalServerError, "Error creating answer")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Answer created successfully",
		"answerId": answerID,
	})
}
