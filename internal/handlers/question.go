package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/querytoheal/health-qa-api/internal/dto"
	apierrors "github.com/querytoheal/health-qa-api/internal/errors"
	"github.com/querytoheal/health-qa-api/internal/middleware"
	"github.com/querytoheal/health-qa-api/internal/services"
)

// QuestionHandler coordinates question HTTP handlers.
type QuestionHandler struct {
	questionService *services.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// ListQuestions returns all questions, newest first.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to list questions")
		apierrors.InternalError(c, "Failed to fetch questions")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTOs(questions))
}

// GetQuestion returns a single question.
// The question is already loaded by the RequireQuestion middleware.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, ok := middleware.GetQuestion(c)
	if !ok {
		apierrors.InternalError(c, "Question not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(question))
}

// CreateQuestion creates a new question for the authenticated user.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateQuestionRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		IsAnonymous bool   `json:"isAnonymous"`
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request data", err.Error())
		return
	}

	question, err := h.questionService.Create(services.CreateQuestionInput{
		Title:       req.Title,
		Description: req.Description,
		IsAnonymous: req.IsAnonymous,
		AuthorID:    userID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create question")
		apierrors.InternalError(c, "Failed to create question")
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionDTO(*question))
}

// DeleteQuestion deletes a question when the caller is its author.
// Deletion cascades to the question's answers.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	question, ok := middleware.GetQuestion(c)
	if !ok {
		apierrors.InternalError(c, "Question not found in context")
		return
	}

	if err := h.questionService.Delete(question.ID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			apierrors.NotFound(c, "Question not found")
		case errors.Is(err, services.ErrNotQuestionAuthor):
			apierrors.Forbidden(c, "Not authorized to delete this question")
		default:
			log.Error().Err(err).Str("question_id", question.ID).Msg("failed to delete question")
			apierrors.InternalError(c, "Failed to delete question")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Question deleted successfully",
	})
}
