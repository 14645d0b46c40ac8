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
	"github.com/querytoheal/health-qa-api/internal/thread"
)

// AnswerHandler coordinates answer HTTP handlers.
type AnswerHandler struct {
	answerService *services.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
	}
}

// ListAnswers returns the threaded answer forest of a question. The level
// ordering is chosen by the sort query parameter (newest, oldest, best).
func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	question, ok := middleware.GetQuestion(c)
	if !ok {
		apierrors.InternalError(c, "Question not found in context")
		return
	}

	nodes, err := h.answerService.ListThread(question.ID, thread.ParseSort(c.Query("sort")))
	if err != nil {
		log.Error().Err(err).Str("question_id", question.ID).Msg("failed to list answers")
		apierrors.InternalError(c, "Failed to fetch answers")
		return
	}

	c.JSON(http.StatusOK, dto.ToThreadDTOs(nodes))
}

// CreateAnswer creates an answer under a question, optionally as a reply
// to an existing answer of the same question.
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
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

	type CreateAnswerRequest struct {
		Content     string  `json:"content" binding:"required"`
		IsAnonymous bool    `json:"isAnonymous"`
		ParentID    *string `json:"parentId"`
	}

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request data", err.Error())
		return
	}

	answer, err := h.answerService.Create(services.CreateAnswerInput{
		Content:     req.Content,
		QuestionID:  question.ID,
		ParentID:    req.ParentID,
		IsAnonymous: req.IsAnonymous,
		AuthorID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			apierrors.NotFound(c, "Question not found")
		case errors.Is(err, services.ErrInvalidParent):
			apierrors.BadRequest(c, "Invalid parent answer")
		case errors.Is(err, services.ErrReplyTooDeep):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Error().Err(err).Str("question_id", question.ID).Msg("failed to create answer")
			apierrors.InternalError(c, "Failed to create answer")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnswerDTO(*answer))
}

// UpvoteAnswer increments an answer's upvote counter.
func (h *AnswerHandler) UpvoteAnswer(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	answer, err := h.answerService.Upvote(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAnswerNotFound) {
			apierrors.NotFound(c, "Answer not found")
			return
		}
		log.Error().Err(err).Str("answer_id", c.Param("id")).Msg("failed to upvote answer")
		apierrors.InternalError(c, "Failed to upvote answer")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerDTO(*answer))
}
