package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/querytoheal/health-qa-api/internal/dto"
	apierrors "github.com/querytoheal/health-qa-api/internal/errors"
	"github.com/querytoheal/health-qa-api/internal/services"
)

// ProfileHandler serves the public activity listings of a user.
type ProfileHandler struct {
	questionService *services.QuestionService
	answerService   *services.AnswerService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(questionService *services.QuestionService, answerService *services.AnswerService) *ProfileHandler {
	return &ProfileHandler{
		questionService: questionService,
		answerService:   answerService,
	}
}

// GetUserQuestions returns the questions authored by a user, newest first.
// Anonymous questions carry no author reference and never show up here.
func (h *ProfileHandler) GetUserQuestions(c *gin.Context) {
	questions, err := h.questionService.ListByAuthor(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("user_id", c.Param("id")).Msg("failed to list user questions")
		apierrors.InternalError(c, "Failed to fetch user questions")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTOs(questions))
}

// GetUserAnswers returns the flat list of answers authored by a user,
// newest first.
func (h *ProfileHandler) GetUserAnswers(c *gin.Context) {
	answers, err := h.answerService.ListByAuthor(c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("user_id", c.Param("id")).Msg("failed to list user answers")
		apierrors.InternalError(c, "Failed to fetch user answers")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerDTOs(answers))
}
