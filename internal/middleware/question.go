package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/querytoheal/health-qa-api/internal/constants"
	"github.com/querytoheal/health-qa-api/internal/database"
	apierrors "github.com/querytoheal/health-qa-api/internal/errors"
	"github.com/querytoheal/health-qa-api/internal/models"
)

// RequireQuestion loads the question referenced by the :id route parameter
// into the request context, answering 404 when it does not exist.
func RequireQuestion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var question models.Question
		if err := database.GetDB().
			Preload("Author").
			First(&question, "id = ?", id).Error; err != nil {
			apierrors.NotFound(c, "Question not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyQuestion, question)
		c.Next()
	}
}

// GetQuestion retrieves the question stored by RequireQuestion.
func GetQuestion(c *gin.Context) (models.Question, bool) {
	value, exists := c.Get(constants.ContextKeyQuestion)
	if !exists {
		return models.Question{}, false
	}

	question, ok := value.(models.Question)
	return question, ok
}
