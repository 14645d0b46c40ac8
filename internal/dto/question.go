package dto

import (
	"time"

	"github.com/querytoheal/health-qa-api/internal/models"
)

// QuestionDTO represents a question in API responses. Anonymous questions
// serialize with a null authorId and no author object; clients render the
// "Anonymous" display name themselves.
type QuestionDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    *string   `json:"authorId"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
	Author      *UserDTO  `json:"author,omitempty"`
}

// ToQuestionDTO converts a Question model to QuestionDTO
func ToQuestionDTO(question models.Question) QuestionDTO {
	dto := QuestionDTO{
		ID:          question.ID,
		Title:       question.Title,
		Description: question.Description,
		AuthorID:    question.AuthorID,
		IsAnonymous: question.IsAnonymous,
		CreatedAt:   question.CreatedAt,
	}

	// Include author if preloaded
	if question.Author != nil && question.Author.ID != "" {
		author := ToUserDTO(*question.Author)
		dto.Author = &author
	}

	return dto
}

// ToQuestionDTOs converts a slice of Question models
func ToQuestionDTOs(questions []models.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i, question := range questions {
		dtos[i] = ToQuestionDTO(question)
	}
	return dtos
}
