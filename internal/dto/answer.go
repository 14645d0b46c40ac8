package dto

import (
	"time"

	"github.com/querytoheal/health-qa-api/internal/models"
	"github.com/querytoheal/health-qa-api/internal/thread"
)

// AnswerDTO represents an answer in API responses. In threaded responses
// Replies carries the direct children, recursively.
type AnswerDTO struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	QuestionID  string      `json:"questionId"`
	AuthorID    *string     `json:"authorId"`
	ParentID    *string     `json:"parentId"`
	IsAnonymous bool        `json:"isAnonymous"`
	Upvotes     int         `json:"upvotes"`
	CreatedAt   time.Time   `json:"createdAt"`
	Author      *UserDTO    `json:"author,omitempty"`
	Replies     []AnswerDTO `json:"replies,omitempty"`
}

// ToAnswerDTO converts an Answer model to AnswerDTO
func ToAnswerDTO(answer models.Answer) AnswerDTO {
	dto := AnswerDTO{
		ID:          answer.ID,
		Content:     answer.Content,
		QuestionID:  answer.QuestionID,
		AuthorID:    answer.AuthorID,
		ParentID:    answer.ParentID,
		IsAnonymous: answer.IsAnonymous,
		Upvotes:     answer.Upvotes,
		CreatedAt:   answer.CreatedAt,
	}

	// Include author if preloaded
	if answer.Author != nil && answer.Author.ID != "" {
		author := ToUserDTO(*answer.Author)
		dto.Author = &author
	}

	return dto
}

// ToAnswerDTOs converts a flat slice of Answer models
func ToAnswerDTOs(answers []models.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, len(answers))
	for i, answer := range answers {
		dtos[i] = ToAnswerDTO(answer)
	}
	return dtos
}

// ToThreadDTOs converts a reply forest to nested AnswerDTOs
func ToThreadDTOs(nodes []*thread.Node) []AnswerDTO {
	dtos := make([]AnswerDTO, len(nodes))
	for i, node := range nodes {
		dto := ToAnswerDTO(node.Answer)
		dto.Replies = ToThreadDTOs(node.Replies)
		dtos[i] = dto
	}
	return dtos
}
