package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is a health question posted by a user. An anonymous question
// carries no author reference at all; AuthorID is nil exactly when
// IsAnonymous is true.
type Question struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	AuthorID    *string   `gorm:"type:varchar(36);index" json:"authorId"`
	IsAnonymous bool      `gorm:"not null;default:false" json:"isAnonymous"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`

	// Relations
	Author  *User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
