package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is stored flat: threading is a nullable self-reference to the
// parent answer within the same question, and the reply tree is rebuilt
// on read. Storage imposes no depth bound.
type Answer struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	QuestionID  string    `gorm:"type:varchar(36);not null;index" json:"questionId"`
	AuthorID    *string   `gorm:"type:varchar(36);index" json:"authorId"`
	ParentID    *string   `gorm:"type:varchar(36);index" json:"parentId"`
	IsAnonymous bool      `gorm:"not null;default:false" json:"isAnonymous"`
	Upvotes     int       `gorm:"not null;default:0" json:"upvotes"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`

	// Relations
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
	Author   *User    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Parent   *Answer  `gorm:"foreignKey:ParentID" json:"-"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
