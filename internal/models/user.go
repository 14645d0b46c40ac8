package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash    string    `gorm:"type:varchar(255);not null" json:"-"`
	Email           *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	FirstName       *string   `gorm:"type:varchar(100)" json:"firstName"`
	LastName        *string   `gorm:"type:varchar(100)" json:"lastName"`
	ProfileImageURL *string   `gorm:"type:varchar(512)" json:"profileImageUrl"`
	DOB             *string   `gorm:"type:varchar(10)" json:"dob"`
	IsExpert        bool      `gorm:"not null;default:false" json:"isExpert"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	Questions []Question `gorm:"foreignKey:AuthorID" json:"-"`
	Answers   []Answer   `gorm:"foreignKey:AuthorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
