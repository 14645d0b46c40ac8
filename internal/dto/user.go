package dto

import (
	"time"

	"github.com/querytoheal/health-qa-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the models layer.
type UserDTO struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           *string   `json:"email,omitempty"`
	FirstName       *string   `json:"firstName,omitempty"`
	LastName        *string   `json:"lastName,omitempty"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	DOB             *string   `json:"dob,omitempty"`
	IsExpert        bool      `json:"isExpert"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		DOB:             user.DOB,
		IsExpert:        user.IsExpert,
		CreatedAt:       user.CreatedAt,
	}
}
