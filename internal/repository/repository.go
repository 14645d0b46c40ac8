package repository

import (
	"github.com/querytoheal/health-qa-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	// Create creates a new question
	Create(question *models.Question) error

	// FindByID finds a question by ID
	FindByID(id string) (*models.Question, error)

	// ListAll lists every question, newest first
	ListAll() ([]models.Question, error)

	// ListByAuthor lists questions authored by a user, newest first
	ListByAuthor(userID string) ([]models.Question, error)

	// Delete removes a question and every answer referencing it
	Delete(id string) error
}

// AnswerRepository defines the interface for answer data access
type AnswerRepository interface {
	// Create creates a new answer
	Create(answer *models.Answer) error

	// FindByID finds an answer by ID
	FindByID(id string) (*models.Answer, error)

	// ListByQuestion lists the flat answer set of a question, newest first
	ListByQuestion(questionID string) ([]models.Answer, error)

	// ListByAuthor lists answers authored by a user, newest first
	ListByAuthor(userID string) ([]models.Answer, error)

	// Upvote atomically increments the upvote counter and returns the
	// updated answer. Returns gorm.ErrRecordNotFound when no row matched.
	Upvote(id string) (*models.Answer, error)
}
