package repository

import (
	"github.com/querytoheal/health-qa-api/internal/models"
	"gorm.io/gorm"
)

// GormAnswerRepository is a GORM implementation of AnswerRepository
type GormAnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new AnswerRepository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &GormAnswerRepository{db: db}
}

// Create creates a new answer
func (r *GormAnswerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

// FindByID finds an answer by ID
func (r *GormAnswerRepository) FindByID(id string) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.Preload("Author").First(&answer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByQuestion lists the flat answer set of a question, newest first
func (r *GormAnswerRepository) ListByQuestion(questionID string) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.
		Preload("Author").
		Where("question_id = ?", questionID).
		Order("created_at DESC").
		Find(&answers).Error
	return answers, err
}

// ListByAuthor lists answers authored by a user, newest first
func (r *GormAnswerRepository) ListByAuthor(userID string) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.
		Preload("Author").
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error
	return answers, err
}

// Upvote increments the counter with a single UPDATE so concurrent
// upvotes never lose increments, then returns the updated answer.
func (r *GormAnswerRepository) Upvote(id string) (*models.Answer, error) {
	result := r.db.Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(id)
}
