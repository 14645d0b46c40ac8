package repository

import (
	"github.com/querytoheal/health-qa-api/internal/models"
	"gorm.io/gorm"
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// Create creates a new question
func (r *GormQuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// FindByID finds a question by ID
func (r *GormQuestionRepository) FindByID(id string) (*models.Question, error) {
	var question models.Question
	if err := r.db.Preload("Author").First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// ListAll lists every question, newest first
func (r *GormQuestionRepository) ListAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Preload("Author").
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

// ListByAuthor lists questions authored by a user, newest first
func (r *GormQuestionRepository) ListByAuthor(userID string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Preload("Author").
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

// Delete removes a question and, in the same transaction, every answer
// referencing it.
func (r *GormQuestionRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Question{}, "id = ?", id).Error
	})
}
