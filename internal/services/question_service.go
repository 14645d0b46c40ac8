package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/querytoheal/health-qa-api/internal/models"
	"github.com/querytoheal/health-qa-api/internal/repository"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrNotQuestionAuthor = errors.New("not authorized to delete this question")
)

// QuestionService handles question business logic.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// CreateQuestionInput represents input for creating a question.
type CreateQuestionInput struct {
	Title       string
	Description string
	IsAnonymous bool
	AuthorID    string
}

// Create stores a new question. An anonymous question is stored without any
// author reference, so anonymity survives later changes to display logic.
func (s *QuestionService) Create(input CreateQuestionInput) (*models.Question, error) {
	question := &models.Question{
		Title:       input.Title,
		Description: input.Description,
		IsAnonymous: input.IsAnonymous,
	}
	if !input.IsAnonymous {
		question.AuthorID = &input.AuthorID
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return s.questionRepo.FindByID(question.ID)
}

// Get returns a question by ID.
func (s *QuestionService) Get(id string) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	return question, nil
}

// ListAll returns every question, newest first.
func (s *QuestionService) ListAll() ([]models.Question, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListByAuthor returns the questions authored by a user, newest first.
func (s *QuestionService) ListByAuthor(userID string) ([]models.Question, error) {
	questions, err := s.questionRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user questions: %w", err)
	}
	return questions, nil
}

// Delete removes a question and all of its answers. Only the stored author
// may delete; an anonymous question has no author and is therefore not
// deletable by anyone.
func (s *QuestionService) Delete(id, callerID string) error {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to find question: %w", err)
	}

	if question.AuthorID == nil || *question.AuthorID != callerID {
		return ErrNotQuestionAuthor
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
