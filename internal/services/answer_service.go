package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/querytoheal/health-qa-api/internal/constants"
	"github.com/querytoheal/health-qa-api/internal/models"
	"github.com/querytoheal/health-qa-api/internal/repository"
	"github.com/querytoheal/health-qa-api/internal/thread"
)

var (
	ErrAnswerNotFound = errors.New("answer not found")
	ErrInvalidParent  = errors.New("invalid parent answer")
	ErrReplyTooDeep   = fmt.Errorf("replies are limited to %d levels", constants.MaxReplyDepth)
)

// AnswerService handles answer business logic, including the thread
// insertion rules the storage layer deliberately does not enforce.
type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

// CreateAnswerInput represents input for creating an answer.
type CreateAnswerInput struct {
	Content     string
	QuestionID  string
	ParentID    *string
	IsAnonymous bool
	AuthorID    string
}

// Create stores a new answer after validating thread placement: the question
// must exist, a parent must exist under the same question, and the parent
// must sit above the reply depth bound.
func (s *AnswerService) Create(input CreateAnswerInput) (*models.Answer, error) {
	if _, err := s.questionRepo.FindByID(input.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	if input.ParentID != nil {
		parent, err := s.answerRepo.FindByID(*input.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidParent
			}
			return nil, fmt.Errorf("failed to find parent answer: %w", err)
		}
		if parent.QuestionID != input.QuestionID {
			return nil, ErrInvalidParent
		}

		siblings, err := s.answerRepo.ListByQuestion(input.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load question thread: %w", err)
		}
		if thread.Depth(siblings, parent.ID) >= constants.MaxReplyDepth {
			return nil, ErrReplyTooDeep
		}
	}

	answer := &models.Answer{
		Content:     input.Content,
		QuestionID:  input.QuestionID,
		ParentID:    input.ParentID,
		IsAnonymous: input.IsAnonymous,
	}
	if !input.IsAnonymous {
		answer.AuthorID = &input.AuthorID
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}

	return s.answerRepo.FindByID(answer.ID)
}

// ListThread returns the reply forest of a question, each level ordered by
// the given sort.
func (s *AnswerService) ListThread(questionID string, by thread.Sort) ([]*thread.Node, error) {
	answers, err := s.answerRepo.ListByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return thread.Build(answers, by), nil
}

// ListByAuthor returns the flat list of answers authored by a user,
// newest first.
func (s *AnswerService) ListByAuthor(userID string) ([]models.Answer, error) {
	answers, err := s.answerRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user answers: %w", err)
	}
	return answers, nil
}

// Upvote increments an answer's upvote counter by one.
func (s *AnswerService) Upvote(id string) (*models.Answer, error) {
	answer, err := s.answerRepo.Upvote(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to upvote answer: %w", err)
	}
	return answer, nil
}
