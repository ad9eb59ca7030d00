// Package services – QuestionService
//
// This file implements the catalog authoring use-cases: creating immutable
// question definitions and fetching them by id. Questions are never mutated
// after creation; removal is an administrative action outside this core.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/repo"
)

// QuestionRepo defines the repository contract required by QuestionService.
type QuestionRepo interface {
	// Create inserts a new question row.
	Create(ctx context.Context, db *gorm.DB, content string, qtype domain.QuestionType, category domain.QuestionCategory, emojiImageID string) (*domain.Question, error)

	// Get fetches a question by id, or repo.ErrNotFound.
	Get(ctx context.Context, db *gorm.DB, id string) (*domain.Question, error)
}

// QuestionService validates and persists catalog questions.
type QuestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the question repository used by this service.
	Repo QuestionRepo
}

// Create validates and persists a new question. Content must be non-empty
// after trimming, and type and category must be known enum values;
// otherwise ErrInvalidQuestion.
func (s *QuestionService) Create(ctx context.Context, content string, qtype domain.QuestionType, category domain.QuestionCategory, emojiImageID string) (*domain.Question, error) {
	content = strings.TrimSpace(content)
	if content == "" || !qtype.Valid() || !category.Valid() {
		return nil, ErrInvalidQuestion
	}
	return s.Repo.Create(ctx, s.DB, content, qtype, category, emojiImageID)
}

// Get returns a question by id, or ErrQuestionNotFound.
func (s *QuestionService) Get(ctx context.Context, id string) (*domain.Question, error) {
	q, err := s.Repo.Get(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}
