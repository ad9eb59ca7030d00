// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the question
// catalog.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a question is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateQuestion inserts a new catalog question. The question ID is a
// randomly generated UUID (string), and CreatedAt is set to UTC.
func CreateQuestion(ctx context.Context, db *gorm.DB, content string, qtype domain.QuestionType, category domain.QuestionCategory, emojiImageID string) (*domain.Question, error) {
	q := &domain.Question{
		ID:           uuid.NewString(),
		Content:      content,
		Type:         qtype,
		Category:     category,
		EmojiImageID: emojiImageID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuestion fetches a question by ID, or ErrNotFound if missing.
func GetQuestion(ctx context.Context, db *gorm.DB, id string) (*domain.Question, error) {
	var q domain.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// FindRandomQuestions samples up to limit questions of the given type,
// uniformly at random without replacement, skipping every id in excludedIDs.
// Sampling runs in the database (ORDER BY RANDOM()), so consecutive calls
// with the same arguments return different orderings.
func FindRandomQuestions(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string, limit int) ([]domain.Question, error) {
	var out []domain.Question
	q := db.WithContext(ctx).Where("type = ?", qtype)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}
	err := q.Order("RANDOM()").Limit(limit).Find(&out).Error
	return out, err
}

// FindQuestionsByIDsAndType returns the subset of ids that exist in the
// catalog with the given type. Missing ids are silently absent from the
// result; the caller decides whether that matters.
func FindQuestionsByIDsAndType(ctx context.Context, db *gorm.DB, ids []string, qtype domain.QuestionType) ([]domain.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("id IN ? AND type = ?", ids, qtype).
		Find(&out).Error
	return out, err
}

// CountQuestionsByType returns how many catalog questions of the given type
// are available outside excludedIDs. Used to log catalog exhaustion with
// enough context to diagnose it offline.
func CountQuestionsByType(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string) (int64, error) {
	var total int64
	q := db.WithContext(ctx).Model(&domain.Question{}).Where("type = ?", qtype)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}
	err := q.Count(&total).Error
	return total, err
}
