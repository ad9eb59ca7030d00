// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for question sets
// and their ordered question references.
//
// A question set and its orders are always written in one transaction so a
// partially built set is never visible to readers (GORM persists the Orders
// association together with the parent row inside Create).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

// SaveQuestionSet persists a new question set with its orders atomically.
// Missing ids (set and order rows) are assigned UUIDs. The caller is
// responsible for the set's invariants (count, uniqueness, window); the
// unique indexes on published_at and on (set, question)/(set, position)
// back them up at the storage layer.
func SaveQuestionSet(ctx context.Context, db *gorm.DB, set *domain.QuestionSet) error {
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	set.CreatedAt = now
	for i := range set.Orders {
		if set.Orders[i].ID == "" {
			set.Orders[i].ID = uuid.NewString()
		}
		set.Orders[i].QuestionSetID = set.ID
		set.Orders[i].CreatedAt = now
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(set).Error
	})
}

// GetQuestionSet fetches a set by ID with its orders preloaded in display
// order, or ErrNotFound if missing.
func GetQuestionSet(ctx context.Context, db *gorm.DB, id string) (*domain.QuestionSet, error) {
	var s domain.QuestionSet
	err := db.WithContext(ctx).
		Preload("Orders", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetActiveQuestionSet returns the set whose publish window contains now
// (published_at <= now < end_at), or ErrNotFound when no set is live.
func GetActiveQuestionSet(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error) {
	var s domain.QuestionSet
	err := db.WithContext(ctx).
		Preload("Orders", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("published_at <= ? AND end_at > ?", now, now).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetNextQuestionSet returns the earliest set publishing strictly after now,
// or ErrNotFound when none is scheduled.
func GetNextQuestionSet(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error) {
	var s domain.QuestionSet
	err := db.WithContext(ctx).
		Preload("Orders", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("published_at > ?", now).
		Order("published_at ASC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetLatestQuestionSet returns the most recently published set (largest
// published_at, whether or not its window has opened), or ErrNotFound when
// no set exists yet.
func GetLatestQuestionSet(ctx context.Context, db *gorm.DB) (*domain.QuestionSet, error) {
	var s domain.QuestionSet
	err := db.WithContext(ctx).
		Preload("Orders", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("published_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
