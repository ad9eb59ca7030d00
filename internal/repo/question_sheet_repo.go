// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for question
// sheets, the per-resolver instances of a published question set.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

// ListQuestionSheets returns the sheets created for resolverID against the
// given set, in batch display order. An empty slice means fan-out has not
// run for this (set, resolver) pair yet.
func ListQuestionSheets(ctx context.Context, db *gorm.DB, setID, resolverID string) ([]domain.QuestionSheet, error) {
	var out []domain.QuestionSheet
	err := db.WithContext(ctx).
		Where("question_set_id = ? AND resolver_id = ?", setID, resolverID).
		Order("position ASC, id ASC").
		Find(&out).Error
	return out, err
}

// SaveQuestionSheets bulk-persists sheets in one transaction, assigning
// UUIDs to sheets that do not carry one yet, and returns the persisted
// forms. The unique index on (question_set_id, question_id, resolver_id)
// rejects duplicate fan-out; that violation surfaces as
// gorm.ErrDuplicatedKey for the service layer to map.
func SaveQuestionSheets(ctx context.Context, db *gorm.DB, sheets []domain.QuestionSheet) ([]domain.QuestionSheet, error) {
	if len(sheets) == 0 {
		return sheets, nil
	}
	now := time.Now().UTC()
	for i := range sheets {
		if sheets[i].ID == "" {
			sheets[i].ID = uuid.NewString()
		}
		sheets[i].CreatedAt = now
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sheets).Error
	})
	if err != nil {
		return nil, err
	}
	return sheets, nil
}
