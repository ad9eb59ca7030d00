// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for directed
// member relations.
//
// Functions:
//
//   - CreateRelation(ctx, db, fromID, toID, kind) -> *domain.MemberRelation, error
//     Inserts a new directed relation row with UUID primary key.
//
//   - ListRelations(ctx, db, fromID) -> []domain.MemberRelation, error
//     Returns every outgoing relation of a member, oldest first.
//
//   - ListRelationsByKind(ctx, db, fromID, kind) -> []domain.MemberRelation, error
//     Same, filtered by relation tier.
//
//   - GetRelation(ctx, db, fromID, toID) -> *domain.MemberRelation, error
//     Fetches the single row for the ordered pair, or ErrNotFound. The
//     unique index on (from_id, to_id) guarantees at most one row exists.
//
//   - IsFriend(ctx, db, fromID, toID) -> (bool, error)
//     Reports whether the ordered pair holds a FRIEND relation.
//
//   - SaveRelation(ctx, db, rel) -> error
//     Persists a mutated relation row (the promote-to-friend transition).
//
//   - FindRandomTargets(ctx, db, fromID, kind, limit) -> []string, error
//     Samples up to limit target ids of the given tier uniformly at random.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

// CreateRelation inserts a new directed relation from fromID to toID with
// the given tier. The unique index on (from_id, to_id) rejects a second row
// for the same ordered pair; that error is propagated raw.
func CreateRelation(ctx context.Context, db *gorm.DB, fromID, toID string, kind domain.RelationType) (*domain.MemberRelation, error) {
	r := &domain.MemberRelation{
		ID:        uuid.NewString(),
		FromID:    fromID,
		ToID:      toID,
		Relation:  kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListRelations returns all outgoing relations of fromID, oldest first.
func ListRelations(ctx context.Context, db *gorm.DB, fromID string) ([]domain.MemberRelation, error) {
	var out []domain.MemberRelation
	err := db.WithContext(ctx).
		Where("from_id = ?", fromID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// ListRelationsByKind returns the outgoing relations of fromID with the
// given tier, oldest first.
func ListRelationsByKind(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType) ([]domain.MemberRelation, error) {
	var out []domain.MemberRelation
	err := db.WithContext(ctx).
		Where("from_id = ? AND relation = ?", fromID, kind).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// GetRelation fetches the relation row for the ordered (fromID, toID) pair,
// or ErrNotFound if none exists.
func GetRelation(ctx context.Context, db *gorm.DB, fromID, toID string) (*domain.MemberRelation, error) {
	var r domain.MemberRelation
	err := db.WithContext(ctx).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// IsFriend reports whether fromID holds a FRIEND relation towards toID.
func IsFriend(ctx context.Context, db *gorm.DB, fromID, toID string) (bool, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.MemberRelation{}).
		Where("from_id = ? AND to_id = ? AND relation = ?", fromID, toID, domain.RelationFriend).
		Count(&total).Error
	return total > 0, err
}

// SaveRelation persists the current state of rel. Used for the
// ACCOMPANY -> FRIEND promotion; relation rows are never hard-deleted here.
func SaveRelation(ctx context.Context, db *gorm.DB, rel *domain.MemberRelation) error {
	return db.WithContext(ctx).Save(rel).Error
}

// FindRandomTargets samples up to limit target member ids of the given tier
// uniformly at random (ORDER BY RANDOM()), without loading every relation.
// Used to build bounded candidate pools for question sheets.
func FindRandomTargets(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType, limit int) ([]string, error) {
	var out []string
	err := db.WithContext(ctx).
		Model(&domain.MemberRelation{}).
		Where("from_id = ? AND relation = ?", fromID, kind).
		Order("RANDOM()").
		Limit(limit).
		Pluck("to_id", &out).Error
	return out, err
}
