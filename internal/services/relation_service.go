// Package services – RelationService
//
// This file implements the relation use-cases: listing a member's outgoing
// relations by tier, creating the default ACCOMPANY relation on follow,
// the one-way ACCOMPANY -> FRIEND promotion, and bounded random sampling of
// relation targets for sheet candidate pools.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/repo"
)

// RelationRepo defines the repository contract required by RelationService.
type RelationRepo interface {
	// Create inserts a new directed relation row.
	Create(ctx context.Context, db *gorm.DB, fromID, toID string, kind domain.RelationType) (*domain.MemberRelation, error)

	// List returns all outgoing relations of fromID.
	List(ctx context.Context, db *gorm.DB, fromID string) ([]domain.MemberRelation, error)

	// ListByKind returns the outgoing relations of fromID with the given tier.
	ListByKind(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType) ([]domain.MemberRelation, error)

	// Get fetches the row for the ordered pair, or repo.ErrNotFound.
	Get(ctx context.Context, db *gorm.DB, fromID, toID string) (*domain.MemberRelation, error)

	// IsFriend reports whether the ordered pair holds a FRIEND relation.
	IsFriend(ctx context.Context, db *gorm.DB, fromID, toID string) (bool, error)

	// Save persists a mutated relation row.
	Save(ctx context.Context, db *gorm.DB, rel *domain.MemberRelation) error

	// RandomTargets samples up to limit target ids of the given tier.
	RandomTargets(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType, limit int) ([]string, error)
}

// RelationService provides relation-graph operations and enforces the
// domain invariants: no self-relations, one row per ordered pair, and the
// one-way FRIEND promotion.
type RelationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the relation repository used by this service.
	Repo RelationRepo
}

// AllRelationIDs returns every outgoing relation target of fromID, any tier.
func (s *RelationService) AllRelationIDs(ctx context.Context, fromID string) ([]string, error) {
	rels, err := s.Repo.List(ctx, s.DB, fromID)
	if err != nil {
		return nil, err
	}
	return targetIDs(rels), nil
}

// FriendIDs returns the FRIEND-tier targets of fromID.
func (s *RelationService) FriendIDs(ctx context.Context, fromID string) ([]string, error) {
	rels, err := s.Repo.ListByKind(ctx, s.DB, fromID, domain.RelationFriend)
	if err != nil {
		return nil, err
	}
	return targetIDs(rels), nil
}

// AccompanyIDs returns the ACCOMPANY-tier targets of fromID.
func (s *RelationService) AccompanyIDs(ctx context.Context, fromID string) ([]string, error) {
	rels, err := s.Repo.ListByKind(ctx, s.DB, fromID, domain.RelationAccompany)
	if err != nil {
		return nil, err
	}
	return targetIDs(rels), nil
}

// CreateRelation establishes the default relation from fromID to toID.
// New relations always start at the ACCOMPANY tier; promotion to FRIEND is
// a separate explicit transition.
//
// Invariants enforced here:
//   - fromID != toID, otherwise ErrSelfRelation.
//   - At most one row per ordered pair, otherwise ErrRelationExists.
func (s *RelationService) CreateRelation(ctx context.Context, fromID, toID string) (*domain.MemberRelation, error) {
	if fromID == toID {
		return nil, ErrSelfRelation
	}

	var created *domain.MemberRelation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.Get(ctx, tx, fromID, toID); err == nil {
			return ErrRelationExists
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		rel, err := s.Repo.Create(ctx, tx, fromID, toID, domain.RelationAccompany)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrRelationExists
			}
			return err
		}
		created = rel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRelationToFriend promotes the (fromID, toID) relation to FRIEND.
//
// Semantics:
//   - No relation for the pair: ErrFriendNotFound.
//   - Already FRIEND: ErrAlreadyFriend. A second promotion signals a caller
//     bug (duplicate follow request), so it is an explicit error, never a
//     silent no-op.
//   - Otherwise the row transitions to FRIEND and is persisted. FRIEND
//     never demotes.
//
// The load-check-save runs inside a transaction so concurrent promotions of
// the same pair serialize on the row.
func (s *RelationService) UpdateRelationToFriend(ctx context.Context, fromID, toID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel, err := s.Repo.Get(ctx, tx, fromID, toID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrFriendNotFound
			}
			return err
		}
		if rel.Relation == domain.RelationFriend {
			return ErrAlreadyFriend
		}
		rel.Relation = domain.RelationFriend
		return s.Repo.Save(ctx, tx, rel)
	})
}

// IsFriend reports whether fromID holds a FRIEND relation towards toID.
func (s *RelationService) IsFriend(ctx context.Context, fromID, toID string) (bool, error) {
	return s.Repo.IsFriend(ctx, s.DB, fromID, toID)
}

// RandomFriendIDs samples up to limit FRIEND targets of memberID uniformly
// at random, for building sheet candidate pools without loading every
// relation.
func (s *RelationService) RandomFriendIDs(ctx context.Context, memberID string, limit int) ([]string, error) {
	return s.Repo.RandomTargets(ctx, s.DB, memberID, domain.RelationFriend, limit)
}

// RandomAccompanyIDs samples up to limit ACCOMPANY targets of memberID
// uniformly at random.
func (s *RelationService) RandomAccompanyIDs(ctx context.Context, memberID string, limit int) ([]string, error) {
	return s.Repo.RandomTargets(ctx, s.DB, memberID, domain.RelationAccompany, limit)
}

func targetIDs(rels []domain.MemberRelation) []string {
	out := make([]string, len(rels))
	for i, r := range rels {
		out[i] = r.ToID
	}
	return out
}
