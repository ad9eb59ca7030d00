// Package services – QuestionSheetService
//
// This file implements the sheet fan-out engine: turning one published
// question set into per-resolver question sheets, each carrying the
// candidate pool matching its question's type (friends for FRIEND
// questions, acquaintances for ACCOMPANY questions).
//
// Fan-out is idempotent per (set, resolver): a repeated call returns the
// previously persisted sheets instead of inserting again, and a concurrent
// race that slips past that check is stopped by the unique index on the
// (set, question, resolver) natural key and surfaced as ErrSheetsExist.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

// QuestionSheetRepo defines the repository contract required by
// QuestionSheetService.
type QuestionSheetRepo interface {
	// List returns the sheets already created for (setID, resolverID).
	List(ctx context.Context, db *gorm.DB, setID, resolverID string) ([]domain.QuestionSheet, error)

	// SaveAll bulk-persists sheets atomically, assigning missing ids.
	SaveAll(ctx context.Context, db *gorm.DB, sheets []domain.QuestionSheet) ([]domain.QuestionSheet, error)
}

// SheetCatalog resolves which of a set's questions carry which type.
type SheetCatalog interface {
	// FindByIDsAndType returns the subset of ids present in the catalog
	// with the given type.
	FindByIDsAndType(ctx context.Context, db *gorm.DB, ids []string, qtype domain.QuestionType) ([]domain.Question, error)
}

// CandidateSource supplies bounded random candidate pools from a member's
// relation graph. Implemented by RelationService.
type CandidateSource interface {
	RandomFriendIDs(ctx context.Context, memberID string, limit int) ([]string, error)
	RandomAccompanyIDs(ctx context.Context, memberID string, limit int) ([]string, error)
}

// SetSource loads a question set by id. Implemented by QuestionSetService.
type SetSource interface {
	Get(ctx context.Context, id string) (*domain.QuestionSet, error)
}

// QuestionSheetService fans a question set out into per-member sheets.
// It performs no sampling itself; candidate pools are pre-sampled by the
// relation service and assigned per question type.
type QuestionSheetService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Sheets is the sheet repository.
	Sheets QuestionSheetRepo
	// Catalog resolves question types for the set's question ids.
	Catalog SheetCatalog

	// Sets and Candidates back GenerateForResolver; CreateForMember works
	// without them.
	Sets       SetSource
	Candidates CandidateSource
	// CandidateLimit bounds the sampled pools (default 8 when zero).
	CandidateLimit int
}

// CreateForMember creates one sheet per question of the set for resolverID:
// FRIEND questions get candidatesOfFriend, ACCOMPANY questions get
// candidatesOfAccompany. Friend sheets come first, then accompany sheets;
// within each group the set's display order is kept. The resolver is
// filtered out of both pools. Questions whose type cannot be resolved from
// the catalog produce no sheet.
//
// If sheets already exist for (set, resolver), they are returned unchanged.
func (s *QuestionSheetService) CreateForMember(ctx context.Context, set *domain.QuestionSet, candidatesOfFriend, candidatesOfAccompany []string, resolverID string) ([]domain.QuestionSheet, error) {
	existing, err := s.Sheets.List(ctx, s.DB, set.ID, resolverID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	ids := set.QuestionIDs()
	friendQs, err := s.Catalog.FindByIDsAndType(ctx, s.DB, ids, domain.QuestionTypeFriend)
	if err != nil {
		return nil, err
	}
	accompanyQs, err := s.Catalog.FindByIDsAndType(ctx, s.DB, ids, domain.QuestionTypeAccompany)
	if err != nil {
		return nil, err
	}

	friendPool := withoutResolver(candidatesOfFriend, resolverID)
	accompanyPool := withoutResolver(candidatesOfAccompany, resolverID)

	isFriend := make(map[string]bool, len(friendQs))
	for _, q := range friendQs {
		isFriend[q.ID] = true
	}
	isAccompany := make(map[string]bool, len(accompanyQs))
	for _, q := range accompanyQs {
		isAccompany[q.ID] = true
	}

	// Position pins the batch display order; a whole batch shares one
	// CreatedAt, so reads order by it instead of creation time.
	sheets := make([]domain.QuestionSheet, 0, len(ids))
	for _, id := range ids {
		if !isFriend[id] {
			continue
		}
		sheets = append(sheets, domain.QuestionSheet{
			QuestionSetID: set.ID,
			QuestionID:    id,
			ResolverID:    resolverID,
			Position:      len(sheets),
			Candidates:    friendPool,
		})
	}
	for _, id := range ids {
		if !isAccompany[id] {
			continue
		}
		sheets = append(sheets, domain.QuestionSheet{
			QuestionSetID: set.ID,
			QuestionID:    id,
			ResolverID:    resolverID,
			Position:      len(sheets),
			Candidates:    accompanyPool,
		})
	}

	saved, err := s.Sheets.SaveAll(ctx, s.DB, sheets)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSheetsExist
		}
		return nil, err
	}
	return saved, nil
}

// GenerateForResolver is the read-time entry point: it loads the set,
// samples bounded candidate pools from the resolver's relation graph, and
// fans out via CreateForMember.
func (s *QuestionSheetService) GenerateForResolver(ctx context.Context, setID, resolverID string) ([]domain.QuestionSheet, error) {
	set, err := s.Sets.Get(ctx, setID)
	if err != nil {
		return nil, err
	}

	limit := s.CandidateLimit
	if limit <= 0 {
		limit = 8
	}
	friends, err := s.Candidates.RandomFriendIDs(ctx, resolverID, limit)
	if err != nil {
		return nil, err
	}
	accompany, err := s.Candidates.RandomAccompanyIDs(ctx, resolverID, limit)
	if err != nil {
		return nil, err
	}

	return s.CreateForMember(ctx, set, friends, accompany, resolverID)
}

// ListForResolver returns the sheets persisted for (setID, resolverID),
// for downstream readers such as the voting feature.
func (s *QuestionSheetService) ListForResolver(ctx context.Context, setID, resolverID string) ([]domain.QuestionSheet, error) {
	return s.Sheets.List(ctx, s.DB, setID, resolverID)
}

// withoutResolver copies pool minus the resolver's own id. Sheets must
// never offer the resolver as an answer to their own question.
func withoutResolver(pool []string, resolverID string) domain.MemberIDList {
	out := make(domain.MemberIDList, 0, len(pool))
	for _, id := range pool {
		if id == resolverID {
			continue
		}
		out = append(out, id)
	}
	return out
}

// isUniqueViolation detects unique-constraint violations. Handles opened
// with TranslateError surface the typed gorm.ErrDuplicatedKey sentinel; the
// string match remains only for handles without translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
