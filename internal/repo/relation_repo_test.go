package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
)

func TestCreateRelation_AndUniquePair(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	r, err := CreateRelation(ctx, db, "m1", "m2", domain.RelationAccompany)
	if err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}
	if r.ID == "" || r.Relation != domain.RelationAccompany {
		t.Fatalf("unexpected relation row: %+v", r)
	}

	// Same ordered pair again must hit the unique index.
	if _, err := CreateRelation(ctx, db, "m1", "m2", domain.RelationAccompany); err == nil {
		t.Fatalf("expected unique violation for duplicate pair")
	} else if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	// Reverse direction is a distinct edge.
	if _, err := CreateRelation(ctx, db, "m2", "m1", domain.RelationAccompany); err != nil {
		t.Fatalf("reverse pair should be allowed: %v", err)
	}
}

func TestListRelations_AndByKind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateRelation(ctx, db, "m1", "f1", domain.RelationFriend); err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}
	if _, err := CreateRelation(ctx, db, "m1", "a1", domain.RelationAccompany); err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}
	if _, err := CreateRelation(ctx, db, "m2", "f9", domain.RelationFriend); err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}

	all, err := ListRelations(ctx, db, "m1")
	if err != nil || len(all) != 2 {
		t.Fatalf("ListRelations = %v, %v; want 2 rows", all, err)
	}

	friends, err := ListRelationsByKind(ctx, db, "m1", domain.RelationFriend)
	if err != nil || len(friends) != 1 || friends[0].ToID != "f1" {
		t.Fatalf("ListRelationsByKind(FRIEND) = %v, %v", friends, err)
	}
}

func TestGetRelation_IsFriend_SavePromotion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := GetRelation(ctx, db, "m1", "m2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := CreateRelation(ctx, db, "m1", "m2", domain.RelationAccompany); err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}

	ok, err := IsFriend(ctx, db, "m1", "m2")
	if err != nil || ok {
		t.Fatalf("IsFriend before promotion = %v, %v; want false", ok, err)
	}

	rel, err := GetRelation(ctx, db, "m1", "m2")
	if err != nil {
		t.Fatalf("GetRelation: %v", err)
	}
	rel.Relation = domain.RelationFriend
	if err := SaveRelation(ctx, db, rel); err != nil {
		t.Fatalf("SaveRelation: %v", err)
	}

	ok, err = IsFriend(ctx, db, "m1", "m2")
	if err != nil || !ok {
		t.Fatalf("IsFriend after promotion = %v, %v; want true", ok, err)
	}
}

func TestFindRandomTargets_BoundedAndTierFiltered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := CreateRelation(ctx, db, "m1", fmt.Sprintf("acc-%d", i), domain.RelationAccompany); err != nil {
			t.Fatalf("CreateRelation: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := CreateRelation(ctx, db, "m1", fmt.Sprintf("fr-%d", i), domain.RelationFriend); err != nil {
			t.Fatalf("CreateRelation: %v", err)
		}
	}

	got, err := FindRandomTargets(ctx, db, "m1", domain.RelationAccompany, 8)
	if err != nil {
		t.Fatalf("FindRandomTargets: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 sampled targets, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, id := range got {
		if !strings.HasPrefix(id, "acc-") {
			t.Fatalf("sampled wrong tier: %s", id)
		}
		if seen[id] {
			t.Fatalf("sampled %s twice", id)
		}
		seen[id] = true
	}

	// Fewer relations than the limit: return them all.
	got, err = FindRandomTargets(ctx, db, "m1", domain.RelationFriend, 8)
	if err != nil || len(got) != 3 {
		t.Fatalf("expected all 3 friends, got %v / %v", got, err)
	}
}
