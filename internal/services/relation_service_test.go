package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/repo"
)

// txDB opens a throwaway SQLite handle so service transactions have
// something real to BEGIN/COMMIT against. Storage itself lives in the fake
// repo; no tables are created.
func txDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tx.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type fakeRelationRepo struct {
	rows map[string]*domain.MemberRelation

	createErr error
	saveCalls int
}

func newFakeRelationRepo() *fakeRelationRepo {
	return &fakeRelationRepo{rows: map[string]*domain.MemberRelation{}}
}

func pairKey(fromID, toID string) string { return fromID + "|" + toID }

func (r *fakeRelationRepo) Create(ctx context.Context, db *gorm.DB, fromID, toID string, kind domain.RelationType) (*domain.MemberRelation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	key := pairKey(fromID, toID)
	if _, ok := r.rows[key]; ok {
		return nil, errors.New("UNIQUE constraint failed: member_relations.from_id")
	}
	rel := &domain.MemberRelation{ID: "rel-" + key, FromID: fromID, ToID: toID, Relation: kind}
	r.rows[key] = rel
	return rel, nil
}

func (r *fakeRelationRepo) List(ctx context.Context, db *gorm.DB, fromID string) ([]domain.MemberRelation, error) {
	var out []domain.MemberRelation
	for _, rel := range r.rows {
		if rel.FromID == fromID {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (r *fakeRelationRepo) ListByKind(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType) ([]domain.MemberRelation, error) {
	var out []domain.MemberRelation
	for _, rel := range r.rows {
		if rel.FromID == fromID && rel.Relation == kind {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (r *fakeRelationRepo) Get(ctx context.Context, db *gorm.DB, fromID, toID string) (*domain.MemberRelation, error) {
	rel, ok := r.rows[pairKey(fromID, toID)]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *rel
	return &cp, nil
}

func (r *fakeRelationRepo) IsFriend(ctx context.Context, db *gorm.DB, fromID, toID string) (bool, error) {
	rel, ok := r.rows[pairKey(fromID, toID)]
	return ok && rel.Relation == domain.RelationFriend, nil
}

func (r *fakeRelationRepo) Save(ctx context.Context, db *gorm.DB, rel *domain.MemberRelation) error {
	r.saveCalls++
	cp := *rel
	r.rows[pairKey(rel.FromID, rel.ToID)] = &cp
	return nil
}

func (r *fakeRelationRepo) RandomTargets(ctx context.Context, db *gorm.DB, fromID string, kind domain.RelationType, limit int) ([]string, error) {
	rels, _ := r.ListByKind(ctx, db, fromID, kind)
	var out []string
	for _, rel := range rels {
		if len(out) == limit {
			break
		}
		out = append(out, rel.ToID)
	}
	return out, nil
}

func newRelationService(t *testing.T) (*RelationService, *fakeRelationRepo) {
	t.Helper()
	fr := newFakeRelationRepo()
	return &RelationService{DB: txDB(t), Repo: fr}, fr
}

func TestCreateRelation_DefaultsToAccompany(t *testing.T) {
	s, _ := newRelationService(t)

	rel, err := s.CreateRelation(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("CreateRelation: %v", err)
	}
	if rel.Relation != domain.RelationAccompany {
		t.Fatalf("new relation tier = %s; want ACCOMPANY", rel.Relation)
	}
	if rel.FromID != "alice" || rel.ToID != "bob" {
		t.Fatalf("relation pair = %s -> %s", rel.FromID, rel.ToID)
	}
}

func TestCreateRelation_RejectsSelf(t *testing.T) {
	s, fr := newRelationService(t)

	if _, err := s.CreateRelation(context.Background(), "alice", "alice"); !errors.Is(err, ErrSelfRelation) {
		t.Fatalf("expected ErrSelfRelation, got %v", err)
	}
	if len(fr.rows) != 0 {
		t.Fatalf("self relation must not be persisted")
	}
}

func TestCreateRelation_RejectsDuplicatePair(t *testing.T) {
	s, _ := newRelationService(t)

	if _, err := s.CreateRelation(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.CreateRelation(context.Background(), "alice", "bob"); !errors.Is(err, ErrRelationExists) {
		t.Fatalf("expected ErrRelationExists, got %v", err)
	}
}

func TestCreateRelation_ReversePairIsIndependent(t *testing.T) {
	s, _ := newRelationService(t)

	if _, err := s.CreateRelation(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("alice -> bob: %v", err)
	}
	if _, err := s.CreateRelation(context.Background(), "bob", "alice"); err != nil {
		t.Fatalf("bob -> alice: %v", err)
	}
}

func TestCreateRelation_RaceMapsUniqueViolation(t *testing.T) {
	// The pre-check misses, the insert trips the unique index. The insert
	// error arrives as the translated sentinel on handles opened with error
	// translation, or as the raw driver string without it.
	for name, createErr := range map[string]error{
		"translated sentinel": gorm.ErrDuplicatedKey,
		"raw driver error":    errors.New("UNIQUE constraint failed: member_relations.from_id, member_relations.to_id"),
	} {
		s, fr := newRelationService(t)
		fr.createErr = createErr

		if _, err := s.CreateRelation(context.Background(), "alice", "bob"); !errors.Is(err, ErrRelationExists) {
			t.Fatalf("%s: expected ErrRelationExists, got %v", name, err)
		}
	}
}

func TestUpdateRelationToFriend(t *testing.T) {
	s, fr := newRelationService(t)
	ctx := context.Background()

	if _, err := s.CreateRelation(ctx, "alice", "bob"); err != nil {
		t.Fatalf("seed relation: %v", err)
	}

	if err := s.UpdateRelationToFriend(ctx, "alice", "bob"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	rel := fr.rows[pairKey("alice", "bob")]
	if rel.Relation != domain.RelationFriend {
		t.Fatalf("tier after promotion = %s; want FRIEND", rel.Relation)
	}

	// Promotion is one-way and not repeatable.
	if err := s.UpdateRelationToFriend(ctx, "alice", "bob"); !errors.Is(err, ErrAlreadyFriend) {
		t.Fatalf("expected ErrAlreadyFriend, got %v", err)
	}
	if fr.saveCalls != 1 {
		t.Fatalf("save calls = %d; want 1", fr.saveCalls)
	}
}

func TestUpdateRelationToFriend_MissingPair(t *testing.T) {
	s, _ := newRelationService(t)

	if err := s.UpdateRelationToFriend(context.Background(), "alice", "ghost"); !errors.Is(err, ErrFriendNotFound) {
		t.Fatalf("expected ErrFriendNotFound, got %v", err)
	}
}

func TestUpdateRelationToFriend_DoesNotAffectReverse(t *testing.T) {
	s, fr := newRelationService(t)
	ctx := context.Background()

	if _, err := s.CreateRelation(ctx, "alice", "bob"); err != nil {
		t.Fatalf("alice -> bob: %v", err)
	}
	if _, err := s.CreateRelation(ctx, "bob", "alice"); err != nil {
		t.Fatalf("bob -> alice: %v", err)
	}
	if err := s.UpdateRelationToFriend(ctx, "alice", "bob"); err != nil {
		t.Fatalf("promote: %v", err)
	}

	if rel := fr.rows[pairKey("bob", "alice")]; rel.Relation != domain.RelationAccompany {
		t.Fatalf("reverse relation changed tier: %s", rel.Relation)
	}
	ok, err := s.IsFriend(ctx, "bob", "alice")
	if err != nil {
		t.Fatalf("IsFriend: %v", err)
	}
	if ok {
		t.Fatalf("IsFriend(bob, alice) = true; promotion must be one-directional")
	}
}

func TestRelationListings(t *testing.T) {
	s, _ := newRelationService(t)
	ctx := context.Background()

	for _, to := range []string{"bob", "carol", "dave"} {
		if _, err := s.CreateRelation(ctx, "alice", to); err != nil {
			t.Fatalf("seed %s: %v", to, err)
		}
	}
	if err := s.UpdateRelationToFriend(ctx, "alice", "bob"); err != nil {
		t.Fatalf("promote bob: %v", err)
	}

	all, err := s.AllRelationIDs(ctx, "alice")
	if err != nil || len(all) != 3 {
		t.Fatalf("AllRelationIDs = %v, %v", all, err)
	}
	friends, err := s.FriendIDs(ctx, "alice")
	if err != nil || len(friends) != 1 || friends[0] != "bob" {
		t.Fatalf("FriendIDs = %v, %v", friends, err)
	}
	accompany, err := s.AccompanyIDs(ctx, "alice")
	if err != nil || len(accompany) != 2 {
		t.Fatalf("AccompanyIDs = %v, %v", accompany, err)
	}
}

func TestRandomTargetIDs_Bounded(t *testing.T) {
	s, _ := newRelationService(t)
	ctx := context.Background()

	for _, to := range []string{"bob", "carol", "dave", "erin"} {
		if _, err := s.CreateRelation(ctx, "alice", to); err != nil {
			t.Fatalf("seed %s: %v", to, err)
		}
	}

	got, err := s.RandomAccompanyIDs(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("RandomAccompanyIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sample size = %d; want 2", len(got))
	}

	friends, err := s.RandomFriendIDs(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("RandomFriendIDs: %v", err)
	}
	if len(friends) != 0 {
		t.Fatalf("friend sample = %v; want empty, no FRIEND relations exist", friends)
	}
}
