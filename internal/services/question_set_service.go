// Package services – QuestionSetService
//
// This file implements the question-set publish pipeline: selecting a
// ratio-balanced, non-repeating batch of questions for the next publish
// window, computing the window boundaries from the two-slot daily schedule,
// and exposing the read-side queries (active, next, latest, by id).
//
// Service-level errors (ErrQuestionLack, ErrWrongQuestionCount,
// ErrPastPublishTime, ErrInvalidSetWindow, ErrQuestionSetNotFound) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently. A failed build is never retried here; masking it would
// publish a malformed set.
package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pickme-app/pick-backend/internal/config"
	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/repo"
)

// QuestionSetRepo defines the repository contract required by
// QuestionSetService.
type QuestionSetRepo interface {
	// Save persists a new set with its orders atomically.
	Save(ctx context.Context, db *gorm.DB, set *domain.QuestionSet) error

	// Get fetches a set by id with orders preloaded in display order.
	Get(ctx context.Context, db *gorm.DB, id string) (*domain.QuestionSet, error)

	// Active returns the set whose window contains now.
	Active(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error)

	// Next returns the earliest set publishing strictly after now.
	Next(ctx context.Context, db *gorm.DB, now time.Time) (*domain.QuestionSet, error)

	// Latest returns the most recently published set.
	Latest(ctx context.Context, db *gorm.DB) (*domain.QuestionSet, error)
}

// QuestionCatalog defines the catalog sampling contract required by
// QuestionSetService.
type QuestionCatalog interface {
	// FindRandom samples up to limit questions of the given type uniformly
	// at random without replacement, skipping excludedIDs.
	FindRandom(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string, limit int) ([]domain.Question, error)

	// CountByType reports how many questions of the given type remain
	// outside excludedIDs. Used only to log catalog exhaustion.
	CountByType(ctx context.Context, db *gorm.DB, qtype domain.QuestionType, excludedIDs []string) (int64, error)
}

// QuestionSetService builds and queries question sets. Schedule and ratio
// inputs are an immutable config value, and both the clock and the random
// source are injectable so set generation is deterministic under test.
type QuestionSetService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Sets is the question-set repository.
	Sets QuestionSetRepo
	// Catalog supplies random question sampling.
	Catalog QuestionCatalog
	// Cfg carries set size, friend ratio, and the two daily open times.
	Cfg config.QuestionSetConfig

	// Now returns the current time; nil means time.Now.
	Now func() time.Time
	// Rand shuffles the selected questions; nil means the global source.
	Rand *rand.Rand
}

func (s *QuestionSetService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *QuestionSetService) shuffle(qs []domain.Question) {
	swap := func(i, j int) { qs[i], qs[j] = qs[j], qs[i] }
	if s.Rand != nil {
		s.Rand.Shuffle(len(qs), swap)
		return
	}
	rand.Shuffle(len(qs), swap)
}

// CreateNext builds and persists the question set for the next publish
// window, returning its id.
//
// Selection:
//   - friendCount = floor(size * friendRatio); accompanyCount fills the rest.
//   - Every question id of the latest set is excluded, so no question
//     repeats across consecutive windows.
//   - Each type is sampled uniformly at random without replacement, then the
//     combined list is shuffled to decorrelate type from position.
//   - If the catalog cannot fill the set, the build fails with
//     ErrQuestionLack after logging the requested size, the per-type
//     availability, the excluded ids, and the previous set id.
//
// Scheduling:
//   - With a prior set, publishedAt is exactly that set's endAt (windows are
//     contiguous, no gaps or overlaps).
//   - Without one, publishedAt is the next open slot strictly after now.
//   - endAt alternates: a set opening at openTime1 closes at openTime2 the
//     same day; any other opening closes at openTime1 the next day.
func (s *QuestionSetService) CreateNext(ctx context.Context) (string, error) {
	latest, err := s.Sets.Latest(ctx, s.DB)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	var excluded []string
	if latest != nil {
		excluded = latest.QuestionIDs()
	}

	friendWant := int(float64(s.Cfg.Size) * s.Cfg.FriendRatio)
	accompanyWant := s.Cfg.Size - friendWant

	friends, err := s.Catalog.FindRandom(ctx, s.DB, domain.QuestionTypeFriend, excluded, friendWant)
	if err != nil {
		return "", err
	}
	accompany, err := s.Catalog.FindRandom(ctx, s.DB, domain.QuestionTypeAccompany, excluded, accompanyWant)
	if err != nil {
		return "", err
	}

	questions := make([]domain.Question, 0, s.Cfg.Size)
	questions = append(questions, friends...)
	questions = append(questions, accompany...)

	if len(questions) != s.Cfg.Size {
		s.logQuestionLack(ctx, latest, excluded, friendWant, len(friends), accompanyWant, len(accompany))
		return "", ErrQuestionLack
	}

	s.shuffle(questions)

	publishedAt := s.nextOpenSlot(s.now())
	if latest != nil {
		publishedAt = latest.EndAt
	}
	endAt := s.endFor(publishedAt)

	orders := make([]domain.QuestionOrder, len(questions))
	for i, q := range questions {
		orders[i] = domain.QuestionOrder{QuestionID: q.ID, Position: i}
	}
	set := &domain.QuestionSet{
		PublishedAt: publishedAt,
		EndAt:       endAt,
		Orders:      orders,
	}
	if err := s.Sets.Save(ctx, s.DB, set); err != nil {
		return "", err
	}
	return set.ID, nil
}

// Create persists a set from an explicit question list and window. It
// validates that the list matches the configured size with no duplicate
// ids, that publishedAt is strictly in the future, and that endAt is
// strictly after publishedAt. Violations are fatal to the call.
func (s *QuestionSetService) Create(ctx context.Context, questionIDs []string, publishedAt, endAt time.Time) (*domain.QuestionSet, error) {
	if len(questionIDs) != s.Cfg.Size {
		return nil, ErrWrongQuestionCount
	}
	seen := make(map[string]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateQuestion
		}
		seen[id] = struct{}{}
	}
	if !publishedAt.After(s.now()) {
		return nil, ErrPastPublishTime
	}
	if !endAt.After(publishedAt) {
		return nil, ErrInvalidSetWindow
	}

	orders := make([]domain.QuestionOrder, len(questionIDs))
	for i, id := range questionIDs {
		orders[i] = domain.QuestionOrder{QuestionID: id, Position: i}
	}
	set := &domain.QuestionSet{
		PublishedAt: publishedAt,
		EndAt:       endAt,
		Orders:      orders,
	}
	if err := s.Sets.Save(ctx, s.DB, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Active returns the set currently live (publishedAt <= now < endAt).
func (s *QuestionSetService) Active(ctx context.Context) (*domain.QuestionSet, error) {
	set, err := s.Sets.Active(ctx, s.DB, s.now())
	return mapSetNotFound(set, err)
}

// NextUpcoming returns the earliest set publishing after now.
func (s *QuestionSetService) NextUpcoming(ctx context.Context) (*domain.QuestionSet, error) {
	set, err := s.Sets.Next(ctx, s.DB, s.now())
	return mapSetNotFound(set, err)
}

// Latest returns the most recently published set.
func (s *QuestionSetService) Latest(ctx context.Context) (*domain.QuestionSet, error) {
	set, err := s.Sets.Latest(ctx, s.DB)
	return mapSetNotFound(set, err)
}

// Get returns a set by id.
func (s *QuestionSetService) Get(ctx context.Context, id string) (*domain.QuestionSet, error) {
	set, err := s.Sets.Get(ctx, s.DB, id)
	return mapSetNotFound(set, err)
}

func mapSetNotFound(set *domain.QuestionSet, err error) (*domain.QuestionSet, error) {
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionSetNotFound
		}
		return nil, err
	}
	return set, nil
}

// nextOpenSlot returns the first daily open time strictly after now:
// today's openTime1 if now precedes it, else today's openTime2 if now
// precedes that, else tomorrow's openTime1.
func (s *QuestionSetService) nextOpenSlot(now time.Time) time.Time {
	if first := s.Cfg.OpenTime1.On(now); now.Before(first) {
		return first
	}
	if second := s.Cfg.OpenTime2.On(now); now.Before(second) {
		return second
	}
	return s.Cfg.OpenTime1.On(now.AddDate(0, 0, 1))
}

// endFor computes the window end for a publish instant. A window opening at
// openTime1 runs until openTime2 the same day; any other opening runs until
// openTime1 the next day. This encodes the alternating two-shift cycle.
func (s *QuestionSetService) endFor(publishedAt time.Time) time.Time {
	if s.Cfg.OpenTime1.Matches(publishedAt) {
		return s.Cfg.OpenTime2.On(publishedAt)
	}
	return s.Cfg.OpenTime1.On(publishedAt.AddDate(0, 0, 1))
}

// logQuestionLack records a failed build with enough structured context to
// diagnose catalog exhaustion without re-querying production data.
func (s *QuestionSetService) logQuestionLack(ctx context.Context, latest *domain.QuestionSet, excluded []string, friendWant, friendGot, accompanyWant, accompanyGot int) {
	prevSetID := ""
	if latest != nil {
		prevSetID = latest.ID
	}
	friendAvail, _ := s.Catalog.CountByType(ctx, s.DB, domain.QuestionTypeFriend, excluded)
	accompanyAvail, _ := s.Catalog.CountByType(ctx, s.DB, domain.QuestionTypeAccompany, excluded)

	log.Error().
		Int("requested_size", s.Cfg.Size).
		Int("friend_want", friendWant).
		Int("friend_got", friendGot).
		Int64("friend_available", friendAvail).
		Int("accompany_want", accompanyWant).
		Int("accompany_got", accompanyGot).
		Int64("accompany_available", accompanyAvail).
		Strs("excluded_ids", excluded).
		Str("previous_set_id", prevSetID).
		Msg("question set build failed: catalog exhausted")
}
