// Package services defines the business logic for the question catalog, the
// question-set publish pipeline, sheet fan-out, and member relations. This
// file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Question-set pipeline errors.
var (
	// ErrQuestionLack is returned when the catalog cannot supply enough
	// non-excluded questions of the needed type mix to fill a set. The
	// build attempt is fatal; publishing an incomplete set is unacceptable.
	ErrQuestionLack = errors.New("not enough questions to build a set")

	// ErrWrongQuestionCount is returned when explicit set creation is given
	// a question list whose length differs from the configured set size.
	ErrWrongQuestionCount = errors.New("question count does not match configured set size")

	// ErrDuplicateQuestion is returned when explicit set creation is given
	// the same question id more than once.
	ErrDuplicateQuestion = errors.New("duplicate question id in set")

	// ErrPastPublishTime is returned when explicit set creation is given a
	// publish time that is not strictly in the future.
	ErrPastPublishTime = errors.New("publish time must be in the future")

	// ErrInvalidSetWindow is returned when a set's end time is not strictly
	// after its publish time.
	ErrInvalidSetWindow = errors.New("end time must be after publish time")

	// ErrQuestionSetNotFound indicates that no set matches the query
	// (by id, or no set is currently active/upcoming).
	ErrQuestionSetNotFound = errors.New("question set not found")
)

// Question catalog errors.
var (
	// ErrInvalidQuestion is returned when a question is created with empty
	// content or an unknown type/category.
	ErrInvalidQuestion = errors.New("invalid question definition")

	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
)

// Sheet fan-out errors.
var (
	// ErrSheetsExist is returned when fan-out races another invocation for
	// the same (set, resolver) pair and loses to the natural-key constraint.
	ErrSheetsExist = errors.New("question sheets already exist for this member and set")
)

// Relation errors.
var (
	// ErrSelfRelation is returned when a member attempts to relate to
	// themselves.
	ErrSelfRelation = errors.New("cannot create a relation to oneself")

	// ErrRelationExists is returned when a relation for the ordered
	// (from, to) pair already exists.
	ErrRelationExists = errors.New("relation already exists")

	// ErrFriendNotFound is returned by the promote-to-friend transition when
	// no relation exists for the ordered pair.
	ErrFriendNotFound = errors.New("relation not found")

	// ErrAlreadyFriend is returned when promote-to-friend is called on a
	// pair that is already FRIEND. Calling it twice signals a caller bug
	// (duplicate follow request), so this is an error rather than a no-op.
	ErrAlreadyFriend = errors.New("relation is already friend")
)
