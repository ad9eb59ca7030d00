// Package domain defines the persistence models for questions, question
// sets, question sheets, and member relations. These types are mapped with
// GORM and form the core data layer of the pick backend.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// QuestionType classifies a question by the relation tier its answer
// candidates are drawn from.
type QuestionType string

const (
	// QuestionTypeFriend questions are answered with the resolver's friends.
	QuestionTypeFriend QuestionType = "FRIEND"
	// QuestionTypeAccompany questions are answered with the resolver's
	// acquaintances.
	QuestionTypeAccompany QuestionType = "ACCOMPANY"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	return t == QuestionTypeFriend || t == QuestionTypeAccompany
}

// RelationType is the tier of a directed member-to-member relation.
// ACCOMPANY is the default tier established on follow; FRIEND is the
// stronger tier reached by a one-way promotion.
type RelationType string

const (
	RelationFriend    RelationType = "FRIEND"
	RelationAccompany RelationType = "ACCOMPANY"
)

// QuestionCategory groups questions for authoring and curation purposes.
type QuestionCategory string

const (
	CategoryDating        QuestionCategory = "DATING"
	CategoryFriendship    QuestionCategory = "FRIENDSHIP"
	CategoryPersonality   QuestionCategory = "PERSONALITY"
	CategoryEntertainment QuestionCategory = "ENTERTAINMENT"
	CategoryFitness       QuestionCategory = "FITNESS"
	CategoryAppearance    QuestionCategory = "APPEARANCE"
	CategoryWork          QuestionCategory = "WORK"
	CategoryHumor         QuestionCategory = "HUMOR"
	CategoryOther         QuestionCategory = "OTHER"
)

// Valid reports whether c is one of the known categories.
func (c QuestionCategory) Valid() bool {
	switch c {
	case CategoryDating, CategoryFriendship, CategoryPersonality,
		CategoryEntertainment, CategoryFitness, CategoryAppearance,
		CategoryWork, CategoryHumor, CategoryOther:
		return true
	}
	return false
}

// SetStatus is the lifecycle phase of a QuestionSet, derived from the
// current time against the publish window. It is a computed view and is
// never persisted.
type SetStatus string

const (
	SetUpcoming   SetStatus = "UPCOMING"
	SetActive     SetStatus = "ACTIVE"
	SetTerminated SetStatus = "TERMINATED"
)

// Question is an immutable question definition in the catalog.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Content: the question text shown to resolvers.
//   - Type: FRIEND or ACCOMPANY; decides which candidate pool answers it.
//   - Category: curation category.
//   - EmojiImageID: identifier of the emoji artwork attached to the question.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (administrative removal only).
type Question struct {
	ID           string           `json:"id"             gorm:"type:char(36);primaryKey"`
	Content      string           `json:"content"        gorm:"type:text;not null"`
	Type         QuestionType     `json:"type"           gorm:"type:varchar(16);not null;index;check:type IN ('FRIEND','ACCOMPANY')"`
	Category     QuestionCategory `json:"category"       gorm:"type:varchar(32);not null"`
	EmojiImageID string           `json:"emoji_image_id" gorm:"type:char(36);not null"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `json:"-"              gorm:"index"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// QuestionOrder pins one question to a 0-based display position inside a
// question set. Positions are contiguous and unique within one set, and a
// question appears at most once per set (both enforced by unique indexes).
type QuestionOrder struct {
	ID            string    `json:"-"           gorm:"type:char(36);primaryKey"`
	QuestionSetID string    `json:"-"           gorm:"type:char(36);not null;uniqueIndex:ux_order_set_question;uniqueIndex:ux_order_set_position"`
	QuestionID    string    `json:"question_id" gorm:"type:char(36);not null;uniqueIndex:ux_order_set_question"`
	Position      int       `json:"position"    gorm:"not null;uniqueIndex:ux_order_set_position"`
	CreatedAt     time.Time `json:"-"`

	// Question is the referenced catalog entry; orders are cascade-deleted
	// with their question.
	Question Question `json:"-" gorm:"foreignKey:QuestionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for QuestionOrder.
func (QuestionOrder) TableName() string { return "question_orders" }

// QuestionSet is one scheduled, fixed-size batch of questions published
// together. Sets are contiguous: a set's PublishedAt equals the previous
// set's EndAt. The unique index on PublishedAt keeps two concurrent builder
// runs from claiming the same publish window.
type QuestionSet struct {
	ID          string          `json:"id"           gorm:"type:char(36);primaryKey"`
	PublishedAt time.Time       `json:"published_at" gorm:"not null;uniqueIndex:ux_set_published_at"`
	EndAt       time.Time       `json:"end_at"       gorm:"not null"`
	Orders      []QuestionOrder `json:"orders"       gorm:"foreignKey:QuestionSetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-"            gorm:"index"`
}

// TableName returns the database table name for QuestionSet.
func (QuestionSet) TableName() string { return "question_sets" }

// StatusAt derives the lifecycle status of the set at the given instant.
// A set is ACTIVE within [PublishedAt, EndAt), UPCOMING before that window
// and TERMINATED after it.
func (s *QuestionSet) StatusAt(now time.Time) SetStatus {
	switch {
	case now.Before(s.PublishedAt):
		return SetUpcoming
	case now.Before(s.EndAt):
		return SetActive
	default:
		return SetTerminated
	}
}

// QuestionIDs returns the set's question ids in display order.
func (s *QuestionSet) QuestionIDs() []string {
	ids := make([]string, len(s.Orders))
	for i, o := range s.Orders {
		ids[i] = o.QuestionID
	}
	return ids
}

// MemberIDList is an ordered list of member ids persisted as a JSON text
// column. An empty list round-trips as "[]" rather than NULL.
type MemberIDList []string

// Value implements driver.Valuer by JSON-encoding the list.
func (l MemberIDList) Value() (driver.Value, error) {
	if l == nil {
		l = MemberIDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, accepting TEXT or BLOB JSON payloads.
func (l *MemberIDList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = MemberIDList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("member id list: unsupported column type")
	}
}

// QuestionSheet binds one question of a set to one resolving member,
// carrying the concrete candidate pool the resolver picks an answer from.
// Sheets are immutable after creation; the natural key
// (question_set_id, question_id, resolver_id) is unique so repeated fan-out
// for the same member can never insert duplicates. Position is the sheet's
// display slot within the (set, resolver) batch — a whole fan-out batch
// shares one CreatedAt, so creation time cannot order it.
type QuestionSheet struct {
	ID            string         `json:"id"              gorm:"type:char(36);primaryKey"`
	QuestionSetID string         `json:"question_set_id" gorm:"type:char(36);not null;uniqueIndex:ux_sheet_set_question_resolver;index:idx_sheet_set_resolver,priority:1"`
	QuestionID    string         `json:"question_id"     gorm:"type:char(36);not null;uniqueIndex:ux_sheet_set_question_resolver"`
	ResolverID    string         `json:"resolver_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_sheet_set_question_resolver;index:idx_sheet_set_resolver,priority:2"`
	Position      int            `json:"position"        gorm:"not null;default:0"`
	Candidates    MemberIDList   `json:"candidates"      gorm:"type:text;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"               gorm:"index"`

	// QuestionSet is the owning batch; sheets are cascade-deleted with it.
	QuestionSet QuestionSet `json:"-" gorm:"foreignKey:QuestionSetID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for QuestionSheet.
func (QuestionSheet) TableName() string { return "question_sheets" }

// MemberRelation is a directed edge between two members. At most one row
// exists per ordered (FromID, ToID) pair. The Relation tier only ever moves
// ACCOMPANY -> FRIEND; FRIEND never demotes. UpdatedAt doubles as the
// last-updated timestamp of the edge.
type MemberRelation struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	FromID    string         `json:"from_id"  gorm:"type:varchar(64);not null;index:idx_relation_from;uniqueIndex:ux_relation_pair"`
	ToID      string         `json:"to_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_relation_pair"`
	Relation  RelationType   `json:"relation" gorm:"type:varchar(16);not null;check:relation IN ('FRIEND','ACCOMPANY')"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}

// TableName returns the database table name for MemberRelation.
func (MemberRelation) TableName() string { return "member_relations" }
