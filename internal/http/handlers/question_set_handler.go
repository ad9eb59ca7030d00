// Question-set HTTP handlers.
//
// This file exposes REST endpoints for question-set resources:
//   - POST   /question-sets         (create from an explicit question list)
//   - POST   /question-sets/next    (build the next scheduled set)
//   - GET    /question-sets/active  (the set currently live)
//   - GET    /question-sets/next    (the next upcoming set)
//   - GET    /question-sets/latest  (the most recently published set)
//   - GET    /question-sets/{id}
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// QuestionSetService defines the set lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionSetService interface {
	// CreateNext builds and persists the set for the next publish window.
	CreateNext(ctx context.Context) (string, error)
	// Create persists a set from an explicit question list and window.
	Create(ctx context.Context, questionIDs []string, publishedAt, endAt time.Time) (*domain.QuestionSet, error)
	// Active returns the set whose window contains now.
	Active(ctx context.Context) (*domain.QuestionSet, error)
	// NextUpcoming returns the earliest set publishing after now.
	NextUpcoming(ctx context.Context) (*domain.QuestionSet, error)
	// Latest returns the most recently published set.
	Latest(ctx context.Context) (*domain.QuestionSet, error)
	// Get returns a set by id.
	Get(ctx context.Context, id string) (*domain.QuestionSet, error)
}

// QuestionService defines the catalog authoring operations consumed by HTTP
// handlers.
type QuestionService interface {
	Create(ctx context.Context, content string, qtype domain.QuestionType, category domain.QuestionCategory, emojiImageID string) (*domain.Question, error)
	Get(ctx context.Context, id string) (*domain.Question, error)
}

// QuestionSheetService defines the fan-out operations consumed by HTTP
// handlers.
type QuestionSheetService interface {
	GenerateForResolver(ctx context.Context, setID, resolverID string) ([]domain.QuestionSheet, error)
	ListForResolver(ctx context.Context, setID, resolverID string) ([]domain.QuestionSheet, error)
}

// RelationService defines the relation-graph operations consumed by HTTP
// handlers.
type RelationService interface {
	AllRelationIDs(ctx context.Context, fromID string) ([]string, error)
	FriendIDs(ctx context.Context, fromID string) ([]string, error)
	AccompanyIDs(ctx context.Context, fromID string) ([]string, error)
	CreateRelation(ctx context.Context, fromID, toID string) (*domain.MemberRelation, error)
	UpdateRelationToFriend(ctx context.Context, fromID, toID string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for questions, question sets, sheets, and
// relations. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	questionSvc QuestionService
	setSvc      QuestionSetService
	sheetSvc    QuestionSheetService
	relationSvc RelationService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(questionSvc QuestionService, setSvc QuestionSetService, sheetSvc QuestionSheetService, relationSvc RelationService) *Handlers {
	return &Handlers{
		questionSvc: questionSvc,
		setSvc:      setSvc,
		sheetSvc:    sheetSvc,
		relationSvc: relationSvc,
	}
}

// userID extracts the authenticated member id from Gin context (set by
// upstream middleware). If absent, it falls back to "X-User-ID" header (tests
// use it), and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// CreateQuestionSetRequest is the JSON payload for creating a set from an
// explicit question list.
type CreateQuestionSetRequest struct {
	// QuestionIDs is the ordered question list; its length must match the
	// configured set size and contain no duplicates.
	QuestionIDs []string `json:"question_ids" binding:"required"`
	// PublishedAt is the window open instant (RFC 3339), strictly in the future.
	PublishedAt time.Time `json:"published_at" binding:"required" example:"2025-03-10T09:00:00Z"`
	// EndAt is the window close instant (RFC 3339), strictly after PublishedAt.
	EndAt time.Time `json:"end_at" binding:"required" example:"2025-03-10T21:00:00Z"`
}

// CreateNextResponse returns the id of a freshly built set.
type CreateNextResponse struct {
	ID string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

//
// Handlers
//

// BuildNextQuestionSet godoc
// @ID          buildNextQuestionSet
// @Summary     Build the next question set
// @Description Selects a ratio-balanced batch of unused questions and schedules it for the next publish window.
// @Tags        QuestionSets
// @Produce     json
//
// @Success     201  {object}  handlers.CreateNextResponse
// @Failure     409  {object}  handlers.ErrorResponse  "Question catalog exhausted"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/next [post]
func (h *Handlers) BuildNextQuestionSet(c *gin.Context) {
	id, err := h.setSvc.CreateNext(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrQuestionLack) {
			fail(c, http.StatusConflict, ErrCodeSetBuildFailed, "not enough unused questions to fill the set")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, CreateNextResponse{ID: id})
}

// CreateQuestionSet godoc
// @ID          createQuestionSet
// @Summary     Create a question set from an explicit list
// @Description Persists a set with the given questions and publish window. The list must match the configured set size.
// @Tags        QuestionSets
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateQuestionSetRequest  true  "Set payload"
//
// @Success     201  {object}  domain.QuestionSet
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets [post]
func (h *Handlers) CreateQuestionSet(c *gin.Context) {
	var req CreateQuestionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	set, err := h.setSvc.Create(c.Request.Context(), req.QuestionIDs, req.PublishedAt, req.EndAt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWrongQuestionCount),
			errors.Is(err, services.ErrDuplicateQuestion),
			errors.Is(err, services.ErrPastPublishTime),
			errors.Is(err, services.ErrInvalidSetWindow):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, set)
}

// ActiveQuestionSet godoc
// @ID          activeQuestionSet
// @Summary     Get the currently live question set
// @Tags        QuestionSets
// @Produce     json
//
// @Success     200  {object}  domain.QuestionSet
// @Failure     404  {object}  handlers.ErrorResponse  "No set is live"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/active [get]
func (h *Handlers) ActiveQuestionSet(c *gin.Context) {
	set, err := h.setSvc.Active(c.Request.Context())
	h.writeSet(c, set, err)
}

// NextQuestionSet godoc
// @ID          nextQuestionSet
// @Summary     Get the next upcoming question set
// @Tags        QuestionSets
// @Produce     json
//
// @Success     200  {object}  domain.QuestionSet
// @Failure     404  {object}  handlers.ErrorResponse  "No upcoming set"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/next [get]
func (h *Handlers) NextQuestionSet(c *gin.Context) {
	set, err := h.setSvc.NextUpcoming(c.Request.Context())
	h.writeSet(c, set, err)
}

// LatestQuestionSet godoc
// @ID          latestQuestionSet
// @Summary     Get the most recently published question set
// @Tags        QuestionSets
// @Produce     json
//
// @Success     200  {object}  domain.QuestionSet
// @Failure     404  {object}  handlers.ErrorResponse  "No set exists yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/latest [get]
func (h *Handlers) LatestQuestionSet(c *gin.Context) {
	set, err := h.setSvc.Latest(c.Request.Context())
	h.writeSet(c, set, err)
}

// GetQuestionSet godoc
// @ID          getQuestionSet
// @Summary     Get a question set by id
// @Tags        QuestionSets
// @Produce     json
//
// @Param       id  path  string  true  "Set ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.QuestionSet
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Set not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/{id} [get]
func (h *Handlers) GetQuestionSet(c *gin.Context) {
	setID := c.Param("id")
	if _, err := uuid.Parse(setID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "set id must be a UUID")
		return
	}
	set, err := h.setSvc.Get(c.Request.Context(), setID)
	h.writeSet(c, set, err)
}

// writeSet translates a (set, error) service result into the HTTP response.
func (h *Handlers) writeSet(c *gin.Context, set *domain.QuestionSet, err error) {
	if err != nil {
		if errors.Is(err, services.ErrQuestionSetNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "question set not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, set)
}
