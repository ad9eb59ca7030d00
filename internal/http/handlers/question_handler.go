// Question catalog HTTP handlers.
//
// This file exposes REST endpoints for authoring catalog questions:
//   - POST /questions        (create)
//   - GET  /questions/{id}   (fetch)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/services"
)

// CreateQuestionRequest is the JSON payload for creating a question.
type CreateQuestionRequest struct {
	// Content is the question text shown to resolvers.
	Content string `json:"content" binding:"required" example:"Who would you call at 3am?"`
	// Type decides which relation tier answers the question: FRIEND or ACCOMPANY.
	Type domain.QuestionType `json:"type" binding:"required" example:"FRIEND"`
	// Category groups questions for curation.
	Category domain.QuestionCategory `json:"category" binding:"required" example:"FRIENDSHIP"`
	// EmojiImageID optionally references the illustration asset.
	EmojiImageID string `json:"emoji_image_id" example:"emoji-7"`
}

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Create a catalog question
// @Description Adds an immutable question to the catalog. Type and category must be known enum values.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateQuestionRequest  true  "Question payload"
//
// @Success     201  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	q, err := h.questionSvc.Create(c.Request.Context(), req.Content, req.Type, req.Category, req.EmojiImageID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuestion) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content, type, and category must be valid")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, q)
}

// GetQuestion godoc
// @ID          getQuestion
// @Summary     Get a catalog question by id
// @Tags        Questions
// @Produce     json
//
// @Param       id  path  string  true  "Question ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions/{id} [get]
func (h *Handlers) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	q, err := h.questionSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "question not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, q)
}
