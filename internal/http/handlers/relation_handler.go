// Relation HTTP handlers.
//
// This file exposes REST endpoints for the caller's relation graph:
//   - GET  /relations               (all outgoing relation targets)
//   - GET  /relations/friends       (FRIEND tier only)
//   - GET  /relations/accompany     (ACCOMPANY tier only)
//   - POST /relations               (follow; default ACCOMPANY)
//   - PUT  /relations/{toId}/friend (promote to FRIEND)
//
// The caller is identified by the X-User-ID header. Relations are directed;
// operations here never touch the reverse pair.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pickme-app/pick-backend/internal/services"
)

// CreateRelationRequest is the JSON payload for following another member.
type CreateRelationRequest struct {
	// ToID is the member being followed.
	ToID string `json:"to_id" binding:"required" example:"member-42"`
}

// RelationIDsResponse wraps a list of relation target ids.
type RelationIDsResponse struct {
	MemberIDs []string `json:"member_ids"`
}

// ListRelations godoc
// @ID          listRelations
// @Summary     List all of the caller's relation targets
// @Tags        Relations
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.RelationIDsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /relations [get]
func (h *Handlers) ListRelations(c *gin.Context) {
	ids, err := h.relationSvc.AllRelationIDs(c.Request.Context(), userID(c))
	h.writeRelationIDs(c, ids, err)
}

// ListFriends godoc
// @ID          listFriends
// @Summary     List the caller's FRIEND-tier targets
// @Tags        Relations
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.RelationIDsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /relations/friends [get]
func (h *Handlers) ListFriends(c *gin.Context) {
	ids, err := h.relationSvc.FriendIDs(c.Request.Context(), userID(c))
	h.writeRelationIDs(c, ids, err)
}

// ListAccompany godoc
// @ID          listAccompany
// @Summary     List the caller's ACCOMPANY-tier targets
// @Tags        Relations
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  handlers.RelationIDsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /relations/accompany [get]
func (h *Handlers) ListAccompany(c *gin.Context) {
	ids, err := h.relationSvc.AccompanyIDs(c.Request.Context(), userID(c))
	h.writeRelationIDs(c, ids, err)
}

// CreateRelation godoc
// @ID          createRelation
// @Summary     Follow another member
// @Description Creates a directed relation from the caller to the target at the default ACCOMPANY tier.
// @Tags        Relations
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateRelationRequest  true  "Target member"
//
// @Success     201  {object}  domain.MemberRelation
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Relation already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /relations [post]
func (h *Handlers) CreateRelation(c *gin.Context) {
	var req CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ToID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "to_id required")
		return
	}

	rel, err := h.relationSvc.CreateRelation(c.Request.Context(), userID(c), strings.TrimSpace(req.ToID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRelation):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "cannot relate to yourself")
		case errors.Is(err, services.ErrRelationExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "relation already exists")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, rel)
}

// PromoteRelation godoc
// @ID          promoteRelation
// @Summary     Promote a relation to FRIEND
// @Description Upgrades the caller's relation towards the target from ACCOMPANY to FRIEND. The promotion is one-way and not repeatable.
// @Tags        Relations
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       toId       path    string  true  "Target member ID"       example(member-42)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Relation not found"
// @Failure     409  {object} handlers.ErrorResponse "Already FRIEND"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /relations/{toId}/friend [put]
func (h *Handlers) PromoteRelation(c *gin.Context) {
	toID := c.Param("toId")

	err := h.relationSvc.UpdateRelationToFriend(c.Request.Context(), userID(c), toID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFriendNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "relation not found")
		case errors.Is(err, services.ErrAlreadyFriend):
			fail(c, http.StatusConflict, ErrCodeConflict, "relation is already FRIEND")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

func (h *Handlers) writeRelationIDs(c *gin.Context, ids []string, err error) {
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if ids == nil {
		ids = []string{}
	}
	ok(c, http.StatusOK, RelationIDsResponse{MemberIDs: ids})
}
