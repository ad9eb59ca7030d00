// Question-sheet HTTP handlers.
//
// This file exposes REST endpoints for per-member sheet fan-out:
//   - POST /question-sets/{id}/sheets  (generate the caller's sheets)
//   - GET  /question-sets/{id}/sheets  (list the caller's sheets)
//
// The caller is identified by the X-User-ID header; sheets belong to the
// (set, caller) pair and generation is idempotent.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/services"
)

// SheetsResponse wraps the sheets generated or listed for one caller.
type SheetsResponse struct {
	Sheets []domain.QuestionSheet `json:"sheets"`
}

// GenerateSheets godoc
// @ID          generateSheets
// @Summary     Generate the caller's sheets for a question set
// @Description Creates one sheet per question of the set, each carrying a candidate pool sampled from the caller's relations. Repeated calls return the existing sheets.
// @Tags        Sheets
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Set ID (UUID)"          format(uuid)
//
// @Success     201  {object}  handlers.SheetsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Set not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Sheets already exist"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/{id}/sheets [post]
func (h *Handlers) GenerateSheets(c *gin.Context) {
	setID := c.Param("id")
	if _, err := uuid.Parse(setID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "set id must be a UUID")
		return
	}

	sheets, err := h.sheetSvc.GenerateForResolver(c.Request.Context(), setID, userID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionSetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "question set not found")
		case errors.Is(err, services.ErrSheetsExist):
			fail(c, http.StatusConflict, ErrCodeSheetsExist, "sheets already exist for this set")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, SheetsResponse{Sheets: sheets})
}

// ListSheets godoc
// @ID          listSheets
// @Summary     List the caller's sheets for a question set
// @Tags        Sheets
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Set ID (UUID)"          format(uuid)
//
// @Success     200  {object}  handlers.SheetsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question-sets/{id}/sheets [get]
func (h *Handlers) ListSheets(c *gin.Context) {
	setID := c.Param("id")
	if _, err := uuid.Parse(setID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "set id must be a UUID")
		return
	}

	sheets, err := h.sheetSvc.ListForResolver(c.Request.Context(), setID, userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, SheetsResponse{Sheets: sheets})
}
