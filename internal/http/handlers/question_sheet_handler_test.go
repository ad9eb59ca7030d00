package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/services"
)

func TestGenerateSheets(t *testing.T) {
	sheets := []domain.QuestionSheet{
		{ID: "sheet-1", QuestionSetID: validUUID, QuestionID: "q-1", ResolverID: "u1", Candidates: domain.MemberIDList{"m-1"}},
	}
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{sheets: sheets}, &fakeRelationService{}))

	w := do(t, r, http.MethodPost, "/question-sets/"+validUUID+"/sheets", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	var resp SheetsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp.Sheets) != 1 {
		t.Fatalf("body = %q (%v)", w.Body.String(), err)
	}
}

func TestGenerateSheets_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"set missing", services.ErrQuestionSetNotFound, http.StatusNotFound},
		{"already exist", services.ErrSheetsExist, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{err: tc.err}, &fakeRelationService{}))
			if w := do(t, r, http.MethodPost, "/question-sets/"+validUUID+"/sheets", ""); w.Code != tc.want {
				t.Fatalf("status = %d; want %d", w.Code, tc.want)
			}
		})
	}
}

func TestGenerateSheets_MalformedSetID(t *testing.T) {
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, &fakeRelationService{}))
	if w := do(t, r, http.MethodPost, "/question-sets/xyz/sheets", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestListSheets(t *testing.T) {
	sheets := []domain.QuestionSheet{{ID: "sheet-1"}, {ID: "sheet-2"}}
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{sheets: sheets}, &fakeRelationService{}))

	w := do(t, r, http.MethodGet, "/question-sets/"+validUUID+"/sheets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SheetsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp.Sheets) != 2 {
		t.Fatalf("body = %q (%v)", w.Body.String(), err)
	}
}
