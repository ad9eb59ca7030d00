package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pickme-app/pick-backend/internal/domain"
	"github.com/pickme-app/pick-backend/internal/services"
)

func TestCreateRelationHandler(t *testing.T) {
	rel := &domain.MemberRelation{ID: "rel-1", FromID: "u1", ToID: "m-1", Relation: domain.RelationAccompany}
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, &fakeRelationService{rel: rel}))

	w := do(t, r, http.MethodPost, "/relations", `{"to_id":"m-1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	var got domain.MemberRelation
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Relation != domain.RelationAccompany {
		t.Fatalf("body = %q (%v)", w.Body.String(), err)
	}
}

func TestCreateRelationHandler_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing to_id", `{}`, nil, http.StatusBadRequest},
		{"blank to_id", `{"to_id":"  "}`, nil, http.StatusBadRequest},
		{"self", `{"to_id":"u1"}`, services.ErrSelfRelation, http.StatusBadRequest},
		{"duplicate", `{"to_id":"m-1"}`, services.ErrRelationExists, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, &fakeRelationService{err: tc.err}))
			if w := do(t, r, http.MethodPost, "/relations", tc.body); w.Code != tc.want {
				t.Fatalf("status = %d; want %d", w.Code, tc.want)
			}
		})
	}
}

func TestPromoteRelationHandler(t *testing.T) {
	fr := &fakeRelationService{}
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, fr))

	w := do(t, r, http.MethodPut, "/relations/m-1/friend", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204", w.Code)
	}
	if fr.promotedFrom != "u1" || fr.promotedTo != "m-1" {
		t.Fatalf("promoted %s -> %s", fr.promotedFrom, fr.promotedTo)
	}
}

func TestPromoteRelationHandler_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing relation", services.ErrFriendNotFound, http.StatusNotFound},
		{"already friend", services.ErrAlreadyFriend, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, &fakeRelationService{err: tc.err}))
			if w := do(t, r, http.MethodPut, "/relations/m-1/friend", ""); w.Code != tc.want {
				t.Fatalf("status = %d; want %d", w.Code, tc.want)
			}
		})
	}
}

func TestListRelationHandlers(t *testing.T) {
	fr := &fakeRelationService{ids: []string{"m-1", "m-2"}}
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, fr))

	for _, path := range []string{"/relations", "/relations/friends"} {
		w := do(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", path, w.Code)
		}
		var resp RelationIDsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp.MemberIDs) != 2 {
			t.Fatalf("GET %s body = %q (%v)", path, w.Body.String(), err)
		}
	}
}

func TestListRelationHandlers_EmptyIsArray(t *testing.T) {
	r := testRouter(New(&fakeQuestionService{}, &fakeSetService{}, &fakeSheetService{}, &fakeRelationService{}))

	w := do(t, r, http.MethodGet, "/relations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	// nil slices must serialize as [] so clients can iterate unconditionally.
	if got := w.Body.String(); got != `{"member_ids":[]}` {
		t.Fatalf("body = %q", got)
	}
}
