package domain

import (
	"testing"
	"time"
)

func TestQuestionType_Valid(t *testing.T) {
	if !QuestionTypeFriend.Valid() || !QuestionTypeAccompany.Valid() {
		t.Fatalf("known question types must be valid")
	}
	if QuestionType("ENEMY").Valid() {
		t.Fatalf("unknown question type must be invalid")
	}
}

func TestQuestionCategory_Valid(t *testing.T) {
	for _, c := range []QuestionCategory{
		CategoryDating, CategoryFriendship, CategoryPersonality,
		CategoryEntertainment, CategoryFitness, CategoryAppearance,
		CategoryWork, CategoryHumor, CategoryOther,
	} {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if QuestionCategory("COOKING").Valid() {
		t.Fatalf("unknown category must be invalid")
	}
}

func TestQuestionSet_StatusAt(t *testing.T) {
	pub := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	s := &QuestionSet{PublishedAt: pub, EndAt: end}

	cases := []struct {
		now  time.Time
		want SetStatus
	}{
		{pub.Add(-time.Minute), SetUpcoming},
		{pub, SetActive}, // window is inclusive of PublishedAt
		{pub.Add(time.Hour), SetActive},
		{end, SetTerminated}, // and exclusive of EndAt
		{end.Add(time.Hour), SetTerminated},
	}
	for _, tc := range cases {
		if got := s.StatusAt(tc.now); got != tc.want {
			t.Errorf("StatusAt(%v) = %v; want %v", tc.now, got, tc.want)
		}
	}
}

func TestQuestionSet_QuestionIDs_PreservesOrder(t *testing.T) {
	s := &QuestionSet{Orders: []QuestionOrder{
		{QuestionID: "q1", Position: 0},
		{QuestionID: "q2", Position: 1},
		{QuestionID: "q3", Position: 2},
	}}
	ids := s.QuestionIDs()
	want := []string{"q1", "q2", "q3"}
	if len(ids) != len(want) {
		t.Fatalf("QuestionIDs len = %d; want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("QuestionIDs[%d] = %q; want %q", i, ids[i], want[i])
		}
	}
}

func TestMemberIDList_ValueAndScan(t *testing.T) {
	v, err := MemberIDList{"m1", "m2"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v.(string) != `["m1","m2"]` {
		t.Fatalf("Value = %q", v)
	}

	var out MemberIDList
	if err := out.Scan(`["m1","m2"]`); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if len(out) != 2 || out[0] != "m1" || out[1] != "m2" {
		t.Fatalf("Scan result = %v", out)
	}

	if err := out.Scan([]byte(`["m3"]`)); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if len(out) != 1 || out[0] != "m3" {
		t.Fatalf("Scan result = %v", out)
	}

	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Scan(nil) should yield empty list, got %v", out)
	}

	if err := out.Scan(42); err == nil {
		t.Fatalf("Scan(int) should fail")
	}
}

func TestMemberIDList_NilValueEncodesEmptyArray(t *testing.T) {
	var l MemberIDList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v.(string) != "[]" {
		t.Fatalf("nil list Value = %q; want []", v)
	}
}

func TestTableNames(t *testing.T) {
	if (Question{}).TableName() != "questions" {
		t.Errorf("Question table name mismatch")
	}
	if (QuestionOrder{}).TableName() != "question_orders" {
		t.Errorf("QuestionOrder table name mismatch")
	}
	if (QuestionSet{}).TableName() != "question_sets" {
		t.Errorf("QuestionSet table name mismatch")
	}
	if (QuestionSheet{}).TableName() != "question_sheets" {
		t.Errorf("QuestionSheet table name mismatch")
	}
	if (MemberRelation{}).TableName() != "member_relations" {
		t.Errorf("MemberRelation table name mismatch")
	}
}
