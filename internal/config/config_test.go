package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port default = %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode default = %q", cfg.GinMode)
	}
	if cfg.DBPath != "app.db" {
		t.Errorf("DBPath default = %q", cfg.DBPath)
	}
	if cfg.QuestionSet.Size != 12 {
		t.Errorf("QuestionSet.Size default = %d", cfg.QuestionSet.Size)
	}
	if cfg.QuestionSet.FriendRatio != 0.5 {
		t.Errorf("FriendRatio default = %v", cfg.QuestionSet.FriendRatio)
	}
	if cfg.QuestionSet.OpenTime1.String() != "09:00" || cfg.QuestionSet.OpenTime2.String() != "21:00" {
		t.Errorf("open time defaults = %v / %v", cfg.QuestionSet.OpenTime1, cfg.QuestionSet.OpenTime2)
	}
	if cfg.CandidateLimit != 8 {
		t.Errorf("CandidateLimit default = %d", cfg.CandidateLimit)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Errorf("APIBasePath default = %q", cfg.APIBasePath)
	}
}

func TestLoad_OverridesAndValidation(t *testing.T) {
	t.Setenv("QUESTION_SET_SIZE", "6")
	t.Setenv("QUESTION_SET_FRIEND_RATIO", "0.25")
	t.Setenv("QUESTION_SET_OPEN_TIME_1", "08:30")
	t.Setenv("QUESTION_SET_OPEN_TIME_2", "20:30")
	t.Setenv("CANDIDATE_POOL_LIMIT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QuestionSet.Size != 6 || cfg.QuestionSet.FriendRatio != 0.25 {
		t.Fatalf("overrides not applied: %+v", cfg.QuestionSet)
	}
	if cfg.QuestionSet.OpenTime1 != (OpenTime{Hour: 8, Minute: 30}) {
		t.Fatalf("OpenTime1 = %v", cfg.QuestionSet.OpenTime1)
	}
	if cfg.CandidateLimit != 4 {
		t.Fatalf("CandidateLimit = %d", cfg.CandidateLimit)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"ratio above one":     {"QUESTION_SET_FRIEND_RATIO", "1.5"},
		"zero size":           {"QUESTION_SET_SIZE", "0"},
		"open times reversed": {"QUESTION_SET_OPEN_TIME_1", "22:00"},
		"candidate limit":     {"CANDIDATE_POOL_LIMIT", "0"},
		"bad log level":       {"LOG_LEVEL", "verbose"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestParseOpenTime(t *testing.T) {
	got, err := ParseOpenTime("09:00")
	if err != nil || got.Hour != 9 || got.Minute != 0 {
		t.Fatalf("ParseOpenTime(09:00) = %v, %v", got, err)
	}
	got, err = ParseOpenTime("21:45")
	if err != nil || got.Hour != 21 || got.Minute != 45 {
		t.Fatalf("ParseOpenTime(21:45) = %v, %v", got, err)
	}
	for _, bad := range []string{"", "9", "25:00", "10:75", "abc"} {
		if _, err := ParseOpenTime(bad); err == nil {
			t.Errorf("ParseOpenTime(%q) should fail", bad)
		}
	}
}

func TestOpenTime_OnAndMatches(t *testing.T) {
	o := OpenTime{Hour: 21, Minute: 0}
	day := time.Date(2025, 3, 10, 7, 13, 42, 0, time.UTC)
	at := o.On(day)
	if at.Hour() != 21 || at.Minute() != 0 || at.Day() != 10 {
		t.Fatalf("On = %v", at)
	}
	if !o.Matches(at) {
		t.Fatalf("Matches should hold for its own instant")
	}
	if o.Matches(day) {
		t.Fatalf("Matches should not hold for 07:13")
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/":    "/api",
		"/api/v1/": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}
