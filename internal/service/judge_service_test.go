package service

import (
	"lingua_quest_backend/internal/assessment"
	"testing"
)

func TestParseJudgmentValid(t *testing.T) {
	content := `{"level":"B2","justification":"solid answer","sub_scores":{"grammar":"Excellent control"},"strengths":["clear structure"],"improvements":["wider vocabulary"]}`

	j, err := parseJudgment(content)
	if err != nil {
		t.Fatalf("parseJudgment() error: %v", err)
	}
	if j.Level != assessment.LevelB2 {
		t.Errorf("level = %v, want B2", j.Level)
	}
	if j.SubScores["grammar"] != "Excellent control" {
		t.Errorf("grammar sub-score = %q", j.SubScores["grammar"])
	}
	if len(j.Strengths) != 1 || len(j.Improvements) != 1 {
		t.Errorf("strengths/improvements = %v / %v", j.Strengths, j.Improvements)
	}
}

func TestParseJudgmentFenced(t *testing.T) {
	content := "```json\n{\"level\":\"A2\",\"justification\":\"short answer\"}\n```"

	j, err := parseJudgment(content)
	if err != nil {
		t.Fatalf("parseJudgment() error: %v", err)
	}
	if j.Level != assessment.LevelA2 {
		t.Errorf("level = %v, want A2", j.Level)
	}
}

func TestParseJudgmentRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "the learner is roughly B1"},
		{"level above ceiling", `{"level":"C2","justification":"native-like"}`},
		{"unknown level", `{"level":"D1","justification":"?"}`},
		{"empty level", `{"justification":"missing band"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseJudgment(tt.content); err == nil {
				t.Errorf("parseJudgment(%q) expected error", tt.content)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
