package service

import (
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/model"
	"testing"
)

func TestAssessmentFromModelDefaultsBadLevel(t *testing.T) {
	record := model.ResponseAssessment{
		QuestionID:   "q1_intro",
		QuestionType: "introduction",
		Level:        "C2", // 超出 A1..C1 的值
	}

	a := assessmentFromModel(record)
	if a.Level != assessment.LevelB1 {
		t.Errorf("level = %v, want B1 fallback", a.Level)
	}
	if a.Points != assessment.LevelB1.Points() {
		t.Errorf("points = %d, want %d", a.Points, assessment.LevelB1.Points())
	}
}

func TestAssessmentDetailSurvivesStorage(t *testing.T) {
	in := assessment.Assessment{
		QuestionID:   "q8_writing",
		QuestionType: assessment.TypeWriting,
		Level:        assessment.LevelB2,
		Points:       assessment.LevelB2.Points(),
		Vocabulary:   "advanced range",
		Grammar:      "Excellent control",
		Strengths:    []string{"clear structure"},
	}

	record := assessmentToModel(7, 3, SubmitInput{QuestionID: in.QuestionID, Answer: "text"}, in)
	out := assessmentFromModel(*record)

	if out.Vocabulary != in.Vocabulary || out.Grammar != in.Grammar {
		t.Errorf("sub-scores lost: %q / %q", out.Vocabulary, out.Grammar)
	}
	if len(out.Strengths) != 1 || out.Strengths[0] != "clear structure" {
		t.Errorf("strengths lost: %v", out.Strengths)
	}
	if out.Level != assessment.LevelB2 {
		t.Errorf("level = %v, want B2", out.Level)
	}
}
