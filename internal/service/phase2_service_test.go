package service

import (
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/catalog"
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/util"
	"testing"
)

func TestItemSubmitGuard(t *testing.T) {
	cases := []struct {
		status string
		want   error
	}{
		{model.StepStatusActive, nil},
		{model.StepStatusPassed, util.ErrStepNotActive},
		{model.StepStatusRemedial, util.ErrStepInRemedial},
	}

	for _, c := range cases {
		if got := itemSubmitGuard(c.status); got != c.want {
			t.Errorf("itemSubmitGuard(%q) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestResetStepForRetryReturnsToActive(t *testing.T) {
	progress := &model.Phase2Progress{
		UserID:        7,
		SessionID:     3,
		StepID:        "step_1",
		StepScore:     9,
		Status:        model.StepStatusRemedial,
		RemedialLevel: "A1",
		RemedialIndex: 3,
	}

	resetStepForRetry(progress)

	if progress.Status != model.StepStatusActive {
		t.Errorf("status = %q, want %q", progress.Status, model.StepStatusActive)
	}
	if progress.StepScore != 0 {
		t.Errorf("step score = %d, want 0", progress.StepScore)
	}
	if progress.RemedialLevel != "" || progress.RemedialIndex != 0 {
		t.Errorf("remedial state not cleared: level=%q index=%d", progress.RemedialLevel, progress.RemedialIndex)
	}
	if progress.StepID != "step_1" {
		t.Errorf("step id changed to %q", progress.StepID)
	}
}

func TestRemedialAttemptRecordKeepsContext(t *testing.T) {
	activity := catalog.Activity{
		ID:               "step_1_a1_gap",
		Type:             "fill_gap",
		SuccessThreshold: 4,
		MaxScore:         6,
	}

	attempt := remedialAttemptRecord(7, 3, "step_1", assessment.LevelA1, 1, activity, 5, true)

	if attempt.Level != "A1" {
		t.Errorf("level = %q, want A1", attempt.Level)
	}
	if attempt.ActivityIndex != 1 {
		t.Errorf("activity index = %d, want 1", attempt.ActivityIndex)
	}
	if attempt.MaxScore != 6 {
		t.Errorf("max score = %d, want 6", attempt.MaxScore)
	}
	if attempt.ActivityID != "step_1_a1_gap" || attempt.Score != 5 || !attempt.Passed {
		t.Errorf("attempt = %+v", attempt)
	}
}
