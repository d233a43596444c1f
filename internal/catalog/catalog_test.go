package catalog

import (
	"lingua_quest_backend/internal/assessment"
	"testing"
)

func TestDefaultQuestionScript(t *testing.T) {
	c := Default()

	if len(c.Phase1Questions) != 9 {
		t.Fatalf("expected 9 phase-1 questions, got %d", len(c.Phase1Questions))
	}

	seen := make(map[string]bool)
	for _, q := range c.Phase1Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Type == assessment.TypeListening && q.Expected == "" {
			t.Errorf("listening question %q has no expected sentence", q.ID)
		}
		if q.XPReward <= 0 {
			t.Errorf("question %q has no XP reward", q.ID)
		}
	}
}

func TestStepOrder(t *testing.T) {
	c := Default()

	want := []string{"step_1", "step_2", "step_3", "final_writing"}
	got := c.StepOrder()
	if len(got) != len(want) {
		t.Fatalf("StepOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StepOrder()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemedialSetsCoverEveryStepAndBand(t *testing.T) {
	c := Default()

	bands := []assessment.Level{assessment.LevelA1, assessment.LevelA2, assessment.LevelB1}
	for _, stepID := range c.StepOrder() {
		for _, band := range bands {
			acts, ok := c.RemedialSet(stepID, band)
			if !ok || len(acts) == 0 {
				t.Errorf("no remedial set for (%s, %s)", stepID, band)
				continue
			}
			for _, a := range acts {
				if a.SuccessThreshold > a.MaxScore {
					t.Errorf("activity %q threshold %d exceeds max score %d",
						a.ID, a.SuccessThreshold, a.MaxScore)
				}
			}
		}
	}
}

func TestFindLookups(t *testing.T) {
	c := Default()

	if _, ok := c.FindQuestion("q1_intro"); !ok {
		t.Error("FindQuestion(q1_intro) not found")
	}
	if _, ok := c.FindQuestion("nope"); ok {
		t.Error("FindQuestion(nope) should not be found")
	}

	step, ok := c.FindStep("step_2")
	if !ok {
		t.Fatal("FindStep(step_2) not found")
	}
	item, idx, ok := step.FindActionItem("s2_i3")
	if !ok || idx != 2 || item.ID != "s2_i3" {
		t.Errorf("FindActionItem(s2_i3) = (%v, %d, %v)", item.ID, idx, ok)
	}

	if _, _, ok := c.FindRemedialActivity("step_1", assessment.LevelA1, "step_1_a1_gap"); !ok {
		t.Error("FindRemedialActivity(step_1, A1, step_1_a1_gap) not found")
	}
}

func TestXPRewardFor(t *testing.T) {
	c := Default()

	if got := c.XPRewardFor("q1_intro"); got != 10 {
		t.Errorf("XPRewardFor(q1_intro) = %d, want 10", got)
	}
	if got := c.XPRewardFor("fw_i1"); got != 15 {
		t.Errorf("XPRewardFor(fw_i1) = %d, want 15", got)
	}
	if got := c.XPRewardFor("unknown"); got != 0 {
		t.Errorf("XPRewardFor(unknown) = %d, want 0", got)
	}
}

func TestAchievementDefinitions(t *testing.T) {
	c := Default()

	codes := []string{
		assessment.AchQuickThinker,
		assessment.AchConsistentPerformer,
		assessment.AchVocabularyMaster,
		assessment.AchGrammarExpert,
		assessment.AchCommunicator,
	}
	for _, code := range codes {
		def, ok := c.FindAchievement(code)
		if !ok {
			t.Errorf("achievement %q not defined", code)
			continue
		}
		if def.XP <= 0 {
			t.Errorf("achievement %q has no XP", code)
		}
	}
}

func TestQuestionWeights(t *testing.T) {
	c := Default()

	if w := c.QuestionWeights[assessment.TypeListening]; w != 1.2 {
		t.Errorf("listening weight = %v, want 1.2", w)
	}
	if w := c.QuestionWeights[assessment.TypeWriting]; w != 1.2 {
		t.Errorf("writing weight = %v, want 1.2", w)
	}
	if w := c.QuestionWeights[assessment.TypeIntroduction]; w != 0.8 {
		t.Errorf("introduction weight = %v, want 0.8", w)
	}
}
