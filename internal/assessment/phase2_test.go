package assessment

import "testing"

var stepOrder = []string{"step_1", "step_2", "step_3", "final_writing"}

func TestEvaluateStepPass(t *testing.T) {
	d := EvaluateStep("step_1", 20, StepPassScore, stepOrder)
	if !d.Passed || d.NeedsRemedial {
		t.Errorf("score 20 must pass, got %+v", d)
	}
	if d.NextStepID != "step_2" {
		t.Errorf("next step = %q, want step_2", d.NextStepID)
	}
}

func TestEvaluateStepFinalStepCompletesPhase(t *testing.T) {
	d := EvaluateStep("final_writing", 25, StepPassScore, stepOrder)
	if !d.Passed || !d.Phase2Complete {
		t.Errorf("passing the final step must complete phase 2, got %+v", d)
	}
	if d.NextStepID != "" {
		t.Errorf("no next step after final, got %q", d.NextStepID)
	}
}

func TestEvaluateStepRemedialBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level Level
	}{
		{19, LevelB1}, // 19 >= 15
		{15, LevelB1},
		{14, LevelA2},
		{10, LevelA2},
		{9, LevelA1},
		{0, LevelA1},
	}
	for _, c := range cases {
		d := EvaluateStep("step_2", c.score, StepPassScore, stepOrder)
		if d.Passed {
			t.Errorf("score %d must not pass", c.score)
		}
		if !d.NeedsRemedial || d.RemedialLevel != c.level {
			t.Errorf("score %d remedial = (%v, %s), want (true, %s)",
				c.score, d.NeedsRemedial, d.RemedialLevel, c.level)
		}
	}
}

func TestEvaluateStepThresholdBoundary(t *testing.T) {
	// 19分触发补救，20分放行
	if d := EvaluateStep("step_1", 19, StepPassScore, stepOrder); !d.NeedsRemedial {
		t.Error("19 must need remedial")
	}
	if d := EvaluateStep("step_1", 20, StepPassScore, stepOrder); d.NeedsRemedial {
		t.Error("20 must advance")
	}
}

func TestRemedialLevelForScoreSafetyNet(t *testing.T) {
	if got := RemedialLevelForScore(20); got != LevelB2 {
		t.Errorf("score 20 safety net = %s, want B2", got)
	}
}

func TestEvaluateStepUnknownStepHasNoNext(t *testing.T) {
	d := EvaluateStep("missing_step", 25, StepPassScore, stepOrder)
	if !d.Phase2Complete {
		t.Errorf("unknown step with passing score treated as terminal, got %+v", d)
	}
}

func TestAdvanceRemedial(t *testing.T) {
	// 达标推进
	d := AdvanceRemedial("act_1", 5, 4, 0, 3)
	if !d.Passed || d.NextIndex != 1 || d.RemedialComplete {
		t.Errorf("passing first of three = %+v", d)
	}

	// 不达标仍然推进索引：按次序耗尽即完成，而非按通过数
	d = AdvanceRemedial("act_2", 1, 4, 1, 3)
	if d.Passed {
		t.Error("score below threshold must not count as passed")
	}
	if d.NextIndex != 2 || d.RemedialComplete {
		t.Errorf("failing second of three = %+v", d)
	}

	// 最后一个活动提交后整组完成
	d = AdvanceRemedial("act_3", 0, 4, 2, 3)
	if !d.RemedialComplete {
		t.Errorf("exhausting the set must complete remedial, got %+v", d)
	}
}
