package assessment

import "testing"

func TestSubmissionXPTruncation(t *testing.T) {
	cases := []struct {
		reward int
		level  Level
		want   int
	}{
		{15, LevelB1, 22}, // 15*1.5 = 22.5 -> 22，截断不是四舍五入
		{15, LevelA1, 15},
		{15, LevelA2, 18},
		{15, LevelB2, 27},
		{15, LevelC1, 30},
		{10, LevelB1, 15},
		{0, LevelC1, 0},
	}
	for _, c := range cases {
		if got := SubmissionXP(c.reward, c.level); got != c.want {
			t.Errorf("SubmissionXP(%d, %s) = %d, want %d", c.reward, c.level, got, c.want)
		}
	}
}

func TestSessionXP(t *testing.T) {
	rewards := map[string]int{"q1": 10, "q2": 10}
	lookup := func(id string) int { return rewards[id] }

	seq := []Assessment{
		{QuestionID: "q1", Level: LevelB1}, // 10 + 1.5*5 = 17.5
		{QuestionID: "q2", Level: LevelA1}, // 10 + 1.0*5 = 15
	}
	// 32.5 -> 32 截断一次
	if got := SessionXP(seq, lookup); got != 32 {
		t.Errorf("SessionXP = %d, want 32", got)
	}

	if got := SessionXP(nil, lookup); got != 0 {
		t.Errorf("empty session XP = %d, want 0", got)
	}
}
