package assessment

import "testing"

func mk(level Level, qt QuestionType) Assessment {
	return Assessment{Level: level, Points: level.Points(), QuestionType: qt}
}

func TestAggregateEmptyDefaultsToB1(t *testing.T) {
	if got := AggregateLevel(nil, nil); got != LevelB1 {
		t.Errorf("empty input = %s, want B1", got)
	}
}

func TestAggregateSingleAssessment(t *testing.T) {
	got := AggregateLevel([]Assessment{mk(LevelA2, TypeDialogue)}, nil)
	if got != LevelA2 {
		t.Errorf("single A2 = %s, want A2", got)
	}
}

func TestBandAverageBoundaries(t *testing.T) {
	cases := []struct {
		avg  float64
		want Level
	}{
		{1.0, LevelA1},
		{1.49, LevelA1},
		{1.5, LevelA2}, // 半开区间：恰好1.5落在A2
		{2.49, LevelA2},
		{2.5, LevelB1},
		{3.49, LevelB1},
		{3.5, LevelB2},
		{4.49, LevelB2},
		{4.5, LevelC1},
		{5.0, LevelC1},
	}
	for _, c := range cases {
		if got := BandAverage(c.avg); got != c.want {
			t.Errorf("BandAverage(%v) = %s, want %s", c.avg, got, c.want)
		}
	}
}

func TestAggregateWeighted(t *testing.T) {
	weights := map[QuestionType]float64{
		TypeListening:    1.2,
		TypeWriting:      1.2,
		TypeIntroduction: 0.8,
	}
	// listening B2 (4*1.2) + introduction A1 (1*0.8) = 5.6/2.0 = 2.8 -> B1
	got := AggregateLevel([]Assessment{
		mk(LevelB2, TypeListening),
		mk(LevelA1, TypeIntroduction),
	}, weights)
	if got != LevelB1 {
		t.Errorf("weighted aggregate = %s, want B1", got)
	}
}

func TestAggregateUnknownTypeDefaultsWeight(t *testing.T) {
	weights := map[QuestionType]float64{TypeListening: 1.2}
	// 未登记类型按权重1.0
	got := AggregateLevel([]Assessment{
		mk(LevelB1, QuestionType("mystery")),
		mk(LevelB1, QuestionType("mystery")),
	}, weights)
	if got != LevelB1 {
		t.Errorf("unknown type aggregate = %s, want B1", got)
	}
}

func TestAggregateEndToEndScenario(t *testing.T) {
	// 9道对话题：5个B1 + 4个A2，默认权重 -> (5*3+4*2)/9 = 2.56 -> B1
	var seq []Assessment
	for i := 0; i < 5; i++ {
		seq = append(seq, mk(LevelB1, TypeDialogue))
	}
	for i := 0; i < 4; i++ {
		seq = append(seq, mk(LevelA2, TypeDialogue))
	}
	if got := AggregateLevel(seq, nil); got != LevelB1 {
		t.Errorf("9-question scenario = %s, want B1", got)
	}
}

func TestSkillLevels(t *testing.T) {
	seq := []Assessment{
		mk(LevelB2, TypeListening),
		mk(LevelA2, TypeDialogue),
		mk(LevelB2, TypeListening),
	}
	skills := map[string][]int{
		"listening": {0, 2},
		"speaking":  {1},
	}
	got := SkillLevels(seq, skills, nil)
	if got["listening"] != LevelB2 {
		t.Errorf("listening skill = %s, want B2", got["listening"])
	}
	if got["speaking"] != LevelA2 {
		t.Errorf("speaking skill = %s, want A2", got["speaking"])
	}
}
