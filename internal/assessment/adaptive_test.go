package assessment

import (
	"math"
	"testing"
	"time"
)

func TestRecordOutcomeRunningAverage(t *testing.T) {
	now := time.Now()
	p := NewPerformance()

	p = RecordOutcome(p, true, now)
	if p.Attempts != 1 || p.SuccessRate != 1.0 {
		t.Errorf("after one success: attempts=%d rate=%v", p.Attempts, p.SuccessRate)
	}

	p = RecordOutcome(p, false, now)
	// (1.0*1 + 0)/2 = 0.5 加权滚动平均
	if math.Abs(p.SuccessRate-0.5) > 1e-9 {
		t.Errorf("rate after success+failure = %v, want 0.5", p.SuccessRate)
	}

	p = RecordOutcome(p, true, now)
	// (0.5*2 + 1)/3 = 0.666...
	if math.Abs(p.SuccessRate-2.0/3.0) > 1e-9 {
		t.Errorf("rate after third outcome = %v, want 0.667", p.SuccessRate)
	}
}

func TestMasteryCapped(t *testing.T) {
	now := time.Now()
	p := NewPerformance()
	for i := 0; i < 20; i++ {
		p = RecordOutcome(p, true, now)
	}
	if p.MasteryLevel != 1.0 {
		t.Errorf("mastery after 20 successes = %v, want capped at 1.0", p.MasteryLevel)
	}
}

func TestIntervalLadder(t *testing.T) {
	now := time.Now()
	p := NewPerformance()

	want := []int{1, 3, 7, 14, 30, 30, 30}
	for i, w := range want {
		p = RecordOutcome(p, true, now)
		if p.IntervalDays != w {
			t.Errorf("success #%d interval = %d, want %d", i+1, p.IntervalDays, w)
		}
	}

	// 失败重置到第一档并清零连对
	p = RecordOutcome(p, false, now)
	if p.IntervalDays != 1 || p.ConsecutiveSuccesses != 0 {
		t.Errorf("after failure: interval=%d consecutive=%d, want 1 and 0",
			p.IntervalDays, p.ConsecutiveSuccesses)
	}

	// 重新爬梯
	p = RecordOutcome(p, true, now)
	if p.IntervalDays != 1 {
		t.Errorf("first success after reset interval = %d, want 1", p.IntervalDays)
	}
	p = RecordOutcome(p, true, now)
	if p.IntervalDays != 3 {
		t.Errorf("second success after reset interval = %d, want 3", p.IntervalDays)
	}
}

func TestEaseFactorClamped(t *testing.T) {
	now := time.Now()
	p := NewPerformance()
	for i := 0; i < 20; i++ {
		p = RecordOutcome(p, true, now)
	}
	if p.EaseFactor > 3.0 {
		t.Errorf("ease factor %v exceeds 3.0", p.EaseFactor)
	}
	for i := 0; i < 20; i++ {
		p = RecordOutcome(p, false, now)
	}
	if p.EaseFactor < 1.3 {
		t.Errorf("ease factor %v below 1.3", p.EaseFactor)
	}
}

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := RecordOutcome(NewPerformance(), true, now)
	want := now.AddDate(0, 0, 1)
	if !p.NextReview.Equal(want) {
		t.Errorf("next review = %v, want %v", p.NextReview, want)
	}
}

func TestRecommendDifficulty(t *testing.T) {
	cases := []struct {
		name  string
		rates []float64
		want  string
		low   bool
	}{
		{"too few records", []float64{1.0, 1.0}, RecommendMaintain, true},
		{"high success", []float64{0.9, 0.8, 0.9}, RecommendIncrease, false},
		{"low success", []float64{0.2, 0.4, 0.3}, RecommendDecrease, false},
		{"middling", []float64{0.6, 0.5, 0.7}, RecommendMaintain, false},
		{"boundary 0.8", []float64{0.8, 0.8, 0.8}, RecommendIncrease, false},
		{"boundary 0.4", []float64{0.4, 0.4, 0.4}, RecommendDecrease, false},
		{"only five considered", []float64{1, 1, 1, 1, 1, 0, 0, 0}, RecommendIncrease, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RecommendDifficulty(c.rates)
			if got.Action != c.want || got.LowConfidence != c.low {
				t.Errorf("RecommendDifficulty(%v) = %+v, want action=%s low=%v",
					c.rates, got, c.want, c.low)
			}
		})
	}
}
