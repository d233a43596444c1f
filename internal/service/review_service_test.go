package service

import (
	"lingua_quest_backend/internal/model"
	"testing"
	"time"
)

// 复习日程把快到期的排前面,难度建议要的是最新的表现
func TestRecentRatesPicksLatestOutcomes(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	record := func(rate float64, updatedDaysAgo int) model.PerformanceRecord {
		r := model.PerformanceRecord{SuccessRate: rate}
		r.UpdatedAt = base.AddDate(0, 0, -updatedDaysAgo)
		return r
	}

	// 按 next_review_at 排序传入:最早到期的是两条很老的低分记录
	records := []model.PerformanceRecord{
		record(0.0, 30),
		record(0.1, 20),
		record(1.0, 1),
		record(0.9, 2),
		record(0.8, 3),
		record(0.9, 4),
		record(1.0, 5),
	}

	rates := recentRates(records)
	if len(rates) != 7 {
		t.Fatalf("len = %d, want 7", len(rates))
	}

	want := []float64{1.0, 0.9, 0.8, 0.9, 1.0, 0.1, 0.0}
	for i, w := range want {
		if rates[i] != w {
			t.Errorf("rates[%d] = %v, want %v", i, rates[i], w)
		}
	}

	// 原切片顺序不被打乱
	if records[0].SuccessRate != 0.0 || records[2].SuccessRate != 1.0 {
		t.Errorf("input slice mutated: %v", records)
	}
}
