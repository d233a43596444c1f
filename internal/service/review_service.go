package service

import (
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/repository"
	"sort"
	"time"
)

// ReviewService 间隔复习追踪:滚动成功率、掌握度与复习日程
type ReviewService struct {
	PerformanceRepo *repository.PerformanceRepository
}

func NewReviewService(performanceRepo *repository.PerformanceRepository) *ReviewService {
	return &ReviewService{PerformanceRepo: performanceRepo}
}

// RecordOutcome 把一次成败折进 (user, activity) 的滚动统计
func (s *ReviewService) RecordOutcome(userID uint, activityID, activityType string, success bool) error {
	record, err := s.PerformanceRepo.FindByUserActivity(userID, activityID)
	if err != nil {
		record = &model.PerformanceRecord{
			UserID:       userID,
			ActivityID:   activityID,
			ActivityType: activityType,
		}
	}

	p := performanceFromModel(record)
	p = assessment.RecordOutcome(p, success, time.Now())
	applyPerformance(record, p)

	outcome := 0.0
	if success {
		outcome = 1.0
	}
	record.LastOutcome = outcome

	return s.PerformanceRepo.Upsert(record)
}

// DueReviews 复习日期已到的活动
func (s *ReviewService) DueReviews(userID uint) ([]model.PerformanceRecord, error) {
	return s.PerformanceRepo.ListDue(userID, time.Now())
}

func (s *ReviewService) AllRecords(userID uint) ([]model.PerformanceRecord, error) {
	return s.PerformanceRepo.ListByUser(userID)
}

// Recommendation 基于最近活动表现给出难度调整建议
func (s *ReviewService) Recommendation(userID uint) (assessment.Recommendation, error) {
	records, err := s.PerformanceRepo.ListByUser(userID)
	if err != nil {
		return assessment.Recommendation{}, err
	}
	return assessment.RecommendDifficulty(recentRates(records)), nil
}

// recentRates 按最近更新降序排出成功率,建议只看最新的表现,
// 不受复习日程排序影响
func recentRates(records []model.PerformanceRecord) []float64 {
	sorted := make([]model.PerformanceRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	rates := make([]float64, 0, len(sorted))
	for _, r := range sorted {
		rates = append(rates, r.SuccessRate)
	}
	return rates
}

func performanceFromModel(r *model.PerformanceRecord) assessment.Performance {
	p := assessment.Performance{
		Attempts:             r.Attempts,
		SuccessRate:          r.SuccessRate,
		MasteryLevel:         r.MasteryScore,
		ConsecutiveSuccesses: r.ConsecutiveWins,
		IntervalDays:         r.IntervalDays,
		EaseFactor:           r.EaseFactor,
		NextReview:           r.NextReviewAt,
	}
	if p.EaseFactor == 0 {
		p = assessment.NewPerformance()
	}
	return p
}

func applyPerformance(r *model.PerformanceRecord, p assessment.Performance) {
	r.Attempts = p.Attempts
	r.SuccessRate = p.SuccessRate
	r.MasteryScore = p.MasteryLevel
	r.ConsecutiveWins = p.ConsecutiveSuccesses
	r.IntervalDays = p.IntervalDays
	r.EaseFactor = p.EaseFactor
	r.NextReviewAt = p.NextReview
}
