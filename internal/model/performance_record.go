package model

import "time"

// PerformanceRecord 活动维度的自适应复习状态,(user_id, activity_id) 唯一
type PerformanceRecord struct {
	BaseModel
	UserID          uint      `gorm:"uniqueIndex:idx_user_activity;not null" json:"user_id"`
	ActivityID      string    `gorm:"uniqueIndex:idx_user_activity;size:64;not null" json:"activity_id"`
	ActivityType    string    `gorm:"size:32" json:"activity_type"`
	Attempts        int       `gorm:"default:0" json:"attempts"`
	SuccessRate     float64   `json:"success_rate"`
	MasteryScore    float64   `json:"mastery_score"`
	ConsecutiveWins int       `gorm:"default:0" json:"consecutive_wins"`
	EaseFactor      float64   `gorm:"default:2.5" json:"ease_factor"`
	IntervalDays    int       `gorm:"default:1" json:"interval_days"`
	NextReviewAt    time.Time `json:"next_review_at"`
	LastOutcome     float64   `json:"last_outcome"`
}

func (PerformanceRecord) TableName() string {
	return "performance_records"
}
