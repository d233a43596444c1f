package model

// RemedialAttempt 补救活动提交,(user_id, session_id, step_id, activity_id) 唯一,重试覆盖
type RemedialAttempt struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex:idx_remedial_attempt;not null" json:"user_id"`
	SessionID  uint   `gorm:"uniqueIndex:idx_remedial_attempt;not null" json:"session_id"`
	StepID     string `gorm:"uniqueIndex:idx_remedial_attempt;size:32;not null" json:"step_id"`
	ActivityID string `gorm:"uniqueIndex:idx_remedial_attempt;size:64;not null" json:"activity_id"`

	// 补救集评级与活动在集中的位置,进度行被覆盖后仍可追溯
	Level         string `gorm:"size:4" json:"level"`
	ActivityIndex int    `gorm:"default:0" json:"activity_index"`
	Score         int    `json:"score"`
	MaxScore      int    `gorm:"default:0" json:"max_score"`
	Passed        bool   `json:"passed"`
	Attempts      int    `gorm:"default:1" json:"attempts"`
}

func (RemedialAttempt) TableName() string {
	return "remedial_attempts"
}
