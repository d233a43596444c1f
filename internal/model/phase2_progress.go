package model

// 第二阶段步骤状态
const (
	StepStatusActive   = "active"
	StepStatusRemedial = "remedial"
	StepStatusPassed   = "passed"
)

// Phase2Progress 第二阶段按步推进,(user_id, session_id, step_id) 唯一
type Phase2Progress struct {
	BaseModel
	UserID    uint   `gorm:"uniqueIndex:idx_user_session_step;not null" json:"user_id"`
	SessionID uint   `gorm:"uniqueIndex:idx_user_session_step;not null" json:"session_id"`
	StepID    string `gorm:"uniqueIndex:idx_user_session_step;size:32;not null" json:"step_id"`
	StepScore int    `gorm:"default:0" json:"step_score"`
	Status    string `gorm:"size:16;default:active" json:"status"`
	// 补救集评级,仅 remedial 状态有值
	RemedialLevel string `gorm:"size:4" json:"remedial_level"`
	RemedialIndex int    `gorm:"default:0" json:"remedial_index"`
}

func (Phase2Progress) TableName() string {
	return "phase2_progress"
}
