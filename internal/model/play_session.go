package model

import "time"

// 会话阶段
const (
	SessionPhase1   = "phase1"
	SessionPhase2   = "phase2"
	SessionFinished = "finished"
)

// PlaySession 一局游戏,从开场对话到最终评级
type PlaySession struct {
	BaseModel
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Phase        string     `gorm:"size:16;default:phase1" json:"phase"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"`
	OverallLevel string     `gorm:"size:4" json:"overall_level"`
	TotalXP      int        `gorm:"default:0" json:"total_xp"`
	// 各技能评级,JSON 序列化 map[skill]level
	SkillLevels string `gorm:"type:text" json:"skill_levels"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PlaySession) TableName() string {
	return "play_sessions"
}
