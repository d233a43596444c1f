package model

import "time"

// Achievement 成就定义,启动时从目录播种
type Achievement struct {
	BaseModel
	Code string `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Name string `gorm:"size:128;not null" json:"name"`
	Icon string `gorm:"size:64" json:"icon"`
	XP   int    `gorm:"default:0" json:"xp"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement 玩家已解锁成就
type UserAchievement struct {
	BaseModel
	UserID    uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"user_id"`
	Code      string    `gorm:"uniqueIndex:idx_user_achievement;size:64;not null" json:"code"`
	SessionID uint      `gorm:"index" json:"session_id"`
	EarnedAt  time.Time `json:"earned_at"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
