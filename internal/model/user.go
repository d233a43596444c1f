package model

import "time"

// User 玩家账号
type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password     string     `gorm:"size:128;not null" json:"-"`
	Role         string     `gorm:"size:16;default:player" json:"role"`
	Nickname     string     `gorm:"size:64" json:"nickname"`
	Avatar       string     `gorm:"size:256" json:"avatar"`
	CurrentLevel string     `gorm:"size:4;default:B1" json:"current_level"`
	TotalXP      int        `gorm:"default:0" json:"total_xp"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

func (User) TableName() string {
	return "users"
}
