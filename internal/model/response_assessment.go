package model

// ResponseAssessment 单题评估结果,(session_id, question_id) 唯一,重交覆盖
type ResponseAssessment struct {
	BaseModel
	SessionID    uint    `gorm:"uniqueIndex:idx_session_question;not null" json:"session_id"`
	QuestionID   string  `gorm:"uniqueIndex:idx_session_question;size:64;not null" json:"question_id"`
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	QuestionType string  `gorm:"size:32;not null" json:"question_type"`
	Answer       string  `gorm:"type:text" json:"answer"`
	Level        string  `gorm:"size:4;not null" json:"level"`
	Score        float64 `json:"score"`
	Feedback     string  `gorm:"type:text" json:"feedback"`
	// 分项得分,JSON 序列化 map[criterion]note
	SubScores  string `gorm:"type:text" json:"sub_scores"`
	Fallback   bool   `gorm:"default:false" json:"fallback"`
	DurationMS int64  `json:"duration_ms"`
	XPEarned   int    `gorm:"default:0" json:"xp_earned"`
}

func (ResponseAssessment) TableName() string {
	return "response_assessments"
}
