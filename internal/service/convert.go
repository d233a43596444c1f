package service

import (
	"encoding/json"
	"fmt"
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/model"
)

// storedDetail 评估明细的持久化形态,整体塞进 sub_scores 列
type storedDetail struct {
	Vocabulary    string   `json:"vocabulary,omitempty"`
	Grammar       string   `json:"grammar,omitempty"`
	Spelling      string   `json:"spelling,omitempty"`
	Fluency       string   `json:"fluency,omitempty"`
	Comprehension string   `json:"comprehension,omitempty"`
	Strengths     []string `json:"strengths,omitempty"`
	Improvements  []string `json:"improvements,omitempty"`
}

// UserKey 排行榜 ZSET 成员名
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func assessmentToModel(userID, sessionID uint, input SubmitInput, a assessment.Assessment) *model.ResponseAssessment {
	detail := storedDetail{
		Vocabulary:    a.Vocabulary,
		Grammar:       a.Grammar,
		Spelling:      a.Spelling,
		Fluency:       a.Fluency,
		Comprehension: a.Comprehension,
		Strengths:     a.Strengths,
		Improvements:  a.Improvements,
	}
	detailJSON, _ := json.Marshal(detail)

	return &model.ResponseAssessment{
		UserID:       userID,
		SessionID:    sessionID,
		QuestionID:   a.QuestionID,
		QuestionType: string(a.QuestionType),
		Answer:       input.Answer,
		Level:        string(a.Level),
		Score:        float64(a.Points),
		Feedback:     a.Justification,
		SubScores:    string(detailJSON),
		Fallback:     a.Fallback,
		DurationMS:   input.DurationMS,
	}
}

func assessmentFromModel(r model.ResponseAssessment) assessment.Assessment {
	var detail storedDetail
	_ = json.Unmarshal([]byte(r.SubScores), &detail)

	level, ok := assessment.ParseLevel(r.Level)
	if !ok {
		level = assessment.LevelB1
	}

	return assessment.Assessment{
		QuestionID:    r.QuestionID,
		QuestionType:  assessment.QuestionType(r.QuestionType),
		Level:         level,
		Points:        level.Points(),
		Justification: r.Feedback,
		Vocabulary:    detail.Vocabulary,
		Grammar:       detail.Grammar,
		Spelling:      detail.Spelling,
		Fluency:       detail.Fluency,
		Comprehension: detail.Comprehension,
		Strengths:     detail.Strengths,
		Improvements:  detail.Improvements,
		Fallback:      r.Fallback,
	}
}
