package service

import (
	"context"
	"encoding/json"
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/catalog"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/repository"
	"lingua_quest_backend/internal/util"
	"lingua_quest_backend/pkg/logger"
	"lingua_quest_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardKey = "leaderboard:xp"

// GameService 第一阶段村庄之旅:开局、逐题作答、结算
type GameService struct {
	SessionRepo     *repository.SessionRepository
	AssessmentRepo  *repository.AssessmentRepository
	UserRepo        *repository.UserRepository
	AchievementRepo *repository.AchievementRepository
	Catalog         *catalog.Catalog
	Assessor        *assessment.Assessor
	Judge           *JudgeService
	Redis           *redis.Client
	Cfg             *config.Config
}

func NewGameService(
	sessionRepo *repository.SessionRepository,
	assessmentRepo *repository.AssessmentRepository,
	userRepo *repository.UserRepository,
	achievementRepo *repository.AchievementRepository,
	cat *catalog.Catalog,
	judge *JudgeService,
	rdb *redis.Client,
	cfg *config.Config,
) *GameService {
	var j assessment.Judge
	if judge != nil && judge.Enabled() {
		j = judge
	}
	assessor := assessment.NewAssessor(j, cat.RubricWeights, cat.WorkedExamples)
	assessor.OnFallback = func(qt assessment.QuestionType, reason string) {
		monitoring.JudgeFallbackCounter.Inc()
		logger.Log.Warn("judge fallback",
			zap.String("question_type", string(qt)),
			zap.String("reason", reason))
	}

	return &GameService{
		SessionRepo:     sessionRepo,
		AssessmentRepo:  assessmentRepo,
		UserRepo:        userRepo,
		AchievementRepo: achievementRepo,
		Catalog:         cat,
		Assessor:        assessor,
		Judge:           judge,
		Redis:           rdb,
		Cfg:             cfg,
	}
}

// StartSession 已有未结束会话时直接续用
func (s *GameService) StartSession(userID uint) (*model.PlaySession, error) {
	active, err := s.SessionRepo.FindActive(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}

	session := &model.PlaySession{
		UserID:    userID,
		Phase:     model.SessionPhase1,
		StartedAt: time.Now(),
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// QuestionView 下发给前端的题面,听力题不暴露标准句
type QuestionView struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Prompt   string `json:"prompt"`
	Skill    string `json:"skill"`
	XPReward int    `json:"xp_reward"`
}

func (s *GameService) Questions() []QuestionView {
	views := make([]QuestionView, 0, len(s.Catalog.Phase1Questions))
	for _, q := range s.Catalog.Phase1Questions {
		views = append(views, QuestionView{
			ID:       q.ID,
			Type:     string(q.Type),
			Prompt:   q.Prompt,
			Skill:    q.Skill,
			XPReward: q.XPReward,
		})
	}
	return views
}

// SubmitInput 单题提交
type SubmitInput struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	DurationMS int64  `json:"duration_ms"`
}

// SubmitResult 单题评估结果与即时XP
type SubmitResult struct {
	Assessment assessment.Assessment `json:"assessment"`
	XPEarned   int                   `json:"xp_earned"`
}

// SubmitAnswer 评估一次作答。重交同一题覆盖旧记录;即时XP按截断的
// 单题公式发放,结算时整段重算。
func (s *GameService) SubmitAnswer(ctx context.Context, userID, sessionID uint, input SubmitInput) (*SubmitResult, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.Phase == model.SessionFinished {
		return nil, util.ErrSessionFinished
	}

	question, ok := s.Catalog.FindQuestion(input.QuestionID)
	if !ok {
		return nil, util.ErrQuestionNotFound
	}
	if input.Answer == "" {
		return nil, util.ErrEmptyAnswer
	}

	// 自由文本题先过AI文本检测
	if question.Type != assessment.TypeListening && s.Judge != nil {
		score := s.Judge.DetectAIScore(ctx, input.Answer)
		if score > s.Cfg.Judge.RejectScore {
			logger.Log.Info("answer rejected by AI detector",
				zap.Uint("user_id", userID),
				zap.Float64("score", score))
			return nil, util.ErrAITextRejected
		}
	}

	result := s.Assessor.Assess(ctx, question, input.Answer)
	monitoring.AssessmentCounter.WithLabelValues(string(result.QuestionType), string(result.Level)).Inc()

	xp := assessment.SubmissionXP(question.XPReward, result.Level)

	record := assessmentToModel(userID, sessionID, input, result)
	record.XPEarned = xp
	if err := s.AssessmentRepo.Upsert(record); err != nil {
		return nil, err
	}

	if err := s.UserRepo.AddXP(userID, xp); err != nil {
		return nil, err
	}
	s.bumpLeaderboard(ctx, userID, float64(xp))

	return &SubmitResult{Assessment: result, XPEarned: xp}, nil
}

// FinishResult 会话结算
type FinishResult struct {
	OverallLevel string                      `json:"overall_level"`
	SkillLevels  map[string]assessment.Level `json:"skill_levels"`
	TotalXP      int                         `json:"total_xp"`
	Achievements []string                    `json:"achievements"`
	Description  string                      `json:"description"`
}

// FinishSession 结算第一阶段:加权聚合定级、成就判定、整段XP重算,
// 然后把会话切到第二阶段。
func (s *GameService) FinishSession(ctx context.Context, userID, sessionID uint) (*FinishResult, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.Phase == model.SessionFinished {
		return nil, util.ErrSessionFinished
	}

	records, err := s.AssessmentRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	assessments := make([]assessment.Assessment, 0, len(records))
	for _, r := range records {
		assessments = append(assessments, assessmentFromModel(r))
	}

	overall := assessment.AggregateLevel(assessments, s.Catalog.QuestionWeights)
	skills := assessment.SkillLevels(assessments, s.skillIndex(assessments), s.Catalog.QuestionWeights)
	totalXP := assessment.SessionXP(assessments, s.Catalog.XPRewardFor)

	now := time.Now()
	codes := assessment.CalculateAchievements(assessments, session.StartedAt, now)
	for _, code := range codes {
		granted, err := s.AchievementRepo.Grant(userID, code, sessionID)
		if err != nil {
			logger.Log.Error("grant achievement failed", zap.String("code", code), zap.Error(err))
			continue
		}
		if granted {
			if def, ok := s.Catalog.FindAchievement(code); ok {
				totalXP += def.XP
			}
		}
	}

	skillJSON, _ := json.Marshal(skills)
	session.Phase = model.SessionPhase2
	session.OverallLevel = string(overall)
	session.TotalXP = totalXP
	session.SkillLevels = string(skillJSON)
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateLevel(userID, string(overall)); err != nil {
		return nil, err
	}
	s.syncLeaderboard(ctx, userID)

	return &FinishResult{
		OverallLevel: string(overall),
		SkillLevels:  skills,
		TotalXP:      totalXP,
		Achievements: codes,
		Description:  s.Catalog.LevelInfo[overall],
	}, nil
}

// SessionResults 会话结果视图:会话概要加逐题评估记录
type SessionResults struct {
	Session     *model.PlaySession         `json:"session"`
	Assessments []model.ResponseAssessment `json:"assessments"`
}

func (s *GameService) Results(userID, sessionID uint) (*SessionResults, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	records, err := s.AssessmentRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionResults{Session: session, Assessments: records}, nil
}

// skillIndex 按技能分组评估下标,无技能标注的归到题型名下
func (s *GameService) skillIndex(assessments []assessment.Assessment) map[string][]int {
	idx := make(map[string][]int)
	for i, a := range assessments {
		skill := string(a.QuestionType)
		if q, ok := s.Catalog.FindQuestion(a.QuestionID); ok && q.Skill != "" {
			skill = q.Skill
		}
		idx[skill] = append(idx[skill], i)
	}
	return idx
}

func (s *GameService) bumpLeaderboard(ctx context.Context, userID uint, xp float64) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.ZIncrBy(ctx, leaderboardKey, xp, UserKey(userID)).Err(); err != nil {
		logger.Log.Warn("leaderboard bump failed", zap.Error(err))
	}
}

// syncLeaderboard 以数据库为准覆盖榜上分数
func (s *GameService) syncLeaderboard(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return
	}
	if err := s.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(user.TotalXP),
		Member: UserKey(userID),
	}).Err(); err != nil {
		logger.Log.Warn("leaderboard sync failed", zap.Error(err))
	}
}
