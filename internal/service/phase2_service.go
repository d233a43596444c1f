package service

import (
	"context"
	"lingua_quest_backend/internal/assessment"
	"lingua_quest_backend/internal/catalog"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/repository"
	"lingua_quest_backend/internal/util"
	"lingua_quest_backend/pkg/logger"
	"lingua_quest_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// Phase2Service 第二阶段团队任务:按步闯关,不及格进补救集
type Phase2Service struct {
	SessionRepo    *repository.SessionRepository
	AssessmentRepo *repository.AssessmentRepository
	Phase2Repo     *repository.Phase2Repository
	UserRepo       *repository.UserRepository
	Catalog        *catalog.Catalog
	Game           *GameService
	Review         *ReviewService
	Judge          *JudgeService
	Cfg            *config.Config
}

func NewPhase2Service(
	sessionRepo *repository.SessionRepository,
	assessmentRepo *repository.AssessmentRepository,
	phase2Repo *repository.Phase2Repository,
	userRepo *repository.UserRepository,
	cat *catalog.Catalog,
	game *GameService,
	review *ReviewService,
	judge *JudgeService,
	cfg *config.Config,
) *Phase2Service {
	return &Phase2Service{
		SessionRepo:    sessionRepo,
		AssessmentRepo: assessmentRepo,
		Phase2Repo:     phase2Repo,
		UserRepo:       userRepo,
		Catalog:        cat,
		Game:           game,
		Review:         review,
		Judge:          judge,
		Cfg:            cfg,
	}
}

func (s *Phase2Service) passScore() int {
	if s.Cfg.Game.StepPassScore > 0 {
		return s.Cfg.Game.StepPassScore
	}
	return assessment.StepPassScore
}

// Progress 返回全部步骤进度,首次访问时初始化第一步
func (s *Phase2Service) Progress(userID, sessionID uint) ([]model.Phase2Progress, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.Phase != model.SessionPhase2 {
		return nil, util.ErrStepNotActive
	}

	list, err := s.Phase2Repo.ListProgress(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		order := s.Catalog.StepOrder()
		if len(order) == 0 {
			return nil, util.ErrStepNotFound
		}
		first := &model.Phase2Progress{
			UserID:    userID,
			SessionID: sessionID,
			StepID:    order[0],
			Status:    model.StepStatusActive,
		}
		if err := s.Phase2Repo.UpsertProgress(first); err != nil {
			return nil, err
		}
		list = append(list, *first)
	}
	return list, nil
}

// StepSubmitInput 行动项提交
type StepSubmitInput struct {
	ItemID     string `json:"item_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	DurationMS int64  `json:"duration_ms"`
}

// StepSubmitResult 行动项评估;全部行动项答完后带出步骤判定
type StepSubmitResult struct {
	Assessment assessment.Assessment    `json:"assessment"`
	XPEarned   int                      `json:"xp_earned"`
	StepScore  int                      `json:"step_score"`
	Answered   int                      `json:"answered"`
	TotalItems int                      `json:"total_items"`
	Decision   *assessment.StepDecision `json:"decision,omitempty"`
	Remedial   []catalog.Activity       `json:"remedial,omitempty"`
}

// SubmitActionItem 评估一个行动项。步骤分从已存评估整体重算,
// 重交同一行动项因此是幂等的。
func (s *Phase2Service) SubmitActionItem(ctx context.Context, userID, sessionID uint, stepID string, input StepSubmitInput) (*StepSubmitResult, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.Phase != model.SessionPhase2 {
		return nil, util.ErrStepNotActive
	}

	step, ok := s.Catalog.FindStep(stepID)
	if !ok {
		return nil, util.ErrStepNotFound
	}
	item, _, ok := step.FindActionItem(input.ItemID)
	if !ok {
		return nil, util.ErrActionItemNotFound
	}
	if input.Answer == "" {
		return nil, util.ErrEmptyAnswer
	}

	progress, err := s.Phase2Repo.FindProgress(userID, sessionID, stepID)
	if err != nil {
		return nil, util.ErrStepNotActive
	}
	if err := itemSubmitGuard(progress.Status); err != nil {
		return nil, err
	}

	if s.Judge != nil {
		score := s.Judge.DetectAIScore(ctx, input.Answer)
		if score > s.Cfg.Judge.RejectScore {
			return nil, util.ErrAITextRejected
		}
	}

	question := assessment.Question{
		ID:       item.ID,
		Type:     assessment.TypePhase2Task,
		Prompt:   item.Prompt,
		XPReward: item.XPReward,
	}
	result := s.Game.Assessor.Assess(ctx, question, input.Answer)
	monitoring.AssessmentCounter.WithLabelValues(string(result.QuestionType), string(result.Level)).Inc()

	xp := assessment.SubmissionXP(item.XPReward, result.Level)
	record := assessmentToModel(userID, sessionID, SubmitInput{
		QuestionID: input.ItemID,
		Answer:     input.Answer,
		DurationMS: input.DurationMS,
	}, result)
	record.XPEarned = xp
	if err := s.AssessmentRepo.Upsert(record); err != nil {
		return nil, err
	}
	if err := s.UserRepo.AddXP(userID, xp); err != nil {
		return nil, err
	}
	s.Game.bumpLeaderboard(ctx, userID, float64(xp))

	stepScore, answered := s.stepScore(sessionID, step)
	progress.StepScore = stepScore

	out := &StepSubmitResult{
		Assessment: result,
		XPEarned:   xp,
		StepScore:  stepScore,
		Answered:   answered,
		TotalItems: len(step.Items),
	}

	if answered >= len(step.Items) {
		decision := assessment.EvaluateStep(stepID, stepScore, s.passScore(), s.Catalog.StepOrder())
		out.Decision = &decision

		if decision.Passed {
			progress.Status = model.StepStatusPassed
			if decision.Phase2Complete {
				if err := s.completeSession(session); err != nil {
					return nil, err
				}
			} else if err := s.openStep(userID, sessionID, decision.NextStepID); err != nil {
				return nil, err
			}
		} else {
			progress.Status = model.StepStatusRemedial
			progress.RemedialLevel = string(decision.RemedialLevel)
			progress.RemedialIndex = 0
			if acts, ok := s.Catalog.RemedialSet(stepID, decision.RemedialLevel); ok {
				out.Remedial = acts
			}
		}
	}

	if err := s.Phase2Repo.UpsertProgress(progress); err != nil {
		return nil, err
	}
	return out, nil
}

// itemSubmitGuard 只有 active 状态的步骤接受行动项回答;
// 进了补救集就必须先练完,不能回头刷题把分冲过线
func itemSubmitGuard(status string) error {
	switch status {
	case model.StepStatusPassed:
		return util.ErrStepNotActive
	case model.StepStatusRemedial:
		return util.ErrStepInRemedial
	}
	return nil
}

// stepScore 汇总该步骤所有已答行动项的等级点数
func (s *Phase2Service) stepScore(sessionID uint, step catalog.Step) (score, answered int) {
	for _, item := range step.Items {
		record, err := s.AssessmentRepo.FindBySessionQuestion(sessionID, item.ID)
		if err != nil {
			continue
		}
		level, ok := assessment.ParseLevel(record.Level)
		if !ok {
			continue
		}
		score += level.Points()
		answered++
	}
	return score, answered
}

func (s *Phase2Service) openStep(userID, sessionID uint, stepID string) error {
	next := &model.Phase2Progress{
		UserID:    userID,
		SessionID: sessionID,
		StepID:    stepID,
		Status:    model.StepStatusActive,
	}
	return s.Phase2Repo.UpsertProgress(next)
}

func (s *Phase2Service) completeSession(session *model.PlaySession) error {
	now := time.Now()
	session.Phase = model.SessionFinished
	session.FinishedAt = &now
	if err := s.SessionRepo.Update(session); err != nil {
		return err
	}
	monitoring.SessionFinishedCounter.WithLabelValues(session.OverallLevel).Inc()
	logger.Log.Info("session finished",
		zap.Uint("session_id", session.ID),
		zap.String("overall_level", session.OverallLevel))
	return nil
}

// RemedialSubmitInput 补救活动提交,客观题由前端计分
type RemedialSubmitInput struct {
	ActivityID string `json:"activity_id" binding:"required"`
	Score      int    `json:"score" binding:"min=0"`
}

// RemedialSubmitResult 补救活动判定
type RemedialSubmitResult struct {
	Decision   assessment.RemedialDecision `json:"decision"`
	StepStatus string                      `json:"step_status"`
}

// SubmitRemedial 记录一次补救活动。索引随每次提交前进,不要求每项都
// 及格;练完整组后步骤打回 active,从第一个行动项重答——过关只能靠
// 主线步骤自己攒够分数。
func (s *Phase2Service) SubmitRemedial(ctx context.Context, userID, sessionID uint, stepID string, input RemedialSubmitInput) (*RemedialSubmitResult, error) {
	session, err := s.SessionRepo.FindOwned(sessionID, userID)
	if err != nil {
		return nil, util.ErrSessionNotFound
	}
	if session.Phase != model.SessionPhase2 {
		return nil, util.ErrStepNotActive
	}

	progress, err := s.Phase2Repo.FindProgress(userID, sessionID, stepID)
	if err != nil {
		return nil, util.ErrStepNotFound
	}
	if progress.Status != model.StepStatusRemedial {
		return nil, util.ErrNotInRemedial
	}

	level, ok := assessment.ParseLevel(progress.RemedialLevel)
	if !ok {
		return nil, util.ErrNotInRemedial
	}

	activity, activityIndex, ok := s.Catalog.FindRemedialActivity(stepID, level, input.ActivityID)
	if !ok {
		return nil, util.ErrActivityNotFound
	}
	acts, _ := s.Catalog.RemedialSet(stepID, level)

	decision := assessment.AdvanceRemedial(
		activity.ID, input.Score, activity.SuccessThreshold,
		progress.RemedialIndex, len(acts))

	attempt := remedialAttemptRecord(userID, sessionID, stepID, level, activityIndex, activity, input.Score, decision.Passed)
	if err := s.Phase2Repo.UpsertAttempt(attempt); err != nil {
		return nil, err
	}

	// 喂给间隔复习追踪器
	if s.Review != nil {
		if err := s.Review.RecordOutcome(userID, activity.ID, activity.Type, decision.Passed); err != nil {
			logger.Log.Warn("record review outcome failed", zap.Error(err))
		}
	}

	progress.RemedialIndex = decision.NextIndex
	if decision.RemedialComplete {
		if err := s.clearStepAnswers(sessionID, stepID); err != nil {
			return nil, err
		}
		resetStepForRetry(progress)
	}
	if err := s.Phase2Repo.UpsertProgress(progress); err != nil {
		return nil, err
	}

	return &RemedialSubmitResult{
		Decision:   decision,
		StepStatus: progress.Status,
	}, nil
}

// remedialAttemptRecord 固化一次补救提交的完整上下文,
// 进度行上的评级和索引之后会被覆盖,这里留档
func remedialAttemptRecord(userID, sessionID uint, stepID string, level assessment.Level, activityIndex int, activity catalog.Activity, score int, passed bool) *model.RemedialAttempt {
	return &model.RemedialAttempt{
		UserID:        userID,
		SessionID:     sessionID,
		StepID:        stepID,
		ActivityID:    activity.ID,
		Level:         string(level),
		ActivityIndex: activityIndex,
		Score:         score,
		MaxScore:      activity.MaxScore,
		Passed:        passed,
	}
}

// resetStepForRetry 补救练完后步骤回到 active,从零重答
func resetStepForRetry(progress *model.Phase2Progress) {
	progress.Status = model.StepStatusActive
	progress.StepScore = 0
	progress.RemedialLevel = ""
	progress.RemedialIndex = 0
}

// clearStepAnswers 清掉该步骤已存的行动项作答,重试从零计分
func (s *Phase2Service) clearStepAnswers(sessionID uint, stepID string) error {
	step, ok := s.Catalog.FindStep(stepID)
	if !ok {
		return util.ErrStepNotFound
	}
	ids := make([]string, 0, len(step.Items))
	for _, item := range step.Items {
		ids = append(ids, item.ID)
	}
	return s.AssessmentRepo.DeleteByQuestions(sessionID, ids)
}

// RemedialView 当前补救集、进度索引与历史尝试
type RemedialView struct {
	Activities   []catalog.Activity      `json:"activities"`
	CurrentIndex int                     `json:"current_index"`
	Attempts     []model.RemedialAttempt `json:"attempts"`
}

func (s *Phase2Service) RemedialActivities(userID, sessionID uint, stepID string) (*RemedialView, error) {
	progress, err := s.Phase2Repo.FindProgress(userID, sessionID, stepID)
	if err != nil {
		return nil, util.ErrStepNotFound
	}
	if progress.Status != model.StepStatusRemedial {
		return nil, util.ErrNotInRemedial
	}
	level, ok := assessment.ParseLevel(progress.RemedialLevel)
	if !ok {
		return nil, util.ErrNotInRemedial
	}
	acts, ok := s.Catalog.RemedialSet(stepID, level)
	if !ok {
		return nil, util.ErrActivityNotFound
	}

	attempts, err := s.Phase2Repo.ListAttempts(userID, sessionID, stepID)
	if err != nil {
		return nil, err
	}

	return &RemedialView{
		Activities:   acts,
		CurrentIndex: progress.RemedialIndex,
		Attempts:     attempts,
	}, nil
}
