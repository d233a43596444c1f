package controller

import (
	"errors"
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

// StartSession godoc
// @Summary 开始游戏会话
// @Description 开启村庄之旅;已有未结束会话时直接续用
// @Tags 游戏
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.PlaySession} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/game/sessions [post]
func (c *GameController) StartSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.GameService.StartSession(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Questions godoc
// @Summary 第一阶段题目列表
// @Description 返回村庄之旅的全部题面
// @Tags 游戏
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.QuestionView} "成功"
// @Router /api/game/questions [get]
func (c *GameController) Questions(ctx *gin.Context) {
	util.Success(ctx, c.GameService.Questions())
}

// SubmitAnswer godoc
// @Summary 提交单题回答
// @Description 评估一次作答并发放即时XP,重交同一题覆盖旧记录
// @Tags 游戏
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Param   body body service.SubmitInput true "回答"
// @Success 200 {object} util.Response{data=service.SubmitResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "会话或题目不存在"
// @Failure 422 {object} util.Response "回答疑似AI生成"
// @Router /api/game/sessions/{id}/answers [post]
func (c *GameController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))

	result, err := c.GameService.SubmitAnswer(ctx.Request.Context(), claims.UserID, sessionID, input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionFinished), errors.Is(err, util.ErrEmptyAnswer):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAITextRejected):
			util.Error(ctx, 422, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// FinishSession godoc
// @Summary 结算第一阶段
// @Description 加权聚合定级、成就判定与XP重算,然后进入第二阶段
// @Tags 游戏
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Success 200 {object} util.Response{data=service.FinishResult} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/game/sessions/{id}/finish [post]
func (c *GameController) FinishSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))

	result, err := c.GameService.FinishSession(ctx.Request.Context(), claims.UserID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionFinished):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Results godoc
// @Summary 会话结果
// @Description 返回会话概要与逐题评估记录
// @Tags 游戏
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionResults} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/game/sessions/{id}/results [get]
func (c *GameController) Results(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))

	results, err := c.GameService.Results(claims.UserID, sessionID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
