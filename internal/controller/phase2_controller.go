package controller

import (
	"errors"
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type Phase2Controller struct {
	Phase2Service *service.Phase2Service
}

func NewPhase2Controller(phase2Service *service.Phase2Service) *Phase2Controller {
	return &Phase2Controller{Phase2Service: phase2Service}
}

// Progress godoc
// @Summary 第二阶段进度
// @Description 返回全部步骤进度,首次访问时初始化第一步
// @Tags 第二阶段
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Success 200 {object} util.Response{data=[]model.Phase2Progress} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/game/sessions/{id}/phase2 [get]
func (c *Phase2Controller) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))

	list, err := c.Phase2Service.Progress(claims.UserID, sessionID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// SubmitActionItem godoc
// @Summary 提交行动项回答
// @Description 评估一个行动项;该步全部答完后返回通过或补救判定
// @Tags 第二阶段
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Param   stepId path string true "步骤ID"
// @Param   body body service.StepSubmitInput true "回答"
// @Success 200 {object} util.Response{data=service.StepSubmitResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "步骤或行动项不存在"
// @Failure 422 {object} util.Response "回答疑似AI生成"
// @Router /api/game/sessions/{id}/phase2/steps/{stepId}/items [post]
func (c *Phase2Controller) SubmitActionItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.StepSubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))
	stepID := ctx.Param("stepId")

	result, err := c.Phase2Service.SubmitActionItem(ctx.Request.Context(), claims.UserID, sessionID, stepID, input)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// RemedialActivities godoc
// @Summary 当前补救活动集
// @Description 返回该步骤的补救活动及进度索引
// @Tags 第二阶段
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Param   stepId path string true "步骤ID"
// @Success 200 {object} util.Response{data=service.RemedialView} "成功"
// @Failure 404 {object} util.Response "步骤不存在或不在补救态"
// @Router /api/game/sessions/{id}/phase2/steps/{stepId}/remedial [get]
func (c *Phase2Controller) RemedialActivities(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))
	stepID := ctx.Param("stepId")

	view, err := c.Phase2Service.RemedialActivities(claims.UserID, sessionID, stepID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// SubmitRemedial godoc
// @Summary 提交补救活动
// @Description 记录一次补救活动,练完整组后回到闯关
// @Tags 第二阶段
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "会话ID"
// @Param   stepId path string true "步骤ID"
// @Param   body body service.RemedialSubmitInput true "得分"
// @Success 200 {object} util.Response{data=service.RemedialSubmitResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "活动不存在"
// @Router /api/game/sessions/{id}/phase2/steps/{stepId}/remedial [post]
func (c *Phase2Controller) SubmitRemedial(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.RemedialSubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sessionID := util.MustParseUint(ctx.Param("id"))
	stepID := ctx.Param("stepId")

	result, err := c.Phase2Service.SubmitRemedial(ctx.Request.Context(), claims.UserID, sessionID, stepID, input)
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func (c *Phase2Controller) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrStepNotFound),
		errors.Is(err, util.ErrActionItemNotFound),
		errors.Is(err, util.ErrActivityNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrStepNotActive),
		errors.Is(err, util.ErrNotInRemedial),
		errors.Is(err, util.ErrStepInRemedial),
		errors.Is(err, util.ErrEmptyAnswer):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAITextRejected):
		util.Error(ctx, 422, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
