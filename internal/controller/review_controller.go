package controller

import (
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// OutcomeInput 单次练习成败上报
type OutcomeInput struct {
	ActivityID   string `json:"activity_id" binding:"required"`
	ActivityType string `json:"activity_type"`
	Success      bool   `json:"success"`
}

// RecordOutcome godoc
// @Summary 上报练习结果
// @Description 把一次练习成败折进该活动的滚动统计并更新复习日程
// @Tags 复习
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body controller.OutcomeInput true "练习结果"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/reviews/outcomes [post]
func (c *ReviewController) RecordOutcome(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input OutcomeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ReviewService.RecordOutcome(claims.UserID, input.ActivityID, input.ActivityType, input.Success); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// DueReviews godoc
// @Summary 到期复习列表
// @Description 返回复习日期已到的活动
// @Tags 复习
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PerformanceRecord} "成功"
// @Router /api/reviews/due [get]
func (c *ReviewController) DueReviews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ReviewService.DueReviews(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// AllRecords godoc
// @Summary 全部表现记录
// @Description 返回玩家所有活动的滚动统计,按下次复习时间排序
// @Tags 复习
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.PerformanceRecord} "成功"
// @Router /api/reviews [get]
func (c *ReviewController) AllRecords(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ReviewService.AllRecords(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Recommendation godoc
// @Summary 难度调整建议
// @Description 基于最近活动表现给出增减难度建议
// @Tags 复习
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=assessment.Recommendation} "成功"
// @Router /api/reviews/recommendation [get]
func (c *ReviewController) Recommendation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rec, err := c.ReviewService.Recommendation(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}
