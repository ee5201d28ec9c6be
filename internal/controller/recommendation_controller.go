package controller

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/service"
	"codecoach_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// CompleteRecommendationRequest 完成推荐请求
// swagger:model CompleteRecommendationRequest
type CompleteRecommendationRequest struct {
	Solved *bool `json:"solved" binding:"required"`
}

// Generate godoc
// @Summary 重新生成推荐
// @Description 旧的 Pending 批次会被整批取代
// @Tags 推荐
// @Security BearerAuth
// @Produce  json
// @Param   top_k query int false "推荐条数，默认5"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "top_k 非法"
// @Router /api/recommendations/generate [post]
func (c *RecommendationController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topK := c.RecommendationService.Cfg.Recommendation.DefaultTopK
	if raw := ctx.Query("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "top_k must be an integer")
			return
		}
		topK = parsed
	}

	recs, err := c.RecommendationService.Generate(user.UserID, topK)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// List godoc
// @Summary 查询推荐列表
// @Tags 推荐
// @Security BearerAuth
// @Produce  json
// @Param   status query string false "Pending/Completed/NotSolved，默认Pending"
// @Param   limit query int false "返回条数，默认10"
// @Success 200 {object} util.Response{data=object}
// @Router /api/recommendations [get]
func (c *RecommendationController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	status := model.RecommendationStatus(ctx.DefaultQuery("status", string(model.RecPending)))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	recs, err := c.RecommendationService.List(user.UserID, status, limit)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// Complete godoc
// @Summary 完成一条推荐
// @Description 每条推荐只允许完成一次；solved=true 时题目进入复习队列
// @Tags 推荐
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path int true "推荐ID"
// @Param   body body CompleteRecommendationRequest true "是否解出"
// @Success 200 {object} util.Response{data=model.Recommendation}
// @Failure 404 {object} util.Response "推荐不存在或不属于当前用户"
// @Failure 409 {object} util.Response "推荐已被处理过"
// @Router /api/recommendations/{id}/complete [post]
func (c *RecommendationController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req CompleteRecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, err := c.RecommendationService.Complete(user.UserID, uint(id), *req.Solved)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, rec)
}
