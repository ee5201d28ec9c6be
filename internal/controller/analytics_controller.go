package controller

import (
	"codecoach_backend/internal/service"
	"codecoach_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	LearnerService   *service.LearnerService
	DashboardService *service.DashboardService
}

func NewAnalyticsController(learnerService *service.LearnerService, dashboardService *service.DashboardService) *AnalyticsController {
	return &AnalyticsController{
		LearnerService:   learnerService,
		DashboardService: dashboardService,
	}
}

// GetWeaknesses godoc
// @Summary 弱点排名
// @Description 主题与模式按掌握度升序混排
// @Tags 分析
// @Security BearerAuth
// @Produce  json
// @Param   limit query int false "返回条数，默认5"
// @Success 200 {object} util.Response{data=[]model.Weakness}
// @Router /api/analytics/weaknesses [get]
func (c *AnalyticsController) GetWeaknesses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	weaknesses, err := c.LearnerService.Weaknesses(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"weaknesses": weaknesses})
}

// GetErrorPatterns godoc
// @Summary 高频错误类型
// @Tags 分析
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/analytics/errors [get]
func (c *AnalyticsController) GetErrorPatterns(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	patterns, err := c.LearnerService.ErrorPatterns(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"errorPatterns": patterns})
}

// GetDashboard godoc
// @Summary 学习面板
// @Description 总览统计 + 弱点 Top5 + 最近提交
// @Tags 分析
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} util.Response{data=model.DashboardStats}
// @Router /api/analytics/dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.DashboardService.GetDashboard(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
