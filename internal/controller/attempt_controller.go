package controller

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/service"
	"codecoach_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	LearnerService *service.LearnerService
}

func NewAttemptController(learnerService *service.LearnerService) *AttemptController {
	return &AttemptController{LearnerService: learnerService}
}

// RecordAttemptRequest 练习记录请求
// swagger:model RecordAttemptRequest
type RecordAttemptRequest struct {
	ProblemID string `json:"problemId" binding:"required"`
	Verdict   string `json:"verdict" binding:"required"`
	ErrorType string `json:"errorType"`
	TimeTaken int    `json:"timeTaken"`
}

// RecordAttempt godoc
// @Summary 记录一次练习
// @Description Accepted 的提交会自动进入间隔复习队列
// @Tags 练习
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body RecordAttemptRequest true "练习结果"
// @Success 201 {object} util.Response{data=model.Attempt}
// @Failure 400 {object} util.Response "未知的判题结果或错误类型"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/attempts [post]
func (c *AttemptController) RecordAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.LearnerService.RecordAttempt(
		user.UserID,
		req.ProblemID,
		model.Verdict(req.Verdict),
		model.ErrorType(req.ErrorType),
		req.TimeTaken,
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// ListAttempts godoc
// @Summary 练习历史
// @Tags 练习
// @Security BearerAuth
// @Produce  json
// @Param   limit query int false "返回条数，默认20"
// @Success 200 {object} util.Response{data=[]model.Attempt}
// @Router /api/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	attempts, err := c.LearnerService.RecentAttempts(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
