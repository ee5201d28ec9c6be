package controller

import (
	"codecoach_backend/internal/service"
	"codecoach_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type RevisionController struct {
	RevisionService *service.RevisionService
	DefaultDueLimit int
}

func NewRevisionController(revisionService *service.RevisionService, defaultDueLimit int) *RevisionController {
	return &RevisionController{
		RevisionService: revisionService,
		DefaultDueLimit: defaultDueLimit,
	}
}

// CompleteRevisionRequest 完成复习请求
// swagger:model CompleteRevisionRequest
type CompleteRevisionRequest struct {
	Solved *bool `json:"solved" binding:"required"`
}

// GetDue godoc
// @Summary 到期复习列表
// @Description 最逾期的在前，附带复习队列计数
// @Tags 复习
// @Security BearerAuth
// @Produce  json
// @Param   as_of query string false "截止日期 YYYY-MM-DD，默认今天"
// @Param   limit query int false "返回条数，默认5"
// @Success 200 {object} util.Response{data=object}
// @Router /api/revisions/due [get]
func (c *RevisionController) GetDue(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	asOf := time.Now()
	if raw := ctx.Query("as_of"); raw != "" {
		parsed, err := time.Parse(util.DateFormat, raw)
		if err != nil {
			util.BadRequest(ctx, "as_of must be formatted as YYYY-MM-DD")
			return
		}
		// 当天到期的条目也算到期
		asOf = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(c.DefaultDueLimit)))

	entries, stats, err := c.RevisionService.Due(user.UserID, asOf, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"revisions": entries,
		"stats":     stats,
	})
}

// Complete godoc
// @Summary 完成一次复习
// @Description 成功推进间隔指针（封顶60天），失败重置回1天
// @Tags 复习
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   problemId path string true "题目编号"
// @Param   body body CompleteRevisionRequest true "是否记得"
// @Success 200 {object} util.Response{data=model.RevisionEntry}
// @Failure 404 {object} util.Response "没有对应的复习条目"
// @Router /api/revisions/{problemId}/complete [post]
func (c *RevisionController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteRevisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.RevisionService.Complete(user.UserID, ctx.Param("problemId"), time.Now(), *req.Solved)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}
