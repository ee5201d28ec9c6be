package controller

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/service"
	"codecoach_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// CreateProblemRequest 新建题目请求
// swagger:model CreateProblemRequest
type CreateProblemRequest struct {
	ProblemID   string `json:"problemId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Pattern     string `json:"pattern"`
	Difficulty  string `json:"difficulty" binding:"required"`
	Tags        string `json:"tags"`
	Description string `json:"description"`
}

// CreateProblem godoc
// @Summary 新建题目（管理员）
// @Tags 题库
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   body body CreateProblemRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.Problem}
// @Failure 400 {object} util.Response
// @Router /api/problems [post]
func (c *ProblemController) CreateProblem(ctx *gin.Context) {
	var req CreateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem := &model.Problem{
		ProblemID:   req.ProblemID,
		Title:       req.Title,
		Topic:       req.Topic,
		Pattern:     req.Pattern,
		Difficulty:  model.Difficulty(req.Difficulty),
		Tags:        req.Tags,
		Description: req.Description,
	}

	if err := c.ProblemService.CreateProblem(problem); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, problem)
}

// ListProblems godoc
// @Summary 题目列表
// @Tags 题库
// @Security BearerAuth
// @Produce  json
// @Param   topic query string false "按主题过滤"
// @Param   difficulty query string false "按难度过滤"
// @Param   limit query int false "返回条数，默认50"
// @Success 200 {object} util.Response{data=[]model.Problem}
// @Router /api/problems [get]
func (c *ProblemController) ListProblems(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	problems, err := c.ProblemService.ListProblems(
		ctx.Query("topic"),
		model.Difficulty(ctx.Query("difficulty")),
		limit,
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, problems)
}
