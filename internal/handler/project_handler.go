package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/logic"
	"github.com/musistash/mfs/internal/model"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
	fundingLogic *logic.FundingLogic
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(projectLogic *logic.ProjectLogic, fundingLogic *logic.FundingLogic) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: projectLogic,
		fundingLogic: fundingLogic,
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	project := &model.Project{
		ArtistID:      req.ArtistID,
		Title:         req.Title,
		Description:   req.Description,
		FundingGoal:   req.FundingGoal,
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
		ExpectedROI:   req.ExpectedROI,
		Deadline:      req.Deadline,
	}

	if err := h.projectLogic.CreateProject(c.Request.Context(), project); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", ToProjectResponse(project))
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectLogic.GetProjects(c.Request.Context())
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取项目列表成功", ToProjectResponseList(projects))
}

// GetProject 获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectLogic.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取项目详情成功", ToProjectResponse(project))
}

// ApproveProject 管理员审核通过项目
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	project, err := h.projectLogic.ApproveProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "项目审核通过", ToProjectResponse(project))
}

// EndProject 结束项目
func (h *ProjectHandler) EndProject(c *gin.Context) {
	var req EndProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 调用logic层结束项目，由生命周期规则决定完成还是取消
	project, err := h.projectLogic.EndProject(c.Request.Context(), c.Param("id"), req.EndedBy)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "项目已结束", ToProjectResponse(project))
}

// GetFundingSnapshot 获取项目融资快照
func (h *ProjectHandler) GetFundingSnapshot(c *gin.Context) {
	snapshot, err := h.fundingLogic.GetFundingSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取融资快照成功", ToFundingSnapshotResponse(snapshot))
}
