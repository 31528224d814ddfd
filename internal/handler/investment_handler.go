package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/logic"
)

// InvestmentHandler 投资处理器
type InvestmentHandler struct {
	investmentLogic *logic.InvestmentLogic
}

// NewInvestmentHandler 创建投资处理器
func NewInvestmentHandler(investmentLogic *logic.InvestmentLogic) *InvestmentHandler {
	return &InvestmentHandler{
		investmentLogic: investmentLogic,
	}
}

// RecordInvestment 记录投资
func (h *InvestmentHandler) RecordInvestment(c *gin.Context) {
	var req RecordInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 调用logic层记录投资
	investment, err := h.investmentLogic.RecordInvestment(c.Request.Context(), req.InvestorID, req.ProjectID, req.Amount)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "投资成功", ToInvestmentResponse(investment))
}

// GetInvestorInvestments 获取投资人的投资组合
func (h *InvestmentHandler) GetInvestorInvestments(c *gin.Context) {
	investorID := c.Param("id")

	investments, err := h.investmentLogic.GetInvestorInvestments(c.Request.Context(), investorID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取投资组合成功", ToInvestmentResponseList(investments))
}

// GetProjectInvestments 获取项目投资记录
func (h *InvestmentHandler) GetProjectInvestments(c *gin.Context) {
	projectID := c.Param("id")

	investments, err := h.investmentLogic.GetProjectInvestments(c.Request.Context(), projectID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取项目投资记录成功", ToInvestmentResponseList(investments))
}
