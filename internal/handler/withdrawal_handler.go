package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/logic"
	"github.com/musistash/mfs/internal/model"
)

// WithdrawalHandler 提现处理器
type WithdrawalHandler struct {
	withdrawalLogic *logic.WithdrawalLogic
}

// NewWithdrawalHandler 创建提现处理器
func NewWithdrawalHandler(withdrawalLogic *logic.WithdrawalLogic) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalLogic: withdrawalLogic,
	}
}

// Withdraw 执行提现
func (h *WithdrawalHandler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 调用logic层执行提现
	record, err := h.withdrawalLogic.Withdraw(
		c.Request.Context(),
		req.InvestorID,
		req.InvestmentID,
		req.Amount,
		model.WithdrawalType(req.Type),
	)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "提现成功", ToWithdrawalRecordResponse(record))
}

// GetInvestorWithdrawals 获取投资人提现历史
func (h *WithdrawalHandler) GetInvestorWithdrawals(c *gin.Context) {
	investorID := c.Param("id")

	records, err := h.withdrawalLogic.GetInvestorWithdrawals(c.Request.Context(), investorID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取提现记录成功", ToWithdrawalRecordResponseList(records))
}
