package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/logic"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LogicErrorResponse 按业务错误类型映射HTTP状态码
func LogicErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrInvestmentNotFound),
		errors.Is(err, logic.ErrProjectNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrProjectEnded),
		errors.Is(err, logic.ErrProjectNotActive),
		errors.Is(err, logic.ErrStatusNotAllowed):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, logic.ErrMissingField),
		errors.Is(err, logic.ErrAmountNotPositive),
		errors.Is(err, logic.ErrAmountBelowMinimum),
		errors.Is(err, logic.ErrAmountAboveMaximum),
		errors.Is(err, logic.ErrAmountTooSmall),
		errors.Is(err, logic.ErrAmountExceedsValue),
		errors.Is(err, logic.ErrInvalidWithdrawType),
		errors.Is(err, logic.ErrInvalidProject):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
