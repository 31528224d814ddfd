package logic

import "errors"

// 业务错误
// 校验类错误在任何存储I/O之前同步返回，调用方修正输入后重试
var (
	ErrMissingField       = errors.New("缺少必填字段")
	ErrAmountNotPositive  = errors.New("金额必须大于0")
	ErrAmountBelowMinimum = errors.New("投资金额低于最小限制")
	ErrAmountAboveMaximum = errors.New("投资金额超过最大限制")

	ErrAmountTooSmall      = errors.New("提现金额低于最小限制")
	ErrAmountExceedsValue  = errors.New("提现金额超过投资当前价值")
	ErrInvalidWithdrawType = errors.New("无效的提现类型")

	ErrInvestmentNotFound = errors.New("投资记录不存在")
	ErrProjectNotFound    = errors.New("项目不存在")
	ErrInvalidProject     = errors.New("项目目标金额无效")
	ErrProjectNotActive   = errors.New("项目不在进行中")
	ErrProjectEnded       = errors.New("项目已结束")
	ErrStatusNotAllowed   = errors.New("项目状态不允许该操作")
)
