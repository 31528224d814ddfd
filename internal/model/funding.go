package model

import (
	"github.com/shopspring/decimal"
)

// FundingSnapshot 项目融资快照
// 由存续投资记录实时计算得出，不落库，每次读取重新聚合
type FundingSnapshot struct {
	ProjectID     string          `json:"project_id"`
	TotalInvested decimal.Decimal `json:"total_invested"` // 存续投资本金合计（不封顶）
	InvestorCount int             `json:"investor_count"` // 存续投资笔数
	PercentFunded int             `json:"percent_funded"` // 展示用完成度，封顶100
}
