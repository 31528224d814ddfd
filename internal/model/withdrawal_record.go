package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalRecord 提现记录（仅追加，不可修改或删除）
type WithdrawalRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`

	InvestorID   string          `json:"investor_id" gorm:"type:varchar(64);not null;index"`
	InvestmentID string          `json:"investment_id" gorm:"type:varchar(64);not null;index"`
	ProjectID    string          `json:"project_id" gorm:"type:varchar(64);not null;index"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	Type         WithdrawalType  `json:"type" gorm:"type:varchar(16);not null"`

	// 提现时点快照
	WithdrawnPercentage decimal.Decimal `json:"withdrawn_percentage" gorm:"type:decimal(8,4);not null"` // 占当时价值的百分比
	OriginalAmount      decimal.Decimal `json:"original_amount" gorm:"type:decimal(15,2);not null"`     // 提现前本金
	CurrentValue        decimal.Decimal `json:"current_value" gorm:"type:decimal(15,2);not null"`       // 提现时当前价值
	ProfitComponent     decimal.Decimal `json:"profit_component" gorm:"type:decimal(15,2);not null"`    // 提现金额中的收益部分
}

// TableName 自定义表名
func (WithdrawalRecord) TableName() string {
	return "withdrawal_record"
}

// WithdrawalType 提现类型
type WithdrawalType string

const (
	WithdrawalTypePartial WithdrawalType = "partial" // 部分提现
	WithdrawalTypeFull    WithdrawalType = "full"    // 全额提现
)
