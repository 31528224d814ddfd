package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnRecord 退回记录
// 项目结束后为每笔存续投资生成一条，由后台任务处理
// 只是逻辑上的退回标记，系统不做真实资金划转
type ReturnRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID    string          `json:"project_id" gorm:"type:varchar(64);not null;index"`
	InvestmentID string          `json:"investment_id" gorm:"type:varchar(64);not null;index"`
	InvestorID   string          `json:"investor_id" gorm:"type:varchar(64);not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	Status       ReturnStatus    `json:"status" gorm:"type:varchar(16);default:'pending'"`
	Reason       string          `json:"reason" gorm:"type:text"`
}

// TableName 自定义表名
func (ReturnRecord) TableName() string {
	return "return_record"
}

// ReturnStatus 退回状态
type ReturnStatus string

const (
	ReturnStatusPending   ReturnStatus = "pending"   // 待处理
	ReturnStatusCompleted ReturnStatus = "completed" // 已完成
	ReturnStatusFailed    ReturnStatus = "failed"    // 失败
)
