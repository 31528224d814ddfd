package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LocalIDPrefix 本地生成的投资记录ID前缀
// 远程存储不可用时在本地缓存生成的记录使用该前缀，便于后续回写去重
const LocalIDPrefix = "local-"

// Investment 投资记录
type Investment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InvestorID string           `json:"investor_id" gorm:"type:varchar(64);not null;index"`
	ProjectID  string           `json:"project_id" gorm:"type:varchar(64);not null;index"`
	Amount     decimal.Decimal  `json:"amount" gorm:"type:decimal(15,2);not null"`
	Status     InvestmentStatus `json:"status" gorm:"type:varchar(16);default:'completed'"`
}

// TableName 自定义表名
func (Investment) TableName() string {
	return "investment"
}

// IsLocal 是否为本地缓存生成的记录
func (i *Investment) IsLocal() bool {
	return strings.HasPrefix(i.ID, LocalIDPrefix)
}

// CanonicalInvestmentID 去掉本地前缀后的ID
// 本地降级记录回写远程时保留该ID，使回写前后同一笔投资可按ID对齐去重
func CanonicalInvestmentID(id string) string {
	return strings.TrimPrefix(id, LocalIDPrefix)
}

// InvestmentStatus 投资状态
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"   // 待确认
	InvestmentStatusCompleted InvestmentStatus = "completed" // 已生效
	InvestmentStatusCancelled InvestmentStatus = "cancelled" // 已取消（全额提现或项目结束退回）
)

// IsDemoProjectID 判断是否为演示项目ID
// 正式项目使用生成的UUID，演示项目使用小的顺序数字ID，没有对应的远程存储行
func IsDemoProjectID(projectID string) bool {
	n, err := strconv.Atoi(projectID)
	return err == nil && n > 0 && n < 1000
}
