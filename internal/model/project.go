package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project 艺人融资项目
type Project struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	ArtistID    string `json:"artist_id" gorm:"type:varchar(64);not null;index"`
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`

	// 融资信息
	FundingGoal   decimal.Decimal `json:"funding_goal" gorm:"type:decimal(15,2);not null"`
	MinInvestment decimal.Decimal `json:"min_investment" gorm:"type:decimal(15,2);default:0"`
	MaxInvestment decimal.Decimal `json:"max_investment" gorm:"type:decimal(15,2);default:0"`
	ExpectedROI   decimal.Decimal `json:"expected_roi" gorm:"type:decimal(5,2);default:0"` // 预期回报率（百分比）

	// 时间信息
	Deadline time.Time `json:"deadline" gorm:"not null"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"type:varchar(16);default:'draft'"`

	// 结束信息
	EndedBy string     `json:"ended_by" gorm:"type:varchar(64)"`
	EndedAt *time.Time `json:"ended_at"`
}

// TableName 自定义表名
func (Project) TableName() string {
	return "project"
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"     // 草稿
	ProjectStatusPending   ProjectStatus = "pending"   // 待审核
	ProjectStatusActive    ProjectStatus = "active"    // 进行中
	ProjectStatusFunded    ProjectStatus = "funded"    // 已达标
	ProjectStatusCompleted ProjectStatus = "completed" // 已完成
	ProjectStatusCancelled ProjectStatus = "cancelled" // 已取消
)

// IsTerminal 是否为终态
func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}
