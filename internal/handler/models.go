package handler

import (
	"time"

	"github.com/musistash/mfs/internal/model"
	"github.com/shopspring/decimal"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 请求模型

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	ArtistID      string          `json:"artist_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	FundingGoal   decimal.Decimal `json:"funding_goal" binding:"required"`
	MinInvestment decimal.Decimal `json:"min_investment"`
	MaxInvestment decimal.Decimal `json:"max_investment"`
	ExpectedROI   decimal.Decimal `json:"expected_roi"`
	Deadline      time.Time       `json:"deadline" binding:"required"`
}

// RecordInvestmentRequest 投资请求
type RecordInvestmentRequest struct {
	InvestorID string          `json:"investor_id" binding:"required"`
	ProjectID  string          `json:"project_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// WithdrawRequest 提现请求
type WithdrawRequest struct {
	InvestorID   string          `json:"investor_id" binding:"required"`
	InvestmentID string          `json:"investment_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required"`
}

// EndProjectRequest 结束项目请求
type EndProjectRequest struct {
	EndedBy string `json:"ended_by" binding:"required"`
}

// 响应模型

// ProjectResponse 项目响应模型
type ProjectResponse struct {
	ID            string          `json:"id"`
	ArtistID      string          `json:"artistId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	FundingGoal   decimal.Decimal `json:"fundingGoal"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	MaxInvestment decimal.Decimal `json:"maxInvestment"`
	ExpectedROI   decimal.Decimal `json:"expectedRoi"`
	Deadline      time.Time       `json:"deadline"`
	Status        string          `json:"status"`
	EndedBy       string          `json:"endedBy,omitempty"`
	EndedAt       *time.Time      `json:"endedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InvestmentResponse 投资记录响应模型
type InvestmentResponse struct {
	ID         string          `json:"id"`
	InvestorID string          `json:"investorId"`
	ProjectID  string          `json:"projectId"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// WithdrawalRecordResponse 提现记录响应模型
type WithdrawalRecordResponse struct {
	ID                  string          `json:"id"`
	InvestorID          string          `json:"investorId"`
	InvestmentID        string          `json:"investmentId"`
	ProjectID           string          `json:"projectId"`
	Amount              decimal.Decimal `json:"amount"`
	Type                string          `json:"type"`
	WithdrawnPercentage decimal.Decimal `json:"withdrawnPercentage"`
	OriginalAmount      decimal.Decimal `json:"originalAmount"`
	CurrentValue        decimal.Decimal `json:"currentValue"`
	ProfitComponent     decimal.Decimal `json:"profitComponent"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// FundingSnapshotResponse 融资快照响应模型
type FundingSnapshotResponse struct {
	ProjectID     string          `json:"projectId"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	InvestorCount int             `json:"investorCount"`
	PercentFunded int             `json:"percentFunded"`
}

// 转换函数

// ToProjectResponse 将数据库模型转换为响应模型
func ToProjectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:            project.ID,
		ArtistID:      project.ArtistID,
		Title:         project.Title,
		Description:   project.Description,
		FundingGoal:   project.FundingGoal,
		MinInvestment: project.MinInvestment,
		MaxInvestment: project.MaxInvestment,
		ExpectedROI:   project.ExpectedROI,
		Deadline:      project.Deadline,
		Status:        string(project.Status),
		EndedBy:       project.EndedBy,
		EndedAt:       project.EndedAt,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

// ToProjectResponseList 批量转换项目模型
func ToProjectResponseList(projects []model.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, ToProjectResponse(&projects[i]))
	}
	return result
}

// ToInvestmentResponse 将数据库模型转换为响应模型
func ToInvestmentResponse(inv *model.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:         inv.ID,
		InvestorID: inv.InvestorID,
		ProjectID:  inv.ProjectID,
		Amount:     inv.Amount,
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt,
	}
}

// ToInvestmentResponseList 批量转换投资记录
func ToInvestmentResponseList(investments []model.Investment) []InvestmentResponse {
	result := make([]InvestmentResponse, 0, len(investments))
	for i := range investments {
		result = append(result, ToInvestmentResponse(&investments[i]))
	}
	return result
}

// ToWithdrawalRecordResponse 将数据库模型转换为响应模型
func ToWithdrawalRecordResponse(rec *model.WithdrawalRecord) WithdrawalRecordResponse {
	return WithdrawalRecordResponse{
		ID:                  rec.ID,
		InvestorID:          rec.InvestorID,
		InvestmentID:        rec.InvestmentID,
		ProjectID:           rec.ProjectID,
		Amount:              rec.Amount,
		Type:                string(rec.Type),
		WithdrawnPercentage: rec.WithdrawnPercentage,
		OriginalAmount:      rec.OriginalAmount,
		CurrentValue:        rec.CurrentValue,
		ProfitComponent:     rec.ProfitComponent,
		CreatedAt:           rec.CreatedAt,
	}
}

// ToWithdrawalRecordResponseList 批量转换提现记录
func ToWithdrawalRecordResponseList(records []model.WithdrawalRecord) []WithdrawalRecordResponse {
	result := make([]WithdrawalRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, ToWithdrawalRecordResponse(&records[i]))
	}
	return result
}

// ToFundingSnapshotResponse 将融资快照转换为响应模型
func ToFundingSnapshotResponse(snapshot *model.FundingSnapshot) FundingSnapshotResponse {
	return FundingSnapshotResponse{
		ProjectID:     snapshot.ProjectID,
		TotalInvested: snapshot.TotalInvested,
		InvestorCount: snapshot.InvestorCount,
		PercentFunded: snapshot.PercentFunded,
	}
}
