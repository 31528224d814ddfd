package logic

import (
	"context"

	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
	"github.com/shopspring/decimal"
)

// InvestmentLogic 投资记录业务逻辑
type InvestmentLogic struct {
	gateway storage.Gateway
	cfg     config.FundingConfig
}

// NewInvestmentLogic 创建投资记录业务逻辑
func NewInvestmentLogic(gateway storage.Gateway, cfg config.FundingConfig) *InvestmentLogic {
	return &InvestmentLogic{gateway: gateway, cfg: cfg}
}

// RecordInvestment 记录一笔投资
// 金额校验统一收在这里，不依赖调用方提前检查
// 演示项目（小的顺序数字ID）不查远程项目行，直接走本地缓存
func (l *InvestmentLogic) RecordInvestment(ctx context.Context, investorID, projectID string, amount decimal.Decimal) (*model.Investment, error) {
	if investorID == "" || projectID == "" {
		return nil, ErrMissingField
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}
	if amount.LessThan(decimal.NewFromInt(l.cfg.MinInvestment)) {
		return nil, ErrAmountBelowMinimum
	}

	if !model.IsDemoProjectID(projectID) {
		project, err := l.gateway.GetProject(ctx, projectID)
		switch {
		case err == nil:
			if project.Status != model.ProjectStatusActive {
				return nil, ErrProjectNotActive
			}

			// 项目级投资上下限
			if project.MinInvestment.IsPositive() && amount.LessThan(project.MinInvestment) {
				return nil, ErrAmountBelowMinimum
			}
			if project.MaxInvestment.IsPositive() && amount.GreaterThan(project.MaxInvestment) {
				return nil, ErrAmountAboveMaximum
			}
		case err == storage.ErrRecordNotFound:
			return nil, ErrProjectNotFound
		default:
			// 远程故障时跳过项目级校验，继续写入，由存储网关降级到本地缓存
			logger.Warn("Project lookup failed, skipping project-level checks: %v", err)
		}
	}

	investment := &model.Investment{
		InvestorID: investorID,
		ProjectID:  projectID,
		Amount:     amount,
		Status:     model.InvestmentStatusCompleted,
	}

	if err := l.gateway.CreateInvestment(ctx, investment); err != nil {
		return nil, err
	}

	return investment, nil
}

// GetInvestorInvestments 获取投资人的存续投资（远程与本地缓存的合并视图）
func (l *InvestmentLogic) GetInvestorInvestments(ctx context.Context, investorID string) ([]model.Investment, error) {
	if investorID == "" {
		return nil, ErrMissingField
	}
	return l.gateway.ListInvestorInvestments(ctx, investorID)
}

// GetProjectInvestments 获取项目的存续投资
func (l *InvestmentLogic) GetProjectInvestments(ctx context.Context, projectID string) ([]model.Investment, error) {
	if projectID == "" {
		return nil, ErrMissingField
	}
	return l.gateway.ListProjectInvestments(ctx, projectID)
}
