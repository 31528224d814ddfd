package logic

import (
	"context"

	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FundingLogic 融资聚合业务逻辑
type FundingLogic struct {
	gateway storage.Gateway
}

// NewFundingLogic 创建融资聚合业务逻辑
func NewFundingLogic(gateway storage.Gateway) *FundingLogic {
	return &FundingLogic{gateway: gateway}
}

// GetFundingSnapshot 计算项目融资快照
// 每次读取从存续投资记录重新聚合，不缓存结果，避免并发写后读到过期数据
func (l *FundingLogic) GetFundingSnapshot(ctx context.Context, projectID string) (*model.FundingSnapshot, error) {
	if projectID == "" {
		return nil, ErrMissingField
	}

	project, err := l.gateway.GetProject(ctx, projectID)
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	// 目标金额为0或负数时完成度无定义
	if !project.FundingGoal.IsPositive() {
		return nil, ErrInvalidProject
	}

	investments, err := l.gateway.ListProjectInvestments(ctx, projectID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.Amount)
	}

	// 展示用完成度封顶100，TotalInvested保留真实值
	percent := int(total.Div(project.FundingGoal).Mul(hundred).Round(0).IntPart())
	if percent > 100 {
		percent = 100
	}

	return &model.FundingSnapshot{
		ProjectID:     projectID,
		TotalInvested: total,
		InvestorCount: len(investments),
		PercentFunded: percent,
	}, nil
}
