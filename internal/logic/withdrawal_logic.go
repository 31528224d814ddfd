package logic

import (
	"context"

	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
	"github.com/shopspring/decimal"
)

// WithdrawalLogic 提现业务逻辑
type WithdrawalLogic struct {
	gateway storage.Gateway
	cfg     config.FundingConfig
}

// NewWithdrawalLogic 创建提现业务逻辑
func NewWithdrawalLogic(gateway storage.Gateway, cfg config.FundingConfig) *WithdrawalLogic {
	return &WithdrawalLogic{gateway: gateway, cfg: cfg}
}

// Withdraw 执行提现
// 当前价值 = 本金 × (1 + 预期回报率/100)，是投影值而非已实现收益
// 全额提现删除投资记录，部分提现按提现占比缩减本金
// 投资记录变更和提现记录追加两步在缓存路径上不保证原子
func (l *WithdrawalLogic) Withdraw(ctx context.Context, investorID, investmentID string, amount decimal.Decimal, wType model.WithdrawalType) (*model.WithdrawalRecord, error) {
	if investorID == "" || investmentID == "" {
		return nil, ErrMissingField
	}
	if wType != model.WithdrawalTypePartial && wType != model.WithdrawalTypeFull {
		return nil, ErrInvalidWithdrawType
	}
	if amount.LessThan(decimal.NewFromInt(l.cfg.MinWithdrawal)) {
		return nil, ErrAmountTooSmall
	}

	investment, err := l.gateway.GetInvestment(ctx, investmentID)
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil, ErrInvestmentNotFound
		}
		return nil, err
	}
	// 归属校验，他人的投资记录视同不存在
	if investment.InvestorID != investorID {
		return nil, ErrInvestmentNotFound
	}

	roi, err := l.expectedROI(ctx, investment.ProjectID)
	if err != nil {
		return nil, err
	}

	principal := investment.Amount
	currentValue := principal.Mul(hundred.Add(roi)).Div(hundred).Round(2)
	potentialProfit := currentValue.Sub(principal)

	if amount.GreaterThan(currentValue) {
		return nil, ErrAmountExceedsValue
	}

	// 全额提现金额强制等于当前价值
	if wType == model.WithdrawalTypeFull {
		amount = currentValue
	}

	// 超额校验在前，走到这里currentValue必然大于0
	withdrawnPct := amount.Div(currentValue).Mul(hundred)
	profitComponent := amount.Mul(potentialProfit).Div(currentValue).Round(2)

	record := &model.WithdrawalRecord{
		InvestorID:          investorID,
		InvestmentID:        investmentID,
		ProjectID:           investment.ProjectID,
		Amount:              amount,
		Type:                wType,
		WithdrawnPercentage: withdrawnPct.Round(4),
		OriginalAmount:      principal,
		CurrentValue:        currentValue,
		ProfitComponent:     profitComponent,
	}

	if wType == model.WithdrawalTypeFull {
		if err := l.gateway.DeleteInvestment(ctx, investment); err != nil {
			return nil, err
		}
	} else {
		investment.Amount = principal.Mul(hundred.Sub(withdrawnPct)).Div(hundred).Round(2)
		if err := l.gateway.SaveInvestment(ctx, investment); err != nil {
			return nil, err
		}
	}

	if err := l.gateway.AppendWithdrawal(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// expectedROI 获取项目预期回报率，演示项目按0处理
func (l *WithdrawalLogic) expectedROI(ctx context.Context, projectID string) (decimal.Decimal, error) {
	if model.IsDemoProjectID(projectID) {
		return decimal.Zero, nil
	}

	project, err := l.gateway.GetProject(ctx, projectID)
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return decimal.Zero, ErrProjectNotFound
		}
		return decimal.Zero, err
	}
	return project.ExpectedROI, nil
}

// GetInvestorWithdrawals 获取投资人提现历史
func (l *WithdrawalLogic) GetInvestorWithdrawals(ctx context.Context, investorID string) ([]model.WithdrawalRecord, error) {
	if investorID == "" {
		return nil, ErrMissingField
	}
	return l.gateway.ListInvestorWithdrawals(ctx, investorID)
}
