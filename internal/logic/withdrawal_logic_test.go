package logic

import (
	"context"
	"testing"

	"github.com/musistash/mfs/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withdrawalFixture(gateway *MockGateway) (*model.Project, *model.Investment) {
	project := activeProject("7f4e1c2a-0000-0000-0000-000000000020")
	investment := &model.Investment{
		ID:         "inv-1",
		InvestorID: "investor-a",
		ProjectID:  project.ID,
		Amount:     decimal.NewFromInt(1000),
		Status:     model.InvestmentStatusCompleted,
	}
	gateway.On("GetInvestment", mock.Anything, "inv-1").Return(investment, nil)
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)
	return project, investment
}

func TestWithdraw_PartialConservation(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	// 本金1000，预期回报率10%，当前价值1100
	_, investment := withdrawalFixture(gateway)
	gateway.On("SaveInvestment", mock.Anything, investment).Return(nil)
	gateway.On("AppendWithdrawal", mock.Anything, mock.AnythingOfType("*model.WithdrawalRecord")).Return(nil)

	record, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(550), model.WithdrawalTypePartial)
	require.NoError(t, err)

	// 提现550占当前价值50%，剩余本金500，收益部分50
	assert.True(t, record.WithdrawnPercentage.Equal(decimal.NewFromInt(50)))
	assert.True(t, record.CurrentValue.Equal(decimal.NewFromInt(1100)))
	assert.True(t, record.OriginalAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, record.ProfitComponent.Equal(decimal.NewFromInt(50)))
	assert.True(t, investment.Amount.Equal(decimal.NewFromInt(500)))

	gateway.AssertNotCalled(t, "DeleteInvestment", mock.Anything, mock.Anything)
	gateway.AssertExpectations(t)
}

func TestWithdraw_FullDeletesInvestment(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	_, investment := withdrawalFixture(gateway)
	gateway.On("DeleteInvestment", mock.Anything, investment).Return(nil)
	gateway.On("AppendWithdrawal", mock.Anything, mock.AnythingOfType("*model.WithdrawalRecord")).Return(nil)

	// 全额提现金额强制等于当前价值，不论请求里给的是多少
	record, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(100), model.WithdrawalTypeFull)
	require.NoError(t, err)

	assert.True(t, record.Amount.Equal(decimal.NewFromInt(1100)))
	assert.True(t, record.WithdrawnPercentage.Equal(decimal.NewFromInt(100)))
	assert.True(t, record.ProfitComponent.Equal(decimal.NewFromInt(100)))

	gateway.AssertNotCalled(t, "SaveInvestment", mock.Anything, mock.Anything)
	gateway.AssertExpectations(t)
}

func TestWithdraw_SecondFullRemovesRest(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	_, investment := withdrawalFixture(gateway)
	gateway.On("SaveInvestment", mock.Anything, investment).Return(nil)
	gateway.On("DeleteInvestment", mock.Anything, investment).Return(nil)
	gateway.On("AppendWithdrawal", mock.Anything, mock.AnythingOfType("*model.WithdrawalRecord")).Return(nil)

	// 第一步：部分提现一半
	_, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(550), model.WithdrawalTypePartial)
	require.NoError(t, err)
	require.True(t, investment.Amount.Equal(decimal.NewFromInt(500)))

	// 第二步：按缩减后的当前价值全额提现，记录被删除
	record, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(550), model.WithdrawalTypeFull)
	require.NoError(t, err)
	assert.True(t, record.CurrentValue.Equal(decimal.NewFromInt(550)))
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(550)))

	gateway.AssertExpectations(t)
}

func TestWithdraw_MinimumEnforced(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	_, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(9), model.WithdrawalTypePartial)
	assert.ErrorIs(t, err, ErrAmountTooSmall)

	// 校验失败不触达存储
	gateway.AssertNotCalled(t, "GetInvestment", mock.Anything, mock.Anything)
}

func TestWithdraw_ExceedsCurrentValue(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	withdrawalFixture(gateway)

	_, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(1101), model.WithdrawalTypePartial)
	assert.ErrorIs(t, err, ErrAmountExceedsValue)

	gateway.AssertNotCalled(t, "SaveInvestment", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "AppendWithdrawal", mock.Anything, mock.Anything)
}

func TestWithdraw_OwnershipRequired(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	withdrawalFixture(gateway)

	// 他人的投资记录视同不存在
	_, err := l.Withdraw(context.Background(), "investor-b", "inv-1", decimal.NewFromInt(100), model.WithdrawalTypePartial)
	assert.ErrorIs(t, err, ErrInvestmentNotFound)
}

func TestWithdraw_InvalidType(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	_, err := l.Withdraw(context.Background(), "investor-a", "inv-1", decimal.NewFromInt(100), model.WithdrawalType("half"))
	assert.ErrorIs(t, err, ErrInvalidWithdrawType)
}

func TestWithdraw_DemoProjectZeroROI(t *testing.T) {
	gateway := new(MockGateway)
	l := NewWithdrawalLogic(gateway, testFundingConfig())

	investment := &model.Investment{
		ID:         model.LocalIDPrefix + "abc",
		InvestorID: "investor-a",
		ProjectID:  "3",
		Amount:     decimal.NewFromInt(100),
		Status:     model.InvestmentStatusCompleted,
	}
	gateway.On("GetInvestment", mock.Anything, investment.ID).Return(investment, nil)
	gateway.On("DeleteInvestment", mock.Anything, investment).Return(nil)
	gateway.On("AppendWithdrawal", mock.Anything, mock.AnythingOfType("*model.WithdrawalRecord")).Return(nil)

	// 演示项目按零回报率计算，当前价值等于本金
	record, err := l.Withdraw(context.Background(), "investor-a", investment.ID, decimal.NewFromInt(100), model.WithdrawalTypeFull)
	require.NoError(t, err)
	assert.True(t, record.CurrentValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, record.ProfitComponent.IsZero())

	gateway.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything)
}
