package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFundingConfig() config.FundingConfig {
	return config.FundingConfig{
		MinInvestment: 50,
		MinWithdrawal: 10,
	}
}

func activeProject(id string) *model.Project {
	return &model.Project{
		ID:          id,
		ArtistID:    "artist-1",
		Title:       "新专辑制作",
		FundingGoal: decimal.NewFromInt(1000),
		ExpectedROI: decimal.NewFromInt(10),
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		Status:      model.ProjectStatusActive,
	}
}

func TestRecordInvestment_Success(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000001")
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)
	gateway.On("CreateInvestment", mock.Anything, mock.AnythingOfType("*model.Investment")).Return(nil)

	inv, err := l.RecordInvestment(context.Background(), "investor-a", project.ID, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, "investor-a", inv.InvestorID)
	assert.Equal(t, project.ID, inv.ProjectID)
	assert.True(t, inv.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, model.InvestmentStatusCompleted, inv.Status)

	gateway.AssertExpectations(t)
}

func TestRecordInvestment_Validation(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())
	ctx := context.Background()

	// 校验失败在任何存储调用之前返回
	_, err := l.RecordInvestment(ctx, "", "p", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = l.RecordInvestment(ctx, "investor-a", "p", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrAmountNotPositive)

	_, err = l.RecordInvestment(ctx, "investor-a", "p", decimal.NewFromInt(49))
	assert.ErrorIs(t, err, ErrAmountBelowMinimum)

	gateway.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything)
}

func TestRecordInvestment_ProjectBounds(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000002")
	project.MinInvestment = decimal.NewFromInt(100)
	project.MaxInvestment = decimal.NewFromInt(500)
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)

	_, err := l.RecordInvestment(context.Background(), "investor-a", project.ID, decimal.NewFromInt(80))
	assert.ErrorIs(t, err, ErrAmountBelowMinimum)

	_, err = l.RecordInvestment(context.Background(), "investor-a", project.ID, decimal.NewFromInt(600))
	assert.ErrorIs(t, err, ErrAmountAboveMaximum)

	gateway.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything)
}

func TestRecordInvestment_ProjectNotActive(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000003")
	project.Status = model.ProjectStatusDraft
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)

	_, err := l.RecordInvestment(context.Background(), "investor-a", project.ID, decimal.NewFromInt(200))
	assert.ErrorIs(t, err, ErrProjectNotActive)
}

func TestRecordInvestment_ProjectLookupFailureStillRecords(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())

	// 远程故障时项目级校验跳过，记录继续写入，由网关降级到本地缓存
	projectID := "7f4e1c2a-0000-0000-0000-000000000004"
	gateway.On("GetProject", mock.Anything, projectID).
		Return(nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	gateway.On("CreateInvestment", mock.Anything, mock.AnythingOfType("*model.Investment")).Return(nil)

	inv, err := l.RecordInvestment(context.Background(), "investor-a", projectID, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, projectID, inv.ProjectID)
	assert.True(t, inv.Amount.Equal(decimal.NewFromInt(200)))

	gateway.AssertExpectations(t)
}

func TestRecordInvestment_DemoProjectSkipsLookup(t *testing.T) {
	gateway := new(MockGateway)
	l := NewInvestmentLogic(gateway, testFundingConfig())

	// 演示项目不查项目行，直接写入
	gateway.On("CreateInvestment", mock.Anything, mock.AnythingOfType("*model.Investment")).Return(nil)

	inv, err := l.RecordInvestment(context.Background(), "investor-a", "3", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "3", inv.ProjectID)

	gateway.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything)
}
