package logic

import (
	"context"

	"github.com/musistash/mfs/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockGateway 存储网关的mock实现
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateInvestment(ctx context.Context, inv *model.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockGateway) GetInvestment(ctx context.Context, investmentID string) (*model.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Investment), args.Error(1)
}

func (m *MockGateway) SaveInvestment(ctx context.Context, inv *model.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockGateway) DeleteInvestment(ctx context.Context, inv *model.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockGateway) ListProjectInvestments(ctx context.Context, projectID string) ([]model.Investment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Investment), args.Error(1)
}

func (m *MockGateway) ListInvestorInvestments(ctx context.Context, investorID string) ([]model.Investment, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Investment), args.Error(1)
}

func (m *MockGateway) CreateProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockGateway) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockGateway) ListProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockGateway) SaveProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockGateway) AppendWithdrawal(ctx context.Context, rec *model.WithdrawalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockGateway) ListInvestorWithdrawals(ctx context.Context, investorID string) ([]model.WithdrawalRecord, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WithdrawalRecord), args.Error(1)
}

func (m *MockGateway) CreateReturnRecords(ctx context.Context, records []model.ReturnRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}
