package logic

import (
	"context"
	"testing"
	"time"

	"github.com/musistash/mfs/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectLogic(gateway *MockGateway) *ProjectLogic {
	return NewProjectLogic(gateway, NewFundingLogic(gateway))
}

func endProjectFixture(gateway *MockGateway, totalInvested int64, deadline time.Time) *model.Project {
	project := activeProject("7f4e1c2a-0000-0000-0000-000000000030")
	project.Deadline = deadline

	investments := []model.Investment{
		{ID: "inv-1", InvestorID: "investor-a", ProjectID: project.ID, Amount: decimal.NewFromInt(totalInvested), Status: model.InvestmentStatusCompleted},
	}
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)
	gateway.On("ListProjectInvestments", mock.Anything, project.ID).Return(investments, nil)
	gateway.On("SaveProject", mock.Anything, project).Return(nil)
	gateway.On("CreateReturnRecords", mock.Anything, mock.AnythingOfType("[]model.ReturnRecord")).Return(nil)
	return project
}

func TestEndProject_CompletedWhenGoalMetAndDeadlinePassed(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	// 目标1000，已投1000，截止日期已过 → 正常完成
	project := endProjectFixture(gateway, 1000, time.Now().Add(-24*time.Hour))

	ended, err := l.EndProject(context.Background(), project.ID, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusCompleted, ended.Status)
	assert.Equal(t, "artist-1", ended.EndedBy)
	require.NotNil(t, ended.EndedAt)

	gateway.AssertExpectations(t)
}

func TestEndProject_CancelledWhenGoalNotMet(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	// 目标1000，只投了500，截止日期在未来 → 提前取消
	project := endProjectFixture(gateway, 500, time.Now().Add(24*time.Hour))

	ended, err := l.EndProject(context.Background(), project.ID, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusCancelled, ended.Status)
}

func TestEndProject_CancelledWhenDeadlineNotReached(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	// 目标已达成但截止日期未到，依然算提前取消
	project := endProjectFixture(gateway, 1500, time.Now().Add(24*time.Hour))

	ended, err := l.EndProject(context.Background(), project.ID, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusCancelled, ended.Status)
}

func TestEndProject_CreatesReturnRecords(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := endProjectFixture(gateway, 500, time.Now().Add(24*time.Hour))

	_, err := l.EndProject(context.Background(), project.ID, "artist-1")
	require.NoError(t, err)

	gateway.AssertCalled(t, "CreateReturnRecords", mock.Anything, mock.MatchedBy(func(records []model.ReturnRecord) bool {
		return len(records) == 1 &&
			records[0].InvestmentID == "inv-1" &&
			records[0].Status == model.ReturnStatusPending
	}))
}

func TestEndProject_TerminalStateRejected(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000031")
	project.Status = model.ProjectStatusCompleted
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)

	// 终态不可再次结束
	_, err := l.EndProject(context.Background(), project.ID, "artist-1")
	assert.ErrorIs(t, err, ErrProjectEnded)

	gateway.AssertNotCalled(t, "SaveProject", mock.Anything, mock.Anything)
}

func TestEndProject_RequiresActiveStatus(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000032")
	project.Status = model.ProjectStatusDraft
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)

	_, err := l.EndProject(context.Background(), project.ID, "artist-1")
	assert.ErrorIs(t, err, ErrProjectNotActive)
}

func TestApproveProject(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000033")
	project.Status = model.ProjectStatusDraft
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)
	gateway.On("SaveProject", mock.Anything, project).Return(nil)

	approved, err := l.ApproveProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusActive, approved.Status)
}

func TestApproveProject_ActiveRejected(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := activeProject("7f4e1c2a-0000-0000-0000-000000000034")
	gateway.On("GetProject", mock.Anything, project.ID).Return(project, nil)

	_, err := l.ApproveProject(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrStatusNotAllowed)
}

func TestCreateProject_Validation(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)
	ctx := context.Background()

	err := l.CreateProject(ctx, &model.Project{ArtistID: "artist-1", Title: "新专辑"})
	assert.ErrorIs(t, err, ErrInvalidProject)

	err = l.CreateProject(ctx, &model.Project{ArtistID: "artist-1", FundingGoal: decimal.NewFromInt(1000)})
	assert.ErrorIs(t, err, ErrMissingField)

	gateway.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestCreateProject_StartsAsDraft(t *testing.T) {
	gateway := new(MockGateway)
	l := newProjectLogic(gateway)

	project := &model.Project{
		ArtistID:    "artist-1",
		Title:       "巡演筹备",
		FundingGoal: decimal.NewFromInt(5000),
		Deadline:    time.Now().Add(60 * 24 * time.Hour),
		Status:      model.ProjectStatusActive, // 调用方给的状态被忽略
	}
	gateway.On("CreateProject", mock.Anything, project).Return(nil)

	require.NoError(t, l.CreateProject(context.Background(), project))
	assert.Equal(t, model.ProjectStatusDraft, project.Status)
}
