package logic

import (
	"context"
	"time"

	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	gateway storage.Gateway
	funding *FundingLogic
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(gateway storage.Gateway, funding *FundingLogic) *ProjectLogic {
	return &ProjectLogic{gateway: gateway, funding: funding}
}

// CreateProject 创建项目，初始状态为草稿，等待管理员审核
func (p *ProjectLogic) CreateProject(ctx context.Context, project *model.Project) error {
	if project.ArtistID == "" || project.Title == "" {
		return ErrMissingField
	}
	if !project.FundingGoal.IsPositive() {
		return ErrInvalidProject
	}
	if project.Deadline.IsZero() {
		return ErrMissingField
	}

	project.Status = model.ProjectStatusDraft

	return p.gateway.CreateProject(ctx, project)
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	if projectID == "" {
		return nil, ErrMissingField
	}

	project, err := p.gateway.GetProject(ctx, projectID)
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetProjects 获取项目列表
func (p *ProjectLogic) GetProjects(ctx context.Context) ([]model.Project, error) {
	return p.gateway.ListProjects(ctx)
}

// ApproveProject 管理员审核通过，项目进入进行中
// 只允许 draft/pending → active
func (p *ProjectLogic) ApproveProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := p.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.Status != model.ProjectStatusDraft && project.Status != model.ProjectStatusPending {
		return nil, ErrStatusNotAllowed
	}

	project.Status = model.ProjectStatusActive
	if err := p.gateway.SaveProject(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// EndProject 结束项目
// 仅由艺人/管理员显式触发，单次终结，没有后台任务自动关闭项目
// 目标未达成或截止日期未到即为提前取消，否则为正常完成
func (p *ProjectLogic) EndProject(ctx context.Context, projectID, endedBy string) (*model.Project, error) {
	if endedBy == "" {
		return nil, ErrMissingField
	}

	project, err := p.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if project.Status.IsTerminal() {
		return nil, ErrProjectEnded
	}
	if project.Status != model.ProjectStatusActive {
		return nil, ErrProjectNotActive
	}

	snapshot, err := p.funding.GetFundingSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	isPremature := snapshot.TotalInvested.LessThan(project.FundingGoal) || now.Before(project.Deadline)

	if isPremature {
		project.Status = model.ProjectStatusCancelled
	} else {
		project.Status = model.ProjectStatusCompleted
	}
	project.EndedBy = endedBy
	project.EndedAt = &now

	if err := p.gateway.SaveProject(ctx, project); err != nil {
		return nil, err
	}

	// 为存续投资生成退回标记，由后台任务处理
	// 只是逻辑退回，不发生真实资金划转，失败不影响项目状态变更
	if err := p.markInvestmentsForReturn(ctx, project); err != nil {
		logger.Warn("Failed to mark investments of project %s for return: %v", project.ID, err)
	}

	return project, nil
}

// markInvestmentsForReturn 为项目的存续投资生成待处理退回记录
func (p *ProjectLogic) markInvestmentsForReturn(ctx context.Context, project *model.Project) error {
	investments, err := p.gateway.ListProjectInvestments(ctx, project.ID)
	if err != nil {
		return err
	}
	if len(investments) == 0 {
		return nil
	}

	reason := "项目已完成，投资退回"
	if project.Status == model.ProjectStatusCancelled {
		reason = "项目提前取消，投资退回"
	}

	records := make([]model.ReturnRecord, 0, len(investments))
	for _, inv := range investments {
		records = append(records, model.ReturnRecord{
			ProjectID:    project.ID,
			InvestmentID: inv.ID,
			InvestorID:   inv.InvestorID,
			Amount:       inv.Amount,
			Status:       model.ReturnStatusPending,
			Reason:       reason,
		})
	}

	return p.gateway.CreateReturnRecords(ctx, records)
}
