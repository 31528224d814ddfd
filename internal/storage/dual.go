package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/model"
)

// DualStore 双存储网关实现
// 写投资记录时优先远程，失败降级到本地缓存；远程写成功后同时镜像到本地，
// 使本地缓存始终是可用于离线读取的超集视图
type DualStore struct {
	remote *RemoteStore
	local  *LocalStore
}

// NewDualStore 创建双存储网关
func NewDualStore(remote *RemoteStore, local *LocalStore) *DualStore {
	return &DualStore{remote: remote, local: local}
}

var _ Gateway = (*DualStore)(nil)

// CreateInvestment 创建投资记录
// 演示项目没有远程存储行，直接写本地；正式项目远程优先，失败降级本地
func (s *DualStore) CreateInvestment(ctx context.Context, inv *model.Investment) error {
	if model.IsDemoProjectID(inv.ProjectID) {
		s.localize(inv)
		if err := s.local.Upsert(ctx, inv); err != nil {
			return NewPersistenceError("create demo investment", err)
		}
		return nil
	}

	if err := s.remote.CreateInvestment(ctx, inv); err != nil {
		logger.Warn("Remote investment write failed, falling back to local cache: %v", err)
		s.localize(inv)
		if lerr := s.local.Upsert(ctx, inv); lerr != nil {
			return NewPersistenceError("create investment fallback", lerr)
		}
		return nil
	}

	// 远程成功后镜像到本地缓存
	if err := s.local.Upsert(ctx, inv); err != nil {
		logger.Warn("Failed to mirror investment %s to local cache: %v", inv.ID, err)
	}
	return nil
}

// localize 生成本地记录字段：本地ID、客户端时间戳、状态强制为已生效
func (s *DualStore) localize(inv *model.Investment) {
	inv.ID = model.LocalIDPrefix + uuid.New().String()
	inv.Status = model.InvestmentStatusCompleted
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
}

// GetInvestment 获取投资记录，远程不存在或不可用时查本地缓存
func (s *DualStore) GetInvestment(ctx context.Context, investmentID string) (*model.Investment, error) {
	inv, err := s.remote.GetInvestment(ctx, investmentID)
	if err == nil {
		return inv, nil
	}
	if err != ErrRecordNotFound {
		logger.Warn("Remote investment read failed, trying local cache: %v", err)
	}

	local, lerr := s.local.Find(ctx, investmentID)
	if lerr == nil && local != nil {
		return local, nil
	}

	// 远程确认不存在且本地也没有才算不存在，远程故障原样上抛
	if err == ErrRecordNotFound {
		return nil, ErrRecordNotFound
	}
	return nil, err
}

// SaveInvestment 保存投资记录
// 仅本地的记录只写缓存；远程记录写远程并镜像，远程失败不降级直接上抛
func (s *DualStore) SaveInvestment(ctx context.Context, inv *model.Investment) error {
	if inv.IsLocal() {
		if err := s.local.Upsert(ctx, inv); err != nil {
			return NewPersistenceError("save local investment", err)
		}
		return nil
	}

	if err := s.remote.SaveInvestment(ctx, inv); err != nil {
		return NewPersistenceError("save investment", err)
	}
	if err := s.local.Upsert(ctx, inv); err != nil {
		logger.Warn("Failed to mirror investment %s to local cache: %v", inv.ID, err)
	}
	return nil
}

// DeleteInvestment 删除投资记录
func (s *DualStore) DeleteInvestment(ctx context.Context, inv *model.Investment) error {
	if inv.IsLocal() {
		if err := s.local.Remove(ctx, inv.InvestorID, inv.ID); err != nil {
			return NewPersistenceError("delete local investment", err)
		}
		return nil
	}

	if err := s.remote.DeleteInvestment(ctx, inv.ID); err != nil {
		return NewPersistenceError("delete investment", err)
	}
	if err := s.local.Remove(ctx, inv.InvestorID, inv.ID); err != nil {
		logger.Warn("Failed to remove investment %s from local cache: %v", inv.ID, err)
	}
	return nil
}

// ListProjectInvestments 获取项目的存续投资记录
// 读路径尽力而为：任一数据源失败时使用另一个，两个都失败才报错
func (s *DualStore) ListProjectInvestments(ctx context.Context, projectID string) ([]model.Investment, error) {
	remote, rerr := s.remote.ListProjectInvestments(ctx, projectID)
	if rerr != nil {
		logger.Warn("Remote project investment read failed: %v", rerr)
	}

	local, lerr := s.local.ListByProject(ctx, projectID)
	if lerr != nil {
		logger.Warn("Local project investment read failed: %v", lerr)
	}

	if rerr != nil && lerr != nil {
		return nil, NewPersistenceError("list project investments", rerr)
	}

	return mergeInvestments(remote, local), nil
}

// ListInvestorInvestments 获取投资人的存续投资记录
func (s *DualStore) ListInvestorInvestments(ctx context.Context, investorID string) ([]model.Investment, error) {
	remote, rerr := s.remote.ListInvestorInvestments(ctx, investorID)
	if rerr != nil {
		logger.Warn("Remote investor investment read failed: %v", rerr)
	}

	local, lerr := s.local.List(ctx, investorID)
	if lerr != nil {
		logger.Warn("Local investor investment read failed: %v", lerr)
	}

	if rerr != nil && lerr != nil {
		return nil, NewPersistenceError("list investor investments", rerr)
	}

	return mergeInvestments(remote, local), nil
}

// mergeInvestments 合并两个数据源的记录，按ID去重，冲突时以远程为准
// 本地降级记录与其回写后的远程行按去掉前缀的ID视为同一笔，不重复计入
// 已取消的记录不属于存续集合
func mergeInvestments(remote, local []model.Investment) []model.Investment {
	seen := make(map[string]bool, len(remote))
	merged := make([]model.Investment, 0, len(remote)+len(local))

	for _, inv := range remote {
		seen[inv.ID] = true
		if inv.Status != model.InvestmentStatusCancelled {
			merged = append(merged, inv)
		}
	}
	for _, inv := range local {
		if seen[inv.ID] || seen[model.CanonicalInvestmentID(inv.ID)] {
			continue
		}
		if inv.Status != model.InvestmentStatusCancelled {
			merged = append(merged, inv)
		}
	}

	return merged
}

// CreateProject 创建项目
func (s *DualStore) CreateProject(ctx context.Context, project *model.Project) error {
	if err := s.remote.CreateProject(ctx, project); err != nil {
		return NewPersistenceError("create project", err)
	}
	return nil
}

// GetProject 获取项目
func (s *DualStore) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	return s.remote.GetProject(ctx, projectID)
}

// ListProjects 获取项目列表
func (s *DualStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.remote.ListProjects(ctx)
}

// SaveProject 保存项目，失败不降级
func (s *DualStore) SaveProject(ctx context.Context, project *model.Project) error {
	if err := s.remote.SaveProject(ctx, project); err != nil {
		return NewPersistenceError("save project", err)
	}
	return nil
}

// AppendWithdrawal 追加提现记录，失败不降级，由调用方重新提交
func (s *DualStore) AppendWithdrawal(ctx context.Context, rec *model.WithdrawalRecord) error {
	if err := s.remote.AppendWithdrawal(ctx, rec); err != nil {
		return NewPersistenceError("append withdrawal", err)
	}
	return nil
}

// ListInvestorWithdrawals 获取投资人提现历史
func (s *DualStore) ListInvestorWithdrawals(ctx context.Context, investorID string) ([]model.WithdrawalRecord, error) {
	return s.remote.ListInvestorWithdrawals(ctx, investorID)
}

// CreateReturnRecords 批量创建退回记录
func (s *DualStore) CreateReturnRecords(ctx context.Context, records []model.ReturnRecord) error {
	if err := s.remote.CreateReturnRecords(ctx, records); err != nil {
		return NewPersistenceError("create return records", err)
	}
	return nil
}
