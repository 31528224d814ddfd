package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/musistash/mfs/internal/model"
	"gorm.io/gorm"
)

// RemoteStore 远程存储，基于Postgres，是权威数据源
type RemoteStore struct {
	db *gorm.DB
}

// NewRemoteStore 创建远程存储
func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

// ErrRecordNotFound 记录不存在
var ErrRecordNotFound = errors.New("record not found")

// CreateInvestment 创建投资记录，ID为空时生成服务端ID
func (s *RemoteStore) CreateInvestment(ctx context.Context, inv *model.Investment) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("创建投资记录失败: %w", err)
	}
	return nil
}

// GetInvestment 获取投资记录
func (s *RemoteStore) GetInvestment(ctx context.Context, investmentID string) (*model.Investment, error) {
	var inv model.Investment
	if err := s.db.WithContext(ctx).First(&inv, "id = ?", investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("获取投资记录失败: %w", err)
	}
	return &inv, nil
}

// SaveInvestment 保存投资记录（部分提现后更新本金）
func (s *RemoteStore) SaveInvestment(ctx context.Context, inv *model.Investment) error {
	if err := s.db.WithContext(ctx).Save(inv).Error; err != nil {
		return fmt.Errorf("更新投资记录失败: %w", err)
	}
	return nil
}

// DeleteInvestment 删除投资记录（全额提现后移出存续集合）
func (s *RemoteStore) DeleteInvestment(ctx context.Context, investmentID string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Investment{}, "id = ?", investmentID).Error; err != nil {
		return fmt.Errorf("删除投资记录失败: %w", err)
	}
	return nil
}

// ListProjectInvestments 获取项目的全部投资记录
// 不按状态过滤，已取消记录用于合并时压制本地缓存里的旧镜像
func (s *RemoteStore) ListProjectInvestments(ctx context.Context, projectID string) ([]model.Investment, error) {
	var investments []model.Investment
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("获取项目投资记录失败: %w", err)
	}
	return investments, nil
}

// ListInvestorInvestments 获取投资人的全部投资记录
func (s *RemoteStore) ListInvestorInvestments(ctx context.Context, investorID string) ([]model.Investment, error) {
	var investments []model.Investment
	if err := s.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("获取投资人投资记录失败: %w", err)
	}
	return investments, nil
}

// CreateProject 创建项目
func (s *RemoteStore) CreateProject(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("创建项目失败: %w", err)
	}
	return nil
}

// GetProject 获取项目
func (s *RemoteStore) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("获取项目失败: %w", err)
	}
	return &project, nil
}

// ListProjects 获取项目列表
func (s *RemoteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}
	return projects, nil
}

// SaveProject 保存项目
func (s *RemoteStore) SaveProject(ctx context.Context, project *model.Project) error {
	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("更新项目失败: %w", err)
	}
	return nil
}

// AppendWithdrawal 追加提现记录，只增不改
func (s *RemoteStore) AppendWithdrawal(ctx context.Context, rec *model.WithdrawalRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("创建提现记录失败: %w", err)
	}
	return nil
}

// ListInvestorWithdrawals 获取投资人提现历史
func (s *RemoteStore) ListInvestorWithdrawals(ctx context.Context, investorID string) ([]model.WithdrawalRecord, error) {
	var records []model.WithdrawalRecord
	if err := s.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("获取提现记录失败: %w", err)
	}
	return records, nil
}

// CreateReturnRecords 批量创建退回记录
func (s *RemoteStore) CreateReturnRecords(ctx context.Context, records []model.ReturnRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("创建退回记录失败: %w", err)
	}
	return nil
}
