package storage

import (
	"context"
	"fmt"

	"github.com/musistash/mfs/internal/model"
)

// Gateway 存储网关
// 统一封装远程存储和本地缓存两个数据源，对外只暴露一套读写接口
// 和唯一的冲突合并策略（同ID以远程为准），以依赖注入的方式交给逻辑层
type Gateway interface {
	// 投资记录
	CreateInvestment(ctx context.Context, inv *model.Investment) error
	GetInvestment(ctx context.Context, investmentID string) (*model.Investment, error)
	SaveInvestment(ctx context.Context, inv *model.Investment) error
	DeleteInvestment(ctx context.Context, inv *model.Investment) error
	ListProjectInvestments(ctx context.Context, projectID string) ([]model.Investment, error)
	ListInvestorInvestments(ctx context.Context, investorID string) ([]model.Investment, error)

	// 项目
	CreateProject(ctx context.Context, project *model.Project) error
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	SaveProject(ctx context.Context, project *model.Project) error

	// 提现记录
	AppendWithdrawal(ctx context.Context, rec *model.WithdrawalRecord) error
	ListInvestorWithdrawals(ctx context.Context, investorID string) ([]model.WithdrawalRecord, error)

	// 退回记录
	CreateReturnRecords(ctx context.Context, records []model.ReturnRecord) error
}

// PersistenceError 持久化失败
// 写路径上不做自动重试，由调用方重新提交
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("持久化操作失败: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError 包装持久化失败
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
