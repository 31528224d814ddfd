package task

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
)

// InvestmentSyncJob 投资回写任务
// 远程存储故障期间降级写入本地缓存的记录带有本地ID前缀，
// 远程恢复后以去掉前缀的ID回写远程并替换本地记录，使缓存重新收敛为远程的超集
type InvestmentSyncJob struct {
	remote *storage.RemoteStore
	local  *storage.LocalStore
	config *config.Config
}

// NewInvestmentSyncJob 创建投资回写任务
func NewInvestmentSyncJob(remote *storage.RemoteStore, local *storage.LocalStore, cfg *config.Config) *InvestmentSyncJob {
	return &InvestmentSyncJob{
		remote: remote,
		local:  local,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *InvestmentSyncJob) GetName() string {
	return "investment_cache_sync"
}

// GetSchedule 获取调度配置
func (j *InvestmentSyncJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *InvestmentSyncJob) Execute() {
	logger.Info("Starting investment cache sync task")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	localOnly, err := j.local.ListLocalOnly(ctx)
	if err != nil {
		logger.Error("Failed to list local-only investments: %v", err)
		return
	}

	syncedCount := 0

	for _, inv := range localOnly {
		// 演示项目没有远程存储行，永远留在本地
		if model.IsDemoProjectID(inv.ProjectID) {
			continue
		}

		if err := j.syncInvestment(ctx, inv); err != nil {
			logger.Warn("Failed to sync investment %s to remote: %v", inv.ID, err)
			continue
		}
		syncedCount++
	}

	if syncedCount > 0 {
		logger.Info("Investment cache sync completed. Synced %d records", syncedCount)
	}
}

// syncInvestment 回写单条本地记录
// 远程行保留去掉前缀的本地ID，回写途中的合并读取仍能按ID对齐去重；
// 写入远程成功后再替换本地记录，保证缓存始终覆盖该笔投资
func (j *InvestmentSyncJob) syncInvestment(ctx context.Context, inv model.Investment) error {
	localID := inv.ID

	synced := inv
	synced.ID = model.CanonicalInvestmentID(localID)

	// 上一轮写远程成功但清理本地失败时，远程行已存在，不再重复插入
	_, err := j.remote.GetInvestment(ctx, synced.ID)
	switch {
	case err == storage.ErrRecordNotFound:
		if err := j.remote.CreateInvestment(ctx, &synced); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if err := j.local.Remove(ctx, inv.InvestorID, localID); err != nil {
		return err
	}
	return j.local.Upsert(ctx, &synced)
}
