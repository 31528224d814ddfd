package task

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/model"
	"github.com/musistash/mfs/internal/storage"
	"gorm.io/gorm"
)

// InvestmentReturnJob 投资退回任务
// 处理项目结束时生成的待退回记录：逻辑上把投资标记为已取消，
// 不做真实资金划转
type InvestmentReturnJob struct {
	db     *gorm.DB
	local  *storage.LocalStore
	config *config.Config
}

// NewInvestmentReturnJob 创建投资退回任务
func NewInvestmentReturnJob(db *gorm.DB, local *storage.LocalStore, cfg *config.Config) *InvestmentReturnJob {
	return &InvestmentReturnJob{
		db:     db,
		local:  local,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *InvestmentReturnJob) GetName() string {
	return "investment_return_processor"
}

// GetSchedule 获取调度配置
func (j *InvestmentReturnJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *InvestmentReturnJob) Execute() {
	logger.Info("Starting investment return task")

	// 查找待处理的退回记录
	var returnRecords []model.ReturnRecord
	err := j.db.Where("status = ?", model.ReturnStatusPending).Find(&returnRecords).Error
	if err != nil {
		logger.Error("Failed to fetch pending return records: %v", err)
		return
	}

	returnedCount := 0

	for _, record := range returnRecords {
		if err := j.processReturn(record); err != nil {
			logger.Error("Failed to process return for record %s: %v", record.ID, err)
			j.updateReturnStatus(record.ID, model.ReturnStatusFailed, err.Error())
			continue
		}

		j.updateReturnStatus(record.ID, model.ReturnStatusCompleted, "")
		logger.Info("Successfully returned investment %s, amount: %s to investor: %s",
			record.InvestmentID, record.Amount.String(), record.InvestorID)
		returnedCount++
	}

	logger.Info("Investment return task completed. Returned %d records", returnedCount)
}

// processReturn 处理单条退回记录
func (j *InvestmentReturnJob) processReturn(record model.ReturnRecord) error {
	// 1. 验证项目已结束
	var project model.Project
	if err := j.db.First(&project, "id = ?", record.ProjectID).Error; err != nil {
		return fmt.Errorf("failed to fetch project %s: %v", record.ProjectID, err)
	}
	if !project.Status.IsTerminal() {
		return fmt.Errorf("project status is not terminal: %s", project.Status)
	}

	// 2. 投资记录标记为已取消
	if err := j.db.Model(&model.Investment{}).
		Where("id = ?", record.InvestmentID).
		Update("status", model.InvestmentStatusCancelled).Error; err != nil {
		return fmt.Errorf("failed to cancel investment %s: %v", record.InvestmentID, err)
	}

	// 3. 同步移除本地缓存镜像，避免合并视图读到旧记录
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := j.local.Remove(ctx, record.InvestorID, record.InvestmentID); err != nil {
		logger.Warn("Failed to remove investment %s from local cache: %v", record.InvestmentID, err)
	}

	return nil
}

// updateReturnStatus 更新退回记录状态
func (j *InvestmentReturnJob) updateReturnStatus(recordID string, status model.ReturnStatus, reason string) {
	updates := map[string]interface{}{
		"status": status,
	}
	if reason != "" {
		updates["reason"] = reason
	}

	if err := j.db.Model(&model.ReturnRecord{}).Where("id = ?", recordID).Updates(updates).Error; err != nil {
		logger.Error("Failed to update return record %s: %v", recordID, err)
	}
}
