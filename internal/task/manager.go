package task

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/storage"
	"gorm.io/gorm"
)

// Job 后台任务接口
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	db        *gorm.DB
	remote    *storage.RemoteStore
	local     *storage.LocalStore
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(db *gorm.DB, remote *storage.RemoteStore, local *storage.LocalStore, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		db:        db,
		remote:    remote,
		local:     local,
		config:    cfg,
	}
}

// Start 启动任务管理器
func Start(db *gorm.DB, remote *storage.RemoteStore, local *storage.LocalStore, cfg *config.Config) *Manager {
	manager := NewManager(db, remote, local, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 项目结束后的投资退回处理
	m.registerJob(NewInvestmentReturnJob(m.db, m.local, m.config))
	// 远程故障期间本地降级写入的回写
	m.registerJob(NewInvestmentSyncJob(m.remote, m.local, m.config))
}

// registerJob 注册单个任务
func (m *Manager) registerJob(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
