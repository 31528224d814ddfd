package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/cache"
	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/database"
	"github.com/musistash/mfs/internal/logger"
	"github.com/musistash/mfs/internal/router"
	"github.com/musistash/mfs/internal/storage"
	"github.com/musistash/mfs/internal/task"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化本地缓存
	redisClient, err := cache.Init(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	// 初始化存储网关
	remote := storage.NewRemoteStore(db)
	local := storage.NewLocalStore(redisClient)
	gateway := storage.NewDualStore(remote, local)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(gateway, cfg)

	// 启动后台任务
	manager := task.Start(db, remote, local, cfg)
	defer manager.Stop()

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
