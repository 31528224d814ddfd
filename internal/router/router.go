package router

import (
	"github.com/gin-gonic/gin"
	"github.com/musistash/mfs/internal/config"
	"github.com/musistash/mfs/internal/handler"
	"github.com/musistash/mfs/internal/logic"
	"github.com/musistash/mfs/internal/storage"
)

func Setup(gateway storage.Gateway, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "funding-ledger-service",
		})
	})

	// 业务逻辑
	fundingLogic := logic.NewFundingLogic(gateway)
	investmentLogic := logic.NewInvestmentLogic(gateway, cfg.Funding)
	withdrawalLogic := logic.NewWithdrawalLogic(gateway, cfg.Funding)
	projectLogic := logic.NewProjectLogic(gateway, fundingLogic)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(projectLogic, fundingLogic)
		investmentHandler := handler.NewInvestmentHandler(investmentLogic)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/approve", projectHandler.ApproveProject)
			projects.POST("/:id/end", projectHandler.EndProject)
			projects.GET("/:id/funding", projectHandler.GetFundingSnapshot)
			projects.GET("/:id/investments", investmentHandler.GetProjectInvestments)
		}

		// 投资相关路由
		investments := v1.Group("/investments")
		{
			investments.POST("", investmentHandler.RecordInvestment)
		}

		// 提现相关路由
		withdrawalHandler := handler.NewWithdrawalHandler(withdrawalLogic)
		withdrawals := v1.Group("/withdrawals")
		{
			withdrawals.POST("", withdrawalHandler.Withdraw)
		}

		// 投资人相关路由
		investors := v1.Group("/investors")
		{
			investors.GET("/:id/investments", investmentHandler.GetInvestorInvestments)
			investors.GET("/:id/withdrawals", withdrawalHandler.GetInvestorWithdrawals)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
