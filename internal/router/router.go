package router

import (
	"github.com/jack-li-codes/family-finance-app/internal/config"
	"github.com/jack-li-codes/family-finance-app/internal/handler"
	"github.com/jack-li-codes/family-finance-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 组装 Gin 引擎和全部 API 路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	accountHandler := handler.NewAccountHandler(db)
	protected.GET("/accounts", accountHandler.ListAccounts)
	protected.POST("/accounts", accountHandler.CreateAccount)
	protected.PUT("/accounts/:id", accountHandler.UpdateAccount)
	protected.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	transactionHandler := handler.NewTransactionHandler(db)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	fixedHandler := handler.NewFixedExpenseHandler(db, cfg.App.DemoUsers)
	protected.GET("/fixed-expenses", fixedHandler.ListFixedExpenses)
	protected.GET("/fixed-expenses/current", fixedHandler.CurrentFixedExpenses)
	protected.POST("/fixed-expenses", fixedHandler.CreateFixedExpense)
	protected.PUT("/fixed-expenses/:id", fixedHandler.UpdateFixedExpense)
	protected.POST("/fixed-expenses/:id/deactivate", fixedHandler.DeactivateFixedExpense)
	protected.POST("/fixed-expenses/:id/restore", fixedHandler.RestoreFixedExpense)
	protected.DELETE("/fixed-expenses/:id", fixedHandler.DeleteFixedExpense)
	protected.POST("/fixed-expenses/import-template", fixedHandler.ImportTemplate)

	projectHandler := handler.NewProjectHandler(db)
	protected.GET("/projects", projectHandler.ListProjects)
	protected.POST("/projects", projectHandler.CreateProject)
	protected.PUT("/projects/:id", projectHandler.UpdateProject)
	protected.DELETE("/projects/:id", projectHandler.DeleteProject)

	worklogHandler := handler.NewWorkLogHandler(db)
	protected.GET("/worklogs", worklogHandler.ListWorkLogs)
	protected.POST("/worklogs", worklogHandler.CreateWorkLog)
	protected.PUT("/worklogs/:id", worklogHandler.UpdateWorkLog)
	protected.DELETE("/worklogs/:id", worklogHandler.DeleteWorkLog)
	protected.GET("/worklogs/stats", worklogHandler.GetWorkStats)

	reportHandler := handler.NewReportHandler(db, cfg.Report.Currency, cfg.Report.ExcludedCategories)
	protected.GET("/reports/account-overview", reportHandler.AccountOverview)
	protected.GET("/reports/balance", reportHandler.Balance)
	protected.GET("/reports/summary", reportHandler.Summary)

	// 导出接口支持 ?token= 传凭证，便于浏览器直接下载
	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/accounts.xlsx", exportHandler.ExportAccounts)
	protected.GET("/export/transactions.xlsx", exportHandler.ExportTransactions)
	protected.GET("/export/transactions.csv", exportHandler.ExportTransactionsCSV)
	protected.GET("/export/worklogs.xlsx", exportHandler.ExportWorkLogs)
	protected.GET("/export/projects.xlsx", exportHandler.ExportProjects)
	protected.GET("/export/balance.xlsx", exportHandler.ExportBalance)
	protected.GET("/export/account-overview.xlsx", exportHandler.ExportAccountOverview)

	return r
}
