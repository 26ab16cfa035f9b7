package handler

import (
	"github.com/dafibh/hillside/hillside-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. A nil authMiddleware leaves the API open.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, transactionHandler *TransactionHandler, ledgerHandler *LedgerHandler, dashboardHandler *DashboardHandler, statementHandler *StatementHandler, reportHandler *ReportHandler, webSocketHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")
	if rateLimiter != nil {
		api.Use(middleware.RateLimitMiddleware(rateLimiter))
	}
	if authMiddleware != nil {
		api.Use(authMiddleware.Authenticate())
	}

	// Ledger routes
	api.GET("/ledger", ledgerHandler.GetLedger)
	api.GET("/notice", ledgerHandler.GetNotice)
	api.DELETE("/notice/:id", ledgerHandler.DismissNotice)
	api.GET("/status", ledgerHandler.GetStatus)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/search", transactionHandler.SearchTransactions)
	transactions.GET("/categories/:category", transactionHandler.ListByCategory)
	transactions.GET("/months/:year/:month", transactionHandler.ListByMonth)
	transactions.POST("/import", transactionHandler.ImportTransactions)
	transactions.POST("/bulk-delete", transactionHandler.BulkDelete)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetDashboard)
	dashboard.GET("/chart.png", dashboardHandler.GetExpenseChart)

	// Statement routes
	statements := api.Group("/statements")
	statements.GET("/income", statementHandler.GetIncomeStatement)
	statements.GET("/balance-sheet", statementHandler.GetBalanceSheet)
	statements.GET("/cash-flow", statementHandler.GetCashFlow)
	statements.GET("/cash-overview", statementHandler.GetCashOverview)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/transactions.pdf", reportHandler.GetTransactionsPDF)
	reports.GET("/monthly/:month", reportHandler.GetMonthlyPDF)
	reports.POST("/monthly/:month/archive", reportHandler.ArchiveMonthlyPDF)

	// WebSocket authenticates with a query token, outside the bearer guard
	e.GET("/ws", webSocketHandler.HandleWS)
}
