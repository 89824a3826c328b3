package routes

import (
	"Finora-Backend/internal/api/handlers"
	"Finora-Backend/internal/middleware"
	"Finora-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	AccountHandler     handlers.AccountHandler
	TransactionHandler handlers.TransactionHandler
	ReceiptHandler     handlers.ReceiptHandler
	AuditHandler       handlers.AuditHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.BankAccounts()
	c.Transactions()
	c.Receipts()
	c.AuditLogs()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/forget-password", c.UserHandler.ForgetPassword)
		user.Post("/reset-password", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) BankAccounts() {
	accounts := c.App.Group("/api/v1/bank-accounts", c.Middleware.AuthMiddleware(c.JWTService))
	accounts.Post("", c.AccountHandler.CreateBankAccount)
	accounts.Get("", c.AccountHandler.GetBankAccounts)
}

func (c *Config) Transactions() {
	transactions := c.App.Group("/api/v1/transactions", c.Middleware.AuthMiddleware(c.JWTService))
	transactions.Post("", c.TransactionHandler.CreateTransaction)
	transactions.Get("", c.TransactionHandler.GetTransactions)
	transactions.Get("/:id", c.TransactionHandler.GetTransactionDetails)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))
	receipts.Post("", c.ReceiptHandler.UploadReceipt)
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Get("/:id", c.ReceiptHandler.GetReceiptStatus)
}

func (c *Config) AuditLogs() {
	logs := c.App.Group("/api/v1/audit-logs", c.Middleware.AuthMiddleware(c.JWTService))
	logs.Get("", c.AuditHandler.GetAuditLogs)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
