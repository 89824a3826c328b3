package config

import (
	"Finora-Backend/internal/api/handlers"
	"Finora-Backend/internal/api/routes"
	"Finora-Backend/internal/middleware"
	"Finora-Backend/internal/utils"
	"Finora-Backend/internal/utils/storage"
	"Finora-Backend/pkg/account"
	"Finora-Backend/pkg/audit"
	"Finora-Backend/pkg/jwt"
	"Finora-Backend/pkg/receipt"
	"Finora-Backend/pkg/transaction"
	"Finora-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         12 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Australia/Sydney",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	extractor := receipt.NewExtractor(
		utils.GetConfig("OPENAI_API_KEY"),
		utils.GetConfig("OPENAI_BASE_URL"),
		utils.GetConfig("OPENAI_MODEL"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	accountRepository := account.NewAccountRepository(db)
	transactionRepository := transaction.NewTransactionRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	auditRepository := audit.NewAuditRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	accountService := account.NewAccountService(accountRepository)
	transactionService := transaction.NewTransactionService(transactionRepository, accountRepository)
	auditService := audit.NewAuditService(auditRepository)
	receiptService := receipt.NewReceiptService(
		receiptRepository,
		transactionRepository,
		accountRepository,
		userRepository,
		auditRepository,
		extractor,
		s3,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	accountHandler := handlers.NewAccountHandler(accountService, validator)
	transactionHandler := handlers.NewTransactionHandler(transactionService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	auditHandler := handlers.NewAuditHandler(auditService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		ReceiptHandler:     receiptHandler,
		AuditHandler:       auditHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
