package handlers

import (
	"Finora-Backend/domain"
	"Finora-Backend/internal/api/presenters"
	"Finora-Backend/pkg/account"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountHandler interface {
		CreateBankAccount(c *fiber.Ctx) error
		GetBankAccounts(c *fiber.Ctx) error
	}

	accountHandler struct {
		accountService account.AccountService
		validator      *validator.Validate
	}
)

func NewAccountHandler(accountService account.AccountService, validator *validator.Validate) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		validator:      validator,
	}
}

func (h *accountHandler) CreateBankAccount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBankAccountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAccount, err)
	}

	res, err := h.accountService.CreateBankAccount(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAccount, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAccount)
}

func (h *accountHandler) GetBankAccounts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.accountService.GetBankAccounts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAccounts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAccounts)
}
