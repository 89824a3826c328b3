package handlers

import (
	"Finora-Backend/domain"
	"Finora-Backend/internal/api/presenters"
	"Finora-Backend/pkg/audit"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	AuditHandler interface {
		GetAuditLogs(c *fiber.Ctx) error
	}

	auditHandler struct {
		auditService audit.AuditService
	}
)

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{auditService: auditService}
}

func (h *auditHandler) GetAuditLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.auditService.GetAuditLogs(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAuditLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetAuditLogs)
}
