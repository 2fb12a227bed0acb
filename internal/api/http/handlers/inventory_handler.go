package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/dto"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/service"
	apperrors "github.com/Rashi006/aws-capstone-blood-bridge/pkg/util"
)

// InventoryHandler exposes blood stock endpoints.
type InventoryHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventoryService, logger: logger}
}

// List handles GET /inventory. A store failure degrades to an empty list
// with a warning instead of an error.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	entries, err := h.inventory.List(c.Context())
	if err != nil {
		h.logger.Warn("inventory list degraded", zap.Error(err))
		return c.JSON(fiber.Map{
			"data":    []dto.InventoryEntryResponse{},
			"warning": "inventory temporarily unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"data": dto.NewInventoryEntryResponses(entries),
	})
}

// Adjust handles POST /inventory/adjust.
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login required")
	}

	var req dto.AdjustInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	actor := service.Actor{Name: principal.User.Name, Role: principal.Role()}
	entry, err := h.inventory.Adjust(c.Context(), actor, req.BloodType, req.Quantity, req.Action)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.NewInventoryEntryResponse(*entry),
	})
}
