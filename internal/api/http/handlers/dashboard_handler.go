package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/dto"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/service"
	apperrors "github.com/Rashi006/aws-capstone-blood-bridge/pkg/util"
)

// DashboardHandler aggregates the session user's view of requests and stock.
type DashboardHandler struct {
	requests  *service.RequestService
	inventory *service.InventoryService
	logger    *zap.Logger
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(requestService *service.RequestService, inventoryService *service.InventoryService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{requests: requestService, inventory: inventoryService, logger: logger}
}

// Show handles GET /dashboard. Store failures degrade individual sections to
// empty collections with warnings rather than failing the whole page.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login required")
	}

	var warnings []string

	requestList := []dto.BloodRequestResponse{}
	if requests, err := h.requests.ListAll(c.Context()); err != nil {
		h.logger.Warn("dashboard requests degraded", zap.Error(err))
		warnings = append(warnings, "blood requests temporarily unavailable")
	} else {
		requestList = dto.NewBloodRequestResponses(requests)
	}

	inventoryList := []dto.InventoryEntryResponse{}
	if entries, err := h.inventory.List(c.Context()); err != nil {
		h.logger.Warn("dashboard inventory degraded", zap.Error(err))
		warnings = append(warnings, "inventory temporarily unavailable")
	} else {
		inventoryList = dto.NewInventoryEntryResponses(entries)
	}

	response := fiber.Map{
		"data": fiber.Map{
			"user":      dto.NewUserResponse(principal.User),
			"requests":  requestList,
			"inventory": inventoryList,
		},
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	return c.JSON(response)
}
