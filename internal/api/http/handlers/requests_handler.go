package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/dto"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/service"
	apperrors "github.com/Rashi006/aws-capstone-blood-bridge/pkg/util"
)

// RequestsHandler exposes blood request endpoints.
type RequestsHandler struct {
	requests *service.RequestService
	logger   *zap.Logger
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService, logger *zap.Logger) *RequestsHandler {
	return &RequestsHandler{requests: requestService, logger: logger}
}

// Submit handles POST /requests.
func (h *RequestsHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("login required")
	}

	var req dto.SubmitRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	actor := service.Actor{Name: principal.User.Name, Role: principal.Role()}
	request, err := h.requests.Submit(c.Context(), actor, req.BloodType, req.Quantity, req.Urgency)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewBloodRequestResponse(*request),
	})
}

// List handles GET /requests. A store failure degrades to an empty list with
// a warning instead of an error.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	requests, err := h.requests.ListAll(c.Context())
	if err != nil {
		h.logger.Warn("request list degraded", zap.Error(err))
		return c.JSON(fiber.Map{
			"data":    []dto.BloodRequestResponse{},
			"warning": "blood requests temporarily unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"data": dto.NewBloodRequestResponses(requests),
	})
}
