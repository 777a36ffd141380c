package controller

import (
	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRefundController interface {
	RegisterRoutes(r fiber.Router)
	GetMyRefunds(ctx *fiber.Ctx) error
	GetRefunds(ctx *fiber.Ctx) error
	DecideRefund(ctx *fiber.Ctx) error
}

type refundController struct {
	service service.IRefundService
}

func NewRefundController(service service.IRefundService) IRefundController {
	return &refundController{service: service}
}

func (c *refundController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/refunds", serverutils.JwtMiddleware)
	h.Get("/", c.GetMyRefunds)

	admin := r.Group("/admin/refunds", serverutils.JwtMiddleware, serverutils.AdminOnly)
	admin.Get("/", c.GetRefunds)
	admin.Put("/:id", c.DecideRefund)
}

func (c *refundController) GetMyRefunds(ctx *fiber.Ctx) error {
	res, err := c.service.GetMyRefunds(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Refunds", res))
}

func (c *refundController) GetRefunds(ctx *fiber.Ctx) error {
	res, err := c.service.GetRefunds(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Refunds", res))
}

func (c *refundController) DecideRefund(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid refund id"))
	}

	var req dto.RefundDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.DecideRefund(ctx.Context(), id, &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Refund processed", res))
}
