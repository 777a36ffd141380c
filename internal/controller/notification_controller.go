package controller

import (
	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	GetMyNotifications(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	CountUnread(ctx *fiber.Ctx) error
}

type notificationController struct {
	service service.INotificationService
}

func NewNotificationController(service service.INotificationService) INotificationController {
	return &notificationController{service: service}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications", serverutils.JwtMiddleware)
	h.Get("/", c.GetMyNotifications)
	h.Get("/unread-count", c.CountUnread)
	h.Put("/:id/read", c.MarkRead)
}

func (c *notificationController) GetMyNotifications(ctx *fiber.Ctx) error {
	res, err := c.service.GetMyNotifications(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Notifications", res))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid notification id"))
	}

	if err := c.service.MarkRead(ctx.Context(), currentUserId(ctx), id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (c *notificationController) CountUnread(ctx *fiber.Ctx) error {
	res, err := c.service.CountUnread(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Unread count", res))
}
