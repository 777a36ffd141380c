package controller

import (
	"errors"

	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId pulls the authenticated user id set by the JWT
// middleware. Handlers behind the middleware can rely on it being set.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// respondError maps service sentinel errors onto HTTP statuses. The
// body text is stable and never echoes persistence internals.
func respondError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, service.ErrNotOwner):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, service.ErrNotFound.Error()))
	case errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrReservationExists),
		errors.Is(err, service.ErrAlreadyProcessed):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrNotPaid),
		errors.Is(err, service.ErrNoFaceDetected):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	case errors.Is(err, service.ErrInvalidLogin):
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	case errors.Is(err, service.ErrInvalidSignature):
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
	case errors.Is(err, service.ErrInternal):
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
}
