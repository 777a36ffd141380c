package controller

import (
	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReservationController interface {
	RegisterRoutes(r fiber.Router)
	CheckAvailability(ctx *fiber.Ctx) error
	CreateReservation(ctx *fiber.Ctx) error
	GetMyReservations(ctx *fiber.Ctx) error
	GetReservation(ctx *fiber.Ctx) error
	CancelReservation(ctx *fiber.Ctx) error
}

type reservationController struct {
	service service.IReservationService
}

func NewReservationController(service service.IReservationService) IReservationController {
	return &reservationController{service: service}
}

func (c *reservationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reservations")
	h.Get("/availability", c.CheckAvailability)

	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.CreateReservation)
	h.Get("/", c.GetMyReservations)
	h.Get("/:id", c.GetReservation)
	h.Delete("/:id", c.CancelReservation)
}

func (c *reservationController) CheckAvailability(ctx *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CheckAvailability(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Availability", res))
}

func (c *reservationController) CreateReservation(ctx *fiber.Ctx) error {
	var req dto.CreateReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateReservation(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Reservation created", res))
}

func (c *reservationController) GetMyReservations(ctx *fiber.Ctx) error {
	res, err := c.service.GetMyReservations(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reservations", res))
}

func (c *reservationController) GetReservation(ctx *fiber.Ctx) error {
	res, err := c.service.GetReservation(ctx.Context(), currentUserId(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reservation", res))
}

func (c *reservationController) CancelReservation(ctx *fiber.Ctx) error {
	if err := c.service.CancelReservation(ctx.Context(), currentUserId(ctx), ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Reservation cancelled", nil))
}
