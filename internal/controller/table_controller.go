package controller

import (
	"resto-reserve-be/internal/dto"
	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITableController interface {
	RegisterRoutes(r fiber.Router)
	CreateTable(ctx *fiber.Ctx) error
	GetTables(ctx *fiber.Ctx) error
	GetTable(ctx *fiber.Ctx) error
}

type tableController struct {
	service service.ITableService
}

func NewTableController(service service.ITableService) ITableController {
	return &tableController{service: service}
}

func (c *tableController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tables")
	h.Get("/", c.GetTables)
	h.Get("/:id", c.GetTable)
	h.Post("/", serverutils.JwtMiddleware, serverutils.AdminOnly, c.CreateTable)
}

func (c *tableController) CreateTable(ctx *fiber.Ctx) error {
	var req dto.CreateTableRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateTable(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Table created", res))
}

func (c *tableController) GetTables(ctx *fiber.Ctx) error {
	res, err := c.service.GetTables(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Tables", res))
}

func (c *tableController) GetTable(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid table id"))
	}

	res, err := c.service.GetTable(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Table", res))
}
