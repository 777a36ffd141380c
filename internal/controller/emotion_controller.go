package controller

import (
	"resto-reserve-be/internal/pkg/serverutils"
	"resto-reserve-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmotionController interface {
	RegisterRoutes(r fiber.Router)
	Predict(ctx *fiber.Ctx) error
}

type emotionController struct {
	service service.IEmotionService
}

func NewEmotionController(service service.IEmotionService) IEmotionController {
	return &emotionController{service: service}
}

func (c *emotionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/emotion", serverutils.JwtMiddleware)
	h.Post("/predict", c.Predict)
}

func (c *emotionController) Predict(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Image file is required"))
	}

	src, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Unable to read image file"))
	}
	defer src.Close()

	res, err := c.service.Predict(ctx.Context(), file.Filename, src)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Emotion prediction", res))
}
