package controller

import (
	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConsiderationController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Choose(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Previous(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type considerationController struct {
	service service.IQuestionnaireService
}

func NewConsiderationController(service service.IQuestionnaireService) IConsiderationController {
	return &considerationController{service: service}
}

func (c *considerationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/consideration/v1")
	h.Get("", c.Get)
	h.Post("choose", c.Choose)
	h.Post("next", c.Next)
	h.Post("previous", c.Previous)
	h.Post("reset", c.Reset)
}

func (c *considerationController) Get(ctx *fiber.Ctx) error {
	res := c.service.Get(ctx.UserContext(), serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get questionnaire", res))
}

func (c *considerationController) Choose(ctx *fiber.Ctx) error {
	var req dto.ChooseRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res, err := c.service.Choose(ctx.UserContext(), serverutils.SessionID(ctx), req.Choice)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success choose", res))
}

func (c *considerationController) Next(ctx *fiber.Ctx) error {
	res, err := c.service.Next(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success next question", res))
}

func (c *considerationController) Previous(ctx *fiber.Ctx) error {
	res := c.service.Previous(ctx.UserContext(), serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success previous question", res))
}

func (c *considerationController) Reset(ctx *fiber.Ctx) error {
	res := c.service.Reset(ctx.UserContext(), serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success reset questionnaire", res))
}
