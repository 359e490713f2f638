package controller

import (
	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkshopController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type workshopController struct {
	service service.IWorkshopService
}

func NewWorkshopController(service service.IWorkshopService) IWorkshopController {
	return &workshopController{service: service}
}

func (c *workshopController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workshops/v1")
	h.Get("", c.GetAll)
	h.Get(":slug", c.Show)
}

func (c *workshopController) GetAll(ctx *fiber.Ctx) error {
	res := c.service.Home(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get workshops", res))
}

func (c *workshopController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show workshop", res))
}
