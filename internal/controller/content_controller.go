package controller

import (
	"learning-assistant-be/internal/pkg/serverutils"
	"learning-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Sync(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type contentController struct {
	ingestionService service.IIngestionService
}

func NewContentController(ingestionService service.IIngestionService) IContentController {
	return &contentController{
		ingestionService: ingestionService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("sync", c.Sync)
	h.Get("pages", c.List)
}

func (c *contentController) Sync(ctx *fiber.Ctx) error {
	res, err := c.ingestionService.Sync(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sync content", res))
}

func (c *contentController) List(ctx *fiber.Ctx) error {
	res, err := c.ingestionService.ListPages(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list content pages", res))
}
