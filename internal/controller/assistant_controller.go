package controller

import (
	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/pkg/serverutils"
	"learning-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	RegisterWellKnown(app fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Cleanup(ctx *fiber.Ctx) error
	AgentCard(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
	h.Post("cleanup", c.Cleanup)
}

// RegisterWellKnown mounts the discovery document outside the /api group.
func (c *assistantController) RegisterWellKnown(app fiber.Router) {
	app.Get("/.well-known/agent.json", c.AgentCard)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userId, ok := ctx.Locals("user_id").(string)
	if !ok || userId == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	email, _ := ctx.Locals("email").(string)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *assistantController) Cleanup(ctx *fiber.Ctx) error {
	var req dto.CleanupSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	if err := c.assistantService.Cleanup(ctx.Context(), req.SessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success cleanup session", nil))
}

func (c *assistantController) AgentCard(ctx *fiber.Ctx) error {
	card := c.assistantService.AgentCard(ctx.BaseURL())
	return ctx.JSON(card)
}
