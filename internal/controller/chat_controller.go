package controller

import (
	"errors"

	"github.com/jvalenzano/forestgpt-app/internal/dto"
	"github.com/jvalenzano/forestgpt-app/internal/pkg/serverutils"
	"github.com/jvalenzano/forestgpt-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	SendChat(ctx *fiber.Ctx) error
	ToggleDebug(ctx *fiber.Ctx) error
	GetDebugInfo(ctx *fiber.Ctx) error
	TestScrape(ctx *fiber.Ctx) error
	RegisterRoutes(router fiber.Router)
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{chatService: chatService}
}

func (c *chatController) RegisterRoutes(router fiber.Router) {
	router.Post("/chat", c.SendChat)
	router.Post("/debug/toggle", c.ToggleDebug)
	router.Get("/debug", c.GetDebugInfo)
	router.Get("/test/scrape", c.TestScrape)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var request dto.ChatRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	sessionId := ctx.Locals("session_id").(string)

	response, err := c.chatService.SendChat(ctx.UserContext(), sessionId, &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (c *chatController) ToggleDebug(ctx *fiber.Ctx) error {
	var request dto.DebugToggleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(&request); err != nil {
		return err
	}

	sessionId := ctx.Locals("session_id").(string)

	if err := c.chatService.ToggleDebug(ctx.UserContext(), sessionId, *request.IsEnabled); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(dto.DebugToggleResponse{Success: true})
}

func (c *chatController) GetDebugInfo(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	info, err := c.chatService.GetDebugInfo(ctx.UserContext(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDebugDisabled):
			return fiber.NewError(fiber.StatusForbidden, "Debug mode is not enabled for this session")
		case errors.Is(err, service.ErrNoMessages):
			return fiber.NewError(fiber.StatusNotFound, "No messages found for this session")
		case errors.Is(err, service.ErrNoDebugLog):
			return fiber.NewError(fiber.StatusNotFound, "No debug information available for the latest message")
		default:
			return err
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(info)
}

func (c *chatController) TestScrape(ctx *fiber.Ctx) error {
	response, err := c.chatService.TestScrape(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
