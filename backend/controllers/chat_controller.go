package controllers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/models"
	"tradeacademy/backend/store"
	"tradeacademy/backend/utils"
)

type ChatController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewChatController(st *store.Store, cfg *config.Config) *ChatController {
	return &ChatController{Store: st, Cfg: cfg}
}

// canAccess gates the chat room on a purchase record; admins may enter
// every room regardless.
func (ch *ChatController) canAccess(user models.SessionUser, courseID int) bool {
	if user.Role == "admin" {
		return true
	}
	return ch.Store.HasPurchase(user.Username, courseID)
}

// GetMessages returns the full chat log for the course; clients poll.
func (ch *ChatController) GetMessages(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	if !ch.canAccess(user, courseID) {
		return utils.Forbidden(c, "You have not purchased this course")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": ch.Store.ChatMessages(courseID),
	})
}

func (ch *ChatController) PostMessage(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	if !ch.canAccess(user, courseID) {
		return utils.Forbidden(c, "You have not purchased this course")
	}

	type MessageInput struct {
		Message string `json:"message"`
	}

	var input MessageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" || utf8.RuneCountInString(input.Message) > 500 {
		return utils.BadRequest(c, "Message is required and must be at most 500 characters")
	}

	msg := ch.Store.AppendChatMessage(courseID, user, input.Message)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"sent":    msg,
	})
}
