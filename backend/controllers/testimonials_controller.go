package controllers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/store"
	"tradeacademy/backend/utils"
)

type TestimonialsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewTestimonialsController(st *store.Store, cfg *config.Config) *TestimonialsController {
	return &TestimonialsController{Store: st, Cfg: cfg}
}

// Submit creates a pending testimonial for the logged-in user.
func (tc *TestimonialsController) Submit(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type SubmitInput struct {
		Message  string `json:"message"`
		Rating   int    `json:"rating"`
		UserRole string `json:"userRole"`
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" || utf8.RuneCountInString(input.Message) > 500 {
		return utils.BadRequest(c, "Message is required and must be at most 500 characters")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return utils.BadRequest(c, "Rating must be an integer between 1 and 5")
	}

	t := tc.Store.SubmitTestimonial(user, input.UserRole, input.Message, input.Rating)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"testimonial": t,
	})
}

// Approved lists approved testimonials, most recently reviewed first.
func (tc *TestimonialsController) Approved(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"testimonials": tc.Store.ApprovedTestimonials(),
	})
}

// Mine lists the caller's pending and approved testimonials; rejected
// entries stay hidden from their author.
func (tc *TestimonialsController) Mine(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"testimonials": tc.Store.TestimonialsByUser(user.Username),
	})
}

// All returns the full moderation queue for the admin console.
func (tc *TestimonialsController) All(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"testimonials": tc.Store.Testimonials(),
	})
}

func (tc *TestimonialsController) Approve(c *fiber.Ctx) error {
	return tc.review(c, true)
}

func (tc *TestimonialsController) Reject(c *fiber.Ctx) error {
	return tc.review(c, false)
}

func (tc *TestimonialsController) review(c *fiber.Ctx, approve bool) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid testimonial ID")
	}

	t, err := tc.Store.ReviewTestimonial(id, approve)
	if err != nil {
		return utils.NotFound(c, "Testimonial not found")
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"testimonial": t,
	})
}
