package controllers

import (
	"github.com/gofiber/fiber/v2"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/models"
	"tradeacademy/backend/store"
)

// PagesController serves the page routes. View templates are out of
// scope; page handlers enforce the session/role redirects and respond
// with the view model the page would render.
type PagesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewPagesController(st *store.Store, cfg *config.Config) *PagesController {
	return &PagesController{Store: st, Cfg: cfg}
}

// Home is the public landing page: catalog, live map and approved
// testimonials in one payload.
func (pc *PagesController) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":         "home",
		"courses":      pc.Store.Courses(),
		"liveStatus":   pc.Store.LiveStatus(),
		"testimonials": pc.Store.ApprovedTestimonials(),
	})
}

// CoursesPage is the public catalog page.
func (pc *PagesController) CoursesPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":       "courses",
		"courses":    pc.Store.Courses(),
		"liveStatus": pc.Store.LiveStatus(),
	})
}

// LoginPage sends an already-authenticated visitor to their dashboard.
func (pc *PagesController) LoginPage(c *fiber.Ctx) error {
	if user, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(dashboardPath(user), fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"page": "login"})
}

func (pc *PagesController) SignupPage(c *fiber.Ctx) error {
	if user, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(dashboardPath(user), fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"page": "signup"})
}

// EnrollPage is the public enrollment page listing the catalog to
// pick a course from.
func (pc *PagesController) EnrollPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":    "enroll",
		"courses": pc.Store.Courses(),
	})
}

func (pc *PagesController) ForgotPasswordPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "forgot-password"})
}

func (pc *PagesController) VerifyOTPPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "verify-otp"})
}

// Dashboard is the user dashboard: identity, entitlements and the
// courses they unlock. Admins are bounced to their own console.
func (pc *PagesController) Dashboard(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if user.Role == "admin" {
		return c.Redirect("/admin/dashboard", fiber.StatusFound)
	}

	purchases := pc.Store.Purchases(user.Username)
	var owned []models.Course
	for _, p := range purchases {
		if course, found := pc.Store.Course(p.CourseID); found {
			owned = append(owned, course)
		}
	}

	return c.JSON(fiber.Map{
		"page":       "dashboard",
		"user":       user,
		"purchases":  purchases,
		"courses":    owned,
		"liveStatus": pc.Store.LiveStatus(),
	})
}

// AdminDashboard is the admin console view model. Non-admins are sent
// back to their own dashboard rather than shown an error page.
func (pc *PagesController) AdminDashboard(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	if user.Role != "admin" {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	return c.JSON(fiber.Map{
		"page":         "admin-dashboard",
		"user":         user,
		"courses":      pc.Store.Courses(),
		"liveStatus":   pc.Store.LiveStatus(),
		"testimonials": pc.Store.Testimonials(),
	})
}

func dashboardPath(user models.SessionUser) string {
	if user.Role == "admin" {
		return "/admin/dashboard"
	}
	return "/dashboard"
}
