package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tradeacademy/backend/config"
	"tradeacademy/backend/controllers"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store, sessions *session.Store, cfg *config.Config) {
	// Middleware
	authMiddleware := middleware.AuthMiddleware(sessions)
	adminMiddleware := middleware.AdminMiddleware(sessions)
	loadUser := middleware.LoadUserMiddleware(sessions)

	// Auth routes
	authController := controllers.NewAuthController(st, sessions, cfg)
	auth := app.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", authController.Logout)
	auth.Post("/send-otp", authController.SendOTP)
	auth.Post("/check-existence", authController.CheckExistence)
	auth.Post("/forgot-password", authController.ForgotPassword)
	auth.Post("/verify-reset-otp", authController.VerifyResetOTP)
	auth.Post("/reset-password", authController.ResetPassword)
	app.Get("/api/session", authMiddleware, authController.Session)

	// Courses and live sessions
	coursesController := controllers.NewCoursesController(st, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Get("/api/live-status", coursesController.GetLiveStatus)

	// Testimonials
	testimonialsController := controllers.NewTestimonialsController(st, cfg)
	app.Get("/api/testimonials/approved", testimonialsController.Approved)
	app.Get("/api/testimonials/mine", authMiddleware, testimonialsController.Mine)
	app.Post("/api/testimonials/submit", authMiddleware, testimonialsController.Submit)

	// Community board
	communityController := controllers.NewCommunityController(st, cfg)
	community := app.Group("/api/community", authMiddleware)
	community.Get("/posts", communityController.GetPosts)
	community.Post("/posts", communityController.CreatePost)
	community.Post("/posts/:id/like", communityController.ToggleLike)
	community.Post("/posts/:id/comment", communityController.AddComment)
	app.Delete("/api/community/posts/:id", adminMiddleware, communityController.DeletePost)
	app.Delete("/api/community/posts/:postId/comments/:commentId", adminMiddleware, communityController.DeleteComment)

	// Per-course chat, gated inside the controller on purchase or role
	chatController := controllers.NewChatController(st, cfg)
	chat := app.Group("/api/chat", authMiddleware)
	chat.Get("/:courseId/messages", chatController.GetMessages)
	chat.Post("/:courseId/messages", chatController.PostMessage)

	// Pages (no templates; handlers enforce redirects, return view models).
	// Registered before the admin console group: its prefix middleware would
	// otherwise intercept GET /admin/dashboard and answer with the API guard's
	// JSON instead of the page redirect.
	pagesController := controllers.NewPagesController(st, cfg)
	app.Get("/", loadUser, pagesController.Home)
	app.Get("/courses", loadUser, pagesController.CoursesPage)
	app.Get("/login", loadUser, pagesController.LoginPage)
	app.Get("/signup", loadUser, pagesController.SignupPage)
	app.Get("/enroll", loadUser, pagesController.EnrollPage)
	app.Get("/forgetPassword", loadUser, pagesController.ForgotPasswordPage)
	app.Get("/verifyOTP", loadUser, pagesController.VerifyOTPPage)
	app.Get("/dashboard", loadUser, pagesController.Dashboard)
	app.Get("/admin/dashboard", loadUser, pagesController.AdminDashboard)

	// Admin console
	admin := app.Group("/admin", adminMiddleware)
	admin.Post("/toggle-live", coursesController.ToggleLive)
	admin.Post("/courses/add", coursesController.AddCourse)
	admin.Post("/courses/edit/:id", coursesController.EditCourse)
	admin.Post("/courses/delete/:id", coursesController.DeleteCourse)
	admin.Get("/testimonials", testimonialsController.All)
	admin.Post("/testimonials/approve/:id", testimonialsController.Approve)
	admin.Post("/testimonials/reject/:id", testimonialsController.Reject)
}
