package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/models"
	"tradeacademy/backend/store"
	"tradeacademy/backend/utils"
)

type AuthController struct {
	Store    *store.Store
	Sessions *session.Store
	Cfg      *config.Config
	Validate *validator.Validate
}

func NewAuthController(st *store.Store, sessions *session.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Sessions: sessions, Cfg: cfg, Validate: validator.New()}
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate by username, email or phone and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		LoginIdentifier string `json:"loginIdentifier"`
		Password        string `json:"password"`
		LoginType       string `json:"loginType"` // username, email, phone or empty
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	// Generic failure either way: never reveal which check failed.
	user, ok := ac.Store.FindByLogin(input.LoginIdentifier, input.LoginType)
	if !ok || !utils.CheckPassword(user.PasswordHash, input.Password) {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	sessionUser := user.Session()
	if err := middleware.SaveUser(c, ac.Sessions, sessionUser); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not create session")
	}

	redirect := "/dashboard"
	if user.Role == "admin" {
		redirect = "/admin/dashboard"
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"redirect": redirect,
		"user":     sessionUser,
	})
}

// Logout destroys the session unconditionally.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := middleware.ClearSession(c, ac.Sessions); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not destroy session")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"redirect": "/",
	})
}

type RegisterInput struct {
	Name      string `json:"name" validate:"required,min=3,max=50"`
	Username  string `json:"username" validate:"required,min=3,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	State     string `json:"state" validate:"required"`
	City      string `json:"city" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	OTP       string `json:"otp"`        // email OTP
	MobileOTP string `json:"mobile-otp"` // phone OTP, field name fixed by the signup form
}

// formData echoes submitted fields back on failure so the client can
// re-fill the form; the password never travels back.
func (in *RegisterInput) formData() fiber.Map {
	return fiber.Map{
		"name":     in.Name,
		"username": in.Username,
		"email":    in.Email,
		"phone":    in.Phone,
		"state":    in.State,
		"city":     in.City,
	}
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates an account after verifying both signup OTPs
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	if err := ac.Validate.Struct(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid registration data", input.formData())
	}
	if !isUsernameSlug(input.Username) {
		return utils.Error(c, fiber.StatusBadRequest, "Username may only contain lowercase letters, digits and underscores", input.formData())
	}

	if err := ac.Store.VerifyOTP(input.Email, input.OTP); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid or expired Email OTP.", input.formData())
	}
	if err := ac.Store.VerifyOTP(input.Phone, input.MobileOTP); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid or expired Phone OTP.", input.formData())
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	user := models.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		State:        input.State,
		City:         input.City,
		PasswordHash: hash,
		Role:         "user",
	}
	if err := ac.Store.CreateUser(user); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "User already exists.", input.formData())
	}

	// Consumed only after the account is actually created.
	ac.Store.ConsumeOTP(input.Email)
	ac.Store.ConsumeOTP(input.Phone)

	// No auto-login: the user signs in explicitly.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"redirect": "/login",
	})
}

func isUsernameSlug(username string) bool {
	for _, r := range username {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return username != ""
}

// CheckExistence is the advisory pre-check used by the signup form. It
// is not a security boundary; registration re-checks authoritatively.
func (ac *AuthController) CheckExistence(c *fiber.Ctx) error {
	type ExistenceInput struct {
		Field string `json:"field"` // username, email or phone
		Value string `json:"value"`
	}

	var input ExistenceInput
	if err := c.BodyParser(&input); err != nil || input.Field == "" || input.Value == "" {
		return c.JSON(fiber.Map{"exists": false})
	}

	if ac.Store.Exists(input.Field, input.Value) {
		label := strings.ToUpper(input.Field[:1]) + input.Field[1:]
		return c.JSON(fiber.Map{
			"exists":  true,
			"message": label + " already exists.",
		})
	}
	return c.JSON(fiber.Map{"exists": false})
}

// SendOTP issues a signup OTP for an email or phone that is not yet
// registered. Delivery is a log line; no real channel exists.
func (ac *AuthController) SendOTP(c *fiber.Ctx) error {
	type OTPInput struct {
		Identifier string `json:"identifier"`
		Type       string `json:"type"` // email or phone
	}

	var input OTPInput
	if err := c.BodyParser(&input); err != nil || input.Identifier == "" {
		return utils.BadRequest(c, "Identifier is required")
	}

	// Anything that is not explicitly email resolves to phone.
	field, label := "phone", "Phone number"
	if input.Type == "email" {
		field, label = "email", "Email"
	}
	if ac.Store.Exists(field, input.Identifier) {
		return utils.BadRequest(c, label+" is already registered.")
	}

	ac.Store.GenerateOTP(input.Identifier)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent to " + input.Identifier,
	})
}

// ForgotPassword issues a reset OTP. Unlike signup, the identifier must
// belong to an existing account.
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Identifier string `json:"identifier"`
		Type       string `json:"type"` // email or phone
	}

	var input ForgotInput
	if err := c.BodyParser(&input); err != nil || input.Identifier == "" || input.Type == "" {
		return utils.BadRequest(c, "Identifier and type are required")
	}

	field := "email"
	if input.Type == "phone" {
		field = "phone"
	}
	if !ac.Store.Exists(field, input.Identifier) {
		return utils.NotFound(c, "No account found with this "+input.Type+".")
	}

	ac.Store.GenerateOTP(input.Identifier)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent to " + input.Identifier,
	})
}

// VerifyResetOTP checks a reset code against the registry.
func (ac *AuthController) VerifyResetOTP(c *fiber.Ctx) error {
	type VerifyInput struct {
		Identifier string `json:"identifier"`
		OTP        string `json:"otp"`
	}

	var input VerifyInput
	if err := c.BodyParser(&input); err != nil || input.Identifier == "" || input.OTP == "" {
		return utils.BadRequest(c, "Identifier and OTP are required")
	}

	if err := ac.Store.VerifyOTP(input.Identifier, input.OTP); err != nil {
		return utils.BadRequest(c, "Invalid or expired OTP")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified",
	})
}

// ResetPassword validates the reset OTP and swaps the stored hash.
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Identifier  string `json:"identifier"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}

	var input ResetInput
	if err := c.BodyParser(&input); err != nil || input.Identifier == "" || input.OTP == "" || input.NewPassword == "" {
		return utils.BadRequest(c, "Identifier, OTP, and new password are required")
	}
	if err := ac.Validate.Struct(&input); err != nil {
		return utils.BadRequest(c, "Password must be at least 6 characters")
	}

	if err := ac.Store.VerifyOTP(input.Identifier, input.OTP); err != nil {
		return utils.BadRequest(c, "Invalid or expired OTP")
	}

	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not hash password")
	}
	if err := ac.Store.UpdatePassword(input.Identifier, hash); err != nil {
		return utils.NotFound(c, "User not found")
	}

	ac.Store.ConsumeOTP(input.Identifier)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully",
	})
}

// Session returns the identity of the current session, used by the
// client scripts for like state and chat ownership.
func (ac *AuthController) Session(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
