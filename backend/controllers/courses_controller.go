package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tradeacademy/backend/config"
	"tradeacademy/backend/models"
	"tradeacademy/backend/store"
	"tradeacademy/backend/utils"
)

type CoursesController struct {
	Store    *store.Store
	Cfg      *config.Config
	Validate *validator.Validate
}

func NewCoursesController(st *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg, Validate: validator.New()}
}

// [+] GetCourses godoc
// @Summary List all courses
// @Description Returns the full catalog, unfiltered and unpaginated
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /api/courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	return c.JSON(cc.Store.Courses())
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, ok := cc.Store.Course(id)
	if !ok {
		return utils.NotFound(c, "Course not found")
	}
	return c.JSON(course)
}

// GetLiveStatus returns the live map keyed by course id; clients poll
// this every few seconds.
func (cc *CoursesController) GetLiveStatus(c *fiber.Ctx) error {
	return c.JSON(cc.Store.LiveStatus())
}

// [+] ToggleLive godoc
// @Summary Toggle a course's live-session flag
// @Tags admin
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "courseId"
// @Success 200 {object} models.LiveSession
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/toggle-live [post]
func (cc *CoursesController) ToggleLive(c *fiber.Ctx) error {
	type ToggleInput struct {
		CourseID int `json:"courseId"`
	}

	var input ToggleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	entry, err := cc.Store.ToggleLive(input.CourseID)
	if err != nil {
		return utils.BadRequest(c, "A valid courseId is required")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"courseId":  entry.CourseID,
		"isLive":    entry.IsLive,
		"startTime": entry.StartTime,
	})
}

type CourseInput struct {
	Title         string  `json:"title" validate:"required,max=120"`
	Description   string  `json:"description" validate:"required,max=2000"`
	Price         float64 `json:"price" validate:"gte=0"`
	OriginalPrice float64 `json:"originalPrice" validate:"gte=0"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	Students      int     `json:"students" validate:"gte=0"`
	Icon          string  `json:"icon"`
	IconBg        string  `json:"iconBg"`
	IconColor     string  `json:"iconColor"`
	Badge         string  `json:"badge"`
	BadgeColor    string  `json:"badgeColor"`
	DemoVideo     string  `json:"demoVideo"`
	StreamLink    string  `json:"streamLink"`
}

func (in *CourseInput) check(v *validator.Validate) map[string]string {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on " + fe.Tag()
		}
	}
	return fields
}

func (in *CourseInput) toCourse() models.Course {
	return models.Course{
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Rating:        in.Rating,
		Students:      in.Students,
		Icon:          in.Icon,
		IconBg:        in.IconBg,
		IconColor:     in.IconColor,
		Badge:         in.Badge,
		BadgeColor:    in.BadgeColor,
		DemoVideo:     in.DemoVideo,
		StreamLink:    in.StreamLink,
	}
}

func (cc *CoursesController) AddCourse(c *fiber.Ctx) error {
	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}
	if fields := input.check(cc.Validate); fields != nil {
		return utils.ValidationError(c, fields)
	}

	course := cc.Store.AddCourse(input.toCourse())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}

// EditCourse overwrites the course fields in place. An unknown id is a
// silent no-op, so the response is success either way.
func (cc *CoursesController) EditCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}
	if fields := input.check(cc.Validate); fields != nil {
		return utils.ValidationError(c, fields)
	}

	cc.Store.EditCourse(id, input.toCourse())
	return c.JSON(fiber.Map{"success": true})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	cc.Store.DeleteCourse(id)
	return c.JSON(fiber.Map{"success": true})
}
