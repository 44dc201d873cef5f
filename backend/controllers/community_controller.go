package controllers

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"tradeacademy/backend/config"
	"tradeacademy/backend/middleware"
	"tradeacademy/backend/store"
	"tradeacademy/backend/utils"
)

type CommunityController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCommunityController(st *store.Store, cfg *config.Config) *CommunityController {
	return &CommunityController{Store: st, Cfg: cfg}
}

// GetPosts returns the feed, newest first.
func (cm *CommunityController) GetPosts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"posts":   cm.Store.Posts(),
	})
}

func (cm *CommunityController) CreatePost(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type PostInput struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	var input PostInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" || utf8.RuneCountInString(input.Content) > 1000 {
		return utils.BadRequest(c, "Content is required and must be at most 1000 characters")
	}

	post := cm.Store.CreatePost(user, strings.TrimSpace(input.Title), input.Content)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// ToggleLike flips the caller's like on the post: a second call from
// the same user undoes the first.
func (cm *CommunityController) ToggleLike(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	likes, isLiked, err := cm.Store.ToggleLike(postID, user.Username)
	if err != nil {
		return utils.NotFound(c, "Post not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"likes":   likes,
		"isLiked": isLiked,
	})
}

func (cm *CommunityController) AddComment(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	type CommentInput struct {
		Content string `json:"content"`
	}

	var input CommentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" || utf8.RuneCountInString(input.Content) > 500 {
		return utils.BadRequest(c, "Content is required and must be at most 500 characters")
	}

	comment, err := cm.Store.AddComment(postID, user, input.Content)
	if err != nil {
		return utils.NotFound(c, "Post not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}

// DeletePost removes a post and everything under it. Admin only.
func (cm *CommunityController) DeletePost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	if err := cm.Store.DeletePost(postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.Error(c, fiber.StatusInternalServerError, "Could not delete post")
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteComment removes a single comment from a post. Admin only.
func (cm *CommunityController) DeleteComment(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("postId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}
	commentID, err := strconv.Atoi(c.Params("commentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	if err := cm.Store.DeleteComment(postID, commentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Comment not found")
		}
		return utils.Error(c, fiber.StatusInternalServerError, "Could not delete comment")
	}
	return c.JSON(fiber.Map{"success": true})
}
