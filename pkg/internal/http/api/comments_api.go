package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listComments(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	comments, err := services.ListPostComments(item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":   fiber.StatusOK,
		"message":  "ok",
		"comments": comments,
	})
}

func createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if !services.CanReadPost(user, item) {
		return fiber.NewError(fiber.StatusForbidden, "this post is private")
	}

	var data struct {
		Content string `json:"content" validate:"required,max=4096"`
		ReplyTo *uint  `json:"reply_to"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(user, item, data.Content, data.ReplyTo)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "comment created",
		"comment": comment,
	})
}

// The comment author, the post author and site admins may delete; the
// row is kept with blank text so replies stay anchored.
func deleteComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "comment not found")
	}

	post, err := services.GetPost(database.C, comment.PostID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	if comment.AccountID != user.ID && post.AccountID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "you cannot delete this comment")
	}

	if err := services.RedactComment(comment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "comment deleted",
	})
}
