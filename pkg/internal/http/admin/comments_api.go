package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func adminListComments(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	var comments []models.Comment
	if err := database.C.
		Preload("Account").
		Order("created_at DESC").
		Offset(offset).Limit(take).
		Find(&comments).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":   fiber.StatusOK,
		"message":  "ok",
		"comments": comments,
	})
}

func adminGetComment(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "comment not found")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"comment": comment,
	})
}

// Unlike the user-facing delete, this removes the row and its replies
// for good.
func adminDeleteComment(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "comment not found")
	}

	if err := services.DeleteCommentPermanently(comment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "comment deleted",
	})
}
