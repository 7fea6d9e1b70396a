package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func adminListPosts(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := services.FilterPostWithFuzzySearch(database.C, c.Query("probe"))

	count, err := services.CountPost(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"count":   count,
		"posts":   items,
	})
}

func adminGetPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"post":    item,
	})
}

func adminDeletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "post deleted",
	})
}
