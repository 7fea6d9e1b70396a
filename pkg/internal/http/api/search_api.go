package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func searchUsers(c *fiber.Ctx) error {
	users, err := services.SearchAccounts(c.Query("probe"), c.QueryInt("take", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"users":   users,
	})
}

func searchGroups(c *fiber.Ctx) error {
	groups, err := services.SearchGroups(c.Query("probe"), c.QueryInt("take", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"groups":  groups,
	})
}

func searchPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	tx := services.FilterPostWithVisibility(database.C, user)
	tx = services.FilterPostWithFuzzySearch(tx, c.Query("probe"))

	items, err := services.ListPost(tx, c.QueryInt("take", 20), c.QueryInt("offset", 0), "posts.created_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}

func randomUsers(c *fiber.Ctx) error {
	users, err := services.GetRandomAccounts(c.QueryInt("take", 5))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"users":   users,
	})
}

func randomGroups(c *fiber.Ctx) error {
	groups, err := services.GetRandomGroups(c.QueryInt("take", 5))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"groups":  groups,
	})
}

func randomPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	tx := services.FilterPostWithVisibility(database.C, user)

	items, err := services.ListPost(tx, c.QueryInt("take", 5), 0, "RANDOM()")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.AttachPostMetrics(items, user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"posts":   items,
	})
}
