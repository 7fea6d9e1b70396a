package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	var err error
	var tags any
	if probe := c.Query("probe"); len(probe) > 0 {
		tags, err = services.SearchTags(probe, take, offset)
	} else {
		tags, err = services.ListTags(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"tags":    tags,
	})
}

func getTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	tag, err := services.GetTag(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "tag not found")
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "ok",
		"tag":     tag,
	})
}
