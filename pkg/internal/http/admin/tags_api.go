package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func adminListTags(c *fiber.Ctx) error {
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

func adminCreateTag(c *fiber.Ctx) error {
	var data struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err := services.NewTag(data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "tag created",
		"tag":     tag,
	})
}

func adminUpdateTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	tag, err := services.GetTag(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "tag not found")
	}

	var data struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err = services.EditTag(tag, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "tag updated",
		"tag":     tag,
	})
}

func adminDeleteTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	tag, err := services.GetTag(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "tag not found")
	}

	if err := services.DeleteTag(tag); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "tag deleted",
	})
}
