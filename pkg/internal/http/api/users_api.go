package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meraki-social/meraki/pkg/internal/http/exts"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func getMe(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	return c.JSON(fiber.Map{
		"status":          fiber.StatusOK,
		"message":         "ok",
		"user":            user,
		"follower_count":  services.CountFollowers(user.ID),
		"following_count": services.CountFollowing(user.ID),
	})
}

func getUser(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("userId", 0)

	target, err := services.GetAccount(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return c.JSON(fiber.Map{
		"status":          fiber.StatusOK,
		"message":         "ok",
		"user":            target,
		"is_following":    services.IsFollowing(user, target.ID),
		"follower_count":  services.CountFollowers(target.ID),
		"following_count": services.CountFollowing(target.ID),
	})
}

func editProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.EditAccountProfile(user, data.FirstName, data.LastName, data.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "profile updated",
		"user":    user,
	})
}

func changePassword(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if err := services.ChangeAccountPassword(user, data.OldPassword, data.NewPassword); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "password updated",
	})
}

func updateAvatar(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Avatar string `json:"avatar" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.SetAccountAvatar(user, data.Avatar)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "profile picture updated",
		"user":    user,
	})
}
